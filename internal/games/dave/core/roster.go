package core

// Spawn places one monster at level start.
type Spawn struct {
	Sprite TileID
	Cell   Cell
}

// Roster is the static per-level setup: Dave's start cell and the
// monsters that occupy the first slots.
type Roster struct {
	Start    Cell
	Monsters []Spawn
}

var rosters = [NumLevels]Roster{
	{Start: Cell{X: 2, Y: 8}},
	{Start: Cell{X: 1, Y: 8}},
	{Start: Cell{X: 2, Y: 5}, Monsters: []Spawn{
		{TileSpider, Cell{X: 44, Y: 4}},
		{TileSpider, Cell{X: 59, Y: 4}},
	}},
	{Start: Cell{X: 1, Y: 5}, Monsters: []Spawn{
		{TileSaucer, Cell{X: 32, Y: 2}},
	}},
	{Start: Cell{X: 2, Y: 8}, Monsters: []Spawn{
		{TileRedBall, Cell{X: 15, Y: 3}},
	}},
	{Start: Cell{X: 2, Y: 8}, Monsters: []Spawn{
		{TileSunWheel, Cell{X: 10, Y: 8}},
		{TileSunWheel, Cell{X: 28, Y: 8}},
		{TileSunWheel, Cell{X: 45, Y: 2}},
		{TileSunWheel, Cell{X: 40, Y: 8}},
	}},
	{Start: Cell{X: 1, Y: 2}, Monsters: []Spawn{
		{TileBones, Cell{X: 5, Y: 2}},
		{TileBones, Cell{X: 16, Y: 1}},
		{TileBones, Cell{X: 46, Y: 2}},
		{TileBones, Cell{X: 56, Y: 3}},
	}},
	{Start: Cell{X: 2, Y: 8}, Monsters: []Spawn{
		{TileDisc, Cell{X: 53, Y: 5}},
		{TileDisc, Cell{X: 72, Y: 2}},
		{TileDisc, Cell{X: 84, Y: 1}},
	}},
	{Start: Cell{X: 6, Y: 1}, Monsters: []Spawn{
		{TileGreenJaw, Cell{X: 35, Y: 8}},
		{TileGreenJaw, Cell{X: 41, Y: 8}},
		{TileGreenJaw, Cell{X: 49, Y: 8}},
		{TileGreenJaw, Cell{X: 65, Y: 8}},
	}},
	{Start: Cell{X: 2, Y: 8}, Monsters: []Spawn{
		{TileBat, Cell{X: 45, Y: 8}},
		{TileBat, Cell{X: 51, Y: 2}},
		{TileBat, Cell{X: 65, Y: 3}},
		{TileBat, Cell{X: 82, Y: 5}},
	}},
}

// RosterFor returns the static setup for a level.
func RosterFor(id LevelID) Roster {
	return rosters[id.index]
}

// Spawned fills a full roster from the level setup; unused slots are dead.
func (r Roster) Spawned() [MonsterSlots]Monster {
	var out [MonsterSlots]Monster
	for i := range out {
		out[i] = EmptySlot()
	}
	for i, s := range r.Monsters {
		if i >= MonsterSlots {
			break
		}
		out[i] = NewMonster(s.Sprite, s.Cell)
	}
	return out
}
