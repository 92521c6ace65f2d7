package core

// Default scoring rules.
const (
	MaxScore           = 99999
	ExtraLifeEvery     = 20000
	LevelBonus         = 2000
	MonsterKillPoints  = 300
	DefaultLives       = 3
	defaultTrophyValue = 1000
)

// Scoring holds the tunable point values.
type Scoring struct {
	LevelBonus     int
	MonsterKill    int
	ExtraLifeEvery int
	MaxScore       int
}

// DefaultScoring returns the classic point values.
func DefaultScoring() Scoring {
	return Scoring{
		LevelBonus:     LevelBonus,
		MonsterKill:    MonsterKillPoints,
		ExtraLifeEvery: ExtraLifeEvery,
		MaxScore:       MaxScore,
	}
}

// PickupValue returns the points a treasure tile is worth.
func PickupValue(t TileID) int {
	switch {
	case t.IsTrophy():
		return defaultTrophyValue
	case t == TileBlueGem:
		return 100
	case t == TilePurpleOrb:
		return 50
	case t == TileRedGem:
		return 150
	case t == TileCrown:
		return 300
	case t == TileRing:
		return 200
	case t == TileScepter:
		return 500
	}
	return 0
}

// ScoreBook tracks score and lives.
type ScoreBook struct {
	Score int
	Lives int
	rules Scoring
}

// NewScoreBook starts a book with the given lives.
func NewScoreBook(lives int, rules Scoring) ScoreBook {
	if rules.ExtraLifeEvery <= 0 {
		rules.ExtraLifeEvery = ExtraLifeEvery
	}
	if rules.MaxScore <= 0 {
		rules.MaxScore = MaxScore
	}
	return ScoreBook{Lives: lives, rules: rules}
}

// Add awards points and returns how many extra lives the award granted:
// one per ExtraLifeEvery boundary crossed, even within a single award.
func (b *ScoreBook) Add(points int) int {
	if points <= 0 {
		return 0
	}
	before := b.Score
	after := min(before+points, b.rules.MaxScore)
	gained := after/b.rules.ExtraLifeEvery - before/b.rules.ExtraLifeEvery
	b.Lives += gained
	b.Score = after
	return gained
}
