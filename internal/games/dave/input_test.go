package dave

import (
	"testing"

	platformcore "github.com/vovakirdan/tui-dave/internal/core"
	"github.com/vovakirdan/tui-dave/internal/games/dave/core"
)

func frame(actions ...platformcore.Action) platformcore.InputFrame {
	f := platformcore.NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

func TestInputBufferHoldsPress(t *testing.T) {
	b := NewInputBuffer(3)
	b.Press(frame(platformcore.ActionRight))

	for i := range 3 {
		if in := b.Next(); !in.Right {
			t.Fatalf("tick %d: right should still be held", i)
		}
	}
	if in := b.Next(); in.Right {
		t.Error("right should be released after the hold window")
	}
}

func TestInputBufferRepeatRefreshes(t *testing.T) {
	b := NewInputBuffer(2)
	b.Press(frame(platformcore.ActionFire))
	b.Next()
	b.Press(frame(platformcore.ActionFire))

	held := 0
	for b.Next().Fire {
		held++
	}
	if held != 2 {
		t.Errorf("auto-repeat should restart the window, held %d ticks", held)
	}
}

func TestInputBufferReversal(t *testing.T) {
	tests := []struct {
		name   string
		first  platformcore.Action
		second platformcore.Action
		want   func(core.Input) bool
	}{
		{"left cancels right", platformcore.ActionRight, platformcore.ActionLeft, func(in core.Input) bool { return in.Left && !in.Right }},
		{"right cancels left", platformcore.ActionLeft, platformcore.ActionRight, func(in core.Input) bool { return in.Right && !in.Left }},
		{"down cancels jump", platformcore.ActionJump, platformcore.ActionDown, func(in core.Input) bool { return in.Down && !in.Jump }},
		{"jump cancels down", platformcore.ActionDown, platformcore.ActionJump, func(in core.Input) bool { return in.Jump && !in.Down }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewInputBuffer(5)
			b.Press(frame(tt.first))
			b.Press(frame(tt.second))
			if in := b.Next(); !tt.want(in) {
				t.Errorf("got %+v", in)
			}
		})
	}
}

func TestInputBufferToggleIsEdge(t *testing.T) {
	b := NewInputBuffer(4)
	b.Press(frame(platformcore.ActionJetpack, platformcore.ActionLeft))

	if in := b.Next(); !in.ToggleJetpack || !in.Left {
		t.Fatalf("first tick = %+v", in)
	}
	if in := b.Next(); in.ToggleJetpack {
		t.Error("toggle must last a single tick")
	}
}

func TestInputBufferReset(t *testing.T) {
	b := NewInputBuffer(0)
	if b.holdTicks != 1 {
		t.Errorf("holdTicks = %d, expected the minimum of 1", b.holdTicks)
	}

	b.Press(frame(platformcore.ActionJump, platformcore.ActionFire, platformcore.ActionJetpack))
	b.Reset()
	if in := b.Next(); in != (core.Input{}) {
		t.Errorf("Reset left %+v", in)
	}
}

func TestInputBufferIgnoresMenuActions(t *testing.T) {
	b := NewInputBuffer(4)
	b.Press(frame(platformcore.ActionPause, platformcore.ActionConfirm, platformcore.ActionQuit))
	if in := b.Next(); in != (core.Input{}) {
		t.Errorf("menu actions leaked into gameplay input: %+v", in)
	}
}
