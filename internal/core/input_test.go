package core

import "testing"

func TestInputFrame(t *testing.T) {
	var f InputFrame
	if !f.Empty() || f.Has(ActionFire) {
		t.Fatal("zero frame should be empty")
	}

	f.Set(ActionFire)
	f.Set(ActionLeft)
	if !f.Has(ActionFire) || !f.Has(ActionLeft) || f.Has(ActionJump) {
		t.Errorf("unexpected actions %v", f.Actions)
	}

	f.Clear()
	if !f.Empty() {
		t.Error("Clear should empty the frame")
	}
}

func TestActionString(t *testing.T) {
	tests := []struct {
		a    Action
		want string
	}{
		{ActionNone, "None"},
		{ActionJetpack, "Jetpack"},
		{ActionPause, "Pause"},
		{Action(99), "Unknown"},
		{Action(-1), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.a.String(); got != tt.want {
			t.Errorf("Action(%d).String() = %q, expected %q", int(tt.a), got, tt.want)
		}
	}
}
