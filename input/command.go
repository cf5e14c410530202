package input

import "github.com/milk9111/puzzlepath/config"

// Buttons is the virtual controller state for one frame. Held buttons stay
// true while down; Confirm, Restart and Back are only true on the frame they
// were pressed.
type Buttons struct {
	AimLeft   bool
	AimRight  bool
	PowerUp   bool
	PowerDown bool
	Confirm   bool
	Restart   bool
	Back      bool
}

// Command is what the game shell acts on each frame.
type Command struct {
	AngleDelta     float64
	MagnitudeDelta float64
	Confirm        bool
	Restart        bool
	Back           bool
}

// Map turns held aim buttons into per-frame launcher deltas. Aiming left
// turns the launcher counter-clockwise.
func Map(b Buttons, lc config.Launcher) Command {
	var cmd Command
	if b.AimLeft {
		cmd.AngleDelta += lc.AngleStep
	}
	if b.AimRight {
		cmd.AngleDelta -= lc.AngleStep
	}
	if b.PowerUp {
		cmd.MagnitudeDelta += lc.MagnitudeStep
	}
	if b.PowerDown {
		cmd.MagnitudeDelta -= lc.MagnitudeStep
	}
	cmd.Confirm = b.Confirm
	cmd.Restart = b.Restart
	cmd.Back = b.Back
	return cmd
}
