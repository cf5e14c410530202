package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/milk9111/puzzlepath/config"
)

const stickDeadZone = 0.3

// Reader polls the keyboard or the first gamepad, depending on the
// configured controller.
type Reader struct {
	controller config.Controller
}

func NewReader(controller config.Controller) *Reader {
	return &Reader{controller: controller}
}

func (r *Reader) SetController(c config.Controller) {
	r.controller = c
}

// Read polls the device for this frame and maps it to a Command.
func (r *Reader) Read(lc config.Launcher) Command {
	return Map(r.Poll(), lc)
}

// Poll returns the raw virtual buttons for this frame. The keyboard always
// answers Back so the game can be left without a gamepad.
func (r *Reader) Poll() Buttons {
	var b Buttons
	if r.controller == config.ControllerGamepad {
		if ids := ebiten.GamepadIDs(); len(ids) > 0 {
			b = pollGamepad(ids[0])
		}
	} else {
		b = pollKeyboard()
	}
	b.Back = b.Back || inpututil.IsKeyJustPressed(ebiten.KeyEscape)
	return b
}

func pollKeyboard() Buttons {
	return Buttons{
		AimLeft:   ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyLeft),
		AimRight:  ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyRight),
		PowerUp:   ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyUp),
		PowerDown: ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyDown),
		Confirm:   inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyEnter),
		Restart:   inpututil.IsKeyJustPressed(ebiten.KeyR),
	}
}

func pollGamepad(gid ebiten.GamepadID) Buttons {
	leftX := ebiten.StandardGamepadAxisValue(gid, ebiten.StandardGamepadAxisLeftStickHorizontal)
	leftY := ebiten.StandardGamepadAxisValue(gid, ebiten.StandardGamepadAxisLeftStickVertical)
	pressed := func(btn ebiten.StandardGamepadButton) bool {
		return ebiten.IsStandardGamepadButtonPressed(gid, btn)
	}
	justPressed := func(btn ebiten.StandardGamepadButton) bool {
		return inpututil.IsStandardGamepadButtonJustPressed(gid, btn)
	}
	return Buttons{
		AimLeft:   leftX < -stickDeadZone || pressed(ebiten.StandardGamepadButtonLeftLeft),
		AimRight:  leftX > stickDeadZone || pressed(ebiten.StandardGamepadButtonLeftRight),
		PowerUp:   leftY < -stickDeadZone || pressed(ebiten.StandardGamepadButtonLeftTop),
		PowerDown: leftY > stickDeadZone || pressed(ebiten.StandardGamepadButtonLeftBottom),
		Confirm:   justPressed(ebiten.StandardGamepadButtonRightBottom),
		Restart:   justPressed(ebiten.StandardGamepadButtonRightTop),
		Back:      justPressed(ebiten.StandardGamepadButtonRightRight) || justPressed(ebiten.StandardGamepadButtonCenterRight),
	}
}
