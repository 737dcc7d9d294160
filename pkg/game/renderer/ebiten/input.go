package ebiten

import (
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	engineinput "datagrid/pkg/engine/input"
)

// gamepadButtons are the standard-layout buttons that produce key codes.
var gamepadButtons = map[ebiten.StandardGamepadButton]string{
	ebiten.StandardGamepadButtonRightBottom: "gamepad_a",
	ebiten.StandardGamepadButtonRightRight:  "gamepad_b",
	ebiten.StandardGamepadButtonRightTop:    "gamepad_y",
	ebiten.StandardGamepadButtonCenterRight: "gamepad_start",
}

// keyCode converts an Ebiten key to the code used by the bindings.
func keyCode(k ebiten.Key) string {
	switch k {
	case ebiten.KeySlash:
		return "?"
	case ebiten.KeyEnter, ebiten.KeyNumpadEnter:
		return "enter"
	default:
		return strings.ToLower(k.String())
	}
}

// pollInput collects this tick's just-pressed keys and buttons as raw input
// events (1st layer).
func pollInput(now time.Time) []engineinput.RawInput {
	var events []engineinput.RawInput

	for _, k := range inpututil.AppendJustPressedKeys(nil) {
		events = append(events, engineinput.RawInput{
			Device:    engineinput.DeviceKeyboard,
			Code:      keyCode(k),
			Timestamp: now,
		})
	}

	for _, id := range ebiten.AppendGamepadIDs(nil) {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		for button, code := range gamepadButtons {
			if inpututil.IsStandardGamepadButtonJustPressed(id, button) {
				events = append(events, engineinput.RawInput{
					Device:    engineinput.DeviceGamepad,
					Code:      code,
					Timestamp: now,
				})
			}
		}
	}
	return events
}
