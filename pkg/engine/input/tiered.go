package input

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// Device represents a physical input source.
type Device int

const (
	DeviceUnknown Device = iota
	DeviceKeyboard
	DeviceGamepad
	DeviceTerminal
)

// Action represents a high‑level intent for the grid display.
type Action int

const (
	ActionNone Action = iota

	ActionTogglePlay // Flip between playing and paused
	ActionReset      // Rewind the scroll and resume
	ActionQuit
	ActionToggleHUD // Show or hide the status overlay
)

// Intent is the 4th‑layer, high‑level description of what the viewer wants.
type Intent struct {
	Action Action
}

// RawInput is the 1st‑layer event emitted directly from an input device.
// Code is a device‑specific identifier (e.g. "space", "r", "escape").
type RawInput struct {
	Device    Device
	Code      string
	Timestamp time.Time
}

// DebouncedInput is the 2nd‑layer representation after debouncing.
// Ebiten reports just-pressed keys and the terminal reports one event per
// keystroke, so this is a thin wrapper for now.
type DebouncedInput struct {
	Device Device
	Code   string
}

// NewDebouncedInput converts a raw event to a debounced event.
func NewDebouncedInput(raw RawInput) DebouncedInput {
	return DebouncedInput{
		Device: raw.Device,
		Code:   strings.ToLower(raw.Code),
	}
}

// defaultBindings maps raw codes to actions (3rd-layer bindings).
// Multiple codes may point to the same Action.
var defaultBindings = map[string]Action{
	"space":         ActionTogglePlay,
	"p":             ActionTogglePlay,
	"gamepad_a":     ActionTogglePlay,
	"gamepad_start": ActionTogglePlay,

	"r":         ActionReset,
	"gamepad_y": ActionReset,

	"q":         ActionQuit,
	"escape":    ActionQuit,
	"ctrl_c":    ActionQuit,
	"gamepad_b": ActionQuit,

	"h": ActionToggleHUD,
	"?": ActionToggleHUD,
}

// reserved codes always keep their default action so a bad config can never
// leave the viewer without a way out.
var reserved = map[string]bool{
	"escape": true,
	"ctrl_c": true,
}

// Bindings is a code to action table.
type Bindings struct {
	codes map[string]Action
}

// DefaultBindings returns a fresh copy of the built-in bindings.
func DefaultBindings() *Bindings {
	b := &Bindings{codes: make(map[string]Action, len(defaultBindings))}
	for c, a := range defaultBindings {
		b.codes[c] = a
	}
	return b
}

// NewBindings returns the default bindings with overrides applied. overrides
// maps action names (see ParseAction) to the codes that should trigger them;
// an action listed in overrides loses its default codes.
func NewBindings(overrides map[string][]string) (*Bindings, error) {
	b := DefaultBindings()
	names := make([]string, 0, len(overrides))
	for name := range overrides {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		act, ok := ParseAction(name)
		if !ok || act == ActionNone {
			return nil, fmt.Errorf("unknown action %q in key bindings", name)
		}
		b.Set(act, overrides[name]...)
	}
	return b, nil
}

// Set replaces all codes for action. Reserved codes are left untouched.
func (b *Bindings) Set(action Action, codes ...string) {
	for c, a := range b.codes {
		if a == action && !reserved[c] {
			delete(b.codes, c)
		}
	}
	for _, c := range codes {
		c = strings.ToLower(strings.TrimSpace(c))
		if c == "" || reserved[c] {
			continue
		}
		b.codes[c] = action
	}
}

// MapToIntent is the 3rd+4th layer: it applies the bindings to a debounced
// input and returns a high‑level Intent.
func (b *Bindings) MapToIntent(ev DebouncedInput) Intent {
	if act, ok := b.codes[ev.Code]; ok {
		return Intent{Action: act}
	}
	return Intent{Action: ActionNone}
}

// Resolve runs a raw event through every layer.
func (b *Bindings) Resolve(raw RawInput) Action {
	return b.MapToIntent(NewDebouncedInput(raw)).Action
}

// ByAction returns the bindings grouped by action, codes sorted.
func (b *Bindings) ByAction() map[Action][]string {
	result := make(map[Action][]string)
	for code, act := range b.codes {
		result[act] = append(result[act], code)
	}
	for act, codes := range result {
		sort.Strings(codes)
		result[act] = codes
	}
	return result
}

var actionNames = map[Action]string{
	ActionTogglePlay: "toggle_play",
	ActionReset:      "reset",
	ActionQuit:       "quit",
	ActionToggleHUD:  "toggle_hud",
}

// ActionName returns the config name of an action.
func ActionName(a Action) string {
	if n, ok := actionNames[a]; ok {
		return n
	}
	return "none"
}

// ParseAction is the inverse of ActionName.
func ParseAction(name string) (Action, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for a, n := range actionNames {
		if n == name {
			return a, true
		}
	}
	return ActionNone, name == "none"
}
