package input

import (
	"sort"
	"strings"
	"time"
)

// Device represents a physical input source.
type Device int

const (
	DeviceUnknown Device = iota
	DeviceTerminal
	DeviceScript
)

// Action represents a high-level request from the user.
type Action int

const (
	ActionNone Action = iota
	ActionRegenerate
	ActionResize
	ActionDump
	ActionHelp
	ActionQuit
	ActionUnknown
)

// Intent is the 4th-layer, high-level description of what the user wants to do.
// Arg carries the rest of the command line, e.g. the preset name for ActionResize.
type Intent struct {
	Action Action
	Arg    string
}

// RawInput is the 1st-layer event emitted directly from an input device.
type RawInput struct {
	Device    Device
	Code      string
	Timestamp time.Time
}

// DebouncedInput is the 2nd-layer representation after normalisation.
// The command word is lower-cased; the argument keeps its case.
type DebouncedInput struct {
	Device Device
	Code   string
	Arg    string
}

// NewDebouncedInput converts a raw event to a debounced event.
func NewDebouncedInput(raw RawInput) DebouncedInput {
	fields := strings.Fields(raw.Code)
	ev := DebouncedInput{Device: raw.Device}
	if len(fields) > 0 {
		ev.Code = strings.ToLower(fields[0])
		ev.Arg = strings.Join(fields[1:], " ")
	}
	return ev
}

// bindings maps command words to actions (3rd-layer bindings).
// Multiple words may point to the same Action.
var bindings = map[string]Action{
	"r":          ActionRegenerate,
	"regen":      ActionRegenerate,
	"regenerate": ActionRegenerate,
	"new":        ActionRegenerate,

	"s":      ActionResize,
	"size":   ActionResize,
	"preset": ActionResize,

	"d":    ActionDump,
	"dump": ActionDump,

	"?":    ActionHelp,
	"h":    ActionHelp,
	"help": ActionHelp,

	"q":    ActionQuit,
	"quit": ActionQuit,
	"exit": ActionQuit,
}

// MapToIntent is the 3rd+4th layer: it applies the bindings to a debounced
// input and returns a high-level Intent. An empty line regenerates.
func MapToIntent(ev DebouncedInput) Intent {
	if ev.Code == "" {
		return Intent{Action: ActionRegenerate}
	}
	if act, ok := bindings[ev.Code]; ok {
		return Intent{Action: act, Arg: ev.Arg}
	}
	return Intent{Action: ActionUnknown, Arg: ev.Code}
}

// ActionName returns a human-friendly name for an action.
func ActionName(a Action) string {
	switch a {
	case ActionRegenerate:
		return "Regenerate"
	case ActionResize:
		return "Resize"
	case ActionDump:
		return "Dump"
	case ActionHelp:
		return "Help"
	case ActionQuit:
		return "Quit"
	case ActionUnknown:
		return "Unknown"
	default:
		return "None"
	}
}

// GetBindingsByAction returns the bindings grouped by action.
func GetBindingsByAction() map[Action][]string {
	result := make(map[Action][]string)
	for code, act := range bindings {
		result[act] = append(result[act], code)
	}
	// Stable ordering of codes within each action so help output doesn't change.
	for act, codes := range result {
		sort.Strings(codes)
		result[act] = codes
	}
	return result
}
