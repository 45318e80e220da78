package input

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapToIntent(t *testing.T) {
	cases := []struct {
		code string
		want Intent
	}{
		{"", Intent{Action: ActionRegenerate}},
		{"r", Intent{Action: ActionRegenerate}},
		{"  Regenerate ", Intent{Action: ActionRegenerate}},
		{"size medium", Intent{Action: ActionResize, Arg: "medium"}},
		{"S large", Intent{Action: ActionResize, Arg: "large"}},
		{"DUMP Out/Map.txt", Intent{Action: ActionDump, Arg: "Out/Map.txt"}},
		{"?", Intent{Action: ActionHelp}},
		{"quit", Intent{Action: ActionQuit}},
		{"dance", Intent{Action: ActionUnknown, Arg: "dance"}},
	}
	for _, tc := range cases {
		t.Run(tc.code, func(t *testing.T) {
			got := MapToIntent(NewDebouncedInput(RawInput{Device: DeviceScript, Code: tc.code}))
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestLineReader(t *testing.T) {
	l := NewLineReader(strings.NewReader("r\r\nsize small\nq"))

	in, err := l.ReadIntent()
	require.NoError(t, err)
	assert.Equal(t, ActionRegenerate, in.Action)

	in, err = l.ReadIntent()
	require.NoError(t, err)
	assert.Equal(t, Intent{Action: ActionResize, Arg: "small"}, in)

	line, err := l.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, "q", line)

	in, err = l.ReadIntent()
	assert.ErrorIs(t, err, io.EOF)
	assert.Equal(t, ActionQuit, in.Action)
}

func TestBindingsByAction(t *testing.T) {
	b := GetBindingsByAction()
	assert.Equal(t, []string{"exit", "q", "quit"}, b[ActionQuit])
	assert.Equal(t, "Resize", ActionName(ActionResize))
	assert.Equal(t, "None", ActionName(ActionNone))
}
