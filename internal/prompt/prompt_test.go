package prompt

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/huh"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lineConfirmer(input string, out *bytes.Buffer) ConsoleConfirmer {
	return ConsoleConfirmer{
		In:         strings.NewReader(input),
		Out:        out,
		IsTerminal: func() bool { return false },
	}
}

func TestConfirmLineAnswers(t *testing.T) {
	cases := []struct {
		input    string
		accepted bool
	}{
		{"y\n", true},
		{"Y\n", true},
		{"yes\n", true},
		{"YES\n", true},
		{"\n", false}, // an empty answer declines; installing is opt-in
		{"n\n", false},
		{"no\n", false},
		{"nope\n", false},
	}
	for _, tc := range cases {
		t.Run(strings.TrimSpace(tc.input), func(t *testing.T) {
			var out bytes.Buffer
			accepted, err := lineConfirmer(tc.input, &out).Confirm("Proceed?")
			require.NoError(t, err)
			assert.Equal(t, tc.accepted, accepted)
			assert.Contains(t, out.String(), "Proceed? [y/N]:")
		})
	}
}

func TestConfirmLineClosedInputIsError(t *testing.T) {
	var out bytes.Buffer
	_, err := lineConfirmer("", &out).Confirm("Proceed?")
	assert.Error(t, err)
}

func TestConfirmTerminalPathRunsForm(t *testing.T) {
	orig := runFormFunc
	runFormFunc = func(form *huh.Form) error { return nil }
	t.Cleanup(func() { runFormFunc = orig })

	c := ConsoleConfirmer{
		In:         strings.NewReader(""),
		Out:        &bytes.Buffer{},
		IsTerminal: func() bool { return true },
	}
	accepted, err := c.Confirm("Proceed?")
	require.NoError(t, err)
	assert.False(t, accepted, "form default is no until the user flips it")
}
