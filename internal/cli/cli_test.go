package cli

import (
	"errors"
	"os"
	"testing"

	"github.com/retroenv/retrochip8/internal/keymap"
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrochip8/internal/statsview"
	"github.com/retroenv/retrogolib/assert"
)

func parseArgs(t *testing.T, args ...string) (options.Program, error) {
	t.Helper()
	oldArgs := os.Args
	t.Cleanup(func() { os.Args = oldArgs })

	os.Args = append([]string{"prog"}, args...)
	return ParseFlags()
}

func TestParseFlagsDefaults(t *testing.T) {
	opts, err := parseArgs(t, "game.ch8")
	assert.NoError(t, err)
	assert.Equal(t, "game.ch8", opts.Input)
	assert.Equal(t, keymap.Default, opts.Keymap)
	assert.Equal(t, 700, opts.InstructionRate)
	assert.Equal(t, 60, opts.TimerRate)
	assert.Equal(t, 15, opts.Scale)
	assert.Equal(t, options.QuirkFlags{}, opts.QuirkFlags)
	assert.False(t, opts.SingleStep)
}

func TestParseFlagsQuirks(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want options.QuirkFlags
	}{
		{
			name: "legacy shift",
			args: []string{"-legacy-shift", "game.ch8"},
			want: options.QuirkFlags{LegacyShift: true},
		},
		{
			name: "jump with vx",
			args: []string{"-jump-vx", "game.ch8"},
			want: options.QuirkFlags{JumpWithVX: true},
		},
		{
			name: "legacy indexing",
			args: []string{"-legacy-indexing", "game.ch8"},
			want: options.QuirkFlags{LegacyIndexing: true},
		},
		{
			name: "short aliases",
			args: []string{"-old-shift", "-jump-quirk", "-old-index", "game.ch8"},
			want: options.QuirkFlags{LegacyShift: true, JumpWithVX: true, LegacyIndexing: true},
		},
		{
			name: "all quirks",
			args: []string{"-legacy-shift", "-jump-vx", "-legacy-indexing", "game.ch8"},
			want: options.QuirkFlags{LegacyShift: true, JumpWithVX: true, LegacyIndexing: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts, err := parseArgs(t, tt.args...)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, opts.QuirkFlags)
		})
	}
}

func TestParseFlagsStepAndInput(t *testing.T) {
	opts, err := parseArgs(t, "-step", "-i", "other.ch8")
	assert.NoError(t, err)
	assert.True(t, opts.SingleStep)
	assert.Equal(t, "other.ch8", opts.Input)
}

func TestParseFlagsStats(t *testing.T) {
	opts, err := parseArgs(t, "-statsview", "game.ch8")
	assert.NoError(t, err)
	assert.Equal(t, statsview.DefaultAddress, opts.StatsAddress)

	opts, err = parseArgs(t, "-statsview", "-stats", "127.0.0.1:9000", "game.ch8")
	assert.NoError(t, err)
	assert.Equal(t, "127.0.0.1:9000", opts.StatsAddress)

	opts, err = parseArgs(t, "game.ch8")
	assert.NoError(t, err)
	assert.Equal(t, "", opts.StatsAddress)
}

func TestParseFlagsMissingFile(t *testing.T) {
	_, err := parseArgs(t, "-step")
	var usageErr *UsageError
	assert.True(t, errors.As(err, &usageErr))
	assert.Equal(t, "no program file given", usageErr.Error())
}

func TestParseFlagsArgumentOrder(t *testing.T) {
	_, err := parseArgs(t, "game.ch8", "-debug")
	var usageErr *UsageError
	assert.True(t, errors.As(err, &usageErr))
	assert.ErrorContains(t, err, "-debug found after program file")
}

func TestParseFlagsValidation(t *testing.T) {
	tests := []struct {
		name string
		args []string
		msg  string
	}{
		{"zero rate", []string{"-rate", "0", "game.ch8"}, "invalid instruction rate 0"},
		{"negative timer rate", []string{"-timer-rate", "-5", "game.ch8"}, "invalid timer rate -5"},
		{"zero scale", []string{"-scale", "0", "game.ch8"}, "invalid scale 0"},
		{"short keymap", []string{"-keymap", "abc", "game.ch8"}, "invalid keymap"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseArgs(t, tt.args...)
			assert.ErrorContains(t, err, tt.msg)

			var usageErr *UsageError
			assert.False(t, errors.As(err, &usageErr))
		})
	}
}
