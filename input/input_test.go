package input_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/questgrid/input"
)

func TestPath_ZeroPadsQuest(t *testing.T) {
	got := input.Path("inputs", input.Key{Event: 2024, Quest: 3, Part: 2})
	assert.Equal(t, filepath.Join("inputs", "everybody_codes_e2024_q03_p2.txt"), got)

	got = input.Path("/x", input.Key{Event: 1, Quest: 13, Part: 1})
	assert.Equal(t, filepath.Join("/x", "everybody_codes_e1_q13_p1.txt"), got)
}

func TestKey_Validate(t *testing.T) {
	cases := []struct {
		name string
		key  input.Key
		ok   bool
	}{
		{"Valid", input.Key{Event: 2024, Quest: 1, Part: 1}, true},
		{"ZeroEvent", input.Key{Quest: 1, Part: 1}, false},
		{"NegativeQuest", input.Key{Event: 2024, Quest: -1, Part: 1}, false},
		{"ZeroPart", input.Key{Event: 2024, Quest: 1}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.key.Validate()
			if tc.ok {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, input.ErrBadKey)
		})
	}
}

func TestKey_String(t *testing.T) {
	assert.Equal(t, "e2024 q07 p3", input.Key{Event: 2024, Quest: 7, Part: 3}.String())
}

func TestLoad_TrimsWhitespace(t *testing.T) {
	dir := t.TempDir()
	k := input.Key{Event: 2024, Quest: 13, Part: 1}
	require.NoError(t, os.WriteFile(input.Path(dir, k), []byte("\n  #S.E#\n\n"), 0o644))

	got, err := input.Load(dir, k)
	require.NoError(t, err)
	assert.Equal(t, "#S.E#", got)
	assert.Equal(t, got, input.MustLoad(dir, k))
}

func TestLoad_Missing(t *testing.T) {
	dir := t.TempDir()
	k := input.Key{Event: 2024, Quest: 1, Part: 1}

	_, err := input.Load(dir, k)
	require.ErrorIs(t, err, input.ErrInputNotFound)
	assert.Contains(t, err.Error(), "everybody_codes_e2024_q01_p1.txt")
	assert.Panics(t, func() { input.MustLoad(dir, k) })
}

func TestLoad_BadKey(t *testing.T) {
	_, err := input.Load(t.TempDir(), input.Key{})
	assert.ErrorIs(t, err, input.ErrBadKey)
}

func TestRoot_Env(t *testing.T) {
	t.Setenv(input.EnvRoot, "")
	assert.Equal(t, input.DefaultRoot, input.Root())

	t.Setenv(input.EnvRoot, "/tmp/puzzles")
	assert.Equal(t, "/tmp/puzzles", input.Root())
}
