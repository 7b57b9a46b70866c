package demo

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"textart/core"
)

func TestParseKeys(t *testing.T) {
	tests := []struct {
		name     string
		notation string
		want     []core.KeyEvent
	}{
		{"plain", "ab", []core.KeyEvent{core.Key('a'), core.Key('b')}},
		{"named", "<esc><enter>", []core.KeyEvent{core.Key(core.KeyEsc), core.Key(core.KeyEnter)}},
		{"arrows", "<up><left>", []core.KeyEvent{core.Special(core.KeyArrowUp), core.Special(core.KeyArrowLeft)}},
		{"repeat", "<right*3>", []core.KeyEvent{
			core.Special(core.KeyArrowRight), core.Special(core.KeyArrowRight), core.Special(core.KeyArrowRight),
		}},
		{"literal lt", "<lt>x", []core.KeyEvent{core.Key('<'), core.Key('x')}},
		{"empty", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseKeys(tt.notation)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseKeysErrors(t *testing.T) {
	for _, bad := range []string{"<esc", "<nope>", "<up*0>", "<up*x>"} {
		_, err := ParseKeys(bad)
		assert.Error(t, err, bad)
	}
}

func TestKeysSourceThenCtrlC(t *testing.T) {
	s := Keys("x<esc>")
	assert.Equal(t, 2, s.Remaining())

	assert.Equal(t, core.Key('x'), s.ReadKey())
	assert.Equal(t, core.Key(core.KeyEsc), s.ReadKey())
	assert.Equal(t, core.Key(core.KeyCtrlC), s.ReadKey())
	assert.Equal(t, core.Key(core.KeyCtrlC), s.ReadKey())
}

type fixedSource struct{ key core.KeyEvent }

func (f fixedSource) ReadKey() core.KeyEvent { return f.key }

func TestScriptSource(t *testing.T) {
	script, err := ParseScript([]byte(`{
		"name": "t",
		"commands": [
			{"type": "key", "value": "d", "delay": 100, "variance": 1},
			{"type": "text", "value": "12"},
			{"type": "pause", "delay": 500, "variance": 1},
			{"type": "key", "value": "<enter>"}
		]
	}`))
	require.NoError(t, err)
	assert.Equal(t, 300, script.BaseDelay)

	var slept []time.Duration
	s, err := NewSource(script, fixedSource{core.Key('z')})
	require.NoError(t, err)
	s.Sleep = func(d time.Duration) { slept = append(slept, d) }

	var got []core.KeyEvent
	for i := 0; i < 5; i++ {
		got = append(got, s.ReadKey())
	}

	assert.Equal(t, []core.KeyEvent{
		core.Key('d'), core.Key('1'), core.Key('2'), core.Key(core.KeyEnter), core.Key('z'),
	}, got)
	require.Len(t, slept, 5)
	assert.InDelta(t, 100*time.Millisecond, slept[0], float64(time.Millisecond))
	assert.Equal(t, 30*time.Millisecond, slept[2])
	assert.InDelta(t, 500*time.Millisecond, slept[3], float64(time.Millisecond))
}

func TestScriptUnknownCommand(t *testing.T) {
	_, err := NewSource(&Script{Commands: []Command{{Type: "dance"}}}, nil)
	assert.Error(t, err)
}

func TestLoadScriptAndExample(t *testing.T) {
	path := filepath.Join(t.TempDir(), "demo.json")
	require.NoError(t, os.WriteFile(path, []byte(GenerateExample()), 0o644))

	script, err := LoadScript(path)
	require.NoError(t, err)
	assert.NotEmpty(t, script.Commands)

	_, err = NewSource(script, nil)
	assert.NoError(t, err)

	_, err = LoadScript(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}
