// Package demo replays scripted key presses into the editor.
//
// A script is a JSON list of commands. The Source built from it implements
// core.KeySource, so the editor reads scripted keys exactly as it would read
// a keyboard; once the script runs out the Source hands over to the next key
// source, or keeps answering Ctrl-C so every menu unwinds and the editor
// exits.
package demo

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"strings"
	"time"

	"textart/core"
)

// Command represents a single demo command
type Command struct {
	Type     string `json:"type"`     // "key", "text", "pause"
	Value    string `json:"value"`    // keys in ParseKeys notation, or literal text
	Delay    int    `json:"delay"`    // base delay in milliseconds
	Variance int    `json:"variance"` // random variance in ms (±variance)
}

// Script represents a demo script
type Script struct {
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	Commands     []Command `json:"commands"`
	BaseDelay    int       `json:"base_delay"`    // default delay between commands
	BaseVariance int       `json:"base_variance"` // default variance
}

// LoadScript loads a demo script from a file
func LoadScript(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read demo script: %w", err)
	}
	return ParseScript(data)
}

// ParseScript decodes a JSON script and fills in default timing.
func ParseScript(data []byte) (*Script, error) {
	var script Script
	if err := json.Unmarshal(data, &script); err != nil {
		return nil, fmt.Errorf("failed to parse demo script: %w", err)
	}
	if script.BaseDelay == 0 {
		script.BaseDelay = 300
	}
	if script.BaseVariance == 0 {
		script.BaseVariance = 100
	}
	return &script, nil
}

type pending struct {
	key   core.KeyEvent
	delay time.Duration
}

// Source feeds scripted keys to the editor.
type Source struct {
	queue []pending
	next  core.KeySource

	// Sleep paces the script. Tests set it to a no-op.
	Sleep func(time.Duration)
}

// NewSource compiles a script into a key source. next receives control once
// the script is exhausted and may be nil.
func NewSource(script *Script, next core.KeySource) (*Source, error) {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	s := &Source{next: next, Sleep: time.Sleep}

	for i, cmd := range script.Commands {
		delay := cmd.Delay
		if delay == 0 {
			delay = script.BaseDelay
		}
		variance := cmd.Variance
		if variance == 0 {
			variance = script.BaseVariance
		}
		if variance > 0 {
			delay += rng.Intn(variance*2) - variance
		}
		if delay < 50 {
			delay = 50
		}
		wait := time.Duration(delay) * time.Millisecond

		var keys []core.KeyEvent
		switch cmd.Type {
		case "key":
			parsed, err := ParseKeys(cmd.Value)
			if err != nil {
				return nil, fmt.Errorf("command %d: %w", i+1, err)
			}
			keys = parsed
		case "text":
			for _, r := range cmd.Value {
				keys = append(keys, core.Key(r))
			}
		case "pause":
		default:
			return nil, fmt.Errorf("command %d: unknown type %q", i+1, cmd.Type)
		}

		if len(keys) == 0 {
			// A pause delays whatever comes next.
			s.queue = append(s.queue, pending{key: core.KeyEvent{}, delay: wait})
			continue
		}
		for j, k := range keys {
			d := 30 * time.Millisecond
			if j == 0 {
				d = wait
			}
			s.queue = append(s.queue, pending{key: k, delay: d})
		}
	}
	return s, nil
}

// Keys builds an unpaced source from ParseKeys notation. It panics on a
// malformed string and is meant for tests and fixtures.
func Keys(notation string) *Source {
	keys, err := ParseKeys(notation)
	if err != nil {
		panic(err)
	}
	s := &Source{}
	for _, k := range keys {
		s.queue = append(s.queue, pending{key: k})
	}
	return s
}

// Remaining returns the number of scripted keys not yet delivered.
func (s *Source) Remaining() int {
	n := 0
	for _, p := range s.queue {
		if p.key != (core.KeyEvent{}) {
			n++
		}
	}
	return n
}

// ReadKey returns the next scripted key, waiting out its delay first.
func (s *Source) ReadKey() core.KeyEvent {
	for len(s.queue) > 0 {
		p := s.queue[0]
		s.queue = s.queue[1:]
		if s.Sleep != nil && p.delay > 0 {
			s.Sleep(p.delay)
		}
		if p.key == (core.KeyEvent{}) {
			continue
		}
		return p.key
	}
	if s.next != nil {
		return s.next.ReadKey()
	}
	return core.Key(core.KeyCtrlC)
}

var namedKeys = map[string]core.KeyEvent{
	"esc":   core.Key(core.KeyEsc),
	"enter": core.Key(core.KeyEnter),
	"tab":   core.Key(core.KeyTab),
	"bs":    core.Key(core.KeyDelete),
	"up":    core.Special(core.KeyArrowUp),
	"down":  core.Special(core.KeyArrowDown),
	"left":  core.Special(core.KeyArrowLeft),
	"right": core.Special(core.KeyArrowRight),
	"lt":    core.Key('<'),
}

// ParseKeys turns a compact key notation into events. Plain characters stand
// for themselves; <esc>, <enter>, <tab>, <bs>, <up>, <down>, <left>, <right>
// name special keys and <lt> is a literal '<'. A repeat count may follow a
// name, as in <right*5>.
func ParseKeys(notation string) ([]core.KeyEvent, error) {
	var out []core.KeyEvent
	rest := notation
	for rest != "" {
		if rest[0] != '<' {
			r := []rune(rest)[0]
			out = append(out, core.Key(r))
			rest = rest[len(string(r)):]
			continue
		}
		end := strings.IndexByte(rest, '>')
		if end < 0 {
			return nil, fmt.Errorf("unterminated key name in %q", notation)
		}
		name, count := rest[1:end], 1
		if star := strings.IndexByte(name, '*'); star >= 0 {
			if _, err := fmt.Sscanf(name[star+1:], "%d", &count); err != nil || count < 1 {
				return nil, fmt.Errorf("bad repeat count in <%s>", name)
			}
			name = name[:star]
		}
		k, ok := namedKeys[strings.ToLower(name)]
		if !ok {
			return nil, fmt.Errorf("unknown key <%s>", name)
		}
		for i := 0; i < count; i++ {
			out = append(out, k)
		}
		rest = rest[end+1:]
	}
	return out, nil
}

// GenerateExample creates an example demo script
func GenerateExample() string {
	script := Script{
		Name:         "Tree and boxes",
		Description:  "Draws nested boxes and a fractal tree, then records them as clips",
		BaseDelay:    400,
		BaseVariance: 150,
		Commands: []Command{
			{Type: "key", Value: "d", Delay: 1000}, // draw menu
			{Type: "key", Value: "n"},              // nested boxes
			{Type: "text", Value: "10"},
			{Type: "key", Value: "<enter>"},
			{Type: "key", Value: "c"}, // centre of the screen

			{Type: "key", Value: "m", Delay: 800}, // back to main menu
			{Type: "key", Value: "a"},             // animation menu
			{Type: "key", Value: "a"},             // add clip
			{Type: "key", Value: "m"},

			{Type: "key", Value: "d", Delay: 600},
			{Type: "key", Value: "t"}, // tree
			{Type: "text", Value: "30"},
			{Type: "key", Value: "<enter>"},
			{Type: "text", Value: "25"},
			{Type: "key", Value: "<enter>"},
			{Type: "key", Value: "c"}, // bottom centre
			{Type: "key", Value: "m"},

			{Type: "key", Value: "a", Delay: 600},
			{Type: "key", Value: "a"},
			{Type: "key", Value: "p"}, // play until ESC

			{Type: "pause", Delay: 2000},
		},
	}

	data, _ := json.MarshalIndent(script, "", "  ")
	return string(data)
}
