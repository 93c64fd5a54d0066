package integration

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/javiermolinar/focus/internal/config"
	"github.com/javiermolinar/focus/internal/debuglog"
	"github.com/javiermolinar/focus/internal/duration"
	"github.com/javiermolinar/focus/internal/session"
	"github.com/javiermolinar/focus/internal/terminal"
)

// noopTerminal stands in for the raw-mode guard.
type noopTerminal struct{ restored bool }

func (n *noopTerminal) Enter() error { return nil }
func (n *noopTerminal) Exit() error  { n.restored = true; return nil }

// slowReader advances a fake clock by step for every byte it hands out.
type slowReader struct {
	data  []byte
	now   *time.Time
	step  time.Duration
	index int
}

func (r *slowReader) Read(p []byte) (int, error) {
	if r.index >= len(r.data) {
		return 0, io.EOF
	}
	if len(p) == 0 {
		return 0, nil
	}
	p[0] = r.data[r.index]
	r.index++
	*r.now = r.now.Add(r.step)
	return 1, nil
}

// loadConfig writes content to a temp config file and loads it.
func loadConfig(t *testing.T, content string) *config.Config {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	cfg, err := config.LoadFrom(path)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	return cfg
}

func TestSession_EndToEnd(t *testing.T) {
	cfg := loadConfig(t, `
[session]
start_msg = "📚 studying..."
quit_key = "x"
`)

	var logBuf bytes.Buffer
	debuglog.InitWriter(&logBuf)
	t.Cleanup(debuglog.Close)

	now := time.Date(2025, 1, 15, 9, 0, 0, 0, time.UTC)
	// Three keys, 24 minutes apart; the third is the quit key.
	input := &slowReader{data: []byte("aqx"), now: &now, step: 24 * time.Minute}
	term := &noopTerminal{}
	var out bytes.Buffer

	d, err := session.NewDriver(cfg.Session, term, terminal.NewKeyReader(input), &out, session.Options{
		Stopwatch: duration.NewStopwatchWithClock(func() time.Time { return now }),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := d.Run(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got, want := out.String(), "📚 studying...\n⌛️ 1 hour 12 minutes\r\n"; got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
	if !term.restored {
		t.Error("terminal was not restored")
	}

	var events []string
	for _, line := range strings.Split(strings.TrimSpace(logBuf.String()), "\n") {
		var entry map[string]any
		if err := json.Unmarshal([]byte(line), &entry); err != nil {
			t.Fatalf("invalid log line %q: %v", line, err)
		}
		events = append(events, entry["event"].(string))
	}
	want := []string{"SESSION_START", "KEY_PRESS", "KEY_PRESS", "KEY_PRESS", "SESSION_END"}
	if strings.Join(events, ",") != strings.Join(want, ",") {
		t.Errorf("logged events = %v, want %v", events, want)
	}
}

func TestSession_InputClosedBeforeGate(t *testing.T) {
	cfg := config.Default()

	now := time.Date(2025, 1, 15, 9, 0, 0, 0, time.UTC)
	input := &slowReader{data: []byte("ab"), now: &now, step: time.Second}
	var out bytes.Buffer

	d, err := session.NewDriver(cfg.Session, &noopTerminal{}, terminal.NewKeyReader(input), &out, session.Options{
		Stopwatch: duration.NewStopwatchWithClock(func() time.Time { return now }),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := d.Run(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := out.String(); got != "🍅 focusing...\n" {
		t.Errorf("output = %q, want only the start message", got)
	}
}
