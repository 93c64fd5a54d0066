// Package debuglog writes structured session events to a file when debug mode is on.
package debuglog

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

// Path is the fixed path for debug logs.
const Path = "focus-debug.log"

// Logger writes one JSON object per line.
type Logger struct {
	mu      sync.Mutex
	w       io.Writer
	closer  io.Closer
	enabled bool
	seq     int
}

// Global debug logger instance
var debugLog *Logger

// Init enables debug logging to Path when enabled is true.
func Init(enabled bool) error {
	if !enabled {
		debugLog = &Logger{enabled: false}
		return nil
	}

	f, err := os.Create(Path)
	if err != nil {
		return fmt.Errorf("creating debug log: %w", err)
	}

	debugLog = &Logger{w: f, closer: f, enabled: true}
	debugLog.log("DEBUG_START", map[string]any{
		"log_file": Path,
		"time":     time.Now().Format(time.RFC3339),
	})
	return nil
}

// InitWriter enables debug logging to w. Used by tests.
func InitWriter(w io.Writer) {
	debugLog = &Logger{w: w, enabled: true}
}

// Close flushes the end marker and closes the log file.
func Close() {
	if debugLog == nil || !debugLog.enabled {
		return
	}
	debugLog.log("DEBUG_END", map[string]any{
		"time": time.Now().Format(time.RFC3339),
	})
	if debugLog.closer != nil {
		_ = debugLog.closer.Close()
	}
	debugLog = nil
}

func (l *Logger) log(event string, data map[string]any) {
	if l == nil || !l.enabled || l.w == nil {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	l.seq++
	entry := map[string]any{
		"seq":   l.seq,
		"ts":    time.Now().Format("15:04:05.000"),
		"event": event,
	}
	for k, v := range data {
		entry[k] = v
	}

	b, _ := json.Marshal(entry)
	_, _ = fmt.Fprintf(l.w, "%s\n", b)
}

// LogSessionStart logs the start of a focus session.
func LogSessionStart(quitKey rune) {
	debugLog.log("SESSION_START", map[string]any{
		"quit_key": string(quitKey),
	})
}

// LogKeyPress logs a key press event.
func LogKeyPress(key rune) {
	debugLog.log("KEY_PRESS", map[string]any{
		"key":  fmt.Sprintf("%q", key),
		"code": int(key),
	})
}

// LogSessionEnd logs the elapsed time and whether a summary was printed.
func LogSessionEnd(elapsed float64, reason string, summarized bool) {
	debugLog.log("SESSION_END", map[string]any{
		"elapsed_seconds": elapsed,
		"reason":          reason,
		"summarized":      summarized,
	})
}

// LogError logs an error.
func LogError(context string, err error) {
	if err == nil {
		return
	}
	debugLog.log("ERROR", map[string]any{
		"context": context,
		"error":   err.Error(),
	})
}
