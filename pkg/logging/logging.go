// Package logging is the subsystem-tagged logger of vboxmanager. In CLI
// mode entries go to a slog text handler; in TUI mode they are delivered
// on a channel drained by the activity log pane.
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
	"sync/atomic"
	"time"
)

// LogLevel defines the severity of the log entry.
type LogLevel int

const (
	LevelDebug LogLevel = iota
	LevelInfo
	LevelWarn
	LevelError
)

var levelNames = [...]string{"DEBUG", "INFO", "WARN", "ERROR"}

func (l LogLevel) String() string {
	if l < LevelDebug || l > LevelError {
		return "UNKNOWN"
	}
	return levelNames[l]
}

// SlogLevel maps l onto the slog scale. Unknown levels log as info.
func (l LogLevel) SlogLevel() slog.Level {
	switch l {
	case LevelDebug:
		return slog.LevelDebug
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// ParseLevel maps a configuration string onto a LogLevel.
// Unknown values resolve to LevelInfo.
func ParseLevel(s string) LogLevel {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

// LogEntry is the structured log entry passed to the TUI.
type LogEntry struct {
	Timestamp  time.Time
	Level      LogLevel
	Subsystem  string
	Message    string
	Err        error
	Attributes []slog.Attr
}

// sink receives every entry at or above its level.
type sink interface {
	write(e LogEntry)
}

type slogSink struct {
	logger *slog.Logger
}

func (s slogSink) write(e LogEntry) {
	attrs := make([]slog.Attr, 0, len(e.Attributes)+2)
	attrs = append(attrs, slog.String("subsystem", e.Subsystem))
	if e.Err != nil {
		attrs = append(attrs, slog.String("error", e.Err.Error()))
	}
	attrs = append(attrs, e.Attributes...)
	s.logger.LogAttrs(context.Background(), e.Level.SlogLevel(), e.Message, attrs...)
}

type channelSink struct {
	ch chan LogEntry
}

// write never blocks: the UI goroutine is the only consumer and may be
// the caller.
func (s channelSink) write(e LogEntry) {
	select {
	case s.ch <- e:
	default:
		droppedEntries.Add(1)
	}
}

var (
	mu       sync.RWMutex
	current  sink
	minLevel = LevelInfo
	tuiCh    chan LogEntry

	droppedEntries atomic.Int64
)

const tuiChannelBufferSize = 2048

// InitForTUI switches to channel delivery and returns the channel. Output
// written to stderr before the alternate screen is up stays visible there.
func InitForTUI(filterLevel LogLevel) <-chan LogEntry {
	mu.Lock()
	defer mu.Unlock()

	closeChannelLocked()
	tuiCh = make(chan LogEntry, tuiChannelBufferSize)
	current = channelSink{ch: tuiCh}
	minLevel = filterLevel
	slog.SetDefault(newTextLogger(os.Stderr, filterLevel))
	return tuiCh
}

// InitForCLI writes entries as slog text to output.
func InitForCLI(filterLevel LogLevel, output io.Writer) {
	mu.Lock()
	defer mu.Unlock()

	closeChannelLocked()
	logger := newTextLogger(output, filterLevel)
	slog.SetDefault(logger)
	current = slogSink{logger: logger}
	minLevel = filterLevel
}

func newTextLogger(w io.Writer, level LogLevel) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level.SlogLevel()}))
}

// Dropped reports how many TUI entries were discarded because the
// channel was full.
func Dropped() int64 {
	return droppedEntries.Load()
}

func emit(level LogLevel, subsystem string, err error, attrs []slog.Attr, messageFmt string, args ...any) {
	msg := messageFmt
	if len(args) > 0 {
		msg = fmt.Sprintf(messageFmt, args...)
	}

	// The read lock is held across the write so CloseTUIChannel cannot
	// close the channel under a sender.
	mu.RLock()
	defer mu.RUnlock()
	if level < minLevel {
		return
	}
	s := current
	if s == nil {
		s = slogSink{logger: slog.Default()}
	}
	s.write(LogEntry{
		Timestamp:  time.Now(),
		Level:      level,
		Subsystem:  subsystem,
		Message:    msg,
		Err:        err,
		Attributes: attrs,
	})
}

// Debug logs a debug message.
func Debug(subsystem string, messageFmt string, args ...any) {
	emit(LevelDebug, subsystem, nil, nil, messageFmt, args...)
}

// Info logs an informational message.
func Info(subsystem string, messageFmt string, args ...any) {
	emit(LevelInfo, subsystem, nil, nil, messageFmt, args...)
}

// Warn logs a warning message.
func Warn(subsystem string, messageFmt string, args ...any) {
	emit(LevelWarn, subsystem, nil, nil, messageFmt, args...)
}

// Error logs an error message.
func Error(subsystem string, err error, messageFmt string, args ...any) {
	emit(LevelError, subsystem, err, nil, messageFmt, args...)
}

// Machine logs at level with the machine name and id attached, so the
// activity log can be filtered per VM.
func Machine(level LogLevel, subsystem, name, id string, err error, messageFmt string, args ...any) {
	attrs := []slog.Attr{slog.String("vm", name), slog.String("id", id)}
	emit(level, subsystem, err, attrs, messageFmt, args...)
}

// CloseTUIChannel closes the TUI log channel and falls back to stderr.
// Should be called on application shutdown.
func CloseTUIChannel() {
	mu.Lock()
	defer mu.Unlock()
	if tuiCh == nil {
		return
	}
	closeChannelLocked()
	current = slogSink{logger: newTextLogger(os.Stderr, minLevel)}
}

func closeChannelLocked() {
	if tuiCh != nil {
		close(tuiCh)
		tuiCh = nil
	}
}
