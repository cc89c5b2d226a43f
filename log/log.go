package log

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog"
)

const diagFileName = "diagnostics_log.txt"

var (
	diagLog  zerolog.Logger
	diagFile *os.File
	logMu    sync.Mutex
	logReady bool
	pid      int
	dir      string
)

func ResolveDir(flagPath string) (string, error) {
	// Priority 1: -logpath flag
	if flagPath != "" {
		return absPath(flagPath)
	}

	// Priority 2: TAGARO_LOG_PATH environment variable
	if envPath := os.Getenv("TAGARO_LOG_PATH"); envPath != "" {
		return absPath(envPath)
	}

	// Priority 3: Default OS-specific location
	return getDefaultDir()
}

func absPath(p string) (string, error) {
	if filepath.IsAbs(p) {
		return p, nil
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(wd, p), nil
}

func SetDir(d string) {
	dir = d
}

func Dir() string {
	return dir
}

func EnsureDir() error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}
	return nil
}

// Init opens diagnostics_log.txt in the log directory and enables logging.
func Init() error {
	logMu.Lock()
	defer logMu.Unlock()

	if err := EnsureDir(); err != nil {
		return err
	}

	f, err := os.OpenFile(filepath.Join(dir, diagFileName), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	if diagFile != nil {
		diagFile.Close()
	}
	diagFile = f
	setWriter(f)
	return nil
}

// SetOutput routes diagnostics to w instead of the log file. Passing nil
// disables logging.
func SetOutput(w io.Writer) {
	logMu.Lock()
	defer logMu.Unlock()
	if w == nil {
		logReady = false
		return
	}
	setWriter(w)
}

func setWriter(w io.Writer) {
	pid = os.Getpid()
	consoleWriter := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: "2006-01-02 15:04:05",
		NoColor:    true,
	}
	diagLog = zerolog.New(consoleWriter).With().Timestamp().Int("pid", pid).Logger()
	logReady = true
}

func Close() {
	logMu.Lock()
	defer logMu.Unlock()
	if diagFile != nil {
		diagFile.Close()
		diagFile = nil
	}
	logReady = false
}

// logger returns a copy of the current logger and whether logging is enabled.
func logger() (zerolog.Logger, bool) {
	logMu.Lock()
	defer logMu.Unlock()
	return diagLog, logReady
}

func Info(msg string) {
	if l, ok := logger(); ok {
		l.Info().Msg(msg)
	}
}

func Error(msg string) {
	if l, ok := logger(); ok {
		l.Error().Msg(msg)
	}
}

func Errorf(format string, args ...any) {
	if l, ok := logger(); ok {
		l.Error().Msg(fmt.Sprintf(format, args...))
	}
}

func Warn(msg string) {
	if l, ok := logger(); ok {
		l.Warn().Msg(msg)
	}
}

func Warnf(format string, args ...any) {
	if l, ok := logger(); ok {
		l.Warn().Msg(fmt.Sprintf(format, args...))
	}
}

// Unsupported records that a backend ignored a request for a feature it
// cannot provide.
func Unsupported(backend, feature, msg string) {
	l, ok := logger()
	if !ok {
		return
	}
	l.Warn().
		Str("backend", backend).
		Str("feature", feature).
		Msg(msg)
}

func SessionStart(backend string, frames int) {
	l, ok := logger()
	if !ok {
		return
	}
	l.Info().
		Str("backend", backend).
		Int("frames", frames).
		Msg("session_start")
}

func SessionEnd(frames int) {
	l, ok := logger()
	if !ok {
		return
	}
	l.Info().
		Int("frames", frames).
		Msg("session_end")
}
