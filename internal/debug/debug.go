package debug

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/charmbracelet/log"
)

// EnvVar names the environment variable holding the debug log path.
const EnvVar = "TUIT_DEBUG"

var (
	logFile *os.File
	logger  *log.Logger
	loaded  bool
	mu      sync.Mutex
)

// Init starts debug logging to the file at path, replacing any previous
// destination.
func Init(path string) error {
	mu.Lock()
	defer mu.Unlock()
	closeLocked()
	return initLocked(path)
}

// initLocked does the actual init work. Caller must hold mu.
func initLocked(path string) error {
	loaded = true
	if path == "" {
		return nil
	}

	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open debug log: %w", err)
	}

	logFile = f
	logger = newLogger(f)
	return nil
}

// InitWriter sends debug logging to w. Mostly useful in tests.
func InitWriter(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	closeLocked()
	loaded = true
	logger = newLogger(w)
}

func newLogger(w io.Writer) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Level:           log.DebugLevel,
		Prefix:          "tuit",
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.000",
		Formatter:       log.LogfmtFormatter,
	})
}

// Close closes the debug log file and disables logging.
func Close() error {
	mu.Lock()
	defer mu.Unlock()
	return closeLocked()
}

func closeLocked() error {
	logger = nil
	loaded = false
	if logFile != nil {
		err := logFile.Close()
		logFile = nil
		return err
	}
	return nil
}

// Enabled reports whether messages are being recorded. The first call
// reads TUIT_DEBUG if Init has not been called.
func Enabled() bool {
	mu.Lock()
	defer mu.Unlock()
	return loggerLocked() != nil
}

func loggerLocked() *log.Logger {
	if !loaded {
		// A bad path leaves logging disabled.
		_ = initLocked(os.Getenv(EnvVar))
	}
	return logger
}

// Log writes a debug message with alternating key/value pairs.
func Log(msg string, keyvals ...any) {
	mu.Lock()
	defer mu.Unlock()

	l := loggerLocked()
	if l == nil {
		return
	}
	l.Debug(msg, keyvals...)
	if logFile != nil {
		logFile.Sync()
	}
}

// Logf writes a formatted debug message.
func Logf(format string, args ...any) {
	Log(fmt.Sprintf(format, args...))
}
