package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
)

// New returns the process logger: console writer on stderr at the named
// level. Unknown level names fall back to info.
func New(levelName string) zerolog.Logger {
	cw := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}
	return NewWith(levelName, cw)
}

// NewWith returns a logger writing to w, for file tees and tests.
func NewWith(levelName string, w io.Writer) zerolog.Logger {
	return zerolog.New(w).Level(parseLevel(levelName)).With().Timestamp().Logger()
}

func parseLevel(name string) zerolog.Level {
	level, err := zerolog.ParseLevel(name)
	if err != nil || level == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return level
}

// LogFilePath builds a session log path using OS-appropriate separators.
func LogFilePath(logsDir, name string, sessionStart time.Time) string {
	return filepath.Join(
		logsDir,
		fmt.Sprintf("%s.%s.log", name, sessionStart.Format("20060102_150405")),
	)
}
