// Package logger provides named, colour-tagged line logging.
package logger

import (
	"errors"
	"io"
	"log"

	"github.com/beka-birhanu/vinom-maze/config"
)

var ErrNilWriter = errors.New("logger writer is nil")

// Logger prefixes every line with a coloured component name and level.
type Logger struct {
	name  string
	color string
	out   *log.Logger
}

// New creates a logger for the named component writing to w.
func New(name, color string, w io.Writer) (*Logger, error) {
	if w == nil {
		return nil, ErrNilWriter
	}
	return &Logger{
		name:  name,
		color: color,
		out:   log.New(w, "", log.Ldate|log.Ltime),
	}, nil
}

// Info logs informational messages.
func (l *Logger) Info(msg string) {
	l.write(config.LogInfoColor, "INFO", msg)
}

// Warn logs recoverable problems.
func (l *Logger) Warn(msg string) {
	l.write(config.LogWarnColor, "WARN", msg)
}

// Error logs error messages.
func (l *Logger) Error(msg string) {
	l.write(config.LogErrorColor, "ERROR", msg)
}

func (l *Logger) write(levelColor, level, msg string) {
	l.out.Printf("%s[%s]%s %s[%s]%s %s",
		l.color, l.name, config.ColorReset,
		levelColor, level, config.LogColorReset,
		msg,
	)
}
