// Package logging provides the component-tagged loggers shared by the
// drivers, the text engine and the web server.
package logging

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

type Logger interface {
	Infof(component string, format string, args ...interface{})
	Errorf(component string, format string, args ...interface{})
}

type NoopLogger struct{}

func (NoopLogger) Infof(component, format string, args ...interface{})  {}
func (NoopLogger) Errorf(component, format string, args ...interface{}) {}

// FileLogger writes one line per entry:
//
//	2006-01-02T15:04:05Z07:00 [LEVEL] component: message
//
// It is safe for concurrent use.
type FileLogger struct {
	mu  *sync.Mutex
	w   io.Writer
	now func() time.Time
}

func NewFileLogger(w io.Writer) FileLogger {
	return FileLogger{mu: &sync.Mutex{}, w: w, now: time.Now}
}

func (l FileLogger) Infof(component string, format string, args ...interface{}) {
	l.write("INFO", component, format, args...)
}

func (l FileLogger) Errorf(component string, format string, args ...interface{}) {
	l.write("ERROR", component, format, args...)
}

func (l FileLogger) write(level, component, format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	writeLog(l.w, l.now(), level, component, format, args...)
}

func writeLog(w io.Writer, at time.Time, level, component, format string, args ...interface{}) {
	timestamp := at.Format(time.RFC3339)
	msg := fmt.Sprintf(format, args...)
	_, _ = io.WriteString(w, timestamp+" ["+level+"] "+component+": "+msg+"\n")
}

// OpenDebugLog appends to the file at path and returns a logger writing to
// it, plus the file so the caller can close it.
func OpenDebugLog(path string) (FileLogger, *os.File, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return FileLogger{}, nil, fmt.Errorf("open debug log %s: %w", path, err)
	}
	return NewFileLogger(f), f, nil
}
