package framework

import (
	"fmt"
	"io"
	"sync"
	"time"
)

const debugTimestampFormat = "2006-01-02 15:04:05.000"

// Logger is the minimal logging interface used throughout the harness.
type Logger interface {
	Printf(message string, args ...interface{})
}

type nullLogger struct{}

func (n nullLogger) Printf(message string, args ...interface{}) {}

// NullLogger returns a Logger that discards all output.
func NullLogger() Logger { return nullLogger{} }

// CapturedMessage is one timestamped line of captured debug output.
type CapturedMessage struct {
	Time    time.Time
	Message string
}

// CapturedOutput is all of the debug output captured during one test.
type CapturedOutput []CapturedMessage

// CapturingLogger is a Logger that retains all messages in memory.
type CapturingLogger struct {
	output []CapturedMessage
	lock   sync.Mutex
}

func (l *CapturingLogger) Printf(message string, args ...interface{}) {
	l.lock.Lock()
	l.output = append(l.output, CapturedMessage{
		Time:    time.Now(),
		Message: fmt.Sprintf(message, args...),
	})
	l.lock.Unlock()
}

func (l *CapturingLogger) Output() CapturedOutput {
	l.lock.Lock()
	ret := append(CapturedOutput(nil), l.output...)
	l.lock.Unlock()
	return ret
}

// Dump writes the captured output to dest, prefixing every line.
func (output CapturedOutput) Dump(dest io.Writer, prefix string) {
	for _, m := range output {
		fmt.Fprintf(dest, "%s[%s] %s\n",
			prefix,
			m.Time.Format(debugTimestampFormat),
			m.Message,
		)
	}
}
