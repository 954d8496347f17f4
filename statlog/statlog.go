// Package statlog keeps a fixed-size ring of recent log lines so they can be
// served through the diagnostics API.
package statlog

import (
	"sync"

	"github.com/sirupsen/logrus"
)

const defaultCapacity = 200

// check StatLog compliance to the hook interface during compile time
var _ logrus.Hook = (*StatLog)(nil)

type StatLog struct {
	mu       sync.Mutex
	lines    []string
	capacity int
}

func New() *StatLog {
	return &StatLog{
		capacity: defaultCapacity,
	}
}

func (l *StatLog) Levels() []logrus.Level {
	return logrus.AllLevels
}

func (l *StatLog) Fire(entry *logrus.Entry) error {
	line, err := entry.String()
	if err != nil {
		return err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	l.lines = append(l.lines, line)
	if len(l.lines) > l.capacity {
		l.lines = l.lines[len(l.lines)-l.capacity:]
	}

	return nil
}

// Lines returns a copy of the retained log lines, oldest first.
func (l *StatLog) Lines() []string {
	l.mu.Lock()
	defer l.mu.Unlock()

	lines := make([]string, len(l.lines))
	copy(lines, l.lines)

	return lines
}
