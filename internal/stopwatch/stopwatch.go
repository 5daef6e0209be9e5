// Package stopwatch records the duration of consecutive named tasks.
package stopwatch

import (
	"fmt"
	"strings"
	"time"
)

type Task struct {
	Name     string
	Duration time.Duration
}

// Stopwatch times one task at a time. It is not safe for concurrent use.
type Stopwatch struct {
	ID    string
	Tasks []Task

	current string
	started time.Time
	now     func() time.Time
}

func New(id string) *Stopwatch {
	return &Stopwatch{ID: id, now: time.Now}
}

// Start begins timing name, stopping any task still running.
func (s *Stopwatch) Start(name string) {
	if s.Running() {
		s.Stop()
	}
	s.current = name
	s.started = s.clock()
}

// Stop records the running task. It is a no-op when nothing is running.
func (s *Stopwatch) Stop() {
	if !s.Running() {
		return
	}
	s.Tasks = append(s.Tasks, Task{Name: s.current, Duration: s.clock().Sub(s.started)})
	s.current = ""
	s.started = time.Time{}
}

func (s *Stopwatch) Running() bool {
	return !s.started.IsZero()
}

func (s *Stopwatch) Total() time.Duration {
	var total time.Duration
	for _, t := range s.Tasks {
		total += t.Duration
	}
	return total
}

func (s *Stopwatch) clock() time.Time {
	if s.now == nil {
		return time.Now()
	}
	return s.now()
}

// PrettyPrint renders a millisecond table of all recorded tasks.
func (s *Stopwatch) PrettyPrint() string {
	var sb strings.Builder
	total := s.Total()
	fmt.Fprintf(&sb, "StopWatch '%s': running time = %d ms\n", s.ID, total.Milliseconds())
	sb.WriteString("---------------------------------------------\n")
	sb.WriteString("ms         %     Task name\n")
	sb.WriteString("---------------------------------------------\n")
	for _, t := range s.Tasks {
		percent := 0.0
		if total > 0 {
			percent = 100 * float64(t.Duration) / float64(total)
		}
		fmt.Fprintf(&sb, "%09d  %03.0f%%  %s\n", t.Duration.Milliseconds(), percent, t.Name)
	}
	return sb.String()
}
