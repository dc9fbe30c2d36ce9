package sim

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// EventSink receives every event-log entry as it is recorded. The default
// sink writes logrus debug lines; tests inject their own to assert on live
// delivery.
type EventSink interface {
	Record(entry string)
}

// LogrusSink forwards entries to the shared logrus logger at debug level.
type LogrusSink struct{}

func (LogrusSink) Record(entry string) { logrus.Debug(entry) }

// EventLog is the ordered, append-only record of everything the elevator did
// during a run: door transitions, boardings, exits, moves, and the final
// completion marker. Entries are retained in memory for assertions and
// mirrored to the sink for live reporting.
type EventLog struct {
	entries []string
	sink    EventSink
}

// NewEventLog creates an empty log. A nil sink defaults to LogrusSink.
func NewEventLog(sink EventSink) *EventLog {
	if sink == nil {
		sink = LogrusSink{}
	}
	return &EventLog{sink: sink}
}

// Appendf formats and records one entry.
func (l *EventLog) Appendf(format string, args ...any) {
	entry := fmt.Sprintf(format, args...)
	l.entries = append(l.entries, entry)
	l.sink.Record(entry)
}

// Entries returns the recorded entries in order. The returned slice is the
// log's internal storage; callers must not modify it.
func (l *EventLog) Entries() []string {
	return l.entries
}

// Len returns the number of recorded entries.
func (l *EventLog) Len() int {
	return len(l.entries)
}

// Last returns the most recent entry, or "" for an empty log.
func (l *EventLog) Last() string {
	if len(l.entries) == 0 {
		return ""
	}
	return l.entries[len(l.entries)-1]
}
