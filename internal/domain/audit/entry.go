package audit

import (
	"errors"
	"slices"
	"strings"
	"time"
)

var (
	ErrEmptyAction   = errors.New("audit action cannot be empty")
	ErrMissingActor  = errors.New("audit actor is required")
	ErrMissingMoment = errors.New("audit timestamp is required")
)

// Entry records one action taken against a reservation or its folio.
type Entry struct {
	action string
	actor  string
	at     time.Time
	note   string
}

func NewEntry(action, actor string, at time.Time, note string) (Entry, error) {
	action = strings.TrimSpace(action)
	if action == "" {
		return Entry{}, ErrEmptyAction
	}
	actor = strings.TrimSpace(actor)
	if actor == "" {
		return Entry{}, ErrMissingActor
	}
	if at.IsZero() {
		return Entry{}, ErrMissingMoment
	}
	return Entry{action: action, actor: actor, at: at, note: strings.TrimSpace(note)}, nil
}

func (e Entry) Action() string     { return e.action }
func (e Entry) Actor() string      { return e.actor }
func (e Entry) At() time.Time      { return e.at }
func (e Entry) Note() string       { return e.note }
func (e Entry) Category() Category { return Classify(e.action) }

// Log is the append-only audit trail of one folio, kept in write order.
type Log struct {
	entries []Entry
}

func (l Log) Append(e Entry) Log {
	next := make([]Entry, len(l.entries), len(l.entries)+1)
	copy(next, l.entries)
	return Log{entries: append(next, e)}
}

func (l Log) Entries() []Entry {
	return slices.Clone(l.entries)
}

func (l Log) Len() int {
	return len(l.entries)
}
