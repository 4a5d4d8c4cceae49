// Package journal persists a record of every message the service has parsed,
// validated or built. Entries are JSON-encoded and keyed by ksuid, so
// iteration order is creation order.
package journal

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/cockroachdb/pebble"
	"github.com/segmentio/ksuid"
)

// ErrNotFound is returned when no entry exists for an ID.
var ErrNotFound = errors.New("journal entry not found")

// Directions for journal entries.
const (
	DirectionInbound  = "inbound"
	DirectionOutbound = "outbound"
)

// Entry is one journaled message. Message always holds the canonical SOH
// form.
type Entry struct {
	ID         string    `json:"id"`
	Direction  string    `json:"direction"`
	MsgType    string    `json:"msg_type,omitempty"`
	Message    string    `json:"message"`
	Valid      bool      `json:"valid"`
	Reason     string    `json:"reason,omitempty"`
	RecordedAt time.Time `json:"recorded_at"`
}

// Journal is a pebble-backed append-only message log.
type Journal struct {
	db *pebble.DB
}

// Open opens (creating if necessary) a journal at the given path.
func Open(path string) (*Journal, error) {
	db, err := pebble.Open(path, &pebble.Options{})
	if err != nil {
		return nil, fmt.Errorf("failed to open journal: %w", err)
	}
	return &Journal{db: db}, nil
}

// Append records an entry and returns its generated ID. A zero RecordedAt is
// filled with the current UTC time.
func (j *Journal) Append(entry Entry) (string, error) {
	id := ksuid.New()
	entry.ID = id.String()
	if entry.RecordedAt.IsZero() {
		entry.RecordedAt = time.Now().UTC()
	}

	data, err := json.Marshal(entry)
	if err != nil {
		return "", fmt.Errorf("failed to encode journal entry: %w", err)
	}
	if err := j.db.Set(id.Bytes(), data, pebble.NoSync); err != nil {
		return "", fmt.Errorf("failed to write journal entry: %w", err)
	}
	return entry.ID, nil
}

// Get retrieves an entry by ID.
func (j *Journal) Get(id string) (*Entry, error) {
	key, err := ksuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("invalid journal entry id %q: %w", id, err)
	}

	data, closer, err := j.db.Get(key.Bytes())
	if err != nil {
		if errors.Is(err, pebble.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to read journal entry: %w", err)
	}
	defer closer.Close()

	var entry Entry
	if err := json.Unmarshal(data, &entry); err != nil {
		return nil, fmt.Errorf("failed to decode journal entry: %w", err)
	}
	return &entry, nil
}

// List returns up to limit entries, newest first. A non-positive limit
// returns everything.
func (j *Journal) List(limit int) ([]Entry, error) {
	iter, err := j.db.NewIter(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to iterate journal: %w", err)
	}
	defer iter.Close()

	var entries []Entry
	// ksuid keys sort by creation time, so walking backwards yields newest
	// entries first.
	for ok := iter.Last(); ok; ok = iter.Prev() {
		if limit > 0 && len(entries) >= limit {
			break
		}
		var entry Entry
		if err := json.Unmarshal(iter.Value(), &entry); err != nil {
			return nil, fmt.Errorf("failed to decode journal entry: %w", err)
		}
		entries = append(entries, entry)
	}
	if err := iter.Error(); err != nil {
		return nil, fmt.Errorf("journal iteration failed: %w", err)
	}
	return entries, nil
}

// Close closes the underlying store.
func (j *Journal) Close() error {
	return j.db.Close()
}
