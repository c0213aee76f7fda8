// Package history keeps an LRU-bounded record of recent validation calls.
//
// The server is otherwise stateless; the history exists so an agent can ask
// "what did I get wrong in the last few results" without re-sending the
// payloads. Old entries fall out as the cache fills.
package history

import (
	"fmt"
	"sync/atomic"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/markovml/pandas-ai/pkg/types"
)

// SnippetMaxLen bounds the stored payload preview.
const SnippetMaxLen = 200

// Entry records one validation call.
type Entry struct {
	ID      string        `json:"id"`
	Kind    string        `json:"kind"`
	Outcome types.Outcome `json:"outcome"`
	Error   string        `json:"error,omitempty"`
	Snippet string        `json:"snippet,omitempty"`
	At      time.Time     `json:"at"`
}

// Log is a thread-safe, LRU-bounded validation log.
type Log struct {
	cache *lru.Cache[string, *Entry]
	seq   atomic.Uint64
}

// NewLog creates a log retaining at most maxItems entries.
func NewLog(maxItems int) (*Log, error) {
	c, err := lru.New[string, *Entry](maxItems)
	if err != nil {
		return nil, err
	}
	return &Log{cache: c}, nil
}

// Record stores a validation call and returns its entry. The snippet is
// truncated to SnippetMaxLen; err may be nil.
func (l *Log) Record(kind, snippet string, outcome types.Outcome, err error) *Entry {
	if len(snippet) > SnippetMaxLen {
		snippet = snippet[:SnippetMaxLen]
	}
	e := &Entry{
		ID:      fmt.Sprintf("v-%06d", l.seq.Add(1)),
		Kind:    kind,
		Outcome: outcome,
		Snippet: snippet,
		At:      time.Now().UTC(),
	}
	if err != nil {
		e.Error = err.Error()
	}
	l.cache.Add(e.ID, e)
	return e
}

// Get retrieves an entry by ID.
func (l *Log) Get(id string) (*Entry, bool) {
	return l.cache.Get(id)
}

// Recent returns up to limit entries, newest first.
func (l *Log) Recent(limit int) []*Entry {
	keys := l.cache.Keys() // oldest to newest
	entries := make([]*Entry, 0, limit)
	for i := len(keys) - 1; i >= 0 && len(entries) < limit; i-- {
		if e, ok := l.cache.Peek(keys[i]); ok {
			entries = append(entries, e)
		}
	}
	return entries
}

// Len returns the current number of retained entries.
func (l *Log) Len() int {
	return l.cache.Len()
}
