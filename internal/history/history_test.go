package history

import (
	"errors"
	"testing"

	"github.com/markovml/pandas-ai/pkg/types"
)

func TestLog_recordAndGet(t *testing.T) {
	log, err := NewLog(8)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	e := log.Record("number", `{"type":"number","value":125}`, types.Outcome{Valid: true}, nil)
	if e.ID == "" {
		t.Fatal("expected an assigned ID")
	}

	got, ok := log.Get(e.ID)
	if !ok {
		t.Fatalf("entry %s not found", e.ID)
	}
	if got.Kind != "number" || !got.Outcome.Valid {
		t.Errorf("unexpected entry: %+v", got)
	}
}

func TestLog_recordsErrors(t *testing.T) {
	log, _ := NewLog(8)

	e := log.Record("default", `{"value":"x"}`, types.Outcome{}, errors.New("result record has no \"type\" field"))
	if e.Error == "" {
		t.Error("expected the error text to be retained")
	}
}

func TestLog_recentNewestFirst(t *testing.T) {
	log, _ := NewLog(8)

	log.Record("number", "a", types.Outcome{Valid: true}, nil)
	log.Record("string", "b", types.Outcome{Valid: false}, nil)
	log.Record("plot", "c", types.Outcome{Valid: true}, nil)

	recent := log.Recent(2)
	if len(recent) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(recent))
	}
	if recent[0].Kind != "plot" || recent[1].Kind != "string" {
		t.Errorf("unexpected order: %s, %s", recent[0].Kind, recent[1].Kind)
	}
}

func TestLog_evictsOldest(t *testing.T) {
	log, _ := NewLog(2)

	first := log.Record("number", "a", types.Outcome{}, nil)
	log.Record("string", "b", types.Outcome{}, nil)
	log.Record("plot", "c", types.Outcome{}, nil)

	if _, ok := log.Get(first.ID); ok {
		t.Error("oldest entry should have been evicted")
	}
	if log.Len() != 2 {
		t.Errorf("expected 2 retained entries, got %d", log.Len())
	}
}

func TestLog_truncatesSnippets(t *testing.T) {
	log, _ := NewLog(2)

	long := make([]byte, SnippetMaxLen*2)
	for i := range long {
		long[i] = 'x'
	}
	e := log.Record("string", string(long), types.Outcome{Valid: true}, nil)
	if len(e.Snippet) != SnippetMaxLen {
		t.Errorf("snippet length = %d, want %d", len(e.Snippet), SnippetMaxLen)
	}
}
