package client

import (
	"testing"
)

func TestNew(t *testing.T) {
	if New("http://example.com") == nil {
		t.Fatalf("expected client")
	}
}

func TestNewPanicsOnEmptyBaseURL(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for empty base URL")
		}
	}()
	New("")
}

func TestCloseIdempotent(t *testing.T) {
	c := New("http://example.com")
	if err := c.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if err := c.Close(); err != nil {
		t.Fatalf("second close: %v", err)
	}
}

func TestHistoryStartsEmpty(t *testing.T) {
	c := New("http://example.com")
	if got := len(c.History()); got != 0 {
		t.Fatalf("fresh client has %d history entries", got)
	}
}
