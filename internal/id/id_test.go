package id

import (
	"errors"
	"regexp"
	"sync"
	"testing"
	"time"
)

var base64Pattern = regexp.MustCompile(`^[A-Za-z0-9+/]+=*$`)

// --- ItemID Tests ---

func TestItemID_Format(t *testing.T) {
	id := ItemID()
	if len(id) != 24 {
		t.Errorf("ItemID() length = %d, want 24", len(id))
	}
	if !base64Pattern.MatchString(id) {
		t.Errorf("ItemID() = %q, not standard base64", id)
	}
}

func TestItemID_RoundTrip(t *testing.T) {
	id := ItemID()
	u, err := ParseItemID(id)
	if err != nil {
		t.Fatalf("ParseItemID(%q) error = %v", id, err)
	}
	if u.Version() != 4 {
		t.Errorf("version = %d, want 4", u.Version())
	}
}

func TestItemID_Uniqueness(t *testing.T) {
	seen := make(map[string]bool, 1000)
	for i := 0; i < 1000; i++ {
		id := ItemID()
		if seen[id] {
			t.Fatalf("ItemID() generated duplicate: %s", id)
		}
		seen[id] = true
	}
}

func TestParseItemID_Invalid(t *testing.T) {
	cases := []string{
		"",
		"not base64!",
		"AAAA",                     // decodes, wrong length
		"QUFBQUFBQUFBQUFBQUFBQUFB", // 18 bytes
	}
	for _, s := range cases {
		if _, err := ParseItemID(s); !errors.Is(err, ErrMalformed) {
			t.Errorf("ParseItemID(%q) error = %v, want ErrMalformed", s, err)
		}
		if ValidItemID(s) {
			t.Errorf("ValidItemID(%q) = true", s)
		}
	}
}

// --- ChangeKey Tests ---

func TestChangeKey_Unique(t *testing.T) {
	seen := make(map[string]bool, 1000)
	for i := 0; i < 1000; i++ {
		k := ChangeKey()
		if seen[k] {
			t.Fatalf("ChangeKey() generated duplicate: %s", k)
		}
		seen[k] = true
	}
}

func TestChangeKey_Concurrent(t *testing.T) {
	const goroutines = 20
	const perGoroutine = 100

	results := make(chan string, goroutines*perGoroutine)
	var wg sync.WaitGroup
	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perGoroutine; i++ {
				results <- ChangeKey()
			}
		}()
	}
	wg.Wait()
	close(results)

	seen := make(map[string]bool, goroutines*perGoroutine)
	for k := range results {
		if seen[k] {
			t.Fatalf("duplicate change key under concurrency: %s", k)
		}
		seen[k] = true
	}
}

func TestChangeKeyTime(t *testing.T) {
	before := time.Now().Add(-time.Second)
	k := ChangeKey()
	after := time.Now().Add(time.Second)

	ts, err := ChangeKeyTime(k)
	if err != nil {
		t.Fatalf("ChangeKeyTime() error = %v", err)
	}
	if ts.Before(before) || ts.After(after) {
		t.Errorf("ChangeKeyTime() = %v, want between %v and %v", ts, before, after)
	}

	if _, err := ChangeKeyTime("AAAA"); err == nil {
		t.Error("ChangeKeyTime(short) expected error")
	}
}
