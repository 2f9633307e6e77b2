package id

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/binary"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

// ErrMalformed is returned by ParseItemID for strings that ItemID could not
// have produced.
var ErrMalformed = errors.New("malformed item id")

// ItemID generates a new opaque item identifier: a random UUID in standard
// base64, the alphabet Exchange identifiers use.
func ItemID() string {
	u := uuid.New()
	return base64.StdEncoding.EncodeToString(u[:])
}

// ParseItemID decodes an identifier produced by ItemID.
func ParseItemID(s string) (uuid.UUID, error) {
	b, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	u, err := uuid.FromBytes(b)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	return u, nil
}

// ValidItemID reports whether s decodes as an item identifier.
func ValidItemID(s string) bool {
	_, err := ParseItemID(s)
	return err == nil
}

var (
	ckMu      sync.Mutex
	ckLastMs  int64
	ckCounter uint16
)

// ChangeKey generates a change key. Keys are 16 bytes: a 48-bit millisecond
// timestamp, a 16-bit counter for keys issued within the same millisecond
// and 8 random bytes, so no two calls return the same key.
func ChangeKey() string {
	ckMu.Lock()
	now := time.Now().UnixMilli()
	if now == ckLastMs {
		ckCounter++
	} else {
		ckLastMs = now
		ckCounter = 0
	}
	counter := ckCounter
	ckMu.Unlock()

	var b [16]byte
	binary.BigEndian.PutUint64(b[:8], uint64(now)<<16|uint64(counter))
	_, _ = rand.Read(b[8:])
	return base64.StdEncoding.EncodeToString(b[:])
}

// ChangeKeyTime extracts the issue time from a key produced by ChangeKey.
func ChangeKeyTime(key string) (time.Time, error) {
	b, err := base64.StdEncoding.DecodeString(key)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid change key: %w", err)
	}
	if len(b) != 16 {
		return time.Time{}, fmt.Errorf("invalid change key: %d bytes", len(b))
	}
	return time.UnixMilli(int64(binary.BigEndian.Uint64(b[:8]) >> 16)), nil
}
