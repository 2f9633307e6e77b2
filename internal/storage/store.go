// Package storage provides item storage for the fake Exchange endpoint.
package storage

import (
	"time"

	"github.com/beevik/etree"
)

// Record is one stored item. Element is the item's wire form, including the
// server-computed fields.
type Record struct {
	ID        string
	ChangeKey string
	// Folder is the id of the folder holding the item, either a
	// distinguished folder name or a FolderId.
	Folder    string
	Element   *etree.Element
	CreatedAt time.Time
	UpdatedAt time.Time

	seq uint64
}

// Clone returns a deep copy of r.
func (r *Record) Clone() *Record {
	cp := *r
	if r.Element != nil {
		cp.Element = r.Element.Copy()
	}
	return &cp
}

// ItemStore defines the interface for storing and retrieving items.
type ItemStore interface {
	// Get retrieves a copy of the item with the given ID. Returns nil if not found.
	Get(id string) *Record

	// Put stores or replaces an item. A replaced item keeps its position.
	Put(r *Record) error

	// Delete removes an item by ID. Returns true if deleted, false if not found.
	Delete(id string) bool

	// List returns copies of all items in insertion order.
	List() []*Record

	// ListByFolder returns the items in one folder, in insertion order.
	ListByFolder(folder string) []*Record

	// Count returns the number of stored items.
	Count() int

	// Clear removes all stored items.
	Clear()

	// Exists checks if an item with the given ID exists.
	Exists(id string) bool
}
