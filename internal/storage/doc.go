// Package storage provides item storage for the fake Exchange endpoint.
//
// Key types:
//
//   - ItemStore: interface for storing items by their ItemId
//   - InMemoryItemStore: thread-safe in-memory implementation
//   - FolderView: ItemStore limited to the items of one folder
//
// Items are kept as etree elements in wire form so the endpoint can render
// them into responses unchanged. Listing preserves insertion order, which is
// the order FindItem reports. Every read returns a deep copy.
package storage
