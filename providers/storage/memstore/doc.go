// Package memstore provides the in-memory [storage.Store] implementation.
// Locking is fine-grained: a store-level RWMutex guards only the identifier
// index, while every artifact's metadata, blob, and download counter live
// behind a per-entry mutex. Two downloads of the same artifact serialize on
// that entry; operations on different artifacts proceed in parallel.
package memstore
