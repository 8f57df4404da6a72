// Package storage defines the artifact store capability: ownership of
// generated document blobs and their lifecycle metadata (unique addressing,
// expiry, download accounting, idempotent deletion). The in-memory
// implementation lives in the memstore subpackage; any backing medium that
// honours the per-identifier serialization and idempotent-delete contract can
// stand in for it.
package storage
