// Package store provides a SQLite-backed cache of finished conversions.
//
// Each row holds the canonical serialized document produced for one input
// key, the content hash of the raw tree together with every option that
// influences the output (see ir.InputKey). Equal keys always map to
// byte-identical documents, so a stored row never needs invalidation.
//
// # Patterns
//
//   - Idempotent writes: INSERT ... ON CONFLICT(key) DO NOTHING
//   - Logical ordering: rows carry a seq counter, never timestamps
//   - Deterministic reads: ORDER BY seq ASC, key ASC COLLATE BINARY
//
// # Database Configuration
//
//   - WAL mode: Concurrent reads during writes
//   - synchronous=NORMAL: Balance durability/performance
//   - busy_timeout=5000: Wait for locks up to 5 seconds
package store
