// Package storage defines the key/value contract behind the client's two
// stores and opens the configured backends.
//
// # Scopes
//
// The client keeps state in two stores with different lifetimes:
//
//   - durable: survives restarts (SQLite file, Postgres, an S3 bucket, or
//     memory for tests). Holds the "users" directory and the "theme"
//     preference.
//   - ephemeral: lives as long as one tab session (process memory, or Redis
//     keys scoped by tab id and expiring after a TTL). Holds "sessionEmail".
//
// # Contract
//
// Get returns (nil, nil) for a missing key. Delete of a missing key is not an
// error. Backends that can run a read-modify-write atomically also implement
// Updater; use the package-level Update to get that behaviour when available.
//
// Backends live in subpackages: memory, sqlite, postgres, redisstore, s3store.
package storage
