// Package catalog stores snapshots of the function registry in SQLite.
//
// Each export records the introspection listing of a registry: one row per
// registered key, aliases included, in registration order. Exports are
// identified by a UUIDv7 and never modified after they are written.
//
// # Deterministic Query Results
//
//   - Rows carry a logical seq (registration position), never a timestamp
//   - All queries order by seq ASC
//   - Filters are bound as parameters, never interpolated into SQL
//
// # Database Configuration
//
//   - WAL mode: Concurrent reads during writes
//   - synchronous=NORMAL: Balance durability/performance
//   - busy_timeout=5000: Wait for locks up to 5 seconds
//   - foreign_keys=ON: Enforce referential integrity
package catalog
