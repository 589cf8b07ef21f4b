// Package store defines the persistence contracts of the platform.
//
// Every entity store satisfies the generic Mapper capability (find by key,
// find all, delete by key) and adds its own lookups and partial-update
// operations. Implementations live in internal/platform/postgres; callers
// depend only on these interfaces and on the sentinel errors in errors.go.
package store
