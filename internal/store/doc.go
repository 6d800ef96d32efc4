// Package store defines the persistence interfaces for the volcano API and
// the sentinel errors shared by all store implementations. Concrete
// implementations live under internal/platform.
package store
