// Package postgres provides PostgreSQL implementations of the persistence
// interfaces defined in the store package, plus the mapping from driver
// errors to store errors.
package postgres
