// Package mocks provides mock implementations of the store and service
// interfaces for testing. Each mock carries function fields for per-test
// behavior overrides plus a simple in-memory default implementation.
package mocks
