// Package mocks provides hand-written test doubles for the store and auth
// interfaces. Each mock exposes function fields to override behavior per
// test, with a map-backed default implementation.
package mocks
