// Package registry holds the visitor list for a single run.
//
// The Registry is an ordered, append-only collection: entries keep their
// insertion order, nothing is ever removed, and lookups return the first
// entry whose normalized name matches. Names are not required to be unique.
//
// A Registry is owned by exactly one goroutine (the App's main loop) and is
// not safe for concurrent use.
package registry
