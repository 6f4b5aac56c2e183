// Package screen implements the per-screen controllers that sit between a
// presentation layer (terminal UI, CLI command, HTTP handler) and the
// catalog repository.
//
// Each controller owns a Holder whose snapshot is replaced wholesale on
// every change. Presentation code reads Snapshot() or ranges over a
// Subscribe() channel and invokes operations in response to user actions.
// Operations block until the network call completes and are safe for
// concurrent use. Close cancels the controller's scope; in-flight results
// are then discarded.
package screen
