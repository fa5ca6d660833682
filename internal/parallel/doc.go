// Package parallel runs independent work items on a fixed set of
// goroutines. It backs row-band rendering of gradient previews.
package parallel
