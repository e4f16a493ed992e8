// Package workers runs the background jobs of the game-stats services.
//
// A Worker blocks in Run until its context is cancelled. Workers runs several
// of them side by side.
package workers

import "context"

// Worker is a background job bound to a context.
//
// Implementations must return from Run once ctx is done.
//
//	type MyWorker struct{}
//
//	func (w *MyWorker) Run(ctx context.Context) {
//	    <-ctx.Done()
//	}
type Worker interface {
	Run(ctx context.Context)
}
