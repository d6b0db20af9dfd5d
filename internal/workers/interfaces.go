// Package workers runs the archive server's background jobs.
// It defines the Worker interface and a Workers aggregate that starts every
// worker with one call.
package workers

import "context"

// Worker is a background job. Run starts it and returns immediately; the
// job stops when ctx is cancelled.
//
// Example implementation:
//
//	type MyWorker struct{}
//
//	func (w *MyWorker) Run(ctx context.Context) {
//	    go func() { <-ctx.Done() }()
//	}
type Worker interface {
	Run(ctx context.Context)
}
