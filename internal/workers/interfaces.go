// Package workers runs the background work of the sync client: the periodic
// full sync and the live-update subscription.
package workers

import "context"

// Worker is a background process that runs until ctx is done.
//
// Run must return once ctx is cancelled and every goroutine it started has
// exited.
type Worker interface {
	Run(ctx context.Context)
}
