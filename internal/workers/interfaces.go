// Package workers runs background jobs of the gateway, such as the session
// janitor, for the lifetime of a context.
package workers

import "context"

// Worker is a background job. Run blocks until ctx is done.
type Worker interface {
	Run(ctx context.Context)
}
