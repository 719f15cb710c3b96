// Package concurrency implements a channel based resource manager to
// run tasks concurrently over a pool of shared resources.
package concurrency

import (
	"sync"
)

// ResourceManager stores a pool of resources (e.g. scratch buffers for
// polynomial transforms) handed out to concurrently running tasks, and
// collects the errors they return.
type ResourceManager[T any] struct {
	sync.WaitGroup
	Resources chan T
	Errors    chan error
}

// NewResourceManager instantiates a new [ResourceManager] over the
// provided resources.
func NewResourceManager[T any](resources []T) *ResourceManager[T] {
	pool := make(chan T, len(resources))
	for i := range resources {
		pool <- resources[i]
	}
	return &ResourceManager[T]{
		Resources: pool,
		Errors:    make(chan error, len(resources)),
	}
}

// Task is a function operating on a resource checked out of the pool
// for the duration of the call.
type Task[T any] func(resource T) (err error)

// Run schedules f on its own goroutine. The call blocks until a
// resource is available. If an error has already been recorded,
// f is not run.
func (r *ResourceManager[T]) Run(f Task[T]) {
	r.Add(1)
	go func() {
		defer r.Done()
		if len(r.Errors) != 0 {
			return
		}
		resource := <-r.Resources
		if err := f(resource); err != nil {
			if len(r.Errors) < cap(r.Errors) {
				r.Errors <- err
			}
		}
		r.Resources <- resource
	}()
}

// Wait blocks until all scheduled tasks have returned and reports the
// first recorded error, if any.
func (r *ResourceManager[T]) Wait() (err error) {
	if len(r.Errors) == 0 {
		r.WaitGroup.Wait()
	}

	if len(r.Errors) != 0 {
		return <-r.Errors
	}

	return
}
