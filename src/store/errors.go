package store

import "fmt"

// FetchError reports a failed dataset retrieval: transport/open failure or a
// non-success HTTP status. It is terminal for the load sequence and never
// retried.
type FetchError struct {
	Source string
	Status int
	Err    error
}

func (e *FetchError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("fetch %s: status %d", e.Source, e.Status)
	}
	return fmt.Sprintf("fetch %s: %v", e.Source, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }
