// Package testing provides test utilities for the hashring-coordinator
// library.
//
// It follows Go's convention of providing testing utilities in a dedicated
// package (similar to net/http/httptest).
//
// Example usage:
//
//	import (
//	    "testing"
//
//	    hashring "github.com/Thomblin/hashring-coordinator"
//	    hashringtest "github.com/Thomblin/hashring-coordinator/testing"
//	)
//
//	func TestMyComponent(t *testing.T) {
//	    ring := hashring.New[string](1, 100,
//	        hashring.WithLogger[string](hashringtest.NewTestLogger(t)))
//	    // ...
//	}
package testing
