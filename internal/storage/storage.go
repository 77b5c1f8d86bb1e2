// ABOUTME: ObjectStore abstraction over the document object storage backend
// ABOUTME: Implemented by S3Store for production and FSStore for local use
package storage

import (
	"context"
	"io"
)

// ObjectStore is the minimal object storage contract the service needs:
// list keys under a prefix, fetch an object, and store an object.
type ObjectStore interface {
	// List returns all object keys under prefix, in lexical order.
	List(ctx context.Context, prefix string) ([]string, error)
	// Get returns the full contents of the object at key.
	Get(ctx context.Context, key string) ([]byte, error)
	// Put stores body at key and returns a URL for the stored object.
	Put(ctx context.Context, key string, body io.Reader) (string, error)
}
