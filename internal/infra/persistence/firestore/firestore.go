// Package firestore contains the concrete implementation of the persistence layer using Cloud Firestore.
package firestore

import (
	"context"

	"fitsaga/internal/domain/constants"
	"fitsaga/internal/errors"

	fs "cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// maxInValues is the Firestore limit on values in an 'in' filter.
const maxInValues = 30

func isNotFound(err error) bool {
	return status.Code(err) == codes.NotFound
}

func isAlreadyExists(err error) bool {
	return status.Code(err) == codes.AlreadyExists
}

// chunk splits values into consecutive slices of at most size elements.
func chunk[T any](values []T, size int) [][]T {
	if size <= 0 {
		size = len(values)
	}

	var chunks [][]T
	for start := 0; start < len(values); start += size {
		end := min(start+size, len(values))
		chunks = append(chunks, values[start:end])
	}

	return chunks
}

// batchWrite is a single write queued into a WriteBatch.
type batchWrite func(batch *fs.WriteBatch)

// commitWrites commits writes in batches of at most MaxBatchWrites, in order.
// It returns how many writes were committed before the first failure.
func commitWrites(ctx context.Context, client *fs.Client, writes []batchWrite) (int, error) {
	committed := 0
	for _, group := range chunk(writes, constants.MaxBatchWrites) {
		batch := client.Batch()
		for _, write := range group {
			write(batch)
		}
		if _, err := batch.Commit(ctx); err != nil {
			return committed, errors.Wrap(err, "failed to commit batch")
		}
		committed += len(group)
	}

	return committed, nil
}

// docRefs builds document references for ids in a collection.
func docRefs(col *fs.CollectionRef, ids []string) []*fs.DocumentRef {
	refs := make([]*fs.DocumentRef, 0, len(ids))
	for _, id := range ids {
		refs = append(refs, col.Doc(id))
	}

	return refs
}
