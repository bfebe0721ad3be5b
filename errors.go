package longmap

import "github.com/cockroachdb/errors"

var (
	// ErrBucketUninitialized is returned by Get and Remove when no key has
	// ever been stored in the bucket the key maps to.
	ErrBucketUninitialized = errors.New("bucket not initialized")

	// ErrValueNotFound is returned by Get when the key's bucket exists but
	// holds no entry for the key.
	ErrValueNotFound = errors.New("value not found by this key")
)

func bucketUninitialized(key int64, idx uint64) error {
	return errors.Wrapf(ErrBucketUninitialized, "key %d, bucket %d", key, idx)
}

func valueNotFound(key int64, idx uint64) error {
	return errors.Wrapf(ErrValueNotFound, "key %d, bucket %d", key, idx)
}
