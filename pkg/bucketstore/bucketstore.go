package bucketstore

import (
	"errors"
	"sync"
	"time"

	"github.com/lakeward/discordhook/pkg/limiter"
)

// ErrNoSuchBucket is when a Bucket was requested that does not exist.
// Use CreateWaitForBucket to create a bucket if it does not exist.
var ErrNoSuchBucket = errors.New("bucket does not exist, use CreateWaitForBucket instead")

// BucketStore is used for managing various limiters by name.
type BucketStore struct {
	Buckets   map[string]*limiter.DurationLimiter
	BucketsMu sync.RWMutex
}

// NewBucketStore creates a new Buckets map to store different limits.
func NewBucketStore() *BucketStore {
	return &BucketStore{
		Buckets: make(map[string]*limiter.DurationLimiter),
	}
}

// CreateBucket will create a new bucket or overwrite an existing one.
func (bs *BucketStore) CreateBucket(name string, limit int32, duration time.Duration) *limiter.DurationLimiter {
	bucket := limiter.NewDurationLimiter(limit, duration)

	bs.BucketsMu.Lock()
	bs.Buckets[name] = bucket
	bs.BucketsMu.Unlock()

	return bucket
}

// WaitForBucket will wait for a named bucket to be ready.
func (bs *BucketStore) WaitForBucket(name string) error {
	bs.BucketsMu.RLock()
	bucket, exists := bs.Buckets[name]
	bs.BucketsMu.RUnlock()

	if !exists {
		return ErrNoSuchBucket
	}

	bucket.Lock()

	return nil
}

// CreateWaitForBucket will create a bucket if it does not exist and then
// wait for it.
func (bs *BucketStore) CreateWaitForBucket(name string, limit int32, duration time.Duration) error {
	bs.BucketsMu.RLock()
	bucket, exists := bs.Buckets[name]
	bs.BucketsMu.RUnlock()

	if !exists {
		bucket = bs.CreateBucket(name, limit, duration)
	}

	bucket.Lock()

	return nil
}
