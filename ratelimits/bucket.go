package ratelimits

import (
	"errors"
	"sync"
	"time"
)

const (
	// How many keys a bucket may contain when created
	BUCKET_INITIAL_FILL = 8

	// The maximum amount of keys a callsign may possess
	BUCKET_UPPER_BOUND = 16

	// How often new keys drip into the buckets
	DROP_INTERVAL = 30 * time.Second

	// How many keys may drop at a time
	DROP_SIZE = 1
)

var ErrNoKeysLeft = errors.New("no keys left")

// Global pointer to a container instance
var Container = &BucketContainer{}

// Container struct to lock the bucket map
type BucketContainer struct {
	sync.RWMutex

	// Maps callsigns to key-counts
	buckets map[string]int8
}

// Init allocates the map and refills the buckets until stop is closed.
func (b *BucketContainer) Init(stop <-chan struct{}) {
	b.Lock()
	b.buckets = make(map[string]int8)
	b.Unlock()

	go b.Refiller(stop)
}

// Refiller refills the buckets every DROP_INTERVAL
func (b *BucketContainer) Refiller(stop <-chan struct{}) {
	ticker := time.NewTicker(DROP_INTERVAL)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			b.Refill()
		}
	}
}

// Refill drips DROP_SIZE keys into every bucket below the upper bound
func (b *BucketContainer) Refill() {
	b.Lock()
	defer b.Unlock()

	for callsign, keys := range b.buckets {
		if keys < BUCKET_UPPER_BOUND {
			b.buckets[callsign] += DROP_SIZE
		}
	}
}

// CreateBucketIfNotExists creates a full bucket for unseen callsigns
func (b *BucketContainer) CreateBucketIfNotExists(callsign string) {
	b.Lock()
	defer b.Unlock()

	if b.buckets == nil {
		b.buckets = make(map[string]int8)
	}
	if _, ok := b.buckets[callsign]; !ok {
		b.buckets[callsign] = BUCKET_INITIAL_FILL
	}
}

// Drains $amount from $callsign if it has enough keys left
func (b *BucketContainer) Drain(amount int8, callsign string) error {
	b.CreateBucketIfNotExists(callsign)

	b.Lock()
	defer b.Unlock()

	if amount > b.buckets[callsign] {
		return ErrNoKeysLeft
	}
	b.buckets[callsign] -= amount

	return nil
}

// HasKeys checks if the callsign still has keys
func (b *BucketContainer) HasKeys(callsign string) bool {
	b.CreateBucketIfNotExists(callsign)

	b.RLock()
	defer b.RUnlock()

	return b.buckets[callsign] > 0
}

func (b *BucketContainer) Get(callsign string) int8 {
	b.RLock()
	defer b.RUnlock()

	return b.buckets[callsign]
}

func (b *BucketContainer) Set(callsign string, value int8) {
	b.CreateBucketIfNotExists(callsign)

	b.Lock()
	b.buckets[callsign] = value
	b.Unlock()
}
