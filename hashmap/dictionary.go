package hashmap

import (
	"iter"

	"go.uber.org/zap"

	"github.com/arloliu/slotkit/errs"
	"github.com/arloliu/slotkit/internal/collision"
	"github.com/arloliu/slotkit/internal/hash"
	"github.com/arloliu/slotkit/internal/options"
	"github.com/arloliu/slotkit/primes"
	"github.com/arloliu/slotkit/union"
)

// startOfFreeList encodes free-list links in entry.next so that they never
// collide with chain links (which are >= -1).
const startOfFreeList = -3

type entry[K comparable, V any] struct {
	hashCode uint32
	// next is the index of the next entry in the chain, -1 at the end of the
	// chain, or startOfFreeList - (next free index) for a free entry.
	next  int32
	key   K
	value V
}

// Dictionary is a hash table from K to V sized with prime bucket counts.
type Dictionary[K comparable, V any] struct {
	buckets           []int32 // 1-based index into entries, 0 means empty
	entries           []entry[K, V]
	fastModMultiplier uint64
	count             int // high-water mark of used entries, including freed ones
	freeList          int
	freeCount         int
	resizes           int

	hasher  Hasher[K]
	logger  *zap.Logger
	tracker *collision.Tracker
}

// Stats describes the shape of a Dictionary.
type Stats struct {
	Len             int `yaml:"len"`
	Buckets         int `yaml:"buckets"`
	UsedBuckets     int `yaml:"used_buckets"`
	LongestChain    int `yaml:"longest_chain"`
	Resizes         int `yaml:"resizes"`
	CollisionEvents int `yaml:"collision_events"`
}

// New creates a Dictionary that hashes keys with hasher. A nil hasher selects
// ComparableHasher.
//
// Returns:
//   - *Dictionary[K, V]: Empty dictionary
//   - error: ErrInvalidCapacity if WithCapacity was given a negative value
func New[K comparable, V any](hasher Hasher[K], opts ...Option) (*Dictionary[K, V], error) {
	cfg := defaultConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	if hasher == nil {
		hasher = ComparableHasher[K]()
	}

	d := &Dictionary[K, V]{
		hasher:   hasher,
		logger:   cfg.logger,
		tracker:  collision.NewTracker(cfg.collisionThreshold),
		freeList: -1,
	}
	if cfg.capacity > 0 {
		d.initialize(cfg.capacity)
	}

	return d, nil
}

// NewUnionKeyed creates a Dictionary keyed by union cells of width W.
func NewUnionKeyed[W union.Width, V any](opts ...Option) (*Dictionary[union.Data[W], V], error) {
	return New[union.Data[W], V](UnionHasher[W], opts...)
}

func (d *Dictionary[K, V]) initialize(capacity int) int {
	size, err := primes.GetPrime(capacity)
	if err != nil {
		// capacity is validated by the callers
		panic(err)
	}

	d.buckets = make([]int32, size)
	d.entries = make([]entry[K, V], size)
	d.fastModMultiplier = primes.FastModMultiplier(uint32(size))
	d.freeList = -1

	return size
}

func (d *Dictionary[K, V]) bucketIndex(hashCode uint32) int {
	return int(primes.FastMod(hashCode, uint32(len(d.buckets)), d.fastModMultiplier))
}

// Len returns the number of entries.
func (d *Dictionary[K, V]) Len() int {
	return d.count - d.freeCount
}

// Cap returns the number of entries the dictionary holds before it resizes.
func (d *Dictionary[K, V]) Cap() int {
	return len(d.entries)
}

func (d *Dictionary[K, V]) find(key K) int {
	if d.buckets == nil {
		return -1
	}

	hashCode := hash.Fold32(d.hasher(key))
	for i := int(d.buckets[d.bucketIndex(hashCode)]) - 1; i >= 0; {
		e := &d.entries[i]
		if e.hashCode == hashCode && e.key == key {
			return i
		}
		i = int(e.next)
	}

	return -1
}

// Get returns the value stored for key.
func (d *Dictionary[K, V]) Get(key K) (V, bool) {
	if i := d.find(key); i >= 0 {
		return d.entries[i].value, true
	}

	var zero V

	return zero, false
}

// Contains reports whether key is present.
func (d *Dictionary[K, V]) Contains(key K) bool {
	return d.find(key) >= 0
}

// Set stores value for key and reports whether the key was newly added.
func (d *Dictionary[K, V]) Set(key K, value V) bool {
	if d.buckets == nil {
		d.initialize(0)
	}

	hashCode := hash.Fold32(d.hasher(key))
	bucket := d.bucketIndex(hashCode)

	chain := 0
	for i := int(d.buckets[bucket]) - 1; i >= 0; chain++ {
		e := &d.entries[i]
		if e.hashCode == hashCode && e.key == key {
			e.value = value
			return false
		}
		i = int(e.next)
	}

	var index int
	if d.freeCount > 0 {
		index = d.freeList
		d.freeList = startOfFreeList - int(d.entries[index].next)
		d.freeCount--
	} else {
		if d.count == len(d.entries) {
			d.resize(primes.ExpandPrime(d.count))
			bucket = d.bucketIndex(hashCode)
		}
		index = d.count
		d.count++
	}

	d.entries[index] = entry[K, V]{
		hashCode: hashCode,
		next:     d.buckets[bucket] - 1,
		key:      key,
		value:    value,
	}
	d.buckets[bucket] = int32(index + 1)

	if d.tracker.Observe(chain) {
		d.logger.Warn("hashmap: degenerate hash chain",
			zap.Int("chain", chain),
			zap.Int("threshold", d.tracker.Threshold()),
			zap.Int("len", d.Len()),
			zap.Int("buckets", len(d.buckets)))
	}

	return true
}

// Delete removes key and reports whether it was present.
func (d *Dictionary[K, V]) Delete(key K) bool {
	if d.buckets == nil {
		return false
	}

	hashCode := hash.Fold32(d.hasher(key))
	bucket := d.bucketIndex(hashCode)

	last := -1
	for i := int(d.buckets[bucket]) - 1; i >= 0; {
		e := &d.entries[i]
		if e.hashCode == hashCode && e.key == key {
			if last < 0 {
				d.buckets[bucket] = e.next + 1
			} else {
				d.entries[last].next = e.next
			}

			*e = entry[K, V]{next: int32(startOfFreeList - d.freeList)}
			d.freeList = i
			d.freeCount++

			return true
		}
		last = i
		i = int(e.next)
	}

	return false
}

// Clear removes all entries but keeps the allocated capacity.
func (d *Dictionary[K, V]) Clear() {
	if d.count == 0 {
		return
	}

	clear(d.buckets)
	clear(d.entries[:d.count])
	d.count = 0
	d.freeList = -1
	d.freeCount = 0
	d.tracker.Reset()
}

// All iterates over the entries in insertion order, except that keys added
// after a Delete may reuse the freed slot. Deleting the current key during
// iteration is safe; keys added during iteration may or may not be visited.
func (d *Dictionary[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for i := 0; i < d.count; i++ {
			e := &d.entries[i]
			if e.next < -1 {
				continue
			}
			if !yield(e.key, e.value) {
				return
			}
		}
	}
}

// EnsureCapacity grows the dictionary so it can hold capacity entries without
// resizing, and returns the resulting capacity.
//
// Returns:
//   - int: Capacity after the call
//   - error: ErrInvalidCapacity if capacity is negative
func (d *Dictionary[K, V]) EnsureCapacity(capacity int) (int, error) {
	if capacity < 0 {
		return 0, errs.ErrInvalidCapacity
	}

	if len(d.entries) >= capacity {
		return len(d.entries), nil
	}

	if d.buckets == nil {
		return d.initialize(capacity), nil
	}

	size, err := primes.GetPrime(capacity)
	if err != nil {
		return 0, err
	}
	d.resize(size)

	return size, nil
}

// TrimExcess shrinks the dictionary to the smallest prime size that holds
// its current entries, compacting away freed slots.
func (d *Dictionary[K, V]) TrimExcess() {
	n := d.Len()
	if n == 0 {
		*d = Dictionary[K, V]{
			hasher:   d.hasher,
			logger:   d.logger,
			tracker:  d.tracker,
			freeList: -1,
			resizes:  d.resizes,
		}
		d.tracker.Reset()

		return
	}

	size, err := primes.GetPrime(n)
	if err != nil || size >= len(d.entries) {
		return
	}

	old := d.entries[:d.count]
	oldSize := len(d.buckets)
	d.initialize(size)

	index := 0
	for i := range old {
		if old[i].next < -1 {
			continue
		}
		e := &d.entries[index]
		*e = old[i]
		bucket := d.bucketIndex(e.hashCode)
		e.next = d.buckets[bucket] - 1
		d.buckets[bucket] = int32(index + 1)
		index++
	}
	d.count = index
	d.freeCount = 0
	d.resizes++

	d.logger.Debug("hashmap: trimmed",
		zap.Int("old_size", oldSize),
		zap.Int("new_size", size),
		zap.Int("len", n))
}

func (d *Dictionary[K, V]) resize(newSize int) {
	oldSize := len(d.buckets)

	entries := make([]entry[K, V], newSize)
	copy(entries, d.entries[:d.count])

	d.buckets = make([]int32, newSize)
	d.fastModMultiplier = primes.FastModMultiplier(uint32(newSize))
	for i := 0; i < d.count; i++ {
		e := &entries[i]
		if e.next < -1 {
			continue
		}
		bucket := d.bucketIndex(e.hashCode)
		e.next = d.buckets[bucket] - 1
		d.buckets[bucket] = int32(i + 1)
	}
	d.entries = entries
	d.resizes++

	d.logger.Debug("hashmap: resized",
		zap.Int("old_size", oldSize),
		zap.Int("new_size", newSize),
		zap.Int("len", d.Len()))
}

// Stats reports the current shape of the dictionary.
func (d *Dictionary[K, V]) Stats() Stats {
	s := Stats{
		Len:             d.Len(),
		Buckets:         len(d.buckets),
		Resizes:         d.resizes,
		CollisionEvents: d.tracker.Events(),
	}
	for _, b := range d.buckets {
		if b == 0 {
			continue
		}
		s.UsedBuckets++

		chain := 0
		for i := int(b) - 1; i >= 0; i = int(d.entries[i].next) {
			chain++
		}
		s.LongestChain = max(s.LongestChain, chain)
	}

	return s
}
