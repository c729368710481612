// Package collision tracks hash chain lengths observed by a bucket table and
// detects when they pass the degenerate-distribution threshold.
package collision

// Tracker records the chain links walked by inserts into one table.
type Tracker struct {
	threshold int  // links per insert beyond which the distribution is degenerate
	maxChain  int  // longest chain walked so far
	events    int  // inserts that walked more than threshold links
	reported  bool // whether the first event has been handed to the caller
}

// NewTracker creates a tracker that flags inserts walking more than threshold links.
// A threshold of zero or less disables detection.
func NewTracker(threshold int) *Tracker {
	return &Tracker{threshold: threshold}
}

// Observe records that an insert walked chain links before finding its slot.
//
// It returns true exactly once per tracker lifetime (until Reset): on the
// first insert that walks more than the threshold. Later events are counted
// but not reported again, so callers can log without flooding.
func (t *Tracker) Observe(chain int) bool {
	if chain > t.maxChain {
		t.maxChain = chain
	}

	if t.threshold <= 0 || chain <= t.threshold {
		return false
	}

	t.events++
	if t.reported {
		return false
	}
	t.reported = true

	return true
}

// HasCollision reports whether any insert passed the threshold.
func (t *Tracker) HasCollision() bool {
	return t.events > 0
}

// Events returns the number of inserts that passed the threshold.
func (t *Tracker) Events() int {
	return t.events
}

// MaxChain returns the longest chain walked by a single insert.
func (t *Tracker) MaxChain() int {
	return t.maxChain
}

// Threshold returns the configured threshold.
func (t *Tracker) Threshold() int {
	return t.threshold
}

// Reset clears the recorded state but keeps the threshold.
func (t *Tracker) Reset() {
	t.maxChain = 0
	t.events = 0
	t.reported = false
}
