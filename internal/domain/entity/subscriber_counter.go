package entity

import "time"

// DeltaKind identifies where a local count change came from.
type DeltaKind string

const (
	// DeltaLike comes from the heart button. The server never confirms it.
	DeltaLike DeltaKind = "like"
	// DeltaSubscribe comes from a subscription the server accepted.
	DeltaSubscribe DeltaKind = "subscribe"
)

// CountDelta is a local change not yet reflected in a server load.
type CountDelta struct {
	Kind       DeltaKind `json:"kind"`
	Amount     int       `json:"amount"`
	Subscriber string    `json:"subscriber,omitempty"`
	At         time.Time `json:"at"`
}

type subscriberCount struct {
	base    int
	pending []CountDelta
}

func (c *subscriberCount) value() int {
	total := c.base
	for _, d := range c.pending {
		total += d.Amount
	}
	return total
}

// SubscriberCounter keeps a per-doctor count as a server-derived base plus
// pending local deltas. It is not safe for concurrent use; callers lock.
type SubscriberCounter struct {
	counts map[string]*subscriberCount
	now    func() time.Time
}

func NewSubscriberCounter() *SubscriberCounter {
	return &SubscriberCounter{
		counts: make(map[string]*subscriberCount),
		now:    time.Now,
	}
}

// Seed rebuilds the counter from a fresh doctor load.
//
// Every base is replaced by len(subscribers). Like deltas are dropped since the
// load supersedes them. A subscribe delta survives only while the fresh record
// does not yet list its subscriber. Keys absent from the load are removed.
// An empty load is ignored.
func (c *SubscriberCounter) Seed(doctors []DoctorRecord) {
	if len(doctors) == 0 {
		return
	}

	next := make(map[string]*subscriberCount, len(doctors))
	for i := range doctors {
		doctor := &doctors[i]
		entry := &subscriberCount{base: doctor.SubscriberCount()}

		if prev, ok := c.counts[doctor.Email]; ok {
			for _, d := range prev.pending {
				if d.Kind == DeltaSubscribe && !doctor.HasSubscriber(d.Subscriber) {
					entry.pending = append(entry.pending, d)
				}
			}
		}
		next[doctor.Email] = entry
	}
	c.counts = next
}

// Like adds one to key and returns the new count. Unknown keys start at 0.
func (c *SubscriberCounter) Like(key string) int {
	return c.add(key, CountDelta{Kind: DeltaLike, Amount: 1, At: c.now()})
}

// RecordSubscribe adds one to key on behalf of subscriber.
func (c *SubscriberCounter) RecordSubscribe(key, subscriber string) int {
	return c.add(key, CountDelta{Kind: DeltaSubscribe, Amount: 1, Subscriber: subscriber, At: c.now()})
}

func (c *SubscriberCounter) add(key string, delta CountDelta) int {
	entry, ok := c.counts[key]
	if !ok {
		entry = &subscriberCount{}
		c.counts[key] = entry
	}
	entry.pending = append(entry.pending, delta)
	return entry.value()
}

// Count returns the displayed count for key.
func (c *SubscriberCounter) Count(key string) (int, bool) {
	entry, ok := c.counts[key]
	if !ok {
		return 0, false
	}
	return entry.value(), true
}

// Pending returns a copy of the unconfirmed deltas for key.
func (c *SubscriberCounter) Pending(key string) []CountDelta {
	entry, ok := c.counts[key]
	if !ok || len(entry.pending) == 0 {
		return nil
	}
	out := make([]CountDelta, len(entry.pending))
	copy(out, entry.pending)
	return out
}

// Snapshot returns the displayed count of every key.
func (c *SubscriberCounter) Snapshot() map[string]int {
	out := make(map[string]int, len(c.counts))
	for k, entry := range c.counts {
		out[k] = entry.value()
	}
	return out
}

func (c *SubscriberCounter) Len() int {
	return len(c.counts)
}
