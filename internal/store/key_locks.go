package store

import (
	"hash/fnv"
	"sort"
	"sync"
)

const lockStripes = 64

// keyLocks is a striped mutex: ids hashing to different stripes never
// contend, writes to one id are serialized.
type keyLocks struct {
	stripes [lockStripes]sync.Mutex
}

func stripeOf(id string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(id))
	return int(h.Sum32() % lockStripes)
}

// lock acquires the stripes of ids in ascending order and returns the
// matching unlock function.
func (l *keyLocks) lock(ids ...string) func() {
	seen := make(map[int]struct{}, len(ids))
	stripes := make([]int, 0, len(ids))
	for _, id := range ids {
		s := stripeOf(id)
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		stripes = append(stripes, s)
	}
	sort.Ints(stripes)

	for _, s := range stripes {
		l.stripes[s].Lock()
	}

	return func() {
		for i := len(stripes) - 1; i >= 0; i-- {
			l.stripes[stripes[i]].Unlock()
		}
	}
}

// lockAll acquires every stripe.
func (l *keyLocks) lockAll() func() {
	for i := range l.stripes {
		l.stripes[i].Lock()
	}
	return func() {
		for i := len(l.stripes) - 1; i >= 0; i-- {
			l.stripes[i].Unlock()
		}
	}
}
