package main

import (
	"math/rand"

	"github.com/openslot/slotmap"
)

// mix gives the relative weights of reads (R), inserts (I), deletes (D), and
// updates (U), per §6; each operation is drawn with probability
// weight/total, where total is 100 for every mix except EXH (198).
type mix struct {
	name    string
	reads   int
	inserts int
	deletes int
	updates int
}

var mixes = []mix{
	{name: "RH", reads: 98, inserts: 1, deletes: 1, updates: 0},
	{name: "EX", reads: 10, inserts: 40, deletes: 40, updates: 10},
	{name: "EXH", reads: 1, inserts: 98, deletes: 98, updates: 1},
	{name: "RG", reads: 5, inserts: 80, deletes: 5, updates: 10},
}

// opKind is the operation a single step of a generated workload performs.
type opKind uint8

const (
	opRead opKind = iota
	opInsert
	opDelete
	opUpdate
)

// generateOps expands a mix into a concrete sequence of n operation kinds,
// each drawn at random in the mix's proportions. It picks no keys:
// runSlotmap and runBuiltin insert fresh sequential keys and read, delete,
// and update keys they know to be present.
func generateOps(m mix, n int, rng *rand.Rand) []opKind {
	total := m.reads + m.inserts + m.deletes + m.updates
	ops := make([]opKind, n)
	for i := range ops {
		roll := rng.Intn(total)
		switch {
		case roll < m.reads:
			ops[i] = opRead
		case roll < m.reads+m.inserts:
			ops[i] = opInsert
		case roll < m.reads+m.inserts+m.deletes:
			ops[i] = opDelete
		default:
			ops[i] = opUpdate
		}
	}
	return ops
}

// runSlotmap executes ops against a slotmap.Map[uint64, uint64], keeping a
// rolling set of keys known to be present so that reads/deletes/updates act
// on real entries rather than guaranteed misses.
func runSlotmap(ops []opKind, rng *rand.Rand) {
	m := slotmap.New[uint64, uint64]()
	defer m.Close()

	var present []uint64
	var nextKey uint64

	for _, op := range ops {
		switch op {
		case opInsert:
			k := nextKey
			nextKey++
			_ = m.Put(k, k)
			present = append(present, k)
		case opRead:
			if len(present) == 0 {
				m.Get(nextKey)
				continue
			}
			k := present[rng.Intn(len(present))]
			m.Get(k)
		case opDelete:
			if len(present) == 0 {
				continue
			}
			i := rng.Intn(len(present))
			k := present[i]
			m.Remove(k)
			present[i] = present[len(present)-1]
			present = present[:len(present)-1]
		case opUpdate:
			if len(present) == 0 {
				continue
			}
			k := present[rng.Intn(len(present))]
			m.Update(k, k+1)
		}
	}
}

// runBuiltin executes the same ops against Go's builtin map, for comparison.
func runBuiltin(ops []opKind, rng *rand.Rand) {
	m := make(map[uint64]uint64)

	var present []uint64
	var nextKey uint64

	for _, op := range ops {
		switch op {
		case opInsert:
			k := nextKey
			nextKey++
			m[k] = k
			present = append(present, k)
		case opRead:
			if len(present) == 0 {
				_ = m[nextKey]
				continue
			}
			k := present[rng.Intn(len(present))]
			_ = m[k]
		case opDelete:
			if len(present) == 0 {
				continue
			}
			i := rng.Intn(len(present))
			k := present[i]
			delete(m, k)
			present[i] = present[len(present)-1]
			present = present[:len(present)-1]
		case opUpdate:
			if len(present) == 0 {
				continue
			}
			k := present[rng.Intn(len(present))]
			m[k] = k + 1
		}
	}
}
