package envelope

import "math/rand/v2"

// Prepare returns a randomly generated pair.
//
// One desirable slip is inserted at a uniform position into a pool of three
// ordinary slips. The four envelope slots are then filled by drawing from the
// pool without replacement, so the prize lands in each slot with probability
// 1/4 and the envelopes always split 2+2.
func Prepare(rng *rand.Rand) Pair {
	pool := make([]Slip, 3, 4)
	pool = insertAt(pool, rng.IntN(4), Slip{Desirable: true})

	var slots [4]Slip
	for i := range slots {
		slots[i], pool = removeAt(pool, rng.IntN(len(pool)))
	}

	return Pair{
		First:  Envelope{slots[0], slots[1]},
		Second: Envelope{slots[2], slots[3]},
	}
}

func insertAt(pool []Slip, i int, s Slip) []Slip {
	pool = append(pool, Slip{})
	copy(pool[i+1:], pool[i:])
	pool[i] = s
	return pool
}

func removeAt(pool []Slip, i int) (Slip, []Slip) {
	s := pool[i]
	return s, append(pool[:i], pool[i+1:]...)
}
