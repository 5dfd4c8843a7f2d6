// Package envelope models the two-envelope puzzle: two envelopes holding two
// slips each, exactly one of the four slips desirable.
//
// A round proceeds as pick, peek, decide, check:
//
//	pair := envelope.Prepare(rng)
//	round, err := envelope.Play(rng, envelope.Reactive, pair)
//
// Every function that consumes randomness takes an explicit *rand.Rand so
// callers control seeding and can give each worker its own stream.
package envelope
