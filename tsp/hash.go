package tsp

import "hash/fnv"

// distanceModelHash computes a structural digest of dm's size and edge
// weights, used by both Transport implementations to confirm every worker
// is solving the same instance before a run starts (spec §4.5). FNV-64a is
// not cryptographic, which is fine here since the only adversary is a
// misconfigured worker, not a malicious one.
func distanceModelHash(dm *DistanceModel) uint64 {
	h := fnv.New64a()

	var buf [8]byte
	putInt64 := func(v int64) {
		for i := 0; i < 8; i++ {
			buf[i] = byte(v >> (8 * i))
		}
		h.Write(buf[:])
	}

	putInt64(int64(dm.N))
	for i := 0; i < dm.N; i++ {
		for j := 0; j < dm.N; j++ {
			putInt64(dm.At(i, j))
		}
	}

	return h.Sum64()
}
