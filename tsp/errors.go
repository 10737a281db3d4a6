package tsp

import "errors"

// Sentinel errors for the tsp package. Matches the teacher's convention
// (tsp/types.go, tsp/validate.go in katalvlaran/lvlath) of exposing only
// sentinel errors from a single file, checked with errors.Is — no ad-hoc
// fmt.Errorf where a sentinel already names the condition.
var (
	// ErrMalformedMatrix is returned when the supplied integer count matches
	// neither the full-matrix (N*N) nor the lower-triangle (N*(N-1)/2) shape.
	ErrMalformedMatrix = errors.New("tsp: malformed distance matrix")

	// ErrSizeOutOfRange is returned when N is outside [1, 18].
	ErrSizeOutOfRange = errors.New("tsp: instance size out of range [1, 18]")

	// ErrNegativeWeight is returned when a supplied distance is negative.
	ErrNegativeWeight = errors.New("tsp: negative distance")

	// ErrResourceExhausted is returned when the DFS explicit stack would grow
	// past a configured ceiling. Fatal: aborts the whole computation.
	ErrResourceExhausted = errors.New("tsp: dfs stack exhausted")

	// ErrNoSolution names the outcome of a search that completes without
	// discovering any complete tour. Run does not return it: it reports that
	// outcome as a Solution with Found == false and a nil error.
	ErrNoSolution = errors.New("tsp: no solution found")

	// ErrInvalidSeed names a seed Task that violates the depth >= 2 or
	// mask/depth/path invariants of §3. No function in this package returns
	// it: RunDFS does not validate its seeds.
	ErrInvalidSeed = errors.New("tsp: invalid seed task")

	// ErrTransportMismatch is returned by Transport.VerifyInstance when
	// workers disagree on the Distance Model (e.g. a RedisTransport hash
	// mismatch).
	ErrTransportMismatch = errors.New("tsp: workers disagree on distance model")
)
