package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coldbrew-labs/tspbb/tsp"
)

func writeTempInstance(t *testing.T, contents string) string {
	t.Helper()
	dir := t.TempDir()
	p := filepath.Join(dir, "instance.txt")
	require.NoError(t, os.WriteFile(p, []byte(contents), 0o644))

	return p
}

func TestExecute_SolveSuccess_PrintsOptimalTour(t *testing.T) {
	p := writeTempInstance(t, "3\n0 1 2\n1 0 3\n2 3 0\n")

	var stdout, stderr bytes.Buffer
	code := Execute([]string{"solve", p, "--workers", "1", "--threads", "1"}, &stdout, &stderr)

	assert.Equal(t, ExitSuccess, code)
	assert.Contains(t, stdout.String(), "Optimal tour cost:")
	assert.Contains(t, stdout.String(), "Optimal path: 0")
}

func TestExecute_WrongArgCount_IsUsageError(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := Execute([]string{"solve"}, &stdout, &stderr)

	assert.Equal(t, ExitUsageError, code)
	assert.Empty(t, stdout.String())
}

func TestExecute_UnreadableFile_IsUsageError(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := Execute([]string{"solve", "/no/such/file.txt"}, &stdout, &stderr)

	assert.Equal(t, ExitUsageError, code)
}

func TestExecute_MalformedMatrix_ExitsThree(t *testing.T) {
	p := writeTempInstance(t, "3\n0 1\n")

	var stdout, stderr bytes.Buffer
	code := Execute([]string{"solve", p}, &stdout, &stderr)

	assert.Equal(t, ExitMalformedMatrix, code)
}

func TestExitCodeFor(t *testing.T) {
	assert.Equal(t, ExitUsageError, exitCodeFor(newUsageError("bad args")))
	assert.Equal(t, ExitMalformedMatrix, exitCodeFor(tsp.ErrMalformedMatrix))
	assert.Equal(t, ExitMalformedMatrix, exitCodeFor(tsp.ErrSizeOutOfRange))
	assert.Equal(t, ExitResourceExhausted, exitCodeFor(tsp.ErrResourceExhausted))
	assert.Equal(t, exitUnexpected, exitCodeFor(tsp.ErrNoSolution))
}

func TestFormatPath(t *testing.T) {
	assert.Equal(t, "0 2 1 0", formatPath([]int{0, 2, 1, 0}))
}

func TestParseBoundScheme(t *testing.T) {
	s, err := parseBoundScheme("minedge")
	require.NoError(t, err)
	assert.Equal(t, tsp.SchemeMinEdge, s)

	s, err = parseBoundScheme("twoedge")
	require.NoError(t, err)
	assert.Equal(t, tsp.SchemeTwoEdgeAvg, s)

	_, err = parseBoundScheme("bogus")
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "bogus"))
}
