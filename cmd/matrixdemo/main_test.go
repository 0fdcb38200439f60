package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvtensor/matrix"
)

func TestRunPrintsFiveMatrices(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, run(&buf, config{seed: 42, rows: 3, cols: 2}))

	out := buf.String()
	require.Equal(t, 4, strings.Count(out, "Matrix size: (3, 2)\n")) // a, b, c, e
	require.Equal(t, 1, strings.Count(out, "Matrix size: (3, 3)\n")) // d = a × bᵀ
	require.Contains(t, out, "[   1.0000   1.0000 ]\n")                // b is all ones
}

func TestRunIsDeterministicPerSeed(t *testing.T) {
	var first, second, other bytes.Buffer
	require.NoError(t, run(&first, config{seed: 9, rows: 2, cols: 4}))
	require.NoError(t, run(&second, config{seed: 9, rows: 2, cols: 4}))
	require.NoError(t, run(&other, config{seed: 10, rows: 2, cols: 4}))

	require.Equal(t, first.String(), second.String())
	require.NotEqual(t, first.String(), other.String())
}

func TestRunRejectsInvalidShape(t *testing.T) {
	var buf bytes.Buffer
	err := run(&buf, config{seed: 1, rows: 0, cols: 2})
	require.ErrorIs(t, err, matrix.ErrInvalidShape)
	require.Empty(t, buf.String())
}
