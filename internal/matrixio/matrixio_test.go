package matrixio_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hungarian/internal/matrixio"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name      string
		in        string
		problems  [][][]int
		algorithm string
		reducer   string
	}{
		{
			name:     "bare flow sequence",
			in:       "[[1, 2], [3, 4]]",
			problems: [][][]int{{{1, 2}, {3, 4}}},
		},
		{
			name:     "bare block sequence",
			in:       "- [1, 2, 3]\n- [4, 5, 6]\n",
			problems: [][][]int{{{1, 2, 3}, {4, 5, 6}}},
		},
		{
			name:      "document",
			in:        "# comment\ncosts:\n  - [7]\nalgorithm: munkres-padded\nreducer: rows\n",
			problems:  [][][]int{{{7}}},
			algorithm: "munkres-padded",
			reducer:   "rows",
		},
		{
			name:     "json document",
			in:       `{"costs": [[5, 1, 3]]}`,
			problems: [][][]int{{{5, 1, 3}}},
		},
		{
			name:     "batch",
			in:       "problems:\n  - [[4, 1], [2, 3]]\n  - [[7]]\n",
			problems: [][][]int{{{4, 1}, {2, 3}}, {{7}}},
		},
		{
			name:     "document marker",
			in:       "---\n[[1]]\n",
			problems: [][][]int{{{1}}},
		},
		{
			name:     "ragged rows pass through",
			in:       "[[1, 2], [3]]",
			problems: [][][]int{{{1, 2}, {3}}},
		},
		{
			name:     "negative cells pass through",
			in:       "[[1, -2]]",
			problems: [][][]int{{{1, -2}}},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			in, err := matrixio.Parse([]byte(tc.in))
			require.NoError(t, err)
			assert.Equal(t, tc.problems, in.Problems)
			assert.Equal(t, tc.algorithm, in.Algorithm)
			assert.Equal(t, tc.reducer, in.Reducer)
		})
	}
}

func TestParse_Errors(t *testing.T) {
	for _, in := range []string{"", "   \n", "# only a comment\n", "[]", "costs: []\n", "algorithm: munkres\n"} {
		_, err := matrixio.Parse([]byte(in))
		assert.ErrorIs(t, err, matrixio.ErrEmpty, "input %q", in)
	}

	_, err := matrixio.Parse([]byte("costs: [[1]]\nproblems: [[[1]]]\n"))
	assert.ErrorIs(t, err, matrixio.ErrAmbiguous)

	for _, in := range []string{"[[a, b]]", "costs: [[1]]\nweights: [1]\n", "costs: nope\n"} {
		_, err := matrixio.Parse([]byte(in))
		assert.Error(t, err, "input %q", in)
	}
}

func TestLoad(t *testing.T) {
	in, err := matrixio.Load("testdata/simple.yaml", nil)
	require.NoError(t, err)
	assert.Equal(t, [][][]int{{{2500, 4000, 3500}, {4000, 6000, 3500}, {2000, 4000, 2500}}}, in.Problems)

	in, err = matrixio.Load("testdata/bare.json", nil)
	require.NoError(t, err)
	require.Len(t, in.Problems, 1)
	assert.Len(t, in.Problems[0], 5)

	in, err = matrixio.Load("-", strings.NewReader("[[3]]"))
	require.NoError(t, err)
	assert.Equal(t, [][][]int{{{3}}}, in.Problems)

	_, err = matrixio.Load("testdata/missing.yaml", nil)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "testdata/missing.yaml")
}
