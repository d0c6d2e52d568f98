package parser

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseString_CSRStructure(t *testing.T) {
	input := "1 2:2.5 10:-5.2 15:1.5\n2 5:1.0 12:-3\n3 20:27\n"

	raw, err := ParseString(context.Background(), input, Options{})
	require.NoError(t, err)

	assert.Equal(t, 3, raw.NumRows())
	assert.Equal(t, 6, raw.NNZ())
	assert.Equal(t, []uint64{0, 3, 5, 6}, raw.Indptr)
	assert.Equal(t, []float64{1, 2, 3}, raw.Labels)

	// Indices are raw, in source order, with no base normalization.
	assert.Equal(t, []uint64{2, 10, 15, 5, 12, 20}, raw.Indices)
	assert.Equal(t, []float64{2.5, -5.2, 1.5, 1.0, -3, 27}, raw.Data)

	assert.Equal(t, uint64(2), raw.Columns.Minimum())
	assert.Equal(t, uint64(20), raw.Columns.Maximum())

	assert.Empty(t, raw.QueryIDs)
	assert.Empty(t, raw.Comments)
}

func TestParseString_QIDAndComments(t *testing.T) {
	input := strings.Join([]string{
		"1 qid:1 2:2.5 10:-5.2 15:1.5 # an inline comment",
		"2 qid:37 5:1.0 12:-3",
		"3 qid:12 20:27",
	}, "\n")

	raw, err := ParseString(context.Background(), input, Options{Comments: true})
	require.NoError(t, err)

	assert.Equal(t, []uint64{1, 37, 12}, raw.QueryIDs)
	assert.Equal(t, []string{" an inline comment", "", ""}, raw.Comments)
	assert.Equal(t, []uint64{0, 3, 5, 6}, raw.Indptr)
}

func TestParseString_QIDOnSomeRows(t *testing.T) {
	// Uniformity is not enforced; rows without a qid hold the 0 sentinel.
	raw, err := ParseString(context.Background(), "1 qid:7 1:1\n2 2:1\n", Options{})
	require.NoError(t, err)
	assert.Equal(t, []uint64{7, 0}, raw.QueryIDs)
}

func TestParseString_BlankLinesSkipped(t *testing.T) {
	with := "1 1:1\n\n   \n2 2:1\n# trailing note\n3 3:1\n"
	without := "1 1:1\n2 2:1\n3 3:1\n"

	a, err := ParseString(context.Background(), with, Options{})
	require.NoError(t, err)
	b, err := ParseString(context.Background(), without, Options{})
	require.NoError(t, err)

	assert.Equal(t, b.Indptr, a.Indptr)
	assert.Equal(t, b.Indices, a.Indices)
	assert.Equal(t, b.Data, a.Data)
	assert.Equal(t, b.Labels, a.Labels)
}

func TestParseString_EmptyInput(t *testing.T) {
	raw, err := ParseString(context.Background(), "", Options{})
	require.NoError(t, err)
	assert.Equal(t, 0, raw.NumRows())
	assert.Equal(t, []uint64{0}, raw.Indptr)
	assert.True(t, raw.Columns.IsEmpty())
}

func TestParseString_RowWithoutFeatures(t *testing.T) {
	raw, err := ParseString(context.Background(), "5\n-1 1:2\n", Options{})
	require.NoError(t, err)
	assert.Equal(t, []uint64{0, 0, 1}, raw.Indptr)
	assert.Equal(t, []float64{5, -1}, raw.Labels)
}

func TestParseString_Malformed(t *testing.T) {
	tests := []struct {
		name  string
		input string
		line  int
		token string
	}{
		{"missing value", "1 1:1\n2 2:1\n3 20\n", 3, "20"},
		{"bad label", "abc 1:1\n", 1, "abc"},
		{"bad qid", "1 qid:x 1:1\n", 1, "qid:x"},
		{"bad index", "1 1:1\n2 x:1\n", 2, "x:1"},
		{"bad value", "2 2:abc\n", 1, "2:abc"},
		{"negative index", "1 -3:1\n", 1, "-3:1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw, err := ParseString(context.Background(), tt.input, Options{})
			require.Error(t, err)
			assert.Nil(t, raw)

			var pe *ParseError
			require.ErrorAs(t, err, &pe)
			assert.Equal(t, tt.line, pe.Line)
			assert.Equal(t, tt.token, pe.Token)
			assert.NotEmpty(t, pe.Text)
		})
	}
}

func TestParseString_ErrorLineCountsBlankLines(t *testing.T) {
	// Physical line numbers, so the bad line is 4 even though only one
	// row was parsed before it.
	_, err := ParseString(context.Background(), "1 1:1\n\n# note\n3 20\n", Options{})
	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, 4, pe.Line)
}

func TestParseFile(t *testing.T) {
	t.Run("round file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "train.txt")
		require.NoError(t, os.WriteFile(path, []byte("1 2:2.5\n2 5:1.0\n"), 0644))

		raw, err := ParseFile(context.Background(), path, Options{})
		require.NoError(t, err)
		assert.Equal(t, 2, raw.NumRows())
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := ParseFile(context.Background(), filepath.Join(t.TempDir(), "nope.txt"), Options{})
		require.Error(t, err)
		assert.True(t, errors.Is(err, fs.ErrNotExist))
	})

	t.Run("error names the file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.txt")
		require.NoError(t, os.WriteFile(path, []byte("1 20\n"), 0644))

		_, err := ParseFile(context.Background(), path, Options{})
		var pe *ParseError
		require.ErrorAs(t, err, &pe)
		assert.Equal(t, path, pe.Name)
		assert.Contains(t, pe.Error(), "bad.txt")
	})
}

func TestParse_ContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var sb strings.Builder
	for i := 0; i < 10_000; i++ {
		sb.WriteString("1 1:1\n")
	}

	raw, err := ParseString(ctx, sb.String(), Options{})
	require.Error(t, err)
	assert.Nil(t, raw)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestParseString_CRLF(t *testing.T) {
	raw, err := ParseString(context.Background(), "1 1:1\r\n2 2:1\r\n", Options{})
	require.NoError(t, err)
	assert.Equal(t, 2, raw.NumRows())
	assert.Equal(t, []float64{1, 1}, raw.Data)
}
