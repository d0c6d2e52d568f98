package writer

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
)

// ShapeMismatchError reports side arrays whose length disagrees with the
// CSR structure. It is raised before any output is written.
type ShapeMismatchError struct {
	Field string
	Want  int
	Got   int
}

func (e *ShapeMismatchError) Error() string {
	return fmt.Sprintf("svmlight: shape mismatch: %s has length %d, want %d", e.Field, e.Got, e.Want)
}

// Rows is the dump input: a CSR triple plus side arrays. QueryIDs and
// Comments may be empty (no qid / comment output) or have one entry per
// row. When OneBased is set, column ids are written with 1 added.
type Rows struct {
	Data     []float64
	Indices  []uint64
	Indptr   []uint64
	Labels   []float64
	QueryIDs []uint64
	Comments []string
	OneBased bool
}

// NumRows returns the row count implied by the indptr array.
func (r *Rows) NumRows() int {
	if len(r.Indptr) == 0 {
		return 0
	}
	return len(r.Indptr) - 1
}

// Validate checks the CSR invariants and side-array lengths. All failures
// are *ShapeMismatchError.
func (r *Rows) Validate() error {
	if len(r.Indptr) == 0 {
		return &ShapeMismatchError{Field: "indptr", Want: 1, Got: 0}
	}
	if r.Indptr[0] != 0 {
		return &ShapeMismatchError{Field: "indptr[0]", Want: 0, Got: int(r.Indptr[0])}
	}
	for i := 1; i < len(r.Indptr); i++ {
		if r.Indptr[i] < r.Indptr[i-1] {
			return &ShapeMismatchError{Field: "indptr", Want: int(r.Indptr[i-1]), Got: int(r.Indptr[i])}
		}
	}
	nnz := int(r.Indptr[len(r.Indptr)-1])
	if len(r.Data) != nnz {
		return &ShapeMismatchError{Field: "data", Want: nnz, Got: len(r.Data)}
	}
	if len(r.Indices) != nnz {
		return &ShapeMismatchError{Field: "indices", Want: nnz, Got: len(r.Indices)}
	}

	n := r.NumRows()
	if len(r.Labels) != n {
		return &ShapeMismatchError{Field: "labels", Want: n, Got: len(r.Labels)}
	}
	if len(r.QueryIDs) != 0 && len(r.QueryIDs) != n {
		return &ShapeMismatchError{Field: "query_ids", Want: n, Got: len(r.QueryIDs)}
	}
	if len(r.Comments) != 0 && len(r.Comments) != n {
		return &ShapeMismatchError{Field: "comments", Want: n, Got: len(r.Comments)}
	}
	return nil
}

// WriteFile validates rows and writes them to path. The output goes to a
// temp file that is renamed over the target on success, so a failed dump
// never leaves a partially written file behind.
func WriteFile(ctx context.Context, path string, rows *Rows) error {
	if err := rows.Validate(); err != nil {
		return err
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("svmlight: create: %w", err)
	}
	tmpName := tmp.Name()
	defer func() {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
	}()

	_ = tmp.Chmod(0644)

	if err := write(ctx, tmp, rows); err != nil {
		return err
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("svmlight: sync %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("svmlight: close %s: %w", path, err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("svmlight: rename: %w", err)
	}

	// Best-effort: fsync the directory so the rename is durable on POSIX.
	if d, err := os.Open(dir); err == nil {
		_ = d.Sync()
		_ = d.Close()
	}

	tmpName = "" // success, keep the final file
	return nil
}

// Write validates rows and emits them to w.
func Write(ctx context.Context, w io.Writer, rows *Rows) error {
	if err := rows.Validate(); err != nil {
		return err
	}
	return write(ctx, w, rows)
}

const ctxCheckInterval = 4096

func write(ctx context.Context, w io.Writer, rows *Rows) error {
	bw := bufio.NewWriterSize(w, 256*1024)

	// One reused scratch buffer; strconv appends avoid per-token allocs.
	line := make([]byte, 0, 256)

	n := rows.NumRows()
	for i := 0; i < n; i++ {
		if i%ctxCheckInterval == 0 && i > 0 {
			if err := ctx.Err(); err != nil {
				return fmt.Errorf("svmlight: dump canceled: %w", err)
			}
		}

		line = line[:0]
		line = strconv.AppendFloat(line, rows.Labels[i], 'g', -1, 64)

		if len(rows.QueryIDs) > 0 {
			line = append(line, " qid:"...)
			line = strconv.AppendUint(line, rows.QueryIDs[i], 10)
		}

		for j := rows.Indptr[i]; j < rows.Indptr[i+1]; j++ {
			col := rows.Indices[j]
			if rows.OneBased {
				col++
			}
			line = append(line, ' ')
			line = strconv.AppendUint(line, col, 10)
			line = append(line, ':')
			line = strconv.AppendFloat(line, rows.Data[j], 'g', -1, 64)
		}

		if len(rows.Comments) > 0 && rows.Comments[i] != "" {
			line = append(line, " #"...)
			line = append(line, rows.Comments[i]...)
		}

		line = append(line, '\n')
		if _, err := bw.Write(line); err != nil {
			return fmt.Errorf("svmlight: write: %w", err)
		}
	}
	return bw.Flush()
}
