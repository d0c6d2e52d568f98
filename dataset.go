package svmlight

import "github.com/RoaringBitmap/roaring/v2/roaring64"

// Dataset is a sparse dataset in compressed-sparse-row layout.
//
// Row i's non-zero entries are Data[Indptr[i]:Indptr[i+1]] with their column
// ids in the parallel slice of Indices, in the exact order they appeared on
// the source line. Indptr always has NumRows()+1 entries, starts at 0 and is
// non-decreasing.
type Dataset struct {
	Data    []float64
	Indices []uint64
	Indptr  []uint64
	Labels  []float64

	// QueryIDs groups samples of ranking datasets. It has one entry per
	// row when at least one source row carried a "qid:" token (rows
	// without one hold 0) and is empty otherwise.
	QueryIDs []uint64

	// Comments holds per-row trailing comments, one entry per row when
	// comment capture was requested on load and empty otherwise.
	Comments []string

	// NumFeatures is the dataset width: either the pinned value passed to
	// Load or the maximum column index observed plus one.
	NumFeatures uint64

	cols *roaring64.Bitmap
}

// NumRows returns the number of samples.
func (d *Dataset) NumRows() int {
	if len(d.Indptr) == 0 {
		return 0
	}
	return len(d.Indptr) - 1
}

// NNZ returns the total number of stored entries.
func (d *Dataset) NNZ() int { return len(d.Data) }

// Row returns row i's column ids and values as sub-slices of the CSR
// arrays. The slices alias the dataset and must not be resized.
func (d *Dataset) Row(i int) (cols []uint64, vals []float64) {
	lo, hi := d.Indptr[i], d.Indptr[i+1]
	return d.Indices[lo:hi], d.Data[lo:hi]
}

// Columns returns the set of column ids that carry at least one non-zero
// entry, in the dataset's index base. Useful to spot features a slice of a
// bigger dataset never exercises. The bitmap is owned by the dataset; clone
// it before mutating.
func (d *Dataset) Columns() *roaring64.Bitmap {
	if d.cols == nil {
		d.cols = roaring64.New()
		for _, c := range d.Indices {
			d.cols.Add(c)
		}
	}
	return d.cols
}

// HasQueryIDs reports whether any source row carried a query id.
func (d *Dataset) HasQueryIDs() bool { return len(d.QueryIDs) > 0 }

// Float32Data returns a float32 copy of the value array, for consumers that
// trade precision for memory.
func (d *Dataset) Float32Data() []float32 {
	out := make([]float32, len(d.Data))
	for i, v := range d.Data {
		out[i] = float32(v)
	}
	return out
}
