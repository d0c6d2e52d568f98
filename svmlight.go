package svmlight

import (
	"context"
	"fmt"
	"io"
	"runtime"
	"time"

	"github.com/RoaringBitmap/roaring/v2/roaring64"
	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/svmlight/parser"
	"github.com/hupe1980/svmlight/writer"
)

// Load parses the svmlight/libsvm file at path into a CSR dataset.
//
// Column indices are normalized according to WithZeroBased (auto-detection
// by default) and the dataset width is inferred from the maximum observed
// index unless pinned with WithNumFeatures. Malformed input aborts the
// whole load; no partial dataset is ever returned.
func Load(ctx context.Context, path string, opts ...Option) (*Dataset, error) {
	o := applyOptions(opts)

	start := time.Now()
	ds, err := loadOne(ctx, path, o)
	observeLoad(ctx, o, path, ds, start, err)
	return ds, err
}

// LoadString parses svmlight-formatted text held in memory.
func LoadString(ctx context.Context, s string, opts ...Option) (*Dataset, error) {
	o := applyOptions(opts)

	start := time.Now()
	raw, err := parser.ParseString(ctx, s, parserOptions(o))
	var ds *Dataset
	if err == nil {
		ds, err = normalize(raw, o)
	}
	observeLoad(ctx, o, "<string>", ds, start, err)
	return ds, err
}

// LoadReader parses svmlight-formatted text from r. name is used in error
// messages and logs, and may be empty.
func LoadReader(ctx context.Context, name string, r io.Reader, opts ...Option) (*Dataset, error) {
	o := applyOptions(opts)

	start := time.Now()
	raw, err := parser.ParseReader(ctx, name, r, parserOptions(o))
	var ds *Dataset
	if err == nil {
		ds, err = normalize(raw, o)
	}
	observeLoad(ctx, o, name, ds, start, err)
	return ds, err
}

// LoadFiles loads several svmlight files that are slices of one bigger
// dataset. The first file is loaded alone and its width pins the width of
// all the others, so every returned dataset has the same NumFeatures even
// when a slice lacks examples of the highest features. The remaining files
// are loaded concurrently, bounded by WithConcurrency. The first failure
// cancels the outstanding loads and no datasets are returned.
func LoadFiles(ctx context.Context, paths []string, opts ...Option) ([]*Dataset, error) {
	if len(paths) == 0 {
		return nil, nil
	}
	o := applyOptions(opts)

	first, err := Load(ctx, paths[0], opts...)
	if err != nil {
		return nil, err
	}

	if !o.pinNumFeatures {
		o.numFeatures = first.NumFeatures
		o.pinNumFeatures = true
	}

	datasets := make([]*Dataset, len(paths))
	datasets[0] = first

	g, gctx := errgroup.WithContext(ctx)
	concurrency := o.concurrency
	if concurrency < 1 {
		concurrency = runtime.GOMAXPROCS(0)
	}
	g.SetLimit(concurrency)

	for i := 1; i < len(paths); i++ {
		g.Go(func() error {
			start := time.Now()
			ds, err := loadOne(gctx, paths[i], o)
			observeLoad(gctx, o, paths[i], ds, start, err)
			if err != nil {
				return err
			}
			datasets[i] = ds
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return datasets, nil
}

// Dump writes the dataset to path in svmlight/libsvm format, one line per
// row. Column indices are written as stored unless WithOneBasedOutput is
// set. Length disagreements between the CSR arrays and the label, query-id
// or comment vectors are rejected before any output is written, and the
// target file is replaced atomically on success.
func Dump(ctx context.Context, path string, ds *Dataset, opts ...Option) error {
	o := applyOptions(opts)

	start := time.Now()
	err := writer.WriteFile(ctx, path, dumpRows(ds, o))

	o.metricsCollector.RecordDump(ds.NumRows(), time.Since(start), err)
	o.logger.LogDump(ctx, path, ds.NumRows(), err)
	return err
}

// DumpTo writes the dataset to w in svmlight/libsvm format.
func DumpTo(ctx context.Context, w io.Writer, ds *Dataset, opts ...Option) error {
	o := applyOptions(opts)

	start := time.Now()
	err := writer.Write(ctx, w, dumpRows(ds, o))

	o.metricsCollector.RecordDump(ds.NumRows(), time.Since(start), err)
	o.logger.LogDump(ctx, "<writer>", ds.NumRows(), err)
	return err
}

func loadOne(ctx context.Context, path string, o options) (*Dataset, error) {
	raw, err := parser.ParseFile(ctx, path, parserOptions(o))
	if err != nil {
		return nil, err
	}
	return normalize(raw, o)
}

func parserOptions(o options) parser.Options {
	return parser.Options{
		BufferBytes: o.bufferMB << 20,
		Comments:    o.comments,
	}
}

// normalize applies the index-base decision to the raw arrays and
// reconciles the dataset width against a pinned feature count. The raw
// arrays are consumed.
func normalize(raw *parser.Raw, o options) (*Dataset, error) {
	cols := raw.Columns

	shift := o.zeroBased == ZeroBasedFalse
	if o.zeroBased == ZeroBasedAuto && !cols.IsEmpty() && cols.Minimum() > 0 {
		shift = true
	}
	if shift {
		if !cols.IsEmpty() && cols.Minimum() == 0 {
			return nil, fmt.Errorf("svmlight: file is not one-based: column index 0 present")
		}
		for i := range raw.Indices {
			raw.Indices[i]--
		}
		shifted := roaring64.New()
		it := cols.Iterator()
		for it.HasNext() {
			shifted.Add(it.Next() - 1)
		}
		cols = shifted
	}

	var required uint64
	if !cols.IsEmpty() {
		required = cols.Maximum() + 1
	}

	width := required
	if o.pinNumFeatures {
		if o.numFeatures < required {
			return nil, &ErrFeatureCountTooSmall{Pinned: o.numFeatures, Required: required}
		}
		width = o.numFeatures
	}

	return &Dataset{
		Data:        raw.Data,
		Indices:     raw.Indices,
		Indptr:      raw.Indptr,
		Labels:      raw.Labels,
		QueryIDs:    raw.QueryIDs,
		Comments:    raw.Comments,
		NumFeatures: width,
		cols:        cols,
	}, nil
}

func dumpRows(ds *Dataset, o options) *writer.Rows {
	return &writer.Rows{
		Data:     ds.Data,
		Indices:  ds.Indices,
		Indptr:   ds.Indptr,
		Labels:   ds.Labels,
		QueryIDs: ds.QueryIDs,
		Comments: ds.Comments,
		OneBased: o.oneBasedOutput,
	}
}

func observeLoad(ctx context.Context, o options, name string, ds *Dataset, start time.Time, err error) {
	rows, nnz := 0, 0
	if ds != nil {
		rows, nnz = ds.NumRows(), ds.NNZ()
	}
	o.metricsCollector.RecordLoad(rows, nnz, time.Since(start), err)
	o.logger.LogLoad(ctx, name, rows, nnz, err)
}
