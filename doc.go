// Package svmlight loads and saves sparse datasets in the svmlight/libsvm
// text format.
//
// The format stores one sample per line: a numeric label, an optional
// "qid:" query identifier, whitespace-separated "index:value" pairs for the
// non-zero features and an optional trailing "#" comment. Files are parsed
// in a single streaming pass directly into a compressed-sparse-row (CSR)
// representation; no dense matrix is ever materialized.
//
// # Quick Start
//
//	ctx := context.Background()
//
//	ds, _ := svmlight.Load(ctx, "train.txt")
//	fmt.Println(ds.NumRows(), ds.NumFeatures)
//
//	// Row i lives in ds.Data[ds.Indptr[i]:ds.Indptr[i+1]] and the
//	// parallel slice of ds.Indices, or use the accessor:
//	cols, vals := ds.Row(0)
//	_, _ = cols, vals
//
//	_ = svmlight.Dump(ctx, "out.txt", ds)
//
// # Index Base
//
// svmlight files in the wild are written both zero-based and one-based.
// By default Load auto-detects: when the smallest column index in the file
// is greater than zero, all indices are shifted down by one. Pin the
// behavior with WithZeroBased(ZeroBasedTrue) or WithZeroBased(ZeroBasedFalse).
//
// # Ranking Datasets
//
// Query ids ("qid:7") group samples of ranking datasets. When any row
// carries one, Dataset.QueryIDs has one entry per row; otherwise it is
// empty. Per-row trailing comments are captured with WithComments(true).
//
// # Errors
//
// Malformed input never produces a partial dataset: the first bad line
// aborts the load with a *parser.ParseError carrying the 1-based line
// number and the raw line text. Dump validates all array lengths up front
// and reports disagreement as a *writer.ShapeMismatchError before a single
// byte reaches the target file.
package svmlight
