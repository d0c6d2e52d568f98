// Package parser implements the streaming svmlight/libsvm reader.
//
// It consumes a file (or any io.Reader) line by line and incrementally
// builds the CSR arrays data/indices/indptr together with the label,
// query-id and comment side arrays, without ever materializing a dense
// matrix. Column indices are returned exactly as they appear on disk;
// zero-based/one-based normalization is the caller's concern.
package parser
