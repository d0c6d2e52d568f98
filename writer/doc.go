// Package writer serializes CSR arrays back to the svmlight/libsvm text
// format, one line per row. It is the inverse of package parser: numeric
// formatting uses the shortest representation that round-trips through
// float64, so dumping and re-loading reproduces the same values.
package writer
