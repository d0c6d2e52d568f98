// Package buffer provides growable typed buffers used to accumulate CSR
// arrays while a dataset is being parsed.
//
// A Buffer grows geometrically, so appending n elements costs amortized
// O(1) per element regardless of file size. Finalize freezes the buffer
// into an exactly-sized slice and severs the internal backing store, so
// the returned slice is exclusively owned by the caller.
package buffer
