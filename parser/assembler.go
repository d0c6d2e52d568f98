package parser

import (
	"github.com/RoaringBitmap/roaring/v2/roaring64"

	"github.com/hupe1980/svmlight/internal/buffer"
)

type state int

const (
	stateReading state = iota
	stateDone
	stateFailed
)

// Raw holds the arrays of one parsed input, exactly as they appear on disk.
// No index-base normalization has been applied.
type Raw struct {
	Data    []float64
	Indices []uint64
	Indptr  []uint64
	Labels  []float64

	// QueryIDs has one entry per row when at least one row carried a
	// "qid:" token (rows without one hold 0), and is empty otherwise.
	QueryIDs []uint64

	// Comments has one entry per row when comment capture was requested
	// (rows without a comment hold ""), and is empty otherwise.
	Comments []string

	// Columns is the set of column ids observed across all rows. Callers
	// use it for shape inference (Maximum()+1), automatic base detection
	// (Minimum() > 0) and feature-space reconciliation.
	Columns *roaring64.Bitmap
}

// NumRows returns the number of parsed rows.
func (r *Raw) NumRows() int { return len(r.Indptr) - 1 }

// NNZ returns the total number of stored entries.
func (r *Raw) NNZ() int { return len(r.Data) }

// assembler drives tokenize/parse per line and feeds the growable CSR
// buffers. It moves reading -> done on EOF or reading -> failed on the
// first malformed line, in which case every buffer is discarded.
type assembler struct {
	name  string
	state state

	data     *buffer.Buffer[float64]
	indices  *buffer.Buffer[uint64]
	indptr   *buffer.Buffer[uint64]
	labels   *buffer.Buffer[float64]
	qids     *buffer.Buffer[uint64]
	comments *buffer.Buffer[string]
	cols     *roaring64.Bitmap

	wantComments bool
	sawQID       bool
}

func newAssembler(name string, o Options) *assembler {
	// The byte budget is split across the two nnz-sized buffers, with a
	// small share for the per-row ones.
	hint := o.BufferBytes
	return &assembler{
		name:         name,
		data:         buffer.New[float64](hint / 4),
		indices:      buffer.New[uint64](hint / 4),
		indptr:       buffer.New[uint64](hint / 64),
		labels:       buffer.New[float64](hint / 64),
		qids:         buffer.New[uint64](0),
		comments:     buffer.New[string](0),
		cols:         roaring64.New(),
		wantComments: o.Comments,
	}
}

// consumeLine parses one physical line. lineno is 1-based and counts blank
// and comment-only lines too, so errors point at the real file location.
func (a *assembler) consumeLine(lineno int, line string) error {
	if a.state != stateReading {
		panic("parser: consumeLine after terminal state")
	}

	toks, ok := tokenize(line)
	if !ok {
		return nil
	}

	label, err := parseLabel(toks.label)
	if err != nil {
		return a.fail(newParseError(a.name, lineno, line, toks.label, "invalid label", err))
	}

	fields := toks.fields
	var qid uint64
	hasQID := false
	if len(fields) > 0 && isQID(fields[0]) {
		qid, err = parseQID(fields[0])
		if err != nil {
			return a.fail(newParseError(a.name, lineno, line, fields[0], "invalid query id", err))
		}
		hasQID = true
		fields = fields[1:]
	}

	// Row boundary: running non-zero total before this row's entries.
	a.indptr.Append(uint64(a.data.Len()))
	a.labels.Append(label)
	a.qids.Append(qid)
	if hasQID {
		a.sawQID = true
	}
	if a.wantComments {
		a.comments.Append(toks.comment)
	}

	for _, tok := range fields {
		col, val, err := parseFeature(tok)
		if err != nil {
			return a.fail(newParseError(a.name, lineno, line, tok, "invalid feature", err))
		}
		a.indices.Append(col)
		a.data.Append(val)
		a.cols.Add(col)
	}
	return nil
}

// finalize appends the indptr sentinel and transfers ownership of all
// arrays to the returned Raw. The assembler is consumed.
func (a *assembler) finalize() *Raw {
	if a.state != stateReading {
		panic("parser: finalize after terminal state")
	}
	a.state = stateDone

	a.indptr.Append(uint64(a.data.Len()))

	raw := &Raw{
		Data:    a.data.Finalize(),
		Indices: a.indices.Finalize(),
		Indptr:  a.indptr.Finalize(),
		Labels:  a.labels.Finalize(),
		Columns: a.cols,
	}
	if a.sawQID {
		raw.QueryIDs = a.qids.Finalize()
	} else {
		a.qids.Discard()
		raw.QueryIDs = []uint64{}
	}
	if a.wantComments {
		raw.Comments = a.comments.Finalize()
	} else {
		a.comments.Discard()
		raw.Comments = []string{}
	}
	return raw
}

// fail discards all buffers and records the terminal state.
func (a *assembler) fail(err error) error {
	a.state = stateFailed
	a.data.Discard()
	a.indices.Discard()
	a.indptr.Discard()
	a.labels.Discard()
	a.qids.Discard()
	a.comments.Discard()
	return err
}
