package parser

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
)

const (
	// minBufferBytes is the floor for the buffer sizing hint (1 MiB).
	minBufferBytes = 1 << 20

	// ctxCheckInterval is the number of lines between cancellation polls.
	ctxCheckInterval = 4096
)

// Options configures a parse call.
type Options struct {
	// BufferBytes is a byte-budget hint used to presize the CSR buffers
	// and the read buffer. Values below 1 MiB are raised to 1 MiB.
	BufferBytes int

	// Comments enables per-row comment capture.
	Comments bool
}

func (o Options) normalized() Options {
	if o.BufferBytes < minBufferBytes {
		o.BufferBytes = minBufferBytes
	}
	return o
}

// ParseFile parses the svmlight file at path into raw CSR arrays. The file
// handle is owned for the duration of the call and released on every exit
// path.
func ParseFile(ctx context.Context, path string, o Options) (*Raw, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("svmlight: open: %w", err)
	}
	defer f.Close()

	return parse(ctx, path, f, o.normalized())
}

// ParseString parses svmlight-formatted text held in memory.
func ParseString(ctx context.Context, s string, o Options) (*Raw, error) {
	return parse(ctx, "", strings.NewReader(s), o.normalized())
}

// ParseReader parses svmlight-formatted text from r. name is used in error
// messages and may be empty.
func ParseReader(ctx context.Context, name string, r io.Reader, o Options) (*Raw, error) {
	return parse(ctx, name, r, o.normalized())
}

// parse is the single-pass load loop: a one-shot line sequence feeding the
// assembler. The scanner buffer is sized from the caller's hint so long
// lines do not abort the load.
func parse(ctx context.Context, name string, r io.Reader, o Options) (*Raw, error) {
	a := newAssembler(name, o)

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), o.BufferBytes)

	lineno := 0
	for sc.Scan() {
		lineno++
		if lineno%ctxCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return nil, a.fail(fmt.Errorf("svmlight: load canceled: %w", err))
			}
		}
		if err := a.consumeLine(lineno, sc.Text()); err != nil {
			return nil, err
		}
	}
	if err := sc.Err(); err != nil {
		return nil, a.fail(fmt.Errorf("svmlight: read %s: %w", name, err))
	}

	return a.finalize(), nil
}
