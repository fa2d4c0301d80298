package ingest

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
)

const maxTokenSize = 1 << 20

// tokens yields whitespace-separated integers and counts them for error reports.
type tokens struct {
	sc  *bufio.Scanner
	pos int
}

func newTokens(r io.Reader) *tokens {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxTokenSize)
	sc.Split(bufio.ScanWords)

	return &tokens{sc: sc}
}

// next returns the next integer, or io.EOF when the stream is exhausted.
func (t *tokens) next() (int64, error) {
	if !t.sc.Scan() {
		if err := t.sc.Err(); err != nil {
			return 0, err
		}
		return 0, io.EOF
	}
	t.pos++
	v, err := strconv.ParseInt(t.sc.Text(), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("token %d %q: %w", t.pos, t.sc.Text(), ErrBadInteger)
	}

	return v, nil
}

// must is next with EOF turned into ErrTruncated.
func (t *tokens) must() (int64, error) {
	v, err := t.next()
	if errors.Is(err, io.EOF) {
		return 0, fmt.Errorf("after token %d: %w", t.pos, ErrTruncated)
	}

	return v, err
}

// mustInt reads an int-sized value.
func (t *tokens) mustInt() (int, error) {
	v, err := t.must()
	if err != nil {
		return 0, err
	}

	return int(v), nil
}

// count reads a non-negative count.
func (t *tokens) count() (int, error) {
	v, err := t.mustInt()
	if err != nil {
		return 0, err
	}
	if v < 0 {
		return 0, fmt.Errorf("token %d: %d: %w", t.pos, v, ErrNegativeCount)
	}

	return v, nil
}

// header reads n integers where EOF before the first one means a clean end.
func (t *tokens) header(n int) ([]int64, error) {
	out := make([]int64, n)
	for i := range out {
		var (
			v   int64
			err error
		)
		if i == 0 {
			v, err = t.next()
		} else {
			v, err = t.must()
		}
		if err != nil {
			return nil, err
		}
		out[i] = v
	}

	return out, nil
}
