package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"
)

// scanned is one line read from the input, or the error that ended it.
type scanned struct {
	text string
	err  error
}

// prompter reads one answer per line. Lines are read by a single goroutine
// so that a pending answer can be abandoned when the context is cancelled.
type prompter struct {
	in  *bufio.Scanner
	out io.Writer

	start sync.Once
	stop  chan struct{}
	once  sync.Once
	lines chan scanned
}

func newPrompter(in io.Reader, out io.Writer) *prompter {
	return &prompter{
		in:    bufio.NewScanner(in),
		out:   out,
		stop:  make(chan struct{}),
		lines: make(chan scanned),
	}
}

// read feeds p.lines until the input ends or the prompter is closed.
func (p *prompter) read() {
	defer close(p.lines)
	for p.in.Scan() {
		select {
		case p.lines <- scanned{text: p.in.Text()}:
		case <-p.stop:
			return
		}
	}
	err := p.in.Err()
	if err == nil {
		err = io.EOF
	}
	select {
	case p.lines <- scanned{err: err}:
	case <-p.stop:
	}
}

// close releases the reader goroutine once it is no longer blocked on input.
func (p *prompter) close() {
	p.once.Do(func() { close(p.stop) })
}

// line prints prompt and returns the trimmed reply. It returns io.EOF when
// input is exhausted and ctx.Err() when ctx is done first.
func (p *prompter) line(ctx context.Context, prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)
	p.start.Do(func() { go p.read() })

	select {
	case <-ctx.Done():
		fmt.Fprintln(p.out)
		return "", ctx.Err()
	case r, ok := <-p.lines:
		if !ok {
			r.err = io.EOF
		}
		if r.err != nil {
			if r.err == io.EOF {
				fmt.Fprintln(p.out)
			}
			return "", r.err
		}
		return strings.TrimSpace(r.text), nil
	}
}

// intRange describes a numeric question and its feedback messages.
type intRange struct {
	label   string
	def     int
	min     int
	max     int // 0 for no upper bound
	notInt  string
	tooLow  string
	tooHigh string
}

// integer asks until the reply is an integer within the range. An empty
// reply picks the default, which is checked like any other answer.
func (p *prompter) integer(ctx context.Context, q intRange) (int, error) {
	for {
		reply, err := p.line(ctx, fmt.Sprintf("%s [%d]: ", q.label, q.def))
		if err != nil {
			return 0, err
		}

		n := q.def
		if reply != "" {
			n, err = strconv.Atoi(reply)
			if err != nil {
				fmt.Fprintln(p.out, q.notInt)
				continue
			}
		}

		switch {
		case n < q.min:
			fmt.Fprintln(p.out, q.tooLow)
		case q.max > 0 && n > q.max:
			fmt.Fprintln(p.out, q.tooHigh)
		default:
			return n, nil
		}
	}
}

// text asks once; an empty reply picks def.
func (p *prompter) text(ctx context.Context, label, def string) (string, error) {
	reply, err := p.line(ctx, fmt.Sprintf("%s [%s]: ", label, def))
	if err != nil {
		return "", err
	}
	if reply == "" {
		return def, nil
	}
	return reply, nil
}
