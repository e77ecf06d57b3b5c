package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// LineReader yields one line of user input at a time. io.EOF ends the
// session. *term.Terminal satisfies it.
type LineReader interface {
	ReadLine() (string, error)
	SetPrompt(prompt string)
}

// Console is the terminal the client talks to.
type Console struct {
	LineReader
	Out     io.Writer
	restore func() error
}

// OpenConsole puts in into raw mode and returns a line-editing terminal
// when in is a TTY. Otherwise lines are read plainly, which keeps piped
// input working. Close restores the terminal.
func OpenConsole(in, out *os.File) (*Console, error) {
	fd := int(in.Fd())
	if !term.IsTerminal(fd) {
		return &Console{LineReader: NewPlainReader(in, out), Out: out}, nil
	}

	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("enter raw mode: %w", err)
	}

	t := term.NewTerminal(struct {
		io.Reader
		io.Writer
	}{in, out}, "> ")
	if w, h, err := term.GetSize(fd); err == nil {
		_ = t.SetSize(w, h)
	}

	return &Console{
		LineReader: t,
		Out:        t,
		restore:    func() error { return term.Restore(fd, oldState) },
	}, nil
}

// Close restores the terminal state.
func (c *Console) Close() error {
	if c.restore == nil {
		return nil
	}
	return c.restore()
}

// PlainReader reads newline-terminated lines, printing the prompt to out
// before each read.
type PlainReader struct {
	scanner *bufio.Scanner
	out     io.Writer
	prompt  string
}

// NewPlainReader creates a PlainReader. out may be nil to suppress prompts.
func NewPlainReader(in io.Reader, out io.Writer) *PlainReader {
	return &PlainReader{scanner: bufio.NewScanner(in), out: out}
}

func (r *PlainReader) SetPrompt(prompt string) { r.prompt = prompt }

func (r *PlainReader) ReadLine() (string, error) {
	if r.out != nil && r.prompt != "" {
		fmt.Fprint(r.out, r.prompt)
	}
	if !r.scanner.Scan() {
		if err := r.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return r.scanner.Text(), nil
}
