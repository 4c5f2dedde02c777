package iocli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// Stdio is the IO bound to the process's terminal.
type Stdio struct {
	in    *bufio.Reader
	out   io.Writer
	stdin *os.File
}

// NewStdio returns an IO over os.Stdin and os.Stdout.
func NewStdio() IO {
	return NewStdioFrom(os.Stdin, os.Stdout)
}

// NewStdioFrom returns an IO reading from in and writing to out.
func NewStdioFrom(in *os.File, out io.Writer) *Stdio {
	return &Stdio{in: bufio.NewReader(in), out: out, stdin: in}
}

func (s *Stdio) Println(a ...any) {
	_, _ = fmt.Fprintln(s.out, a...)
}

func (s *Stdio) Printf(format string, a ...any) {
	_, _ = fmt.Fprintf(s.out, format, a...)
}

func (s *Stdio) Write(p []byte) (int, error) {
	return s.out.Write(p)
}

// ReadInput prints prompt and reads one trimmed line.
func (s *Stdio) ReadInput(prompt string) (string, error) {
	s.Printf("%s", prompt)
	input, err := s.in.ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || input == "") {
		return "", err
	}
	return strings.TrimSpace(input), nil
}

// ReadPassword prints prompt and reads a line without echo. When stdin is
// not a terminal the line is read as-is, so passwords can be piped in.
func (s *Stdio) ReadPassword(prompt string) (string, error) {
	fd := int(s.stdin.Fd())
	if !term.IsTerminal(fd) {
		return s.ReadInput(prompt)
	}

	s.Printf("%s", prompt)
	pw, err := term.ReadPassword(fd)
	s.Println()
	if err != nil {
		return "", err
	}
	return string(pw), nil
}
