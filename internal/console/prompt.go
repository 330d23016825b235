package console

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Prompt reads operator input line by line, re-prompting until the input
// parses. Once the underlying reader is exhausted every call returns a
// zero value; menu loops check Exhausted to avoid spinning.
type Prompt struct {
	in  *bufio.Scanner
	out io.Writer
	eof bool
}

func NewPrompt(in io.Reader, out io.Writer) *Prompt {
	return &Prompt{
		in:  bufio.NewScanner(in),
		out: out,
	}
}

// Exhausted reports whether the input source has run dry.
func (p *Prompt) Exhausted() bool {
	return p.eof
}

// Line prints the label and returns the next input line, trimmed.
func (p *Prompt) Line(label string) string {
	if p.eof {
		return ""
	}
	fmt.Fprint(p.out, label)
	if !p.in.Scan() {
		p.eof = true
		return ""
	}
	return strings.TrimSpace(p.in.Text())
}

// Int keeps prompting until the operator enters a valid integer.
func (p *Prompt) Int(label string) int {
	for {
		text := p.Line(label)
		if p.eof {
			return 0
		}
		value, err := strconv.Atoi(text)
		if err != nil {
			fmt.Fprint(p.out, "Invalid input. Please enter a valid number: ")
			label = ""
			continue
		}
		return value
	}
}

// Float keeps prompting until the operator enters a valid number.
func (p *Prompt) Float(label string) float64 {
	for {
		text := p.Line(label)
		if p.eof {
			return 0
		}
		value, err := strconv.ParseFloat(text, 64)
		if err != nil {
			fmt.Fprint(p.out, "Invalid input. Please enter a valid number: ")
			label = ""
			continue
		}
		return value
	}
}

// Choice keeps prompting until the operator picks a number in [min, max].
func (p *Prompt) Choice(label string, min, max int) int {
	for {
		value := p.Int(label)
		if p.eof {
			return 0
		}
		if value < min || value > max {
			fmt.Fprintf(p.out, "Invalid choice. Please enter a number between %d and %d: ", min, max)
			label = ""
			continue
		}
		return value
	}
}
