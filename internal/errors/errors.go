// Package errors formats the diagnostics the resolver reports while
// type-checking a program: a one-line wire message in the
// "ERROR:row,col : message" form original_source/Resolver.cpp's report_error
// writes, plus an optional source-context rendering with a caret pointing at
// the offending column, in the style of the teacher's internal/errors package.
package errors

import (
	"fmt"
	"strings"

	"github.com/Zero5620/Kano/internal/token"
)

// ResolveError is a single diagnostic raised while resolving a program.
type ResolveError struct {
	Message string
	Source  string // full program source, for Format's caret rendering; may be empty
	Pos     token.Position
}

// New creates a ResolveError at pos.
func New(pos token.Position, message string) *ResolveError {
	return &ResolveError{Pos: pos, Message: message}
}

// Error implements the error interface using the wire format every resolved
// program's error stream uses: "ERROR:row,col : message".
func (e *ResolveError) Error() string {
	return fmt.Sprintf("ERROR:%d,%d : %s", e.Pos.Line, e.Pos.Column, e.Message)
}

// Format renders the error with its source line and a caret under the
// offending column, for human-facing CLI output. If color is true, ANSI
// color codes highlight the caret and message.
func (e *ResolveError) Format(color bool) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Error at line %d:%d\n", e.Pos.Line, e.Pos.Column))

	if line := e.sourceLine(e.Pos.Line); line != "" {
		lineNumStr := fmt.Sprintf("%4d | ", e.Pos.Line)
		sb.WriteString(lineNumStr)
		sb.WriteString(line)
		sb.WriteString("\n")

		sb.WriteString(strings.Repeat(" ", len(lineNumStr)+e.Pos.Column-1))
		if color {
			sb.WriteString("\033[1;31m")
		}
		sb.WriteString("^")
		if color {
			sb.WriteString("\033[0m")
		}
		sb.WriteString("\n")
	}

	if color {
		sb.WriteString("\033[1m")
	}
	sb.WriteString(e.Message)
	if color {
		sb.WriteString("\033[0m")
	}
	return sb.String()
}

func (e *ResolveError) sourceLine(lineNum int) string {
	if e.Source == "" {
		return ""
	}
	lines := strings.Split(e.Source, "\n")
	if lineNum < 1 || lineNum > len(lines) {
		return ""
	}
	return lines[lineNum-1]
}

// FormatAll renders a batch of errors the way the CLI reports a failed
// resolve pass: one line per error in wire format, in the order they were
// reported (which, per the resolver, is the order report_error was called).
func FormatAll(errs []*ResolveError) string {
	var sb strings.Builder
	for _, e := range errs {
		sb.WriteString(e.Error())
		sb.WriteString("\n")
	}
	return sb.String()
}
