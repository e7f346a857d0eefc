package scramble

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dekarrin/rosed"
	"github.com/dekarrin/scramble/internal/util"
)

// file errors.go defines the error taxonomy: one concrete type per failure
// category, each (except Input) carrying the Position it occurred at so
// Render can print a caret under the offending source.

// positioned is satisfied by every error type in this file except Input, and
// by the lexer's UnexpectedSymbol; Render uses it to locate the offending
// line.
type positioned interface {
	error
	ErrPosition() Position
}

// Balance is raised when a matched pair of parens, brackets, or quote runs
// has equal-length runs on both sides.
type Balance struct {
	Pos        Position
	Open       string
	CloseLen   int
	NeedsEqual bool
}

func (e Balance) Error() string {
	return fmt.Sprintf("unbalanced %s: matching runs must differ in length", e.Open)
}
func (e Balance) ErrPosition() Position { return e.Pos }

// UnexpectedToken is raised when the parser finds a token that cannot begin
// or continue the construct it is currently parsing.
type UnexpectedToken struct {
	Pos  Position
	Got  Kind
	Want []Kind
}

func (e UnexpectedToken) Error() string {
	if len(e.Want) == 0 {
		return fmt.Sprintf("unexpected %s", e.Got.Human())
	}
	wants := make([]string, len(e.Want))
	for i, k := range e.Want {
		wants[i] = k.Human()
	}
	return fmt.Sprintf("unexpected %s, expected %s", e.Got.Human(), util.MakeTextList(wants))
}
func (e UnexpectedToken) ErrPosition() Position { return e.Pos }

// UnexpectedEOF is raised when the token stream ends in the middle of a
// construct that needs more tokens.
type UnexpectedEOF struct {
	Pos Position
}

func (e UnexpectedEOF) Error() string       { return "unexpected end of input" }
func (e UnexpectedEOF) ErrPosition() Position { return e.Pos }

// MissingToken is raised when a specific token kind was required at this
// position (e.g. the "ni" of a for-loop) and something else was found.
type MissingToken struct {
	Pos  Position
	Want Kind
	Got  Kind
}

func (e MissingToken) Error() string {
	return fmt.Sprintf("expected %s, found %s", e.Want.Human(), e.Got.Human())
}
func (e MissingToken) ErrPosition() Position { return e.Pos }

// MissingExpression is raised when an expression was required (e.g. as a
// call argument or an operand) and the parser found nothing that can start
// one.
type MissingExpression struct {
	Pos Position
}

func (e MissingExpression) Error() string       { return "expected an expression" }
func (e MissingExpression) ErrPosition() Position { return e.Pos }

// ConsistentIndentation is raised when two non-blank lines in the same block
// indent to different raw column counts.
type ConsistentIndentation struct {
	Pos      Position
	Expected int
	Got      int
}

func (e ConsistentIndentation) Error() string {
	return fmt.Sprintf("inconsistent indentation: expected column %d, found column %d", e.Expected, e.Got)
}
func (e ConsistentIndentation) ErrPosition() Position { return e.Pos }

// Signature is raised when a function is called with the wrong number of
// arguments.
type Signature struct {
	Pos      Position
	Name     string
	Want     int
	Got      int
	Variadic bool
}

func (e Signature) Error() string {
	return fmt.Sprintf("%s expects %d argument(s), got %d", e.Name, e.Want, e.Got)
}
func (e Signature) ErrPosition() Position { return e.Pos }

// Name is raised when a variable or function reference resolves to nothing
// in any enclosing scope.
type Name struct {
	Pos    Position
	Name   string
	IsFunc bool
}

func (e Name) Error() string {
	kind := "variable"
	if e.IsFunc {
		kind = "function"
	}
	return fmt.Sprintf("undefined %s %q", kind, e.Name)
}
func (e Name) ErrPosition() Position { return e.Pos }

// InvalidFormatFlag is raised by the "%" operator when a flag character
// other than n/s/l/o follows a '%'.
type InvalidFormatFlag struct {
	Pos  Position
	Flag string
}

func (e InvalidFormatFlag) Error() string {
	if e.Flag == "" {
		return "format string ends with a dangling '%'"
	}
	return fmt.Sprintf("invalid format flag %q", e.Flag)
}
func (e InvalidFormatFlag) ErrPosition() Position { return e.Pos }

// IncorrectFormatArgs is raised by the "%" operator when the number of
// flags in the format string does not match the number of supplied
// arguments.
type IncorrectFormatArgs struct {
	Pos Position
}

func (e IncorrectFormatArgs) Error() string       { return "format argument count mismatch" }
func (e IncorrectFormatArgs) ErrPosition() Position { return e.Pos }

// Input is raised when the "inptu" builtin fails to read a line (e.g. stdin
// closed). It has no source position since it is a runtime I/O failure, not
// a parse-time or evaluation-time one.
type Input struct {
	Message string
}

func (e Input) Error() string { return "input error: " + e.Message }

// Break is raised when a "brek" statement's outcome reaches the top of
// execution without ever being caught by an enclosing loop.
type Break struct {
	Pos Position
}

func (e Break) Error() string       { return "brek used outside of a loop" }
func (e Break) ErrPosition() Position { return e.Pos }

// Continue is raised when a "cnotineu" statement's outcome reaches the top
// of execution without ever being caught by an enclosing loop.
type Continue struct {
	Pos Position
}

func (e Continue) Error() string       { return "cnotineu used outside of a loop" }
func (e Continue) ErrPosition() Position { return e.Pos }

// Return is raised when a "retrun" statement's outcome reaches the top of
// execution without ever being caught by an enclosing function call.
type Return struct {
	Pos Position
}

func (e Return) Error() string       { return "retrun used outside of a function" }
func (e Return) ErrPosition() Position { return e.Pos }

// Render prints "Error: <message>" followed by the offending source line,
// a caret underline spanning the token's length, and the word "here", using
// rosed to lay out the line-number gutter the same way the teacher's
// parser.go lays out its own debug tables. The gutter width is
// floor(log10(len(source)))+2, matching the source's own magnitude rather
// than a fixed width.
func Render(err error, source string) string {
	header := "Error: " + err.Error()

	pe, ok := err.(positioned)
	if !ok {
		return header
	}

	pos := pe.ErrPosition()
	lines := strings.Split(source, "\n")
	if pos.Line < 1 || pos.Line > len(lines) {
		return header
	}

	margin := 2
	for n := len(source); n >= 10; n /= 10 {
		margin++
	}

	line := lines[pos.Line-1]
	underlineLen := pos.Length
	if underlineLen < 1 {
		underlineLen = 1
	}
	caret := strings.Repeat(" ", pos.Start) + strings.Repeat("^", underlineLen) + " here"

	gutterLabel := strconv.Itoa(pos.Line)
	data := [][]string{
		{gutterLabel, line},
		{"", caret},
	}

	body := rosed.Edit("").InsertTableOpts(0, data, margin+len(line)+1, rosed.Options{
		TableHeaders:             false,
		NoTrailingLineSeparators: true,
	}).String()

	return header + "\n" + body
}
