// Package scramble implements the lexer, parser, and tree-walking evaluator
// for the Scramble language, in which every keyword, builtin name, and paired
// delimiter is deliberately misspelled or left unbalanced.
package scramble

import "fmt"

// Position is a 1-based line / 0-based column / byte-length location in a
// source file.
type Position struct {
	Line   int
	Start  int
	Length int
}

// OnePast returns the one-byte position immediately following p, suitable for
// reporting errors at end of input.
func (p Position) OnePast() Position {
	return Position{Line: p.Line, Start: p.Start + p.Length, Length: 1}
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Start)
}

// Kind identifies the lexical category of a Token.
type Kind int

const (
	Newline Kind = iota
	LParen
	RParen
	LBrack
	RBrack
	Comma
	FullStop
	Plus
	Minus
	Mul
	Div
	Mod
	Eq
	Ne
	Seq
	Sne
	Gt
	Lt
	Ge
	Le
	Assign
	If
	Elif
	Else
	While
	For
	In
	Break
	Continue
	Funcdef
	Return
	BoolTrue
	BoolFalse
	Number
	String
	Name
	EndOfInput
)

var kindNames = map[Kind]string{
	Newline:    "newline",
	LParen:     "'('",
	RParen:     "')'",
	LBrack:     "'['",
	RBrack:     "']'",
	Comma:      "','",
	FullStop:   "'.'",
	Plus:       "'+'",
	Minus:      "'-'",
	Mul:        "'*'",
	Div:        "'/'",
	Mod:        "'%'",
	Eq:         "'=='",
	Ne:         "'!='",
	Seq:        "'==='",
	Sne:        "'!=='",
	Gt:         "'>'",
	Lt:         "'<'",
	Ge:         "'>='",
	Le:         "'<='",
	Assign:     "'='",
	If:         "'fi'",
	Elif:       "'lefi'",
	Else:       "'sele'",
	While:      "'whitl'",
	For:        "'fir'",
	In:         "'ni'",
	Break:      "'brek'",
	Continue:   "'cnotineu'",
	Funcdef:    "'fnuc'",
	Return:     "'retrun'",
	BoolTrue:   "'rtue'",
	BoolFalse:  "'flase'",
	Number:     "number",
	String:     "string",
	Name:       "identifier",
	EndOfInput: "end of input",
}

// Human returns a human-readable description of the kind, suitable for use in
// error messages.
func (k Kind) Human() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown token"
}

// Token is one lexeme of Scramble source, spanning contiguous source bytes.
type Token struct {
	Kind Kind
	Text string
	Pos  Position
}

func (t Token) String() string {
	return fmt.Sprintf("%s(%q)@%s", t.Kind.Human(), t.Text, t.Pos)
}

// keywords maps a keyword's misspelled surface form to its Kind. Every entry
// requires a trailing whitespace/newline character when lexed (see lexer.go);
// the map itself only concerns the surface spelling.
var keywords = map[string]Kind{
	"fi":       If,
	"lefi":     Elif,
	"sele":     Else,
	"whitl":    While,
	"fir":      For,
	"ni":       In,
	"brek":     Break,
	"cnotineu": Continue,
	"fnuc":     Funcdef,
	"retrun":   Return,
	"rtue":     BoolTrue,
	"flase":    BoolFalse,
}
