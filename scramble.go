/*
Package scramble ties the lexer, parser, evaluator, and token cache in
internal/scramble together into a single entry point for running Scramble
source.
*/
package scramble

import (
	"io"
	"os"

	"github.com/dekarrin/scramble/internal/scramble"
)

// Engine runs Scramble source against a persistent environment, optionally
// backed by an on-disk token cache.
type Engine struct {
	ev    *scramble.Evaluator
	cache bool
}

// New builds an Engine whose builtins read from stdin and write to stdout
// and stderr. When cache is true, RunFile consults and maintains a sibling
// ".sxc" token cache next to whatever file it is given.
func New(stdin io.Reader, stdout, stderr io.Writer, cache bool) *Engine {
	return &Engine{
		ev:    scramble.NewEvaluator(scramble.NewIO(stdout, stderr, stdin)),
		cache: cache,
	}
}

// RunSource lexes, parses, and evaluates src in a single pass, with no
// caching (the cache keys off a file path, which a raw string doesn't
// have).
func (e *Engine) RunSource(src string) error {
	toks, err := scramble.Lex(src)
	if err != nil {
		return err
	}
	return e.run(toks)
}

// RunFile reads path and runs it the same way RunSource does. If the
// Engine was built with cache enabled, a lexed token stream is read from
// (and written back to) a sibling "<path>.sxc" file so repeated runs of an
// unmodified file skip re-lexing.
func (e *Engine) RunFile(path string) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	if !e.cache {
		toks, err := scramble.Lex(string(src))
		if err != nil {
			return err
		}
		return e.run(toks)
	}

	cachePath := path + ".sxc"
	toks, err := loadOrBuildCache(cachePath, string(src))
	if err != nil {
		return err
	}
	return e.run(toks)
}

func loadOrBuildCache(cachePath, src string) ([]scramble.Token, error) {
	if cached, err := os.ReadFile(cachePath); err == nil {
		if toks, err := scramble.DecodeCache(cached, len(src)); err == nil {
			return toks, nil
		}
	}

	toks, err := scramble.Lex(src)
	if err != nil {
		return nil, err
	}

	_ = os.WriteFile(cachePath, scramble.EncodeCache(src, toks), 0o644)
	return toks, nil
}

func (e *Engine) run(toks []scramble.Token) error {
	program, err := scramble.Parse(toks)
	if err != nil {
		return err
	}
	return e.ev.Run(program)
}

// TokenCache lexes src and returns the same encoded form RunFile's sidecar
// cache file holds, for callers (cmd/scrambled) that persist a run's token
// stream alongside its result.
func TokenCache(src string) ([]byte, error) {
	toks, err := scramble.Lex(src)
	if err != nil {
		return nil, err
	}
	return scramble.EncodeCache(src, toks), nil
}

// Render formats err (as returned by RunSource/RunFile) against src the way
// the CLI driver displays it: "Error: <message>" plus a caret pointing at
// the offending source, when err carries a position.
func Render(err error, src string) string {
	return scramble.Render(err, src)
}
