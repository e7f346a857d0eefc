package scramble

import (
	"encoding/binary"
	"fmt"
	"unicode/utf8"

	"github.com/dekarrin/rezi"
)

// file cache.go implements the on-disk token cache: lexing a large source
// file repeatedly is wasted work for a driver that re-runs the same script,
// so the CLI may persist the lexed token stream next to the source and
// reuse it as long as the source is unchanged. Each Token encodes its own
// fields by hand, the same way the teacher's lexer token type did, and
// rezi.EncBinary/DecBinary supplies the outer length-prefixed framing the
// teacher's session and save-game records use for exactly this purpose.

// TokenStream is the cacheable unit: a whole lexed token sequence plus the
// byte length of the source it was lexed from, used to invalidate a cache
// whose source has since changed size.
type TokenStream struct {
	SourceLen int
	Tokens    []Token
}

// EncodeCache serializes a lexed token stream for storage in a sidecar
// cache file.
func EncodeCache(source string, tokens []Token) []byte {
	ts := TokenStream{SourceLen: len(source), Tokens: tokens}
	return rezi.EncBinary(&ts)
}

// DecodeCache reverses EncodeCache. It returns ErrCacheStale if sourceLen
// does not match the cached stream's recorded source length.
func DecodeCache(data []byte, sourceLen int) ([]Token, error) {
	var ts TokenStream
	n, err := rezi.DecBinary(data, &ts)
	if err != nil {
		return nil, fmt.Errorf("decoding token cache: %w", err)
	}
	if n != len(data) {
		return nil, fmt.Errorf("token cache: %d/%d bytes consumed", n, len(data))
	}
	if ts.SourceLen != sourceLen {
		return nil, ErrCacheStale
	}
	return ts.Tokens, nil
}

// ErrCacheStale is returned by DecodeCache when the cached stream was built
// from source of a different length than the one being checked against.
var ErrCacheStale = fmt.Errorf("cached token stream is stale")

func encInt(i int) []byte {
	buf := make([]byte, 8)
	binary.BigEndian.PutUint64(buf, uint64(int64(i)))
	return buf
}

func decInt(data []byte) (int, int, error) {
	if len(data) < 8 {
		return 0, 0, fmt.Errorf("unexpected end of data")
	}
	return int(int64(binary.BigEndian.Uint64(data[:8]))), 8, nil
}

func encString(s string) []byte {
	enc := encInt(len(s))
	return append(enc, s...)
}

func decString(data []byte) (string, int, error) {
	n, read, err := decInt(data)
	if err != nil {
		return "", 0, err
	}
	data = data[read:]
	if len(data) < n {
		return "", 0, fmt.Errorf("unexpected end of data")
	}
	if !utf8.Valid(data[:n]) {
		return "", 0, fmt.Errorf("invalid UTF-8 in cached string")
	}
	return string(data[:n]), read + n, nil
}

func (p Position) MarshalBinary() ([]byte, error) {
	var data []byte
	data = append(data, encInt(p.Line)...)
	data = append(data, encInt(p.Start)...)
	data = append(data, encInt(p.Length)...)
	return data, nil
}

func (p *Position) UnmarshalBinary(data []byte) error {
	var err error
	var read int
	if p.Line, read, err = decInt(data); err != nil {
		return err
	}
	data = data[read:]
	if p.Start, read, err = decInt(data); err != nil {
		return err
	}
	data = data[read:]
	if p.Length, _, err = decInt(data); err != nil {
		return err
	}
	return nil
}

func (t Token) MarshalBinary() ([]byte, error) {
	var data []byte
	data = append(data, encInt(int(t.Kind))...)
	data = append(data, encString(t.Text)...)
	posBytes, _ := t.Pos.MarshalBinary()
	data = append(data, posBytes...)
	return data, nil
}

func (t *Token) UnmarshalBinary(data []byte) error {
	kind, read, err := decInt(data)
	if err != nil {
		return err
	}
	t.Kind = Kind(kind)
	data = data[read:]

	t.Text, read, err = decString(data)
	if err != nil {
		return err
	}
	data = data[read:]

	return t.Pos.UnmarshalBinary(data)
}

func (ts TokenStream) MarshalBinary() ([]byte, error) {
	data := encInt(ts.SourceLen)
	data = append(data, encInt(len(ts.Tokens))...)
	for _, tok := range ts.Tokens {
		tokBytes, _ := tok.MarshalBinary()
		data = append(data, encInt(len(tokBytes))...)
		data = append(data, tokBytes...)
	}
	return data, nil
}

func (ts *TokenStream) UnmarshalBinary(data []byte) error {
	var err error
	var read int

	if ts.SourceLen, read, err = decInt(data); err != nil {
		return err
	}
	data = data[read:]

	count, read, err := decInt(data)
	if err != nil {
		return err
	}
	data = data[read:]

	ts.Tokens = make([]Token, count)
	for i := 0; i < count; i++ {
		tokLen, read, err := decInt(data)
		if err != nil {
			return err
		}
		data = data[read:]

		if len(data) < tokLen {
			return fmt.Errorf("unexpected end of data in cached token %d", i)
		}
		if err := ts.Tokens[i].UnmarshalBinary(data[:tokLen]); err != nil {
			return err
		}
		data = data[tokLen:]
	}
	return nil
}
