// Package dao defines the persistence layer for cmd/scrambled: a record of
// each run submitted to the execution service, independent of whether it is
// backed by an in-memory map (internal/dao/inmem) or sqlite
// (internal/dao/sqlite).
package dao

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotFound        = errors.New("the requested resource was not found")
	ErrDecodingFailure  = errors.New("field could not be decoded from storage format")
)

// Run is one submission to the execution service: the source it was given,
// what it wrote to stdout/stderr, whether it succeeded, and the encoded token
// stream lexed from the source (empty if the source did not lex). The stored
// token stream is not read back when a run is executed.
type Run struct {
	ID       uuid.UUID
	Source   string
	Stdout   string
	Stderr   string
	ErrorMsg string
	Succeeded bool
	Created  time.Time
	Tokens   []byte
}

// Store holds the one repository cmd/scrambled needs. It is named the same
// way the teacher's multi-repository Store is, even though scramble only
// ever needs a single repository, so that adding another one later (users,
// say) means adding a method here rather than restructuring callers.
type Store interface {
	Runs() RunRepository
	Close() error
}

type RunRepository interface {
	Create(ctx context.Context, run Run) (Run, error)
	GetByID(ctx context.Context, id uuid.UUID) (Run, error)
	GetAll(ctx context.Context) ([]Run, error)
	Close() error
}
