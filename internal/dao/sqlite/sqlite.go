// Package sqlite is a modernc.org/sqlite-backed dao.Store.
package sqlite

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/dekarrin/scramble/internal/dao"
	"modernc.org/sqlite"
)

type store struct {
	db   *sql.DB
	runs *runsDB
}

// NewDatastore opens (and, if needed, creates) the sqlite file at path and
// returns a dao.Store backed by it.
func NewDatastore(path string) (dao.Store, error) {
	st := &store{}

	var err error
	st.db, err = sql.Open("sqlite", path)
	if err != nil {
		return nil, wrapDBError(err)
	}

	st.runs = &runsDB{db: st.db}
	if err := st.runs.init(); err != nil {
		return nil, err
	}

	return st, nil
}

func (s *store) Runs() dao.RunRepository { return s.runs }

func (s *store) Close() error {
	return s.db.Close()
}

func wrapDBError(err error) error {
	sqliteErr := &sqlite.Error{}
	if errors.As(err, &sqliteErr) {
		return fmt.Errorf("%s", sqlite.ErrorCodeString[sqliteErr.Code()])
	} else if errors.Is(err, sql.ErrNoRows) {
		return dao.ErrNotFound
	}
	return err
}
