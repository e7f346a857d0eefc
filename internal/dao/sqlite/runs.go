package sqlite

import (
	"context"
	"database/sql"
	"encoding/base64"
	"fmt"
	"time"

	"github.com/dekarrin/scramble/internal/dao"
	"github.com/google/uuid"
)

type runsDB struct {
	db *sql.DB
}

func (repo *runsDB) init() error {
	stmt := `CREATE TABLE IF NOT EXISTS runs (
		id TEXT NOT NULL PRIMARY KEY,
		source TEXT NOT NULL,
		stdout TEXT NOT NULL,
		stderr TEXT NOT NULL,
		error_msg TEXT NOT NULL,
		succeeded INTEGER NOT NULL,
		created INTEGER NOT NULL,
		tokens TEXT NOT NULL
	);`
	_, err := repo.db.Exec(stmt)
	if err != nil {
		return wrapDBError(err)
	}
	return nil
}

func (repo *runsDB) Close() error { return nil }

func (repo *runsDB) Create(ctx context.Context, run dao.Run) (dao.Run, error) {
	newID, err := uuid.NewRandom()
	if err != nil {
		return dao.Run{}, fmt.Errorf("could not generate ID: %w", err)
	}
	run.ID = newID
	run.Created = time.Now()

	stmt, err := repo.db.Prepare(`INSERT INTO runs (id, source, stdout, stderr, error_msg, succeeded, created, tokens) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return dao.Run{}, wrapDBError(err)
	}

	encTokens := base64.StdEncoding.EncodeToString(run.Tokens)
	_, err = stmt.ExecContext(ctx,
		run.ID.String(),
		run.Source,
		run.Stdout,
		run.Stderr,
		run.ErrorMsg,
		boolToInt(run.Succeeded),
		run.Created.Unix(),
		encTokens,
	)
	if err != nil {
		return dao.Run{}, wrapDBError(err)
	}

	return run, nil
}

func (repo *runsDB) GetByID(ctx context.Context, id uuid.UUID) (dao.Run, error) {
	row := repo.db.QueryRowContext(ctx, `SELECT source, stdout, stderr, error_msg, succeeded, created, tokens FROM runs WHERE id = ?;`, id.String())
	run, err := scanRun(row)
	if err != nil {
		return dao.Run{}, wrapDBError(err)
	}
	run.ID = id
	return run, nil
}

func (repo *runsDB) GetAll(ctx context.Context) ([]dao.Run, error) {
	rows, err := repo.db.QueryContext(ctx, `SELECT id, source, stdout, stderr, error_msg, succeeded, created, tokens FROM runs ORDER BY created ASC;`)
	if err != nil {
		return nil, wrapDBError(err)
	}
	defer rows.Close()

	var all []dao.Run
	for rows.Next() {
		var id string
		var run dao.Run
		var succeeded int
		var created int64
		var encTokens string

		if err := rows.Scan(&id, &run.Source, &run.Stdout, &run.Stderr, &run.ErrorMsg, &succeeded, &created, &encTokens); err != nil {
			return nil, wrapDBError(err)
		}

		run.ID, err = uuid.Parse(id)
		if err != nil {
			return all, fmt.Errorf("stored UUID %q is invalid", id)
		}
		run.Succeeded = succeeded != 0
		run.Created = time.Unix(created, 0)
		run.Tokens, err = base64.StdEncoding.DecodeString(encTokens)
		if err != nil {
			return all, fmt.Errorf("%w: tokens for run %s", dao.ErrDecodingFailure, id)
		}

		all = append(all, run)
	}

	if err := rows.Err(); err != nil {
		return all, wrapDBError(err)
	}
	return all, nil
}

func scanRun(row *sql.Row) (dao.Run, error) {
	var run dao.Run
	var succeeded int
	var created int64
	var encTokens string

	err := row.Scan(&run.Source, &run.Stdout, &run.Stderr, &run.ErrorMsg, &succeeded, &created, &encTokens)
	if err != nil {
		return dao.Run{}, err
	}

	run.Succeeded = succeeded != 0
	run.Created = time.Unix(created, 0)
	run.Tokens, err = base64.StdEncoding.DecodeString(encTokens)
	if err != nil {
		return dao.Run{}, fmt.Errorf("%w: tokens", dao.ErrDecodingFailure)
	}
	return run, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
