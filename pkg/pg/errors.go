package pg

import (
	"errors"

	"github.com/jackc/pgx/v5"
)

var (
	ErrConnectionFailed  = errors.New("failed to open postgres connection")
	ErrParseConfig       = errors.New("failed to parse postgres config")
	ErrHealthcheckFailed = errors.New("postgres healthcheck failed")
)

// IsNotFound detects pgx.ErrNoRows for consistent not-found handling.
func IsNotFound(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}
