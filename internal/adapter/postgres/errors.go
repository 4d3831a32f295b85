package postgres

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"bazaar-promo/internal/core/port"
)

// classify maps driver errors onto the port's error taxonomy.
//
// Authorization failures are SQLSTATE class 28 (invalid authorization)
// and 42501 (insufficient privilege); they become ErrPermissionDenied.
// Connect errors mean no statement ever reached the server, so the write
// was definitely not applied; they become ErrStoreUnavailable. Anything
// else stays unclassified: the write may have partially applied and the
// orchestrator must not compensate for it.
func classify(err error) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "42501", "28000", "28P01":
			return fmt.Errorf("%w: %s", port.ErrPermissionDenied, pgErr.Message)
		}
	}
	var connErr *pgconn.ConnectError
	if errors.As(err, &connErr) {
		return fmt.Errorf("%w: %v", port.ErrStoreUnavailable, err)
	}
	return err
}
