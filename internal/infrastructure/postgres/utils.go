package postgres

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

// formatSeq arma identificadores de negocio (ORD-001, TRX-042) a partir de una secuencia.
func formatSeq(prefix string, n int64) string {
	return fmt.Sprintf("%s-%03d", prefix, n)
}
