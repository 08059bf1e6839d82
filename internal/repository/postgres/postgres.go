package postgres

import (
	"errors"

	"github.com/lib/pq"
)

const (
	uniqueViolation = "23505"

	usersEmailKey = "users_email_key"
)

// isUniqueViolation reports whether err is a PostgreSQL unique constraint failure
func isUniqueViolation(err error) bool {
	_, ok := violatedConstraint(err)
	return ok
}

// violatedConstraint returns the name of the unique constraint err broke
func violatedConstraint(err error) (string, bool) {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) || pqErr.Code != uniqueViolation {
		return "", false
	}
	return pqErr.Constraint, true
}

// limitArg maps "0 means all" onto a SQL LIMIT parameter (NULL is unbounded)
func limitArg(limit int) any {
	if limit <= 0 {
		return nil
	}
	return limit
}
