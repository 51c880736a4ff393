package services

import (
	"errors"
	"strings"

	mysql "github.com/go-sql-driver/mysql"
)

// isDuplicateKeyError detects unique index violations for MySQL (typed) and
// SQLite (message match, used by the dev/test driver).
func isDuplicateKeyError(err error) bool {
	if err == nil {
		return false
	}
	var merr *mysql.MySQLError
	if errors.As(err, &merr) {
		return merr.Number == 1062
	}
	lc := strings.ToLower(err.Error())
	return strings.Contains(lc, "duplicate entry") || strings.Contains(lc, "unique constraint failed")
}
