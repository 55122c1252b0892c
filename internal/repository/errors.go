package repository

import (
	"errors"
	"fmt"

	"github.com/lib/pq"
)

// PostgreSQLのSQLSTATEコード
const (
	pqUniqueViolation pq.ErrorCode = "23505"
	pqCheckViolation  pq.ErrorCode = "23514"
)

// translatePQError はpq.Errorを制約違反の番兵エラーに変換する。
// 該当しない場合はmsgでラップしたエラーを返す。
func translatePQError(err error, msg string) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case pqUniqueViolation:
			return fmt.Errorf("%s: %w (%s)", msg, ErrDuplicate, pqErr.Constraint)
		case pqCheckViolation:
			return fmt.Errorf("%s: %w (%s)", msg, ErrCheckViolation, pqErr.Constraint)
		}
	}
	return fmt.Errorf("%s: %w", msg, err)
}
