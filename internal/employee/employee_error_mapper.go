package employee

import (
	"errors"
	"strings"

	employeeerrors "go-leave-admin/internal/employee/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// mapRepositoryError translates store-level failures into domain errors. The
// unique indexes are the backstop for writes that race past the duplicate
// pre-checks.
func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return employeeerrors.ErrEmployeeNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" {
			switch pgErr.ConstraintName {
			case "uq_employee_phone":
				return employeeerrors.ErrPhoneNumberExists
			case "uq_employee_email":
				return employeeerrors.ErrEmailExists
			}
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "uq_employee_phone") {
		return employeeerrors.ErrPhoneNumberExists
	}
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "uq_employee_email") {
		return employeeerrors.ErrEmailExists
	}

	return err
}
