package applicationerrors

import (
	"net/http"

	"go-leave-admin/internal/shared/apperror"
)

var (
	ErrInvalidApplicationID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid application id",
		http.StatusUnprocessableEntity,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid employee id",
		http.StatusUnprocessableEntity,
	)
	ErrInvalidApplicationType = apperror.New(
		apperror.CodeInvalidInput,
		"invalid application type, expected LEAVE or WORK_FROM_HOME",
		http.StatusUnprocessableEntity,
	)
	ErrInvalidStatus = apperror.New(
		apperror.CodeInvalidInput,
		"invalid status, expected PENDING, APPROVED or REJECTED",
		http.StatusUnprocessableEntity,
	)
	ErrInvalidDateFormat = apperror.New(
		apperror.CodeInvalidInput,
		"invalid date format, expected YYYY-MM-DD",
		http.StatusUnprocessableEntity,
	)
	ErrApplicationNotFound = apperror.New(
		apperror.CodeNotFound,
		"Application not found",
		http.StatusNotFound,
	)
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeInvalidInput,
		"Employee does not exist",
		http.StatusUnprocessableEntity,
	)
	ErrDepartmentConflict = apperror.New(
		apperror.CodeConflict,
		"Work From Home already taken from the same department",
		http.StatusConflict,
	)
)
