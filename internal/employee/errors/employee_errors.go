package employeeerrors

import (
	"net/http"

	"go-leave-admin/internal/shared/apperror"
)

var (
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid employee id",
		http.StatusUnprocessableEntity,
	)
	ErrInvalidDepartmentID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid department id",
		http.StatusUnprocessableEntity,
	)
	ErrInvalidGender = apperror.New(
		apperror.CodeInvalidInput,
		"invalid gender, expected MALE, FEMALE or OTHER",
		http.StatusUnprocessableEntity,
	)
	ErrInvalidDateFormat = apperror.New(
		apperror.CodeInvalidInput,
		"invalid date format, expected YYYY-MM-DD",
		http.StatusUnprocessableEntity,
	)
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)
	ErrDepartmentNotFound = apperror.New(
		apperror.CodeInvalidInput,
		"Department does not exist",
		http.StatusUnprocessableEntity,
	)
	ErrPhoneNumberExists = apperror.New(
		apperror.CodeConflict,
		"Phone number already exists",
		http.StatusConflict,
	)
	ErrEmailExists = apperror.New(
		apperror.CodeConflict,
		"Email id already exists",
		http.StatusConflict,
	)
)
