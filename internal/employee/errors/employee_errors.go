package employeeerrors

import (
	"net/http"

	"eleave/internal/shared/apperror"
)

var (
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid employee id",
		http.StatusBadRequest,
	)
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"employee not found",
		http.StatusNotFound,
	)
	ErrEmployeeAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"an employee with this email already exists",
		http.StatusConflict,
	)
	ErrEmployeeNumberAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"an employee with this number already exists",
		http.StatusConflict,
	)
	ErrEmployeeReferenced = apperror.New(
		apperror.CodeConflict,
		"employee is referenced by leave or in/out history and cannot be deleted",
		http.StatusConflict,
	)
	ErrNotSelf = apperror.New(
		apperror.CodeForbidden,
		"you may only update your own contact details",
		http.StatusForbidden,
	)
)
