package securityerrors

import (
	"net/http"

	"eleave/internal/shared/apperror"
)

var (
	ErrInvalidRequestID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid request id",
		http.StatusBadRequest,
	)
	ErrInvalidHistoryID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid history id",
		http.StatusBadRequest,
	)
	ErrInvalidGuardID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid guard id",
		http.StatusBadRequest,
	)
	ErrInvalidDateFormat = apperror.New(
		apperror.CodeInvalidInput,
		"invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrRequestNotFound = apperror.New(
		apperror.CodeNotFound,
		"leave request not found",
		http.StatusNotFound,
	)
	ErrHistoryNotFound = apperror.New(
		apperror.CodeNotFound,
		"in/out record not found",
		http.StatusNotFound,
	)
	ErrVisitorNotFound = apperror.New(
		apperror.CodeNotFound,
		"visitor log not found",
		http.StatusNotFound,
	)
	ErrRequestNotApproved = apperror.New(
		apperror.CodeInvalidState,
		"only approved requests can be checked out",
		http.StatusConflict,
	)
	ErrAlreadyCheckedOut = apperror.New(
		apperror.CodeStaleState,
		"this request has already been checked out",
		http.StatusConflict,
	)
	ErrAlreadyCompleted = apperror.New(
		apperror.CodeStaleState,
		"this in/out record is already completed",
		http.StatusConflict,
	)
	ErrVisitorAlreadyOut = apperror.New(
		apperror.CodeStaleState,
		"this visitor has already been signed out",
		http.StatusConflict,
	)
)
