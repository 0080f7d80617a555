package requesterrors

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
		"invalid history item id",
		http.StatusBadRequest,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid employee id",
		http.StatusBadRequest,
	)
	ErrInvalidDateFormat = apperror.New(
		apperror.CodeInvalidInput,
		"invalid leave_date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrCommentRequired = apperror.New(
		apperror.CodeInvalidInput,
		"a comment is required for this decision",
		http.StatusBadRequest,
	)
	ErrRequestNotFound = apperror.New(
		apperror.CodeNotFound,
		"leave request not found",
		http.StatusNotFound,
	)
	ErrHistoryNotFound = apperror.New(
		apperror.CodeNotFound,
		"approval history item not found",
		http.StatusNotFound,
	)
	ErrNotApprovalOwner = apperror.New(
		apperror.CodeForbidden,
		"this approval item is assigned to another approver",
		http.StatusForbidden,
	)
	ErrNotOwner = apperror.New(
		apperror.CodeForbidden,
		"this leave request belongs to another employee",
		http.StatusForbidden,
	)
	ErrAlreadyDecided = apperror.New(
		apperror.CodeConflict,
		"this approval item has already been decided",
		http.StatusConflict,
	)
	ErrRequestFinalized = apperror.New(
		apperror.CodeStaleState,
		"request already finalized",
		http.StatusConflict,
	)
	ErrAwaitingInfo = apperror.New(
		apperror.CodeInvalidState,
		"request is awaiting additional information from the requester",
		http.StatusConflict,
	)
	ErrNotAwaitingInfo = apperror.New(
		apperror.CodeInvalidState,
		"request is not awaiting additional information",
		http.StatusBadRequest,
	)
	ErrNotCancellable = apperror.New(
		apperror.CodeInvalidState,
		"only pending requests can be cancelled",
		http.StatusBadRequest,
	)
)
