package request

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"eleave/internal/events"
	"eleave/internal/messaging/kafka"
	requesterrors "eleave/internal/request/errors"
	"eleave/internal/role"
	"eleave/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=request_service.go -destination=mock/request_service_mock.go -package=mock
type Service interface {
	Submit(ctx context.Context, employeeID string, req SubmitLeaveRequest) (LeaveRequestResponse, error)
	Decide(ctx context.Context, actorEmployeeID, historyID string, req DecideRequest) (LeaveRequestResponse, error)
	ProvideInfo(ctx context.Context, employeeID, requestID string, req ProvideInfoRequest) (LeaveRequestResponse, error)
	Cancel(ctx context.Context, employeeID, requestID string, req CancelRequest) (LeaveRequestResponse, error)
	GetByID(ctx context.Context, id string) (LeaveRequestResponse, error)
	ListByEmployee(ctx context.Context, employeeID, status string) ([]LeaveRequestResponse, error)
	Inbox(ctx context.Context, approverID string) ([]InboxItemResponse, error)
	History(ctx context.Context, requestID string) ([]ApprovalHistoryResponse, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	outbox kafka.OutboxRepository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	return NewServiceWithOutbox(db, repo, nil, logger...)
}

func NewServiceWithOutbox(
	db *sql.DB,
	repo Repository,
	outboxRepo kafka.OutboxRepository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("request.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("request.service")
	}
	return &service{db: db, repo: repo, outbox: outboxRepo, logger: l}
}

func (s *service) Submit(ctx context.Context, employeeID string, req SubmitLeaveRequest) (LeaveRequestResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("submit leave request requested",
		zap.String("request_id", rid),
		zap.String("employee_id", employeeID),
		zap.String("leave_date", req.LeaveDate),
		zap.String("duration", req.Duration),
	)

	if _, err := uuid.Parse(employeeID); err != nil {
		return LeaveRequestResponse{}, requesterrors.ErrInvalidEmployeeID
	}
	leaveDate, err := time.Parse("2006-01-02", req.LeaveDate)
	if err != nil {
		return LeaveRequestResponse{}, requesterrors.ErrInvalidDateFormat
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("submit begin tx failed", zap.Error(err))
		return LeaveRequestResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	requester, err := qtx.FindEmployeeByID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LeaveRequestResponse{}, requesterrors.ErrInvalidEmployeeID
		}
		s.logger.Error("submit requester lookup failed", zap.Error(err))
		return LeaveRequestResponse{}, err
	}

	manager, err := qtx.FindApproverInDepartment(ctx, requester.DepartmentID.String(), role.KindManager)
	if err != nil {
		s.logger.Error("submit manager lookup failed", zap.Error(err))
		return LeaveRequestResponse{}, err
	}

	lr := &LeaveRequest{
		ID:            uuid.New(),
		EmployeeID:    requester.ID,
		Reason:        req.Reason,
		LeaveDate:     leaveDate,
		Duration:      req.Duration,
		AttachmentRef: req.AttachmentRef,
		Employee:      requester,
	}

	if manager == nil {
		// Routing failure is a recorded business outcome, not a crash: the
		// request is created already terminated.
		lr.Status = StatusRejected
		lr.CurrentApproverRole = ApproverRoleCompleted
		lr.Reason = appendSystemNote(lr.Reason, "no manager found in your department; request rejected automatically")
	} else {
		lr.Status = StatusPending
		lr.CurrentApproverRole = ApproverRoleManager
	}

	if err := qtx.CreateRequest(ctx, lr); err != nil {
		s.logger.Error("submit persist failed", zap.Error(err))
		return LeaveRequestResponse{}, err
	}

	if manager == nil {
		s.logger.Warn("submit routed to auto-reject, no manager in department",
			zap.String("request_id", rid),
			zap.String("leave_id", lr.ID.String()),
			zap.String("department_id", requester.DepartmentID.String()),
		)
		if err := s.queueNotification(ctx, tx, lr, requester,
			"leave.rejected",
			"Leave request rejected",
			fmt.Sprintf("Your leave request for %s could not be routed: no manager was found in your department.", req.LeaveDate),
		); err != nil {
			return LeaveRequestResponse{}, err
		}
	} else {
		h := &ApprovalHistory{
			ID:            uuid.New(),
			RequestID:     lr.ID,
			ApproverID:    manager.ID,
			ApprovalOrder: OrderManager,
			Status:        StatusPending,
		}
		if err := qtx.CreateHistory(ctx, h); err != nil {
			s.logger.Error("submit history persist failed", zap.Error(err))
			return LeaveRequestResponse{}, err
		}
		if err := s.queueNotification(ctx, tx, lr, manager,
			"leave.approval_requested",
			"Leave request awaiting your approval",
			requestSummary(lr),
		); err != nil {
			return LeaveRequestResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("submit commit failed", zap.Error(err))
		return LeaveRequestResponse{}, err
	}

	s.logger.Info("submit leave request success",
		zap.String("request_id", rid),
		zap.String("leave_id", lr.ID.String()),
		zap.String("status", lr.Status),
	)
	return mapToResponse(*lr), nil
}

func (s *service) Decide(ctx context.Context, actorEmployeeID, historyID string, req DecideRequest) (LeaveRequestResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("decide requested",
		zap.String("request_id", rid),
		zap.String("actor_employee_id", actorEmployeeID),
		zap.String("history_id", historyID),
		zap.String("decision", req.Decision),
	)

	if _, err := uuid.Parse(actorEmployeeID); err != nil {
		return LeaveRequestResponse{}, requesterrors.ErrInvalidEmployeeID
	}
	if _, err := uuid.Parse(historyID); err != nil {
		return LeaveRequestResponse{}, requesterrors.ErrInvalidHistoryID
	}
	if req.Decision != DecisionApprove && !hasComment(req.Comment) {
		return LeaveRequestResponse{}, requesterrors.ErrCommentRequired
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("decide begin tx failed", zap.Error(err))
		return LeaveRequestResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	h, err := qtx.FindHistoryByID(ctx, historyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LeaveRequestResponse{}, requesterrors.ErrHistoryNotFound
		}
		s.logger.Error("decide history lookup failed", zap.Error(err))
		return LeaveRequestResponse{}, err
	}
	if h.ApproverID.String() != actorEmployeeID {
		return LeaveRequestResponse{}, requesterrors.ErrNotApprovalOwner
	}
	if h.Status != StatusPending {
		return LeaveRequestResponse{}, requesterrors.ErrAlreadyDecided
	}

	lr, err := qtx.FindRequestByID(ctx, h.RequestID.String())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LeaveRequestResponse{}, requesterrors.ErrRequestNotFound
		}
		s.logger.Error("decide request lookup failed", zap.Error(err))
		return LeaveRequestResponse{}, err
	}
	switch lr.Status {
	case StatusApproved, StatusRejected:
		return LeaveRequestResponse{}, requesterrors.ErrRequestFinalized
	case StatusInfoRequested:
		return LeaveRequestResponse{}, requesterrors.ErrAwaitingInfo
	}

	now := time.Now().UTC()

	switch req.Decision {
	case DecisionApprove:
		h.Status = StatusApproved
		h.Comment = req.Comment
		h.DecidedAt = &now
		if err := qtx.UpdateHistory(ctx, h); err != nil {
			s.logger.Error("decide history persist failed", zap.Error(err))
			return LeaveRequestResponse{}, err
		}
		if err := s.advanceStage(ctx, tx, qtx, lr, h); err != nil {
			return LeaveRequestResponse{}, err
		}

	case DecisionReject:
		h.Status = StatusRejected
		h.Comment = req.Comment
		h.DecidedAt = &now
		if err := qtx.UpdateHistory(ctx, h); err != nil {
			s.logger.Error("decide history persist failed", zap.Error(err))
			return LeaveRequestResponse{}, err
		}
		if h.ApprovalOrder == OrderHRSafety {
			if err := qtx.DeletePendingSiblings(ctx, lr.ID.String(), h.ID.String()); err != nil {
				s.logger.Error("decide sibling cleanup failed", zap.Error(err))
				return LeaveRequestResponse{}, err
			}
		}
		lr.Status = StatusRejected
		lr.CurrentApproverRole = ApproverRoleCompleted
		if err := s.applyRequestUpdate(ctx, qtx, lr); err != nil {
			return LeaveRequestResponse{}, err
		}
		if err := s.queueNotification(ctx, tx, lr, lr.Employee,
			"leave.rejected",
			"Leave request rejected",
			fmt.Sprintf("Your leave request for %s was rejected. Comment: %s", lr.LeaveDate.Format("2006-01-02"), *req.Comment),
		); err != nil {
			return LeaveRequestResponse{}, err
		}

	case DecisionRequestInfo:
		// The work item stays open; the requester owes information before
		// this approver can decide.
		lr.Status = StatusInfoRequested
		lr.InfoRequestComment = req.Comment
		if err := s.applyRequestUpdate(ctx, qtx, lr); err != nil {
			return LeaveRequestResponse{}, err
		}
		if err := s.queueNotification(ctx, tx, lr, lr.Employee,
			"leave.info_requested",
			"Additional information requested",
			fmt.Sprintf("An approver needs more information on your leave request for %s: %s", lr.LeaveDate.Format("2006-01-02"), *req.Comment),
		); err != nil {
			return LeaveRequestResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("decide commit failed", zap.Error(err))
		return LeaveRequestResponse{}, err
	}

	s.logger.Info("decide success",
		zap.String("request_id", rid),
		zap.String("leave_id", lr.ID.String()),
		zap.String("decision", req.Decision),
		zap.Int("approval_order", h.ApprovalOrder),
		zap.String("status", lr.Status),
	)
	return mapToResponse(*lr), nil
}

// advanceStage moves an approved request to whoever must act next, or
// terminates it when the chain cannot continue.
func (s *service) advanceStage(ctx context.Context, tx *sql.Tx, qtx Repository, lr *LeaveRequest, h *ApprovalHistory) error {
	switch h.ApprovalOrder {
	case OrderManager:
		supervisor, err := qtx.FindApproverInDepartment(ctx, lr.Employee.DepartmentID.String(), role.KindSupervisor)
		if err != nil {
			s.logger.Error("advance supervisor lookup failed", zap.Error(err))
			return err
		}
		if supervisor == nil {
			return s.terminateRouting(ctx, tx, qtx, lr, "no supervisor found in your department")
		}
		next := &ApprovalHistory{
			ID:            uuid.New(),
			RequestID:     lr.ID,
			ApproverID:    supervisor.ID,
			ApprovalOrder: OrderSupervisor,
			Status:        StatusPending,
		}
		if err := qtx.CreateHistory(ctx, next); err != nil {
			s.logger.Error("advance history persist failed", zap.Error(err))
			return err
		}
		lr.CurrentApproverRole = ApproverRoleSupervisor
		if err := s.applyRequestUpdate(ctx, qtx, lr); err != nil {
			return err
		}
		return s.queueNotification(ctx, tx, lr, supervisor,
			"leave.approval_requested",
			"Leave request awaiting your approval",
			requestSummary(lr),
		)

	case OrderSupervisor:
		approvers, err := qtx.FindApproversByKinds(ctx, role.KindHR, role.KindSafety)
		if err != nil {
			s.logger.Error("advance hr/safety lookup failed", zap.Error(err))
			return err
		}
		if len(approvers) == 0 {
			return s.terminateRouting(ctx, tx, qtx, lr, "no HR or Safety approver is registered")
		}
		for i := range approvers {
			next := &ApprovalHistory{
				ID:            uuid.New(),
				RequestID:     lr.ID,
				ApproverID:    approvers[i].ID,
				ApprovalOrder: OrderHRSafety,
				Status:        StatusPending,
			}
			if err := qtx.CreateHistory(ctx, next); err != nil {
				s.logger.Error("advance fan-out persist failed", zap.Error(err))
				return err
			}
		}
		lr.CurrentApproverRole = ApproverRoleHRSafety
		if err := s.applyRequestUpdate(ctx, qtx, lr); err != nil {
			return err
		}
		for i := range approvers {
			if err := s.queueNotification(ctx, tx, lr, &approvers[i],
				"leave.approval_requested",
				"Leave request awaiting your approval",
				requestSummary(lr),
			); err != nil {
				return err
			}
		}
		return nil

	case OrderHRSafety:
		// First decision wins; the siblings' open work items disappear and
		// any in-flight decision on them fails the version check.
		if err := qtx.DeletePendingSiblings(ctx, lr.ID.String(), h.ID.String()); err != nil {
			s.logger.Error("advance sibling cleanup failed", zap.Error(err))
			return err
		}
		lr.Status = StatusApproved
		lr.CurrentApproverRole = ApproverRoleCompleted
		if err := s.applyRequestUpdate(ctx, qtx, lr); err != nil {
			return err
		}
		return s.queueNotification(ctx, tx, lr, lr.Employee,
			"leave.approved",
			"Leave request approved",
			fmt.Sprintf("Your leave request for %s has been approved. Please check out with security before leaving.", lr.LeaveDate.Format("2006-01-02")),
		)
	}
	return nil
}

func (s *service) terminateRouting(ctx context.Context, tx *sql.Tx, qtx Repository, lr *LeaveRequest, note string) error {
	s.logger.Warn("routing failure, terminating request",
		zap.String("leave_id", lr.ID.String()),
		zap.String("note", note),
	)
	lr.Status = StatusRejected
	lr.CurrentApproverRole = ApproverRoleCompleted
	lr.Reason = appendSystemNote(lr.Reason, note+"; request rejected automatically")
	if err := s.applyRequestUpdate(ctx, qtx, lr); err != nil {
		return err
	}
	return s.queueNotification(ctx, tx, lr, lr.Employee,
		"leave.rejected",
		"Leave request rejected",
		fmt.Sprintf("Your leave request for %s could not be routed: %s.", lr.LeaveDate.Format("2006-01-02"), note),
	)
}

func (s *service) ProvideInfo(ctx context.Context, employeeID, requestID string, req ProvideInfoRequest) (LeaveRequestResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("provide info requested",
		zap.String("request_id", rid),
		zap.String("employee_id", employeeID),
		zap.String("leave_id", requestID),
	)

	if _, err := uuid.Parse(employeeID); err != nil {
		return LeaveRequestResponse{}, requesterrors.ErrInvalidEmployeeID
	}
	if _, err := uuid.Parse(requestID); err != nil {
		return LeaveRequestResponse{}, requesterrors.ErrInvalidRequestID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("provide info begin tx failed", zap.Error(err))
		return LeaveRequestResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	lr, err := qtx.FindRequestByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LeaveRequestResponse{}, requesterrors.ErrRequestNotFound
		}
		s.logger.Error("provide info request lookup failed", zap.Error(err))
		return LeaveRequestResponse{}, err
	}
	if lr.EmployeeID.String() != employeeID {
		return LeaveRequestResponse{}, requesterrors.ErrNotOwner
	}
	if lr.Status != StatusInfoRequested {
		return LeaveRequestResponse{}, requesterrors.ErrNotAwaitingInfo
	}

	lr.Reason = req.Reason
	if req.AttachmentRef != nil {
		lr.AttachmentRef = req.AttachmentRef
	}
	lr.Status = StatusPending
	lr.InfoRequestComment = nil
	// CurrentApproverRole is untouched: the request resumes at the same
	// stage it was paused on.
	if err := s.applyRequestUpdate(ctx, qtx, lr); err != nil {
		return LeaveRequestResponse{}, err
	}

	holders, err := qtx.FindPendingHistoriesByRequest(ctx, requestID)
	if err != nil {
		s.logger.Error("provide info holder lookup failed", zap.Error(err))
		return LeaveRequestResponse{}, err
	}
	for i := range holders {
		if err := s.queueNotification(ctx, tx, lr, holders[i].Approver,
			"leave.info_provided",
			"Additional information supplied",
			requestSummary(lr),
		); err != nil {
			return LeaveRequestResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("provide info commit failed", zap.Error(err))
		return LeaveRequestResponse{}, err
	}

	s.logger.Info("provide info success",
		zap.String("request_id", rid),
		zap.String("leave_id", requestID),
		zap.String("stage", lr.CurrentApproverRole),
	)
	return mapToResponse(*lr), nil
}

func (s *service) Cancel(ctx context.Context, employeeID, requestID string, req CancelRequest) (LeaveRequestResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("cancel requested",
		zap.String("request_id", rid),
		zap.String("employee_id", employeeID),
		zap.String("leave_id", requestID),
	)

	if _, err := uuid.Parse(employeeID); err != nil {
		return LeaveRequestResponse{}, requesterrors.ErrInvalidEmployeeID
	}
	if _, err := uuid.Parse(requestID); err != nil {
		return LeaveRequestResponse{}, requesterrors.ErrInvalidRequestID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("cancel begin tx failed", zap.Error(err))
		return LeaveRequestResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	lr, err := qtx.FindRequestByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LeaveRequestResponse{}, requesterrors.ErrRequestNotFound
		}
		s.logger.Error("cancel request lookup failed", zap.Error(err))
		return LeaveRequestResponse{}, err
	}
	if lr.EmployeeID.String() != employeeID {
		return LeaveRequestResponse{}, requesterrors.ErrNotOwner
	}
	if lr.Status != StatusPending && lr.Status != StatusInfoRequested {
		return LeaveRequestResponse{}, requesterrors.ErrNotCancellable
	}

	holders, err := qtx.FindPendingHistoriesByRequest(ctx, requestID)
	if err != nil {
		s.logger.Error("cancel holder lookup failed", zap.Error(err))
		return LeaveRequestResponse{}, err
	}

	now := time.Now().UTC()
	comment := "[system] cancelled by requester: " + req.Reason
	for i := range holders {
		holders[i].Status = StatusRejected
		holders[i].Comment = &comment
		holders[i].DecidedAt = &now
		if err := qtx.UpdateHistory(ctx, &holders[i]); err != nil {
			s.logger.Error("cancel history persist failed", zap.Error(err))
			return LeaveRequestResponse{}, err
		}
	}

	lr.Status = StatusRejected
	lr.CurrentApproverRole = ApproverRoleCompleted
	if err := s.applyRequestUpdate(ctx, qtx, lr); err != nil {
		return LeaveRequestResponse{}, err
	}

	for i := range holders {
		if err := s.queueNotification(ctx, tx, lr, holders[i].Approver,
			"leave.cancelled",
			"Leave request cancelled",
			fmt.Sprintf("The leave request you were reviewing for %s has been cancelled by the requester: %s", lr.LeaveDate.Format("2006-01-02"), req.Reason),
		); err != nil {
			return LeaveRequestResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("cancel commit failed", zap.Error(err))
		return LeaveRequestResponse{}, err
	}

	s.logger.Info("cancel success",
		zap.String("request_id", rid),
		zap.String("leave_id", requestID),
	)
	return mapToResponse(*lr), nil
}

func (s *service) GetByID(ctx context.Context, id string) (LeaveRequestResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return LeaveRequestResponse{}, requesterrors.ErrInvalidRequestID
	}
	lr, err := s.repo.FindRequestByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LeaveRequestResponse{}, requesterrors.ErrRequestNotFound
		}
		return LeaveRequestResponse{}, err
	}
	return mapToResponse(*lr), nil
}

func (s *service) ListByEmployee(ctx context.Context, employeeID, status string) ([]LeaveRequestResponse, error) {
	if _, err := uuid.Parse(employeeID); err != nil {
		return nil, requesterrors.ErrInvalidEmployeeID
	}
	requests, err := s.repo.FindAllByEmployee(ctx, employeeID, status)
	if err != nil {
		return nil, err
	}
	resp := make([]LeaveRequestResponse, len(requests))
	for i, lr := range requests {
		resp[i] = mapToResponse(lr)
	}
	return resp, nil
}

func (s *service) Inbox(ctx context.Context, approverID string) ([]InboxItemResponse, error) {
	if _, err := uuid.Parse(approverID); err != nil {
		return nil, requesterrors.ErrInvalidEmployeeID
	}
	items, err := s.repo.FindInboxByApprover(ctx, approverID)
	if err != nil {
		return nil, err
	}
	resp := make([]InboxItemResponse, 0, len(items))
	for _, item := range items {
		if item.Request == nil {
			continue
		}
		resp = append(resp, InboxItemResponse{
			HistoryID:     item.ID.String(),
			ApprovalOrder: item.ApprovalOrder,
			Request:       mapToResponse(*item.Request),
		})
	}
	return resp, nil
}

func (s *service) History(ctx context.Context, requestID string) ([]ApprovalHistoryResponse, error) {
	if _, err := uuid.Parse(requestID); err != nil {
		return nil, requesterrors.ErrInvalidRequestID
	}
	items, err := s.repo.ListHistoryByRequest(ctx, requestID)
	if err != nil {
		return nil, err
	}
	resp := make([]ApprovalHistoryResponse, len(items))
	for i, item := range items {
		resp[i] = mapHistoryToResponse(item)
	}
	return resp, nil
}

// applyRequestUpdate writes the transition through the version check; a lost
// race surfaces as the stale-state conflict, never a silent double apply.
func (s *service) applyRequestUpdate(ctx context.Context, qtx Repository, lr *LeaveRequest) error {
	ok, err := qtx.UpdateRequest(ctx, lr)
	if err != nil {
		s.logger.Error("request update failed", zap.String("leave_id", lr.ID.String()), zap.Error(err))
		return err
	}
	if !ok {
		s.logger.Warn("request update lost version race", zap.String("leave_id", lr.ID.String()))
		return requesterrors.ErrRequestFinalized
	}
	return nil
}

func (s *service) queueNotification(
	ctx context.Context,
	tx *sql.Tx,
	lr *LeaveRequest,
	recipient *EmployeeRef,
	eventType, subject, body string,
) error {
	if s.outbox == nil || recipient == nil {
		return nil
	}

	chatID := ""
	if recipient.ChatUserID != nil {
		chatID = *recipient.ChatUserID
	}
	event := events.NotificationQueued{
		EventType:       eventType,
		RequestID:       contextutil.GetRequestID(ctx),
		LeaveRequestID:  lr.ID.String(),
		RecipientID:     recipient.ID.String(),
		RecipientName:   recipient.FullName,
		RecipientEmail:  recipient.Email,
		RecipientChatID: chatID,
		Subject:         subject,
		Body:            body,
		ChatText:        subject + ": " + body,
		OccurredAt:      time.Now().UTC(),
	}
	payload, err := json.Marshal(event)
	if err != nil {
		s.logger.Error("marshal notification event failed", zap.Error(err))
		return err
	}

	return s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
		ID:          uuid.NewString(),
		RequestID:   event.RequestID,
		AggregateID: lr.ID.String(),
		EventType:   eventType,
		Topic:       events.NotificationTopic,
		Payload:     payload,
		Status:      kafka.OutboxStatusPending,
	})
}

func appendSystemNote(reason, note string) string {
	return reason + "\n[system] " + note
}

func hasComment(c *string) bool {
	return c != nil && *c != ""
}

func requestSummary(lr *LeaveRequest) string {
	name := ""
	if lr.Employee != nil {
		name = lr.Employee.FullName
	}
	return fmt.Sprintf("%s requests leave on %s (%s). Reason: %s",
		name, lr.LeaveDate.Format("2006-01-02"), lr.Duration, lr.Reason)
}

func mapToResponse(lr LeaveRequest) LeaveRequestResponse {
	resp := LeaveRequestResponse{
		ID:                  lr.ID.String(),
		EmployeeID:          lr.EmployeeID.String(),
		Reason:              lr.Reason,
		LeaveDate:           lr.LeaveDate.Format("2006-01-02"),
		Duration:            lr.Duration,
		Status:              lr.Status,
		CurrentApproverRole: lr.CurrentApproverRole,
		DetailedStatus:      DetailedStatus(lr.Status, lr.CurrentApproverRole),
		InfoRequestComment:  lr.InfoRequestComment,
		AttachmentRef:       lr.AttachmentRef,
		Version:             lr.Version,
		CreatedAt:           lr.CreatedAt.Format(time.RFC3339),
	}
	if lr.Employee != nil {
		resp.EmployeeName = lr.Employee.FullName
	}
	return resp
}

func mapHistoryToResponse(h ApprovalHistory) ApprovalHistoryResponse {
	resp := ApprovalHistoryResponse{
		ID:            h.ID.String(),
		RequestID:     h.RequestID.String(),
		ApproverID:    h.ApproverID.String(),
		ApprovalOrder: h.ApprovalOrder,
		Status:        h.Status,
		Comment:       h.Comment,
	}
	if h.Approver != nil {
		resp.ApproverName = h.Approver.FullName
	}
	if h.DecidedAt != nil {
		v := h.DecidedAt.Format(time.RFC3339)
		resp.DecidedAt = &v
	}
	return resp
}
