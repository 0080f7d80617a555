package security

import (
	"context"
	"database/sql"
	"errors"
	"time"

	securityerrors "eleave/internal/security/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=security_service.go -destination=mock/security_service_mock.go -package=mock
type Service interface {
	ListReadyToLeave(ctx context.Context, date string) ([]ReadyToLeaveResponse, error)
	RecordOut(ctx context.Context, requestID, guardID string) (InOutResponse, error)
	RecordIn(ctx context.Context, historyID, guardID string) (InOutResponse, error)
	ListCurrentlyOut(ctx context.Context, date string) ([]InOutResponse, error)
	VisitorIn(ctx context.Context, guardID string, req VisitorInRequest) (VisitorResponse, error)
	VisitorOut(ctx context.Context, visitorID, guardID string) (VisitorResponse, error)
	VisitorsInside(ctx context.Context) ([]VisitorResponse, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("security.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("security.service")
	}
	return &service{db: db, repo: repo, logger: l}
}

func (s *service) ListReadyToLeave(ctx context.Context, date string) ([]ReadyToLeaveResponse, error) {
	day := time.Now().UTC().Truncate(24 * time.Hour)
	if date != "" {
		parsed, err := time.Parse("2006-01-02", date)
		if err != nil {
			return nil, securityerrors.ErrInvalidDateFormat
		}
		day = parsed
	}

	requests, err := s.repo.FindReadyToLeave(ctx, day)
	if err != nil {
		s.logger.Error("list ready to leave failed", zap.Error(err))
		return nil, err
	}

	resp := make([]ReadyToLeaveResponse, len(requests))
	for i, lr := range requests {
		resp[i] = ReadyToLeaveResponse{
			RequestID:  lr.ID.String(),
			EmployeeID: lr.EmployeeID.String(),
			LeaveDate:  lr.LeaveDate.Format("2006-01-02"),
			Duration:   lr.Duration,
			Reason:     lr.Reason,
		}
		if lr.Employee != nil {
			resp[i].EmployeeName = lr.Employee.FullName
		}
	}
	return resp, nil
}

func (s *service) RecordOut(ctx context.Context, requestID, guardID string) (InOutResponse, error) {
	s.logger.Debug("record out requested",
		zap.String("leave_id", requestID),
		zap.String("guard_id", guardID),
	)

	if _, err := uuid.Parse(requestID); err != nil {
		return InOutResponse{}, securityerrors.ErrInvalidRequestID
	}
	guardUUID, err := uuid.Parse(guardID)
	if err != nil {
		return InOutResponse{}, securityerrors.ErrInvalidGuardID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("record out begin tx failed", zap.Error(err))
		return InOutResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	lr, err := qtx.FindRequestByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return InOutResponse{}, securityerrors.ErrRequestNotFound
		}
		s.logger.Error("record out request lookup failed", zap.Error(err))
		return InOutResponse{}, err
	}
	if lr.Status != "Approved" {
		return InOutResponse{}, securityerrors.ErrRequestNotApproved
	}

	exists, err := qtx.ExistsForRequest(ctx, requestID)
	if err != nil {
		s.logger.Error("record out duplicate check failed", zap.Error(err))
		return InOutResponse{}, err
	}
	if exists {
		s.logger.Warn("record out duplicate rejected", zap.String("leave_id", requestID))
		return InOutResponse{}, securityerrors.ErrAlreadyCheckedOut
	}

	h := &InOutHistory{
		ID:         uuid.New(),
		RequestID:  lr.ID,
		EmployeeID: lr.EmployeeID,
		GuardID:    guardUUID,
		TimeOut:    time.Now().UTC(),
		Status:     StatusOut,
		Employee:   lr.Employee,
	}
	if err := qtx.CreateInOut(ctx, h); err != nil {
		s.logger.Error("record out persist failed", zap.Error(err))
		return InOutResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("record out commit failed", zap.Error(err))
		return InOutResponse{}, err
	}

	s.logger.Info("record out success",
		zap.String("leave_id", requestID),
		zap.String("in_out_id", h.ID.String()),
	)
	return mapInOutToResponse(*h), nil
}

func (s *service) RecordIn(ctx context.Context, historyID, guardID string) (InOutResponse, error) {
	s.logger.Debug("record in requested",
		zap.String("in_out_id", historyID),
		zap.String("guard_id", guardID),
	)

	if _, err := uuid.Parse(historyID); err != nil {
		return InOutResponse{}, securityerrors.ErrInvalidHistoryID
	}
	if _, err := uuid.Parse(guardID); err != nil {
		return InOutResponse{}, securityerrors.ErrInvalidGuardID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("record in begin tx failed", zap.Error(err))
		return InOutResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	h, err := qtx.FindInOutByID(ctx, historyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return InOutResponse{}, securityerrors.ErrHistoryNotFound
		}
		s.logger.Error("record in lookup failed", zap.Error(err))
		return InOutResponse{}, err
	}
	if h.Status == StatusCompleted {
		return InOutResponse{}, securityerrors.ErrAlreadyCompleted
	}

	now := time.Now().UTC()
	h.TimeIn = &now
	h.Status = StatusCompleted
	if err := qtx.UpdateInOut(ctx, h); err != nil {
		s.logger.Error("record in persist failed", zap.Error(err))
		return InOutResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("record in commit failed", zap.Error(err))
		return InOutResponse{}, err
	}

	s.logger.Info("record in success", zap.String("in_out_id", historyID))
	return mapInOutToResponse(*h), nil
}

// ListCurrentlyOut reports who is still out for the given day only; rows from
// earlier days are a reporting concern, not the gate's.
func (s *service) ListCurrentlyOut(ctx context.Context, date string) ([]InOutResponse, error) {
	day := time.Now().UTC().Truncate(24 * time.Hour)
	if date != "" {
		parsed, err := time.Parse("2006-01-02", date)
		if err != nil {
			return nil, securityerrors.ErrInvalidDateFormat
		}
		day = parsed
	}

	rows, err := s.repo.ListCurrentlyOut(ctx, day)
	if err != nil {
		s.logger.Error("list currently out failed", zap.Error(err))
		return nil, err
	}
	resp := make([]InOutResponse, len(rows))
	for i, h := range rows {
		resp[i] = mapInOutToResponse(h)
	}
	return resp, nil
}

func (s *service) VisitorIn(ctx context.Context, guardID string, req VisitorInRequest) (VisitorResponse, error) {
	guardUUID, err := uuid.Parse(guardID)
	if err != nil {
		return VisitorResponse{}, securityerrors.ErrInvalidGuardID
	}

	v := &VisitorLog{
		ID:            uuid.New(),
		VisitorName:   req.VisitorName,
		ContactPerson: req.ContactPerson,
		Reason:        req.Reason,
		GuardID:       guardUUID,
		TimeIn:        time.Now().UTC(),
		Status:        VisitorStatusIn,
	}
	if err := s.repo.CreateVisitor(ctx, v); err != nil {
		s.logger.Error("visitor in persist failed", zap.Error(err))
		return VisitorResponse{}, err
	}

	s.logger.Info("visitor in success",
		zap.String("visitor_id", v.ID.String()),
		zap.String("visitor_name", v.VisitorName),
	)
	return mapVisitorToResponse(*v), nil
}

func (s *service) VisitorOut(ctx context.Context, visitorID, guardID string) (VisitorResponse, error) {
	if _, err := uuid.Parse(visitorID); err != nil {
		return VisitorResponse{}, securityerrors.ErrInvalidHistoryID
	}
	if _, err := uuid.Parse(guardID); err != nil {
		return VisitorResponse{}, securityerrors.ErrInvalidGuardID
	}

	v, err := s.repo.FindVisitorByID(ctx, visitorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return VisitorResponse{}, securityerrors.ErrVisitorNotFound
		}
		s.logger.Error("visitor out lookup failed", zap.Error(err))
		return VisitorResponse{}, err
	}
	if v.Status == VisitorStatusOut {
		return VisitorResponse{}, securityerrors.ErrVisitorAlreadyOut
	}

	now := time.Now().UTC()
	v.TimeOut = &now
	v.Status = VisitorStatusOut
	if err := s.repo.UpdateVisitor(ctx, v); err != nil {
		s.logger.Error("visitor out persist failed", zap.Error(err))
		return VisitorResponse{}, err
	}

	s.logger.Info("visitor out success", zap.String("visitor_id", visitorID))
	return mapVisitorToResponse(*v), nil
}

func (s *service) VisitorsInside(ctx context.Context) ([]VisitorResponse, error) {
	rows, err := s.repo.ListVisitorsInside(ctx)
	if err != nil {
		s.logger.Error("visitors inside failed", zap.Error(err))
		return nil, err
	}
	resp := make([]VisitorResponse, len(rows))
	for i, v := range rows {
		resp[i] = mapVisitorToResponse(v)
	}
	return resp, nil
}

func mapInOutToResponse(h InOutHistory) InOutResponse {
	resp := InOutResponse{
		ID:         h.ID.String(),
		RequestID:  h.RequestID.String(),
		EmployeeID: h.EmployeeID.String(),
		GuardID:    h.GuardID.String(),
		TimeOut:    h.TimeOut.Format(time.RFC3339),
		Status:     h.Status,
	}
	if h.Employee != nil {
		resp.EmployeeName = h.Employee.FullName
	}
	if h.Guard != nil {
		resp.GuardName = h.Guard.FullName
	}
	if h.TimeIn != nil {
		v := h.TimeIn.Format(time.RFC3339)
		resp.TimeIn = &v
	}
	return resp
}

func mapVisitorToResponse(v VisitorLog) VisitorResponse {
	resp := VisitorResponse{
		ID:            v.ID.String(),
		VisitorName:   v.VisitorName,
		ContactPerson: v.ContactPerson,
		Reason:        v.Reason,
		GuardID:       v.GuardID.String(),
		TimeIn:        v.TimeIn.Format(time.RFC3339),
		Status:        v.Status,
	}
	if v.Guard != nil {
		resp.GuardName = v.Guard.FullName
	}
	if v.TimeOut != nil {
		t := v.TimeOut.Format(time.RFC3339)
		resp.TimeOut = &t
	}
	return resp
}
