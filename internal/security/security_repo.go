package security

import (
	"context"
	"database/sql"
	"time"

	"eleave/internal/shared/connection"

	"gorm.io/gorm"
)

//go:generate mockgen -source=security_repo.go -destination=mock/security_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository

	FindReadyToLeave(ctx context.Context, date time.Time) ([]LeaveRequestRef, error)
	FindRequestByID(ctx context.Context, id string) (*LeaveRequestRef, error)
	ExistsForRequest(ctx context.Context, requestID string) (bool, error)

	CreateInOut(ctx context.Context, h *InOutHistory) error
	FindInOutByID(ctx context.Context, id string) (*InOutHistory, error)
	UpdateInOut(ctx context.Context, h *InOutHistory) error
	ListCurrentlyOut(ctx context.Context, date time.Time) ([]InOutHistory, error)

	CreateVisitor(ctx context.Context, v *VisitorLog) error
	FindVisitorByID(ctx context.Context, id string) (*VisitorLog, error)
	UpdateVisitor(ctx context.Context, v *VisitorLog) error
	ListVisitorsInside(ctx context.Context) ([]VisitorLog, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: connection.BindTx(r.db, tx)}
}

func (r *repository) FindReadyToLeave(ctx context.Context, date time.Time) ([]LeaveRequestRef, error) {
	var requests []LeaveRequestRef
	err := r.db.WithContext(ctx).
		Preload("Employee").
		Where("leave_date = ?", date.Format("2006-01-02")).
		Where("status = ?", "Approved").
		Where("NOT EXISTS (SELECT 1 FROM in_out_histories WHERE in_out_histories.request_id = leave_requests.id)").
		Order("created_at ASC").
		Find(&requests).Error
	return requests, err
}

func (r *repository) FindRequestByID(ctx context.Context, id string) (*LeaveRequestRef, error) {
	var lr LeaveRequestRef
	err := r.db.WithContext(ctx).
		Preload("Employee").
		First(&lr, "id = ?", id).Error
	return &lr, err
}

func (r *repository) ExistsForRequest(ctx context.Context, requestID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&InOutHistory{}).
		Where("request_id = ?", requestID).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) CreateInOut(ctx context.Context, h *InOutHistory) error {
	return r.db.WithContext(ctx).Create(h).Error
}

func (r *repository) FindInOutByID(ctx context.Context, id string) (*InOutHistory, error) {
	var h InOutHistory
	err := r.db.WithContext(ctx).
		Preload("Request").
		Preload("Employee").
		Preload("Guard").
		First(&h, "id = ?", id).Error
	return &h, err
}

func (r *repository) UpdateInOut(ctx context.Context, h *InOutHistory) error {
	return r.db.WithContext(ctx).Save(h).Error
}

func (r *repository) ListCurrentlyOut(ctx context.Context, date time.Time) ([]InOutHistory, error) {
	var rows []InOutHistory
	err := r.db.WithContext(ctx).
		Preload("Employee").
		Preload("Guard").
		Joins("JOIN leave_requests ON leave_requests.id = in_out_histories.request_id").
		Where("in_out_histories.status = ?", StatusOut).
		Where("leave_requests.leave_date = ?", date.Format("2006-01-02")).
		Order("in_out_histories.time_out ASC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) CreateVisitor(ctx context.Context, v *VisitorLog) error {
	return r.db.WithContext(ctx).Create(v).Error
}

func (r *repository) FindVisitorByID(ctx context.Context, id string) (*VisitorLog, error) {
	var v VisitorLog
	err := r.db.WithContext(ctx).
		Preload("Guard").
		First(&v, "id = ?", id).Error
	return &v, err
}

func (r *repository) UpdateVisitor(ctx context.Context, v *VisitorLog) error {
	return r.db.WithContext(ctx).Save(v).Error
}

func (r *repository) ListVisitorsInside(ctx context.Context) ([]VisitorLog, error) {
	var rows []VisitorLog
	err := r.db.WithContext(ctx).
		Preload("Guard").
		Where("status = ?", VisitorStatusIn).
		Order("time_in ASC").
		Find(&rows).Error
	return rows, err
}
