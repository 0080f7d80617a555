package request

import (
	"context"
	"database/sql"
	"errors"

	"eleave/internal/shared/connection"

	"gorm.io/gorm"
)

//go:generate mockgen -source=request_repo.go -destination=mock/request_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository

	CreateRequest(ctx context.Context, lr *LeaveRequest) error
	FindRequestByID(ctx context.Context, id string) (*LeaveRequest, error)
	// UpdateRequest persists lr only if the stored row still carries
	// lr.Version; it bumps the version on success and reports false when
	// another transition won the race.
	UpdateRequest(ctx context.Context, lr *LeaveRequest) (bool, error)
	FindAllByEmployee(ctx context.Context, employeeID, status string) ([]LeaveRequest, error)

	CreateHistory(ctx context.Context, h *ApprovalHistory) error
	FindHistoryByID(ctx context.Context, id string) (*ApprovalHistory, error)
	UpdateHistory(ctx context.Context, h *ApprovalHistory) error
	FindPendingHistoriesByRequest(ctx context.Context, requestID string) ([]ApprovalHistory, error)
	DeletePendingSiblings(ctx context.Context, requestID, exceptHistoryID string) error
	ListHistoryByRequest(ctx context.Context, requestID string) ([]ApprovalHistory, error)
	FindInboxByApprover(ctx context.Context, approverID string) ([]ApprovalHistory, error)

	FindEmployeeByID(ctx context.Context, id string) (*EmployeeRef, error)
	// FindApproverInDepartment returns (nil, nil) when the department has no
	// employee whose role carries the given kind; routing treats that as a
	// business outcome, not an error.
	FindApproverInDepartment(ctx context.Context, departmentID, kind string) (*EmployeeRef, error)
	FindApproversByKinds(ctx context.Context, kinds ...string) ([]EmployeeRef, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// WithTx rebinds the repository onto tx so every statement issued through the
// returned value commits or rolls back with the caller's transaction.
func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: connection.BindTx(r.db, tx)}
}

func (r *repository) CreateRequest(ctx context.Context, lr *LeaveRequest) error {
	return r.db.WithContext(ctx).Create(lr).Error
}

func (r *repository) FindRequestByID(ctx context.Context, id string) (*LeaveRequest, error) {
	var lr LeaveRequest
	err := r.db.WithContext(ctx).
		Preload("Employee").
		First(&lr, "id = ?", id).Error
	return &lr, err
}

func (r *repository) UpdateRequest(ctx context.Context, lr *LeaveRequest) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&LeaveRequest{}).
		Where("id = ? AND version = ?", lr.ID, lr.Version).
		Updates(map[string]interface{}{
			"status":                lr.Status,
			"current_approver_role": lr.CurrentApproverRole,
			"reason":                lr.Reason,
			"info_request_comment":  lr.InfoRequestComment,
			"attachment_ref":        lr.AttachmentRef,
			"version":               lr.Version + 1,
		})
	if res.Error != nil {
		return false, res.Error
	}
	if res.RowsAffected == 0 {
		return false, nil
	}
	lr.Version++
	return true, nil
}

func (r *repository) FindAllByEmployee(ctx context.Context, employeeID, status string) ([]LeaveRequest, error) {
	db := r.db.WithContext(ctx).
		Preload("Employee").
		Where("employee_id = ?", employeeID)
	if status != "" {
		db = db.Where("status = ?", status)
	}

	var requests []LeaveRequest
	err := db.Order("created_at DESC").Find(&requests).Error
	return requests, err
}

func (r *repository) CreateHistory(ctx context.Context, h *ApprovalHistory) error {
	return r.db.WithContext(ctx).Create(h).Error
}

func (r *repository) FindHistoryByID(ctx context.Context, id string) (*ApprovalHistory, error) {
	var h ApprovalHistory
	err := r.db.WithContext(ctx).
		Preload("Approver").
		First(&h, "id = ?", id).Error
	return &h, err
}

func (r *repository) UpdateHistory(ctx context.Context, h *ApprovalHistory) error {
	return r.db.WithContext(ctx).Save(h).Error
}

func (r *repository) FindPendingHistoriesByRequest(ctx context.Context, requestID string) ([]ApprovalHistory, error) {
	var items []ApprovalHistory
	err := r.db.WithContext(ctx).
		Preload("Approver").
		Where("request_id = ?", requestID).
		Where("status = ?", StatusPending).
		Order("approval_order ASC, created_at ASC").
		Find(&items).Error
	return items, err
}

func (r *repository) DeletePendingSiblings(ctx context.Context, requestID, exceptHistoryID string) error {
	return r.db.WithContext(ctx).
		Where("request_id = ?", requestID).
		Where("status = ?", StatusPending).
		Where("id <> ?", exceptHistoryID).
		Delete(&ApprovalHistory{}).Error
}

func (r *repository) ListHistoryByRequest(ctx context.Context, requestID string) ([]ApprovalHistory, error) {
	var items []ApprovalHistory
	// Deterministic audit order: stage first, then decision time; id breaks
	// ties among fan-out rows decided in the same instant.
	err := r.db.WithContext(ctx).
		Preload("Approver").
		Where("request_id = ?", requestID).
		Order("approval_order ASC, decided_at ASC NULLS LAST, id ASC").
		Find(&items).Error
	return items, err
}

func (r *repository) FindInboxByApprover(ctx context.Context, approverID string) ([]ApprovalHistory, error) {
	var items []ApprovalHistory
	err := r.db.WithContext(ctx).
		Preload("Request").
		Preload("Request.Employee").
		Joins("JOIN leave_requests ON leave_requests.id = approval_histories.request_id").
		Where("approval_histories.approver_id = ?", approverID).
		Where("approval_histories.status = ?", StatusPending).
		Where("leave_requests.status = ?", StatusPending).
		Order("leave_requests.created_at ASC").
		Find(&items).Error
	return items, err
}

func (r *repository) FindEmployeeByID(ctx context.Context, id string) (*EmployeeRef, error) {
	var e EmployeeRef
	err := r.db.WithContext(ctx).First(&e, "id = ?", id).Error
	return &e, err
}

func (r *repository) FindApproverInDepartment(ctx context.Context, departmentID, kind string) (*EmployeeRef, error) {
	var e EmployeeRef
	err := r.db.WithContext(ctx).
		Joins("JOIN roles ON roles.id = employees.role_id").
		Where("employees.department_id = ?", departmentID).
		Where("employees.deleted_at IS NULL").
		Where("roles.kind = ?", kind).
		Order("employees.created_at ASC").
		First(&e).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *repository) FindApproversByKinds(ctx context.Context, kinds ...string) ([]EmployeeRef, error) {
	var approvers []EmployeeRef
	err := r.db.WithContext(ctx).
		Joins("JOIN roles ON roles.id = employees.role_id").
		Where("employees.deleted_at IS NULL").
		Where("roles.kind IN ?", kinds).
		Order("employees.full_name ASC").
		Find(&approvers).Error
	return approvers, err
}
