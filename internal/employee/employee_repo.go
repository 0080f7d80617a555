package employee

import (
	"context"
	"database/sql"
	"fmt"

	"eleave/internal/shared/connection"

	"gorm.io/gorm"
)

//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, e *Employee) error
	FindAll(ctx context.Context, search, sortBy, order string) ([]Employee, error)
	FindByID(ctx context.Context, id string) (*Employee, error)
	Update(ctx context.Context, e *Employee) error
	Delete(ctx context.Context, id string) error
	// HasHistoryReferences reports whether the employee appears anywhere in
	// the leave or in/out audit trail, as requester, approver or guard.
	HasHistoryReferences(ctx context.Context, id string) (bool, error)
}

var sortColumns = map[string]string{
	"employee_number": "employees.employee_number",
	"full_name":       "employees.full_name",
	"email":           "employees.email",
	"created_at":      "employees.created_at",
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

func (r *repository) Create(ctx context.Context, e *Employee) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *repository) FindAll(ctx context.Context, search, sortBy, order string) ([]Employee, error) {
	db := r.db.WithContext(ctx).
		Preload("Department").
		Preload("Position").
		Preload("Role")

	if search != "" {
		pattern := "%" + search + "%"
		db = db.
			Joins("LEFT JOIN departments ON departments.id = employees.department_id").
			Joins("LEFT JOIN positions ON positions.id = employees.position_id").
			Where(
				"employees.full_name ILIKE ? OR employees.employee_number ILIKE ? OR departments.name ILIKE ? OR positions.name ILIKE ?",
				pattern, pattern, pattern, pattern,
			)
	}

	column, ok := sortColumns[sortBy]
	if !ok {
		column = "employees.employee_number"
	}
	direction := "ASC"
	if order == "desc" {
		direction = "DESC"
	}

	var employees []Employee
	err := db.Order(fmt.Sprintf("%s %s", column, direction)).Find(&employees).Error
	return employees, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Employee, error) {
	var e Employee
	err := r.db.WithContext(ctx).
		Preload("Department").
		Preload("Position").
		Preload("Role").
		First(&e, "id = ?", id).Error
	return &e, err
}

func (r *repository) Update(ctx context.Context, e *Employee) error {
	return r.db.WithContext(ctx).Save(e).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&Employee{}, "id = ?", id).Error
}

func (r *repository) HasHistoryReferences(ctx context.Context, id string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			(SELECT COUNT(*) FROM leave_requests WHERE employee_id = @id) +
			(SELECT COUNT(*) FROM approval_histories WHERE approver_id = @id) +
			(SELECT COUNT(*) FROM in_out_histories WHERE employee_id = @id OR guard_id = @id)
	`, sql.Named("id", id)).Scan(&count).Error
	return count > 0, err
}
