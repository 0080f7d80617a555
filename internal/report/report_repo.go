package report

import (
	"context"
	"time"

	"gorm.io/gorm"
)

type InOutReportRow struct {
	EmployeeName   string
	DepartmentName string
	LeaveDate      time.Time
	TimeOut        time.Time
	TimeIn         *time.Time
	GuardName      string
}

type StatusCount struct {
	Status string
	Count  int64
}

type Filter struct {
	EmployeeName string
	From         *time.Time
	To           *time.Time
}

//go:generate mockgen -source=report_repo.go -destination=mock/report_repo_mock.go -package=mock
type Repository interface {
	ListInOutHistory(ctx context.Context, f Filter) ([]InOutReportRow, error)
	CountRequestsByStatus(ctx context.Context) ([]StatusCount, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) ListInOutHistory(ctx context.Context, f Filter) ([]InOutReportRow, error) {
	db := r.db.WithContext(ctx).
		Table("in_out_histories").
		Select(`
			employees.full_name AS employee_name,
			departments.name AS department_name,
			leave_requests.leave_date,
			in_out_histories.time_out,
			in_out_histories.time_in,
			guards.full_name AS guard_name`).
		Joins("JOIN employees ON employees.id = in_out_histories.employee_id").
		Joins("JOIN departments ON departments.id = employees.department_id").
		Joins("JOIN leave_requests ON leave_requests.id = in_out_histories.request_id").
		Joins("JOIN employees AS guards ON guards.id = in_out_histories.guard_id")

	if f.EmployeeName != "" {
		db = db.Where("employees.full_name ILIKE ?", "%"+f.EmployeeName+"%")
	}
	if f.From != nil {
		db = db.Where("in_out_histories.time_out >= ?", *f.From)
	}
	if f.To != nil {
		// Inclusive upper bound on the calendar day.
		db = db.Where("in_out_histories.time_out < ?", f.To.AddDate(0, 0, 1))
	}

	var rows []InOutReportRow
	err := db.Order("in_out_histories.time_out DESC").Scan(&rows).Error
	return rows, err
}

func (r *repository) CountRequestsByStatus(ctx context.Context) ([]StatusCount, error) {
	var counts []StatusCount
	err := r.db.WithContext(ctx).
		Table("leave_requests").
		Select("status, COUNT(*) AS count").
		Group("status").
		Order("status ASC").
		Scan(&counts).Error
	return counts, err
}
