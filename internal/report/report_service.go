package report

import (
	"bytes"
	"context"
	"net/http"
	"time"

	"eleave/internal/shared/apperror"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

var ErrInvalidDateFilter = apperror.New(
	apperror.CodeInvalidInput,
	"invalid date filter, expected YYYY-MM-DD",
	http.StatusBadRequest,
)

type InOutRowResponse struct {
	EmployeeName   string  `json:"employee_name"`
	DepartmentName string  `json:"department_name"`
	LeaveDate      string  `json:"leave_date"`
	TimeOut        string  `json:"time_out"`
	TimeIn         *string `json:"time_in,omitempty"`
	GuardName      string  `json:"guard_name"`
}

type StatusCountResponse struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

//go:generate mockgen -source=report_service.go -destination=mock/report_service_mock.go -package=mock
type Service interface {
	InOutHistory(ctx context.Context, name, from, to string) ([]InOutRowResponse, error)
	ExportInOutHistory(ctx context.Context, name, from, to string) (*bytes.Buffer, error)
	RequestSummary(ctx context.Context) ([]StatusCountResponse, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("report.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("report.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) InOutHistory(ctx context.Context, name, from, to string) ([]InOutRowResponse, error) {
	rows, err := s.fetch(ctx, name, from, to)
	if err != nil {
		return nil, err
	}

	resp := make([]InOutRowResponse, len(rows))
	for i, row := range rows {
		resp[i] = InOutRowResponse{
			EmployeeName:   row.EmployeeName,
			DepartmentName: row.DepartmentName,
			LeaveDate:      row.LeaveDate.Format("2006-01-02"),
			TimeOut:        row.TimeOut.Format(time.RFC3339),
			GuardName:      row.GuardName,
		}
		if row.TimeIn != nil {
			v := row.TimeIn.Format(time.RFC3339)
			resp[i].TimeIn = &v
		}
	}
	return resp, nil
}

var exportHeaders = []string{"Employee", "Department", "Date", "Time Out", "Time In", "Guard"}

func (s *service) ExportInOutHistory(ctx context.Context, name, from, to string) (*bytes.Buffer, error) {
	rows, err := s.fetch(ctx, name, from, to)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)

	for i, header := range exportHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return nil, err
		}
	}

	for i, row := range rows {
		timeIn := ""
		if row.TimeIn != nil {
			timeIn = row.TimeIn.Format("15:04:05")
		}
		values := []interface{}{
			row.EmployeeName,
			row.DepartmentName,
			row.LeaveDate.Format("2006-01-02"),
			row.TimeOut.Format("15:04:05"),
			timeIn,
			row.GuardName,
		}
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		s.logger.Error("export build failed", zap.Error(err))
		return nil, err
	}

	s.logger.Info("in/out history exported", zap.Int("rows", len(rows)))
	return buf, nil
}

func (s *service) RequestSummary(ctx context.Context) ([]StatusCountResponse, error) {
	counts, err := s.repo.CountRequestsByStatus(ctx)
	if err != nil {
		s.logger.Error("request summary failed", zap.Error(err))
		return nil, err
	}
	resp := make([]StatusCountResponse, len(counts))
	for i, c := range counts {
		resp[i] = StatusCountResponse{Status: c.Status, Count: c.Count}
	}
	return resp, nil
}

func (s *service) fetch(ctx context.Context, name, from, to string) ([]InOutReportRow, error) {
	filter := Filter{EmployeeName: name}
	if from != "" {
		t, err := time.Parse("2006-01-02", from)
		if err != nil {
			return nil, ErrInvalidDateFilter
		}
		filter.From = &t
	}
	if to != "" {
		t, err := time.Parse("2006-01-02", to)
		if err != nil {
			return nil, ErrInvalidDateFilter
		}
		filter.To = &t
	}

	rows, err := s.repo.ListInOutHistory(ctx, filter)
	if err != nil {
		s.logger.Error("in/out history query failed", zap.Error(err))
		return nil, err
	}
	return rows, nil
}
