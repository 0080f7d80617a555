package security_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"eleave/internal/security"
	securityerrors "eleave/internal/security/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeSecurityRepository struct {
	withTxFn             func(tx *sql.Tx) security.Repository
	findReadyToLeaveFn   func(ctx context.Context, date time.Time) ([]security.LeaveRequestRef, error)
	findRequestByIDFn    func(ctx context.Context, id string) (*security.LeaveRequestRef, error)
	existsForRequestFn   func(ctx context.Context, requestID string) (bool, error)
	createInOutFn        func(ctx context.Context, h *security.InOutHistory) error
	findInOutByIDFn      func(ctx context.Context, id string) (*security.InOutHistory, error)
	updateInOutFn        func(ctx context.Context, h *security.InOutHistory) error
	listCurrentlyOutFn   func(ctx context.Context, date time.Time) ([]security.InOutHistory, error)
	createVisitorFn      func(ctx context.Context, v *security.VisitorLog) error
	findVisitorByIDFn    func(ctx context.Context, id string) (*security.VisitorLog, error)
	updateVisitorFn      func(ctx context.Context, v *security.VisitorLog) error
	listVisitorsInsideFn func(ctx context.Context) ([]security.VisitorLog, error)
}

func (f *fakeSecurityRepository) WithTx(tx *sql.Tx) security.Repository {
	if f.withTxFn != nil {
		return f.withTxFn(tx)
	}
	return f
}

func (f *fakeSecurityRepository) FindReadyToLeave(ctx context.Context, date time.Time) ([]security.LeaveRequestRef, error) {
	if f.findReadyToLeaveFn != nil {
		return f.findReadyToLeaveFn(ctx, date)
	}
	return nil, nil
}

func (f *fakeSecurityRepository) FindRequestByID(ctx context.Context, id string) (*security.LeaveRequestRef, error) {
	if f.findRequestByIDFn != nil {
		return f.findRequestByIDFn(ctx, id)
	}
	return nil, nil
}

func (f *fakeSecurityRepository) ExistsForRequest(ctx context.Context, requestID string) (bool, error) {
	if f.existsForRequestFn != nil {
		return f.existsForRequestFn(ctx, requestID)
	}
	return false, nil
}

func (f *fakeSecurityRepository) CreateInOut(ctx context.Context, h *security.InOutHistory) error {
	if f.createInOutFn != nil {
		return f.createInOutFn(ctx, h)
	}
	return nil
}

func (f *fakeSecurityRepository) FindInOutByID(ctx context.Context, id string) (*security.InOutHistory, error) {
	if f.findInOutByIDFn != nil {
		return f.findInOutByIDFn(ctx, id)
	}
	return nil, nil
}

func (f *fakeSecurityRepository) UpdateInOut(ctx context.Context, h *security.InOutHistory) error {
	if f.updateInOutFn != nil {
		return f.updateInOutFn(ctx, h)
	}
	return nil
}

func (f *fakeSecurityRepository) ListCurrentlyOut(ctx context.Context, date time.Time) ([]security.InOutHistory, error) {
	if f.listCurrentlyOutFn != nil {
		return f.listCurrentlyOutFn(ctx, date)
	}
	return nil, nil
}

func (f *fakeSecurityRepository) CreateVisitor(ctx context.Context, v *security.VisitorLog) error {
	if f.createVisitorFn != nil {
		return f.createVisitorFn(ctx, v)
	}
	return nil
}

func (f *fakeSecurityRepository) FindVisitorByID(ctx context.Context, id string) (*security.VisitorLog, error) {
	if f.findVisitorByIDFn != nil {
		return f.findVisitorByIDFn(ctx, id)
	}
	return nil, nil
}

func (f *fakeSecurityRepository) UpdateVisitor(ctx context.Context, v *security.VisitorLog) error {
	if f.updateVisitorFn != nil {
		return f.updateVisitorFn(ctx, v)
	}
	return nil
}

func (f *fakeSecurityRepository) ListVisitorsInside(ctx context.Context) ([]security.VisitorLog, error) {
	if f.listVisitorsInsideFn != nil {
		return f.listVisitorsInsideFn(ctx)
	}
	return nil, nil
}

type securityServiceDeps struct {
	db      *sql.DB
	sqlMock sqlmock.Sqlmock
	service security.Service
	repo    *fakeSecurityRepository
}

func setupSecurityServiceTest(t *testing.T) *securityServiceDeps {
	t.Helper()

	db, sqlMock, err := sqlmock.New()
	assert.NoError(t, err)

	repo := &fakeSecurityRepository{}
	svc := security.NewService(db, repo)

	return &securityServiceDeps{
		db:      db,
		sqlMock: sqlMock,
		service: svc,
		repo:    repo,
	}
}

func expectTx(t *testing.T, mock sqlmock.Sqlmock, commit bool) {
	t.Helper()
	mock.ExpectBegin()
	if commit {
		mock.ExpectCommit()
	} else {
		mock.ExpectRollback()
	}
}

func approvedRequest() *security.LeaveRequestRef {
	return &security.LeaveRequestRef{
		ID:         uuid.New(),
		EmployeeID: uuid.New(),
		LeaveDate:  time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
		Duration:   "HALF_DAY",
		Reason:     "Dentist appointment",
		Status:     "Approved",
		Employee:   &security.EmployeeRef{ID: uuid.New(), FullName: "Eka Putri"},
	}
}

func TestSecurityService_RecordOut(t *testing.T) {
	ctx := context.Background()
	guardID := uuid.New().String()

	t.Run("success", func(t *testing.T) {
		deps := setupSecurityServiceTest(t)
		defer deps.db.Close()
		expectTx(t, deps.sqlMock, true)

		lr := approvedRequest()
		deps.repo.findRequestByIDFn = func(ctx context.Context, id string) (*security.LeaveRequestRef, error) {
			assert.Equal(t, lr.ID.String(), id)
			return lr, nil
		}

		var created *security.InOutHistory
		deps.repo.createInOutFn = func(ctx context.Context, h *security.InOutHistory) error {
			created = h
			return nil
		}

		resp, err := deps.service.RecordOut(ctx, lr.ID.String(), guardID)

		assert.NoError(t, err)
		assert.Equal(t, security.StatusOut, resp.Status)
		assert.Equal(t, lr.EmployeeID.String(), resp.EmployeeID)
		assert.Equal(t, "Eka Putri", resp.EmployeeName)
		assert.Nil(t, resp.TimeIn)

		assert.NotNil(t, created)
		assert.Equal(t, lr.ID, created.RequestID)
		assert.Equal(t, guardID, created.GuardID.String())
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("rejected when the request is not approved", func(t *testing.T) {
		deps := setupSecurityServiceTest(t)
		defer deps.db.Close()
		expectTx(t, deps.sqlMock, false)

		lr := approvedRequest()
		lr.Status = "Pending"
		deps.repo.findRequestByIDFn = func(ctx context.Context, id string) (*security.LeaveRequestRef, error) {
			return lr, nil
		}

		_, err := deps.service.RecordOut(ctx, lr.ID.String(), guardID)
		assert.ErrorIs(t, err, securityerrors.ErrRequestNotApproved)
	})

	t.Run("conflict on a second check-out for the same request", func(t *testing.T) {
		deps := setupSecurityServiceTest(t)
		defer deps.db.Close()
		expectTx(t, deps.sqlMock, false)

		lr := approvedRequest()
		deps.repo.findRequestByIDFn = func(ctx context.Context, id string) (*security.LeaveRequestRef, error) {
			return lr, nil
		}
		deps.repo.existsForRequestFn = func(ctx context.Context, requestID string) (bool, error) {
			return true, nil
		}

		_, err := deps.service.RecordOut(ctx, lr.ID.String(), guardID)
		assert.ErrorIs(t, err, securityerrors.ErrAlreadyCheckedOut)
	})

	t.Run("rejects an invalid request id", func(t *testing.T) {
		deps := setupSecurityServiceTest(t)
		defer deps.db.Close()

		_, err := deps.service.RecordOut(ctx, "not-a-uuid", guardID)
		assert.ErrorIs(t, err, securityerrors.ErrInvalidRequestID)
	})
}

func TestSecurityService_RecordIn(t *testing.T) {
	ctx := context.Background()
	guardID := uuid.New().String()

	t.Run("completes an open check-out", func(t *testing.T) {
		deps := setupSecurityServiceTest(t)
		defer deps.db.Close()
		expectTx(t, deps.sqlMock, true)

		h := &security.InOutHistory{
			ID:         uuid.New(),
			RequestID:  uuid.New(),
			EmployeeID: uuid.New(),
			GuardID:    uuid.New(),
			TimeOut:    time.Now().UTC().Add(-2 * time.Hour),
			Status:     security.StatusOut,
		}
		deps.repo.findInOutByIDFn = func(ctx context.Context, id string) (*security.InOutHistory, error) {
			return h, nil
		}

		updated := false
		deps.repo.updateInOutFn = func(ctx context.Context, h *security.InOutHistory) error {
			updated = true
			return nil
		}

		resp, err := deps.service.RecordIn(ctx, h.ID.String(), guardID)

		assert.NoError(t, err)
		assert.True(t, updated)
		assert.Equal(t, security.StatusCompleted, resp.Status)
		assert.NotNil(t, resp.TimeIn)
	})

	t.Run("conflict when the record is already completed", func(t *testing.T) {
		deps := setupSecurityServiceTest(t)
		defer deps.db.Close()
		expectTx(t, deps.sqlMock, false)

		timeIn := time.Now().UTC()
		h := &security.InOutHistory{
			ID:      uuid.New(),
			TimeOut: timeIn.Add(-3 * time.Hour),
			TimeIn:  &timeIn,
			Status:  security.StatusCompleted,
		}
		deps.repo.findInOutByIDFn = func(ctx context.Context, id string) (*security.InOutHistory, error) {
			return h, nil
		}

		_, err := deps.service.RecordIn(ctx, h.ID.String(), guardID)
		assert.ErrorIs(t, err, securityerrors.ErrAlreadyCompleted)
	})
}

func TestSecurityService_ListReadyToLeave(t *testing.T) {
	ctx := context.Background()

	t.Run("uses the provided date", func(t *testing.T) {
		deps := setupSecurityServiceTest(t)
		defer deps.db.Close()

		lr := approvedRequest()
		deps.repo.findReadyToLeaveFn = func(ctx context.Context, date time.Time) ([]security.LeaveRequestRef, error) {
			assert.Equal(t, time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC), date)
			return []security.LeaveRequestRef{*lr}, nil
		}

		resp, err := deps.service.ListReadyToLeave(ctx, "2026-03-02")
		assert.NoError(t, err)
		assert.Len(t, resp, 1)
		assert.Equal(t, lr.ID.String(), resp[0].RequestID)
		assert.Equal(t, "Eka Putri", resp[0].EmployeeName)
	})

	t.Run("rejects a malformed date", func(t *testing.T) {
		deps := setupSecurityServiceTest(t)
		defer deps.db.Close()

		_, err := deps.service.ListReadyToLeave(ctx, "02/03/2026")
		assert.ErrorIs(t, err, securityerrors.ErrInvalidDateFormat)
	})
}

func TestSecurityService_ListCurrentlyOut(t *testing.T) {
	ctx := context.Background()

	t.Run("scopes the ledger to the provided day", func(t *testing.T) {
		deps := setupSecurityServiceTest(t)
		defer deps.db.Close()

		row := security.InOutHistory{
			ID:         uuid.New(),
			RequestID:  uuid.New(),
			EmployeeID: uuid.New(),
			GuardID:    uuid.New(),
			TimeOut:    time.Date(2026, 3, 2, 8, 30, 0, 0, time.UTC),
			Status:     security.StatusOut,
			Employee:   &security.EmployeeRef{ID: uuid.New(), FullName: "Eka Putri"},
		}
		deps.repo.listCurrentlyOutFn = func(ctx context.Context, date time.Time) ([]security.InOutHistory, error) {
			assert.Equal(t, time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC), date)
			return []security.InOutHistory{row}, nil
		}

		resp, err := deps.service.ListCurrentlyOut(ctx, "2026-03-02")
		assert.NoError(t, err)
		assert.Len(t, resp, 1)
		assert.Equal(t, security.StatusOut, resp[0].Status)
		assert.Equal(t, "Eka Putri", resp[0].EmployeeName)
	})

	t.Run("defaults to today", func(t *testing.T) {
		deps := setupSecurityServiceTest(t)
		defer deps.db.Close()

		var seen time.Time
		deps.repo.listCurrentlyOutFn = func(ctx context.Context, date time.Time) ([]security.InOutHistory, error) {
			seen = date
			return nil, nil
		}

		_, err := deps.service.ListCurrentlyOut(ctx, "")
		assert.NoError(t, err)
		assert.Equal(t, time.Now().UTC().Truncate(24*time.Hour), seen)
	})

	t.Run("rejects a malformed date", func(t *testing.T) {
		deps := setupSecurityServiceTest(t)
		defer deps.db.Close()

		_, err := deps.service.ListCurrentlyOut(ctx, "02/03/2026")
		assert.ErrorIs(t, err, securityerrors.ErrInvalidDateFormat)
	})
}

func TestSecurityService_Visitors(t *testing.T) {
	ctx := context.Background()
	guardID := uuid.New().String()

	t.Run("visitor in registers an open entry", func(t *testing.T) {
		deps := setupSecurityServiceTest(t)
		defer deps.db.Close()

		var created *security.VisitorLog
		deps.repo.createVisitorFn = func(ctx context.Context, v *security.VisitorLog) error {
			created = v
			return nil
		}

		resp, err := deps.service.VisitorIn(ctx, guardID, security.VisitorInRequest{
			VisitorName:   "Gita Rahma",
			ContactPerson: "Budi Santoso",
			Reason:        "Vendor meeting",
		})

		assert.NoError(t, err)
		assert.Equal(t, security.VisitorStatusIn, resp.Status)
		assert.Nil(t, resp.TimeOut)
		assert.NotNil(t, created)
		assert.Equal(t, guardID, created.GuardID.String())
	})

	t.Run("visitor out closes the entry once", func(t *testing.T) {
		deps := setupSecurityServiceTest(t)
		defer deps.db.Close()

		v := &security.VisitorLog{
			ID:          uuid.New(),
			VisitorName: "Gita Rahma",
			GuardID:     uuid.New(),
			TimeIn:      time.Now().UTC().Add(-time.Hour),
			Status:      security.VisitorStatusIn,
		}
		deps.repo.findVisitorByIDFn = func(ctx context.Context, id string) (*security.VisitorLog, error) {
			return v, nil
		}

		resp, err := deps.service.VisitorOut(ctx, v.ID.String(), guardID)
		assert.NoError(t, err)
		assert.Equal(t, security.VisitorStatusOut, resp.Status)
		assert.NotNil(t, resp.TimeOut)

		v.Status = security.VisitorStatusOut
		_, err = deps.service.VisitorOut(ctx, v.ID.String(), guardID)
		assert.ErrorIs(t, err, securityerrors.ErrVisitorAlreadyOut)
	})
}
