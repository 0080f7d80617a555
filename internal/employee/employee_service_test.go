package employee_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"testing"
	"time"

	"eleave/internal/employee"
	employeeerrors "eleave/internal/employee/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeEmployeeRepository struct {
	withTxFn               func(tx *sql.Tx) employee.Repository
	createFn               func(ctx context.Context, e *employee.Employee) error
	findAllFn              func(ctx context.Context, search, sortBy, order string) ([]employee.Employee, error)
	findByIDFn             func(ctx context.Context, id string) (*employee.Employee, error)
	updateFn               func(ctx context.Context, e *employee.Employee) error
	deleteFn               func(ctx context.Context, id string) error
	hasHistoryReferencesFn func(ctx context.Context, id string) (bool, error)
}

func (f *fakeEmployeeRepository) WithTx(tx *sql.Tx) employee.Repository {
	if f.withTxFn != nil {
		return f.withTxFn(tx)
	}
	return f
}

func (f *fakeEmployeeRepository) Create(ctx context.Context, e *employee.Employee) error {
	if f.createFn != nil {
		return f.createFn(ctx, e)
	}
	return nil
}

func (f *fakeEmployeeRepository) FindAll(ctx context.Context, search, sortBy, order string) ([]employee.Employee, error) {
	if f.findAllFn != nil {
		return f.findAllFn(ctx, search, sortBy, order)
	}
	return nil, nil
}

func (f *fakeEmployeeRepository) FindByID(ctx context.Context, id string) (*employee.Employee, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, id)
	}
	return &employee.Employee{ID: uuid.MustParse(id)}, nil
}

func (f *fakeEmployeeRepository) Update(ctx context.Context, e *employee.Employee) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, e)
	}
	return nil
}

func (f *fakeEmployeeRepository) Delete(ctx context.Context, id string) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, id)
	}
	return nil
}

func (f *fakeEmployeeRepository) HasHistoryReferences(ctx context.Context, id string) (bool, error) {
	if f.hasHistoryReferencesFn != nil {
		return f.hasHistoryReferencesFn(ctx, id)
	}
	return false, nil
}

type fakeCounterRepository struct {
	nextValue int64
	calls     []string
}

func (f *fakeCounterRepository) GetNextValue(ctx context.Context, counterType string) (int64, error) {
	f.calls = append(f.calls, counterType)
	f.nextValue++
	return f.nextValue, nil
}

type employeeServiceDeps struct {
	db      *sql.DB
	sqlMock sqlmock.Sqlmock
	service employee.Service
	repo    *fakeEmployeeRepository
	counter *fakeCounterRepository
}

func setupEmployeeServiceTest(t *testing.T) *employeeServiceDeps {
	t.Helper()

	db, sqlMock, err := sqlmock.New()
	assert.NoError(t, err)

	repo := &fakeEmployeeRepository{}
	ctr := &fakeCounterRepository{}
	svc := employee.NewService(db, repo, ctr, nil)

	return &employeeServiceDeps{
		db:      db,
		sqlMock: sqlMock,
		service: svc,
		repo:    repo,
		counter: ctr,
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

func validCreateRequest() employee.CreateEmployeeRequest {
	return employee.CreateEmployeeRequest{
		FullName:     "Eka Putri",
		Email:        "eka.putri@example.com",
		DepartmentID: uuid.New().String(),
		PositionID:   uuid.New().String(),
		RoleID:       uuid.New().String(),
	}
}

func TestEmployeeService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("generates a sequential employee number when none is given", func(t *testing.T) {
		deps := setupEmployeeServiceTest(t)
		defer deps.db.Close()
		expectTx(t, deps.sqlMock, true)

		deps.counter.nextValue = 41

		var created *employee.Employee
		deps.repo.createFn = func(ctx context.Context, e *employee.Employee) error {
			created = e
			return nil
		}

		resp, err := deps.service.Create(ctx, validCreateRequest())

		assert.NoError(t, err)
		assert.Equal(t, "EMP-000042", resp.EmployeeNumber)
		assert.Equal(t, []string{"employee_number"}, deps.counter.calls)
		assert.NotNil(t, created)
		assert.Equal(t, "EMP-000042", created.EmployeeNumber)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("keeps a provided employee number", func(t *testing.T) {
		deps := setupEmployeeServiceTest(t)
		defer deps.db.Close()
		expectTx(t, deps.sqlMock, true)

		req := validCreateRequest()
		req.EmployeeNumber = "EMP-CUSTOM"

		resp, err := deps.service.Create(ctx, req)

		assert.NoError(t, err)
		assert.Equal(t, "EMP-CUSTOM", resp.EmployeeNumber)
		assert.Empty(t, deps.counter.calls)
	})
}

func TestEmployeeService_UpdateContact(t *testing.T) {
	ctx := context.Background()

	t.Run("lets an employee change their own contact details", func(t *testing.T) {
		deps := setupEmployeeServiceTest(t)
		defer deps.db.Close()
		expectTx(t, deps.sqlMock, true)

		id := uuid.New().String()
		var updated *employee.Employee
		deps.repo.updateFn = func(ctx context.Context, e *employee.Employee) error {
			updated = e
			return nil
		}

		phone := "+62 812 0000 1111"
		resp, err := deps.service.UpdateContact(ctx, id, id, employee.UpdateContactRequest{
			Phone: &phone,
			Email: "eka.putri@example.com",
		})

		assert.NoError(t, err)
		assert.Equal(t, "eka.putri@example.com", resp.Email)
		assert.NotNil(t, updated)
		assert.Equal(t, &phone, updated.Phone)
	})

	t.Run("forbidden when changing somebody else", func(t *testing.T) {
		deps := setupEmployeeServiceTest(t)
		defer deps.db.Close()

		_, err := deps.service.UpdateContact(ctx, uuid.New().String(), uuid.New().String(), employee.UpdateContactRequest{
			Email: "eka.putri@example.com",
		})
		assert.ErrorIs(t, err, employeeerrors.ErrNotSelf)
	})
}

func TestEmployeeService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("success when unreferenced", func(t *testing.T) {
		deps := setupEmployeeServiceTest(t)
		defer deps.db.Close()
		expectTx(t, deps.sqlMock, true)

		id := uuid.New().String()
		deleted := false
		deps.repo.deleteFn = func(ctx context.Context, got string) error {
			assert.Equal(t, id, got)
			deleted = true
			return nil
		}

		err := deps.service.Delete(ctx, id)
		assert.NoError(t, err)
		assert.True(t, deleted)
	})

	t.Run("blocked while the employee appears in history", func(t *testing.T) {
		deps := setupEmployeeServiceTest(t)
		defer deps.db.Close()
		expectTx(t, deps.sqlMock, false)

		deps.repo.hasHistoryReferencesFn = func(ctx context.Context, id string) (bool, error) {
			return true, nil
		}

		deleted := false
		deps.repo.deleteFn = func(ctx context.Context, id string) error {
			deleted = true
			return nil
		}

		err := deps.service.Delete(ctx, uuid.New().String())
		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeReferenced)
		assert.False(t, deleted)
	})

	t.Run("rejects an invalid id", func(t *testing.T) {
		deps := setupEmployeeServiceTest(t)
		defer deps.db.Close()

		err := deps.service.Delete(ctx, "not-a-uuid")
		assert.ErrorIs(t, err, employeeerrors.ErrInvalidEmployeeID)
	})
}

func TestEmployeeService_GetOptions(t *testing.T) {
	ctx := context.Background()

	t.Run("falls back to the repository without a cache", func(t *testing.T) {
		deps := setupEmployeeServiceTest(t)
		defer deps.db.Close()

		deps.repo.findAllFn = func(ctx context.Context, search, sortBy, order string) ([]employee.Employee, error) {
			assert.Empty(t, search)
			assert.Equal(t, "full_name", sortBy)
			assert.Equal(t, "asc", order)
			return []employee.Employee{
				{ID: uuid.New(), EmployeeNumber: "EMP-000001", FullName: "Budi Santoso", Email: "budi@example.com"},
				{ID: uuid.New(), EmployeeNumber: "EMP-000002", FullName: "Citra Dewi", Email: "citra@example.com"},
			}, nil
		}

		resp, err := deps.service.GetOptions(ctx)
		assert.NoError(t, err)
		assert.Len(t, resp, 2)
		assert.Equal(t, "Budi Santoso", resp[0].FullName)
	})

	t.Run("serves from the cache without touching the repository", func(t *testing.T) {
		db, _, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		cached := []employee.EmployeeResponse{{ID: uuid.New().String(), FullName: "Budi Santoso"}}
		payload, err := json.Marshal(cached)
		assert.NoError(t, err)

		rdb, redisMock := redismock.NewClientMock()
		redisMock.ExpectGet(employee.EmployeeOptionsKey).SetVal(string(payload))

		queried := false
		repo := &fakeEmployeeRepository{
			findAllFn: func(ctx context.Context, search, sortBy, order string) ([]employee.Employee, error) {
				queried = true
				return nil, nil
			},
		}
		svc := employee.NewService(db, repo, &fakeCounterRepository{}, rdb)

		resp, err := svc.GetOptions(ctx)
		assert.NoError(t, err)
		assert.Equal(t, cached, resp)
		assert.False(t, queried)
		assert.NoError(t, redisMock.ExpectationsWereMet())
	})

	t.Run("a miss fills the cache", func(t *testing.T) {
		db, _, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		rows := []employee.Employee{
			{ID: uuid.New(), EmployeeNumber: "EMP-000001", FullName: "Budi Santoso", Email: "budi@example.com"},
		}
		expected, err := json.Marshal([]employee.EmployeeResponse{{
			ID:             rows[0].ID.String(),
			EmployeeNumber: "EMP-000001",
			FullName:       "Budi Santoso",
			Email:          "budi@example.com",
			DepartmentID:   rows[0].DepartmentID.String(),
			PositionID:     rows[0].PositionID.String(),
			RoleID:         rows[0].RoleID.String(),
		}})
		assert.NoError(t, err)

		rdb, redisMock := redismock.NewClientMock()
		redisMock.ExpectGet(employee.EmployeeOptionsKey).RedisNil()
		redisMock.ExpectSet(employee.EmployeeOptionsKey, expected, time.Hour).SetVal("OK")

		repo := &fakeEmployeeRepository{
			findAllFn: func(ctx context.Context, search, sortBy, order string) ([]employee.Employee, error) {
				return rows, nil
			},
		}
		svc := employee.NewService(db, repo, &fakeCounterRepository{}, rdb)

		resp, err := svc.GetOptions(ctx)
		assert.NoError(t, err)
		assert.Len(t, resp, 1)
		assert.NoError(t, redisMock.ExpectationsWereMet())
	})
}
