package department_test

import (
	"context"
	"database/sql"
	"testing"

	"eleave/internal/department"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeDepartmentRepository struct {
	withTxFn   func(tx *sql.Tx) department.Repository
	createFn   func(ctx context.Context, d *department.Department) error
	findAllFn  func(ctx context.Context) ([]department.Department, error)
	findByIDFn func(ctx context.Context, id string) (*department.Department, error)
	updateFn   func(ctx context.Context, d *department.Department) error
	deleteFn   func(ctx context.Context, id string) error
}

func (f *fakeDepartmentRepository) WithTx(tx *sql.Tx) department.Repository {
	if f.withTxFn != nil {
		return f.withTxFn(tx)
	}
	return f
}

func (f *fakeDepartmentRepository) Create(ctx context.Context, d *department.Department) error {
	if f.createFn != nil {
		return f.createFn(ctx, d)
	}
	return nil
}

func (f *fakeDepartmentRepository) FindAll(ctx context.Context) ([]department.Department, error) {
	if f.findAllFn != nil {
		return f.findAllFn(ctx)
	}
	return nil, nil
}

func (f *fakeDepartmentRepository) FindByID(ctx context.Context, id string) (*department.Department, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, id)
	}
	return &department.Department{ID: uuid.MustParse(id)}, nil
}

func (f *fakeDepartmentRepository) Update(ctx context.Context, d *department.Department) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, d)
	}
	return nil
}

func (f *fakeDepartmentRepository) Delete(ctx context.Context, id string) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, id)
	}
	return nil
}

func setupDepartmentServiceTest(t *testing.T) (*sql.DB, sqlmock.Sqlmock, department.Service, *fakeDepartmentRepository) {
	t.Helper()

	db, sqlMock, err := sqlmock.New()
	assert.NoError(t, err)

	repo := &fakeDepartmentRepository{}
	svc := department.NewService(db, repo)
	return db, sqlMock, svc, repo
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

func TestDepartmentService_Create(t *testing.T) {
	ctx := context.Background()

	db, sqlMock, svc, repo := setupDepartmentServiceTest(t)
	defer db.Close()
	expectTx(t, sqlMock, true)

	var created *department.Department
	repo.createFn = func(ctx context.Context, d *department.Department) error {
		created = d
		return nil
	}

	resp, err := svc.Create(ctx, department.CreateDepartmentRequest{Name: "Engineering"})

	assert.NoError(t, err)
	assert.Equal(t, "Engineering", resp.Name)
	assert.NotNil(t, created)
	assert.NotEmpty(t, created.ID)
	assert.NoError(t, sqlMock.ExpectationsWereMet())
}

func TestDepartmentService_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("not found maps to the domain error", func(t *testing.T) {
		db, _, svc, repo := setupDepartmentServiceTest(t)
		defer db.Close()

		repo.findByIDFn = func(ctx context.Context, id string) (*department.Department, error) {
			return nil, gorm.ErrRecordNotFound
		}

		_, err := svc.GetByID(ctx, uuid.New().String())
		assert.ErrorIs(t, err, department.ErrDepartmentNotFound)
	})
}

func TestDepartmentService_Update(t *testing.T) {
	ctx := context.Background()

	db, sqlMock, svc, repo := setupDepartmentServiceTest(t)
	defer db.Close()
	expectTx(t, sqlMock, true)

	id := uuid.New()
	repo.findByIDFn = func(ctx context.Context, got string) (*department.Department, error) {
		assert.Equal(t, id.String(), got)
		return &department.Department{ID: id, Name: "Engineering"}, nil
	}

	resp, err := svc.Update(ctx, id.String(), department.UpdateDepartmentRequest{Name: "Platform Engineering"})

	assert.NoError(t, err)
	assert.Equal(t, "Platform Engineering", resp.Name)
}
