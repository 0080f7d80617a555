package role_test

import (
	"context"
	"database/sql"
	"testing"

	"eleave/internal/role"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeRoleRepository struct {
	withTxFn   func(tx *sql.Tx) role.Repository
	createFn   func(ctx context.Context, r *role.Role) error
	findAllFn  func(ctx context.Context) ([]role.Role, error)
	findByIDFn func(ctx context.Context, id string) (*role.Role, error)
	updateFn   func(ctx context.Context, r *role.Role) error
	deleteFn   func(ctx context.Context, id string) error
}

func (f *fakeRoleRepository) WithTx(tx *sql.Tx) role.Repository {
	if f.withTxFn != nil {
		return f.withTxFn(tx)
	}
	return f
}

func (f *fakeRoleRepository) Create(ctx context.Context, r *role.Role) error {
	if f.createFn != nil {
		return f.createFn(ctx, r)
	}
	return nil
}

func (f *fakeRoleRepository) FindAll(ctx context.Context) ([]role.Role, error) {
	if f.findAllFn != nil {
		return f.findAllFn(ctx)
	}
	return nil, nil
}

func (f *fakeRoleRepository) FindByID(ctx context.Context, id string) (*role.Role, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, id)
	}
	return &role.Role{ID: uuid.MustParse(id)}, nil
}

func (f *fakeRoleRepository) Update(ctx context.Context, r *role.Role) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, r)
	}
	return nil
}

func (f *fakeRoleRepository) Delete(ctx context.Context, id string) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, id)
	}
	return nil
}

func setupRoleServiceTest(t *testing.T) (*sql.DB, sqlmock.Sqlmock, role.Service, *fakeRoleRepository) {
	t.Helper()

	db, sqlMock, err := sqlmock.New()
	assert.NoError(t, err)

	repo := &fakeRoleRepository{}
	svc := role.NewService(db, repo)
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

func TestRoleService_Create(t *testing.T) {
	ctx := context.Background()

	db, sqlMock, svc, repo := setupRoleServiceTest(t)
	defer db.Close()
	expectTx(t, sqlMock, true)

	var created *role.Role
	repo.createFn = func(ctx context.Context, r *role.Role) error {
		created = r
		return nil
	}

	resp, err := svc.Create(ctx, role.CreateRoleRequest{Name: "Department Manager", Kind: role.KindManager})

	assert.NoError(t, err)
	assert.Equal(t, role.KindManager, resp.Kind)
	assert.NotNil(t, created)
	assert.Equal(t, role.KindManager, created.Kind)
	assert.NoError(t, sqlMock.ExpectationsWereMet())
}

func TestRoleService_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("not found maps to the domain error", func(t *testing.T) {
		db, _, svc, repo := setupRoleServiceTest(t)
		defer db.Close()

		repo.findByIDFn = func(ctx context.Context, id string) (*role.Role, error) {
			return nil, gorm.ErrRecordNotFound
		}

		_, err := svc.GetByID(ctx, uuid.New().String())
		assert.ErrorIs(t, err, role.ErrRoleNotFound)
	})
}

func TestApproverKinds(t *testing.T) {
	kinds := role.ApproverKinds()
	assert.Equal(t, []string{role.KindManager, role.KindSupervisor, role.KindHR, role.KindSafety}, kinds)
	assert.NotContains(t, kinds, role.KindSecurity)
	assert.NotContains(t, kinds, role.KindEmployee)
}
