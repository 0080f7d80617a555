package role

import (
	"context"
	"database/sql"
	"errors"
	"net/http"

	"eleave/internal/shared/apperror"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrRoleNotFound = apperror.New(
	apperror.CodeNotFound,
	"role not found",
	http.StatusNotFound,
)

//go:generate mockgen -source=role_service.go -destination=mock/role_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateRoleRequest) (RoleResponse, error)
	GetAll(ctx context.Context) ([]RoleResponse, error)
	GetByID(ctx context.Context, id string) (RoleResponse, error)
	Update(ctx context.Context, id string, req UpdateRoleRequest) (RoleResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	db   *sql.DB
	repo Repository
}

func NewService(db *sql.DB, repo Repository) Service {
	return &service{db: db, repo: repo}
}

func (s *service) Create(ctx context.Context, req CreateRoleRequest) (RoleResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return RoleResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	role := &Role{
		ID:   uuid.New(),
		Name: req.Name,
		Kind: req.Kind,
	}

	if err := qtx.Create(ctx, role); err != nil {
		return RoleResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return RoleResponse{}, err
	}

	return mapToResponse(*role), nil
}

func (s *service) GetAll(ctx context.Context) ([]RoleResponse, error) {
	roles, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(roles), nil
}

func (s *service) GetByID(ctx context.Context, id string) (RoleResponse, error) {
	role, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return RoleResponse{}, ErrRoleNotFound
		}
		return RoleResponse{}, err
	}
	return mapToResponse(*role), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateRoleRequest) (RoleResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return RoleResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	role, err := qtx.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return RoleResponse{}, ErrRoleNotFound
		}
		return RoleResponse{}, err
	}

	role.Name = req.Name
	role.Kind = req.Kind

	if err := qtx.Update(ctx, role); err != nil {
		return RoleResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return RoleResponse{}, err
	}

	return mapToResponse(*role), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	if err := qtx.Delete(ctx, id); err != nil {
		return err
	}
	return tx.Commit()
}

func mapToResponse(r Role) RoleResponse {
	return RoleResponse{
		ID:   r.ID.String(),
		Name: r.Name,
		Kind: r.Kind,
	}
}

func mapToListResponse(roles []Role) []RoleResponse {
	resp := make([]RoleResponse, len(roles))
	for i, r := range roles {
		resp[i] = mapToResponse(r)
	}
	return resp
}
