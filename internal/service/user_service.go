package service

import (
	"context"
	"errors"
	"time"

	"parcel-delivery-service/internal/model"
	"parcel-delivery-service/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Interfaz que debe implementar el repositorio de usuarios
type UserRepository interface {
	Insert(ctx context.Context, u *model.User) (string, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	UpdateRole(ctx context.Context, id primitive.ObjectID, role string) error
	UpdateRoleByEmail(ctx context.Context, email, role string) error
	TouchLastLogIn(ctx context.Context, email string, at time.Time) error
	Search(ctx context.Context, emailPartial string) ([]*model.User, error)
}

// RoleInvalidator descarta el rol cacheado de un email tras una
// mutación de rol.
type RoleInvalidator interface {
	Invalidate(ctx context.Context, email string)
}

type UserService struct {
	repo  UserRepository
	cache RoleInvalidator
}

func NewUserService(r UserRepository, cache RoleInvalidator) *UserService {
	return &UserService{repo: r, cache: cache}
}

// Register es idempotente por email: si el usuario ya existe se
// devuelve el guardado (created=false) y solo se refresca last_log_in.
func (s *UserService) Register(ctx context.Context, email, name, role string) (*model.User, bool, error) {
	existing, err := s.repo.FindByEmail(ctx, email)
	if err == nil && existing != nil {
		_ = s.repo.TouchLastLogIn(ctx, email, time.Now().UTC())
		return existing, false, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, false, err
	}

	if role == "" || !model.IsValidRole(role) {
		role = model.RoleUser
	}
	// Nadie se registra admin a sí mismo
	if role == model.RoleAdmin {
		role = model.RoleUser
	}

	now := time.Now().UTC()
	u := &model.User{
		Email:     email,
		Name:      name,
		Role:      role,
		CreatedAt: now,
		LastLogIn: now,
	}

	id, err := s.repo.Insert(ctx, u)
	if err != nil {
		return nil, false, err
	}
	u.ID, _ = primitive.ObjectIDFromHex(id)
	return u, true, nil
}

// GetRole devuelve "user" si el email no está registrado.
func (s *UserService) GetRole(ctx context.Context, email string) (string, error) {
	u, err := s.repo.FindByEmail(ctx, email)
	if errors.Is(err, repository.ErrNotFound) {
		return model.RoleUser, nil
	}
	if err != nil {
		return "", err
	}
	return u.Role, nil
}

func (s *UserService) ChangeRole(ctx context.Context, id primitive.ObjectID, role string) error {
	if !model.IsValidRole(role) {
		return ErrInvalidRole
	}
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.UpdateRole(ctx, id, role); err != nil {
		return err
	}
	// El rol cacheado quedó viejo; que el próximo request vaya a la base
	if s.cache != nil {
		s.cache.Invalidate(ctx, u.Email)
	}
	return nil
}

func (s *UserService) Search(ctx context.Context, emailPartial string) ([]*model.User, error) {
	return s.repo.Search(ctx, emailPartial)
}
