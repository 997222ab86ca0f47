package service

import (
	"context"
	"testing"

	"parcel-delivery-service/internal/model"
)

func TestUserService_RegisterIsIdempotent(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo, nil)

	first, created, err := svc.Register(context.Background(), "a@x.com", "Ana", "")
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if !created {
		t.Error("Expected first registration to create the user")
	}
	if first.Role != model.RoleUser {
		t.Errorf("Expected default role 'user', got %q", first.Role)
	}

	second, created, err := svc.Register(context.Background(), "a@x.com", "Ana", "")
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if created {
		t.Error("Expected second registration to return the existing user")
	}
	if second.ID != first.ID {
		t.Error("Expected the same stored user on both calls")
	}
	if len(repo.users) != 1 {
		t.Errorf("Expected exactly one stored user, got %d", len(repo.users))
	}
}

func TestUserService_RegisterNeverGrantsAdmin(t *testing.T) {
	svc := NewUserService(newFakeUserRepo(), nil)

	u, _, err := svc.Register(context.Background(), "evil@x.com", "Eve", "admin")
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if u.Role == model.RoleAdmin {
		t.Error("Self-registration must not grant the admin role")
	}
}

func TestUserService_GetRoleDefaultsToUser(t *testing.T) {
	svc := NewUserService(newFakeUserRepo(), nil)

	role, err := svc.GetRole(context.Background(), "ghost@x.com")
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if role != model.RoleUser {
		t.Errorf("Expected default role 'user', got %q", role)
	}
}

func TestUserService_ChangeRoleRejectsUnknownRole(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo, nil)
	u, _, _ := svc.Register(context.Background(), "a@x.com", "Ana", "")

	if err := svc.ChangeRole(context.Background(), u.ID, "superadmin"); err != ErrInvalidRole {
		t.Errorf("Expected ErrInvalidRole, got: %v", err)
	}
	if err := svc.ChangeRole(context.Background(), u.ID, model.RoleVendor); err != nil {
		t.Errorf("Expected no error, got: %v", err)
	}
	if repo.users["a@x.com"].Role != model.RoleVendor {
		t.Error("Expected role to be persisted")
	}
}

// Un cambio de rol descarta el rol cacheado: sin esto el rol viejo
// seguiría autorizando hasta vencer el TTL.
func TestUserService_ChangeRoleInvalidatesCachedRole(t *testing.T) {
	repo := newFakeUserRepo()
	cache := &fakeRoleCache{}
	svc := NewUserService(repo, cache)
	u, _, _ := svc.Register(context.Background(), "a@x.com", "Ana", "")

	if err := svc.ChangeRole(context.Background(), u.ID, model.RoleVendor); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if len(cache.invalidated) != 1 || cache.invalidated[0] != "a@x.com" {
		t.Errorf("Expected cached role invalidated for a@x.com, got %v", cache.invalidated)
	}

	// un rol inválido no toca la cache
	_ = svc.ChangeRole(context.Background(), u.ID, "superadmin")
	if len(cache.invalidated) != 1 {
		t.Errorf("Expected no extra invalidation, got %v", cache.invalidated)
	}
}
