package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubRoles struct {
	role  string
	calls int
}

func (s *stubRoles) GetRole(_ context.Context, _ string) (string, error) {
	s.calls++
	return s.role, nil
}

func newPolicyRouter(roles *stubRoles) *gin.Engine {
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("userEmail", "a@x.com")
		c.Next()
	})
	// cache nil: todo miss, siempre resuelve contra la base
	r.Use(Authorize(roles, nil))

	ok := func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": true}) }
	r.GET("/users", ok)
	r.GET("/parcels", ok)
	r.PATCH("/riders/cashout/:parcelId", ok)
	r.PATCH("/orders/:id/accept", ok)
	return r
}

func do(r *gin.Engine, method, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthorize_AdminOnlyRoute(t *testing.T) {
	if w := do(newPolicyRouter(&stubRoles{role: "user"}), http.MethodGet, "/users"); w.Code != http.StatusForbidden {
		t.Errorf("Expected 403 for a plain user on GET /users, got %d", w.Code)
	}
	if w := do(newPolicyRouter(&stubRoles{role: "admin"}), http.MethodGet, "/users"); w.Code != http.StatusOK {
		t.Errorf("Expected 200 for admin, got %d", w.Code)
	}
}

func TestAuthorize_UnlistedRouteOnlyNeedsToken(t *testing.T) {
	if w := do(newPolicyRouter(&stubRoles{role: "user"}), http.MethodGet, "/parcels"); w.Code != http.StatusOK {
		t.Errorf("Expected 200 on an unlisted route, got %d", w.Code)
	}
}

func TestAuthorize_RiderRoutes(t *testing.T) {
	pid := "64f000000000000000000001"
	if w := do(newPolicyRouter(&stubRoles{role: "user"}), http.MethodPatch, "/riders/cashout/"+pid); w.Code != http.StatusForbidden {
		t.Errorf("Expected 403 for a user on cashout, got %d", w.Code)
	}
	if w := do(newPolicyRouter(&stubRoles{role: "rider"}), http.MethodPatch, "/riders/cashout/"+pid); w.Code != http.StatusOK {
		t.Errorf("Expected 200 for a rider, got %d", w.Code)
	}
}

func TestAuthorize_AcceptAllowsAdminAndRider(t *testing.T) {
	oid := "64f000000000000000000002"
	for _, role := range []string{"admin", "rider"} {
		if w := do(newPolicyRouter(&stubRoles{role: role}), http.MethodPatch, "/orders/"+oid+"/accept"); w.Code != http.StatusOK {
			t.Errorf("Expected 200 for %s on accept, got %d", role, w.Code)
		}
	}
	if w := do(newPolicyRouter(&stubRoles{role: "vendor"}), http.MethodPatch, "/orders/"+oid+"/accept"); w.Code != http.StatusForbidden {
		t.Errorf("Expected 403 for vendor on accept, got %d", w.Code)
	}
}

func TestAuthorize_ResolvesRoleOncePerRequest(t *testing.T) {
	roles := &stubRoles{role: "user"}
	r := newPolicyRouter(roles)
	do(r, http.MethodGet, "/parcels")
	do(r, http.MethodGet, "/parcels")
	// sin cache cada request resuelve contra la base, una vez por request
	if roles.calls != 2 {
		t.Errorf("Expected 2 lookups, got %d", roles.calls)
	}
}
