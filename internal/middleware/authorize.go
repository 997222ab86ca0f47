// authorize.go
package middleware

import (
	"context"
	"net/http"

	"parcel-delivery-service/internal/model"

	"github.com/gin-gonic/gin"
)

type RoleLookup interface {
	GetRole(ctx context.Context, email string) (string, error)
}

// Tabla de políticas declarativa: método + ruta (patrón gin) → roles
// permitidos. Las rutas ausentes solo requieren token. Reemplaza los
// chequeos de rol inline que antes estaban duplicados por handler.
var policies = map[string][]string{
	"GET /users":                             {model.RoleAdmin},
	"PATCH /users/:id/role":                  {model.RoleAdmin},
	"GET /parcels/delivery/status-count":     {model.RoleAdmin},
	"PATCH /parcels/:id/assign-rider":        {model.RoleAdmin},
	"GET /riders/pending":                    {model.RoleAdmin},
	"GET /riders/active":                     {model.RoleAdmin},
	"PATCH /riders/:id":                      {model.RoleAdmin},
	"PATCH /riders/cashout/:parcelId":        {model.RoleRider},
	"GET /riders/parcels":                    {model.RoleRider},
	"GET /riders/completed-parcels":          {model.RoleRider},
	"POST /vendor/products":                  {model.RoleVendor},
	"GET /vendor/products":                   {model.RoleVendor},
	"PATCH /vendor/products/:id":             {model.RoleVendor},
	"DELETE /vendor/products/:id":            {model.RoleVendor},
	"GET /admin/products":                    {model.RoleAdmin},
	"PATCH /admin/products/:id/status":       {model.RoleAdmin},
	"GET /admin/orders":                      {model.RoleAdmin},
	"PATCH /orders/:id/accept":               {model.RoleAdmin, model.RoleRider},
	"POST /advertisements":                   {model.RoleVendor},
	"GET /admin/advertisements":              {model.RoleAdmin},
	"PATCH /admin/advertisements/:id/status": {model.RoleAdmin},
	"DELETE /admin/advertisements/:id":       {model.RoleAdmin},
}

// Authorize resuelve el rol del caller (cache → base), lo deja en el
// contexto y aplica la tabla de políticas para la ruta matcheada.
func Authorize(roles RoleLookup, cache *RoleCache) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.GetString("userEmail")

		role, ok := cache.Get(c.Request.Context(), email)
		if !ok {
			var err error
			role, err = roles.GetRole(c.Request.Context(), email)
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "could not resolve role"})
				c.Abort()
				return
			}
			cache.Set(c.Request.Context(), email, role)
		}
		c.Set("userRole", role)

		allowed, found := policies[c.Request.Method+" "+c.FullPath()]
		if !found {
			c.Next()
			return
		}
		for _, r := range allowed {
			if r == role {
				c.Next()
				return
			}
		}
		c.JSON(http.StatusForbidden, gin.H{"error": "insufficient role"})
		c.Abort()
	}
}
