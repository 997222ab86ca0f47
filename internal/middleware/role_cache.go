// role_cache.go
package middleware

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// RoleCache cachea el rol por email en Redis con TTL corto. Con client
// nil todo es un miss y la autorización va directo a la base.
type RoleCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRoleCache(client *redis.Client, ttl time.Duration) *RoleCache {
	return &RoleCache{client: client, ttl: ttl}
}

func (c *RoleCache) Get(ctx context.Context, email string) (string, bool) {
	if c == nil || c.client == nil {
		return "", false
	}
	role, err := c.client.Get(ctx, "role:"+email).Result()
	if err != nil {
		return "", false
	}
	return role, true
}

func (c *RoleCache) Set(ctx context.Context, email, role string) {
	if c == nil || c.client == nil {
		return
	}
	// Un fallo de Redis no es fatal: el próximo lookup va a la base
	_ = c.client.Set(ctx, "role:"+email, role, c.ttl).Err()
}

// Invalidate borra la entrada tras un cambio de rol; sin esto el rol
// viejo seguiría vigente hasta vencer el TTL.
func (c *RoleCache) Invalidate(ctx context.Context, email string) {
	if c == nil || c.client == nil {
		return
	}
	_ = c.client.Del(ctx, "role:"+email).Err()
}
