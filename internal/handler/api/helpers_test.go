//go:build unit

package api_test

import (
	"net/http"

	"parkpass/internal/domain/auth"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var (
	driverID   = uuid.MustParse("5f0c7c1a-8d2e-4c3b-9a51-2f6b1e0d4a10")
	operatorID = uuid.MustParse("8a3e2b7d-1c4f-4e69-b0d2-7f5a9c3e1b22")
	adminID    = uuid.MustParse("c1d9e4f2-6b3a-4d8e-a7c5-0e2f4b6d8a33")
)

// The bearer value names the role, so "operator" authenticates as operatorID.
func fakeAuthMiddleware(c *gin.Context) {
	token := c.GetHeader("Authorization")
	if token == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
		return
	}
	switch token[len("Bearer "):] {
	case "driver":
		c.Set("user_id", driverID)
		c.Set("user_role", auth.RoleDriver)
	case "operator":
		c.Set("user_id", operatorID)
		c.Set("user_role", auth.RoleOperator)
	case "admin":
		c.Set("user_id", adminID)
		c.Set("user_role", auth.RoleAdmin)
	default:
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
		return
	}
	c.Next()
}

func operatorActor() auth.Actor {
	return auth.Actor{ID: operatorID, Role: auth.RoleOperator}
}
