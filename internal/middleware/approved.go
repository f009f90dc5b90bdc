package middleware

import (
	"net/http"

	"gramseva/internal/repository"

	"github.com/gin-gonic/gin"
)

// ApprovedOnly blocks citizens whose registration has not been approved by
// the panchayat office. Status lives in the database, not the token, so a
// fresh approval takes effect without re-login.
func ApprovedOnly(userRepo *repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := GetUserID(c)
		if userID == 0 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		u, err := userRepo.GetByID(userID)
		if err != nil || u == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		if !u.IsApproved() {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "account pending approval"})
			return
		}
		c.Next()
	}
}
