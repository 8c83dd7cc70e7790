// middleware/auth.go
package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	doctorRepo "cliniq/database/repository/doctor"
	staffRepo "cliniq/database/repository/staff"
	"cliniq/utils"
)

// bearerToken extracts and validates the bearer token, returning its subject,
// role claim and hash.
func bearerToken(c *gin.Context) (subject, role, tokenHash string, ok bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
		return "", "", "", false
	}
	tokenString := strings.TrimPrefix(authHeader, "Bearer ")

	sub, r, err := utils.TokenClaims(tokenString)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
		return "", "", "", false
	}
	return sub, r, utils.HashToken(tokenString), true
}

// cachedHashMatches consults the redis auth cache for the account's active
// token hash. A hit avoids the database round trip; a miss falls through.
func cachedHashMatches(c *gin.Context, role, id, computedHash string) (matched, hit bool) {
	client := utils.GetAuthCacheClient()
	key := utils.AuthCachePrefix + role + ":" + id
	stored, err := client.Get(c.Request.Context(), key).Result()
	if err != nil || stored == "" {
		return false, false
	}
	return stored == computedHash, true
}

// JWTAuthAdminMiddleware authenticates hospital staff. On success the staff
// ID and hospital ID are placed in the request context.
func JWTAuthAdminMiddleware(staff staffRepo.StaffRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		sub, role, computedHash, ok := bearerToken(c)
		if !ok {
			return
		}
		if role != "admin" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Admin access required"})
			return
		}

		if matched, hit := cachedHashMatches(c, role, sub, computedHash); hit {
			if !matched {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token revoked"})
				return
			}
			c.Set("staffID", sub)
			c.Set("hospitalID", sub)
			c.Next()
			return
		}

		st, err := staff.GetByTokenHash(c.Request.Context(), computedHash)
		if err != nil || st == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token mismatch or staff not found"})
			return
		}

		c.Set("staffID", st.ID)
		c.Set("hospitalID", st.ID)
		c.Next()
	}
}

// JWTAuthAnyMiddleware accepts either role, resolving the account the token's
// role claim points at. Used by endpoints shared between both portals.
func JWTAuthAnyMiddleware(staff staffRepo.StaffRepository, doctors doctorRepo.DoctorRepository) gin.HandlerFunc {
	adminAuth := JWTAuthAdminMiddleware(staff)
	doctorAuth := JWTAuthDoctorMiddleware(doctors)
	return func(c *gin.Context) {
		_, role, _, ok := bearerToken(c)
		if !ok {
			return
		}
		if role == "doctor" {
			doctorAuth(c)
			return
		}
		adminAuth(c)
	}
}

// JWTAuthDoctorMiddleware authenticates doctors. On success the doctor ID and
// owning hospital ID are placed in the request context.
func JWTAuthDoctorMiddleware(doctors doctorRepo.DoctorRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		_, role, computedHash, ok := bearerToken(c)
		if !ok {
			return
		}
		if role != "doctor" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Doctor access required"})
			return
		}

		doc, err := doctors.GetByTokenHash(c.Request.Context(), computedHash)
		if err != nil || doc == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token mismatch or doctor not found"})
			return
		}

		c.Set("doctorID", doc.ID)
		c.Set("hospitalID", doc.HospitalID)
		c.Next()
	}
}
