package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/jyogi-studio/jyogi-manager-api/config"
	"github.com/jyogi-studio/jyogi-manager-api/middleware"
)

// LoginRequest represents the request body for unlocking admin mode
type LoginRequest struct {
	Passcode string `json:"passcode" binding:"required"`
}

// Login handles POST /api/v1/auth/login - unlocks admin mode when the
// submitted passcode exactly matches the configured secret
func Login(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !cfg.AdminUnlockEnabled() {
			c.JSON(http.StatusForbidden, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "ADMIN_DISABLED",
					"message": "No admin passcode is configured. Admin unlock disabled.",
				},
			})
			return
		}

		var req LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "VALIDATION_ERROR",
					"message": "Passcode is required",
				},
			})
			return
		}

		if strings.TrimSpace(req.Passcode) != cfg.AdminPasscode {
			c.JSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "WRONG_PASSCODE",
					"message": "Wrong passcode.",
				},
			})
			return
		}

		token, err := middleware.IssueAdminSession(cfg)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "SESSION_ERROR",
					"message": "Failed to create admin session",
				},
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"data": gin.H{
				"token": token,
			},
		})
	}
}

// Logout handles POST /api/v1/auth/logout - revokes the presented admin
// session. Logging out without a session is not an error.
func Logout(c *gin.Context) {
	if middleware.IsAdmin(c) {
		id, expiresAt := middleware.SessionID(c)
		middleware.RevokeSession(id, expiresAt)
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Logged out",
	})
}
