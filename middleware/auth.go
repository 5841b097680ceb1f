package middleware

import (
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/jyogi-studio/jyogi-manager-api/config"
)

// sessionTTL bounds how long an admin unlock lasts before the passcode is
// required again.
const sessionTTL = 12 * time.Hour

// SessionClaims is the payload of an admin session token
type SessionClaims struct {
	IsAdmin bool `json:"is_admin"`
	jwt.RegisteredClaims
}

// revokedSessions holds the IDs of logged-out tokens until they expire.
// The process serves one deployment (spec'd single-user model), so an
// in-memory list is the whole revocation story.
var revokedSessions = struct {
	sync.Mutex
	ids map[string]time.Time
}{ids: make(map[string]time.Time)}

// IssueAdminSession signs a fresh admin session token
func IssueAdminSession(cfg *config.Config) (string, error) {
	now := time.Now()
	claims := SessionClaims{
		IsAdmin: true,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(sessionTTL)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(cfg.SessionSecret))
}

// RevokeSession marks a session ID as logged out until its expiry
func RevokeSession(id string, expiresAt time.Time) {
	if id == "" {
		return
	}
	revokedSessions.Lock()
	defer revokedSessions.Unlock()

	// Opportunistically drop entries that have expired on their own
	now := time.Now()
	for old, exp := range revokedSessions.ids {
		if exp.Before(now) {
			delete(revokedSessions.ids, old)
		}
	}
	revokedSessions.ids[id] = expiresAt
}

func isRevoked(id string) bool {
	revokedSessions.Lock()
	defer revokedSessions.Unlock()
	_, ok := revokedSessions.ids[id]
	return ok
}

// bearerToken extracts the session token from the Authorization header
func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// AdminSession resolves the request's admin state into the gin context.
// A missing, malformed, expired, or revoked token simply means "not admin";
// this middleware never rejects a request.
func AdminSession(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("is_admin", false)

		tokenString := bearerToken(c)
		if tokenString == "" || cfg.SessionSecret == "" {
			c.Next()
			return
		}

		claims := &SessionClaims{}
		token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(cfg.SessionSecret), nil
		})
		if err != nil || !token.Valid || !claims.IsAdmin || isRevoked(claims.ID) {
			c.Next()
			return
		}

		c.Set("is_admin", true)
		c.Set("session_id", claims.ID)
		if claims.ExpiresAt != nil {
			c.Set("session_expires_at", claims.ExpiresAt.Time)
		}
		c.Next()
	}
}

// IsAdmin reports whether the current request carries a valid admin session
func IsAdmin(c *gin.Context) bool {
	isAdmin, exists := c.Get("is_admin")
	if !exists {
		return false
	}
	flag, ok := isAdmin.(bool)
	return ok && flag
}

// SessionID returns the current session token ID and its expiry, when present
func SessionID(c *gin.Context) (string, time.Time) {
	id, _ := c.Get("session_id")
	idStr, _ := id.(string)
	exp, _ := c.Get("session_expires_at")
	expTime, _ := exp.(time.Time)
	return idStr, expTime
}

// RequireAdmin rejects requests that do not carry an admin session
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !IsAdmin(c) {
			c.JSON(http.StatusForbidden, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "ADMIN_REQUIRED",
					"message": "Admin mode required for this operation",
				},
			})
			c.Abort()
			return
		}
		c.Next()
	}
}

// publicModePrefixes are the routes a non-admin visitor may still reach when
// the deployment forces everyone to the showcase.
var publicModePrefixes = []string{
	"/api/v1/showcase",
	"/api/v1/auth/",
	"/api/v1/uploads/",
	"/api/v1/health",
}

// PublicMode forces unauthenticated visitors to the public showcase view
// when the deployment flag is on. Review submission stays reachable, since
// it is part of the showcase.
func PublicMode(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !cfg.PublicMode || IsAdmin(c) {
			c.Next()
			return
		}

		path := c.Request.URL.Path
		allowed := false
		for _, prefix := range publicModePrefixes {
			if strings.HasPrefix(path, prefix) {
				allowed = true
				break
			}
		}
		// POST /api/v1/designs/:id/reviews is the showcase review form
		if !allowed && c.Request.Method == http.MethodPost &&
			strings.HasPrefix(path, "/api/v1/designs/") && strings.HasSuffix(path, "/reviews") {
			allowed = true
		}

		if !allowed {
			c.JSON(http.StatusForbidden, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "PUBLIC_MODE",
					"message": "This deployment is in public mode; only the showcase is available",
				},
			})
			c.Abort()
			return
		}
		c.Next()
	}
}
