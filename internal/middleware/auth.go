package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"apt-be-svc/internal/inbox"
	"apt-be-svc/pkg/utils"
)

const viewerKey = "viewer"

// Auth validates an HS256 bearer token and stores the viewer it describes.
// Claims: "sub" is the viewer id, "role" is admin or tenant, "room" is the
// tenant's room. EventSource clients cannot set headers, so a "token" query
// parameter is accepted as well.
func Auth(secret string) gin.HandlerFunc {
	key := []byte(secret)

	return func(c *gin.Context) {
		tokenString := bearerToken(c)
		if tokenString == "" {
			utils.UnauthorizedResponse(c, "Missing or invalid Authorization header")
			c.Abort()
			return
		}

		claims := jwt.MapClaims{}
		token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
			return key, nil
		}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
		if err != nil || !token.Valid {
			utils.UnauthorizedResponse(c, "Invalid token")
			c.Abort()
			return
		}

		viewer := inbox.Viewer{}
		viewer.ID, _ = claims["sub"].(string)
		viewer.Role, _ = claims["role"].(string)
		viewer.RoomID, _ = claims["room"].(string)

		if viewer.ID == "" || (viewer.Role != inbox.RoleAdmin && viewer.Role != inbox.RoleTenant) {
			utils.UnauthorizedResponse(c, "Invalid token claims")
			c.Abort()
			return
		}
		if viewer.Role == inbox.RoleTenant && viewer.RoomID == "" {
			utils.UnauthorizedResponse(c, "Tenant token has no room")
			c.Abort()
			return
		}

		c.Set(viewerKey, viewer)
		c.Next()
	}
}

// RequireRole rejects viewers whose role is not one of roles
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		viewer, ok := ViewerFromContext(c)
		if !ok {
			utils.UnauthorizedResponse(c, "Authentication required")
			c.Abort()
			return
		}
		for _, role := range roles {
			if viewer.Role == role {
				c.Next()
				return
			}
		}
		utils.ErrorResponse(c, http.StatusForbidden, "Insufficient role", "FORBIDDEN", nil)
		c.Abort()
	}
}

// ViewerFromContext returns the viewer stored by Auth
func ViewerFromContext(c *gin.Context) (inbox.Viewer, bool) {
	value, exists := c.Get(viewerKey)
	if !exists {
		return inbox.Viewer{}, false
	}
	viewer, ok := value.(inbox.Viewer)
	return viewer, ok
}

// SignToken issues a token for viewer. Used by tooling and tests; the
// service itself never logs anybody in.
func SignToken(secret string, viewer inbox.Viewer) (string, error) {
	claims := jwt.MapClaims{
		"sub":  viewer.ID,
		"role": viewer.Role,
	}
	if viewer.RoomID != "" {
		claims["room"] = viewer.RoomID
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimSpace(header[len("Bearer "):])
	}
	return c.Query("token")
}
