package middleware

import (
	"strings"

	"storefront/internal/delivery/http/response"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"

	"github.com/labstack/echo/v4"
)

const (
	contextKeyUserID = "userID"
	contextKeyRoles  = "roles"
)

// AuthMiddleware provides middleware for JWT authentication and authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate is the core middleware function that validates the JWT access token.
// On success the caller's user ID and granted role set are stored on the echo
// context for the role gate and the handlers to consume.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Unauthorized(c, "MISSING_TOKEN", "Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid token format, must be Bearer token")
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
		}
		if claims.Type != "access" {
			return response.Unauthorized(c, "INVALID_TOKEN", "Token is not an access token")
		}
		if claims.UserID == "" {
			return response.Unauthorized(c, "INVALID_TOKEN", "User ID missing from token")
		}

		c.Set(contextKeyUserID, claims.UserID)
		c.Set(contextKeyRoles, claims.Roles)

		return next(c)
	}
}

// RequireAnyRole is a middleware factory that checks if the caller holds at
// least one of the given roles. It must be used AFTER the Authenticate
// middleware. Role membership is the only thing checked: a route gated on
// RoleUser does not restrict which user IDs the caller may reference.
func (m *AuthMiddleware) RequireAnyRole(requiredRoles ...entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			roles, ok := GetRoles(c)
			if !ok {
				return response.Forbidden(c, "FORBIDDEN", "Permission denied: role information missing")
			}

			granted := entity.RolesFromStrings(roles)
			for _, required := range requiredRoles {
				if granted.Contains(required) {
					return next(c)
				}
			}

			return response.Forbidden(c, "FORBIDDEN", "Permission denied: insufficient role")
		}
	}
}

// GetUserID returns the authenticated caller's user ID from the echo context.
func GetUserID(c echo.Context) (string, bool) {
	userID, ok := c.Get(contextKeyUserID).(string)

	return userID, ok && userID != ""
}

// GetRoles returns the authenticated caller's role set from the echo context.
func GetRoles(c echo.Context) ([]string, bool) {
	roles, ok := c.Get(contextKeyRoles).([]string)

	return roles, ok
}
