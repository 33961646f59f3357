package middleware

import (
	"strings"

	"chow/internal/delivery/http/response"
	"chow/internal/domain/entity"
	"chow/internal/domain/repository"
	"chow/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// ContextKeyActor is the echo.Context key holding the authenticated user.
const ContextKeyActor = "actor"

// AuthMiddleware resolves the bearer session token to a full user entity.
type AuthMiddleware struct {
	sessionStore service.SessionStore
	userRepo     repository.UserRepository
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(sessionStore service.SessionStore, userRepo repository.UserRepository) *AuthMiddleware {
	return &AuthMiddleware{sessionStore: sessionStore, userRepo: userRepo}
}

// Authenticate validates the bearer session token and loads the acting user.
// A token revoked by a newer login for the same user fails here.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Unauthorized(c, "UNAUTHENTICATED", "Authorization header is missing")
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		if token == authHeader {
			return response.Unauthorized(c, "UNAUTHENTICATED", "Invalid token format, must be Bearer token")
		}

		userID, ok := m.sessionStore.Resolve(token)
		if !ok {
			return response.Unauthorized(c, "UNAUTHENTICATED", "Invalid or expired session token")
		}

		actor, err := m.userRepo.FindByID(c.Request().Context(), userID)
		if err != nil {
			return response.Unauthorized(c, "UNAUTHENTICATED", "Session user no longer exists")
		}

		// Keep the raw token around so logout can revoke it.
		c.Set(ContextKeyActor, actor)
		c.Set("sessionToken", token)

		return next(c)
	}
}

// RequireRole checks that the actor holds the given role and, for roles that
// need admin approval, that the approval has been granted. It must be used
// AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(requiredRole entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			actor, ok := GetActor(c)
			if !ok {
				return response.Forbidden(c, "FORBIDDEN", "Permission denied: actor information missing")
			}

			if actor.Role != requiredRole {
				return response.Forbidden(c, "FORBIDDEN", "Permission denied: require '"+requiredRole.String()+"' role")
			}

			if actor.Role.RequiresApproval() && !actor.IsActive() {
				return response.Forbidden(c, "USER_NOT_APPROVED", "Account is awaiting admin approval")
			}

			return next(c)
		}
	}
}

// GetActor extracts the authenticated user placed on the context by Authenticate.
func GetActor(c echo.Context) (*entity.User, bool) {
	actor, ok := c.Get(ContextKeyActor).(*entity.User)

	return actor, ok
}

// GetSessionToken extracts the raw bearer token placed on the context by Authenticate.
func GetSessionToken(c echo.Context) string {
	token, _ := c.Get("sessionToken").(string)

	return token
}
