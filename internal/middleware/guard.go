package middleware

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/noah-isme/campus-portal-api/internal/models"
	"github.com/noah-isme/campus-portal-api/internal/repository"
	"github.com/noah-isme/campus-portal-api/internal/service"
	"github.com/noah-isme/campus-portal-api/internal/utils"
)

type routeClass int

const (
	routePublic routeClass = iota
	routeProtected
	routeAdmin
	routeInstructor
)

// Route tables checked in order; first matching prefix wins. The bare "/"
// entry is an exact match, everything else is a prefix. Paths that match no
// table default to protected.
var (
	publicRoutes = []string{
		"/",
		"/login",
		"/register",
		"/api/auth/login",
		"/api/auth/register",
		"/api/v1/health",
		"/metrics",
	}
	adminRoutes      = []string{"/admin", "/api/admin"}
	instructorRoutes = []string{"/instructor", "/api/instructor"}
)

// RouteGuard authenticates and authorises every non-public request: it
// resolves the session cookie to a live user and enforces the role set the
// path requires. Identity is rebuilt from the token on each request; nothing
// is held between requests.
func RouteGuard(auth service.AuthService, users repository.UserRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		path := c.Path()
		class := classifyRoute(path)
		if class == routePublic {
			return c.Next()
		}

		token := c.Cookies(service.CookieName)
		if token == "" {
			return denyUnauthenticated(c)
		}

		claims, err := auth.ValidateToken(token)
		if err != nil {
			c.Cookie(auth.ClearAuthCookie())
			return denyUnauthenticated(c)
		}

		user, err := users.FindByID(c.Context(), claims.UserID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				// Account deleted after the token was issued.
				c.Cookie(auth.ClearAuthCookie())
				return denyUnauthenticated(c)
			}
			return utils.SendError(c, fiber.StatusInternalServerError, "failed to resolve user")
		}

		switch class {
		case routeAdmin:
			if user.Role != models.RoleAdmin {
				return denyForbidden(c)
			}
		case routeInstructor:
			if user.Role != models.RoleInstructor && user.Role != models.RoleAdmin {
				return denyForbidden(c)
			}
		}

		c.Locals("user_id", user.ID)
		c.Locals("user_email", user.Email)
		c.Locals("user_role", user.Role)

		return c.Next()
	}
}

func classifyRoute(path string) routeClass {
	for _, route := range publicRoutes {
		if route == "/" {
			if path == "/" {
				return routePublic
			}
			continue
		}
		if strings.HasPrefix(path, route) {
			return routePublic
		}
	}
	for _, route := range adminRoutes {
		if strings.HasPrefix(path, route) {
			return routeAdmin
		}
	}
	for _, route := range instructorRoutes {
		if strings.HasPrefix(path, route) {
			return routeInstructor
		}
	}
	return routeProtected
}

func isAPIPath(path string) bool {
	return strings.HasPrefix(path, "/api/")
}

func denyUnauthenticated(c *fiber.Ctx) error {
	if isAPIPath(c.Path()) {
		return utils.SendError(c, fiber.StatusUnauthorized, "authentication required")
	}
	return c.Redirect("/login", fiber.StatusFound)
}

// denyForbidden never bounces to login: the caller is authenticated, just
// not allowed here.
func denyForbidden(c *fiber.Ctx) error {
	if isAPIPath(c.Path()) {
		return utils.SendError(c, fiber.StatusForbidden, "insufficient permissions")
	}
	return c.Redirect("/dashboard", fiber.StatusFound)
}
