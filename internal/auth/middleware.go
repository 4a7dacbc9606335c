package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/school-service/internal/domain"
	apperrors "github.com/spec-kit/school-service/pkg/util"
)

const principalKey = "auth_principal"

// Middleware validates bearer tokens and loads principals for protected routes.
type Middleware struct {
	resolver *Resolver
}

// NewMiddleware constructs the auth guard.
func NewMiddleware(resolver *Resolver) *Middleware {
	return &Middleware{resolver: resolver}
}

// Handle enforces authentication. Every failure mode surfaces the same
// generic 401; the error middleware attaches the WWW-Authenticate challenge.
func (m *Middleware) Handle(c *fiber.Ctx) error {
	authHeader := c.Get(fiber.HeaderAuthorization)
	if authHeader == "" {
		return apperrors.NewUnauthorized("could not validate credentials")
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return apperrors.NewUnauthorized("could not validate credentials")
	}

	principal, err := m.resolver.ResolveActive(c.UserContext(), parts[1])
	if err != nil {
		if err == ErrUnauthorized {
			return apperrors.NewUnauthorized("could not validate credentials")
		}
		return apperrors.MapError(err)
	}

	c.Locals(principalKey, principal)
	return c.Next()
}

// PrincipalFromContext retrieves the authenticated student.
func PrincipalFromContext(c *fiber.Ctx) (*domain.Student, bool) {
	val := c.Locals(principalKey)
	if val == nil {
		return nil, false
	}
	principal, ok := val.(*domain.Student)
	return principal, ok
}
