package middleware

import (
	"fmt"

	"petcare-service/internal/module/booking/repositories"
	"petcare-service/internal/pkg/errors"
	"petcare-service/internal/pkg/helpers"

	"github.com/gofiber/fiber/v2"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
)

type Middleware struct {
	Log  *otelzap.Logger
	Repo repositories.Repositories
}

// ValidateToken resolves the bearer token into an opaque actor id and role
// through the user service. The core trusts the result verbatim.
func (m *Middleware) ValidateToken(ctx *fiber.Ctx) error {
	auth := ctx.Get("Authorization")
	if len(auth) < 8 {
		m.Log.Ctx(ctx.UserContext()).Error("error get token from header")
		return helpers.RespError(ctx, m.Log, errors.UnauthorizedError("error get token from header"))
	}

	// strip the "Bearer " prefix
	token := auth[7:]

	resp, err := m.Repo.ValidateToken(ctx.Context(), token)
	if err != nil {
		m.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error validate token: %v", err))
		return helpers.RespError(ctx, m.Log, errors.UnauthorizedError("error validate token"))
	}

	if !resp.IsValid {
		m.Log.Ctx(ctx.UserContext()).Error("error validate token")
		return helpers.RespError(ctx, m.Log, errors.UnauthorizedError("error validate token"))
	}

	ctx.Locals("user_id", resp.UserID)
	ctx.Locals("role", resp.Role)
	ctx.Locals("email_user", resp.EmailUser)

	return ctx.Next()
}

// RequireRole guards routes only one role may call, e.g. admin withdrawal
// processing. Must run after ValidateToken.
func (m *Middleware) RequireRole(role string) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		actual, _ := ctx.Locals("role").(string)
		if actual != role {
			m.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("role %s required, got %s", role, actual))
			return helpers.RespError(ctx, m.Log, errors.Forbidden("insufficient role"))
		}
		return ctx.Next()
	}
}
