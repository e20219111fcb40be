// FILE: internal/pkg/serverutils/auth_gate.go
package serverutils

import (
	"context"
	"strings"

	"consulta-ai-be/internal/pkg/apperr"
	"consulta-ai-be/internal/pkg/token"
	"consulta-ai-be/internal/repository/specification"
	"consulta-ai-be/internal/repository/unitofwork"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const bearerPrefix = "Bearer "

// AuthGate verifies bearer tokens and resolves them to an existing user.
// It returns an identity or an error; the HTTP layer decides whether to
// proceed, so a rejected request produces no side effects.
type AuthGate struct {
	tokens     *token.Manager
	uowFactory unitofwork.RepositoryFactory
}

func NewAuthGate(tokens *token.Manager, uowFactory unitofwork.RepositoryFactory) *AuthGate {
	return &AuthGate{
		tokens:     tokens,
		uowFactory: uowFactory,
	}
}

// Authenticate extracts and verifies the Authorization header, then confirms
// the user still exists.
func (g *AuthGate) Authenticate(ctx context.Context, authHeader string) (uuid.UUID, error) {
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return uuid.Nil, apperr.ErrMissingToken
	}

	claims, err := g.tokens.Verify(strings.TrimPrefix(authHeader, bearerPrefix))
	if err != nil {
		return uuid.Nil, err
	}

	userId, err := uuid.Parse(claims.UserId)
	if err != nil {
		return uuid.Nil, apperr.ErrInvalidToken
	}

	uow := g.uowFactory.NewUnitOfWork(ctx)
	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return uuid.Nil, err
	}
	if user == nil {
		return uuid.Nil, apperr.ErrUserNotFound
	}

	return userId, nil
}

// Middleware adapts the gate to Fiber: on success the verified id is stored
// in Locals("user_id"), on any failure the request halts with 401.
func (g *AuthGate) Middleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		userId, err := g.Authenticate(ctx.Context(), ctx.Get(fiber.HeaderAuthorization))
		if err != nil {
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Por favor, autentíquese.",
			})
		}
		ctx.Locals("user_id", userId)
		return ctx.Next()
	}
}

// UserIdFromCtx reads the identity the middleware attached.
func UserIdFromCtx(ctx *fiber.Ctx) uuid.UUID {
	if id, ok := ctx.Locals("user_id").(uuid.UUID); ok {
		return id
	}
	return uuid.Nil
}
