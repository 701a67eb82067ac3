package middleware

import (
	"net/http"
	"strings"

	"lab-portal/pkg/service"
	"lab-portal/pkg/session"
	"lab-portal/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// PublicPaths never consult the session. Everything else is gated.
var PublicPaths = []string{"/", "/auth/login", "/auth/register", "/healthz"}

type AuthMiddleware struct {
	tokens     service.TokenService
	sessions   session.Store
	cookieName string
	logger     *zap.Logger
}

func NewAuthMiddleware(tokens service.TokenService, sessions session.Store, cookieName string, logger *zap.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		tokens:     tokens,
		sessions:   sessions,
		cookieName: cookieName,
		logger:     logger,
	}
}

func isPublic(path string) bool {
	for _, p := range PublicPaths {
		if path == p || (p != "/" && strings.HasPrefix(path, p+"/")) {
			return true
		}
	}
	return false
}

// Gate redirects any request without a live session back to the landing
// page before the handler runs, so protected content is never produced.
// A missing cookie, a bad signature and a corrupt or expired store record
// are all treated the same way: no session.
func (m *AuthMiddleware) Gate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if isPublic(c.Request().URL.Path) {
			return next(c)
		}

		cookie, err := c.Cookie(m.cookieName)
		if err != nil || cookie.Value == "" {
			return c.Redirect(http.StatusSeeOther, "/")
		}

		claims, err := m.tokens.Validate(cookie.Value)
		if err != nil {
			m.logger.Warn("auth gate: rejected session token", zap.Error(err))
			return c.Redirect(http.StatusSeeOther, "/")
		}

		rec, err := m.sessions.Find(c.Request().Context(), claims.SessionID)
		if err != nil {
			m.logger.Warn("auth gate: no session record", zap.String("sessionID", claims.SessionID), zap.Error(err))
			return c.Redirect(http.StatusSeeOther, "/")
		}
		if rec.User.ID != claims.UserID {
			m.logger.Warn("auth gate: token/session user mismatch",
				zap.Int64("tokenUserID", claims.UserID),
				zap.Int64("sessionUserID", rec.User.ID),
			)
			return c.Redirect(http.StatusSeeOther, "/")
		}

		utils.StashSession(c, rec)
		return next(c)
	}
}
