package utils

import (
	"net/http"
	"time"

	apperrors "lab-portal/pkg/errors"
	"lab-portal/pkg/session"

	"github.com/labstack/echo/v4"
)

const sessionContextKey = "session"

func SetSessionCookie(ctx echo.Context, name, token string, ttl time.Duration) {
	ctx.SetCookie(&http.Cookie{
		Name:     name,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(ttl),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func ClearSessionCookie(ctx echo.Context, name string) {
	ctx.SetCookie(&http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func StashSession(ctx echo.Context, rec *session.Record) {
	ctx.Set(sessionContextKey, rec)
}

// CurrentSession returns the record the auth gate stashed for this request.
func CurrentSession(ctx echo.Context) (*session.Record, error) {
	rec, ok := ctx.Get(sessionContextKey).(*session.Record)
	if !ok || rec == nil {
		return nil, apperrors.ErrNoSession
	}
	return rec, nil
}
