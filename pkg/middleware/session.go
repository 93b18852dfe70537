package middleware

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const sessionCookie = "CEREA_SID"

// Session tags every request with a client ID carried in a cookie. First
// contact gets a fresh UUID; everything a client imports is scoped to it.
func Session() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sid := ""
			if ck, err := c.Cookie(sessionCookie); err == nil {
				sid = ck.Value
			}
			if sid == "" {
				sid = uuid.NewString()
				c.SetCookie(&http.Cookie{Name: sessionCookie, Value: sid, Path: "/"})
			}
			c.Set("sid", sid)
			return next(c)
		}
	}
}
