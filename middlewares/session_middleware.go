// Copyright (C) 2025 l3montree GmbH
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package middlewares

import (
	"context"
	"crypto/subtle"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"

	"github.com/Wisdomcg-ai/wisdom-business-intelligence-sub015/accesscontrol"
	"github.com/Wisdomcg-ai/wisdom-business-intelligence-sub015/shared"
)

const sessionCookieName = "ory_kratos_session"

func getCookie(name string, cookies []*http.Cookie) *http.Cookie {
	for _, cookie := range cookies {
		if cookie.Name == name {
			return cookie
		}
	}
	return nil
}

func cookieAuth(ctx context.Context, oryAPIClient shared.AdminClient, oryKratosSessionCookie string) (string, error) {
	unescaped, err := url.QueryUnescape(oryKratosSessionCookie)
	if err != nil {
		return "", err
	}

	identity, err := oryAPIClient.GetIdentityFromCookie(ctx, unescaped)
	if err != nil {
		return "", err
	}

	return identity.Id, nil
}

func isAdminToken(header, adminToken string) bool {
	if header == "" || adminToken == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(header), []byte(adminToken)) == 1
}

// SessionMiddleware always sets a session. Requests without a valid cookie or
// admin token get accesscontrol.NoSession, routes decide whether that is enough.
func SessionMiddleware(oryAPIClient shared.AdminClient, adminToken string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			shared.SetAuthAdminClient(ctx, oryAPIClient)

			if isAdminToken(ctx.Request().Header.Get("X-Admin-Token"), adminToken) {
				shared.SetSession(ctx, accesscontrol.AdminSession)
				return next(ctx)
			}

			oryKratosSessionCookie := getCookie(sessionCookieName, ctx.Cookies())
			if oryKratosSessionCookie == nil {
				shared.SetSession(ctx, accesscontrol.NoSession)
				return next(ctx)
			}

			userID, err := cookieAuth(ctx.Request().Context(), oryAPIClient, oryKratosSessionCookie.String())
			if err != nil {
				slog.Warn("could not get user ID from cookie", "err", err)
				shared.SetSession(ctx, accesscontrol.NoSession)
				return next(ctx)
			}

			shared.SetSession(ctx, accesscontrol.NewSession(userID))
			return next(ctx)
		}
	}
}

// SessionRequired rejects requests without an authenticated user.
func SessionRequired() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			if !shared.HasSession(ctx) {
				return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
			}
			session := shared.GetSession(ctx)
			if !accesscontrol.IsAuthenticated(session) || session == accesscontrol.AdminSession {
				return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
			}
			return next(ctx)
		}
	}
}

// AdminRequired only lets requests through which carried the configured admin token.
func AdminRequired() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			if !shared.HasSession(ctx) || shared.GetSession(ctx) != accesscontrol.AdminSession {
				return echo.NewHTTPError(http.StatusUnauthorized, "admin token required")
			}
			return next(ctx)
		}
	}
}
