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
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/ory/client-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/Wisdomcg-ai/wisdom-business-intelligence-sub015/accesscontrol"
	"github.com/Wisdomcg-ai/wisdom-business-intelligence-sub015/mocks"
	"github.com/Wisdomcg-ai/wisdom-business-intelligence-sub015/shared"
)

func TestSessionMiddleware(t *testing.T) {
	t.Run("should set the userID using cookie auth", func(t *testing.T) {
		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{
			Name:  "ory_kratos_session",
			Value: "session_cookie_value",
		})
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		mockAdminClient := mocks.NewAdminClient(t)
		mockAdminClient.On("GetIdentityFromCookie", mock.Anything, "ory_kratos_session=session_cookie_value").Return(client.Identity{
			Id: "user2",
		}, nil)

		mw := SessionMiddleware(mockAdminClient, "secret")

		var called bool
		handler := mw(func(ctx echo.Context) error {
			called = true
			assert.Equal(t, "user2", shared.GetSession(ctx).GetUserID())
			assert.Equal(t, mockAdminClient, shared.GetAuthAdminClient(ctx))
			return nil
		})

		assert.Nil(t, handler(c))
		assert.True(t, called)
	})

	t.Run("should set no session if kratos rejects the cookie", func(t *testing.T) {
		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: "ory_kratos_session", Value: "expired"})
		c := e.NewContext(req, httptest.NewRecorder())

		mockAdminClient := mocks.NewAdminClient(t)
		mockAdminClient.On("GetIdentityFromCookie", mock.Anything, "ory_kratos_session=expired").Return(client.Identity{}, errors.New("401 Unauthorized"))

		var called bool
		handler := SessionMiddleware(mockAdminClient, "secret")(func(ctx echo.Context) error {
			called = true
			assert.Equal(t, accesscontrol.NoSession, shared.GetSession(ctx))
			return nil
		})

		assert.Nil(t, handler(c))
		assert.True(t, called)
	})

	t.Run("should set no session without cookie", func(t *testing.T) {
		e := echo.New()
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

		handler := SessionMiddleware(mocks.NewAdminClient(t), "secret")(func(ctx echo.Context) error {
			assert.False(t, accesscontrol.IsAuthenticated(shared.GetSession(ctx)))
			return nil
		})
		assert.Nil(t, handler(c))
	})

	t.Run("should set the admin session using the admin token header", func(t *testing.T) {
		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Admin-Token", "secret")
		c := e.NewContext(req, httptest.NewRecorder())

		handler := SessionMiddleware(mocks.NewAdminClient(t), "secret")(func(ctx echo.Context) error {
			assert.Equal(t, accesscontrol.AdminSession, shared.GetSession(ctx))
			return nil
		})
		assert.Nil(t, handler(c))
	})

	t.Run("should ignore a wrong admin token", func(t *testing.T) {
		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Admin-Token", "guess")
		c := e.NewContext(req, httptest.NewRecorder())

		handler := SessionMiddleware(mocks.NewAdminClient(t), "secret")(func(ctx echo.Context) error {
			assert.Equal(t, accesscontrol.NoSession, shared.GetSession(ctx))
			return nil
		})
		assert.Nil(t, handler(c))
	})

	t.Run("should never accept an admin token if none is configured", func(t *testing.T) {
		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Admin-Token", "anything")
		c := e.NewContext(req, httptest.NewRecorder())

		handler := SessionMiddleware(mocks.NewAdminClient(t), "")(func(ctx echo.Context) error {
			assert.NotEqual(t, accesscontrol.AdminSession, shared.GetSession(ctx))
			return nil
		})
		assert.Nil(t, handler(c))
	})
}

func TestSessionRequired(t *testing.T) {
	next := func(ctx echo.Context) error { return ctx.NoContent(http.StatusNoContent) }

	for _, tc := range []struct {
		name    string
		session shared.AuthSession
		code    int
	}{
		{"authenticated user", accesscontrol.NewSession("user1"), http.StatusNoContent},
		{"no session", accesscontrol.NoSession, http.StatusUnauthorized},
		{"admin token is not a user", accesscontrol.AdminSession, http.StatusUnauthorized},
	} {
		t.Run(tc.name, func(t *testing.T) {
			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
			shared.SetSession(c, tc.session)

			err := SessionRequired()(next)(c)
			if tc.code == http.StatusNoContent {
				assert.Nil(t, err)
				assert.Equal(t, tc.code, rec.Code)
				return
			}
			var he *echo.HTTPError
			assert.ErrorAs(t, err, &he)
			assert.Equal(t, tc.code, he.Code)
		})
	}
}

func TestAdminRequired(t *testing.T) {
	next := func(ctx echo.Context) error { return ctx.NoContent(http.StatusNoContent) }

	t.Run("admin session passes", func(t *testing.T) {
		e := echo.New()
		rec := httptest.NewRecorder()
		c := e.NewContext(httptest.NewRequest(http.MethodPost, "/", nil), rec)
		shared.SetSession(c, accesscontrol.AdminSession)

		assert.Nil(t, AdminRequired()(next)(c))
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("a user named admin does not pass", func(t *testing.T) {
		e := echo.New()
		c := e.NewContext(httptest.NewRequest(http.MethodPost, "/", nil), httptest.NewRecorder())
		shared.SetSession(c, accesscontrol.NewSession("admin"))

		err := AdminRequired()(next)(c)
		var he *echo.HTTPError
		assert.ErrorAs(t, err, &he)
		assert.Equal(t, http.StatusUnauthorized, he.Code)
	})
}
