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
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/Wisdomcg-ai/wisdom-business-intelligence-sub015/config"
)

func TestErrorHandler(t *testing.T) {
	for _, tc := range []struct {
		name    string
		err     error
		code    int
		message string
	}{
		{"http error", echo.NewHTTPError(http.StatusForbidden, "insufficient permissions"), http.StatusForbidden, "insufficient permissions"},
		{"record not found", gorm.ErrRecordNotFound, http.StatusNotFound, "not found"},
		{"wrapped record not found", errors.Join(errors.New("reading"), gorm.ErrRecordNotFound), http.StatusNotFound, "not found"},
		{"duplicate key", &pgconn.PgError{Code: "23505"}, http.StatusConflict, "already exists"},
		{"anything else", errors.New("boom"), http.StatusInternalServerError, "Internal Server Error"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

			errorHandler(e)(tc.err, c)

			assert.Equal(t, tc.code, rec.Code)
			var body map[string]any
			assert.Nil(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tc.message, body["message"])
		})
	}
}

func TestServerRecoversPanics(t *testing.T) {
	e := Server(config.Config{
		Environment: "production",
		RateLimit:   config.RateLimitConfig{RPS: 100, Burst: 100, MaxClients: 10},
	})
	e.GET("/panic/", func(ctx echo.Context) error {
		panic("boom")
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/panic/", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
