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

package controllers

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Wisdomcg-ai/wisdom-business-intelligence-sub015/accesscontrol"
	"github.com/Wisdomcg-ai/wisdom-business-intelligence-sub015/database/models"
	"github.com/Wisdomcg-ai/wisdom-business-intelligence-sub015/shared"
)

var testBusiness = models.Business{
	Model:    models.Model{ID: uuid.MustParse("7d5b6f0e-3f3c-4a57-9a4e-9a8f1b3c2d10")},
	Name:     "Acme Plumbing",
	Slug:     "acme-plumbing",
	Currency: "AUD",
}

var testForecast = models.Forecast{
	Model:      models.Model{ID: uuid.MustParse("0b1c2d3e-4f50-4a61-8b72-9c8d7e6f5a41")},
	BusinessID: testBusiness.ID,
	Name:       "Q1 Plan",
	FiscalYear: 2025,
	StartMonth: 7,
}

// newBusinessContext builds a context as it looks after the session and business middlewares ran.
func newBusinessContext(method, target string, body io.Reader, userID string, role shared.Role) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, target, body)
	rec := httptest.NewRecorder()
	ctx := echo.New().NewContext(req, rec)

	shared.SetSession(ctx, accesscontrol.NewSession(userID))
	shared.SetBusiness(ctx, testBusiness)
	shared.SetRole(ctx, role)
	return ctx, rec
}

func setParam(ctx echo.Context, name, value string) {
	values := append([]string{}, ctx.ParamValues()...)
	ctx.SetParamNames(append(ctx.ParamNames(), name)...)
	ctx.SetParamValues(append(values, value)...)
}

func assertHTTPError(t *testing.T, err error, code int) {
	t.Helper()
	require.Error(t, err)
	var he *echo.HTTPError
	require.ErrorAs(t, err, &he)
	assert.Equal(t, code, he.Code)
}

func TestUUIDParam(t *testing.T) {
	ctx, _ := newBusinessContext("GET", "/", nil, "user-1", shared.RoleMember)

	_, err := uuidParam(ctx, "lineID")
	assertHTTPError(t, err, 400)

	setParam(ctx, "lineID", "not-a-uuid")
	_, err = uuidParam(ctx, "lineID")
	assertHTTPError(t, err, 400)

	id := uuid.New()
	ctx.SetParamValues(id.String())
	parsed, err := uuidParam(ctx, "lineID")
	require.NoError(t, err)
	assert.Equal(t, id, parsed)
}

func TestBindAndValidate(t *testing.T) {
	type request struct {
		Name string `json:"name" validate:"required"`
	}

	t.Run("rejects malformed json", func(t *testing.T) {
		ctx, _ := newBusinessContext("POST", "/", strings.NewReader(`{"name":`), "user-1", shared.RoleMember)
		ctx.Request().Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		var req request
		assertHTTPError(t, bindAndValidate(ctx, &req), 400)
	})

	t.Run("rejects missing required fields", func(t *testing.T) {
		ctx, _ := newBusinessContext("POST", "/", strings.NewReader(`{}`), "user-1", shared.RoleMember)
		ctx.Request().Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		var req request
		assertHTTPError(t, bindAndValidate(ctx, &req), 400)
	})

	t.Run("binds valid requests", func(t *testing.T) {
		ctx, _ := newBusinessContext("POST", "/", strings.NewReader(`{"name":"Acme"}`), "user-1", shared.RoleMember)
		ctx.Request().Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		var req request
		require.NoError(t, bindAndValidate(ctx, &req))
		assert.Equal(t, "Acme", req.Name)
	})
}
