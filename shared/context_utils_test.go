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

package shared_test

import (
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/Wisdomcg-ai/wisdom-business-intelligence-sub015/shared"
)

func TestGetPageInfo(t *testing.T) {
	t.Run("should use the defaults", func(t *testing.T) {
		e := echo.New()
		ctx := e.NewContext(httptest.NewRequest("GET", "/", nil), httptest.NewRecorder())

		assert.Equal(t, shared.PageInfo{Page: 1, PageSize: 10}, shared.GetPageInfo(ctx))
	})

	t.Run("should cap the page size", func(t *testing.T) {
		e := echo.New()
		ctx := e.NewContext(httptest.NewRequest("GET", "/?page=3&pageSize=1000", nil), httptest.NewRecorder())

		assert.Equal(t, shared.PageInfo{Page: 3, PageSize: 100}, shared.GetPageInfo(ctx))
	})
}

func TestGetLimitOffset(t *testing.T) {
	t.Run("should use the defaults on invalid input", func(t *testing.T) {
		e := echo.New()
		ctx := e.NewContext(httptest.NewRequest("GET", "/?limit=abc&offset=-5", nil), httptest.NewRecorder())

		assert.Equal(t, shared.LimitOffset{Limit: 50, Offset: 0}, shared.GetLimitOffset(ctx, 50, 200))
	})

	t.Run("should respect the maximum", func(t *testing.T) {
		e := echo.New()
		ctx := e.NewContext(httptest.NewRequest("GET", "/?limit=500&offset=20", nil), httptest.NewRecorder())

		assert.Equal(t, shared.LimitOffset{Limit: 200, Offset: 20}, shared.GetLimitOffset(ctx, 50, 200))
	})
}

func TestGetUUIDParam(t *testing.T) {
	e := echo.New()
	ctx := e.NewContext(httptest.NewRequest("GET", "/", nil), httptest.NewRecorder())
	id := uuid.New()
	ctx.SetParamNames("forecastID", "broken")
	ctx.SetParamValues(id.String(), "not-a-uuid")

	res, err := shared.GetUUIDParam(ctx, "forecastID")
	assert.NoError(t, err)
	assert.Equal(t, id, res)

	_, err = shared.GetUUIDParam(ctx, "broken")
	assert.Error(t, err)

	_, err = shared.GetUUIDParam(ctx, "missing")
	assert.Error(t, err)
}

func TestGetRoleDefaultsToUnknown(t *testing.T) {
	e := echo.New()
	ctx := e.NewContext(httptest.NewRequest("GET", "/", nil), httptest.NewRecorder())
	assert.Equal(t, shared.RoleUnknown, shared.GetRole(ctx))

	shared.SetRole(ctx, shared.RoleCoach)
	assert.Equal(t, shared.RoleCoach, shared.GetRole(ctx))
}
