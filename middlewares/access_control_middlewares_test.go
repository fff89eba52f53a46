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
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/Wisdomcg-ai/wisdom-business-intelligence-sub015/accesscontrol"
	"github.com/Wisdomcg-ai/wisdom-business-intelligence-sub015/database/models"
	"github.com/Wisdomcg-ai/wisdom-business-intelligence-sub015/mocks"
	"github.com/Wisdomcg-ai/wisdom-business-intelligence-sub015/shared"
)

func newBusinessContext(slug string, userID string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	c.SetParamNames("businessSlug")
	c.SetParamValues(slug)
	shared.SetSession(c, accesscontrol.NewSession(userID))
	return c, rec
}

func httpCode(t *testing.T, err error) int {
	t.Helper()
	var he *echo.HTTPError
	if assert.ErrorAs(t, err, &he) {
		return he.Code
	}
	return 0
}

func TestBusinessMiddleware(t *testing.T) {
	business := models.Business{Model: models.Model{ID: uuid.New()}, Name: "Acme", Slug: "acme"}

	t.Run("should set business, rbac and role for members", func(t *testing.T) {
		c, _ := newBusinessContext("acme", "user1")

		businessRepository := mocks.NewBusinessRepository(t)
		businessRepository.On("ReadBySlug", "acme").Return(business, nil)
		rbac := mocks.NewAccessControl(t)
		rbac.On("HasAccess", "user1").Return(true, nil)
		rbac.On("GetDomainRole", "user1").Return(shared.RoleCoach, nil)
		rbacProvider := mocks.NewRBACProvider(t)
		rbacProvider.On("GetDomainRBAC", business.ID.String()).Return(rbac)

		var called bool
		err := BusinessMiddleware(rbacProvider, businessRepository)(func(ctx echo.Context) error {
			called = true
			assert.Equal(t, business.ID, shared.GetBusiness(ctx).ID)
			assert.Equal(t, shared.RoleCoach, shared.GetRole(ctx))
			assert.Equal(t, rbac, shared.GetRBAC(ctx))
			return nil
		})(c)

		assert.Nil(t, err)
		assert.True(t, called)
	})

	t.Run("should answer 404 for non members", func(t *testing.T) {
		c, _ := newBusinessContext("acme", "stranger")

		businessRepository := mocks.NewBusinessRepository(t)
		businessRepository.On("ReadBySlug", "acme").Return(business, nil)
		rbac := mocks.NewAccessControl(t)
		rbac.On("HasAccess", "stranger").Return(false, nil)
		rbacProvider := mocks.NewRBACProvider(t)
		rbacProvider.On("GetDomainRBAC", business.ID.String()).Return(rbac)

		err := BusinessMiddleware(rbacProvider, businessRepository)(func(ctx echo.Context) error {
			t.Fatal("next must not be called")
			return nil
		})(c)

		assert.Equal(t, http.StatusNotFound, httpCode(t, err))
	})

	t.Run("should answer 404 for unknown businesses", func(t *testing.T) {
		c, _ := newBusinessContext("nope", "user1")

		businessRepository := mocks.NewBusinessRepository(t)
		businessRepository.On("ReadBySlug", "nope").Return(models.Business{}, gorm.ErrRecordNotFound)

		err := BusinessMiddleware(mocks.NewRBACProvider(t), businessRepository)(func(ctx echo.Context) error {
			return nil
		})(c)

		assert.Equal(t, http.StatusNotFound, httpCode(t, err))
	})
}

func TestBusinessAccessControl(t *testing.T) {
	t.Run("should answer 403 if the role lacks the permission", func(t *testing.T) {
		c, _ := newBusinessContext("acme", "member1")
		rbac := mocks.NewAccessControl(t)
		rbac.On("IsAllowed", "member1", shared.ObjectForecast, shared.ActionUpdate).Return(false, nil)
		shared.SetRBAC(c, rbac)

		err := BusinessAccessControl(shared.ObjectForecast, shared.ActionUpdate)(func(ctx echo.Context) error {
			return nil
		})(c)

		assert.Equal(t, http.StatusForbidden, httpCode(t, err))
	})

	t.Run("should call next if allowed", func(t *testing.T) {
		c, rec := newBusinessContext("acme", "coach1")
		rbac := mocks.NewAccessControl(t)
		rbac.On("IsAllowed", "coach1", shared.ObjectForecast, shared.ActionUpdate).Return(true, nil)
		shared.SetRBAC(c, rbac)

		err := BusinessAccessControl(shared.ObjectForecast, shared.ActionUpdate)(func(ctx echo.Context) error {
			return ctx.NoContent(http.StatusNoContent)
		})(c)

		assert.Nil(t, err)
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})
}

func TestForecastMiddleware(t *testing.T) {
	business := models.Business{Model: models.Model{ID: uuid.New()}}
	forecastID := uuid.New()

	newCtx := func() echo.Context {
		c, _ := newBusinessContext("acme", "user1")
		c.SetParamNames("businessSlug", "forecastID")
		c.SetParamValues("acme", forecastID.String())
		shared.SetBusiness(c, business)
		return c
	}

	t.Run("should set the forecast", func(t *testing.T) {
		repo := mocks.NewForecastRepository(t)
		repo.On("Read", forecastID).Return(models.Forecast{Model: models.Model{ID: forecastID}, BusinessID: business.ID}, nil)

		var called bool
		err := ForecastMiddleware(repo)(func(ctx echo.Context) error {
			called = true
			assert.Equal(t, forecastID, shared.GetForecast(ctx).ID)
			return nil
		})(newCtx())
		assert.Nil(t, err)
		assert.True(t, called)
	})

	t.Run("should hide forecasts of other businesses", func(t *testing.T) {
		repo := mocks.NewForecastRepository(t)
		repo.On("Read", forecastID).Return(models.Forecast{Model: models.Model{ID: forecastID}, BusinessID: uuid.New()}, nil)

		err := ForecastMiddleware(repo)(func(ctx echo.Context) error {
			return nil
		})(newCtx())
		assert.Equal(t, http.StatusNotFound, httpCode(t, err))
	})

	t.Run("should reject malformed ids", func(t *testing.T) {
		c := newCtx()
		c.SetParamValues("acme", "not-a-uuid")

		err := ForecastMiddleware(mocks.NewForecastRepository(t))(func(ctx echo.Context) error {
			return nil
		})(c)
		assert.Equal(t, http.StatusBadRequest, httpCode(t, err))
	})
}
