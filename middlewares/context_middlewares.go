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

	"github.com/labstack/echo/v4"

	"github.com/Wisdomcg-ai/wisdom-business-intelligence-sub015/shared"
)

// all middlewares which modify the current request context and fetch some data from the database

// ForecastMiddleware loads the forecast of the url. Forecasts of other businesses are reported as missing.
func ForecastMiddleware(forecastRepository shared.ForecastRepository) shared.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx shared.Context) error {
			forecastID, err := shared.GetUUIDParam(ctx, "forecastID")
			if err != nil {
				return echo.NewHTTPError(http.StatusBadRequest, "invalid forecast id").WithInternal(err)
			}

			forecast, err := forecastRepository.Read(forecastID)
			if err != nil {
				return echo.NewHTTPError(http.StatusNotFound, "could not find forecast").WithInternal(err)
			}

			if forecast.BusinessID != shared.GetBusiness(ctx).ID {
				return echo.NewHTTPError(http.StatusNotFound, "could not find forecast")
			}

			shared.SetForecast(ctx, forecast)
			return next(ctx)
		}
	}
}
