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
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.opentelemetry.io/contrib/instrumentation/github.com/labstack/echo/otelecho"

	"github.com/Wisdomcg-ai/wisdom-business-intelligence-sub015/config"
	"github.com/Wisdomcg-ai/wisdom-business-intelligence-sub015/database"
)

func registerMiddlewares(e *echo.Echo, cfg config.Config) {
	e.Pre(middleware.AddTrailingSlash())
	e.Use(otelecho.Middleware(cfg.OTel.ServiceName, otelecho.WithSkipper(isHealthCheck)))
	e.Use(middleware.CORSWithConfig(
		middleware.CORSConfig{
			AllowOrigins:     cfg.CORSAllowedOrigins,
			AllowHeaders:     append(middleware.DefaultCORSConfig.AllowHeaders, "X-Admin-Token"),
			AllowMethods:     middleware.DefaultCORSConfig.AllowMethods,
			AllowCredentials: true,
		},
	))

	e.Use(logger())
	e.Use(recovermiddleware())
	e.Use(RateLimit(cfg.RateLimit))

	e.HTTPErrorHandler = errorHandler(e)
}

// toHTTPError maps errors which escaped a handler without being converted.
func toHTTPError(err error) *echo.HTTPError {
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he
	}

	switch {
	case database.IsNotFound(err):
		return echo.NewHTTPError(http.StatusNotFound, "not found").WithInternal(err)
	case database.IsDuplicateKeyError(err):
		return echo.NewHTTPError(http.StatusConflict, "already exists").WithInternal(err)
	}
	return echo.NewHTTPError(http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError)).WithInternal(err)
}

func errorHandler(e *echo.Echo) echo.HTTPErrorHandler {
	return func(err error, ctx echo.Context) {
		he := toHTTPError(err)

		// do the logging straight inside the error handler
		// this keeps controller methods clean
		attrs := []any{"method", ctx.Request().Method, "path", ctx.Request().URL, "status", he.Code}
		if he.Internal != nil {
			attrs = append(attrs, "err", he.Internal)
		}
		if he.Code >= http.StatusInternalServerError {
			slog.Error(err.Error(), attrs...)
		} else {
			slog.Warn(err.Error(), attrs...)
		}

		if ctx.Response().Committed {
			return
		}

		var message any
		switch m := he.Message.(type) {
		case string:
			if e.Debug && he.Internal != nil {
				message = echo.Map{"message": m, "error": he.Internal.Error()}
			} else {
				message = echo.Map{"message": m}
			}
		case error:
			message = echo.Map{"message": m.Error()}
		default:
			message = echo.Map{"message": m}
		}

		if ctx.Request().Method == http.MethodHead {
			err = ctx.NoContent(he.Code)
		} else {
			err = ctx.JSON(he.Code, message)
		}
		if err != nil {
			slog.Error("could not send error response", "error", err)
		}
	}
}

func Server(cfg config.Config) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = cfg.IsProduction()
	e.Debug = !cfg.IsProduction()
	e.Logger.SetLevel(99)
	registerMiddlewares(e, cfg)
	return e
}
