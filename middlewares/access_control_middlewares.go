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
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Wisdomcg-ai/wisdom-business-intelligence-sub015/shared"
)

// BusinessMiddleware resolves the business of the url and checks that the caller is a member.
// Non members get a 404 so the existence of a business is not leaked.
func BusinessMiddleware(rbacProvider shared.RBACProvider, businessRepository shared.BusinessRepository) shared.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx shared.Context) error {
			businessSlug, err := shared.GetBusinessSlug(ctx)
			if err != nil {
				return echo.NewHTTPError(http.StatusBadRequest, "invalid business").WithInternal(err)
			}

			business, err := businessRepository.ReadBySlug(businessSlug)
			if err != nil {
				return echo.NewHTTPError(http.StatusNotFound, "could not find business").WithInternal(err)
			}

			domainRBAC := rbacProvider.GetDomainRBAC(business.ID.String())
			userID := shared.GetSession(ctx).GetUserID()

			allowed, err := domainRBAC.HasAccess(userID)
			if err != nil {
				return echo.NewHTTPError(http.StatusInternalServerError, "could not determine if the user has access").WithInternal(err)
			}
			if !allowed {
				slog.Warn("access denied in BusinessMiddleware", "user", userID, "business", businessSlug)
				return echo.NewHTTPError(http.StatusNotFound, "could not find business")
			}

			role, err := domainRBAC.GetDomainRole(userID)
			if err != nil {
				role = shared.RoleUnknown
			}

			shared.SetBusiness(ctx, business)
			shared.SetRBAC(ctx, domainRBAC)
			shared.SetRole(ctx, role)
			return next(ctx)
		}
	}
}

// BusinessAccessControl requires BusinessMiddleware to run first.
func BusinessAccessControl(obj shared.Object, act shared.Action) shared.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx shared.Context) error {
			rbac := shared.GetRBAC(ctx)
			user := shared.GetSession(ctx).GetUserID()

			allowed, err := rbac.IsAllowed(user, obj, act)
			if err != nil {
				return echo.NewHTTPError(http.StatusInternalServerError, "could not determine if the user has access").WithInternal(err)
			}
			if !allowed {
				slog.Warn("access denied in BusinessAccessControl", "user", user, "object", obj, "action", act)
				return echo.NewHTTPError(http.StatusForbidden, "insufficient permissions")
			}
			return next(ctx)
		}
	}
}
