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

package shared

import (
	"fmt"
	"strconv"

	"github.com/google/uuid"

	"github.com/Wisdomcg-ai/wisdom-business-intelligence-sub015/database/models"
)

func SetAuthAdminClient(ctx Context, i AdminClient) {
	ctx.Set("authAdminClient", i)
}

func GetAuthAdminClient(ctx Context) AdminClient {
	return ctx.Get("authAdminClient").(AdminClient)
}

func SetRBAC(ctx Context, rbac AccessControl) {
	ctx.Set("rbac", rbac)
}

func GetRBAC(ctx Context) AccessControl {
	return ctx.Get("rbac").(AccessControl)
}

func GetSession(ctx Context) AuthSession {
	return ctx.Get("session").(AuthSession)
}

func SetSession(ctx Context, session AuthSession) {
	ctx.Set("session", session)
}

func HasSession(ctx Context) bool {
	_, ok := ctx.Get("session").(AuthSession)
	return ok
}

func SetBusiness(ctx Context, business models.Business) {
	ctx.Set("business", business)
}

func GetBusiness(ctx Context) models.Business {
	return ctx.Get("business").(models.Business)
}

func SetRole(ctx Context, role Role) {
	ctx.Set("role", role)
}

func GetRole(ctx Context) Role {
	role, ok := ctx.Get("role").(Role)
	if !ok {
		return RoleUnknown
	}
	return role
}

func SetForecast(ctx Context, forecast models.Forecast) {
	ctx.Set("forecast", forecast)
}

func GetForecast(ctx Context) models.Forecast {
	return ctx.Get("forecast").(models.Forecast)
}

func GetParam(ctx Context, param string) string {
	v := ctx.Param(param)
	if v == "" {
		fallback := ctx.Get(param)
		if fallback == nil {
			return ""
		}
		return fallback.(string)
	}
	return v
}

func GetBusinessSlug(ctx Context) (string, error) {
	businessSlug := GetParam(ctx, "businessSlug")
	if businessSlug == "" {
		return "", fmt.Errorf("could not get business slug")
	}
	return businessSlug, nil
}

// GetUUIDParam reads a path parameter and parses it as uuid.
func GetUUIDParam(ctx Context, param string) (uuid.UUID, error) {
	v := GetParam(ctx, param)
	if v == "" {
		return uuid.Nil, fmt.Errorf("missing parameter %s", param)
	}
	id, err := uuid.Parse(v)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid parameter %s: %w", param, err)
	}
	return id, nil
}

type PageInfo struct {
	PageSize int `json:"pageSize"`
	Page     int `json:"page"`
}

func (p PageInfo) ApplyOnDB(db DB) DB {
	return db.Offset((p.Page - 1) * p.PageSize).Limit(p.PageSize)
}

type Paged[T any] struct {
	PageInfo
	Total int64 `json:"total"`
	Data  []T   `json:"data"`
}

func (p Paged[T]) Map(f func(T) any) Paged[any] {
	data := make([]any, len(p.Data))
	for i, d := range p.Data {
		data[i] = f(d)
	}
	return Paged[any]{
		PageInfo: p.PageInfo,
		Total:    p.Total,
		Data:     data,
	}
}

func NewPaged[T any](pageInfo PageInfo, total int64, data []T) Paged[T] {
	return Paged[T]{
		PageInfo: pageInfo,
		Total:    total,
		Data:     data,
	}
}

func GetPageInfo(ctx Context) PageInfo {
	page, _ := strconv.Atoi(ctx.QueryParam("page"))
	if page <= 0 {
		page = 1
	}

	pageSize, _ := strconv.Atoi(ctx.QueryParam("pageSize"))
	switch {
	case pageSize > 100:
		pageSize = 100
	case pageSize <= 0:
		pageSize = 10
	}

	return PageInfo{
		Page:     page,
		PageSize: pageSize,
	}
}

// LimitOffset is the plain ?limit=&offset= pagination used by feeds like messages and notifications.
type LimitOffset struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}

func (l LimitOffset) ApplyOnDB(db DB) DB {
	return db.Offset(l.Offset).Limit(l.Limit)
}

func GetLimitOffset(ctx Context, defaultLimit, maxLimit int) LimitOffset {
	limit, err := strconv.Atoi(ctx.QueryParam("limit"))
	if err != nil || limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	offset, err := strconv.Atoi(ctx.QueryParam("offset"))
	if err != nil || offset < 0 {
		offset = 0
	}

	return LimitOffset{Limit: limit, Offset: offset}
}
