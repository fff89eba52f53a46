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
	"bytes"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strconv"

	"github.com/gosimple/slug"
	"github.com/labstack/echo/v4"

	"github.com/Wisdomcg-ai/wisdom-business-intelligence-sub015/database/models"
	"github.com/Wisdomcg-ai/wisdom-business-intelligence-sub015/dtos"
	"github.com/Wisdomcg-ai/wisdom-business-intelligence-sub015/shared"
	"github.com/Wisdomcg-ai/wisdom-business-intelligence-sub015/transformer"
	"github.com/Wisdomcg-ai/wisdom-business-intelligence-sub015/utils"
)

// maxImportSize limits csv uploads, a forecast has a few hundred lines at most.
const maxImportSize = 5 << 20

type ForecastController struct {
	forecastRepository         shared.ForecastRepository
	plLineRepository           shared.PLLineRepository
	forecastAuditLogRepository shared.ForecastAuditLogRepository
	forecastService            shared.ForecastService
}

func NewForecastController(forecastRepository shared.ForecastRepository, plLineRepository shared.PLLineRepository, forecastAuditLogRepository shared.ForecastAuditLogRepository, forecastService shared.ForecastService) *ForecastController {
	return &ForecastController{
		forecastRepository:         forecastRepository,
		plLineRepository:           plLineRepository,
		forecastAuditLogRepository: forecastAuditLogRepository,
		forecastService:            forecastService,
	}
}

func (c *ForecastController) List(ctx shared.Context) error {
	forecasts, err := c.forecastRepository.ListByBusinessID(shared.GetBusiness(ctx).ID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "could not list forecasts").WithInternal(err)
	}
	return ctx.JSON(http.StatusOK, utils.Map(forecasts, transformer.ForecastDTOFromModel))
}

func (c *ForecastController) Create(ctx shared.Context) error {
	var req dtos.ForecastCreateRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	userID := currentUserID(ctx)
	forecast := transformer.ForecastCreateRequestToModel(req, shared.GetBusiness(ctx), userID)
	if forecast.Name == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "name is required")
	}
	if err := c.forecastService.Create(userID, &forecast); err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, transformer.ForecastDTOFromModel(forecast))
}

func (c *ForecastController) Read(ctx shared.Context) error {
	forecast, err := c.forecastRepository.ReadWithLines(shared.GetForecast(ctx).ID)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "could not find forecast").WithInternal(err)
	}
	return ctx.JSON(http.StatusOK, transformer.ForecastDTOFromModel(forecast))
}

func (c *ForecastController) Update(ctx shared.Context) error {
	var req dtos.ForecastPatchRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	before := shared.GetForecast(ctx)
	forecast := before
	if transformer.ApplyForecastPatchRequestToModel(req, &forecast) {
		if forecast.Name == "" {
			return echo.NewHTTPError(http.StatusBadRequest, "name is required")
		}
		if err := c.forecastService.Update(currentUserID(ctx), before, &forecast); err != nil {
			return err
		}
	}
	return ctx.JSON(http.StatusOK, transformer.ForecastDTOFromModel(forecast))
}

func (c *ForecastController) Delete(ctx shared.Context) error {
	if err := c.forecastService.Delete(currentUserID(ctx), shared.GetForecast(ctx)); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "could not delete forecast").WithInternal(err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (c *ForecastController) Summary(ctx shared.Context) error {
	summary, err := c.forecastService.Summary(shared.GetForecast(ctx))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, summary)
}

// csvBody returns the uploaded csv, either the multipart field "file" or the raw body.
func csvBody(ctx shared.Context) (io.Reader, func(), error) {
	noop := func() {}
	mediaType, _, _ := mime.ParseMediaType(ctx.Request().Header.Get(echo.HeaderContentType))

	if mediaType == echo.MIMEMultipartForm {
		fileHeader, err := ctx.FormFile("file")
		if err != nil {
			return nil, noop, echo.NewHTTPError(http.StatusBadRequest, "missing file").WithInternal(err)
		}
		if fileHeader.Size > maxImportSize {
			return nil, noop, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("the file exceeds the maximum size of %d bytes", maxImportSize))
		}
		f, err := fileHeader.Open()
		if err != nil {
			return nil, noop, echo.NewHTTPError(http.StatusBadRequest, "could not open file").WithInternal(err)
		}
		return f, func() { f.Close() }, nil
	}

	body, err := io.ReadAll(io.LimitReader(ctx.Request().Body, maxImportSize+1))
	if err != nil {
		return nil, noop, echo.NewHTTPError(http.StatusBadRequest, "could not read body").WithInternal(err)
	}
	if len(body) > maxImportSize {
		return nil, noop, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("the file exceeds the maximum size of %d bytes", maxImportSize))
	}
	return bytes.NewReader(body), noop, nil
}

func (c *ForecastController) Import(ctx shared.Context) error {
	replace, _ := strconv.ParseBool(ctx.QueryParam("replace"))

	r, closeFn, err := csvBody(ctx)
	if err != nil {
		return err
	}
	defer closeFn()

	result, err := c.forecastService.ImportCSV(currentUserID(ctx), shared.GetForecast(ctx), r, replace)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, result)
}

func (c *ForecastController) Export(ctx shared.Context) error {
	forecast := shared.GetForecast(ctx)

	var buf bytes.Buffer
	if err := c.forecastService.ExportCSV(forecast, &buf); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "could not export forecast").WithInternal(err)
	}

	filename := slug.Make(fmt.Sprintf("%s-fy%d", forecast.Name, forecast.FiscalYear)) + ".csv"
	ctx.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return ctx.Blob(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

func (c *ForecastController) AuditLogs(ctx shared.Context) error {
	paged, err := c.forecastAuditLogRepository.ListByForecastIDPaged(shared.GetForecast(ctx).ID, ctx.QueryParam("entityType"), shared.GetPageInfo(ctx))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "could not list audit logs").WithInternal(err)
	}
	return ctx.JSON(http.StatusOK, paged)
}

func (c *ForecastController) readLine(ctx shared.Context) (models.PLLine, error) {
	lineID, err := uuidParam(ctx, "lineID")
	if err != nil {
		return models.PLLine{}, err
	}
	line, err := c.plLineRepository.Read(lineID)
	if err != nil || line.ForecastID != shared.GetForecast(ctx).ID {
		return models.PLLine{}, echo.NewHTTPError(http.StatusNotFound, "could not find line")
	}
	return line, nil
}

func (c *ForecastController) ListLines(ctx shared.Context) error {
	lines, err := c.plLineRepository.ListByForecastID(nil, shared.GetForecast(ctx).ID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "could not list lines").WithInternal(err)
	}
	return ctx.JSON(http.StatusOK, utils.Map(lines, transformer.PLLineDTOFromModel))
}

func (c *ForecastController) CreateLine(ctx shared.Context) error {
	var req dtos.PLLineCreateRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	forecast := shared.GetForecast(ctx)
	line := transformer.PLLineCreateRequestToModel(req, forecast.ID)
	if line.Name == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "name is required")
	}
	if err := c.forecastService.CreateLine(currentUserID(ctx), forecast, &line); err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, transformer.PLLineDTOFromModel(line))
}

func (c *ForecastController) UpdateLine(ctx shared.Context) error {
	before, err := c.readLine(ctx)
	if err != nil {
		return err
	}

	var req dtos.PLLinePatchRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	line := before
	if transformer.ApplyPLLinePatchRequestToModel(req, &line) {
		if line.Name == "" {
			return echo.NewHTTPError(http.StatusBadRequest, "name is required")
		}
		if err := c.forecastService.UpdateLine(currentUserID(ctx), shared.GetForecast(ctx), before, &line); err != nil {
			return err
		}
	}
	return ctx.JSON(http.StatusOK, transformer.PLLineDTOFromModel(line))
}

func (c *ForecastController) DeleteLine(ctx shared.Context) error {
	line, err := c.readLine(ctx)
	if err != nil {
		return err
	}
	if err := c.forecastService.DeleteLine(currentUserID(ctx), shared.GetForecast(ctx), line); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}
