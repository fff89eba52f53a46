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
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/Wisdomcg-ai/wisdom-business-intelligence-sub015/database/models"
	"github.com/Wisdomcg-ai/wisdom-business-intelligence-sub015/dtos"
	"github.com/Wisdomcg-ai/wisdom-business-intelligence-sub015/shared"
	"github.com/Wisdomcg-ai/wisdom-business-intelligence-sub015/utils"
)

type DocumentController struct {
	documentRepository shared.DocumentRepository
	documentService    shared.DocumentService
}

func NewDocumentController(documentRepository shared.DocumentRepository, documentService shared.DocumentService) *DocumentController {
	return &DocumentController{
		documentRepository: documentRepository,
		documentService:    documentService,
	}
}

// visibleTo reports whether the document may be seen with the given role.
// Members only see shared documents and their own uploads.
func visibleTo(document models.Document, userID string, role shared.Role) bool {
	if role == shared.RoleOwner || role == shared.RoleCoach {
		return true
	}
	return document.Shared || document.UploadedBy == userID
}

func (c *DocumentController) readDocument(ctx shared.Context) (models.Document, error) {
	documentID, err := uuidParam(ctx, "documentID")
	if err != nil {
		return models.Document{}, err
	}
	document, err := c.documentRepository.Read(documentID)
	if err != nil || document.BusinessID != shared.GetBusiness(ctx).ID || !visibleTo(document, currentUserID(ctx), shared.GetRole(ctx)) {
		return models.Document{}, echo.NewHTTPError(http.StatusNotFound, "could not find document")
	}
	return document, nil
}

func (c *DocumentController) List(ctx shared.Context) error {
	var folder *string
	if ctx.QueryParams().Has("folder") {
		f := ctx.QueryParam("folder")
		folder = &f
	}

	documents, err := c.documentRepository.ListByBusinessID(shared.GetBusiness(ctx).ID, folder)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "could not list documents").WithInternal(err)
	}

	userID := currentUserID(ctx)
	role := shared.GetRole(ctx)
	return ctx.JSON(http.StatusOK, utils.Filter(documents, func(d models.Document) bool {
		return visibleTo(d, userID, role)
	}))
}

func (c *DocumentController) Upload(ctx shared.Context) error {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "missing file").WithInternal(err)
	}

	f, err := fileHeader.Open()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "could not open file").WithInternal(err)
	}
	defer f.Close()

	name := ctx.FormValue("name")
	if name == "" {
		name = fileHeader.Filename
	}
	sharedWithMembers, _ := strconv.ParseBool(ctx.FormValue("shared"))
	contentType := fileHeader.Header.Get(echo.HeaderContentType)
	if contentType == "" {
		contentType = echo.MIMEOctetStream
	}

	document, err := c.documentService.Upload(currentUserID(ctx), shared.GetBusiness(ctx).ID, shared.DocumentUpload{
		Name:        name,
		Folder:      ctx.FormValue("folder"),
		ContentType: contentType,
		Shared:      sharedWithMembers,
		Content:     f,
	})
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, document)
}

func (c *DocumentController) Read(ctx shared.Context) error {
	document, err := c.readDocument(ctx)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, document)
}

func (c *DocumentController) Download(ctx shared.Context) error {
	document, err := c.readDocument(ctx)
	if err != nil {
		return err
	}

	rc, err := c.documentService.Open(document)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "could not open document").WithInternal(err)
	}
	defer rc.Close()

	ctx.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", document.Name))
	ctx.Response().Header().Set(echo.HeaderContentLength, strconv.FormatInt(document.Size, 10))
	return ctx.Stream(http.StatusOK, document.ContentType, rc)
}

func (c *DocumentController) Update(ctx shared.Context) error {
	document, err := c.readDocument(ctx)
	if err != nil {
		return err
	}

	var req dtos.DocumentPatchRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	if err := c.documentService.Update(currentUserID(ctx), &document, req); err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, document)
}

func (c *DocumentController) Delete(ctx shared.Context) error {
	document, err := c.readDocument(ctx)
	if err != nil {
		return err
	}
	if err := c.documentService.Delete(document); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "could not delete document").WithInternal(err)
	}
	return ctx.NoContent(http.StatusNoContent)
}
