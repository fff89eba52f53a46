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
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Wisdomcg-ai/wisdom-business-intelligence-sub015/database"
	"github.com/Wisdomcg-ai/wisdom-business-intelligence-sub015/database/models"
	"github.com/Wisdomcg-ai/wisdom-business-intelligence-sub015/dtos"
	"github.com/Wisdomcg-ai/wisdom-business-intelligence-sub015/shared"
	"github.com/Wisdomcg-ai/wisdom-business-intelligence-sub015/transformer"
	"github.com/Wisdomcg-ai/wisdom-business-intelligence-sub015/utils"
)

type BusinessController struct {
	businessRepository        shared.BusinessRepository
	businessProfileRepository shared.BusinessProfileRepository
	invitationRepository      shared.InvitationRepository
	businessService           shared.BusinessService
}

func NewBusinessController(businessRepository shared.BusinessRepository, businessProfileRepository shared.BusinessProfileRepository, invitationRepository shared.InvitationRepository, businessService shared.BusinessService) *BusinessController {
	return &BusinessController{
		businessRepository:        businessRepository,
		businessProfileRepository: businessProfileRepository,
		invitationRepository:      invitationRepository,
		businessService:           businessService,
	}
}

func (c *BusinessController) List(ctx shared.Context) error {
	businesses, err := c.businessService.ListBusinessesOfUser(currentUserID(ctx))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "could not list businesses").WithInternal(err)
	}
	return ctx.JSON(http.StatusOK, utils.Map(businesses, transformer.BusinessDTOFromModel))
}

func (c *BusinessController) Create(ctx shared.Context) error {
	var req dtos.BusinessCreateRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	business := transformer.BusinessCreateRequestToModel(req)
	if err := c.businessService.CreateBusiness(ctx, &business, req.AsCoach); err != nil {
		return err
	}

	return ctx.JSON(http.StatusCreated, dtos.BusinessDetailsDTO{
		BusinessDTO: transformer.BusinessDTOFromModel(business),
		Role:        string(shared.GetRole(ctx)),
		Members:     []dtos.MemberDTO{},
	})
}

func (c *BusinessController) Read(ctx shared.Context) error {
	business := shared.GetBusiness(ctx)
	members, err := shared.FetchMembersOfBusiness(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "could not get members of business").WithInternal(err)
	}

	return ctx.JSON(http.StatusOK, dtos.BusinessDetailsDTO{
		BusinessDTO: transformer.BusinessDTOFromModel(business),
		Role:        string(shared.GetRole(ctx)),
		Members:     members,
	})
}

func (c *BusinessController) Update(ctx shared.Context) error {
	business := shared.GetBusiness(ctx)

	var req dtos.BusinessPatchRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	if transformer.ApplyBusinessPatchRequestToModel(req, &business) {
		if business.Name == "" {
			return echo.NewHTTPError(http.StatusBadRequest, "businesses with an empty name are not allowed")
		}
		if err := c.businessRepository.Update(nil, &business); err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, "could not update business").WithInternal(err)
		}
	}

	return ctx.JSON(http.StatusOK, transformer.BusinessDTOFromModel(business))
}

func (c *BusinessController) Delete(ctx shared.Context) error {
	if err := c.businessService.DeleteBusiness(shared.GetBusiness(ctx)); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (c *BusinessController) readProfile(business models.Business) (models.BusinessProfile, error) {
	profile, err := c.businessProfileRepository.ReadByBusinessID(business.ID)
	if err != nil {
		if database.IsNotFound(err) {
			// businesses created before profiles existed
			return models.BusinessProfile{BusinessID: business.ID}, nil
		}
		return models.BusinessProfile{}, echo.NewHTTPError(http.StatusInternalServerError, "could not read profile").WithInternal(err)
	}
	return profile, nil
}

func (c *BusinessController) ReadProfile(ctx shared.Context) error {
	profile, err := c.readProfile(shared.GetBusiness(ctx))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, profile)
}

func (c *BusinessController) UpdateProfile(ctx shared.Context) error {
	var req dtos.BusinessProfileRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	profile, err := c.readProfile(shared.GetBusiness(ctx))
	if err != nil {
		return err
	}
	transformer.ApplyBusinessProfileRequestToModel(req, &profile)

	if err := c.businessProfileRepository.Save(nil, &profile); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "could not save profile").WithInternal(err)
	}
	return ctx.JSON(http.StatusOK, profile)
}
