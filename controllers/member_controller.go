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

	"github.com/Wisdomcg-ai/wisdom-business-intelligence-sub015/dtos"
	"github.com/Wisdomcg-ai/wisdom-business-intelligence-sub015/shared"
	"github.com/Wisdomcg-ai/wisdom-business-intelligence-sub015/transformer"
)

type MemberController struct {
	invitationRepository shared.InvitationRepository
	businessService      shared.BusinessService
}

func NewMemberController(invitationRepository shared.InvitationRepository, businessService shared.BusinessService) *MemberController {
	return &MemberController{
		invitationRepository: invitationRepository,
		businessService:      businessService,
	}
}

func (c *MemberController) List(ctx shared.Context) error {
	members, err := shared.FetchMembersOfBusiness(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "could not get members of business").WithInternal(err)
	}
	return ctx.JSON(http.StatusOK, members)
}

func (c *MemberController) Invite(ctx shared.Context) error {
	var req dtos.InviteRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	invitation, err := c.businessService.Invite(shared.GetBusiness(ctx), currentUserID(ctx), req.Email, shared.Role(req.Role))
	if err != nil {
		return err
	}

	// the code is not serialized with the model, the inviter forwards it
	return ctx.JSON(http.StatusCreated, map[string]any{
		"invitation": invitation,
		"code":       invitation.Code,
	})
}

func (c *MemberController) ListInvitations(ctx shared.Context) error {
	invitations, err := c.invitationRepository.ListByBusinessID(shared.GetBusiness(ctx).ID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "could not list invitations").WithInternal(err)
	}
	return ctx.JSON(http.StatusOK, invitations)
}

func (c *MemberController) AcceptInvitation(ctx shared.Context) error {
	var req dtos.AcceptInvitationRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	userID := currentUserID(ctx)
	identity, err := shared.GetAuthAdminClient(ctx).GetIdentity(ctx.Request().Context(), userID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "could not get user").WithInternal(err)
	}
	_, email := shared.IdentityNameAndEmail(identity)

	business, err := c.businessService.AcceptInvitation(ctx.Request().Context(), userID, email, req.Code)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, transformer.BusinessDTOFromModel(business))
}

func (c *MemberController) ChangeRole(ctx shared.Context) error {
	userID := ctx.Param("userID")
	if userID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "userID is required")
	}
	if userID == currentUserID(ctx) {
		return echo.NewHTTPError(http.StatusBadRequest, "you cannot change your own role")
	}

	var req dtos.ChangeRoleRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	rbac := shared.GetRBAC(ctx)
	isMember, err := rbac.HasAccess(userID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "could not check membership").WithInternal(err)
	}
	if !isMember {
		return echo.NewHTTPError(http.StatusNotFound, "could not find member")
	}

	if err := rbac.GrantRole(userID, shared.Role(req.Role)); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "could not grant role").WithInternal(err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (c *MemberController) Remove(ctx shared.Context) error {
	userID := ctx.Param("userID")
	if userID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "userID is required")
	}
	if userID == currentUserID(ctx) {
		return echo.NewHTTPError(http.StatusBadRequest, "you cannot remove yourself")
	}

	if err := shared.GetRBAC(ctx).RevokeAllRoles(userID); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "could not remove member").WithInternal(err)
	}
	return ctx.NoContent(http.StatusNoContent)
}
