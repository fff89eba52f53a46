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

package services

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"github.com/labstack/echo/v4"

	"github.com/Wisdomcg-ai/wisdom-business-intelligence-sub015/database"
	"github.com/Wisdomcg-ai/wisdom-business-intelligence-sub015/database/models"
	"github.com/Wisdomcg-ai/wisdom-business-intelligence-sub015/shared"
	"github.com/Wisdomcg-ai/wisdom-business-intelligence-sub015/transformer"
	"github.com/Wisdomcg-ai/wisdom-business-intelligence-sub015/utils"
)

type BusinessService struct {
	businessRepository        shared.BusinessRepository
	businessProfileRepository shared.BusinessProfileRepository
	invitationRepository      shared.InvitationRepository
	rbacProvider              shared.RBACProvider
	documentStorage           shared.DocumentStorage
}

func NewBusinessService(businessRepository shared.BusinessRepository, businessProfileRepository shared.BusinessProfileRepository, invitationRepository shared.InvitationRepository, rbacProvider shared.RBACProvider, documentStorage shared.DocumentStorage) *BusinessService {
	return &BusinessService{
		businessRepository:        businessRepository,
		businessProfileRepository: businessProfileRepository,
		invitationRepository:      invitationRepository,
		rbacProvider:              rbacProvider,
		documentStorage:           documentStorage,
	}
}

func (s *BusinessService) CreateBusiness(ctx shared.Context, business *models.Business, asCoach bool) error {
	business.Name = strings.TrimSpace(business.Name)
	if business.Name == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "name is required")
	}
	business.Slug = slug.Make(business.Name)
	if business.Slug == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "name must contain at least one letter or digit")
	}
	if business.Currency == "" {
		business.Currency = transformer.DefaultCurrency
	}
	business.Currency = strings.ToUpper(business.Currency)
	if business.FiscalYearStartMonth == 0 {
		business.FiscalYearStartMonth = transformer.DefaultFiscalYearStartMonth
	}

	role := shared.RoleOwner
	if asCoach {
		role = shared.RoleCoach
	}
	userID := shared.GetSession(ctx).GetUserID()

	var rbac shared.AccessControl
	// a failed bootstrap rolls the business back
	err := s.businessRepository.Transaction(func(tx shared.DB) error {
		if err := s.businessRepository.Create(tx, business); err != nil {
			return err
		}
		if err := s.businessProfileRepository.Create(tx, &models.BusinessProfile{BusinessID: business.ID}); err != nil {
			return err
		}
		rbac = s.rbacProvider.GetDomainRBAC(business.ID.String())
		if err := shared.BootstrapBusiness(rbac, userID, role); err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, "could not bootstrap business roles").WithInternal(err)
		}
		return nil
	})
	if err != nil {
		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) {
			return httpErr
		}
		if database.IsDuplicateKeyError(err) {
			return echo.NewHTTPError(http.StatusConflict, "business with that name already exists").WithInternal(err)
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "could not create business").WithInternal(err)
	}

	shared.SetRBAC(ctx, rbac)
	shared.SetRole(ctx, role)
	return nil
}

// ListBusinessesOfUser returns every business the user holds a role in.
func (s *BusinessService) ListBusinessesOfUser(userID string) ([]models.Business, error) {
	domains, err := s.rbacProvider.DomainsOfUser(userID)
	if err != nil {
		return nil, err
	}

	ids := make([]uuid.UUID, 0, len(domains))
	for _, domain := range domains {
		id, err := uuid.Parse(domain)
		if err != nil {
			slog.Warn("ignoring invalid domain", "domain", domain, "user", userID)
			continue
		}
		ids = append(ids, id)
	}
	return s.businessRepository.List(ids)
}

func (s *BusinessService) Invite(business models.Business, inviterID string, email string, role shared.Role) (models.Invitation, error) {
	if role == "" {
		role = shared.RoleMember
	}
	if role == shared.RoleOwner {
		return models.Invitation{}, echo.NewHTTPError(http.StatusBadRequest, "owners cannot be invited")
	}

	invitation := models.Invitation{
		BusinessID: business.ID,
		Email:      utils.TrimAndLower(email),
		Role:       string(role),
		Code:       uuid.NewString(),
		InvitedBy:  inviterID,
	}
	if err := s.invitationRepository.Create(nil, &invitation); err != nil {
		return models.Invitation{}, echo.NewHTTPError(http.StatusInternalServerError, "could not create invitation").WithInternal(err)
	}
	invitation.Business = business
	return invitation, nil
}

// AcceptInvitation grants the role of the invitation and consumes it.
// Existing members keep their role.
func (s *BusinessService) AcceptInvitation(ctx context.Context, userID string, email string, code string) (models.Business, error) {
	invitation, err := s.invitationRepository.FindByCode(code)
	if err != nil {
		return models.Business{}, echo.NewHTTPError(http.StatusNotFound, "could not find invitation").WithInternal(err)
	}

	if !strings.EqualFold(invitation.Email, strings.TrimSpace(email)) {
		return models.Business{}, echo.NewHTTPError(http.StatusForbidden, "the invitation was issued for a different email address")
	}

	rbac := s.rbacProvider.GetDomainRBAC(invitation.BusinessID.String())
	isMember, err := rbac.HasAccess(userID)
	if err != nil {
		return models.Business{}, echo.NewHTTPError(http.StatusInternalServerError, "could not check membership").WithInternal(err)
	}
	if isMember {
		return models.Business{}, echo.NewHTTPError(http.StatusConflict, "you are already a member of this business")
	}

	if err := rbac.GrantRole(userID, shared.Role(invitation.Role)); err != nil {
		return models.Business{}, echo.NewHTTPError(http.StatusInternalServerError, "could not grant role").WithInternal(err)
	}

	if err := s.invitationRepository.Delete(nil, invitation.ID); err != nil {
		slog.ErrorContext(ctx, "could not delete accepted invitation", "invitation", invitation.ID, "err", err)
	}

	return invitation.Business, nil
}

// DeleteBusiness removes the rows, the policies and the stored documents of a business.
func (s *BusinessService) DeleteBusiness(business models.Business) error {
	if err := s.businessRepository.Delete(nil, business.ID); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "could not delete business").WithInternal(err)
	}

	if err := s.rbacProvider.GetDomainRBAC(business.ID.String()).RemoveDomain(); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "could not remove business policies").WithInternal(err)
	}

	if err := s.documentStorage.RemoveAll(business.ID); err != nil {
		slog.Error("could not remove documents of deleted business", "business", business.ID, "err", err)
	}
	return nil
}

