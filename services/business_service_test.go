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
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"github.com/Wisdomcg-ai/wisdom-business-intelligence-sub015/database/models"
	"github.com/Wisdomcg-ai/wisdom-business-intelligence-sub015/mocks"
	"github.com/Wisdomcg-ai/wisdom-business-intelligence-sub015/shared"
)

func newSessionContext(t *testing.T, userID string) shared.Context {
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	ctx := echo.New().NewContext(req, httptest.NewRecorder())
	session := mocks.NewAuthSession(t)
	session.On("GetUserID").Return(userID).Maybe()
	shared.SetSession(ctx, session)
	return ctx
}

func permissiveBootstrap(t *testing.T, userID string, role shared.Role) *mocks.AccessControl {
	rbac := mocks.NewAccessControl(t)
	rbac.On("GrantRole", userID, role).Return(nil)
	rbac.On("InheritRole", mock.Anything, mock.Anything).Return(nil)
	rbac.On("AllowRole", mock.Anything, mock.Anything, mock.Anything).Return(nil)
	return rbac
}

func TestCreateBusiness(t *testing.T) {
	t.Run("should create the business with defaults and make the creator owner", func(t *testing.T) {
		businessRepository := mocks.NewBusinessRepository(t)
		profileRepository := mocks.NewBusinessProfileRepository(t)
		rbacProvider := mocks.NewRBACProvider(t)

		id := uuid.New()
		businessRepository.On("Transaction", mock.Anything).Return(runTransaction)
		businessRepository.On("Create", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
			args.Get(1).(*models.Business).ID = id
		}).Return(nil)
		profileRepository.On("Create", mock.Anything, mock.MatchedBy(func(p *models.BusinessProfile) bool {
			return p.BusinessID == id
		})).Return(nil)

		rbac := permissiveBootstrap(t, "user", shared.RoleOwner)
		rbacProvider.On("GetDomainRBAC", id.String()).Return(rbac)

		ctx := newSessionContext(t, "user")
		business := models.Business{Name: "  Acme Plumbing & Sons ", Currency: "nzd"}

		s := NewBusinessService(businessRepository, profileRepository, mocks.NewInvitationRepository(t), rbacProvider, mocks.NewDocumentStorage(t))
		err := s.CreateBusiness(ctx, &business, false)
		assert.Nil(t, err)
		assert.Equal(t, "Acme Plumbing & Sons", business.Name)
		assert.Equal(t, "acme-plumbing-and-sons", business.Slug)
		assert.Equal(t, "NZD", business.Currency)
		assert.Equal(t, 7, business.FiscalYearStartMonth)
		assert.Equal(t, shared.RoleOwner, shared.GetRole(ctx))
	})

	t.Run("should make a coach coach", func(t *testing.T) {
		businessRepository := mocks.NewBusinessRepository(t)
		profileRepository := mocks.NewBusinessProfileRepository(t)
		rbacProvider := mocks.NewRBACProvider(t)

		businessRepository.On("Transaction", mock.Anything).Return(runTransaction)
		businessRepository.On("Create", mock.Anything, mock.Anything).Return(nil)
		profileRepository.On("Create", mock.Anything, mock.Anything).Return(nil)
		rbacProvider.On("GetDomainRBAC", mock.Anything).Return(permissiveBootstrap(t, "coach", shared.RoleCoach))

		ctx := newSessionContext(t, "coach")
		business := models.Business{Name: "Client"}

		s := NewBusinessService(businessRepository, profileRepository, mocks.NewInvitationRepository(t), rbacProvider, mocks.NewDocumentStorage(t))
		assert.Nil(t, s.CreateBusiness(ctx, &business, true))
		assert.Equal(t, "AUD", business.Currency)
		assert.Equal(t, shared.RoleCoach, shared.GetRole(ctx))
	})

	t.Run("should reject names without letters", func(t *testing.T) {
		s := NewBusinessService(mocks.NewBusinessRepository(t), mocks.NewBusinessProfileRepository(t), mocks.NewInvitationRepository(t), mocks.NewRBACProvider(t), mocks.NewDocumentStorage(t))
		err := s.CreateBusiness(newSessionContext(t, "user"), &models.Business{Name: "   "}, false)
		assert.Equal(t, http.StatusBadRequest, statusOf(t, err))
	})

	t.Run("should roll the business back if the roles cannot be written", func(t *testing.T) {
		businessRepository := mocks.NewBusinessRepository(t)
		profileRepository := mocks.NewBusinessProfileRepository(t)
		rbacProvider := mocks.NewRBACProvider(t)

		var txErr error
		businessRepository.On("Transaction", mock.Anything).Return(func(f func(tx shared.DB) error) error {
			txErr = f(nil)
			return txErr
		})
		businessRepository.On("Create", mock.Anything, mock.Anything).Return(nil)
		profileRepository.On("Create", mock.Anything, mock.Anything).Return(nil)

		rbac := mocks.NewAccessControl(t)
		rbac.On("GrantRole", "user", shared.RoleOwner).Return(gorm.ErrInvalidDB)
		rbacProvider.On("GetDomainRBAC", mock.Anything).Return(rbac)

		s := NewBusinessService(businessRepository, profileRepository, mocks.NewInvitationRepository(t), rbacProvider, mocks.NewDocumentStorage(t))
		err := s.CreateBusiness(newSessionContext(t, "user"), &models.Business{Name: "Acme"}, false)
		assert.Equal(t, http.StatusInternalServerError, statusOf(t, err))
		assert.NotNil(t, txErr, "the transaction callback has to fail")
	})

	t.Run("should return a conflict on duplicate slugs", func(t *testing.T) {
		businessRepository := mocks.NewBusinessRepository(t)
		businessRepository.On("Transaction", mock.Anything).Return(&pgconn.PgError{Code: "23505"})

		s := NewBusinessService(businessRepository, mocks.NewBusinessProfileRepository(t), mocks.NewInvitationRepository(t), mocks.NewRBACProvider(t), mocks.NewDocumentStorage(t))
		err := s.CreateBusiness(newSessionContext(t, "user"), &models.Business{Name: "Acme"}, false)
		assert.Equal(t, http.StatusConflict, statusOf(t, err))
	})
}

func TestInvite(t *testing.T) {
	business := models.Business{Model: models.Model{ID: uuid.New()}}

	t.Run("should default to member and normalize the email", func(t *testing.T) {
		invitationRepository := mocks.NewInvitationRepository(t)
		invitationRepository.On("Create", mock.Anything, mock.MatchedBy(func(i *models.Invitation) bool {
			return i.Email == "jane@example.com" && i.Role == "member" && i.Code != "" && i.BusinessID == business.ID
		})).Return(nil)

		s := NewBusinessService(mocks.NewBusinessRepository(t), mocks.NewBusinessProfileRepository(t), invitationRepository, mocks.NewRBACProvider(t), mocks.NewDocumentStorage(t))
		invitation, err := s.Invite(business, "owner", " Jane@Example.com ", "")
		assert.Nil(t, err)
		assert.Equal(t, "owner", invitation.InvitedBy)
	})

	t.Run("should not invite owners", func(t *testing.T) {
		s := NewBusinessService(mocks.NewBusinessRepository(t), mocks.NewBusinessProfileRepository(t), mocks.NewInvitationRepository(t), mocks.NewRBACProvider(t), mocks.NewDocumentStorage(t))
		_, err := s.Invite(business, "owner", "jane@example.com", shared.RoleOwner)
		assert.Equal(t, http.StatusBadRequest, statusOf(t, err))
	})
}

func TestAcceptInvitation(t *testing.T) {
	ctx := context.Background()
	business := models.Business{Model: models.Model{ID: uuid.New()}, Name: "Acme"}
	invitation := models.Invitation{
		Model:      models.Model{ID: uuid.New()},
		BusinessID: business.ID,
		Business:   business,
		Email:      "jane@example.com",
		Role:       "coach",
		Code:       "code",
	}

	t.Run("should grant the role and consume the invitation", func(t *testing.T) {
		invitationRepository := mocks.NewInvitationRepository(t)
		rbacProvider := mocks.NewRBACProvider(t)
		rbac := mocks.NewAccessControl(t)

		invitationRepository.On("FindByCode", "code").Return(invitation, nil)
		invitationRepository.On("Delete", mock.Anything, invitation.ID).Return(nil)
		rbacProvider.On("GetDomainRBAC", business.ID.String()).Return(rbac)
		rbac.On("HasAccess", "jane").Return(false, nil)
		rbac.On("GrantRole", "jane", shared.RoleCoach).Return(nil)

		s := NewBusinessService(mocks.NewBusinessRepository(t), mocks.NewBusinessProfileRepository(t), invitationRepository, rbacProvider, mocks.NewDocumentStorage(t))
		joined, err := s.AcceptInvitation(ctx, "jane", "JANE@example.com", "code")
		assert.Nil(t, err)
		assert.Equal(t, business.ID, joined.ID)
	})

	t.Run("should reject a different email", func(t *testing.T) {
		invitationRepository := mocks.NewInvitationRepository(t)
		invitationRepository.On("FindByCode", "code").Return(invitation, nil)

		s := NewBusinessService(mocks.NewBusinessRepository(t), mocks.NewBusinessProfileRepository(t), invitationRepository, mocks.NewRBACProvider(t), mocks.NewDocumentStorage(t))
		_, err := s.AcceptInvitation(ctx, "mallory", "mallory@example.com", "code")
		assert.Equal(t, http.StatusForbidden, statusOf(t, err))
	})

	t.Run("should not change the role of existing members", func(t *testing.T) {
		invitationRepository := mocks.NewInvitationRepository(t)
		rbacProvider := mocks.NewRBACProvider(t)
		rbac := mocks.NewAccessControl(t)

		invitationRepository.On("FindByCode", "code").Return(invitation, nil)
		rbacProvider.On("GetDomainRBAC", business.ID.String()).Return(rbac)
		rbac.On("HasAccess", "jane").Return(true, nil)

		s := NewBusinessService(mocks.NewBusinessRepository(t), mocks.NewBusinessProfileRepository(t), invitationRepository, rbacProvider, mocks.NewDocumentStorage(t))
		_, err := s.AcceptInvitation(ctx, "jane", "jane@example.com", "code")
		assert.Equal(t, http.StatusConflict, statusOf(t, err))
		rbac.AssertNotCalled(t, "GrantRole", mock.Anything, mock.Anything)
	})

	t.Run("should return 404 for unknown codes", func(t *testing.T) {
		invitationRepository := mocks.NewInvitationRepository(t)
		invitationRepository.On("FindByCode", "nope").Return(models.Invitation{}, gorm.ErrRecordNotFound)

		s := NewBusinessService(mocks.NewBusinessRepository(t), mocks.NewBusinessProfileRepository(t), invitationRepository, mocks.NewRBACProvider(t), mocks.NewDocumentStorage(t))
		_, err := s.AcceptInvitation(ctx, "jane", "jane@example.com", "nope")
		assert.Equal(t, http.StatusNotFound, statusOf(t, err))
	})
}

func TestDeleteBusiness(t *testing.T) {
	business := models.Business{Model: models.Model{ID: uuid.New()}}

	businessRepository := mocks.NewBusinessRepository(t)
	rbacProvider := mocks.NewRBACProvider(t)
	rbac := mocks.NewAccessControl(t)
	storage := mocks.NewDocumentStorage(t)

	businessRepository.On("Delete", mock.Anything, business.ID).Return(nil)
	rbacProvider.On("GetDomainRBAC", business.ID.String()).Return(rbac)
	rbac.On("RemoveDomain").Return(nil)
	storage.On("RemoveAll", business.ID).Return(nil)

	s := NewBusinessService(businessRepository, mocks.NewBusinessProfileRepository(t), mocks.NewInvitationRepository(t), rbacProvider, storage)
	assert.Nil(t, s.DeleteBusiness(business))
}
