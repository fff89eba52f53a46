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
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"github.com/Wisdomcg-ai/wisdom-business-intelligence-sub015/config"
	"github.com/Wisdomcg-ai/wisdom-business-intelligence-sub015/database/models"
	"github.com/Wisdomcg-ai/wisdom-business-intelligence-sub015/mocks"
	"github.com/Wisdomcg-ai/wisdom-business-intelligence-sub015/shared"
)

type activeBusinessFixture struct {
	businessRepository       *mocks.BusinessRepository
	userPreferenceRepository *mocks.UserPreferenceRepository
	rbacProvider             *mocks.RBACProvider
	service                  *ActiveBusinessService
}

func newActiveBusinessFixture(t *testing.T) activeBusinessFixture {
	f := activeBusinessFixture{
		businessRepository:       mocks.NewBusinessRepository(t),
		userPreferenceRepository: mocks.NewUserPreferenceRepository(t),
		rbacProvider:             mocks.NewRBACProvider(t),
	}
	f.service = NewActiveBusinessService(f.businessRepository, f.userPreferenceRepository, f.rbacProvider, nil, config.Config{})
	return f
}

// member registers a domain in which user has the given role.
func (f activeBusinessFixture) member(t *testing.T, business models.Business, role shared.Role) {
	rbac := mocks.NewAccessControl(t)
	rbac.On("HasAccess", "user").Return(true, nil).Maybe()
	rbac.On("GetDomainRole", "user").Return(role, nil).Maybe()
	f.rbacProvider.On("GetDomainRBAC", business.ID.String()).Return(rbac).Maybe()
	f.businessRepository.On("Read", business.ID).Return(business, nil).Maybe()
}

func (f activeBusinessFixture) stranger(t *testing.T, business models.Business) {
	rbac := mocks.NewAccessControl(t)
	rbac.On("HasAccess", "user").Return(false, nil).Maybe()
	f.rbacProvider.On("GetDomainRBAC", business.ID.String()).Return(rbac).Maybe()
}

func newBusiness(name string, createdAt time.Time) models.Business {
	return models.Business{Model: models.Model{ID: uuid.New(), CreatedAt: createdAt}, Name: name, Slug: name}
}

func TestResolveActiveBusiness(t *testing.T) {
	now := time.Now()
	ctx := context.Background()

	t.Run("should prefer the requested business", func(t *testing.T) {
		f := newActiveBusinessFixture(t)
		requested := newBusiness("requested", now)
		f.member(t, requested, shared.RoleMember)

		business, role, err := f.service.Resolve(ctx, "user", &requested.ID)
		assert.Nil(t, err)
		assert.Equal(t, requested.ID, business.ID)
		assert.Equal(t, shared.RoleMember, role)
	})

	t.Run("should use the stored preference", func(t *testing.T) {
		f := newActiveBusinessFixture(t)
		preferred := newBusiness("preferred", now)
		f.member(t, preferred, shared.RoleCoach)
		f.userPreferenceRepository.On("Read", "user").Return(models.UserPreference{UserID: "user", ActiveBusinessID: &preferred.ID}, nil).Once()

		business, _, err := f.service.Resolve(ctx, "user", nil)
		assert.Nil(t, err)
		assert.Equal(t, preferred.ID, business.ID)

		// the second call is served by the cache, the preference is read once
		business, _, err = f.service.Resolve(ctx, "user", nil)
		assert.Nil(t, err)
		assert.Equal(t, preferred.ID, business.ID)
	})

	t.Run("should skip a requested business the user is not part of", func(t *testing.T) {
		f := newActiveBusinessFixture(t)
		foreign := newBusiness("foreign", now)
		preferred := newBusiness("preferred", now)
		f.stranger(t, foreign)
		f.member(t, preferred, shared.RoleOwner)
		f.userPreferenceRepository.On("Read", "user").Return(models.UserPreference{UserID: "user", ActiveBusinessID: &preferred.ID}, nil)

		business, role, err := f.service.Resolve(ctx, "user", &foreign.ID)
		assert.Nil(t, err)
		assert.Equal(t, preferred.ID, business.ID)
		assert.Equal(t, shared.RoleOwner, role)
	})

	t.Run("should fall back to the oldest owned business before coached ones", func(t *testing.T) {
		f := newActiveBusinessFixture(t)
		coached := newBusiness("coached", now.Add(-48*time.Hour))
		youngOwned := newBusiness("young", now)
		oldOwned := newBusiness("old", now.Add(-24*time.Hour))
		f.member(t, coached, shared.RoleCoach)
		f.member(t, youngOwned, shared.RoleOwner)
		f.member(t, oldOwned, shared.RoleOwner)

		f.userPreferenceRepository.On("Read", "user").Return(models.UserPreference{}, gorm.ErrRecordNotFound)
		f.rbacProvider.On("DomainsOfUser", "user").Return([]string{coached.ID.String(), youngOwned.ID.String(), oldOwned.ID.String(), "not-a-uuid"}, nil)
		f.businessRepository.On("List", mock.Anything).Return([]models.Business{youngOwned, coached, oldOwned}, nil)

		business, role, err := f.service.Resolve(ctx, "user", nil)
		assert.Nil(t, err)
		assert.Equal(t, oldOwned.ID, business.ID)
		assert.Equal(t, shared.RoleOwner, role)
	})

	t.Run("should fall back to a coached business", func(t *testing.T) {
		f := newActiveBusinessFixture(t)
		coached := newBusiness("coached", now)
		membership := newBusiness("membership", now.Add(-time.Hour))
		f.member(t, coached, shared.RoleCoach)
		f.member(t, membership, shared.RoleMember)

		f.userPreferenceRepository.On("Read", "user").Return(models.UserPreference{}, gorm.ErrRecordNotFound)
		f.rbacProvider.On("DomainsOfUser", "user").Return([]string{coached.ID.String(), membership.ID.String()}, nil)
		f.businessRepository.On("List", mock.Anything).Return([]models.Business{coached, membership}, nil)

		business, role, err := f.service.Resolve(ctx, "user", nil)
		assert.Nil(t, err)
		assert.Equal(t, coached.ID, business.ID)
		assert.Equal(t, shared.RoleCoach, role)
	})

	t.Run("should return 404 if nothing is owned or coached", func(t *testing.T) {
		f := newActiveBusinessFixture(t)
		membership := newBusiness("membership", now)
		f.member(t, membership, shared.RoleMember)

		f.userPreferenceRepository.On("Read", "user").Return(models.UserPreference{}, gorm.ErrRecordNotFound)
		f.rbacProvider.On("DomainsOfUser", "user").Return([]string{membership.ID.String()}, nil)
		f.businessRepository.On("List", mock.Anything).Return([]models.Business{membership}, nil)

		_, _, err := f.service.Resolve(ctx, "user", nil)
		assert.Equal(t, http.StatusNotFound, statusOf(t, err))
	})
}

func TestSetActiveBusiness(t *testing.T) {
	ctx := context.Background()

	t.Run("should store the preference and publish the change", func(t *testing.T) {
		businessRepository := mocks.NewBusinessRepository(t)
		userPreferenceRepository := mocks.NewUserPreferenceRepository(t)
		rbacProvider := mocks.NewRBACProvider(t)
		broker := mocks.NewPubSubBroker(t)

		ch := make(chan map[string]any)
		t.Cleanup(func() { close(ch) })
		broker.On("Subscribe", shared.ActiveBusinessChange).Return((<-chan map[string]any)(ch), nil)
		broker.On("Publish", mock.Anything, mock.MatchedBy(func(msg shared.PubSubMessage) bool {
			return msg.GetChannel() == shared.ActiveBusinessChange && msg.GetPayload()["userId"] == "user"
		})).Return(nil)

		s := NewActiveBusinessService(businessRepository, userPreferenceRepository, rbacProvider, broker, config.Config{})
		f := activeBusinessFixture{businessRepository: businessRepository, userPreferenceRepository: userPreferenceRepository, rbacProvider: rbacProvider, service: s}

		business := newBusiness("acme", time.Now())
		f.member(t, business, shared.RoleOwner)
		userPreferenceRepository.On("Upsert", mock.Anything, mock.MatchedBy(func(p *models.UserPreference) bool {
			return p.UserID == "user" && *p.ActiveBusinessID == business.ID
		})).Return(nil)

		active, role, err := s.SetActive(ctx, "user", business.ID)
		assert.Nil(t, err)
		assert.Equal(t, business.ID, active.ID)
		assert.Equal(t, shared.RoleOwner, role)

		cached, ok := s.cache.Get("user")
		assert.True(t, ok)
		assert.Equal(t, business.ID, cached)
	})

	t.Run("should not activate a foreign business", func(t *testing.T) {
		f := newActiveBusinessFixture(t)
		foreign := newBusiness("foreign", time.Now())
		f.stranger(t, foreign)

		_, _, err := f.service.SetActive(ctx, "user", foreign.ID)
		assert.Equal(t, http.StatusNotFound, statusOf(t, err))
	})
}

func TestActiveBusinessCacheInvalidation(t *testing.T) {
	f := newActiveBusinessFixture(t)
	f.service.cache.Add("user", uuid.New())

	ch := make(chan map[string]any)
	done := make(chan struct{})
	go func() {
		f.service.listen(ch)
		close(done)
	}()

	// own messages are ignored
	ch <- map[string]any{"userId": "user", "instance": f.service.instanceID}
	ch <- map[string]any{"userId": "other", "instance": "somewhere"}
	_, ok := f.service.cache.Get("user")
	assert.True(t, ok)

	ch <- map[string]any{"userId": "user", "instance": "somewhere"}
	close(ch)
	<-done

	_, ok = f.service.cache.Get("user")
	assert.False(t, ok)
}
