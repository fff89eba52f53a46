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
	"log/slog"
	"net/http"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/labstack/echo/v4"

	"github.com/Wisdomcg-ai/wisdom-business-intelligence-sub015/config"
	"github.com/Wisdomcg-ai/wisdom-business-intelligence-sub015/database"
	"github.com/Wisdomcg-ai/wisdom-business-intelligence-sub015/database/models"
	"github.com/Wisdomcg-ai/wisdom-business-intelligence-sub015/shared"
)

// ActiveBusinessService decides which business a user currently works on.
// The choice is cached per instance, other instances are told to forget it
// whenever a user switches.
type ActiveBusinessService struct {
	businessRepository       shared.BusinessRepository
	userPreferenceRepository shared.UserPreferenceRepository
	rbacProvider             shared.RBACProvider
	broker                   shared.PubSubBroker

	cache      *expirable.LRU[string, uuid.UUID]
	instanceID string
}

func NewActiveBusinessService(businessRepository shared.BusinessRepository, userPreferenceRepository shared.UserPreferenceRepository, rbacProvider shared.RBACProvider, broker shared.PubSubBroker, cfg config.Config) *ActiveBusinessService {
	size := cfg.ActiveBusinessCache.Size
	if size <= 0 {
		size = 4096
	}
	ttl := cfg.ActiveBusinessCache.TTL
	if ttl <= 0 {
		ttl = 15 * time.Minute
	}

	s := &ActiveBusinessService{
		businessRepository:       businessRepository,
		userPreferenceRepository: userPreferenceRepository,
		rbacProvider:             rbacProvider,
		broker:                   broker,
		cache:                    expirable.NewLRU[string, uuid.UUID](size, nil, ttl),
		instanceID:               uuid.NewString(),
	}

	if broker != nil {
		ch, err := broker.Subscribe(shared.ActiveBusinessChange)
		if err != nil {
			slog.Warn("could not subscribe to active business changes, cache entries only expire", "err", err)
		} else {
			go s.listen(ch)
		}
	}
	return s
}

func (s *ActiveBusinessService) listen(ch <-chan map[string]any) {
	for payload := range ch {
		if instance, _ := payload["instance"].(string); instance == s.instanceID {
			continue
		}
		if userID, ok := payload["userId"].(string); ok {
			s.cache.Remove(userID)
		}
	}
}

// lookup returns the business if the user is a member of it.
func (s *ActiveBusinessService) lookup(userID string, businessID uuid.UUID) (models.Business, shared.Role, bool, error) {
	rbac := s.rbacProvider.GetDomainRBAC(businessID.String())
	ok, err := rbac.HasAccess(userID)
	if err != nil || !ok {
		return models.Business{}, "", false, err
	}

	business, err := s.businessRepository.Read(businessID)
	if err != nil {
		if database.IsNotFound(err) {
			return models.Business{}, "", false, nil
		}
		return models.Business{}, "", false, err
	}

	role, err := rbac.GetDomainRole(userID)
	if err != nil {
		role = shared.RoleUnknown
	}
	return business, role, true, nil
}

func (s *ActiveBusinessService) firstAccessible(ctx context.Context, userID string, ids []uuid.UUID) (models.Business, shared.Role, bool, error) {
	for _, id := range ids {
		business, role, ok, err := s.lookup(userID, id)
		if err != nil {
			return models.Business{}, "", false, echo.NewHTTPError(http.StatusInternalServerError, "could not resolve active business").WithInternal(err)
		}
		if ok {
			s.cache.Add(userID, business.ID)
			return business, role, true, nil
		}
		slog.DebugContext(ctx, "active business candidate not accessible", "user", userID, "business", id)
	}
	return models.Business{}, "", false, nil
}

// Resolve tries in this order: the requested business, the cached choice,
// the stored preference, the first owned and the first coached business.
func (s *ActiveBusinessService) Resolve(ctx context.Context, userID string, requested *uuid.UUID) (models.Business, shared.Role, error) {
	candidates := make([]uuid.UUID, 0, 2)
	if requested != nil {
		candidates = append(candidates, *requested)
	}
	if cached, ok := s.cache.Get(userID); ok {
		candidates = append(candidates, cached)
	}
	if business, role, ok, err := s.firstAccessible(ctx, userID, candidates); err != nil || ok {
		return business, role, err
	}

	preference, err := s.userPreferenceRepository.Read(userID)
	if err != nil && !database.IsNotFound(err) {
		return models.Business{}, "", echo.NewHTTPError(http.StatusInternalServerError, "could not read user preference").WithInternal(err)
	}
	if err == nil && preference.ActiveBusinessID != nil {
		if business, role, ok, err := s.firstAccessible(ctx, userID, []uuid.UUID{*preference.ActiveBusinessID}); err != nil || ok {
			return business, role, err
		}
	}
	s.cache.Remove(userID)

	domains, err := s.rbacProvider.DomainsOfUser(userID)
	if err != nil {
		return models.Business{}, "", echo.NewHTTPError(http.StatusInternalServerError, "could not list businesses").WithInternal(err)
	}
	ids := make([]uuid.UUID, 0, len(domains))
	for _, domain := range domains {
		if id, err := uuid.Parse(domain); err == nil {
			ids = append(ids, id)
		}
	}
	businesses, err := s.businessRepository.List(ids)
	if err != nil {
		return models.Business{}, "", echo.NewHTTPError(http.StatusInternalServerError, "could not list businesses").WithInternal(err)
	}
	slices.SortStableFunc(businesses, func(a, b models.Business) int {
		return a.CreatedAt.Compare(b.CreatedAt)
	})

	roles := make(map[uuid.UUID]shared.Role, len(businesses))
	for _, business := range businesses {
		role, err := s.rbacProvider.GetDomainRBAC(business.ID.String()).GetDomainRole(userID)
		if err == nil {
			roles[business.ID] = role
		}
	}

	for _, wanted := range []shared.Role{shared.RoleOwner, shared.RoleCoach} {
		for _, business := range businesses {
			if roles[business.ID] == wanted {
				s.cache.Add(userID, business.ID)
				return business, wanted, nil
			}
		}
	}

	return models.Business{}, "", echo.NewHTTPError(http.StatusNotFound, "no active business")
}

// SetActive stores the choice and tells the other instances to drop their cached value.
func (s *ActiveBusinessService) SetActive(ctx context.Context, userID string, businessID uuid.UUID) (models.Business, shared.Role, error) {
	business, role, ok, err := s.lookup(userID, businessID)
	if err != nil {
		return models.Business{}, "", echo.NewHTTPError(http.StatusInternalServerError, "could not read business").WithInternal(err)
	}
	if !ok {
		return models.Business{}, "", echo.NewHTTPError(http.StatusNotFound, "could not find business")
	}

	preference := models.UserPreference{
		UserID:           userID,
		ActiveBusinessID: &business.ID,
		UpdatedAt:        time.Now(),
	}
	if err := s.userPreferenceRepository.Upsert(nil, &preference); err != nil {
		return models.Business{}, "", echo.NewHTTPError(http.StatusInternalServerError, "could not store active business").WithInternal(err)
	}
	s.cache.Add(userID, business.ID)

	if s.broker != nil {
		err := s.broker.Publish(ctx, shared.NewSimplePubSubMessage(shared.ActiveBusinessChange, map[string]any{
			"userId":   userID,
			"instance": s.instanceID,
		}))
		if err != nil {
			slog.WarnContext(ctx, "could not publish active business change", "err", err)
		}
	}
	return business, role, nil
}
