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
	"log/slog"

	"github.com/google/uuid"
	"github.com/gosimple/slug"

	"github.com/Wisdomcg-ai/wisdom-business-intelligence-sub015/database/models"
	"github.com/Wisdomcg-ai/wisdom-business-intelligence-sub015/shared"
)

// BackfillService repairs rows written before profiles and slugs were mandatory.
type BackfillService struct {
	businessRepository        shared.BusinessRepository
	businessProfileRepository shared.BusinessProfileRepository
}

func NewBackfillService(businessRepository shared.BusinessRepository, businessProfileRepository shared.BusinessProfileRepository) *BackfillService {
	return &BackfillService{
		businessRepository:        businessRepository,
		businessProfileRepository: businessProfileRepository,
	}
}

func (s *BackfillService) BackfillProfiles() (int, error) {
	businesses, err := s.businessRepository.ListWithoutProfile()
	if err != nil {
		return 0, err
	}
	if len(businesses) == 0 {
		return 0, nil
	}

	profiles := make([]models.BusinessProfile, 0, len(businesses))
	for _, business := range businesses {
		profiles = append(profiles, models.BusinessProfile{
			Model:      models.Model{ID: uuid.New()},
			BusinessID: business.ID,
		})
	}
	if err := s.businessProfileRepository.CreateBatch(nil, profiles); err != nil {
		return 0, err
	}
	slog.Info("created missing business profiles", "count", len(profiles))
	return len(profiles), nil
}

// BackfillSlugs is best effort: a business which cannot be updated is logged and skipped.
func (s *BackfillService) BackfillSlugs() (int, error) {
	businesses, err := s.businessRepository.ListWithoutSlug()
	if err != nil {
		return 0, err
	}

	updated := 0
	for _, business := range businesses {
		base := slug.Make(business.Name)
		if base == "" {
			base = "business"
		}
		free, err := s.businessRepository.FirstFreeSlug(base)
		if err != nil {
			slog.Error("could not find free slug", "business", business.ID, "err", err)
			continue
		}
		business.Slug = free
		if err := s.businessRepository.Update(nil, &business); err != nil {
			slog.Error("could not update slug", "business", business.ID, "err", err)
			continue
		}
		updated++
	}
	slog.Info("backfilled business slugs", "updated", updated, "total", len(businesses))
	return updated, nil
}
