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

package repositories

import (
	"fmt"

	"github.com/Wisdomcg-ai/wisdom-business-intelligence-sub015/database/models"
	"github.com/Wisdomcg-ai/wisdom-business-intelligence-sub015/utils"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type businessRepository struct {
	db *gorm.DB
	utils.Repository[uuid.UUID, models.Business, *gorm.DB]
}

func NewBusinessRepository(db *gorm.DB) *businessRepository {
	return &businessRepository{
		db:         db,
		Repository: newGormRepository[uuid.UUID, models.Business](db),
	}
}

func (g *businessRepository) Create(tx *gorm.DB, business *models.Business) error {
	firstFreeSlug, err := g.FirstFreeSlug(business.Slug)
	if err != nil {
		return fmt.Errorf("could not generate next slug: %w", err)
	}
	business.Slug = firstFreeSlug

	return g.GetDB(tx).Omit(clause.Associations).Create(business).Error
}

func (g *businessRepository) ReadBySlug(slug string) (models.Business, error) {
	var t models.Business
	err := g.db.Model(models.Business{}).Where("slug = ?", slug).First(&t).Error
	return t, err
}

func (g *businessRepository) ReadWithProfile(id uuid.UUID) (models.Business, error) {
	var t models.Business
	err := g.db.Model(models.Business{}).Preload("Profile").Where("id = ?", id).First(&t).Error
	return t, err
}

func (g *businessRepository) List(ids []uuid.UUID) ([]models.Business, error) {
	if len(ids) == 0 {
		return []models.Business{}, nil
	}
	var ts []models.Business
	err := g.db.Model(models.Business{}).Where("id IN ?", ids).Order("name ASC").Find(&ts).Error
	return ts, err
}

func (g *businessRepository) Update(tx *gorm.DB, business *models.Business) error {
	return g.GetDB(tx).Omit(clause.Associations).Save(business).Error
}

func (g *businessRepository) ListWithoutProfile() ([]models.Business, error) {
	var ts []models.Business
	err := g.db.Model(models.Business{}).
		Where("NOT EXISTS (SELECT 1 FROM business_profiles WHERE business_profiles.business_id = businesses.id)").
		Find(&ts).Error
	return ts, err
}

func (g *businessRepository) ListWithoutSlug() ([]models.Business, error) {
	var ts []models.Business
	err := g.db.Model(models.Business{}).Where("slug IS NULL OR slug = ''").Find(&ts).Error
	return ts, err
}

// FirstFreeSlug returns slug if it is unused, otherwise the first of slug-1, slug-2, ...
func (g *businessRepository) FirstFreeSlug(slug string) (string, error) {
	var slugs []string
	err := g.db.Model(&models.Business{}).
		Where("slug = ? OR slug LIKE ?", slug, slug+"-%").
		Pluck("slug", &slugs).Error
	if err != nil {
		return "", err
	}

	existing := make(map[string]bool, len(slugs))
	for _, s := range slugs {
		existing[s] = true
	}

	if !existing[slug] {
		return slug, nil
	}

	for i := 1; ; i++ {
		candidate := fmt.Sprintf("%s-%d", slug, i)
		if !existing[candidate] {
			return candidate, nil
		}
	}
}

type businessProfileRepository struct {
	db *gorm.DB
	utils.Repository[uuid.UUID, models.BusinessProfile, *gorm.DB]
}

func NewBusinessProfileRepository(db *gorm.DB) *businessProfileRepository {
	return &businessProfileRepository{
		db:         db,
		Repository: newGormRepository[uuid.UUID, models.BusinessProfile](db),
	}
}

func (g *businessProfileRepository) ReadByBusinessID(businessID uuid.UUID) (models.BusinessProfile, error) {
	var t models.BusinessProfile
	err := g.db.Where("business_id = ?", businessID).First(&t).Error
	return t, err
}

type userPreferenceRepository struct {
	db *gorm.DB
}

func NewUserPreferenceRepository(db *gorm.DB) *userPreferenceRepository {
	return &userPreferenceRepository{db: db}
}

func (g *userPreferenceRepository) Read(userID string) (models.UserPreference, error) {
	var t models.UserPreference
	err := g.db.Where("user_id = ?", userID).First(&t).Error
	return t, err
}

func (g *userPreferenceRepository) Upsert(tx *gorm.DB, preference *models.UserPreference) error {
	db := g.db
	if tx != nil {
		db = tx
	}
	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"active_business_id", "updated_at"}),
	}).Create(preference).Error
}
