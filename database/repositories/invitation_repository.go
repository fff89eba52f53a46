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
	"github.com/Wisdomcg-ai/wisdom-business-intelligence-sub015/database/models"
	"github.com/Wisdomcg-ai/wisdom-business-intelligence-sub015/utils"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type InvitationRepository struct {
	db *gorm.DB
	utils.Repository[uuid.UUID, models.Invitation, *gorm.DB]
}

func NewInvitationRepository(db *gorm.DB) *InvitationRepository {
	return &InvitationRepository{
		db:         db,
		Repository: newGormRepository[uuid.UUID, models.Invitation](db),
	}
}

func (g *InvitationRepository) FindByCode(code string) (models.Invitation, error) {
	var t models.Invitation
	err := g.db.Model(models.Invitation{}).Preload("Business").Where("code = ?", code).First(&t).Error
	return t, err
}

func (g *InvitationRepository) ListByBusinessID(businessID uuid.UUID) ([]models.Invitation, error) {
	var ts []models.Invitation
	err := g.db.Where("business_id = ?", businessID).Order("created_at DESC").Find(&ts).Error
	return ts, err
}
