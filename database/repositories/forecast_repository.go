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
	"github.com/Wisdomcg-ai/wisdom-business-intelligence-sub015/shared"
	"github.com/Wisdomcg-ai/wisdom-business-intelligence-sub015/utils"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type forecastRepository struct {
	db *gorm.DB
	utils.Repository[uuid.UUID, models.Forecast, *gorm.DB]
}

func NewForecastRepository(db *gorm.DB) *forecastRepository {
	return &forecastRepository{
		db:         db,
		Repository: newGormRepository[uuid.UUID, models.Forecast](db),
	}
}

func (g *forecastRepository) ListByBusinessID(businessID uuid.UUID) ([]models.Forecast, error) {
	var ts []models.Forecast
	err := g.db.Where("business_id = ?", businessID).Order("fiscal_year DESC, created_at DESC").Find(&ts).Error
	return ts, err
}

func (g *forecastRepository) ReadWithLines(id uuid.UUID) (models.Forecast, error) {
	var t models.Forecast
	err := g.db.Preload("Lines", func(db *gorm.DB) *gorm.DB {
		return db.Order("sort_order ASC, name ASC")
	}).Where("id = ?", id).First(&t).Error
	return t, err
}

func (g *forecastRepository) FindActiveByBusinessID(businessID uuid.UUID) (models.Forecast, error) {
	var t models.Forecast
	err := g.db.Preload("Lines").
		Where("business_id = ? AND is_active = true", businessID).
		Order("updated_at DESC").
		First(&t).Error
	return t, err
}

func (g *forecastRepository) DeactivateOthers(tx *gorm.DB, businessID uuid.UUID, keepID uuid.UUID) error {
	return g.GetDB(tx).Model(&models.Forecast{}).
		Where("business_id = ? AND id <> ? AND is_active = true", businessID, keepID).
		Update("is_active", false).Error
}

type plLineRepository struct {
	db *gorm.DB
	utils.Repository[uuid.UUID, models.PLLine, *gorm.DB]
}

func NewPLLineRepository(db *gorm.DB) *plLineRepository {
	return &plLineRepository{
		db:         db,
		Repository: newGormRepository[uuid.UUID, models.PLLine](db),
	}
}

func (g *plLineRepository) ListByForecastID(tx *gorm.DB, forecastID uuid.UUID) ([]models.PLLine, error) {
	var ts []models.PLLine
	err := g.GetDB(tx).Where("forecast_id = ?", forecastID).Order("sort_order ASC, name ASC").Find(&ts).Error
	return ts, err
}

func (g *plLineRepository) DeleteByForecastID(tx *gorm.DB, forecastID uuid.UUID) error {
	return g.GetDB(tx).Where("forecast_id = ?", forecastID).Delete(&models.PLLine{}).Error
}

// UpsertByName inserts the lines or overwrites the line of the same forecast with the same name.
func (g *plLineRepository) UpsertByName(tx *gorm.DB, lines []models.PLLine) error {
	if len(lines) == 0 {
		return nil
	}
	return g.GetDB(tx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "forecast_id"}, {Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"category", "sort_order", "monthly_values", "updated_at"}),
	}).Create(&lines).Error
}

type forecastScenarioRepository struct {
	db *gorm.DB
	utils.Repository[uuid.UUID, models.ForecastScenario, *gorm.DB]
}

func NewForecastScenarioRepository(db *gorm.DB) *forecastScenarioRepository {
	return &forecastScenarioRepository{
		db:         db,
		Repository: newGormRepository[uuid.UUID, models.ForecastScenario](db),
	}
}

func (g *forecastScenarioRepository) ListByForecastID(forecastID uuid.UUID) ([]models.ForecastScenario, error) {
	var ts []models.ForecastScenario
	err := g.db.Where("forecast_id = ?", forecastID).Order("created_at ASC").Find(&ts).Error
	return ts, err
}

type forecastDecisionRepository struct {
	db *gorm.DB
	utils.Repository[uuid.UUID, models.ForecastDecision, *gorm.DB]
}

func NewForecastDecisionRepository(db *gorm.DB) *forecastDecisionRepository {
	return &forecastDecisionRepository{
		db:         db,
		Repository: newGormRepository[uuid.UUID, models.ForecastDecision](db),
	}
}

func (g *forecastDecisionRepository) ListByForecastID(forecastID uuid.UUID, status string) ([]models.ForecastDecision, error) {
	var ts []models.ForecastDecision
	q := g.db.Where("forecast_id = ?", forecastID)
	if status != "" {
		q = q.Where("status = ?", status)
	}
	err := q.Order("created_at DESC").Find(&ts).Error
	return ts, err
}

type forecastAuditLogRepository struct {
	db *gorm.DB
}

func NewForecastAuditLogRepository(db *gorm.DB) *forecastAuditLogRepository {
	return &forecastAuditLogRepository{db: db}
}

func (g *forecastAuditLogRepository) Create(tx *gorm.DB, entry *models.ForecastAuditLog) error {
	db := g.db
	if tx != nil {
		db = tx
	}
	return db.Create(entry).Error
}

func (g *forecastAuditLogRepository) ListByForecastIDPaged(forecastID uuid.UUID, entityType string, pageInfo shared.PageInfo) (shared.Paged[models.ForecastAuditLog], error) {
	var count int64
	var logs []models.ForecastAuditLog

	q := g.db.Model(&models.ForecastAuditLog{}).Where("forecast_id = ?", forecastID)
	if entityType != "" {
		q = q.Where("entity_type = ?", entityType)
	}

	if err := q.Session(&gorm.Session{}).Count(&count).Error; err != nil {
		return shared.Paged[models.ForecastAuditLog]{}, err
	}

	err := pageInfo.ApplyOnDB(q).Order("created_at DESC").Find(&logs).Error
	if err != nil {
		return shared.Paged[models.ForecastAuditLog]{}, err
	}
	return shared.NewPaged(pageInfo, count, logs), nil
}
