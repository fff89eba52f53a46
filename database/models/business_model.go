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

package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// Business is the tenant. Every other row of the domain hangs off a business.
type Business struct {
	Model
	Name                 string  `json:"name" gorm:"type:text;not null"`
	Slug                 string  `json:"slug" gorm:"type:text;unique;not null;index"`
	Description          string  `json:"description" gorm:"type:text"`
	Industry             *string `json:"industry" gorm:"type:text"`
	Country              *string `json:"country" gorm:"type:text"`
	Currency             string  `json:"currency" gorm:"type:text;default:'AUD'"`
	FiscalYearStartMonth int     `json:"fiscalYearStartMonth" gorm:"default:7"`

	Profile *BusinessProfile `json:"profile,omitempty" gorm:"foreignKey:BusinessID;constraint:OnDelete:CASCADE;"`
}

func (m Business) TableName() string {
	return "businesses"
}

type BusinessProfile struct {
	Model
	BusinessID        uuid.UUID                   `json:"businessId" gorm:"type:uuid;uniqueIndex;not null"`
	LegalName         *string                     `json:"legalName" gorm:"type:text"`
	TaxID             *string                     `json:"taxId" gorm:"type:text"`
	Website           *string                     `json:"website" gorm:"type:text"`
	ContactEmail      *string                     `json:"contactEmail" gorm:"type:text"`
	ContactPhone      *string                     `json:"contactPhone" gorm:"type:text"`
	NumberOfEmployees *int                        `json:"numberOfEmployees"`
	FoundedYear       *int                        `json:"foundedYear"`
	AnnualRevenue     decimal.NullDecimal         `json:"annualRevenue" gorm:"type:numeric"`
	Mission           string                      `json:"mission" gorm:"type:text"`
	Vision            string                      `json:"vision" gorm:"type:text"`
	CoreValues        datatypes.JSONSlice[string] `json:"coreValues" gorm:"type:jsonb"`
}

func (m BusinessProfile) TableName() string {
	return "business_profiles"
}

type Invitation struct {
	Model
	BusinessID uuid.UUID `json:"businessId" gorm:"type:uuid;not null;index"`
	Business   Business  `json:"business" gorm:"foreignKey:BusinessID;constraint:OnDelete:CASCADE;"`
	Email      string    `json:"email" gorm:"type:text;not null"`
	Role       string    `json:"role" gorm:"type:text;not null;default:'member'"`
	Code       string    `json:"-" gorm:"type:text;uniqueIndex;not null"`
	InvitedBy  string    `json:"invitedBy" gorm:"type:text"`
}

func (m Invitation) TableName() string {
	return "invitations"
}

// UserPreference remembers which business a user looked at last.
type UserPreference struct {
	UserID           string     `json:"userId" gorm:"primarykey;type:text"`
	ActiveBusinessID *uuid.UUID `json:"activeBusinessId" gorm:"type:uuid"`
	UpdatedAt        time.Time  `json:"updatedAt"`
}

func (m UserPreference) TableName() string {
	return "user_preferences"
}
