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

package shared

import (
	"log/slog"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/lmittmann/tint"
	"gorm.io/gorm"
)

type Server = *echo.Group
type MiddlewareFunc = echo.MiddlewareFunc
type Context = echo.Context
type DB = *gorm.DB

// InitLogger initializes the logger with a tint handler.
// tint is a simple logging library that allows to add colors to the log output.
func InitLogger(level string) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelDebug
	}

	slog.SetDefault(slog.New(
		tint.NewHandler(os.Stderr, &tint.Options{
			Level:      lvl,
			AddSource:  true,
			TimeFormat: time.Kitchen,
		}),
	))
}

func LoadConfig() error {
	return godotenv.Load()
}

var V = validator.New()

// BootstrapBusiness grants the creator its role and writes the role hierarchy and
// the permissions of every role into the domain of a freshly created business.
func BootstrapBusiness(rbac AccessControl, userID string, userRole Role) error {
	if err := rbac.GrantRole(userID, userRole); err != nil {
		return err
	}

	if err := rbac.InheritRole(RoleOwner, RoleCoach); err != nil { // an owner is a coach
		return err
	}
	if err := rbac.InheritRole(RoleCoach, RoleMember); err != nil { // a coach is a member
		return err
	}

	crud := []Action{ActionCreate, ActionRead, ActionUpdate, ActionDelete}

	if err := rbac.AllowRole(RoleOwner, ObjectBusiness, []Action{
		ActionDelete,
	}); err != nil {
		return err
	}
	if err := rbac.AllowRole(RoleOwner, ObjectMember, []Action{
		ActionUpdate,
		ActionDelete,
	}); err != nil {
		return err
	}

	if err := rbac.AllowRole(RoleCoach, ObjectBusiness, []Action{
		ActionUpdate,
	}); err != nil {
		return err
	}
	if err := rbac.AllowRole(RoleCoach, ObjectMember, []Action{
		ActionCreate,
	}); err != nil {
		return err
	}

	for _, obj := range []Object{ObjectForecast, ObjectDocument, ObjectSession, ObjectQuestion, ObjectGoal, ObjectAssessment} {
		if err := rbac.AllowRole(RoleCoach, obj, crud); err != nil {
			return err
		}
	}

	if err := rbac.AllowRole(RoleMember, ObjectBusiness, []Action{ActionRead}); err != nil {
		return err
	}
	if err := rbac.AllowRole(RoleMember, ObjectMember, []Action{ActionRead}); err != nil {
		return err
	}
	for _, obj := range []Object{ObjectForecast, ObjectSession, ObjectQuestion, ObjectGoal} {
		if err := rbac.AllowRole(RoleMember, obj, []Action{ActionRead}); err != nil {
			return err
		}
	}
	if err := rbac.AllowRole(RoleMember, ObjectDocument, []Action{ActionCreate, ActionRead}); err != nil {
		return err
	}
	if err := rbac.AllowRole(RoleMember, ObjectMessage, []Action{ActionCreate, ActionRead}); err != nil {
		return err
	}
	// members fill in and submit assessments, coaches review them
	if err := rbac.AllowRole(RoleMember, ObjectAssessment, []Action{ActionCreate, ActionRead, ActionUpdate}); err != nil {
		return err
	}

	return nil
}
