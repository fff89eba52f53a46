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
	"go.uber.org/fx"

	"github.com/Wisdomcg-ai/wisdom-business-intelligence-sub015/shared"
)

// ServiceModule provides all service-layer constructors
var ServiceModule = fx.Options(
	fx.Provide(fx.Annotate(NewLocalDocumentStorage, fx.As(new(shared.DocumentStorage)))),
	fx.Provide(fx.Annotate(NewAuditService, fx.As(new(shared.AuditLogger)))),
	fx.Provide(fx.Annotate(NewNotificationService, fx.As(new(shared.NotificationService)))),
	fx.Provide(fx.Annotate(NewBusinessService, fx.As(new(shared.BusinessService)))),
	fx.Provide(fx.Annotate(NewActiveBusinessService, fx.As(new(shared.ActiveBusinessService)))),
	fx.Provide(fx.Annotate(NewForecastService, fx.As(new(shared.ForecastService)))),
	fx.Provide(fx.Annotate(NewScenarioService, fx.As(new(shared.ScenarioService)))),
	fx.Provide(fx.Annotate(NewDecisionService, fx.As(new(shared.DecisionService)))),
	fx.Provide(fx.Annotate(NewMessageService, fx.As(new(shared.MessageService)))),
	fx.Provide(fx.Annotate(NewDocumentService, fx.As(new(shared.DocumentService)))),
	fx.Provide(fx.Annotate(NewCoachingSessionService, fx.As(new(shared.CoachingSessionService)))),
	fx.Provide(fx.Annotate(NewAssessmentService, fx.As(new(shared.AssessmentService)))),
	fx.Provide(fx.Annotate(NewDashboardService, fx.As(new(shared.DashboardService)))),
	fx.Provide(fx.Annotate(NewBackfillService, fx.As(new(shared.BackfillService)))),
)
