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
	"github.com/Wisdomcg-ai/wisdom-business-intelligence-sub015/shared"
	"go.uber.org/fx"
)

// Module provides all repository constructors as their interfaces
var Module = fx.Options(
	fx.Provide(fx.Annotate(NewBusinessRepository, fx.As(new(shared.BusinessRepository)))),
	fx.Provide(fx.Annotate(NewBusinessProfileRepository, fx.As(new(shared.BusinessProfileRepository)))),
	fx.Provide(fx.Annotate(NewInvitationRepository, fx.As(new(shared.InvitationRepository)))),
	fx.Provide(fx.Annotate(NewUserPreferenceRepository, fx.As(new(shared.UserPreferenceRepository)))),
	fx.Provide(fx.Annotate(NewForecastRepository, fx.As(new(shared.ForecastRepository)))),
	fx.Provide(fx.Annotate(NewPLLineRepository, fx.As(new(shared.PLLineRepository)))),
	fx.Provide(fx.Annotate(NewForecastScenarioRepository, fx.As(new(shared.ForecastScenarioRepository)))),
	fx.Provide(fx.Annotate(NewForecastDecisionRepository, fx.As(new(shared.ForecastDecisionRepository)))),
	fx.Provide(fx.Annotate(NewForecastAuditLogRepository, fx.As(new(shared.ForecastAuditLogRepository)))),
	fx.Provide(fx.Annotate(NewChatMessageRepository, fx.As(new(shared.ChatMessageRepository)))),
	fx.Provide(fx.Annotate(NewNotificationRepository, fx.As(new(shared.NotificationRepository)))),
	fx.Provide(fx.Annotate(NewDocumentRepository, fx.As(new(shared.DocumentRepository)))),
	fx.Provide(fx.Annotate(NewCoachingSessionRepository, fx.As(new(shared.CoachingSessionRepository)))),
	fx.Provide(fx.Annotate(NewSessionActionRepository, fx.As(new(shared.SessionActionRepository)))),
	fx.Provide(fx.Annotate(NewQuestionRepository, fx.As(new(shared.QuestionRepository)))),
	fx.Provide(fx.Annotate(NewAssessmentRepository, fx.As(new(shared.AssessmentRepository)))),
	fx.Provide(fx.Annotate(NewGoalRepository, fx.As(new(shared.GoalRepository)))),
)
