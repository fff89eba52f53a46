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
	"context"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/ory/client-go"

	"github.com/Wisdomcg-ai/wisdom-business-intelligence-sub015/database/models"
	"github.com/Wisdomcg-ai/wisdom-business-intelligence-sub015/dtos"
	"github.com/Wisdomcg-ai/wisdom-business-intelligence-sub015/utils"
)

type BusinessRepository interface {
	utils.Repository[uuid.UUID, models.Business, DB]
	ReadBySlug(slug string) (models.Business, error)
	ReadWithProfile(id uuid.UUID) (models.Business, error)
	Update(tx DB, business *models.Business) error
	ListWithoutProfile() ([]models.Business, error)
	ListWithoutSlug() ([]models.Business, error)
	FirstFreeSlug(slug string) (string, error)
}

type BusinessProfileRepository interface {
	utils.Repository[uuid.UUID, models.BusinessProfile, DB]
	ReadByBusinessID(businessID uuid.UUID) (models.BusinessProfile, error)
}

type InvitationRepository interface {
	utils.Repository[uuid.UUID, models.Invitation, DB]
	FindByCode(code string) (models.Invitation, error)
	ListByBusinessID(businessID uuid.UUID) ([]models.Invitation, error)
}

type UserPreferenceRepository interface {
	Read(userID string) (models.UserPreference, error)
	Upsert(tx DB, preference *models.UserPreference) error
}

type ForecastRepository interface {
	utils.Repository[uuid.UUID, models.Forecast, DB]
	ListByBusinessID(businessID uuid.UUID) ([]models.Forecast, error)
	ReadWithLines(id uuid.UUID) (models.Forecast, error)
	FindActiveByBusinessID(businessID uuid.UUID) (models.Forecast, error)
	DeactivateOthers(tx DB, businessID uuid.UUID, keepID uuid.UUID) error
}

type PLLineRepository interface {
	utils.Repository[uuid.UUID, models.PLLine, DB]
	ListByForecastID(tx DB, forecastID uuid.UUID) ([]models.PLLine, error)
	DeleteByForecastID(tx DB, forecastID uuid.UUID) error
	UpsertByName(tx DB, lines []models.PLLine) error
}

type ForecastScenarioRepository interface {
	utils.Repository[uuid.UUID, models.ForecastScenario, DB]
	ListByForecastID(forecastID uuid.UUID) ([]models.ForecastScenario, error)
}

type ForecastAuditLogRepository interface {
	Create(tx DB, entry *models.ForecastAuditLog) error
	ListByForecastIDPaged(forecastID uuid.UUID, entityType string, pageInfo PageInfo) (Paged[models.ForecastAuditLog], error)
}

type ForecastDecisionRepository interface {
	utils.Repository[uuid.UUID, models.ForecastDecision, DB]
	ListByForecastID(forecastID uuid.UUID, status string) ([]models.ForecastDecision, error)
}

type ChatMessageRepository interface {
	utils.Repository[uuid.UUID, models.ChatMessage, DB]
	ListByBusinessID(businessID uuid.UUID, since *time.Time, page LimitOffset) ([]models.ChatMessage, error)
	MarkRead(tx DB, messageID uuid.UUID, userID string) error
	CountUnread(businessID uuid.UUID, userID string) (int64, error)
}

type NotificationRepository interface {
	utils.Repository[uuid.UUID, models.Notification, DB]
	ListByUserID(userID string, unreadOnly bool, page LimitOffset) ([]models.Notification, int64, error)
	ReadForUser(userID string, id uuid.UUID) (models.Notification, error)
	MarkRead(tx DB, userID string, id uuid.UUID) error
	MarkAllRead(tx DB, userID string) (int64, error)
	// SaveBatchBestEffort drops rows violating a constraint, e.g. of a business deleted mid fan-out.
	SaveBatchBestEffort(tx DB, ts []models.Notification) error
}

type DocumentRepository interface {
	utils.Repository[uuid.UUID, models.Document, DB]
	ListByBusinessID(businessID uuid.UUID, folder *string) ([]models.Document, error)
}

type CoachingSessionRepository interface {
	utils.Repository[uuid.UUID, models.CoachingSession, DB]
	ListByBusinessID(businessID uuid.UUID, status string) ([]models.CoachingSession, error)
	ListUpcoming(businessID uuid.UUID, from time.Time, limit int) ([]models.CoachingSession, error)
	ReadWithActions(id uuid.UUID) (models.CoachingSession, error)
}

type SessionActionRepository interface {
	utils.Repository[uuid.UUID, models.SessionAction, DB]
	ListBySessionID(sessionID uuid.UUID) ([]models.SessionAction, error)
	ListOpenByBusinessID(businessID uuid.UUID) ([]models.SessionAction, error)
}

type QuestionRepository interface {
	utils.Repository[uuid.UUID, models.Question, DB]
	ListByBusinessID(businessID uuid.UUID, includeArchived bool) ([]models.Question, error)
}

type AssessmentRepository interface {
	utils.Repository[uuid.UUID, models.Assessment, DB]
	ReadWithAnswers(id uuid.UUID) (models.Assessment, error)
	ListByBusinessID(businessID uuid.UUID) ([]models.Assessment, error)
	SaveAnswers(tx DB, answers []models.AssessmentAnswer) error
}

type GoalRepository interface {
	utils.Repository[uuid.UUID, models.Goal, DB]
	ListByBusinessID(businessID uuid.UUID, status string) ([]models.Goal, error)
}

type BusinessService interface {
	CreateBusiness(ctx Context, business *models.Business, asCoach bool) error
	ListBusinessesOfUser(userID string) ([]models.Business, error)
	Invite(business models.Business, inviterID string, email string, role Role) (models.Invitation, error)
	AcceptInvitation(ctx context.Context, userID string, email string, code string) (models.Business, error)
	DeleteBusiness(business models.Business) error
}

type ActiveBusinessService interface {
	Resolve(ctx context.Context, userID string, requested *uuid.UUID) (models.Business, Role, error)
	SetActive(ctx context.Context, userID string, businessID uuid.UUID) (models.Business, Role, error)
}

type AuditLogger interface {
	Log(tx DB, entry models.ForecastAuditLog) error
}

type ForecastService interface {
	Create(userID string, forecast *models.Forecast) error
	Update(userID string, before models.Forecast, forecast *models.Forecast) error
	Delete(userID string, forecast models.Forecast) error
	CreateLine(userID string, forecast models.Forecast, line *models.PLLine) error
	UpdateLine(userID string, forecast models.Forecast, before models.PLLine, line *models.PLLine) error
	DeleteLine(userID string, forecast models.Forecast, line models.PLLine) error
	Summary(forecast models.Forecast) (dtos.ForecastSummaryDTO, error)
	ImportCSV(userID string, forecast models.Forecast, r io.Reader, replace bool) (dtos.ImportResultDTO, error)
	ExportCSV(forecast models.Forecast, w io.Writer) error
}

type ScenarioService interface {
	Create(userID string, forecast models.Forecast, scenario *models.ForecastScenario) error
	Update(userID string, forecast models.Forecast, before models.ForecastScenario, scenario *models.ForecastScenario) error
	Delete(userID string, forecast models.Forecast, scenario models.ForecastScenario) error
	ApplyChanges(userID string, forecast models.Forecast, changes dtos.ScenarioChanges) ([]models.PLLine, error)
	ApplyScenario(userID string, forecast models.Forecast, scenario *models.ForecastScenario) ([]models.PLLine, error)
}

type DecisionService interface {
	Create(userID string, forecast models.Forecast, decision *models.ForecastDecision) error
	Update(userID string, forecast models.Forecast, before models.ForecastDecision, decision *models.ForecastDecision) error
	Transition(userID string, forecast models.Forecast, decision *models.ForecastDecision, status models.DecisionStatus) error
	Delete(userID string, forecast models.Forecast, decision models.ForecastDecision) error
}

type NotificationService interface {
	Notify(tx DB, userIDs []string, notification models.Notification) error
	NotifyBusinessMembers(tx DB, businessID uuid.UUID, exceptUserID string, notification models.Notification) error
}

type MessageService interface {
	Send(businessID uuid.UUID, senderID string, body string) (models.ChatMessage, error)
}

// StoredFile describes a blob after it was written by a DocumentStorage.
type StoredFile struct {
	Path     string
	Size     int64
	Checksum string
}

type DocumentStorage interface {
	Save(businessID uuid.UUID, name string, r io.Reader) (StoredFile, error)
	Open(path string) (io.ReadCloser, error)
	Delete(path string) error
	RemoveAll(businessID uuid.UUID) error
}

type DocumentUpload struct {
	Name        string
	Folder      string
	ContentType string
	Shared      bool
	Content     io.Reader
}

type DocumentService interface {
	Upload(userID string, businessID uuid.UUID, upload DocumentUpload) (models.Document, error)
	Open(document models.Document) (io.ReadCloser, error)
	Update(userID string, document *models.Document, patch dtos.DocumentPatchRequest) error
	Delete(document models.Document) error
}

type CoachingSessionService interface {
	Create(userID string, session *models.CoachingSession) error
	Complete(session *models.CoachingSession, notes *string) error
	Cancel(session *models.CoachingSession) error
	CreateAction(userID string, action *models.SessionAction) error
	SetActionStatus(action *models.SessionAction, status models.ActionStatus) error
}

type AssessmentService interface {
	Create(userID string, businessID uuid.UUID, title string) (models.Assessment, error)
	Answer(assessment models.Assessment, answers []dtos.AnswerRequest) (models.Assessment, error)
	Submit(userID string, assessment *models.Assessment) error
	Review(userID string, assessment *models.Assessment, notes string) error
}

type DashboardService interface {
	Dashboard(businessID uuid.UUID, userID string) (dtos.DashboardDTO, error)
}

type BackfillService interface {
	BackfillProfiles() (int, error)
	BackfillSlugs() (int, error)
}

type AuthSession interface {
	GetUserID() string
}

type AdminClient interface {
	ListUsers(ctx context.Context, ids []string) ([]client.Identity, error)
	GetIdentityFromCookie(ctx context.Context, cookie string) (client.Identity, error)
	GetIdentity(ctx context.Context, userID string) (client.Identity, error)
}

type AccessControl interface {
	HasAccess(user string) (bool, error)

	InheritRole(roleWhichGetsPermissions, roleWhichProvidesPermissions Role) error

	GetAllRoles(user string) []string

	// GrantRole replaces every other domain role of the user.
	GrantRole(user string, role Role) error
	RevokeRole(user string, role Role) error
	RevokeAllRoles(user string) error

	AllowRole(role Role, object Object, action []Action) error
	IsAllowed(user string, object Object, action Action) (bool, error)

	GetAllMembers() ([]string, error)
	GetUsersWithRole(role Role) ([]string, error)

	GetDomainRole(user string) (Role, error)

	RemoveDomain() error
}

type RBACProvider interface {
	GetDomainRBAC(domain string) AccessControl
	DomainsOfUser(user string) ([]string, error)
}

type Role string

const (
	RoleOwner  Role = "owner"
	RoleCoach  Role = "coach"
	RoleMember Role = "member"

	// returned when a user is part of a domain without any known role
	RoleUnknown Role = "unknown"
)

// AllRoles is ordered from most to least powerful.
var AllRoles = []Role{RoleOwner, RoleCoach, RoleMember}

type Action string

const (
	ActionCreate Action = "create"
	ActionRead   Action = "read"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

type Object string

const (
	ObjectBusiness   Object = "business"
	ObjectMember     Object = "member"
	ObjectForecast   Object = "forecast"
	ObjectDocument   Object = "document"
	ObjectSession    Object = "session"
	ObjectQuestion   Object = "question"
	ObjectAssessment Object = "assessment"
	ObjectGoal       Object = "goal"
	ObjectMessage    Object = "message"
)
