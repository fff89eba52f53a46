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

package router

import (
	"github.com/labstack/echo/v4"

	"github.com/Wisdomcg-ai/wisdom-business-intelligence-sub015/controllers"
	"github.com/Wisdomcg-ai/wisdom-business-intelligence-sub015/middlewares"
	"github.com/Wisdomcg-ai/wisdom-business-intelligence-sub015/shared"
)

type BusinessRouter struct {
	*echo.Group
}

func NewBusinessRouter(
	sessionGroup SessionRouter,
	businessController *controllers.BusinessController,
	memberController *controllers.MemberController,
	dashboardController *controllers.DashboardController,
	messageController *controllers.MessageController,
	documentController *controllers.DocumentController,
	coachingController *controllers.CoachingController,
	questionController *controllers.QuestionController,
	assessmentController *controllers.AssessmentController,
	goalController *controllers.GoalController,
	businessRepository shared.BusinessRepository,
	rbacProvider shared.RBACProvider,
) BusinessRouter {
	/**
	Business router
	*/
	businessesRouter := sessionGroup.Group.Group("/businesses")
	businessesRouter.GET("/", businessController.List)
	businessesRouter.POST("/", businessController.Create)

	/**
	Business scoped router
	All routes below this line are scoped to a specific business.
	*/
	businessRouter := businessesRouter.Group("/:businessSlug",
		middlewares.BusinessMiddleware(rbacProvider, businessRepository),
		middlewares.BusinessAccessControl(shared.ObjectBusiness, shared.ActionRead),
	)

	businessRouter.GET("/", businessController.Read)
	businessRouter.PATCH("/", businessController.Update, middlewares.BusinessAccessControl(shared.ObjectBusiness, shared.ActionUpdate))
	businessRouter.DELETE("/", businessController.Delete, middlewares.BusinessAccessControl(shared.ObjectBusiness, shared.ActionDelete))
	businessRouter.GET("/profile/", businessController.ReadProfile)
	businessRouter.PUT("/profile/", businessController.UpdateProfile, middlewares.BusinessAccessControl(shared.ObjectBusiness, shared.ActionUpdate))
	businessRouter.GET("/dashboard/", dashboardController.Read)

	// members
	businessRouter.GET("/members/", memberController.List, middlewares.BusinessAccessControl(shared.ObjectMember, shared.ActionRead))
	businessRouter.POST("/members/", memberController.Invite, middlewares.BusinessAccessControl(shared.ObjectMember, shared.ActionCreate))
	businessRouter.GET("/invitations/", memberController.ListInvitations, middlewares.BusinessAccessControl(shared.ObjectMember, shared.ActionCreate))
	businessRouter.PUT("/members/:userID/", memberController.ChangeRole, middlewares.BusinessAccessControl(shared.ObjectMember, shared.ActionUpdate))
	businessRouter.DELETE("/members/:userID/", memberController.Remove, middlewares.BusinessAccessControl(shared.ObjectMember, shared.ActionDelete))

	// messages
	messageRouter := businessRouter.Group("/messages")
	messageRouter.GET("/", messageController.List, middlewares.BusinessAccessControl(shared.ObjectMessage, shared.ActionRead))
	messageRouter.POST("/", messageController.Send, middlewares.BusinessAccessControl(shared.ObjectMessage, shared.ActionCreate))
	messageRouter.POST("/:messageID/read/", messageController.MarkRead, middlewares.BusinessAccessControl(shared.ObjectMessage, shared.ActionRead))

	// documents
	documentRouter := businessRouter.Group("/documents")
	documentRouter.GET("/", documentController.List, middlewares.BusinessAccessControl(shared.ObjectDocument, shared.ActionRead))
	documentRouter.POST("/", documentController.Upload, middlewares.BusinessAccessControl(shared.ObjectDocument, shared.ActionCreate))
	documentRouter.GET("/:documentID/", documentController.Read, middlewares.BusinessAccessControl(shared.ObjectDocument, shared.ActionRead))
	documentRouter.GET("/:documentID/download/", documentController.Download, middlewares.BusinessAccessControl(shared.ObjectDocument, shared.ActionRead))
	documentRouter.PATCH("/:documentID/", documentController.Update, middlewares.BusinessAccessControl(shared.ObjectDocument, shared.ActionUpdate))
	documentRouter.DELETE("/:documentID/", documentController.Delete, middlewares.BusinessAccessControl(shared.ObjectDocument, shared.ActionDelete))

	// coaching sessions
	sessionRouter := businessRouter.Group("/sessions", middlewares.BusinessAccessControl(shared.ObjectSession, shared.ActionRead))
	sessionRouter.GET("/", coachingController.ListSessions)
	sessionRouter.GET("/:sessionID/", coachingController.ReadSession)
	sessionRouter.GET("/:sessionID/actions/", coachingController.ListSessionActions)

	sessionCreateAccessControlRequired := sessionRouter.Group("", middlewares.BusinessAccessControl(shared.ObjectSession, shared.ActionCreate))
	sessionCreateAccessControlRequired.POST("/", coachingController.CreateSession)
	sessionCreateAccessControlRequired.POST("/:sessionID/actions/", coachingController.CreateSessionAction)

	sessionUpdateAccessControlRequired := sessionRouter.Group("", middlewares.BusinessAccessControl(shared.ObjectSession, shared.ActionUpdate))
	sessionUpdateAccessControlRequired.PATCH("/:sessionID/", coachingController.UpdateSession)
	sessionUpdateAccessControlRequired.POST("/:sessionID/complete/", coachingController.CompleteSession)
	sessionUpdateAccessControlRequired.POST("/:sessionID/cancel/", coachingController.CancelSession)

	sessionRouter.DELETE("/:sessionID/", coachingController.DeleteSession, middlewares.BusinessAccessControl(shared.ObjectSession, shared.ActionDelete))

	// actions
	actionRouter := businessRouter.Group("/actions", middlewares.BusinessAccessControl(shared.ObjectSession, shared.ActionRead))
	actionRouter.GET("/", coachingController.ListOpenActions)
	actionRouter.POST("/", coachingController.CreateAction, middlewares.BusinessAccessControl(shared.ObjectSession, shared.ActionCreate))
	actionRouter.PATCH("/:actionID/", coachingController.UpdateAction, middlewares.BusinessAccessControl(shared.ObjectSession, shared.ActionUpdate))
	// the controller lets the assignee through as well
	actionRouter.PUT("/:actionID/status/", coachingController.SetActionStatus)
	actionRouter.DELETE("/:actionID/", coachingController.DeleteAction, middlewares.BusinessAccessControl(shared.ObjectSession, shared.ActionDelete))

	// question bank
	questionRouter := businessRouter.Group("/questions", middlewares.BusinessAccessControl(shared.ObjectQuestion, shared.ActionRead))
	questionRouter.GET("/", questionController.List)
	questionRouter.POST("/", questionController.Create, middlewares.BusinessAccessControl(shared.ObjectQuestion, shared.ActionCreate))
	questionRouter.PATCH("/:questionID/", questionController.Update, middlewares.BusinessAccessControl(shared.ObjectQuestion, shared.ActionUpdate))
	questionRouter.DELETE("/:questionID/", questionController.Delete, middlewares.BusinessAccessControl(shared.ObjectQuestion, shared.ActionDelete))

	// assessments
	assessmentRouter := businessRouter.Group("/assessments", middlewares.BusinessAccessControl(shared.ObjectAssessment, shared.ActionRead))
	assessmentRouter.GET("/", assessmentController.List)
	assessmentRouter.POST("/", assessmentController.Create, middlewares.BusinessAccessControl(shared.ObjectAssessment, shared.ActionCreate))
	assessmentRouter.GET("/:assessmentID/", assessmentController.Read)

	assessmentUpdateAccessControlRequired := assessmentRouter.Group("", middlewares.BusinessAccessControl(shared.ObjectAssessment, shared.ActionUpdate))
	assessmentUpdateAccessControlRequired.PUT("/:assessmentID/answers/", assessmentController.Answer)
	assessmentUpdateAccessControlRequired.POST("/:assessmentID/submit/", assessmentController.Submit)
	assessmentUpdateAccessControlRequired.POST("/:assessmentID/review/", assessmentController.Review)

	assessmentRouter.DELETE("/:assessmentID/", assessmentController.Delete, middlewares.BusinessAccessControl(shared.ObjectAssessment, shared.ActionDelete))

	// goals
	goalRouter := businessRouter.Group("/goals", middlewares.BusinessAccessControl(shared.ObjectGoal, shared.ActionRead))
	goalRouter.GET("/", goalController.List)
	goalRouter.POST("/", goalController.Create, middlewares.BusinessAccessControl(shared.ObjectGoal, shared.ActionCreate))
	goalRouter.GET("/:goalID/", goalController.Read)
	goalRouter.PATCH("/:goalID/", goalController.Update, middlewares.BusinessAccessControl(shared.ObjectGoal, shared.ActionUpdate))
	goalRouter.DELETE("/:goalID/", goalController.Delete, middlewares.BusinessAccessControl(shared.ObjectGoal, shared.ActionDelete))

	return BusinessRouter{Group: businessRouter}
}
