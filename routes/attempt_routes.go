package routes

import (
	"github.com/bsmlab/bsm_quiz/handlers"
	"github.com/bsmlab/bsm_quiz/middleware"
	"github.com/gofiber/fiber/v2"
)

func AttemptRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	quizzes := api.Group("/quizzes", middleware.Protected(), middleware.LoadIdentity())
	quizzes.Get("", handlers.ListUserQuizzes)
	quizzes.Get("/:quizId", handlers.GetQuizPage)
	quizzes.Post("/:quizId/attempts", handlers.StartQuizRecord)
	quizzes.Post("/:quizId/attempts/:recordId/answers", handlers.SubmitAnswers)

	attempts := api.Group("/attempts", middleware.Protected(), middleware.LoadIdentity())
	attempts.Get("/:recordId", handlers.GetQuizRecord)
}
