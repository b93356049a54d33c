package routes

import (
	"github.com/bsmlab/bsm_quiz/handlers"
	"github.com/bsmlab/bsm_quiz/middleware"
	"github.com/gofiber/fiber/v2"
)

func QuizAdminRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	quizzes := api.Group("/admin/quizzes", middleware.Protected(), middleware.LoadIdentity(), middleware.AdminRequired())
	quizzes.Post("", handlers.CreateQuiz)
	quizzes.Get("", handlers.ListQuizzes)
	quizzes.Get("/:quizId", handlers.GetQuizDetail)
	quizzes.Put("/:quizId/questions", handlers.AddQuestions)
	quizzes.Patch("/:quizId/settings", handlers.UpdateQuizSettings)
}
