package FiberConfig

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/template/html"
	"gorm.io/gorm"

	"TaskFlow/Controllers"
	"TaskFlow/Models"
	"TaskFlow/middleware"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	// Initialize handlers
	departmentController := Controllers.NewDepartmentController(db)
	userController := Controllers.NewUserController(db)
	taskController := Controllers.NewTaskController(db)
	templateController := Controllers.NewTemplateController(db)
	assignmentController := Controllers.NewAssignmentController(db)
	dependencyController := Controllers.NewDependencyController(db)
	commentController := Controllers.NewCommentController(db)
	notificationController := Controllers.NewNotificationController(db)
	analyticsController := Controllers.NewAnalyticsController(db)
	reportController := Controllers.NewReportController(db)
	logController := Controllers.NewLogController(db)

	// API group
	api := app.Group("/api")

	// Auth routes
	app.Post("/api/Register", middleware.Verify(3), Controllers.Register)
	app.Post("/api/Login", Controllers.Login)
	app.Use("/api/Logout", Controllers.Logout)
	app.Get("/api/Me", middleware.Verify(1), Controllers.Me)
	app.Post("/api/UpdateToken", middleware.Verify(1), Models.UpdateToken)

	// Department routes
	departments := api.Group("/departments", middleware.Verify(1))
	departments.Get("/", departmentController.GetDepartments)
	departments.Get("/:id", departmentController.GetDepartment)
	departments.Post("/", middleware.Verify(3), departmentController.CreateDepartment)
	departments.Put("/:id", middleware.Verify(3), departmentController.UpdateDepartment)
	departments.Delete("/:id", middleware.Verify(3), departmentController.DeleteDepartment)

	// User routes
	users := api.Group("/users", middleware.Verify(1))
	users.Get("/", userController.GetUsers)
	users.Get("/:id", userController.GetUser)
	users.Put("/:id", middleware.Verify(3), userController.UpdateUser)
	users.Delete("/:id", middleware.Verify(3), userController.DeleteUser)

	// Template routes
	templates := api.Group("/templates", middleware.Verify(1))
	templates.Get("/", templateController.GetTemplates)
	templates.Post("/", middleware.Verify(2), templateController.CreateTemplate)
	templates.Put("/:id", middleware.Verify(2), templateController.UpdateTemplate)
	templates.Delete("/:id", middleware.Verify(2), templateController.DeleteTemplate)

	// Task routes
	tasks := api.Group("/tasks", middleware.Verify(1))
	// Place fixed segments BEFORE the ID route to avoid conflicts
	tasks.Get("/date", taskController.GetTasksByDate)
	tasks.Get("/", taskController.GetTasks)
	tasks.Get("/:id", taskController.GetTask)
	tasks.Post("/", middleware.Verify(2), taskController.CreateTask)
	tasks.Put("/:id", middleware.Verify(2), taskController.UpdateTask)
	tasks.Delete("/:id", middleware.Verify(2), taskController.DeleteTask)

	// Assignment routes under tasks
	tasks.Get("/:task_id/assignments", assignmentController.GetAssignments)
	tasks.Post("/:task_id/assignments", middleware.Verify(2), assignmentController.CreateAssignment)

	// Direct assignment routes
	assignments := api.Group("/assignments", middleware.Verify(1))
	assignments.Put("/:id", assignmentController.UpdateAssignment)
	assignments.Delete("/:id", middleware.Verify(2), assignmentController.DeleteAssignment)

	// Dependency routes
	tasks.Get("/:task_id/dependencies", dependencyController.GetTaskDependencies)
	dependencies := api.Group("/dependencies", middleware.Verify(2))
	dependencies.Get("/", dependencyController.GetDependencies)
	dependencies.Post("/", dependencyController.CreateDependency)
	dependencies.Put("/:id", dependencyController.UpdateDependency)
	dependencies.Delete("/:id", dependencyController.DeleteDependency)

	// Comment routes
	tasks.Get("/:task_id/comments", commentController.GetTaskComments)
	comments := api.Group("/comments", middleware.Verify(1))
	comments.Post("/", commentController.CreateComment)
	comments.Put("/:id", commentController.UpdateComment)
	comments.Delete("/:id", commentController.DeleteComment)

	// Notification routes
	notifications := api.Group("/notifications", middleware.Verify(1))
	notifications.Get("/", notificationController.GetNotifications)
	notifications.Put("/read-all", notificationController.MarkAllRead)
	notifications.Put("/:id/read", notificationController.MarkRead)

	// Analytics routes
	analytics := api.Group("/analytics", middleware.Verify(2))
	analytics.Get("/overview", analyticsController.Overview)
	analytics.Get("/trends", analyticsController.Trends)
	analytics.Get("/workload", analyticsController.Workload)
	analytics.Get("/critical-path", analyticsController.CriticalPath)
	analytics.Get("/performance/:user_id", analyticsController.Performance)

	// Report exports
	reports := api.Group("/reports", middleware.Verify(2))
	reports.Get("/workload.xlsx", reportController.WorkloadReport)
	reports.Get("/overview.xlsx", reportController.OverviewReport)

	// Logs API routes
	app.Get("/api/logs", middleware.Verify(3), logController.GetLogs)

	// Health check, skipped by the request logger
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "API is running"})
	})

	// Dashboard view
	app.Get("/dashboard", middleware.Verify(2), func(c *fiber.Ctx) error {
		return c.Render("dashboard", fiber.Map{
			"Title": "TaskFlow Dashboard",
		})
	})
}

func FiberConfig() {
	fmt.Println("Server Up...")
	engine := html.New("./Templates", ".html")
	// Html Template engine
	app := fiber.New(fiber.Config{
		Views: engine,
	})
	app.Use(middleware.RequestLogger())
	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestCompression, // 2
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins:     "*", // Allow all origins
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS,PATCH",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization, X-Requested-With",
		AllowCredentials: true, // Important for cookies
		MaxAge:           300,  // Max age for preflight requests caching (5 minutes)
	}))

	SetupRoutes(app, Models.DB)
	app.Static("/static", "static/")

	app.Listen(":3001")
}
