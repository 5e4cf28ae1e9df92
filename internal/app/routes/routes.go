package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/yigit/studentms/internal/app/controllers"
	"github.com/yigit/studentms/internal/middleware"
)

// Controllers groups the handlers mounted by SetupRouter
type Controllers struct {
	Auth    *controllers.AuthController
	Student *controllers.StudentController
	Option  *controllers.OptionController
	Batch   *controllers.CatalogController
	Hostel  *controllers.CatalogController
	Program *controllers.CatalogController
	Audit   *controllers.AuditController
	Excel   *controllers.ExcelController
}

// SetupRouter configures all application routes under /api
func SetupRouter(router *gin.Engine, c Controllers, authMiddleware *middleware.AuthMiddleware) {
	api := router.Group("/api")

	// --- Public auth routes ---
	api.POST("/register", c.Auth.Register)
	api.POST("/login", c.Auth.Login)

	// --- Authenticated routes ---
	authenticated := api.Group("")
	authenticated.Use(authMiddleware.Authenticate())

	mentorOrAdmin := authenticated.Group("")
	mentorOrAdmin.Use(authMiddleware.RequireMentorOrAdmin())
	{
		mentorOrAdmin.GET("/students", c.Student.GetAllStudents)
		mentorOrAdmin.GET("/students/:id", c.Student.GetStudentByID)
		mentorOrAdmin.PUT("/students/:id", c.Student.UpdateStudent)
	}

	admin := authenticated.Group("")
	admin.Use(authMiddleware.RequireAdmin())
	{
		admin.POST("/students", c.Student.CreateStudent)
		admin.DELETE("/students/:id", c.Student.DeleteStudent)

		options := admin.Group("/configurable-options")
		{
			options.GET("/:category", c.Option.ListOptions)
			options.POST("", c.Option.AddOption)
			options.PUT("/:id", c.Option.UpdateOption)
			options.DELETE("/:id", c.Option.DeactivateOption)
		}

		registerCatalog(admin.Group("/batches"), c.Batch)
		registerCatalog(admin.Group("/hostels"), c.Hostel)
		registerCatalog(admin.Group("/programs"), c.Program)

		admin.GET("/audit-logs", c.Audit.GetAuditLogs)
		admin.POST("/upload-excel", c.Excel.UploadExcel)
		admin.GET("/download-excel", c.Excel.DownloadExcel)
	}
}

func registerCatalog(group *gin.RouterGroup, catalog *controllers.CatalogController) {
	group.GET("", catalog.List)
	group.GET("/:id", catalog.Get)
	group.POST("", catalog.Create)
	group.PUT("/:id", catalog.Update)
	group.DELETE("/:id", catalog.Delete)
}
