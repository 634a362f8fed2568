package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"jobsreport/internal/auth"
	"jobsreport/internal/config"
	"jobsreport/internal/handler"
	"jobsreport/internal/model"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	clientHandler *handler.ClientHandler,
	projectHandler *handler.ProjectHandler,
	subcontractorHandler *handler.SubcontractorHandler,
	reportHandler *handler.ReportHandler,
	summaryHandler *handler.SummaryHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Public routes
	api.POST("/auth/login", authHandler.Login)
	api.POST("/auth/refresh", authHandler.Refresh)
	api.POST("/auth/logout", authHandler.Logout)

	// Secured routes (require JWT authentication)
	secured := api.Group("", echojwt.WithConfig(echojwt.Config{
		SigningKey:  []byte(cfg.JWTSecret),
		TokenLookup: "header:" + echo.HeaderAuthorization,
	}))

	secured.GET("/me", authHandler.Me)

	// User management is admin only.
	users := secured.Group("/users", RequireRole(model.RoleAdmin))
	users.GET("", userHandler.ListUsers)
	users.POST("", userHandler.CreateUser)
	users.GET("/:id", userHandler.GetUser)
	users.PUT("/:id", userHandler.UpdateUser)
	users.DELETE("/:id", userHandler.DeleteUser)

	// Client routes
	secured.GET("/clients", clientHandler.ListClients)
	secured.POST("/clients", clientHandler.CreateClient)
	secured.GET("/clients/:id", clientHandler.GetClient)
	secured.PUT("/clients/:id", clientHandler.UpdateClient)
	secured.DELETE("/clients/:id", clientHandler.DeleteClient)

	// Project routes
	secured.GET("/projects", projectHandler.ListProjects)
	secured.POST("/projects", projectHandler.CreateProject)
	secured.GET("/projects/:id", projectHandler.GetProject)
	secured.PUT("/projects/:id", projectHandler.UpdateProject)
	secured.DELETE("/projects/:id", projectHandler.DeleteProject)

	// Subcontractor routes
	secured.GET("/subcontractors", subcontractorHandler.ListSubcontractors)
	secured.POST("/subcontractors", subcontractorHandler.CreateSubcontractor)
	secured.GET("/subcontractors/:id", subcontractorHandler.GetSubcontractor)
	secured.PUT("/subcontractors/:id", subcontractorHandler.UpdateSubcontractor)
	secured.DELETE("/subcontractors/:id", subcontractorHandler.DeleteSubcontractor)

	// Work report routes
	secured.GET("/reports", reportHandler.ListReports)
	secured.POST("/reports", reportHandler.CreateReport)
	secured.GET("/reports/:id", reportHandler.GetReport)
	secured.PUT("/reports/:id", reportHandler.UpdateReport)
	secured.DELETE("/reports/:id", reportHandler.DeleteReport)

	// Summary routes
	secured.GET("/summary", summaryHandler.GetSummary)
	secured.GET("/summary/export/excel", summaryHandler.ExportExcel)
	secured.GET("/summary/export/pdf", summaryHandler.ExportPDF)
}

// RequireRole rejects requests whose token carries a different role.
func RequireRole(role model.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			info, err := auth.FromContext(c)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}
			if info.Role != role {
				return echo.NewHTTPError(http.StatusForbidden, "insufficient role")
			}
			return next(c)
		}
	}
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
