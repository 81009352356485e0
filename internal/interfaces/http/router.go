package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/StoreRating-api/internal/application/analytics"
	"github.com/jhoicas/StoreRating-api/internal/application/auth"
	apprating "github.com/jhoicas/StoreRating-api/internal/application/rating"
	"github.com/jhoicas/StoreRating-api/internal/application/report"
	"github.com/jhoicas/StoreRating-api/internal/application/usecase"
	"github.com/jhoicas/StoreRating-api/internal/domain/entity"
	"github.com/jhoicas/StoreRating-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	UserUC      *usecase.UserUseCase
	StoreUC     *usecase.StoreUseCase
	OwnerUC     *usecase.OwnerUseCase
	RatingUC    *apprating.SubmitRatingUseCase
	DashboardUC *appanalytics.DashboardUseCase
	ReportUC    *report.PDFUseCase

	Logger         *logger.Logger
	RequestTimeout time.Duration
	AuthPerMinute  int
	AuthBurst      int
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api", RequestTimeout(deps.RequestTimeout))
	if deps.Logger != nil {
		api.Use(RequestLogger(deps.Logger))
	}

	authHandler := NewAuthHandler(deps.AuthUC)
	userHandler := NewUserHandler(deps.UserUC)
	storeHandler := NewStoreHandler(deps.StoreUC)
	ratingHandler := NewRatingHandler(deps.RatingUC)
	dashboardHandler := NewDashboardHandler(deps.DashboardUC, deps.OwnerUC, deps.ReportUC)

	authn := AuthMiddleware(deps.AuthUC)

	// Auth (público, con límite por IP)
	authGroup := api.Group("/auth")
	limited := RateLimit(deps.AuthPerMinute, deps.AuthBurst)
	authGroup.Post("/register", limited, authHandler.Register)
	authGroup.Post("/login", limited, authHandler.Login)
	authGroup.Get("/verify", authn, authHandler.Verify)

	// Cualquier usuario autenticado
	api.Put("/users/password", authn, authHandler.UpdatePassword)

	// Administrador
	admin := api.Group("/admin", authn, RequireRole(entity.RoleAdmin))
	admin.Get("/dashboard", dashboardHandler.Admin)
	admin.Post("/users", userHandler.Create)
	admin.Get("/users", userHandler.List)
	admin.Get("/users/:id", userHandler.GetByID)
	admin.Post("/stores", storeHandler.Create)
	admin.Get("/stores", storeHandler.ListAdmin)

	// Usuario normal
	normal := RequireRole(entity.RoleNormalUser)
	api.Get("/stores", authn, normal, storeHandler.List)
	api.Get("/stores/:id/rating", authn, normal, ratingHandler.GetMine)
	api.Post("/ratings", authn, normal, ratingHandler.Submit)

	// Dueño de tienda
	owner := api.Group("/store-owner", authn, RequireRole(entity.RoleStoreOwner))
	owner.Get("/dashboard", dashboardHandler.Owner)
	owner.Get("/dashboard/pdf", dashboardHandler.OwnerPDF)
}
