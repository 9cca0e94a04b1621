package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Empleos-api/internal/application/auth"
	"github.com/jhoicas/Empleos-api/internal/application/ports"
	"github.com/jhoicas/Empleos-api/internal/application/usecase"
	"github.com/jhoicas/Empleos-api/internal/domain/entity"
	"github.com/jhoicas/Empleos-api/pkg/session"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC        *auth.AuthUseCase
	JobUC         *usecase.JobUseCase
	CompanyUC     *usecase.CompanyUseCase
	UserUC        *usecase.UserUseCase
	ApplicationUC *usecase.ApplicationUseCase
	AdminUC       *usecase.AdminUseCase
	Sessions      session.Store
	Storage       ports.FileStorage
	CookieName    string
	CookieSecure  bool
	SessionTTL    time.Duration
}

// Router registra las rutas de la API. La resolución de sesión corre sobre
// todo /api; los guards por rol van ruta a ruta.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api", SessionMiddleware(deps.Sessions, deps.CookieName))

	// Auth (público; me y logout usan la sesión si existe)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC, deps.Sessions, deps.Storage, deps.CookieName, deps.CookieSecure, deps.SessionTTL)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/logout", authHandler.Logout)
	authGroup.Post("/register-company", authHandler.RegisterCompany)
	authGroup.Get("/me", authHandler.Me)

	// Jobs (lectura pública; mutaciones solo EMPLOYER dueño)
	jobs := api.Group("/jobs")
	jobHandler := NewJobHandler(deps.JobUC)
	jobs.Get("/", jobHandler.List)
	jobs.Get("/search", jobHandler.Search)
	jobs.Get("/mine", RequireRole(entity.RoleEmployer), jobHandler.Mine)
	jobs.Get("/:id", jobHandler.GetByID)
	jobs.Post("/", RequireRole(entity.RoleEmployer), jobHandler.Create)
	jobs.Put("/:id", RequireRole(entity.RoleEmployer), jobHandler.Update)
	jobs.Patch("/:id", RequireRole(entity.RoleEmployer), jobHandler.Patch)
	jobs.Delete("/:id", RequireRole(entity.RoleEmployer), jobHandler.Delete)

	// Companies (solo EMPLOYER, siempre sobre la empresa propia)
	companies := api.Group("/companies", RequireRole(entity.RoleEmployer))
	companyHandler := NewCompanyHandler(deps.CompanyUC, deps.Storage)
	companies.Get("/me", companyHandler.Me)
	companies.Patch("/me", companyHandler.Update)
	companies.Post("/me/logo", companyHandler.UploadLogo)

	// Users (cuenta propia; el perfil extendido y la hoja de vida son de USER)
	userHandler := NewUserHandler(deps.UserUC, deps.Storage)
	users := api.Group("/users", RequireLogin())
	users.Get("/me", userHandler.Me)
	users.Patch("/me", RequireRole(entity.RoleUser), userHandler.UpdateName)
	users.Post("/me/resume", RequireRole(entity.RoleUser), userHandler.UploadResume)

	profile := api.Group("/profile/users", RequireLogin())
	profile.Get("/me", userHandler.Profile)
	profile.Patch("/me", RequireRole(entity.RoleUser), userHandler.UpdateProfile)
	profile.Post("/me/cv", RequireRole(entity.RoleUser), userHandler.UploadCV)
	profile.Patch("/me/cv/clear", RequireRole(entity.RoleUser), userHandler.ClearCV)

	// Applications (solo USER)
	applications := api.Group("/applications", RequireRole(entity.RoleUser))
	applicationHandler := NewApplicationHandler(deps.ApplicationUC)
	applications.Post("/", applicationHandler.Apply)
	applications.Get("/mine", applicationHandler.Mine)

	// Admin (solo ADMIN)
	admin := api.Group("/admin", RequireRole(entity.RoleAdmin))
	adminHandler := NewAdminHandler(deps.AdminUC)
	admin.Get("/users", adminHandler.ListUsers)
	admin.Get("/jobs", adminHandler.ListJobs)
	admin.Delete("/jobs/:id", adminHandler.DeleteJob)
}
