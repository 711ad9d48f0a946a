package router

import (
	"github.com/empdesk/employee-api/internal/application"
	"github.com/empdesk/employee-api/internal/container"
	pginfra "github.com/empdesk/employee-api/internal/infrastructure/postgres"
	handlers "github.com/empdesk/employee-api/internal/interface/http"
	"github.com/empdesk/employee-api/internal/router/modules"
	"github.com/empdesk/employee-api/pkg/helpers"
)

// InitModules builds the repositories, services and handlers from the
// container singletons and registers every feature module. Called once
// during startup.
func InitModules(r *Registry) {
	cfg := container.GetConfig()
	logger := container.GetLogger()

	users := pginfra.NewUserRepository(container.GetPGPool())
	employees := pginfra.NewEmployeeRepository(container.GetPGPool())

	authSvc := application.NewAuthService(users, helpers.BcryptHasher{}, container.GetJWT(), logger)
	employeeSvc := application.NewEmployeeService(employees, logger)

	cookies := helpers.NewCookieManager(cfg.JWTExpiresIn, cfg.IsProduction())

	r.Add(modules.NewAuthModule(handlers.NewAuthHandler(authSvc, logger, cookies), cfg))
	r.Add(modules.NewEmployeeModule(handlers.NewEmployeeHandler(employeeSvc, logger), container.GetJWT()))
	if cfg.DebugMetricsEnabled {
		r.Add(modules.NewDebugModule())
	}
}
