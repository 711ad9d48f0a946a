package modules

import (
	"github.com/gin-gonic/gin"

	"github.com/empdesk/employee-api/config"
	"github.com/empdesk/employee-api/internal/container"
	handlers "github.com/empdesk/employee-api/internal/interface/http"
	"github.com/empdesk/employee-api/internal/interface/middleware"
)

// AuthModule wires the public auth endpoints. Login gets an IP-scoped rate
// limit; register and logout are unthrottled like the rest of the surface.
type AuthModule struct {
	Handler *handlers.AuthHandler
	Cfg     *config.Config
}

func NewAuthModule(h *handlers.AuthHandler, cfg *config.Config) *AuthModule {
	return &AuthModule{Handler: h, Cfg: cfg}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	loginLimiter := middleware.RateLimit(container.GetRedis(), m.Cfg.LoginRateMax, m.Cfg.LoginRateWindow, middleware.KeyByIPAndPath(), nil)

	rg.POST("/auth/login", loginLimiter, m.Handler.Login)
	rg.POST("/auth/register", m.Handler.Register)
	rg.POST("/auth/logout", m.Handler.Logout)
}
