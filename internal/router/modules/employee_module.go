package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/empdesk/employee-api/internal/interface/http"
	"github.com/empdesk/employee-api/internal/interface/middleware"
	"github.com/empdesk/employee-api/pkg/helpers"
)

// EmployeeModule wires the employee CRUD routes behind the token guard.
type EmployeeModule struct {
	Handler *handlers.EmployeeHandler
	JWT     *helpers.JWTManager
}

func NewEmployeeModule(h *handlers.EmployeeHandler, jwt *helpers.JWTManager) *EmployeeModule {
	return &EmployeeModule{Handler: h, JWT: jwt}
}

func (m *EmployeeModule) Register(rg *gin.RouterGroup) {
	emp := rg.Group("/employees")
	emp.Use(middleware.RequireAuth(m.JWT))
	{
		emp.GET("", m.Handler.List)
		emp.GET("/:id", m.Handler.Get)
		emp.POST("", m.Handler.Create)
		emp.DELETE("/:id", m.Handler.Delete)
	}
}
