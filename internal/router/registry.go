package router

import "github.com/gin-gonic/gin"

// Registry collects feature modules and registers their routes on every
// mount point. The front end talks to both the bare paths and the /api
// prefix, so each module is mounted twice.
type Registry struct {
	Engine  *gin.Engine
	groups  []*gin.RouterGroup
	modules []Module
}

func NewRegistry(engine *gin.Engine) *Registry {
	return &Registry{
		Engine: engine,
		groups: []*gin.RouterGroup{
			engine.Group("/"),
			engine.Group("/api"),
		},
	}
}

func (r *Registry) Add(mod Module) {
	r.modules = append(r.modules, mod)
}

func (r *Registry) RegisterAll() {
	for _, g := range r.groups {
		for _, m := range r.modules {
			m.Register(g)
		}
	}
}
