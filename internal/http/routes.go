package http

import (
	"github.com/gin-gonic/gin"
)

// PublicRouteGroup defines routes that don't require authentication.
type PublicRouteGroup interface {
	// RegisterPublicRoutes registers public routes to the given router group.
	RegisterPublicRoutes(rg *gin.RouterGroup)
}

// ClassifyRoutes registers the classification API.
type ClassifyRoutes struct {
	handler *Handler
}

var _ PublicRouteGroup = (*ClassifyRoutes)(nil)

// NewClassifyRoutes creates a new ClassifyRoutes instance.
func NewClassifyRoutes(handler *Handler) *ClassifyRoutes {
	return &ClassifyRoutes{handler: handler}
}

// RegisterPublicRoutes registers the classify and cache stats endpoints.
func (r *ClassifyRoutes) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.GET("/classify-number", r.handler.ClassifyNumber)
	rg.GET("/cache/stats", r.handler.CacheStats)
}
