package http

import (
	"github.com/gin-gonic/gin"
)

// PermissionFactory builds a middleware checking one (resource, action) pair.
type PermissionFactory func(resource, action string) gin.HandlerFunc

func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware gin.HandlerFunc, perm PermissionFactory) {
	group := g.Group("/pricing-rules")
	group.Use(authMiddleware)
	{
		group.GET("", perm("pricingRules", "read"), h.List)
		group.POST("", perm("pricingRules", "create"), h.Create)
		group.GET("/:id", perm("pricingRules", "read"), h.Get)
		group.PATCH("/:id", perm("pricingRules", "update"), h.Update)
		group.DELETE("/:id", perm("pricingRules", "delete"), h.Delete)
		group.POST("/quote", perm("pricingRules", "read"), h.Quote)
	}
}
