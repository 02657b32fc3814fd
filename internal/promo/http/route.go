package http

import (
	"github.com/gin-gonic/gin"
)

// PermissionFactory builds a middleware checking one (resource, action) pair.
type PermissionFactory func(resource, action string) gin.HandlerFunc

func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware gin.HandlerFunc, perm PermissionFactory) {
	group := g.Group("/promo-codes")
	group.Use(authMiddleware)
	{
		group.GET("", perm("promoCodes", "read"), h.List)
		group.POST("", perm("promoCodes", "create"), h.Create)
		group.GET("/:id", perm("promoCodes", "read"), h.Get)
		group.PATCH("/:id", perm("promoCodes", "update"), h.Update)
		group.DELETE("/:id", perm("promoCodes", "delete"), h.Delete)
		group.POST("/validate", perm("promoCodes", "read"), h.Validate)
	}
}
