package http

import (
	"github.com/gin-gonic/gin"
)

// PermissionFactory builds a middleware checking one (resource, action) pair.
type PermissionFactory func(resource, action string) gin.HandlerFunc

func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware gin.HandlerFunc, perm PermissionFactory) {
	group := g.Group("/guests")
	group.Use(authMiddleware)
	{
		group.GET("", perm("guests", "read"), h.List)
		group.POST("", perm("guests", "create"), h.Create)
		group.GET("/:id", perm("guests", "read"), h.Get)
		group.PATCH("/:id", perm("guests", "update"), h.Update)
		group.DELETE("/:id", perm("guests", "delete"), h.Delete)
	}
}
