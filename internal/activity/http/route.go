package http

import (
	"github.com/gin-gonic/gin"
)

// PermissionFactory builds a middleware checking one (resource, action) pair.
type PermissionFactory func(resource, action string) gin.HandlerFunc

func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware gin.HandlerFunc, perm PermissionFactory) {
	group := g.Group("/activity-types")
	group.Use(authMiddleware)
	{
		group.GET("", perm("activityTypes", "read"), h.List)
		group.POST("", perm("activityTypes", "create"), h.Create)
		group.GET("/:id", perm("activityTypes", "read"), h.Get)
		group.PATCH("/:id", perm("activityTypes", "update"), h.Update)
		group.DELETE("/:id", perm("activityTypes", "delete"), h.Delete)
	}
}
