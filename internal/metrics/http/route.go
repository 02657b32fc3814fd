package http

import (
	"github.com/gin-gonic/gin"
)

// PermissionFactory builds a middleware checking one (resource, action) pair.
type PermissionFactory func(resource, action string) gin.HandlerFunc

func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware gin.HandlerFunc, perm PermissionFactory) {
	group := g.Group("/metrics")
	group.Use(authMiddleware)
	{
		group.GET("/overview", perm("metrics", "read"), h.Overview)
		group.GET("/revenue", perm("analytics", "read"), h.Revenue)
	}
}
