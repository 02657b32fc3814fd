package http

import (
	"github.com/gin-gonic/gin"
)

// PermissionFactory builds a middleware checking one (resource, action) pair.
type PermissionFactory func(resource, action string) gin.HandlerFunc

func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware gin.HandlerFunc, perm PermissionFactory) {
	group := g.Group("/audit-logs")
	group.Use(authMiddleware)
	{
		group.GET("", perm("auditLogs", "read"), h.List)
	}
}
