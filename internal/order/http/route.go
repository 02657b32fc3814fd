package http

import (
	"github.com/gin-gonic/gin"
)

// PermissionFactory builds a middleware checking one (resource, action) pair.
type PermissionFactory func(resource, action string) gin.HandlerFunc

func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware gin.HandlerFunc, perm PermissionFactory) {
	group := g.Group("/orders")
	group.Use(authMiddleware)
	{
		group.GET("", perm("orders", "read"), h.List)
		group.POST("", perm("orders", "create"), h.Create)
		group.GET("/:id", perm("orders", "read"), h.Get)
		group.PATCH("/:id", perm("orders", "update"), h.Update)
		group.POST("/:id/pay", perm("orders", "update"), h.MarkPaid)
		group.POST("/:id/fulfill", perm("orders", "update"), h.Fulfill)
		group.POST("/:id/cancel", perm("orders", "cancel"), h.Cancel)
	}
}
