package http

import (
	"github.com/gin-gonic/gin"
)

// PermissionFactory builds a middleware checking one (resource, action) pair.
type PermissionFactory func(resource, action string) gin.HandlerFunc

func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware gin.HandlerFunc, perm PermissionFactory) {
	group := g.Group("/reservations")
	group.Use(authMiddleware)
	{
		group.GET("", perm("reservations", "read"), h.List)
		group.POST("", perm("reservations", "create"), h.Create)
		group.GET("/availability", perm("reservations", "read"), h.Availability)
		group.GET("/:id", perm("reservations", "read"), h.Get)
		group.PATCH("/:id", perm("reservations", "update"), h.Update)
		group.POST("/:id/confirm", perm("reservations", "update"), h.Confirm)
		group.POST("/:id/checkin", perm("reservations", "checkin"), h.CheckIn)
		group.POST("/:id/checkout", perm("reservations", "checkout"), h.CheckOut)
		group.POST("/:id/cancel", perm("reservations", "cancel"), h.Cancel)
	}
}
