package http

import (
	"github.com/gin-gonic/gin"
)

// PermissionFactory builds a middleware checking one (resource, action) pair.
type PermissionFactory func(resource, action string) gin.HandlerFunc

func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware gin.HandlerFunc, perm PermissionFactory) {
	roomTypes := g.Group("/room-types")
	roomTypes.Use(authMiddleware)
	{
		roomTypes.GET("", perm("roomTypes", "read"), h.ListRoomTypes)
		roomTypes.POST("", perm("roomTypes", "create"), h.CreateRoomType)
		roomTypes.GET("/:id", perm("roomTypes", "read"), h.GetRoomType)
		roomTypes.PATCH("/:id", perm("roomTypes", "update"), h.UpdateRoomType)
		roomTypes.DELETE("/:id", perm("roomTypes", "delete"), h.DeleteRoomType)
	}

	rooms := g.Group("/rooms")
	rooms.Use(authMiddleware)
	{
		rooms.GET("", perm("inventory", "read"), h.ListRooms)
		rooms.POST("", perm("inventory", "create"), h.CreateRoom)
		rooms.GET("/:id", perm("inventory", "read"), h.GetRoom)
		rooms.PATCH("/:id", perm("inventory", "update"), h.UpdateRoom)
		rooms.DELETE("/:id", perm("inventory", "delete"), h.DeleteRoom)
	}
}
