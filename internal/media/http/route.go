package http

import (
	"github.com/gin-gonic/gin"
)

// PermissionFactory builds a middleware checking one (resource, action) pair.
type PermissionFactory func(resource, action string) gin.HandlerFunc

func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware gin.HandlerFunc, perm PermissionFactory) {
	group := g.Group("/media")
	group.Use(authMiddleware)
	{
		group.POST("/hotels/:id/photo", perm("organization", "update"), h.UploadHotelPhoto)
		group.POST("/rooms/:id/photo", perm("inventory", "update"), h.UploadRoomPhoto)
		group.GET("/photos/:id", h.Download)
		group.GET("/photos/:id/thumbnail", h.DownloadThumbnail)
	}
}
