package http

import (
	"github.com/gin-gonic/gin"
)

// PermissionFactory builds a middleware checking one (resource, action) pair.
// The api package supplies it so this package stays free of service wiring.
type PermissionFactory func(resource, action string) gin.HandlerFunc

func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware gin.HandlerFunc, perm PermissionFactory) {
	group := g.Group("/hotels")
	group.Use(authMiddleware)
	{
		group.GET("", h.List)
		group.POST("", h.Create)
		group.GET("/:hotelID", perm("organization", "read"), h.Get)
		group.PATCH("/:hotelID", perm("organization", "update"), h.Update)
		group.DELETE("/:hotelID", perm("organization", "delete"), h.Delete)

		group.GET("/:hotelID/members", perm("member", "read"), h.ListMembers)
		group.PATCH("/:hotelID/members/:userID", perm("member", "update"), h.UpdateMember)
		group.DELETE("/:hotelID/members/:userID", perm("member", "delete"), h.RemoveMember)

		group.POST("/:hotelID/invitations", perm("invitation", "create"), h.Invite)
		group.GET("/:hotelID/invitations", perm("invitation", "read"), h.ListInvitations)
		group.DELETE("/:hotelID/invitations/:invitationID", perm("invitation", "delete"), h.RevokeInvitation)
	}

	invitations := g.Group("/invitations")
	invitations.Use(authMiddleware)
	{
		invitations.POST("/:invitationID/accept", h.AcceptInvitation)
	}
}
