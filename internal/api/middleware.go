package api

import (
	"net/http"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/veranolabs/hotel-admin-backend/internal/audit"
	"github.com/veranolabs/hotel-admin-backend/internal/auth"
	"github.com/veranolabs/hotel-admin-backend/internal/hotel"
	"github.com/veranolabs/hotel-admin-backend/internal/pkg/apperror"
	"github.com/veranolabs/hotel-admin-backend/internal/pkg/ids"
	"github.com/veranolabs/hotel-admin-backend/internal/pkg/response"
	"github.com/veranolabs/hotel-admin-backend/internal/user"
)

var (
	errNoHotelScope = apperror.New(http.StatusBadRequest, "HOTEL_SCOPE_REQUIRED", "no hotel selected")
	errForbidden    = apperror.New(http.StatusForbidden, "PERMISSION_DENIED", "permission denied")
	errTooMany      = apperror.New(http.StatusTooManyRequests, "RATE_LIMITED", "too many requests")
)

// RequestID stamps every request with a ULID, echoed in the envelope meta
// and the X-Request-Id header.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-Id")
		if id == "" {
			id = ids.New()
		}
		c.Set(response.RequestIDKey, id)
		c.Header("X-Request-Id", id)
		c.Next()
	}
}

// RequireSuperAdmin ensures the authenticated user is a super admin.
// It MUST be used after auth.AuthRequired middleware.
func RequireSuperAdmin(userService user.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := auth.GetUserID(c)
		if userID == "" {
			response.AbortError(c, apperror.New(http.StatusUnauthorized, "UNAUTHENTICATED", "authentication required"))
			return
		}

		u, err := userService.GetByID(c.Request.Context(), userID)
		if err != nil {
			response.AbortError(c, apperror.New(http.StatusUnauthorized, "UNAUTHENTICATED", "user not found"))
			return
		}

		if !u.IsSuperAdmin {
			response.AbortError(c, errForbidden)
			return
		}

		c.Next()
	}
}

// RequirePermission resolves the request's hotel scope and checks that the
// caller's role grants the given action on the resource. The scope comes from
// the hotel_id query parameter, falling back to the user's active hotel.
// Super admins bypass the membership check but still need a resolvable scope.
// On success the hotel ID is stored in the gin context for handlers.
//
// MUST be used after auth.AuthRequired middleware.
func RequirePermission(userService user.Service, hotelService hotel.Service, resource, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := auth.GetUserID(c)
		ctx := c.Request.Context()

		u, err := userService.GetByID(ctx, userID)
		if err != nil {
			response.AbortError(c, apperror.New(http.StatusUnauthorized, "UNAUTHENTICATED", "user not found"))
			return
		}

		hotelID := c.Query("hotel_id")
		if hotelID == "" {
			hotelID = c.Param("hotelID")
		}
		if hotelID == "" && u.ActiveHotelID != nil {
			hotelID = *u.ActiveHotelID
		}
		if hotelID == "" {
			response.AbortError(c, errNoHotelScope)
			return
		}

		if u.IsSuperAdmin {
			c.Set("hotelID", hotelID)
			c.Next()
			return
		}

		perms, member, err := hotelService.PermissionsFor(ctx, hotelID, userID)
		if err != nil {
			response.AbortError(c, err)
			return
		}
		if !hotel.Allowed(perms, resource, action) {
			response.AbortError(c, errForbidden)
			return
		}

		c.Set("hotelID", hotelID)
		c.Set("memberRole", member.Role)
		c.Next()
	}
}

// AuditTrail records every successful mutating request against its hotel
// scope. Reads and failed requests are not recorded. Runs after the handler,
// so it sees the final status and the scope set by RequirePermission.
func AuditTrail(auditService audit.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Request.Method == http.MethodGet {
			return
		}
		if c.Writer.Status() >= http.StatusBadRequest {
			return
		}

		hotelID := auth.GetHotelID(c)
		userID := auth.GetUserID(c)
		if hotelID == "" || userID == "" {
			return
		}

		var entityID *string
		if id := c.Param("id"); id != "" {
			entityID = &id
		}

		route := c.FullPath()
		auditService.Record(c.Request.Context(), audit.RecordRequest{
			HotelID:    hotelID,
			ActorID:    userID,
			ActorEmail: auth.GetUserEmail(c),
			Action:     c.Request.Method + " " + route,
			EntityType: entityTypeFromRoute(route),
			EntityID:   entityID,
			Detail:     map[string]any{"status": c.Writer.Status()},
		})
	}
}

// entityTypeFromRoute extracts the resource segment of an /api/v1 route,
// e.g. "/api/v1/reservations/:id/cancel" yields "reservations".
func entityTypeFromRoute(route string) string {
	const prefix = "/api/v1/"
	if !strings.HasPrefix(route, prefix) {
		return ""
	}
	rest := route[len(prefix):]
	if i := strings.IndexByte(rest, '/'); i >= 0 {
		return rest[:i]
	}
	return rest
}

// RateLimit applies a per-client-IP token bucket, used on the auth endpoints
// to slow down credential stuffing.
func RateLimit(r rate.Limit, burst int) gin.HandlerFunc {
	var (
		mu       sync.Mutex
		limiters = make(map[string]*rate.Limiter)
	)

	limiterFor := func(ip string) *rate.Limiter {
		mu.Lock()
		defer mu.Unlock()
		l, ok := limiters[ip]
		if !ok {
			l = rate.NewLimiter(r, burst)
			limiters[ip] = l
		}
		return l
	}

	return func(c *gin.Context) {
		if !limiterFor(c.ClientIP()).Allow() {
			response.AbortError(c, errTooMany)
			return
		}
		c.Next()
	}
}
