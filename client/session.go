package client

import (
	"context"
	"encoding/json"
	"net/http"
	"time"
)

// HotelSummary is one hotel the user belongs to.
type HotelSummary struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Timezone string  `json:"timezone"`
	Photo    *string `json:"photo"`
}

// MemberSummary is the user's membership in the active hotel.
type MemberSummary struct {
	UserID   string    `json:"userId"`
	HotelID  string    `json:"hotelId"`
	Role     string    `json:"role"`
	JoinedAt time.Time `json:"joinedAt"`
}

// Session is the bootstrap document: the user, their hotels, the active
// scope and the permissions their role grants there. It is replaced
// wholesale on every load, never merged.
type Session struct {
	User         User           `json:"user"`
	Hotels       []HotelSummary `json:"hotels"`
	ActiveHotel  *HotelSummary  `json:"activeHotel"`
	ActiveMember *MemberSummary `json:"activeMember"`
	Permissions  PermissionMap  `json:"permissions"`
}

// LoadSession issues one credentialed session fetch and stores the result.
// A 401 is a normal "signed out" outcome: the snapshot is cleared and no
// error is returned. Any other failure also clears the snapshot but is
// surfaced to the caller. The fetch is never retried automatically.
func (c *Client) LoadSession(ctx context.Context) (*Session, error) {
	c.sessionMu.Lock()
	c.loading = true
	c.sessionMu.Unlock()

	env, err := c.do(ctx, http.MethodGet, c.cfg.APIURL+"/api/v1/session", nil, "failed to load session")
	if err != nil {
		c.storeSession(nil)
		if IsUnauthorized(err) {
			return nil, nil
		}
		return nil, err
	}

	var s Session
	if err := json.Unmarshal(env.Data, &s); err != nil {
		c.storeSession(nil)
		return nil, err
	}

	// Own the permission payload: callers may mutate the snapshot's action
	// slices without reaching back into decoder-shared state.
	s.Permissions = s.Permissions.Clone()

	c.storeSession(&s)
	return c.Session(), nil
}

// storeSession is the single write point for the snapshot: every load
// resolution passes through here exactly once.
func (c *Client) storeSession(s *Session) {
	c.sessionMu.Lock()
	c.session = s
	c.loading = false
	c.sessionMu.Unlock()
}

// Session returns the current snapshot, or nil when signed out.
func (c *Client) Session() *Session {
	c.sessionMu.Lock()
	defer c.sessionMu.Unlock()
	return c.session
}

// SessionLoading reports whether a session fetch is in flight.
func (c *Client) SessionLoading() bool {
	c.sessionMu.Lock()
	defer c.sessionMu.Unlock()
	return c.loading
}

// HasActiveHotel reports whether the snapshot carries a tenant scope.
// Hotel-scoped queries do not fetch without one.
func (c *Client) HasActiveHotel() bool {
	c.sessionMu.Lock()
	defer c.sessionMu.Unlock()
	return c.session != nil && c.session.ActiveHotel != nil
}

type setActiveHotelRequest struct {
	HotelID string `json:"hotelId"`
}

// SetActiveHotel switches the tenant scope server-side and stores the
// refreshed session document the server returns. The cache is cleared
// because every hotel-scoped entry now answers for the wrong tenant.
func (c *Client) SetActiveHotel(ctx context.Context, hotelID string) (*Session, error) {
	env, err := c.do(ctx, http.MethodPost, c.cfg.APIURL+"/api/v1/session/active-hotel",
		setActiveHotelRequest{HotelID: hotelID}, "failed to switch hotel")
	if err != nil {
		return nil, err
	}

	var s Session
	if err := json.Unmarshal(env.Data, &s); err != nil {
		return nil, err
	}
	s.Permissions = s.Permissions.Clone()

	c.storeSession(&s)
	c.cache.Clear()
	return c.Session(), nil
}
