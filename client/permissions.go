package client

// PermissionMap maps a resource name to the actions the user may perform on
// it. The slice is membership-only: order carries no meaning. A resource
// absent from the map grants nothing.
type PermissionMap map[string][]string

// Permission is one (resource, action) pair, used for any-of checks.
type Permission struct {
	Resource string
	Action   string
}

// Allows reports whether the map grants action on resource. A nil map
// denies everything and never panics.
func (m PermissionMap) Allows(resource, action string) bool {
	for _, a := range m[resource] {
		if a == action {
			return true
		}
	}
	return false
}

// Clone deep-copies the map so the caller owns independently mutable
// action slices.
func (m PermissionMap) Clone() PermissionMap {
	if m == nil {
		return nil
	}
	out := make(PermissionMap, len(m))
	for resource, actions := range m {
		out[resource] = append([]string(nil), actions...)
	}
	return out
}

// Can reports whether the current session grants action on resource.
// Without a session it is false for every query.
func (c *Client) Can(resource, action string) bool {
	s := c.Session()
	if s == nil {
		return false
	}
	return s.Permissions.Allows(resource, action)
}

// CanAny reports whether the session grants at least one of the given
// pairs, short-circuiting on the first match. Used to decide visibility of
// whole sections where several actions each justify access.
func (c *Client) CanAny(pairs ...Permission) bool {
	for _, p := range pairs {
		if c.Can(p.Resource, p.Action) {
			return true
		}
	}
	return false
}
