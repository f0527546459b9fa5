package domain

// Principal is the ephemeral identity derived from an Account after a
// successful authentication. It carries no credential material and is never
// persisted.
type Principal struct {
	Username string `json:"username"`
	Role     Role   `json:"role"`
}

// RouteClass is a declared sensitivity tier for a group of routes.
type RouteClass string

const (
	// RoutePublic routes (login, registration, health, docs) are reachable
	// by anyone, including anonymous callers.
	RoutePublic RouteClass = "public"
	// RouteAuthenticated routes require any valid principal.
	RouteAuthenticated RouteClass = "authenticated"
	// RouteAdminOnly routes require the ADMIN role.
	RouteAdminOnly RouteClass = "admin_only"
)

// Decide reports whether a caller holding principal p (nil for anonymous)
// may access routes of the given class. ADMIN implies the access USER has
// on authenticated routes, but USER never gains admin access.
func Decide(p *Principal, class RouteClass) bool {
	switch class {
	case RoutePublic:
		return true
	case RouteAuthenticated:
		return p != nil
	case RouteAdminOnly:
		return p != nil && p.Role == RoleAdmin
	default:
		return false
	}
}
