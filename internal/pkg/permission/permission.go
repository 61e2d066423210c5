package permission

import (
	"strings"

	"oficina/internal/domain"
)

// allowedRoutes maps each role to the dashboard route prefixes it may open.
// Matching is prefix based: a role that owns "/os" also owns "/os/123".
var allowedRoutes = map[domain.UserRole][]string{
	domain.RoleGerente: {
		"/dashboard",
		"/os",
		"/garantia",
		"/compras",
		"/frota",
		"/pendencias",
		"/alertas",
		"/relatorios",
		"/tecnicos",
	},
	domain.RoleConsultorGarantia: {
		"/dashboard",
		"/os",
		"/garantia",
		"/pendencias",
		"/alertas",
	},
	domain.RoleConsultorVendas: {
		"/dashboard",
		"/os",
		"/compras",
		"/pendencias",
		"/alertas",
	},
	domain.RoleTecnico: {
		"/minhas-os",
		"/frota",
	},
}

// defaultRoutes is each role's landing page after login or after a denied
// navigation.
var defaultRoutes = map[domain.UserRole]string{
	domain.RoleGerente:           "/dashboard",
	domain.RoleConsultorGarantia: "/garantia",
	domain.RoleConsultorVendas:   "/os",
	domain.RoleTecnico:           "/minhas-os",
}

// HasPermission reports whether the role may open the given route path.
// An unknown or empty role is denied everything.
func HasPermission(role domain.UserRole, path string) bool {
	prefixes, ok := allowedRoutes[role]
	if !ok {
		return false
	}
	for _, p := range prefixes {
		if path == p || strings.HasPrefix(path, p+"/") {
			return true
		}
	}
	return false
}

// DefaultRoute resolves the landing route for a role. Unknown roles fall
// back to the technician landing page, the least privileged one.
func DefaultRoute(role domain.UserRole) string {
	if r, ok := defaultRoutes[role]; ok {
		return r
	}
	return defaultRoutes[domain.RoleTecnico]
}

// Routes returns a copy of the allowed prefixes for a role. Used by the
// frontend bootstrap payload to build the navigation menu.
func Routes(role domain.UserRole) []string {
	prefixes, ok := allowedRoutes[role]
	if !ok {
		return nil
	}
	out := make([]string, len(prefixes))
	copy(out, prefixes)
	return out
}
