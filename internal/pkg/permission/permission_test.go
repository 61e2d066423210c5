package permission

import (
	"testing"

	"oficina/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestHasPermission_UnknownRoleDeniesEverything(t *testing.T) {
	assert.False(t, HasPermission("", "/dashboard"))
	assert.False(t, HasPermission("INTRUSO", "/os"))
	assert.False(t, HasPermission("", "/minhas-os"))
}

func TestHasPermission_ManagerOwnsEveryPrefix(t *testing.T) {
	for _, path := range Routes(domain.RoleGerente) {
		assert.True(t, HasPermission(domain.RoleGerente, path), path)
	}
}

func TestHasPermission_PrefixMatching(t *testing.T) {
	assert.True(t, HasPermission(domain.RoleGerente, "/os/123"))
	assert.True(t, HasPermission(domain.RoleGerente, "/os"))

	// "/osx" must not match the "/os" prefix
	assert.False(t, HasPermission(domain.RoleGerente, "/osx"))
	assert.False(t, HasPermission(domain.RoleConsultorGarantia, "/frota"))
	assert.False(t, HasPermission(domain.RoleTecnico, "/dashboard"))
	assert.True(t, HasPermission(domain.RoleTecnico, "/minhas-os/42"))
}

func TestDefaultRoute_FallsBackToTechnicianLanding(t *testing.T) {
	route := DefaultRoute("")
	assert.NotEmpty(t, route)
	assert.True(t, HasPermission(domain.RoleTecnico, route))

	assert.Equal(t, "/dashboard", DefaultRoute(domain.RoleGerente))
	assert.Equal(t, "/minhas-os", DefaultRoute(domain.RoleTecnico))
}

func TestRoutes_UnknownRoleHasNone(t *testing.T) {
	assert.Nil(t, Routes("QUALQUER"))
}
