package policy_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Farmacia-api/internal/domain/entity"
	"github.com/jhoicas/Farmacia-api/internal/domain/policy"
)

func TestHasPermission_AdminPasaSiempre(t *testing.T) {
	// El override de admin aplica incluso a permisos desconocidos y con lista vacía
	assert.True(t, policy.HasPermission(entity.RoleAdmin, nil, policy.PermUsersManage))
	assert.True(t, policy.HasPermission(entity.RoleAdmin, nil, "permiso.inexistente"))
}

func TestHasPermission_MembresiaExacta(t *testing.T) {
	perms := []string{policy.PermBatchesManage, policy.PermReportsView}
	assert.True(t, policy.HasPermission(entity.RolePharmacist, perms, policy.PermBatchesManage))
	assert.False(t, policy.HasPermission(entity.RolePharmacist, perms, policy.PermUsersManage))
}

func TestHasPermission_ManageImplicaView(t *testing.T) {
	perms := []string{policy.PermMedicationsManage}
	assert.True(t, policy.HasPermission(entity.RolePharmacist, perms, policy.PermMedicationsView),
		"manage debe implicar view dentro del mismo namespace")
	assert.False(t, policy.HasPermission(entity.RolePharmacist, perms, policy.PermBatchesView))
}

func TestHasPermission_ViewNoImplicaManage(t *testing.T) {
	perms := []string{policy.PermBatchesView}
	assert.False(t, policy.HasPermission(entity.RoleAssistant, perms, policy.PermBatchesManage))
}

func TestPermissionsForRole(t *testing.T) {
	assert.Contains(t, policy.PermissionsForRole(entity.RoleAdmin), policy.PermUsersManage)
	assert.NotContains(t, policy.PermissionsForRole(entity.RolePharmacist), policy.PermUsersManage,
		"el farmacéutico no administra usuarios")
	assert.Contains(t, policy.PermissionsForRole(entity.RoleAssistant), policy.PermBatchesView)
	assert.Empty(t, policy.PermissionsForRole("rol-desconocido"))
	assert.Empty(t, policy.PermissionsForRole(entity.RoleUser))
}
