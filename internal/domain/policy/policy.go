// Package policy define la tabla fija rol→permisos y el chequeo de membresía
// que protege toda ruta mutadora. El chequeo se evalúa en el servidor (middleware
// HTTP); el cliente puede usarlo solo como ayuda de UI, nunca como barrera real.
package policy

import (
	"strings"

	"github.com/jhoicas/Farmacia-api/internal/domain/entity"
)

// Permisos con namespace por punto.
const (
	PermUsersManage       = "users.manage"
	PermMedicationsManage = "medications.manage"
	PermMedicationsView   = "medications.view"
	PermBatchesManage     = "batches.manage"
	PermBatchesView       = "batches.view"
	PermInventoryManage   = "inventory.manage"
	PermInventoryView     = "inventory.view"
	PermReportsView       = "reports.view"
)

// PermissionsForRole devuelve el conjunto de permisos por defecto de un rol.
// Roles desconocidos (incluido "user") no reciben ningún permiso.
func PermissionsForRole(role string) []string {
	switch role {
	case entity.RoleAdmin:
		return []string{PermUsersManage, PermMedicationsManage, PermBatchesManage, PermInventoryManage, PermReportsView}
	case entity.RolePharmacist:
		return []string{PermMedicationsManage, PermBatchesManage, PermInventoryManage, PermReportsView}
	case entity.RoleAssistant:
		return []string{PermMedicationsView, PermBatchesView, PermInventoryView}
	default:
		return nil
	}
}

// HasPermission evalúa role == admin OR permission ∈ permissions.
// El override de admin aplica a cualquier string, incluso permisos desconocidos.
// Dentro de un namespace, manage implica view.
func HasPermission(role string, permissions []string, permission string) bool {
	if role == entity.RoleAdmin {
		return true
	}
	for _, p := range permissions {
		if p == permission {
			return true
		}
	}
	if ns, ok := strings.CutSuffix(permission, ".view"); ok {
		for _, p := range permissions {
			if p == ns+".manage" {
				return true
			}
		}
	}
	return false
}
