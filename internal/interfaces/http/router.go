package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Farmacia-api/internal/application/analytics"
	"github.com/jhoicas/Farmacia-api/internal/application/auth"
	"github.com/jhoicas/Farmacia-api/internal/application/inventory"
	"github.com/jhoicas/Farmacia-api/internal/application/usecase"
	"github.com/jhoicas/Farmacia-api/internal/domain/policy"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC           *auth.AuthUseCase
	MedicationUC     *usecase.MedicationUseCase
	BatchUC          *inventory.BatchUseCase
	RegisterMovement *inventory.RegisterMovementUseCase
	MovementQuery    *inventory.MovementQueryUseCase
	ReferenceUC      *usecase.ReferenceUseCase
	UserUC           *usecase.UserUseCase
	DashboardUC      *analytics.DashboardUseCase
	Exporters        Exporters
	JWTSecret        string
}

// Router registra las rutas de la API. Todo lo que no es login exige Bearer
// Token; las mutaciones exigen además el permiso del recurso.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (login público, /me protegido)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)

	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	protected.Get("/auth/me", authHandler.Me)

	// Medicamentos
	medications := protected.Group("/medications")
	medicationHandler := NewMedicationHandler(deps.MedicationUC, deps.Exporters)
	medications.Get("/", RequirePermission(policy.PermMedicationsView), medicationHandler.List)
	medications.Get("/:id", RequirePermission(policy.PermMedicationsView), medicationHandler.GetByID)
	medications.Post("/", RequirePermission(policy.PermMedicationsManage), medicationHandler.Create)
	medications.Put("/:id", RequirePermission(policy.PermMedicationsManage), medicationHandler.Update)
	medications.Delete("/:id", RequirePermission(policy.PermMedicationsManage), medicationHandler.Delete)

	// Lotes
	batches := protected.Group("/batches")
	batchHandler := NewBatchHandler(deps.BatchUC, deps.MedicationUC, deps.Exporters)
	batches.Get("/", RequirePermission(policy.PermBatchesView), batchHandler.List)
	batches.Get("/:id", RequirePermission(policy.PermBatchesView), batchHandler.GetByID)
	batches.Post("/", RequirePermission(policy.PermBatchesManage), batchHandler.Create)
	batches.Put("/:id", RequirePermission(policy.PermBatchesManage), batchHandler.Update)
	batches.Delete("/:id", RequirePermission(policy.PermBatchesManage), batchHandler.Deactivate)
	medications.Get("/:id/batches", RequirePermission(policy.PermBatchesView), batchHandler.ListByMedication)

	// Diario de movimientos
	invGroup := protected.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.RegisterMovement, deps.MovementQuery, deps.BatchUC, deps.MedicationUC, deps.Exporters)
	invGroup.Post("/movements", RequirePermission(policy.PermInventoryManage), inventoryHandler.RegisterMovement)
	invGroup.Get("/movements", RequirePermission(policy.PermInventoryView), inventoryHandler.ListMovements)
	batches.Get("/:id/movements", RequirePermission(policy.PermInventoryView), inventoryHandler.BatchHistory)
	medications.Get("/:id/movements", RequirePermission(policy.PermInventoryView), inventoryHandler.MedicationHistory)

	// Catálogos auxiliares
	referenceHandler := NewReferenceHandler(deps.ReferenceUC)
	suppliers := protected.Group("/suppliers")
	suppliers.Get("/", RequirePermission(policy.PermInventoryView), referenceHandler.ListSuppliers)
	suppliers.Post("/", RequirePermission(policy.PermInventoryManage), referenceHandler.CreateSupplier)
	suppliers.Put("/:id", RequirePermission(policy.PermInventoryManage), referenceHandler.UpdateSupplier)
	suppliers.Delete("/:id", RequirePermission(policy.PermInventoryManage), referenceHandler.DeleteSupplier)
	reasons := protected.Group("/reasons")
	reasons.Get("/", RequirePermission(policy.PermInventoryView), referenceHandler.ListReasons)
	reasons.Post("/", RequirePermission(policy.PermInventoryManage), referenceHandler.CreateReason)
	reasons.Put("/:id", RequirePermission(policy.PermInventoryManage), referenceHandler.UpdateReason)
	reasons.Delete("/:id", RequirePermission(policy.PermInventoryManage), referenceHandler.DeleteReason)

	// Usuarios (solo users.manage; el admin pasa por override)
	users := protected.Group("/users", RequirePermission(policy.PermUsersManage))
	userHandler := NewUserHandler(deps.UserUC, deps.Exporters)
	users.Get("/", userHandler.List)
	users.Get("/:id", userHandler.GetByID)
	users.Post("/", userHandler.Create)
	users.Put("/:id", userHandler.Update)
	users.Delete("/:id", userHandler.Delete)
	users.Patch("/:id/toggle-status", userHandler.ToggleStatus)

	// Dashboard
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard/summary", RequirePermission(policy.PermReportsView), dashboardHandler.GetSummary)
}
