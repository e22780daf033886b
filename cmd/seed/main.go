// seed puebla la base con los catálogos iniciales de la farmacia:
// proveedores, motivos de movimiento, medicamentos y el usuario admin.
//
// Uso: go run ./cmd/seed
// Idempotente: los registros que ya existen (por código o email) se omiten.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Farmacia-api/internal/domain/entity"
	"github.com/jhoicas/Farmacia-api/internal/domain/policy"
	"github.com/jhoicas/Farmacia-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Farmacia-api/pkg/config"
)

var suppliers = []string{"Pharma Inc", "MediCorp", "AllergyCare", "DiabeCare", "CardioMed", "RespiCare"}

var reasons = []struct{ code, description string }{
	{"ADJ", "Ajuste de stock"},
	{"DEV", "Devolución"},
	{"PER", "Pérdida"},
	{"VEN", "Vencimiento"},
	{"DOA", "Donación"},
}

var medications = []struct {
	code, name, category, supplier string
	reorderLevel                   int64
}{
	{"MED001", "Paracetamol 500mg", "Analgesic", "Pharma Inc", 100},
	{"MED002", "Amoxicillin 250mg", "Antibiotic", "MediCorp", 50},
	{"MED003", "Omeprazole 20mg", "Antacid", "Pharma Inc", 40},
	{"MED004", "Loratadine 10mg", "Antihistamine", "AllergyCare", 30},
	{"MED005", "Simvastatin 20mg", "Cholesterol", "MediCorp", 25},
	{"MED006", "Metformin 500mg", "Diabetes", "DiabeCare", 60},
	{"MED007", "Atorvastatin 10mg", "Cholesterol", "MediCorp", 35},
	{"MED008", "Ibuprofen 400mg", "Analgesic", "Pharma Inc", 80},
	{"MED009", "Salbutamol Inhaler", "Respiratory", "RespiCare", 20},
	{"MED010", "Amlodipine 5mg", "Cardiovascular", "CardioMed", 45},
	{"MED011", "Diazepam 5mg", "Anxiolytic", "MediCorp", 15},
	{"MED012", "Ciprofloxacin 500mg", "Antibiotic", "Pharma Inc", 40},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fail("cargar configuración: %v", err)
	}
	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fail("conexión a PostgreSQL: %v", err)
	}
	defer pool.Close()

	now := time.Now()

	supplierRepo := postgres.NewSupplierRepository(pool)
	existing, err := supplierRepo.List()
	if err != nil {
		fail("listar proveedores: %v", err)
	}
	haveSupplier := make(map[string]bool, len(existing))
	for _, s := range existing {
		haveSupplier[s.Name] = true
	}
	for _, name := range suppliers {
		if haveSupplier[name] {
			continue
		}
		s := &entity.Supplier{ID: uuid.New().String(), Name: name, Active: true, CreatedAt: now, UpdatedAt: now}
		if err := supplierRepo.Create(s); err != nil {
			fail("crear proveedor %q: %v", name, err)
		}
		fmt.Printf("proveedor creado: %s\n", name)
	}

	reasonRepo := postgres.NewReasonRepository(pool)
	existingReasons, err := reasonRepo.List()
	if err != nil {
		fail("listar motivos: %v", err)
	}
	haveReason := make(map[string]bool, len(existingReasons))
	for _, r := range existingReasons {
		haveReason[r.Code] = true
	}
	for _, r := range reasons {
		if haveReason[r.code] {
			continue
		}
		reason := &entity.Reason{ID: uuid.New().String(), Code: r.code, Description: r.description, Active: true, CreatedAt: now, UpdatedAt: now}
		if err := reasonRepo.Create(reason); err != nil {
			fail("crear motivo %q: %v", r.code, err)
		}
		fmt.Printf("motivo creado: %s (%s)\n", r.code, r.description)
	}

	medicationRepo := postgres.NewMedicationRepository(pool)
	for _, m := range medications {
		if existing, err := medicationRepo.GetByCode(m.code); err == nil && existing != nil {
			continue
		}
		med := &entity.Medication{
			ID:           uuid.New().String(),
			Code:         m.code,
			Name:         m.name,
			Category:     m.category,
			Supplier:     m.supplier,
			ReorderLevel: m.reorderLevel,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if err := medicationRepo.Create(med); err != nil {
			fail("crear medicamento %q: %v", m.code, err)
		}
		fmt.Printf("medicamento creado: %s %s\n", m.code, m.name)
	}

	userRepo := postgres.NewUserRepository(pool)
	adminEmail := envOr("SEED_ADMIN_EMAIL", "admin@farmacia.local")
	if u, err := userRepo.FindByEmail(adminEmail); err == nil && u != nil {
		fmt.Println("admin ya existe, nada que hacer")
		return
	}
	password := envOr("SEED_ADMIN_PASSWORD", "admin1234")
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		fail("hashear password: %v", err)
	}
	admin := &entity.User{
		ID:           uuid.New().String(),
		Username:     "admin",
		FullName:     "Administrador",
		Email:        adminEmail,
		PasswordHash: string(hash),
		Role:         entity.RoleAdmin,
		Permissions:  policy.PermissionsForRole(entity.RoleAdmin),
		Status:       entity.UserActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := userRepo.Create(admin); err != nil {
		fail("crear admin: %v", err)
	}
	fmt.Printf("admin creado: %s\n", adminEmail)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
