// Package metrics expone los contadores Prometheus de la aplicación.
package metrics

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// MovementsTotal movimientos registrados en el diario, por tipo.
	MovementsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "farmacia",
		Name:      "stock_movements_total",
		Help:      "Movimientos de stock registrados, por tipo.",
	}, []string{"type"})

	// BatchesCreated lotes dados de alta.
	BatchesCreated = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "farmacia",
		Name:      "batches_created_total",
		Help:      "Lotes registrados en el inventario.",
	})

	// LoginsTotal intentos de autenticación, por resultado.
	LoginsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "farmacia",
		Name:      "logins_total",
		Help:      "Intentos de inicio de sesión, por resultado.",
	}, []string{"result"})

	// ExportsTotal exportaciones de tablas servidas, por formato.
	ExportsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "farmacia",
		Name:      "table_exports_total",
		Help:      "Exportaciones de tablas generadas, por formato.",
	}, []string{"format"})
)

// Handler adapta el handler estándar de Prometheus a Fiber.
func Handler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.Handler())
}
