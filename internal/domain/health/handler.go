package health

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

// Greeting es la respuesta de GET /.
const Greeting = "API de perros funcionando. Usa /catalog para ver razas."

type Status struct {
	Status    string    `json:"status" example:"Healthy"`
	Timestamp time.Time `json:"timestamp"`
	Database  bool      `json:"database"`
}

// Handler responde liveness. Database refleja solo si hay connection string
// configurado, no si la base responde.
type Handler struct {
	databaseConfigured bool
	now                func() time.Time
}

func NewHandler(databaseConfigured bool) *Handler {
	return &Handler{
		databaseConfigured: databaseConfigured,
		now:                time.Now,
	}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.root)
	r.Get("/health", h.health)
}

// root godoc
// @Summary      Saludo
// @Tags         health
// @Produce      plain
// @Success      200  {string}  string
// @Router       / [get]
func (h *Handler) root(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(Greeting))
}

// health godoc
// @Summary      Health check
// @Tags         health
// @Produce      json
// @Success      200  {object}  health.Status
// @Router       /health [get]
func (h *Handler) health(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(Status{
		Status:    "Healthy",
		Timestamp: h.now().UTC(),
		Database:  h.databaseConfigured,
	})
}
