// Package catalog реализует HTTP-обработчик чтения каталога тарифов.
// Каталог — неизменяемые справочные данные, порядок записей стабилен.
package catalog

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/gymtrack/gymtrack/internal/http/response"
	"github.com/gymtrack/gymtrack/internal/models"
)

// Handler отдаёт каталог тарифов.
type Handler struct {
	log *slog.Logger
}

// New создает новый Handler с переданным логгером.
func New(log *slog.Logger) *Handler {
	return &Handler{log: log}
}

// ServeHTTP godoc
// @Summary Каталог тарифов
// @Description Возвращает все тарифы в порядке объявления.
// @Tags Plans
// @Produce  json
// @Success 200 {object} map[string]any "Каталог тарифов"
// @Router /plans [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.member.catalog"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	log.Info("success to list plan types", slog.Int("count", len(models.PlanTypes)))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"plan_types": models.PlanTypes,
	}))
}
