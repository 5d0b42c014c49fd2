// Package read реализует HTTP-обработчик получения участника по ID.
//
// Handler извлекает ID из URL-параметров, вызывает бизнес-логику чтения
// и возвращает данные участника в JSON-формате.
package read

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/gymtrack/gymtrack/internal/http/response"
	"github.com/gymtrack/gymtrack/internal/lib/sl"
	"github.com/gymtrack/gymtrack/internal/models"
	memberservice "github.com/gymtrack/gymtrack/internal/services/member"
)

// Handler обрабатывает запросы на получение участника по уникальному идентификатору.
type Handler struct {
	log     *slog.Logger // Логгер для записи информации и ошибок
	service Service      // Сервис бизнес-логики чтения участника
}

// Service описывает интерфейс бизнес-логики чтения участника.
type Service interface {
	Read(ctx context.Context, id string) (*models.Member, error)
}

// New создает новый Handler с переданным логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Получить участника
// @Description Возвращает участника по его идентификатору.
// @Tags Members
// @Produce  json
// @Param id path string true "ID участника"
// @Success 200 {object} map[string]any "Данные участника"
// @Failure 404 {object} response.ErrorResponse "Участник не найден"
// @Router /members/{id} [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.member.read"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id := chi.URLParam(r, "id")

	res, err := h.service.Read(r.Context(), id)
	if err != nil {
		if errors.Is(err, memberservice.ErrMemberNotFound) {
			log.Error("member not found", slog.String("id", id))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("member not found"))
			return
		}
		log.Error("failed to read member", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not read member"))
		return
	}

	log.Info("success to read member", slog.String("id", id))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"member": res,
	}))
}
