// Package list реализует HTTP-обработчик получения списка участников.
//
// Список возвращается в порядке регистрации; поддерживаются необязательный
// фильтр по статусу (?status=) и подстрочный поиск по имени и почте (?q=).
package list

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/gymtrack/gymtrack/internal/http/response"
	"github.com/gymtrack/gymtrack/internal/lib/sl"
	"github.com/gymtrack/gymtrack/internal/models"
	memberservice "github.com/gymtrack/gymtrack/internal/services/member"
)

// Handler управляет HTTP-запросами на получение списка участников.
type Handler struct {
	log     *slog.Logger // Логгер для записи информации и ошибок
	service Service      // Сервис бизнес-логики списка
}

// Service описывает интерфейс бизнес-логики получения списка.
type Service interface {
	List(ctx context.Context, status, query string) ([]models.Member, error)
}

// New создает новый Handler с переданным логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Список участников
// @Description Возвращает участников в порядке регистрации с фильтром по статусу и поиском.
// @Tags Members
// @Produce  json
// @Param status query string false "Фильтр по статусу (active|expired|suspended)"
// @Param q query string false "Поиск по имени или почте"
// @Success 200 {object} map[string]any "Список участников"
// @Failure 400 {object} response.ErrorResponse "Некорректный статус в фильтре"
// @Router /members [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.member.list"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	status := r.URL.Query().Get("status")
	query := r.URL.Query().Get("q")

	members, err := h.service.List(r.Context(), status, query)
	if err != nil {
		if errors.Is(err, memberservice.ErrInvalidStatus) {
			log.Error("invalid status filter", sl.Status(status))
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid status filter"))
			return
		}
		log.Error("failed to list members", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not list members"))
		return
	}

	log.Info("success to list members", slog.Int("count", len(members)))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"members": members,
	}))
}
