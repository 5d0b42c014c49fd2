// Package assignplan реализует HTTP-обработчик назначения нового абонемента.
//
// Прежний абонемент участника отбрасывается, выпускается новый с сегодняшней
// датой начала, статус членства принудительно становится active.
package assignplan

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/gymtrack/gymtrack/internal/http/response"
	"github.com/gymtrack/gymtrack/internal/lib/sl"
	"github.com/gymtrack/gymtrack/internal/models"
	memberservice "github.com/gymtrack/gymtrack/internal/services/member"
)

// Handler управляет HTTP-запросами на назначение абонемента.
type Handler struct {
	log      *slog.Logger        // Логгер для записи информации и ошибок
	service  Service             // Сервис бизнес-логики назначения
	validate *validator.Validate // Валидатор структуры входящих данных
}

// Service описывает интерфейс бизнес-логики назначения абонемента.
type Service interface {
	AssignPlan(ctx context.Context, id, planTypeID string) error
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Назначить абонемент
// @Description Выпускает участнику новый абонемент по тарифу из каталога и реактивирует членство.
// @Tags Members
// @Accept  json
// @Produce  json
// @Param id path string true "ID участника"
// @Param request body models.DummyAssignPlan true "Идентификатор тарифа"
// @Success 200 {object} response.Response "Абонемент назначен"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON"
// @Failure 404 {object} response.ErrorResponse "Участник не найден"
// @Failure 422 {object} response.ErrorResponse "Неизвестный тариф или ошибка валидации"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера при назначении"
// @Router /members/{id}/plan [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.member.assignplan"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id := chi.URLParam(r, "id")

	var req models.DummyAssignPlan
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusUnprocessableEntity)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	if err := h.service.AssignPlan(r.Context(), id, req.PlanTypeID); err != nil {
		switch {
		case errors.Is(err, memberservice.ErrMemberNotFound):
			log.Error("member not found", slog.String("id", id))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("member not found"))
		case errors.Is(err, memberservice.ErrInvalidPlan):
			log.Error("unknown plan type", sl.Err(err))
			w.WriteHeader(http.StatusUnprocessableEntity)
			render.JSON(w, r, response.Error("unknown plan type"))
		default:
			log.Error("failed to assign plan", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error("could not assign plan"))
		}
		return
	}

	log.Info("success to assign plan",
		slog.String("id", id), slog.String("plan_type", req.PlanTypeID))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"id":           id,
		"plan_type_id": req.PlanTypeID,
	}))
}
