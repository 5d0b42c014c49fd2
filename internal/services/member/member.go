// Package member содержит бизнес-логику учёта участников клуба:
// регистрацию, обновление анкеты, смену статуса, назначение абонементов
// и агрегированную статистику. Коллекция участников целиком живёт в памяти
// и сохраняется снимком в хранилище при каждой мутации.
package member

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/gymtrack/gymtrack/internal/events"
	"github.com/gymtrack/gymtrack/internal/lib/month"
	"github.com/gymtrack/gymtrack/internal/lib/sl"
	"github.com/gymtrack/gymtrack/internal/models"
)

var (
	// ErrInvalidPlan идентификатор тарифа не найден в каталоге.
	ErrInvalidPlan = errors.New("invalid plan type")
	// ErrMemberNotFound участник с таким ID отсутствует в коллекции.
	ErrMemberNotFound = errors.New("member not found")
	// ErrInvalidStatus статус вне перечисления active/expired/suspended.
	ErrInvalidStatus = errors.New("invalid membership status")
)

// SnapshotStore определяет методы хранилища снимков коллекции участников.
// Контракт: загрузка всей коллекции при старте, полная перезапись при каждой
// мутации, порядок записей сохраняется.
type SnapshotStore interface {
	// LoadMembers возвращает всю коллекцию в порядке вставки.
	LoadMembers(ctx context.Context) ([]models.Member, error)
	// SaveMembers перезаписывает коллекцию целиком.
	SaveMembers(ctx context.Context, members []models.Member) error
}

// Service реализует бизнес-логику учёта участников.
// Коллекция защищена RWMutex: чтение-изменение-сохранение выполняется
// под write-блокировкой, поэтому мутации не перемежаются.
type Service struct {
	mu        sync.RWMutex
	members   []models.Member
	store     SnapshotStore
	publisher events.Publisher
	log       *slog.Logger
}

// NewService загружает коллекцию из хранилища и создает сервис.
func NewService(ctx context.Context, store SnapshotStore, publisher events.Publisher, log *slog.Logger) (*Service, error) {
	const op = "services.member.NewService"
	members, err := store.LoadMembers(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	log.Info("loaded members collection", slog.Int("count", len(members)))
	return &Service{
		members:   members,
		store:     store,
		publisher: publisher,
		log:       log,
	}, nil
}

// mintPlan выпускает новый абонемент по записи каталога.
// Каждый вызов даёт свежий ID: абонементы между назначениями не переиспользуются.
func mintPlan(pt models.PlanType, today time.Time) models.Plan {
	start := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	end := month.Add(start, pt.Duration)
	return models.Plan{
		ID:        uuid.New().String(),
		Name:      pt.Name,
		Duration:  pt.Duration,
		Price:     pt.Price,
		StartDate: start.Format(models.DateLayout),
		EndDate:   end.Format(models.DateLayout),
	}
}

// Create регистрирует нового участника с абонементом из каталога.
// Новый участник получает статус active и добавляется в конец коллекции.
func (s *Service) Create(ctx context.Context, req models.DummyMember) (*models.Member, error) {
	const op = "services.member.Create"

	pt, ok := models.FindPlanType(req.PlanTypeID)
	if !ok {
		return nil, fmt.Errorf("%s: %w: %s", op, ErrInvalidPlan, req.PlanTypeID)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	today := time.Now()
	newMember := models.Member{
		ID:               uuid.New().String(),
		Name:             req.Name,
		Email:            req.Email,
		Phone:            req.Phone,
		BirthDate:        req.BirthDate,
		EmergencyContact: req.EmergencyContact,
		EmergencyPhone:   req.EmergencyPhone,
		Address:          req.Address,
		RegistrationDate: today.Format(models.DateLayout),
		Plan:             mintPlan(pt, today),
		Status:           models.StatusActive,
	}

	next := append(s.snapshot(), newMember)
	if err := s.store.SaveMembers(ctx, next); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	s.members = next

	s.log.Info("created new member",
		slog.String("id", newMember.ID),
		slog.String("plan_type", pt.ID))
	s.publish(events.MemberEvent{
		Type:       events.TypeMemberCreated,
		MemberID:   newMember.ID,
		Status:     string(newMember.Status),
		PlanTypeID: pt.ID,
		OccurredAt: today,
	})

	return &newMember, nil
}

// Update применяет частичное обновление анкеты: пустые поля запроса не трогаются.
// Для неизвестного ID возвращает ErrMemberNotFound.
func (s *Service) Update(ctx context.Context, id string, req models.DummyMemberUpdate) error {
	const op = "services.member.Update"

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return fmt.Errorf("%s: %w: %s", op, ErrMemberNotFound, id)
	}

	next := s.snapshot()
	merge(&next[idx], req)
	if err := s.store.SaveMembers(ctx, next); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	s.members = next

	s.log.Info("updated member", slog.String("id", id))
	s.publish(events.MemberEvent{
		Type:       events.TypeMemberUpdated,
		MemberID:   id,
		OccurredAt: time.Now(),
	})
	return nil
}

// Remove удаляет участника из коллекции и возвращает количество удалённых
// записей. Для неизвестного ID операция идемпотентна: возвращается 0 без ошибки,
// коллекция не меняется. Порядок остальных участников сохраняется.
func (s *Service) Remove(ctx context.Context, id string) (int, error) {
	const op = "services.member.Remove"

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return 0, nil
	}

	next := s.snapshot()
	next = append(next[:idx], next[idx+1:]...)
	if err := s.store.SaveMembers(ctx, next); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	s.members = next

	s.log.Info("removed member", slog.String("id", id))
	s.publish(events.MemberEvent{
		Type:       events.TypeMemberRemoved,
		MemberID:   id,
		OccurredAt: time.Now(),
	})
	return 1, nil
}

// Read возвращает участника по ID без обращения к хранилищу.
func (s *Service) Read(_ context.Context, id string) (*models.Member, error) {
	const op = "services.member.Read"

	s.mu.RLock()
	defer s.mu.RUnlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return nil, fmt.Errorf("%s: %w: %s", op, ErrMemberNotFound, id)
	}
	result := s.members[idx]
	return &result, nil
}

// List возвращает участников в порядке вставки. Необязательный фильтр по
// статусу и подстрочный поиск по имени и почте без учёта регистра.
func (s *Service) List(_ context.Context, status, query string) ([]models.Member, error) {
	const op = "services.member.List"

	if status != "" && !models.MembershipStatus(status).Valid() {
		return nil, fmt.Errorf("%s: %w: %s", op, ErrInvalidStatus, status)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]models.Member, 0, len(s.members))
	for _, m := range s.members {
		if status != "" && m.Status != models.MembershipStatus(status) {
			continue
		}
		if query != "" && !matchesQuery(m, query) {
			continue
		}
		result = append(result, m)
	}
	return result, nil
}

// UpdateStatus выставляет участнику новый статус вручную.
// Статусы не пересчитываются автоматически по дате окончания абонемента.
func (s *Service) UpdateStatus(ctx context.Context, id string, status models.MembershipStatus) error {
	const op = "services.member.UpdateStatus"

	if !status.Valid() {
		return fmt.Errorf("%s: %w: %s", op, ErrInvalidStatus, status)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return fmt.Errorf("%s: %w: %s", op, ErrMemberNotFound, id)
	}

	next := s.snapshot()
	next[idx].Status = status
	if err := s.store.SaveMembers(ctx, next); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	s.members = next

	s.log.Info("updated member status",
		slog.String("id", id), sl.Status(string(status)))
	s.publish(events.MemberEvent{
		Type:       events.TypeStatusChanged,
		MemberID:   id,
		Status:     string(status),
		OccurredAt: time.Now(),
	})
	return nil
}

// AssignPlan выпускает участнику новый абонемент по тарифу из каталога.
// Прежний абонемент отбрасывается, статус принудительно становится active
// независимо от прежнего значения.
func (s *Service) AssignPlan(ctx context.Context, id, planTypeID string) error {
	const op = "services.member.AssignPlan"

	pt, ok := models.FindPlanType(planTypeID)
	if !ok {
		return fmt.Errorf("%s: %w: %s", op, ErrInvalidPlan, planTypeID)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return fmt.Errorf("%s: %w: %s", op, ErrMemberNotFound, id)
	}

	today := time.Now()
	next := s.snapshot()
	next[idx].Plan = mintPlan(pt, today)
	next[idx].Status = models.StatusActive
	if err := s.store.SaveMembers(ctx, next); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	s.members = next

	s.log.Info("assigned new plan",
		slog.String("id", id), slog.String("plan_type", pt.ID))
	s.publish(events.MemberEvent{
		Type:       events.TypePlanAssigned,
		MemberID:   id,
		Status:     string(models.StatusActive),
		PlanTypeID: pt.ID,
		OccurredAt: today,
	})
	return nil
}

// Stats считает участников по статусам. Сумма счётчиков равна общему числу,
// поскольку статус всегда одно из трёх значений перечисления.
func (s *Service) Stats(_ context.Context) (models.Stats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var stats models.Stats
	for _, m := range s.members {
		switch m.Status {
		case models.StatusActive:
			stats.Active++
		case models.StatusExpired:
			stats.Expired++
		case models.StatusSuspended:
			stats.Suspended++
		}
	}
	stats.Total = len(s.members)
	return stats, nil
}

// snapshot возвращает копию коллекции для безопасной мутации перед сохранением.
// Вызывается только под write-блокировкой.
func (s *Service) snapshot() []models.Member {
	next := make([]models.Member, len(s.members))
	copy(next, s.members)
	return next
}

// indexOf находит позицию участника по ID, -1 если его нет.
func (s *Service) indexOf(id string) int {
	for i, m := range s.members {
		if m.ID == id {
			return i
		}
	}
	return -1
}

// publish отправляет событие; ошибки публикации не прерывают операцию.
func (s *Service) publish(event events.MemberEvent) {
	if err := s.publisher.Publish(event); err != nil {
		s.log.Warn("failed to publish member event",
			slog.String("type", event.Type), sl.Err(err))
	}
}

// matchesQuery проверяет вхождение подстроки в имя или почту без учёта регистра.
func matchesQuery(m models.Member, query string) bool {
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(m.Name), q) ||
		strings.Contains(strings.ToLower(m.Email), q)
}

// merge накладывает непустые поля запроса на анкету участника.
func merge(m *models.Member, req models.DummyMemberUpdate) {
	if req.Name != "" {
		m.Name = req.Name
	}
	if req.Email != "" {
		m.Email = req.Email
	}
	if req.Phone != "" {
		m.Phone = req.Phone
	}
	if req.BirthDate != "" {
		m.BirthDate = req.BirthDate
	}
	if req.EmergencyContact != "" {
		m.EmergencyContact = req.EmergencyContact
	}
	if req.EmergencyPhone != "" {
		m.EmergencyPhone = req.EmergencyPhone
	}
	if req.Address != "" {
		m.Address = req.Address
	}
}
