// Package events публикует события жизненного цикла членства в RabbitMQ.
// События потребляются внешними воркерами (рассылки, журналирование);
// само приложение на них не подписано.
package events

import "time"

// Типы публикуемых событий.
const (
	TypeMemberCreated = "member.created"
	TypeMemberUpdated = "member.updated"
	TypeMemberRemoved = "member.removed"
	TypeStatusChanged = "member.status_changed"
	TypePlanAssigned  = "member.plan_assigned"
)

// MemberEvent сообщение о событии жизненного цикла участника.
type MemberEvent struct {
	Type       string    `json:"type"`
	MemberID   string    `json:"member_id"`
	Status     string    `json:"status,omitempty"`
	PlanTypeID string    `json:"plan_type_id,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// Publisher описывает публикацию событий членства.
type Publisher interface {
	Publish(event MemberEvent) error
}

// NoopPublisher отбрасывает события. Используется, когда RabbitMQ не настроен.
type NoopPublisher struct{}

// Publish ничего не делает.
func (NoopPublisher) Publish(_ MemberEvent) error { return nil }
