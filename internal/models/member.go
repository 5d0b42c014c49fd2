// Package models содержит доменные структуры клуба: участника, его абонемент,
// а также вспомогательные типы для приёма данных из JSON-запросов.
package models

// DateLayout формат календарных дат во всех полях модели и в хранилище.
const DateLayout = "2006-01-02"

// MembershipStatus статус членства участника.
// Статус не вычисляется автоматически по дате окончания абонемента,
// его выставляет сотрудник вручную.
type MembershipStatus string

const (
	// StatusActive членство действует.
	StatusActive MembershipStatus = "active"
	// StatusExpired членство истекло.
	StatusExpired MembershipStatus = "expired"
	// StatusSuspended членство приостановлено.
	StatusSuspended MembershipStatus = "suspended"
)

// Valid сообщает, входит ли статус в закрытое перечисление.
func (s MembershipStatus) Valid() bool {
	switch s {
	case StatusActive, StatusExpired, StatusSuspended:
		return true
	}
	return false
}

// Plan экземпляр абонемента, принадлежащий ровно одному участнику.
// ID уникален для каждого назначения: при смене тарифа выпускается новый Plan,
// старый отбрасывается целиком.
// Name, Duration и Price копируются из каталога в момент назначения,
// последующие изменения каталога на выданные абонементы не влияют.
type Plan struct {
	ID        string `json:"id"`        // Уникальный идентификатор назначения
	Name      string `json:"name"`      // Название тарифа на момент назначения
	Duration  int    `json:"duration"`  // Срок действия в месяцах
	Price     int    `json:"price"`     // Цена на момент назначения
	StartDate string `json:"startDate"` // Дата назначения в формате 2006-01-02
	EndDate   string `json:"endDate"`   // StartDate плюс Duration месяцев
}

// Member участник клуба. Всегда владеет ровно одним Plan.
// RegistrationDate выставляется один раз при создании и не меняется.
type Member struct {
	ID               string           `json:"id"`
	Name             string           `json:"name"`
	Email            string           `json:"email"`
	Phone            string           `json:"phone"`
	BirthDate        string           `json:"birthDate"`
	EmergencyContact string           `json:"emergencyContact"`
	EmergencyPhone   string           `json:"emergencyPhone"`
	Address          string           `json:"address"`
	RegistrationDate string           `json:"registrationDate"`
	Plan             Plan             `json:"plan"`
	Status           MembershipStatus `json:"status"`
}

// DummyMember используется для приёма анкеты участника из JSON-запроса,
// прежде чем конвертировать её в Member.
type DummyMember struct {
	Name             string `json:"name" validate:"required"`              // ФИО участника
	Email            string `json:"email" validate:"required,email"`       // Электронная почта
	Phone            string `json:"phone" validate:"required"`             // Телефон
	BirthDate        string `json:"birth_date" validate:"required"`        // Дата рождения в формате 2006-01-02
	EmergencyContact string `json:"emergency_contact" validate:"required"` // Контактное лицо
	EmergencyPhone   string `json:"emergency_phone" validate:"required"`   // Телефон контактного лица
	Address          string `json:"address" validate:"required"`           // Адрес
	PlanTypeID       string `json:"plan_type_id" validate:"required"`      // Идентификатор тарифа из каталога
}

// DummyMemberUpdate частичное обновление анкеты: пустые поля не трогаются.
type DummyMemberUpdate struct {
	Name             string `json:"name,omitempty"`
	Email            string `json:"email,omitempty" validate:"omitempty,email"`
	Phone            string `json:"phone,omitempty"`
	BirthDate        string `json:"birth_date,omitempty"`
	EmergencyContact string `json:"emergency_contact,omitempty"`
	EmergencyPhone   string `json:"emergency_phone,omitempty"`
	Address          string `json:"address,omitempty"`
}

// DummyStatusUpdate запрос на смену статуса участника.
type DummyStatusUpdate struct {
	Status string `json:"status" validate:"required,oneof=active expired suspended"`
}

// DummyAssignPlan запрос на назначение нового абонемента.
type DummyAssignPlan struct {
	PlanTypeID string `json:"plan_type_id" validate:"required"`
}

// Stats агрегированные счётчики по статусам.
// Инвариант: Active + Expired + Suspended == Total.
type Stats struct {
	Total     int `json:"total"`
	Active    int `json:"active"`
	Expired   int `json:"expired"`
	Suspended int `json:"suspended"`
}
