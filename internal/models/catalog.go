package models

// PlanType запись каталога тарифов: шаблон, из которого в момент назначения
// выпускается Plan. ID каталожной записи не совпадает с ID выданных абонементов.
type PlanType struct {
	ID       string `json:"id"`       // Стабильный идентификатор тарифа
	Name     string `json:"name"`     // Отображаемое название
	Duration int    `json:"duration"` // Срок в месяцах
	Price    int    `json:"price"`    // Цена
}

// PlanTypes каталог тарифов. Неизменяемые справочные данные,
// порядок соответствует порядку объявления.
var PlanTypes = []PlanType{
	{ID: "monthly", Name: "Mensual", Duration: 1, Price: 30},
	{ID: "quarterly", Name: "Trimestral", Duration: 3, Price: 80},
	{ID: "semiannual", Name: "Semestral", Duration: 6, Price: 150},
	{ID: "annual", Name: "Anual", Duration: 12, Price: 280},
}

// FindPlanType возвращает запись каталога по идентификатору.
func FindPlanType(id string) (PlanType, bool) {
	for _, pt := range PlanTypes {
		if pt.ID == id {
			return pt, true
		}
	}
	return PlanType{}, false
}
