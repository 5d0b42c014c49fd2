// Package month содержит календарную арифметику для расчёта даты окончания абонемента.
package month

import (
	"time"
)

// Add прибавляет к дате заданное количество календарных месяцев.
// В отличие от time.AddDate, день не переносится на следующий месяц:
// если в целевом месяце такого дня нет, берётся его последний день
// (31 января + 1 месяц = 28/29 февраля).
func Add(t time.Time, months int) time.Time {
	year, mon, day := t.Date()

	totalMonths := int(mon) - 1 + months
	targetYear := year + totalMonths/12
	targetMonth := time.Month(totalMonths%12 + 1)
	if totalMonths < 0 {
		// Деление в Go округляет к нулю, отрицательный остаток сдвигаем назад
		targetYear = year + (totalMonths-11)/12
		targetMonth = time.Month((totalMonths%12+12)%12 + 1)
	}

	if last := daysIn(targetYear, targetMonth); day > last {
		day = last
	}
	return time.Date(targetYear, targetMonth, day, 0, 0, 0, 0, t.Location())
}

// daysIn возвращает число дней в месяце.
func daysIn(year int, m time.Month) int {
	return time.Date(year, m+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
