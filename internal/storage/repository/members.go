package repository

import (
	"context"
	"fmt"

	"github.com/gymtrack/gymtrack/internal/models"
)

// LoadMembers возвращает всю коллекцию участников в порядке вставки.
func (s *Storage) LoadMembers(ctx context.Context) ([]models.Member, error) {
	const op = "storage.LoadMembers"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, name, email, phone, birth_date, emergency_contact,
				emergency_phone, address, registration_date,
				plan_id, plan_name, plan_duration, plan_price, plan_start_date, plan_end_date,
				status
			  FROM members
			  ORDER BY position`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var result []models.Member
	for rows.Next() {
		var item models.Member
		var status string
		if err := rows.Scan(&item.ID, &item.Name, &item.Email, &item.Phone, &item.BirthDate,
			&item.EmergencyContact, &item.EmergencyPhone, &item.Address, &item.RegistrationDate,
			&item.Plan.ID, &item.Plan.Name, &item.Plan.Duration, &item.Plan.Price,
			&item.Plan.StartDate, &item.Plan.EndDate, &status); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		item.Status = models.MembershipStatus(status)
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err := rows.Close(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// SaveMembers перезаписывает коллекцию участников целиком в одной транзакции.
// Порядок среза фиксируется в колонке position.
func (s *Storage) SaveMembers(ctx context.Context, members []models.Member) error {
	const op = "storage.SaveMembers"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.ExecContext(ctx, `DELETE FROM members`); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	query := `INSERT INTO members (position, id, name, email, phone, birth_date,
				emergency_contact, emergency_phone, address, registration_date,
				plan_id, plan_name, plan_duration, plan_price, plan_start_date, plan_end_date,
				status)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`
	for i, m := range members {
		if _, err := tx.ExecContext(ctx, query,
			i, m.ID, m.Name, m.Email, m.Phone, m.BirthDate,
			m.EmergencyContact, m.EmergencyPhone, m.Address, m.RegistrationDate,
			m.Plan.ID, m.Plan.Name, m.Plan.Duration, m.Plan.Price,
			m.Plan.StartDate, m.Plan.EndDate, string(m.Status)); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
