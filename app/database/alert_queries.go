package database

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/juliacvieira/Jornada-Trainee-UBS-2026-Grupo-09/app/models"
)

// AlertQueries implements the alert store over Postgres.
type AlertQueries struct {
	DB *sql.DB
}

func NewAlertQueries(db *sql.DB) *AlertQueries {
	return &AlertQueries{DB: db}
}

const alertColumns = `id, expense_id, type, message, status, created_at`

func (q *AlertQueries) Insert(ctx context.Context, a *models.Alert) error {
	_, err := q.DB.ExecContext(ctx, `
		INSERT INTO alerts (id, expense_id, type, message, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		a.ID, a.ExpenseID, a.Type, a.Message, a.Status, a.CreatedAt)
	return err
}

func (q *AlertQueries) FindByID(ctx context.Context, id uuid.UUID) (*models.Alert, error) {
	a := &models.Alert{}
	err := q.DB.QueryRowContext(ctx, `SELECT `+alertColumns+` FROM alerts WHERE id = $1`, id).
		Scan(&a.ID, &a.ExpenseID, &a.Type, &a.Message, &a.Status, &a.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, models.NotFoundf("alert %s", id)
	}
	if err != nil {
		return nil, err
	}
	return a, nil
}

func (q *AlertQueries) FindAll(ctx context.Context) ([]*models.Alert, error) {
	return q.queryAlerts(ctx, `SELECT `+alertColumns+` FROM alerts ORDER BY created_at DESC`)
}

func (q *AlertQueries) FindByStatus(ctx context.Context, status models.AlertStatus) ([]*models.Alert, error) {
	return q.queryAlerts(ctx, `SELECT `+alertColumns+` FROM alerts WHERE status = $1 ORDER BY created_at DESC`, status)
}

// UpdateStatus persists a transition guarded by the expected previous status.
func (q *AlertQueries) UpdateStatus(ctx context.Context, id uuid.UUID, from, to models.AlertStatus) error {
	res, err := q.DB.ExecContext(ctx, `UPDATE alerts SET status = $1 WHERE id = $2 AND status = $3`, to, id, from)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return models.NewBusinessRuleError("alert status changed concurrently")
	}
	return nil
}

func (q *AlertQueries) queryAlerts(ctx context.Context, query string, args ...interface{}) ([]*models.Alert, error) {
	rows, err := q.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	alerts := []*models.Alert{}
	for rows.Next() {
		a := &models.Alert{}
		if err := rows.Scan(&a.ID, &a.ExpenseID, &a.Type, &a.Message, &a.Status, &a.CreatedAt); err != nil {
			return nil, err
		}
		alerts = append(alerts, a)
	}
	return alerts, rows.Err()
}
