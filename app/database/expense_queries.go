package database

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/juliacvieira/Jornada-Trainee-UBS-2026-Grupo-09/app/models"
)

// ExpenseQueries implements the expense store over Postgres.
type ExpenseQueries struct {
	DB *sql.DB
}

func NewExpenseQueries(db *sql.DB) *ExpenseQueries {
	return &ExpenseQueries{DB: db}
}

const expenseColumns = `id, employee_id, category_id, amount, currency, description, date, status,
	needs_review, rejection_reason, receipt_filename, receipt_url, created_at, updated_at`

// Insert stores the expense and its alerts in one transaction. If an alert
// insert fails the expense insert rolls back with it.
func (q *ExpenseQueries) Insert(ctx context.Context, e *models.Expense, alerts []*models.Alert) error {
	tx, err := q.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO expenses (id, employee_id, category_id, amount, currency, description, date, status, needs_review)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		e.ID, e.EmployeeID, e.CategoryID, e.Amount, e.Currency, nullString(e.Description),
		e.Date, e.Status, e.NeedsReview)
	if err != nil {
		return err
	}

	for _, a := range alerts {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO alerts (id, expense_id, type, message, status, created_at)
			VALUES ($1, $2, $3, $4, $5, $6)`,
			a.ID, a.ExpenseID, a.Type, a.Message, a.Status, a.CreatedAt)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

// Update persists an edited candidate. The status guard keeps an edit from
// landing on an expense that was approved or rejected in between.
func (q *ExpenseQueries) Update(ctx context.Context, e *models.Expense) error {
	res, err := q.DB.ExecContext(ctx, `
		UPDATE expenses
		SET category_id = $1, amount = $2, currency = $3, description = $4, date = $5, updated_at = NOW()
		WHERE id = $6 AND status = $7`,
		e.CategoryID, e.Amount, e.Currency, nullString(e.Description), e.Date, e.ID, models.StatusPending)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return models.NewBusinessRuleError("only pending expenses can be updated")
	}
	return nil
}

// UpdateStatus persists a transition guarded by the expected previous status.
func (q *ExpenseQueries) UpdateStatus(ctx context.Context, e *models.Expense, from models.ExpenseStatus) error {
	res, err := q.DB.ExecContext(ctx, `
		UPDATE expenses
		SET status = $1, needs_review = $2, rejection_reason = $3, updated_at = NOW()
		WHERE id = $4 AND status = $5`,
		e.Status, e.NeedsReview, nullString(e.RejectionReason), e.ID, from)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return models.NewBusinessRuleError("expense status changed concurrently")
	}
	return nil
}

func (q *ExpenseQueries) SetReceipt(ctx context.Context, id uuid.UUID, filename, url string) error {
	res, err := q.DB.ExecContext(ctx, `
		UPDATE expenses SET receipt_filename = $1, receipt_url = $2, updated_at = NOW() WHERE id = $3`,
		filename, url, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return models.NotFoundf("expense %s", id)
	}
	return nil
}

func (q *ExpenseQueries) FindByID(ctx context.Context, id uuid.UUID) (*models.Expense, error) {
	row := q.DB.QueryRowContext(ctx, `SELECT `+expenseColumns+` FROM expenses WHERE id = $1`, id)
	e, err := scanExpense(row)
	if err == sql.ErrNoRows {
		return nil, models.NotFoundf("expense %s", id)
	}
	if err != nil {
		return nil, err
	}
	return e, nil
}

func (q *ExpenseQueries) FindAll(ctx context.Context) ([]*models.Expense, error) {
	rows, err := q.DB.QueryContext(ctx, `SELECT `+expenseColumns+` FROM expenses ORDER BY date DESC, created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	expenses := []*models.Expense{}
	for rows.Next() {
		e, err := scanExpense(rows)
		if err != nil {
			return nil, err
		}
		expenses = append(expenses, e)
	}
	return expenses, rows.Err()
}

func (q *ExpenseQueries) SumApprovedAmount(ctx context.Context, departmentID uuid.UUID, start, end time.Time) (decimal.Decimal, error) {
	var sum decimal.Decimal
	err := q.DB.QueryRowContext(ctx, `
		SELECT COALESCE(SUM(e.amount), 0)
		FROM expenses e
		JOIN employees emp ON e.employee_id = emp.id
		WHERE emp.department_id = $1 AND e.date >= $2 AND e.date < $3 AND e.status = $4`,
		departmentID, start, end, models.StatusApprovedFinance).Scan(&sum)
	return sum, err
}

func (q *ExpenseQueries) SumApprovedAmountExcluding(ctx context.Context, departmentID uuid.UUID, start, end time.Time, exclude uuid.UUID) (decimal.Decimal, error) {
	var sum decimal.Decimal
	err := q.DB.QueryRowContext(ctx, `
		SELECT COALESCE(SUM(e.amount), 0)
		FROM expenses e
		JOIN employees emp ON e.employee_id = emp.id
		WHERE emp.department_id = $1 AND e.date >= $2 AND e.date < $3 AND e.status = $4 AND e.id <> $5`,
		departmentID, start, end, models.StatusApprovedFinance, exclude).Scan(&sum)
	return sum, err
}

func (q *ExpenseQueries) SumApprovedAmountByDepartment(ctx context.Context, start, end time.Time) (map[uuid.UUID]decimal.Decimal, error) {
	rows, err := q.DB.QueryContext(ctx, `
		SELECT emp.department_id, COALESCE(SUM(e.amount), 0)
		FROM expenses e
		JOIN employees emp ON e.employee_id = emp.id
		WHERE emp.department_id IS NOT NULL AND e.date >= $1 AND e.date < $2 AND e.status = $3
		GROUP BY emp.department_id`,
		start, end, models.StatusApprovedFinance)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	usage := make(map[uuid.UUID]decimal.Decimal)
	for rows.Next() {
		var id uuid.UUID
		var sum decimal.Decimal
		if err := rows.Scan(&id, &sum); err != nil {
			return nil, err
		}
		usage[id] = sum
	}
	return usage, rows.Err()
}

func (q *ExpenseQueries) ReportRows(ctx context.Context, start, end time.Time) ([]*models.ExpenseReportRow, error) {
	rows, err := q.DB.QueryContext(ctx, `
		SELECT e.id, e.date, emp.name, d.name, c.name, e.amount, e.currency, e.status, e.needs_review
		FROM expenses e
		JOIN employees emp ON e.employee_id = emp.id
		LEFT JOIN departments d ON emp.department_id = d.id
		JOIN categories c ON e.category_id = c.id
		WHERE e.date BETWEEN $1 AND $2
		ORDER BY e.date, e.created_at`,
		start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	report := []*models.ExpenseReportRow{}
	for rows.Next() {
		r := &models.ExpenseReportRow{}
		var deptName sql.NullString
		if err := rows.Scan(&r.ID, &r.Date, &r.EmployeeName, &deptName, &r.CategoryName,
			&r.Amount, &r.Currency, &r.Status, &r.NeedsReview); err != nil {
			return nil, err
		}
		r.DepartmentName = deptName.String
		report = append(report, r)
	}
	return report, rows.Err()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanExpense(row rowScanner) (*models.Expense, error) {
	e := &models.Expense{}
	var description, rejectionReason, receiptFilename, receiptURL sql.NullString
	err := row.Scan(&e.ID, &e.EmployeeID, &e.CategoryID, &e.Amount, &e.Currency, &description,
		&e.Date, &e.Status, &e.NeedsReview, &rejectionReason, &receiptFilename, &receiptURL,
		&e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return nil, err
	}
	e.Description = description.String
	e.RejectionReason = rejectionReason.String
	e.ReceiptFilename = receiptFilename.String
	e.ReceiptURL = receiptURL.String
	return e, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
