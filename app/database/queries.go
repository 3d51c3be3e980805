package database

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/juliacvieira/Jornada-Trainee-UBS-2026-Grupo-09/app/models"
)

// Lookup stores for the entities the expense core resolves references
// through: employees, categories and departments.

type EmployeeQueries struct {
	DB *sql.DB
}

func NewEmployeeQueries(db *sql.DB) *EmployeeQueries {
	return &EmployeeQueries{DB: db}
}

const employeeColumns = `id, name, email, position, manager_id, department_id, role, created_at`

func (q *EmployeeQueries) Insert(ctx context.Context, e *models.Employee) error {
	_, err := q.DB.ExecContext(ctx, `
		INSERT INTO employees (id, name, email, position, manager_id, department_id, role)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		e.ID, e.Name, e.Email, nullString(e.Position), e.ManagerID, e.DepartmentID, e.Role)
	return err
}

func (q *EmployeeQueries) FindByID(ctx context.Context, id uuid.UUID) (*models.Employee, error) {
	e, err := scanEmployee(q.DB.QueryRowContext(ctx, `SELECT `+employeeColumns+` FROM employees WHERE id = $1`, id))
	if err == sql.ErrNoRows {
		return nil, models.NotFoundf("employee %s", id)
	}
	if err != nil {
		return nil, err
	}
	return e, nil
}

func (q *EmployeeQueries) FindAll(ctx context.Context) ([]*models.Employee, error) {
	rows, err := q.DB.QueryContext(ctx, `SELECT `+employeeColumns+` FROM employees ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	employees := []*models.Employee{}
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		employees = append(employees, e)
	}
	return employees, rows.Err()
}

func scanEmployee(row rowScanner) (*models.Employee, error) {
	e := &models.Employee{}
	var position sql.NullString
	var managerID, departmentID uuid.NullUUID
	if err := row.Scan(&e.ID, &e.Name, &e.Email, &position, &managerID, &departmentID, &e.Role, &e.CreatedAt); err != nil {
		return nil, err
	}
	e.Position = position.String
	if managerID.Valid {
		e.ManagerID = &managerID.UUID
	}
	if departmentID.Valid {
		e.DepartmentID = &departmentID.UUID
	}
	return e, nil
}

type CategoryQueries struct {
	DB *sql.DB
}

func NewCategoryQueries(db *sql.DB) *CategoryQueries {
	return &CategoryQueries{DB: db}
}

const categoryColumns = `id, name, daily_limit, monthly_limit, created_at`

func (q *CategoryQueries) Insert(ctx context.Context, c *models.Category) error {
	_, err := q.DB.ExecContext(ctx, `
		INSERT INTO categories (id, name, daily_limit, monthly_limit)
		VALUES ($1, $2, $3, $4)`,
		c.ID, c.Name, c.DailyLimit, c.MonthlyLimit)
	return err
}

func (q *CategoryQueries) FindByID(ctx context.Context, id uuid.UUID) (*models.Category, error) {
	c, err := scanCategory(q.DB.QueryRowContext(ctx, `SELECT `+categoryColumns+` FROM categories WHERE id = $1`, id))
	if err == sql.ErrNoRows {
		return nil, models.NotFoundf("category %s", id)
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (q *CategoryQueries) FindAll(ctx context.Context) ([]*models.Category, error) {
	rows, err := q.DB.QueryContext(ctx, `SELECT `+categoryColumns+` FROM categories ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := []*models.Category{}
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

func scanCategory(row rowScanner) (*models.Category, error) {
	c := &models.Category{}
	var daily, monthly decimal.NullDecimal
	if err := row.Scan(&c.ID, &c.Name, &daily, &monthly, &c.CreatedAt); err != nil {
		return nil, err
	}
	if daily.Valid {
		c.DailyLimit = &daily.Decimal
	}
	if monthly.Valid {
		c.MonthlyLimit = &monthly.Decimal
	}
	return c, nil
}

type DepartmentQueries struct {
	DB *sql.DB
}

func NewDepartmentQueries(db *sql.DB) *DepartmentQueries {
	return &DepartmentQueries{DB: db}
}

const departmentColumns = `id, name, monthly_budget, created_at, updated_at`

func (q *DepartmentQueries) Insert(ctx context.Context, d *models.Department) error {
	_, err := q.DB.ExecContext(ctx, `
		INSERT INTO departments (id, name, monthly_budget)
		VALUES ($1, $2, $3)`,
		d.ID, d.Name, d.MonthlyBudget)
	return err
}

func (q *DepartmentQueries) Update(ctx context.Context, d *models.Department) error {
	res, err := q.DB.ExecContext(ctx, `
		UPDATE departments SET name = $1, monthly_budget = $2, updated_at = NOW() WHERE id = $3`,
		d.Name, d.MonthlyBudget, d.ID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return models.NotFoundf("department %s", d.ID)
	}
	return nil
}

func (q *DepartmentQueries) FindByID(ctx context.Context, id uuid.UUID) (*models.Department, error) {
	d := &models.Department{}
	err := q.DB.QueryRowContext(ctx, `SELECT `+departmentColumns+` FROM departments WHERE id = $1`, id).
		Scan(&d.ID, &d.Name, &d.MonthlyBudget, &d.CreatedAt, &d.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, models.NotFoundf("department %s", id)
	}
	if err != nil {
		return nil, err
	}
	return d, nil
}

func (q *DepartmentQueries) FindAll(ctx context.Context) ([]*models.Department, error) {
	rows, err := q.DB.QueryContext(ctx, `SELECT `+departmentColumns+` FROM departments ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	departments := []*models.Department{}
	for rows.Next() {
		d := &models.Department{}
		if err := rows.Scan(&d.ID, &d.Name, &d.MonthlyBudget, &d.CreatedAt, &d.UpdatedAt); err != nil {
			return nil, err
		}
		departments = append(departments, d)
	}
	return departments, rows.Err()
}
