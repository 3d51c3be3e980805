package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/juliacvieira/Jornada-Trainee-UBS-2026-Grupo-09/app/models"
)

// In-memory stores backing the service tests. The expense fake mirrors the
// SQL layer's behavior: copies on read, guarded status updates and an insert
// that is atomic with its alerts.

type fakeEmployeeStore struct {
	employees map[uuid.UUID]*models.Employee
}

func newFakeEmployeeStore() *fakeEmployeeStore {
	return &fakeEmployeeStore{employees: make(map[uuid.UUID]*models.Employee)}
}

func (s *fakeEmployeeStore) Insert(_ context.Context, e *models.Employee) error {
	s.employees[e.ID] = e
	return nil
}

func (s *fakeEmployeeStore) FindByID(_ context.Context, id uuid.UUID) (*models.Employee, error) {
	e, ok := s.employees[id]
	if !ok {
		return nil, models.NotFoundf("employee %s", id)
	}
	cp := *e
	return &cp, nil
}

func (s *fakeEmployeeStore) FindAll(_ context.Context) ([]*models.Employee, error) {
	out := make([]*models.Employee, 0, len(s.employees))
	for _, e := range s.employees {
		cp := *e
		out = append(out, &cp)
	}
	return out, nil
}

type fakeCategoryStore struct {
	categories map[uuid.UUID]*models.Category
}

func newFakeCategoryStore() *fakeCategoryStore {
	return &fakeCategoryStore{categories: make(map[uuid.UUID]*models.Category)}
}

func (s *fakeCategoryStore) Insert(_ context.Context, c *models.Category) error {
	s.categories[c.ID] = c
	return nil
}

func (s *fakeCategoryStore) FindByID(_ context.Context, id uuid.UUID) (*models.Category, error) {
	c, ok := s.categories[id]
	if !ok {
		return nil, models.NotFoundf("category %s", id)
	}
	cp := *c
	return &cp, nil
}

func (s *fakeCategoryStore) FindAll(_ context.Context) ([]*models.Category, error) {
	out := make([]*models.Category, 0, len(s.categories))
	for _, c := range s.categories {
		cp := *c
		out = append(out, &cp)
	}
	return out, nil
}

type fakeDepartmentStore struct {
	departments map[uuid.UUID]*models.Department
}

func newFakeDepartmentStore() *fakeDepartmentStore {
	return &fakeDepartmentStore{departments: make(map[uuid.UUID]*models.Department)}
}

func (s *fakeDepartmentStore) Insert(_ context.Context, d *models.Department) error {
	s.departments[d.ID] = d
	return nil
}

func (s *fakeDepartmentStore) Update(_ context.Context, d *models.Department) error {
	if _, ok := s.departments[d.ID]; !ok {
		return models.NotFoundf("department %s", d.ID)
	}
	cp := *d
	s.departments[d.ID] = &cp
	return nil
}

func (s *fakeDepartmentStore) FindByID(_ context.Context, id uuid.UUID) (*models.Department, error) {
	d, ok := s.departments[id]
	if !ok {
		return nil, models.NotFoundf("department %s", id)
	}
	cp := *d
	return &cp, nil
}

func (s *fakeDepartmentStore) FindAll(_ context.Context) ([]*models.Department, error) {
	out := make([]*models.Department, 0, len(s.departments))
	for _, d := range s.departments {
		cp := *d
		out = append(out, &cp)
	}
	return out, nil
}

type fakeAlertStore struct {
	alerts    map[uuid.UUID]*models.Alert
	order     []uuid.UUID
	insertErr error
}

func newFakeAlertStore() *fakeAlertStore {
	return &fakeAlertStore{alerts: make(map[uuid.UUID]*models.Alert)}
}

func (s *fakeAlertStore) Insert(_ context.Context, a *models.Alert) error {
	if s.insertErr != nil {
		return s.insertErr
	}
	cp := *a
	s.alerts[a.ID] = &cp
	s.order = append(s.order, a.ID)
	return nil
}

func (s *fakeAlertStore) FindByID(_ context.Context, id uuid.UUID) (*models.Alert, error) {
	a, ok := s.alerts[id]
	if !ok {
		return nil, models.NotFoundf("alert %s", id)
	}
	cp := *a
	return &cp, nil
}

func (s *fakeAlertStore) FindAll(_ context.Context) ([]*models.Alert, error) {
	out := make([]*models.Alert, 0, len(s.order))
	for _, id := range s.order {
		cp := *s.alerts[id]
		out = append(out, &cp)
	}
	return out, nil
}

func (s *fakeAlertStore) FindByStatus(_ context.Context, status models.AlertStatus) ([]*models.Alert, error) {
	var out []*models.Alert
	for _, id := range s.order {
		if s.alerts[id].Status == status {
			cp := *s.alerts[id]
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (s *fakeAlertStore) UpdateStatus(_ context.Context, id uuid.UUID, from, to models.AlertStatus) error {
	a, ok := s.alerts[id]
	if !ok {
		return models.NotFoundf("alert %s", id)
	}
	if a.Status != from {
		return models.NewBusinessRuleError("alert status changed concurrently")
	}
	a.Status = to
	return nil
}

type fakeExpenseStore struct {
	expenses  map[uuid.UUID]*models.Expense
	alerts    *fakeAlertStore
	employees *fakeEmployeeStore
}

func newFakeExpenseStore(alerts *fakeAlertStore, employees *fakeEmployeeStore) *fakeExpenseStore {
	return &fakeExpenseStore{
		expenses:  make(map[uuid.UUID]*models.Expense),
		alerts:    alerts,
		employees: employees,
	}
}

func (s *fakeExpenseStore) Insert(ctx context.Context, e *models.Expense, alerts []*models.Alert) error {
	if s.alerts.insertErr != nil {
		return s.alerts.insertErr
	}
	for _, a := range alerts {
		if err := s.alerts.Insert(ctx, a); err != nil {
			return err
		}
	}
	cp := *e
	s.expenses[e.ID] = &cp
	return nil
}

func (s *fakeExpenseStore) Update(_ context.Context, e *models.Expense) error {
	existing, ok := s.expenses[e.ID]
	if !ok {
		return models.NotFoundf("expense %s", e.ID)
	}
	if existing.Status != models.StatusPending {
		return models.NewBusinessRuleError("only pending expenses can be updated")
	}
	cp := *e
	s.expenses[e.ID] = &cp
	return nil
}

func (s *fakeExpenseStore) UpdateStatus(_ context.Context, e *models.Expense, from models.ExpenseStatus) error {
	existing, ok := s.expenses[e.ID]
	if !ok {
		return models.NotFoundf("expense %s", e.ID)
	}
	if existing.Status != from {
		return models.NewBusinessRuleError("expense status changed concurrently")
	}
	cp := *e
	s.expenses[e.ID] = &cp
	return nil
}

func (s *fakeExpenseStore) SetReceipt(_ context.Context, id uuid.UUID, filename, url string) error {
	e, ok := s.expenses[id]
	if !ok {
		return models.NotFoundf("expense %s", id)
	}
	e.ReceiptFilename = filename
	e.ReceiptURL = url
	return nil
}

func (s *fakeExpenseStore) FindByID(_ context.Context, id uuid.UUID) (*models.Expense, error) {
	e, ok := s.expenses[id]
	if !ok {
		return nil, models.NotFoundf("expense %s", id)
	}
	cp := *e
	return &cp, nil
}

func (s *fakeExpenseStore) FindAll(_ context.Context) ([]*models.Expense, error) {
	out := make([]*models.Expense, 0, len(s.expenses))
	for _, e := range s.expenses {
		cp := *e
		out = append(out, &cp)
	}
	return out, nil
}

func (s *fakeExpenseStore) departmentOf(e *models.Expense) (uuid.UUID, bool) {
	emp, ok := s.employees.employees[e.EmployeeID]
	if !ok || emp.DepartmentID == nil {
		return uuid.Nil, false
	}
	return *emp.DepartmentID, true
}

// Aggregate sums take a half-open [start, end) range; the report range keeps
// its end date inclusive.
func inHalfOpenRange(d, start, end time.Time) bool {
	return !d.Before(start) && d.Before(end)
}

func inReportRange(d, start, end time.Time) bool {
	return !d.Before(start) && !d.After(end)
}

func (s *fakeExpenseStore) SumApprovedAmount(_ context.Context, departmentID uuid.UUID, start, end time.Time) (decimal.Decimal, error) {
	return s.sum(departmentID, start, end, uuid.Nil), nil
}

func (s *fakeExpenseStore) SumApprovedAmountExcluding(_ context.Context, departmentID uuid.UUID, start, end time.Time, exclude uuid.UUID) (decimal.Decimal, error) {
	return s.sum(departmentID, start, end, exclude), nil
}

func (s *fakeExpenseStore) sum(departmentID uuid.UUID, start, end time.Time, exclude uuid.UUID) decimal.Decimal {
	total := decimal.Zero
	for _, e := range s.expenses {
		if e.ID == exclude || e.Status != models.StatusApprovedFinance {
			continue
		}
		dept, ok := s.departmentOf(e)
		if !ok || dept != departmentID || !inHalfOpenRange(e.Date, start, end) {
			continue
		}
		total = total.Add(e.Amount)
	}
	return total
}

func (s *fakeExpenseStore) SumApprovedAmountByDepartment(_ context.Context, start, end time.Time) (map[uuid.UUID]decimal.Decimal, error) {
	out := make(map[uuid.UUID]decimal.Decimal)
	for _, e := range s.expenses {
		if e.Status != models.StatusApprovedFinance || !inHalfOpenRange(e.Date, start, end) {
			continue
		}
		dept, ok := s.departmentOf(e)
		if !ok {
			continue
		}
		out[dept] = out[dept].Add(e.Amount)
	}
	return out, nil
}

func (s *fakeExpenseStore) ReportRows(_ context.Context, start, end time.Time) ([]*models.ExpenseReportRow, error) {
	var out []*models.ExpenseReportRow
	for _, e := range s.expenses {
		if !inReportRange(e.Date, start, end) {
			continue
		}
		row := &models.ExpenseReportRow{
			ID:          e.ID,
			Date:        e.Date,
			Amount:      e.Amount,
			Currency:    e.Currency,
			Status:      e.Status,
			NeedsReview: e.NeedsReview,
		}
		if emp, ok := s.employees.employees[e.EmployeeID]; ok {
			row.EmployeeName = emp.Name
		}
		out = append(out, row)
	}
	return out, nil
}

// fixture wires the services over the fakes with one department, one
// employee in it and one category.
type fixture struct {
	expenses    *fakeExpenseStore
	alerts      *fakeAlertStore
	employees   *fakeEmployeeStore
	categories  *fakeCategoryStore
	departments *fakeDepartmentStore

	service     *ExpenseService
	alertSvc    *AlertService
	deptService *DepartmentService

	department *models.Department
	employee   *models.Employee
	category   *models.Category
}

func newFixture() *fixture {
	f := &fixture{
		alerts:      newFakeAlertStore(),
		employees:   newFakeEmployeeStore(),
		categories:  newFakeCategoryStore(),
		departments: newFakeDepartmentStore(),
	}
	f.expenses = newFakeExpenseStore(f.alerts, f.employees)
	f.alertSvc = &AlertService{Alerts: f.alerts}
	f.service = &ExpenseService{
		Expenses:    f.expenses,
		Employees:   f.employees,
		Categories:  f.categories,
		Departments: f.departments,
		Alerts:      f.alertSvc,
	}
	f.deptService = &DepartmentService{Departments: f.departments, Expenses: f.expenses}

	f.department = &models.Department{
		ID:            uuid.New(),
		Name:          "Engenharia",
		MonthlyBudget: decimal.NewFromInt(1000),
	}
	f.departments.departments[f.department.ID] = f.department

	deptID := f.department.ID
	f.employee = &models.Employee{
		ID:           uuid.New(),
		Name:         "Ana Souza",
		Email:        "ana.souza@example.com",
		DepartmentID: &deptID,
		Role:         models.RoleEmployee,
	}
	f.employees.employees[f.employee.ID] = f.employee

	daily := decimal.NewFromInt(100)
	monthly := decimal.NewFromInt(500)
	f.category = &models.Category{
		ID:           uuid.New(),
		Name:         "Refeição",
		DailyLimit:   &daily,
		MonthlyLimit: &monthly,
	}
	f.categories.categories[f.category.ID] = f.category

	return f
}

// addApproved seeds an APPROVED_FINANCE expense for the fixture employee so
// the department aggregate has prior spending.
func (f *fixture) addApproved(amount int64, date time.Time) *models.Expense {
	e := &models.Expense{
		ID:         uuid.New(),
		EmployeeID: f.employee.ID,
		CategoryID: f.category.ID,
		Amount:     decimal.NewFromInt(amount),
		Currency:   "BRL",
		Date:       date,
		Status:     models.StatusApprovedFinance,
	}
	f.expenses.expenses[e.ID] = e
	return e
}
