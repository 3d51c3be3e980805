package database

import (
	"database/sql"
	"log"
)

// RunMigrations ensures the expense manager schema exists.
func RunMigrations(db *sql.DB) error {
	// 1. Create tables if they don't exist
	queries := []string{
		`CREATE TABLE IF NOT EXISTS departments (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			name VARCHAR(255) UNIQUE NOT NULL,
			monthly_budget NUMERIC(14,2) NOT NULL,
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS employees (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			name VARCHAR(255) NOT NULL,
			email VARCHAR(255) UNIQUE NOT NULL,
			position VARCHAR(255),
			manager_id UUID REFERENCES employees(id),
			department_id UUID REFERENCES departments(id),
			role VARCHAR(20) NOT NULL DEFAULT 'EMPLOYEE',
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS categories (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			name VARCHAR(255) UNIQUE NOT NULL,
			daily_limit NUMERIC(14,2),
			monthly_limit NUMERIC(14,2),
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS expenses (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			employee_id UUID NOT NULL REFERENCES employees(id),
			category_id UUID NOT NULL REFERENCES categories(id),
			amount NUMERIC(14,2) NOT NULL,
			currency VARCHAR(3) NOT NULL DEFAULT 'BRL',
			description TEXT,
			date DATE NOT NULL,
			status VARCHAR(20) NOT NULL DEFAULT 'PENDING',
			needs_review BOOLEAN NOT NULL DEFAULT false,
			rejection_reason TEXT,
			receipt_filename TEXT,
			receipt_url TEXT,
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS alerts (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			expense_id UUID NOT NULL REFERENCES expenses(id),
			type VARCHAR(30) NOT NULL,
			message TEXT NOT NULL,
			status VARCHAR(10) NOT NULL DEFAULT 'NEW',
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
		)`,
	}

	for _, q := range queries {
		if _, err := db.Exec(q); err != nil {
			log.Printf("Error creating tables: %v", err)
			return err
		}
	}

	// 2. Indexes
	migrations := []string{
		`CREATE INDEX IF NOT EXISTS idx_expenses_employee_id ON expenses(employee_id)`,
		`CREATE INDEX IF NOT EXISTS idx_expenses_date ON expenses(date)`,
		`CREATE INDEX IF NOT EXISTS idx_expenses_status ON expenses(status)`,
		`CREATE INDEX IF NOT EXISTS idx_alerts_expense_id ON alerts(expense_id)`,
		`CREATE INDEX IF NOT EXISTS idx_alerts_status ON alerts(status)`,
	}

	for _, m := range migrations {
		if _, err := db.Exec(m); err != nil {
			log.Printf("Error running migration: %v", err)
			// Continue as some might be duplicate index errors depending on PG version
		}
	}

	// 3. Seed default categories
	seeds := []string{
		`INSERT INTO categories (name) VALUES ('Viagem') ON CONFLICT (name) DO NOTHING`,
		`INSERT INTO categories (name) VALUES ('Refeição') ON CONFLICT (name) DO NOTHING`,
		`INSERT INTO categories (name) VALUES ('Transporte') ON CONFLICT (name) DO NOTHING`,
		`INSERT INTO categories (name) VALUES ('Outros') ON CONFLICT (name) DO NOTHING`,
	}

	for _, s := range seeds {
		if _, err := db.Exec(s); err != nil {
			log.Printf("Error seeding categories: %v", err)
		}
	}

	return nil
}
