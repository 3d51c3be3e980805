package services

import (
	"context"
	"log"
	"time"
)

// StartScheduler starts the background task scheduler. The only scheduled
// task is the budget sweep: the department-month aggregate counts only
// finance-approved expenses, so a month can drift over budget as pending
// expenses get approved. The sweep logs every department whose approved
// spending for the current month exceeds its budget.
func StartScheduler(departments *DepartmentService) {
	go func() {
		log.Println("Scheduler started...")
		ticker := time.NewTicker(1 * time.Minute)
		defer ticker.Stop()

		for range ticker.C {
			now := time.Now()

			// Trigger at 7:00 AM
			if now.Hour() == 7 && now.Minute() == 0 {
				log.Println("Triggering scheduled tasks [07:00]...")
				if err := SweepBudgets(context.Background(), departments, now); err != nil {
					log.Printf("Error sweeping department budgets: %v", err)
				}
			}
		}
	}()
}

// SweepBudgets logs every department over budget for the month containing now.
func SweepBudgets(ctx context.Context, departments *DepartmentService, now time.Time) error {
	usage, err := departments.MonthlyUsageAll(ctx, now)
	if err != nil {
		return err
	}
	all, err := departments.FindAll(ctx)
	if err != nil {
		return err
	}

	count := 0
	for _, d := range all {
		spent, ok := usage[d.ID]
		if !ok {
			continue
		}
		if spent.GreaterThan(d.MonthlyBudget) {
			count++
			log.Printf("Department %s (%s) over budget for %s: approved %s of %s",
				d.Name, d.ID, now.Format("2006-01"), spent, d.MonthlyBudget)
		}
	}
	log.Printf("Budget sweep completed. %d department(s) over budget.", count)
	return nil
}
