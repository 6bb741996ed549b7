package services

import (
	"database/sql"
	"log"
	"time"

	"github.com/FrancisLebest/ges-ecolage-app-nigwyh/app/database"
)

// StartScheduler starts the background task scheduler.
func StartScheduler(db *sql.DB) {
	go func() {
		log.Println("Scheduler started...")
		ticker := time.NewTicker(1 * time.Minute)
		defer ticker.Stop()

		for range ticker.C {
			now := time.Now()

			// Trigger at 8:05 PM (20:05)
			if now.Hour() == 20 && now.Minute() == 5 {
				log.Println("Triggering scheduled tasks [20:05]...")

				if err := SnapshotDailyCollections(db, now); err != nil {
					log.Printf("Error snapshotting daily collections: %v", err)
				}
			}
		}
	}()
}

// SnapshotDailyCollections computes the day's figures and stores one
// daily_collections row for trend history.
func SnapshotDailyCollections(db *sql.DB, now time.Time) error {
	students, err := database.GetStudents(db)
	if err != nil {
		return err
	}
	fees, err := database.GetFees(db)
	if err != nil {
		return err
	}
	classFees, err := database.GetClassFees(db)
	if err != nil {
		return err
	}
	payments, err := database.GetPayments(db, database.PaymentFilters{})
	if err != nil {
		return err
	}

	balances := ComputeAllBalances(students, fees, classFees, payments)
	stats := ComputeDashboardStats(payments, balances, now)

	day := DateOf(now)
	todayCount := ComputeReport(day, day, payments, nil).TransactionCount

	if err := database.UpsertDailyCollection(db, day, stats.CollectedToday, todayCount, stats.SettledPct); err != nil {
		return err
	}
	log.Printf("Daily collections snapshot stored for %s", day)
	return nil
}
