package CronJobs

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/robfig/cron/v3"

	"TaskFlow/Alerts"
	"TaskFlow/Models"
)

// DeadlineChecker represents the scheduled deadline sweep service
type DeadlineChecker struct {
	cronScheduler  *cron.Cron
	runImmediately bool
	jobID          cron.EntryID
}

// NewDeadlineChecker creates a new deadline checker with the given configuration
func NewDeadlineChecker(runImmediately bool) *DeadlineChecker {
	return &DeadlineChecker{
		cronScheduler:  cron.New(cron.WithSeconds()),
		runImmediately: runImmediately,
	}
}

// Start initiates the deadline checker cron job
func (d *DeadlineChecker) Start() error {
	// Every day at 8:00 AM
	var err error
	d.jobID, err = d.cronScheduler.AddFunc("0 0 8 * * *", func() {
		log.Println("Running scheduled daily deadline check")
		d.runDeadlineCheck()
	})

	if err != nil {
		return fmt.Errorf("error scheduling cron job: %w", err)
	}

	d.cronScheduler.Start()
	fmt.Println("Deadline check scheduler started - will run daily at 8:00 AM")

	if d.runImmediately {
		fmt.Println("Running initial deadline check")
		d.runDeadlineCheck()
	}

	return nil
}

// Stop terminates the deadline checker
func (d *DeadlineChecker) Stop() {
	if d.cronScheduler != nil {
		d.cronScheduler.Stop()
		log.Println("Deadline check scheduler stopped")
	}
}

// UpdateSchedule changes the schedule of the deadline checker
// Format: "0 0 8 * * *" = At 08:00:00 AM every day
func (d *DeadlineChecker) UpdateSchedule(schedule string) error {
	d.cronScheduler.Remove(d.jobID)

	var err error
	d.jobID, err = d.cronScheduler.AddFunc(schedule, func() {
		log.Println("Running scheduled deadline check")
		d.runDeadlineCheck()
	})

	if err != nil {
		return fmt.Errorf("error updating schedule: %w", err)
	}

	log.Printf("Deadline check schedule updated to: %s\n", schedule)
	return nil
}

// RunManualCheck executes a manual deadline check
func (d *DeadlineChecker) RunManualCheck() {
	log.Println("Running manual deadline check")
	d.runDeadlineCheck()
}

// runDeadlineCheck executes the sweep and handles errors
func (d *DeadlineChecker) runDeadlineCheck() {
	d.setupRunLog()

	if err := Alerts.CheckDeadlines(Models.DB); err != nil {
		log.Printf("Error in deadline check: %v\n", err)
		return
	}
	log.Println("Successfully completed deadline check")
}

// setupRunLog creates a log file specifically for this run
func (d *DeadlineChecker) setupRunLog() {
	if err := os.MkdirAll("logs", 0755); err != nil {
		log.Printf("Error creating logs directory: %v\n", err)
		return
	}

	timestamp := time.Now().Format("2006-01-02_15-04-05")
	logFile, err := os.OpenFile(fmt.Sprintf("logs/deadline_check_%s.log", timestamp),
		os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)

	if err != nil {
		log.Printf("Error opening run log file: %v\n", err)
		return
	}

	// We don't close the file because the log package will continue using it
	log.SetOutput(logFile)
}
