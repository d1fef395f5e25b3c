package Alerts

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
	"gorm.io/gorm"

	"TaskFlow/Models"
)

// Global Firebase client
var firebaseClient *messaging.Client
var ctx = context.Background()

// Initialize Firebase (call this once at startup)
func InitFirebase() error {
	credentials := os.Getenv("FIREBASE_CREDENTIALS")
	if credentials == "" {
		credentials = "./firebase-service-account.json"
	}
	opt := option.WithCredentialsFile(credentials)

	app, err := firebase.NewApp(ctx, nil, opt)
	if err != nil {
		return fmt.Errorf("error initializing Firebase app: %v", err)
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return fmt.Errorf("error getting Messaging client: %v", err)
	}

	firebaseClient = client
	log.Println("Firebase initialized successfully")
	return nil
}

// deadlineAlert pairs one open assignment with its task
type deadlineAlert struct {
	task       Models.Task
	assignment Models.TaskAssignment
	overdue    bool
}

// CheckDeadlines notifies assignees about tasks that are overdue or due
// within the next 24 hours. Each user gets at most one notification per
// task per day.
func CheckDeadlines(db *gorm.DB) error {
	now := time.Now()
	horizon := now.Add(24 * time.Hour)

	var tasks []Models.Task
	err := db.Preload("Assignments").
		Where("due_date <= ?", horizon).
		Find(&tasks).Error
	if err != nil {
		return fmt.Errorf("error loading tasks for deadline check: %v", err)
	}

	var alerts []deadlineAlert
	for i := range tasks {
		for _, assignment := range tasks[i].Assignments {
			if assignment.Status == Models.StatusCompleted {
				continue
			}
			alerts = append(alerts, deadlineAlert{
				task:       tasks[i],
				assignment: assignment,
				overdue:    tasks[i].DueDate.Before(now),
			})
		}
	}

	log.Printf("Deadline check found %d open assignments due before %s",
		len(alerts), horizon.Format("2006-01-02 15:04"))

	return processDeadlineAlerts(alerts, db, now)
}

// processDeadlineAlerts stores in-app notifications and pushes to devices
func processDeadlineAlerts(alerts []deadlineAlert, db *gorm.DB, now time.Time) error {
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	for _, alert := range alerts {
		taskID := alert.task.ID

		// Skip if the user was already notified about this task today
		var existing int64
		db.Model(&Models.Notification{}).
			Where("user_id = ? AND task_id = ? AND created_at >= ?",
				alert.assignment.AssignedTo, taskID, dayStart).
			Count(&existing)
		if existing > 0 {
			continue
		}

		title, body := deadlineMessage(alert)
		notification := Models.Notification{
			UserID: alert.assignment.AssignedTo,
			TaskID: &taskID,
			Title:  title,
			Body:   body,
			Kind:   "deadline",
		}
		if err := db.Create(&notification).Error; err != nil {
			log.Printf("Failed to store notification for user %d: %v",
				alert.assignment.AssignedTo, err)
			continue
		}

		if err := sendFirebaseNotification(alert, title, body); err != nil {
			log.Printf("Error sending push for task %d to user %d: %v",
				taskID, alert.assignment.AssignedTo, err)
			continue
		}
		log.Printf("Deadline notification sent for task %d to user %d",
			taskID, alert.assignment.AssignedTo)
	}
	return nil
}

func deadlineMessage(alert deadlineAlert) (string, string) {
	if alert.overdue {
		return "Task Overdue",
			fmt.Sprintf("%q is past its due date (%s)",
				alert.task.Title, alert.task.DueDate.Format("Jan 2"))
	}
	return "Deadline Approaching",
		fmt.Sprintf("%q is due %s",
			alert.task.Title, alert.task.DueDate.Format("Jan 2, 15:04"))
}

// Functional Firebase notification sender
func sendFirebaseNotification(alert deadlineAlert, title, body string) error {
	if firebaseClient == nil {
		return fmt.Errorf("firebase client not initialized - call InitFirebase() first")
	}

	var token Models.FCMToken
	err := Models.DB.Where("user_id = ?", alert.assignment.AssignedTo).First(&token).Error
	if err != nil {
		// No registered device, in-app notification still stands
		return nil
	}

	message := &messaging.Message{
		Token: token.Value,
		Data: map[string]string{
			"task_id":  strconv.Itoa(int(alert.task.ID)),
			"priority": alert.task.Priority,
			"due_date": alert.task.DueDate.Format(time.RFC3339),
			"overdue":  strconv.FormatBool(alert.overdue),
		},
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Android: &messaging.AndroidConfig{
			Notification: &messaging.AndroidNotification{
				Color: "#D32F2F",
				Sound: "default",
			},
			Priority: "high",
		},
	}

	response, err := firebaseClient.Send(ctx, message)
	if err != nil {
		return fmt.Errorf("error sending Firebase message: %v", err)
	}

	log.Printf("Successfully sent Firebase notification: %s", response)
	return nil
}
