package utils

import (
	"eduflex/database"
	"eduflex/models"
	courseModels "eduflex/models/course"
	"eduflex/services/courseService"
	"log"

	"github.com/robfig/cron/v3"
)

// InitializeReminderScheduler sets up the weekly progress reminder job
func InitializeReminderScheduler() {
	log.Println("[REMINDER-SCHEDULER] Initializing progress reminder scheduler...")

	c := cron.New()

	// Run every Monday at 9 AM
	c.AddFunc("0 9 * * 1", func() {
		log.Println("[REMINDER-SCHEDULER] Running weekly progress reminder check...")
		SendProgressReminders()
	})

	c.Start()
	log.Println("[REMINDER-SCHEDULER] Progress reminder scheduler started - runs Mondays at 9 AM")
}

// SendProgressReminders emails every enrolled student who has not finished
// their course yet.
func SendProgressReminders() {
	db := database.Database.Db

	var enrollments []courseModels.Enrollment
	if err := db.Where("is_deleted = false").Find(&enrollments).Error; err != nil {
		log.Printf("[REMINDER-SCHEDULER] Error fetching enrollments: %v", err)
		return
	}

	sent := 0
	for _, enrollment := range enrollments {
		percent, _, total, err := courseService.CourseProgress(db, enrollment.UserID, enrollment.CourseID)
		if err != nil {
			log.Printf("[REMINDER-SCHEDULER] Error computing progress for enrollment %d: %v", enrollment.ID, err)
			continue
		}
		if total == 0 || percent >= 100 {
			continue
		}

		var user models.User
		if err := db.Where("id = ? AND is_deleted = false", enrollment.UserID).First(&user).Error; err != nil {
			continue
		}

		var course courseModels.Course
		if err := db.Where("id = ? AND is_deleted = false AND is_published = true", enrollment.CourseID).First(&course).Error; err != nil {
			continue
		}

		if err := SendProgressReminderEmail(user.Email, user.Name, course.Title, percent); err != nil {
			log.Printf("[REMINDER-SCHEDULER] Error emailing user %d: %v", user.ID, err)
			continue
		}
		sent++
	}

	log.Printf("[REMINDER-SCHEDULER] Sent %d progress reminders", sent)
}
