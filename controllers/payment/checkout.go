package paymentController

import (
	"eduflex/database"
	"eduflex/middleware"
	"eduflex/models"
	courseModels "eduflex/models/course"
	paymentModels "eduflex/models/payment"
	"eduflex/services/paymentService"
	"eduflex/utils"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Checkout starts a course purchase. Free courses enroll immediately; paid
// courses get a pending purchase and a gateway payment page.
func Checkout(c *fiber.Ctx) error {
	user, ok := c.Locals("user").(*models.User)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(int)

	var course courseModels.Course
	if err := database.Database.Db.
		Where("id = ? AND is_deleted = ? AND is_published = ?", courseID, false, true).
		First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	var existing courseModels.Enrollment
	if err := database.Database.Db.
		Where("user_id = ? AND course_id = ? AND is_deleted = ?", user.ID, courseID, false).
		First(&existing).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "You are already enrolled in this course!", nil)
	}

	// Free course: no gateway round trip, enroll right away
	if !course.Price.Valid || course.Price.Decimal.IsZero() {
		enrollment, err := paymentService.Enroll(database.Database.Db, user.ID, course.ID)
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to enroll in course!", nil)
		}

		go func(email, name, title string) {
			if err := utils.SendEnrollmentEmail(email, name, title); err != nil {
				log.Printf("Error sending enrollment email: %v", err)
			}
		}(user.Email, user.Name, course.Title)

		return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrolled in course successfully!", enrollment)
	}

	purchase := paymentModels.Purchase{
		UserID:   user.ID,
		CourseID: course.ID,
		OrderID:  uuid.NewString(),
		Amount:   course.Price.Decimal,
		Status:   paymentModels.PurchasePending,
	}

	if err := database.Database.Db.Create(&purchase).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create purchase!", nil)
	}

	token, redirectURL, err := paymentService.CreateSnapTransaction(&purchase, user, course.Title)
	if err != nil {
		log.Printf("Error creating gateway transaction: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to start payment!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Checkout created successfully!", fiber.Map{
		"order_id":     purchase.OrderID,
		"token":        token,
		"redirect_url": redirectURL,
	})
}

// GetMyPurchases lists the user's purchases
func GetMyPurchases(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var purchases []paymentModels.Purchase
	if err := database.Database.Db.
		Where("user_id = ? AND is_deleted = ?", userID, false).
		Order("created_at desc").Find(&purchases).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch purchases!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Purchases fetched successfully!", fiber.Map{
		"purchases": purchases,
	})
}
