package paymentController

import (
	"eduflex/config"
	"eduflex/database"
	"eduflex/middleware"
	"eduflex/models"
	paymentModels "eduflex/models/payment"
	"eduflex/services/paymentService"
	"eduflex/utils"
	"log"

	"github.com/gofiber/fiber/v2"
)

// GatewayWebhook receives payment notifications from midtrans. The signature
// is verified before anything mutates; every notification is logged to the
// gateway event table. Unknown orders answer 200 so the gateway stops
// retrying them.
func GatewayWebhook(c *fiber.Ctx) error {
	var notif paymentService.GatewayNotification
	if err := c.BodyParser(&notif); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid payload!", nil)
	}

	db := database.Database.Db

	if !paymentService.VerifySignature(&notif, config.AppConfig.MidtransServerKey) {
		paymentService.LogGatewayEvent(db, &notif, "failed", "invalid signature")
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid signature!", nil)
	}

	purchase, enrolled, err := paymentService.Apply(db, &notif)
	if err != nil {
		if err == paymentService.ErrUnknownOrder {
			paymentService.LogGatewayEvent(db, &notif, "failed", "purchase not found for order")
			return middleware.JsonResponse(c, fiber.StatusOK, true, "Notification ignored.", nil)
		}
		paymentService.LogGatewayEvent(db, &notif, "failed", err.Error())
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process notification!", nil)
	}

	paymentService.LogGatewayEvent(db, &notif, "processed", "")

	if enrolled {
		go func(p paymentModels.Purchase) {
			var user models.User
			var title string
			if err := db.Where("id = ?", p.UserID).First(&user).Error; err != nil {
				log.Printf("Error loading user for enrollment email: %v", err)
				return
			}
			db.Table("courses").Select("title").Where("id = ?", p.CourseID).Scan(&title)
			if err := utils.SendEnrollmentEmail(user.Email, user.Name, title); err != nil {
				log.Printf("Error sending enrollment email: %v", err)
			}
		}(*purchase)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Notification processed.", fiber.Map{
		"order_id": purchase.OrderID,
		"status":   purchase.Status,
	})
}
