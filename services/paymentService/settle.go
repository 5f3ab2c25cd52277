package paymentService

import (
	"crypto/sha512"
	"encoding/hex"
	"encoding/json"
	"errors"
	"strings"
	"time"

	courseModels "eduflex/models/course"
	paymentModels "eduflex/models/payment"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ErrUnknownOrder means the webhook referenced an order we never created.
// The caller logs the event and answers 200 so the gateway stops retrying.
var ErrUnknownOrder = errors.New("unknown order")

// GatewayNotification is the midtrans webhook payload. Extra fields are ignored.
type GatewayNotification struct {
	TransactionTime   string `json:"transaction_time"`
	TransactionStatus string `json:"transaction_status"` // capture, settlement, pending, deny, cancel, expire, refund, failure
	StatusCode        string `json:"status_code"`
	SignatureKey      string `json:"signature_key"`
	OrderID           string `json:"order_id"`
	GrossAmount       string `json:"gross_amount"`
	PaymentType       string `json:"payment_type"`
	FraudStatus       string `json:"fraud_status"` // accept / challenge / deny
	TransactionID     string `json:"transaction_id"`
	SettlementTime    string `json:"settlement_time"`
}

// VerifySignature checks the midtrans signature:
// SHA512(order_id + status_code + gross_amount + serverKey).
func VerifySignature(n *GatewayNotification, serverKey string) bool {
	want := strings.ToLower(strings.TrimSpace(n.SignatureKey))
	if want == "" {
		return false
	}
	sum := sha512.Sum512([]byte(n.OrderID + n.StatusCode + n.GrossAmount + serverKey))
	return hex.EncodeToString(sum[:]) == want
}

// LogGatewayEvent records the raw notification before any state change.
func LogGatewayEvent(db *gorm.DB, n *GatewayNotification, status, errMsg string) {
	payload, _ := json.Marshal(n)
	event := paymentModels.PaymentGatewayEvent{
		Provider:  "midtrans",
		EventType: n.TransactionStatus,
		OrderID:   n.OrderID,
		Signature: n.SignatureKey,
		Payload:   datatypes.JSON(payload),
		Status:    status,
		Error:     errMsg,
	}
	// Audit only: a failed insert must not block settlement.
	db.Create(&event)
}

// mapStatus translates the gateway transaction status to a purchase status.
func mapStatus(n *GatewayNotification) string {
	switch strings.ToLower(n.TransactionStatus) {
	case "capture":
		if strings.ToLower(n.FraudStatus) == "accept" {
			return paymentModels.PurchasePaid
		}
		if strings.ToLower(n.FraudStatus) == "challenge" {
			return paymentModels.PurchasePending
		}
		return paymentModels.PurchaseFailed
	case "settlement":
		return paymentModels.PurchasePaid
	case "pending":
		return paymentModels.PurchasePending
	case "deny", "failure":
		return paymentModels.PurchaseFailed
	case "cancel", "refund":
		return paymentModels.PurchaseCanceled
	case "expire":
		return paymentModels.PurchaseExpired
	}
	return ""
}

// Apply settles the purchase referenced by the notification. A settled payment
// creates the enrollment, exactly once per (user, course); replayed webhooks
// are no-ops. The purchase update and the enrollment insert share one
// transaction. The bool reports whether a new enrollment was created.
func Apply(db *gorm.DB, n *GatewayNotification) (*paymentModels.Purchase, bool, error) {
	var purchase paymentModels.Purchase
	if err := db.Where("order_id = ? AND is_deleted = false", n.OrderID).First(&purchase).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, false, ErrUnknownOrder
		}
		return nil, false, err
	}

	newStatus := mapStatus(n)
	if newStatus == "" || purchase.Status == paymentModels.PurchasePaid {
		// Unknown status, or already settled: nothing to do.
		return &purchase, false, nil
	}

	enrolled := false
	err := db.Transaction(func(tx *gorm.DB) error {
		purchase.Status = newStatus
		if newStatus == paymentModels.PurchasePaid {
			now := time.Now()
			purchase.PaidAt = &now
		}
		if err := tx.Save(&purchase).Error; err != nil {
			return err
		}

		if newStatus != paymentModels.PurchasePaid {
			return nil
		}

		var existing courseModels.Enrollment
		err := tx.Where("user_id = ? AND course_id = ?", purchase.UserID, purchase.CourseID).First(&existing).Error
		if err == nil {
			return nil
		}
		if err != gorm.ErrRecordNotFound {
			return err
		}

		enrollment := courseModels.Enrollment{
			UserID:     purchase.UserID,
			CourseID:   purchase.CourseID,
			EnrolledAt: time.Now(),
		}
		if err := tx.Create(&enrollment).Error; err != nil {
			return err
		}
		enrolled = true
		return nil
	})
	if err != nil {
		return nil, false, err
	}
	return &purchase, enrolled, nil
}

// Enroll creates the enrollment directly, used for free courses where no
// gateway round trip happens. Duplicate enrollments are rejected by the caller.
func Enroll(db *gorm.DB, userID, courseID uint) (*courseModels.Enrollment, error) {
	enrollment := courseModels.Enrollment{
		UserID:     userID,
		CourseID:   courseID,
		EnrolledAt: time.Now(),
	}
	if err := db.Create(&enrollment).Error; err != nil {
		return nil, err
	}
	return &enrollment, nil
}
