package payment

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Purchase statuses follow the gateway's lifecycle
const (
	PurchasePending  = "PENDING"
	PurchasePaid     = "PAID"
	PurchaseFailed   = "FAILED"
	PurchaseCanceled = "CANCELED"
	PurchaseExpired  = "EXPIRED"
)

// Purchase represents a pending or settled course payment. OrderID is the
// external order reference sent to the payment gateway.
type Purchase struct {
	gorm.Model
	UserID    uint            `json:"user_id" gorm:"index;not null"`
	CourseID  uint            `json:"course_id" gorm:"index;not null"`
	OrderID   string          `json:"order_id" gorm:"unique;not null"`
	Amount    decimal.Decimal `json:"amount" gorm:"type:numeric(12,2)"`
	Status    string          `json:"status" gorm:"default:'PENDING'"`
	PaidAt    *time.Time      `json:"paid_at"`
	IsDeleted bool            `gorm:"default:false"`
}

// PaymentGatewayEvent is an audit log row for every webhook notification
// received from the payment gateway, stored before any state change.
type PaymentGatewayEvent struct {
	gorm.Model
	Provider  string         `json:"provider" gorm:"default:'midtrans'"`
	EventType string         `json:"event_type"` // gateway transaction_status
	OrderID   string         `json:"order_id" gorm:"index"`
	Signature string         `json:"signature"`
	Payload   datatypes.JSON `json:"payload"`
	Status    string         `json:"status" gorm:"default:'received'"` // received, processed, failed
	Error     string         `json:"error"`
	IsDeleted bool           `gorm:"default:false"`
}
