package paymentService

import (
	"crypto/sha512"
	"encoding/hex"
	"testing"

	"eduflex/models"
	courseModels "eduflex/models/course"
	paymentModels "eduflex/models/payment"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const testServerKey = "SB-Mid-server-testkey"

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&courseModels.Course{},
		&courseModels.Enrollment{},
		&paymentModels.Purchase{},
		&paymentModels.PaymentGatewayEvent{},
	))

	t.Cleanup(func() {
		sqlDB.Close()
	})
	return db
}

func createPendingPurchase(t *testing.T, db *gorm.DB, orderID string) *paymentModels.Purchase {
	t.Helper()

	user := models.User{Name: "Buyer", Email: orderID + "@example.com", Password: "hashed", Role: models.RoleStudent}
	require.NoError(t, db.Create(&user).Error)

	course := courseModels.Course{CreatedByID: 999, Title: "Paid course", Description: "d"}
	require.NoError(t, db.Create(&course).Error)

	purchase := paymentModels.Purchase{
		UserID:   user.ID,
		CourseID: course.ID,
		OrderID:  orderID,
		Amount:   decimal.NewFromInt(150000),
		Status:   paymentModels.PurchasePending,
	}
	require.NoError(t, db.Create(&purchase).Error)
	return &purchase
}

func signedNotification(orderID, status string) *GatewayNotification {
	n := &GatewayNotification{
		TransactionStatus: status,
		StatusCode:        "200",
		OrderID:           orderID,
		GrossAmount:       "150000.00",
	}
	sum := sha512.Sum512([]byte(n.OrderID + n.StatusCode + n.GrossAmount + testServerKey))
	n.SignatureKey = hex.EncodeToString(sum[:])
	return n
}

func TestVerifySignature(t *testing.T) {
	n := signedNotification("ORD-1", "settlement")
	assert.True(t, VerifySignature(n, testServerKey))
	assert.False(t, VerifySignature(n, "some-other-key"))

	n.SignatureKey = "deadbeef"
	assert.False(t, VerifySignature(n, testServerKey))

	n.SignatureKey = ""
	assert.False(t, VerifySignature(n, testServerKey))
}

func TestApplySettlementEnrollsOnce(t *testing.T) {
	db := setupTestDB(t)
	purchase := createPendingPurchase(t, db, "ORD-settle")
	n := signedNotification("ORD-settle", "settlement")

	got, enrolled, err := Apply(db, n)
	require.NoError(t, err)
	assert.True(t, enrolled)
	assert.Equal(t, paymentModels.PurchasePaid, got.Status)
	require.NotNil(t, got.PaidAt)

	var enrollments int64
	require.NoError(t, db.Model(&courseModels.Enrollment{}).
		Where("user_id = ? AND course_id = ?", purchase.UserID, purchase.CourseID).
		Count(&enrollments).Error)
	assert.EqualValues(t, 1, enrollments)

	// Replayed webhook: no second enrollment, no error.
	_, enrolled, err = Apply(db, n)
	require.NoError(t, err)
	assert.False(t, enrolled)

	require.NoError(t, db.Model(&courseModels.Enrollment{}).
		Where("user_id = ? AND course_id = ?", purchase.UserID, purchase.CourseID).
		Count(&enrollments).Error)
	assert.EqualValues(t, 1, enrollments)
}

func TestApplyPendingDoesNotEnroll(t *testing.T) {
	db := setupTestDB(t)
	purchase := createPendingPurchase(t, db, "ORD-pending")

	_, enrolled, err := Apply(db, signedNotification("ORD-pending", "pending"))
	require.NoError(t, err)
	assert.False(t, enrolled)

	var enrollments int64
	require.NoError(t, db.Model(&courseModels.Enrollment{}).
		Where("user_id = ?", purchase.UserID).
		Count(&enrollments).Error)
	assert.Zero(t, enrollments)
}

func TestApplyTerminalStatuses(t *testing.T) {
	cases := map[string]string{
		"deny":   paymentModels.PurchaseFailed,
		"cancel": paymentModels.PurchaseCanceled,
		"expire": paymentModels.PurchaseExpired,
	}
	for gatewayStatus, want := range cases {
		t.Run(gatewayStatus, func(t *testing.T) {
			db := setupTestDB(t)
			orderID := "ORD-" + gatewayStatus
			createPendingPurchase(t, db, orderID)

			got, enrolled, err := Apply(db, signedNotification(orderID, gatewayStatus))
			require.NoError(t, err)
			assert.False(t, enrolled)
			assert.Equal(t, want, got.Status)
			assert.Nil(t, got.PaidAt)
		})
	}
}

func TestApplyCaptureFollowsFraudStatus(t *testing.T) {
	db := setupTestDB(t)
	createPendingPurchase(t, db, "ORD-capture")

	n := signedNotification("ORD-capture", "capture")
	n.FraudStatus = "challenge"
	got, enrolled, err := Apply(db, n)
	require.NoError(t, err)
	assert.False(t, enrolled)
	assert.Equal(t, paymentModels.PurchasePending, got.Status)

	n.FraudStatus = "accept"
	got, enrolled, err = Apply(db, n)
	require.NoError(t, err)
	assert.True(t, enrolled)
	assert.Equal(t, paymentModels.PurchasePaid, got.Status)
}

func TestApplyUnknownOrder(t *testing.T) {
	db := setupTestDB(t)

	_, _, err := Apply(db, signedNotification("ORD-ghost", "settlement"))
	require.ErrorIs(t, err, ErrUnknownOrder)
}

func TestApplyPaidPurchaseIgnoresLaterStatuses(t *testing.T) {
	db := setupTestDB(t)
	createPendingPurchase(t, db, "ORD-final")

	_, _, err := Apply(db, signedNotification("ORD-final", "settlement"))
	require.NoError(t, err)

	// A late "expire" after settlement must not flip the purchase back.
	got, enrolled, err := Apply(db, signedNotification("ORD-final", "expire"))
	require.NoError(t, err)
	assert.False(t, enrolled)
	assert.Equal(t, paymentModels.PurchasePaid, got.Status)
}

func TestLogGatewayEventRecordsPayload(t *testing.T) {
	db := setupTestDB(t)
	n := signedNotification("ORD-log", "settlement")

	LogGatewayEvent(db, n, "received", "")

	var event paymentModels.PaymentGatewayEvent
	require.NoError(t, db.Where("order_id = ?", "ORD-log").First(&event).Error)
	assert.Equal(t, "midtrans", event.Provider)
	assert.Equal(t, "settlement", event.EventType)
	assert.Equal(t, "received", event.Status)
	assert.NotEmpty(t, event.Payload)
}
