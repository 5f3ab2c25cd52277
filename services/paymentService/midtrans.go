package paymentService

import (
	"eduflex/models"
	paymentModels "eduflex/models/payment"

	midtrans "github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"
)

// SnapClient is the shared midtrans Snap client.
var SnapClient snap.Client

// InitMidtrans must be called during app bootstrap.
func InitMidtrans(serverKey string, useProduction bool) {
	if useProduction {
		SnapClient.New(serverKey, midtrans.Production)
	} else {
		SnapClient.New(serverKey, midtrans.Sandbox)
	}
}

// CreateSnapTransaction registers the purchase with the gateway and returns
// the snap token plus the hosted payment page URL.
func CreateSnapTransaction(purchase *paymentModels.Purchase, user *models.User, courseTitle string) (string, string, error) {
	gross := purchase.Amount.Round(0).IntPart()

	req := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  purchase.OrderID,
			GrossAmt: gross,
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: user.Name,
			Email: user.Email,
		},
		Items: &[]midtrans.ItemDetails{
			{
				ID:       purchase.OrderID,
				Price:    gross,
				Qty:      1,
				Name:     courseTitle,
				Category: "COURSE",
			},
		},
	}

	resp, err := SnapClient.CreateTransaction(req)
	if err != nil {
		return "", "", err
	}
	return resp.Token, resp.RedirectURL, nil
}
