package handlers

//go:generate mockgen -source=redeem_coins.go -destination=redeem_coins_mock.go -package=handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/sbilibin2017/paperplane-redeem/internal/models"
	"github.com/sbilibin2017/paperplane-redeem/internal/services"
)

// Notification sent when coins are redeemed.
const (
	RedeemEmailSubject  = "Redeem Your Paper Plane Coins"
	RedeemEmailTemplate = "redeemCoins"
)

// ContactCreator defines the interface that the contact service must implement.
type ContactCreator interface {
	Create(ctx context.Context, in models.ContactInput) (*models.Contact, error)
}

// RedeemNotifier defines the interface that the notification service must implement.
type RedeemNotifier interface {
	Send(ctx context.Context, recipient, subject, templateName string, data map[string]any) error
}

// NewRedeemCoinsHandler returns an HTTP handler that stores a redemption
// record and then emails the redeem link to its owner.
// The record is not removed if the email cannot be sent.
// @Summary Redeem paper plane coins
// @Description Stores a redemption record and sends the redeem email to userEmail.
// @Tags contacts
// @Accept json
// @Produce json
// @Param contact body models.ContactInput true "Redemption record"
// @Success 201 {object} models.RedeemCoinsResponse "Record stored and email sent"
// @Failure 400 {object} models.ErrorResponse "Invalid body or validation failure"
// @Failure 500 {object} models.ErrorResponse "Store or email failure"
// @Router /redeem_coins [post]
func NewRedeemCoinsHandler(creator ContactCreator, notifier RedeemNotifier, redeemURL string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var in models.ContactInput
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil && !errors.Is(err, io.EOF) {
			requestLogger(r).Warnw("failed to decode redeem request", "error", err)
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		contact, err := creator.Create(ctx, in)
		if err != nil {
			if errors.Is(err, services.ErrValidation) {
				writeError(w, http.StatusBadRequest, err.Error())
				return
			}
			requestLogger(r).Errorw("failed to create contact", "error", err)
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}

		err = notifier.Send(ctx, contact.UserEmail, RedeemEmailSubject, RedeemEmailTemplate, redeemEmailData(contact, redeemURL))
		if err != nil {
			requestLogger(r).Errorw("contact stored but redeem email failed",
				"id", contact.ID.Hex(),
				"to", contact.UserEmail,
				"error", err,
			)
			writeError(w, http.StatusInternalServerError, msgInternalError)
			return
		}

		writeJSON(w, http.StatusCreated, models.RedeemCoinsResponse{
			Message: msgRedeemEmailSent,
			Contact: contact,
		})
	}
}

// redeemEmailData maps a record onto the keys the redeemCoins template reads.
// The template calls the redeemed flag redeemed_Coins.
func redeemEmailData(c *models.Contact, redeemURL string) map[string]any {
	data := map[string]any{
		"fullName":       "",
		"redeemed_Coins": c.Redeemed,
		"remainingCoins": "",
		"redeemUrl":      redeemURL,
	}
	if c.FullName != nil {
		data["fullName"] = *c.FullName
	}
	if c.RemainingCoins != nil {
		data["remainingCoins"] = *c.RemainingCoins
	}
	return data
}
