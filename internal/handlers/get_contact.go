package handlers

//go:generate mockgen -source=get_contact.go -destination=get_contact_mock.go -package=handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sbilibin2017/paperplane-redeem/internal/models"
	"github.com/sbilibin2017/paperplane-redeem/internal/services"
)

// ContactGetter defines the interface that the contact service must implement.
type ContactGetter interface {
	GetByID(ctx context.Context, id string) (*models.Contact, error)
}

// NewGetContactHandler returns an HTTP handler that fetches one contact.
// @Summary Get contact
// @Tags contacts
// @Produce json
// @Param id path string true "Contact id"
// @Success 200 {object} models.Contact
// @Failure 400 {object} models.ErrorResponse "Malformed id"
// @Failure 404 {object} models.MessageResponse "Contact not found"
// @Failure 500 {object} models.ErrorResponse "Store failure"
// @Router /contacts/{id} [get]
func NewGetContactHandler(svc ContactGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		contact, err := svc.GetByID(r.Context(), id)
		switch {
		case err == nil:
			writeJSON(w, http.StatusOK, contact)
		case errors.Is(err, services.ErrContactNotFound):
			writeNotFound(w)
		case errors.Is(err, services.ErrValidation):
			writeError(w, http.StatusBadRequest, err.Error())
		default:
			requestLogger(r).Errorw("failed to get contact", "id", id, "error", err)
			writeError(w, http.StatusInternalServerError, err.Error())
		}
	}
}
