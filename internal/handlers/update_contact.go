package handlers

//go:generate mockgen -source=update_contact.go -destination=update_contact_mock.go -package=handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sbilibin2017/paperplane-redeem/internal/models"
	"github.com/sbilibin2017/paperplane-redeem/internal/services"
)

// ContactUpdater defines the interface that the contact service must implement.
type ContactUpdater interface {
	Update(ctx context.Context, id string, in models.ContactInput) (*models.Contact, error)
}

// NewUpdateContactHandler returns an HTTP handler that replaces the supplied
// fields of one contact.
// @Summary Update contact
// @Description Partial update. Fields absent from the body keep their values.
// @Tags contacts
// @Accept json
// @Produce json
// @Param id path string true "Contact id"
// @Param contact body models.ContactInput true "Fields to change"
// @Success 200 {object} models.Contact
// @Failure 400 {object} models.ErrorResponse "Invalid body, id or field"
// @Failure 404 {object} models.MessageResponse "Contact not found"
// @Failure 500 {object} models.ErrorResponse "Store failure"
// @Router /contacts/{id} [put]
func NewUpdateContactHandler(svc ContactUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		var in models.ContactInput
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil && !errors.Is(err, io.EOF) {
			requestLogger(r).Warnw("failed to decode update request", "id", id, "error", err)
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		contact, err := svc.Update(r.Context(), id, in)
		switch {
		case err == nil:
			writeJSON(w, http.StatusOK, contact)
		case errors.Is(err, services.ErrContactNotFound):
			writeNotFound(w)
		case errors.Is(err, services.ErrValidation):
			writeError(w, http.StatusBadRequest, err.Error())
		default:
			requestLogger(r).Errorw("failed to update contact", "id", id, "error", err)
			writeError(w, http.StatusInternalServerError, err.Error())
		}
	}
}
