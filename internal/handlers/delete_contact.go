package handlers

//go:generate mockgen -source=delete_contact.go -destination=delete_contact_mock.go -package=handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sbilibin2017/paperplane-redeem/internal/models"
	"github.com/sbilibin2017/paperplane-redeem/internal/services"
)

// ContactDeleter defines the interface that the contact service must implement.
type ContactDeleter interface {
	Delete(ctx context.Context, id string) error
}

// NewDeleteContactHandler returns an HTTP handler that permanently removes one contact.
// @Summary Delete contact
// @Tags contacts
// @Produce json
// @Param id path string true "Contact id"
// @Success 200 {object} models.MessageResponse "Contact deleted successfully"
// @Failure 400 {object} models.ErrorResponse "Malformed id"
// @Failure 404 {object} models.MessageResponse "Contact not found"
// @Failure 500 {object} models.ErrorResponse "Store failure"
// @Router /contacts/{id} [delete]
func NewDeleteContactHandler(svc ContactDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		err := svc.Delete(r.Context(), id)
		switch {
		case err == nil:
			writeJSON(w, http.StatusOK, models.MessageResponse{Message: msgContactDeleted})
		case errors.Is(err, services.ErrContactNotFound):
			writeNotFound(w)
		case errors.Is(err, services.ErrValidation):
			writeError(w, http.StatusBadRequest, err.Error())
		default:
			requestLogger(r).Errorw("failed to delete contact", "id", id, "error", err)
			writeError(w, http.StatusInternalServerError, err.Error())
		}
	}
}
