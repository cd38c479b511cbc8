package handlers

//go:generate mockgen -source=list_contacts.go -destination=list_contacts_mock.go -package=handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/sbilibin2017/paperplane-redeem/internal/models"
)

// ContactLister defines the interface that the contact service must implement.
type ContactLister interface {
	List(ctx context.Context, page, limit int64) (*models.ContactPage, error)
}

// NewListContactsHandler returns an HTTP handler for paginated contact listing.
// @Summary List contacts
// @Description Returns one page of contacts. page defaults to 1 and limit to 10.
// @Tags contacts
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(10)
// @Success 200 {object} models.ContactPage "Page of contacts"
// @Failure 500 {object} models.ErrorResponse "Store failure"
// @Router /contacts [get]
func NewListContactsHandler(svc ContactLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		page := queryInt(q.Get("page"))
		limit := queryInt(q.Get("limit"))

		result, err := svc.List(r.Context(), page, limit)
		if err != nil {
			requestLogger(r).Errorw("failed to list contacts", "page", page, "limit", limit, "error", err)
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}

		writeJSON(w, http.StatusOK, result)
	}
}

// queryInt parses a query value, yielding 0 (use the default) when it is
// absent or not a number.
func queryInt(s string) int64 {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0
	}
	return n
}
