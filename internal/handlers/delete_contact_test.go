package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/paperplane-redeem/internal/services"
)

func TestDeleteContactHandler(t *testing.T) {
	const id = "66f1a2b3c4d5e6f708192a3b"

	tests := []struct {
		name         string
		err          error
		expectedCode int
		expectedBody map[string]string
	}{
		{name: "deleted", expectedCode: http.StatusOK, expectedBody: map[string]string{"message": "Contact deleted successfully"}},
		{name: "not found", err: services.ErrContactNotFound, expectedCode: http.StatusNotFound, expectedBody: map[string]string{"message": "Contact not found"}},
		{name: "malformed id", err: services.ErrInvalidID, expectedCode: http.StatusBadRequest, expectedBody: map[string]string{"error": services.ErrInvalidID.Error()}},
		{name: "store failure", err: errors.New("disk full"), expectedCode: http.StatusInternalServerError, expectedBody: map[string]string{"error": "disk full"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc := NewMockContactDeleter(ctrl)
			svc.EXPECT().Delete(gomock.Any(), id).Return(tt.err)

			rr := serve(http.MethodDelete, "/contacts/{id}", "/contacts/"+id, "", NewDeleteContactHandler(svc))
			assert.Equal(t, tt.expectedCode, rr.Code)

			var body map[string]string
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
			assert.Equal(t, tt.expectedBody, body)
		})
	}
}
