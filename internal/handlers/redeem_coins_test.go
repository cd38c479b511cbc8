package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/sbilibin2017/paperplane-redeem/internal/models"
	"github.com/sbilibin2017/paperplane-redeem/internal/services"
	"github.com/sbilibin2017/paperplane-redeem/internal/validation"
)

const redeemURL = "https://redeem.paperplane.com/login"

func TestRedeemCoinsHandler(t *testing.T) {
	stored := &models.Contact{
		ID:             primitive.NewObjectID(),
		FullName:       strPtr("Jane Doe"),
		UserEmail:      "jane@example.com",
		RemainingCoins: numPtr(120),
	}
	wantData := map[string]any{
		"fullName":       "Jane Doe",
		"redeemed_Coins": false,
		"remainingCoins": 120.0,
		"redeemUrl":      redeemURL,
	}

	tests := []struct {
		name         string
		body         string
		setup        func(c *MockContactCreator, n *MockRedeemNotifier)
		expectedCode int
		expectedErr  string
	}{
		{
			name: "created and notified",
			body: `{"userEmail":"jane@example.com","fullName":"Jane Doe","remainingCoins":120}`,
			setup: func(c *MockContactCreator, n *MockRedeemNotifier) {
				c.EXPECT().Create(gomock.Any(), models.ContactInput{
					UserEmail:      strPtr("jane@example.com"),
					FullName:       strPtr("Jane Doe"),
					RemainingCoins: numPtr(120),
				}).Return(stored, nil)
				n.EXPECT().Send(gomock.Any(), "jane@example.com", RedeemEmailSubject, RedeemEmailTemplate, wantData).Return(nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name: "validation failure",
			body: `{"userEmail":"not-an-email"}`,
			setup: func(c *MockContactCreator, _ *MockRedeemNotifier) {
				c.EXPECT().Create(gomock.Any(), gomock.Any()).
					Return(nil, validation.Validate(models.Contact{UserEmail: "not-an-email"}))
			},
			expectedCode: http.StatusBadRequest,
			expectedErr:  "contact validation failed: userEmail: Invalid email address",
		},
		{
			name:         "invalid json",
			body:         `{"userEmail":`,
			setup:        func(*MockContactCreator, *MockRedeemNotifier) {},
			expectedCode: http.StatusBadRequest,
			expectedErr:  "unexpected EOF",
		},
		{
			name:         "wrong field type",
			body:         `{"userEmail":"a@b.com","age":"old"}`,
			setup:        func(*MockContactCreator, *MockRedeemNotifier) {},
			expectedCode: http.StatusBadRequest,
			expectedErr:  "json: cannot unmarshal",
		},
		{
			name: "store failure",
			body: `{"userEmail":"jane@example.com"}`,
			setup: func(c *MockContactCreator, _ *MockRedeemNotifier) {
				c.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, errors.New("server selection timeout"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedErr:  "server selection timeout",
		},
		{
			name: "email failure after the record is stored",
			body: `{"userEmail":"jane@example.com"}`,
			setup: func(c *MockContactCreator, n *MockRedeemNotifier) {
				c.EXPECT().Create(gomock.Any(), gomock.Any()).Return(stored, nil)
				n.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(services.ErrDelivery)
			},
			expectedCode: http.StatusInternalServerError,
			expectedErr:  "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			creator := NewMockContactCreator(ctrl)
			notifier := NewMockRedeemNotifier(ctrl)
			tt.setup(creator, notifier)

			rr := serve(http.MethodPost, "/redeem_coins", "/redeem_coins", tt.body,
				NewRedeemCoinsHandler(creator, notifier, redeemURL))

			assert.Equal(t, tt.expectedCode, rr.Code)
			assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

			if tt.expectedErr != "" {
				var resp models.ErrorResponse
				require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.True(t, strings.HasPrefix(resp.Error, tt.expectedErr), resp.Error)
				return
			}

			var resp models.RedeemCoinsResponse
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
			assert.Equal(t, "Redeem email sent successfully!", resp.Message)
			require.NotNil(t, resp.Contact)
			assert.Equal(t, stored.ID, resp.Contact.ID)
		})
	}
}

func TestRedeemCoinsHandler_EmptyBodyIsValidated(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	creator := NewMockContactCreator(ctrl)
	creator.EXPECT().Create(gomock.Any(), models.ContactInput{}).
		Return(nil, validation.Validate(models.Contact{}))

	rr := serve(http.MethodPost, "/redeem_coins", "/redeem_coins", "",
		NewRedeemCoinsHandler(creator, NewMockRedeemNotifier(ctrl), redeemURL))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "Path userEmail is required")
}

func TestRedeemEmailData(t *testing.T) {
	c := &models.Contact{UserEmail: "a@b.com", Redeemed: true}

	data := redeemEmailData(c, redeemURL)

	assert.Equal(t, map[string]any{
		"fullName":       "",
		"redeemed_Coins": true,
		"remainingCoins": "",
		"redeemUrl":      redeemURL,
	}, data)
}
