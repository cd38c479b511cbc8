package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestNewContact_Defaults(t *testing.T) {
	email := "a@b.com"
	c := NewContact(ContactInput{UserEmail: &email})

	assert.Equal(t, "a@b.com", c.UserEmail)
	assert.False(t, c.Redeemed)
	assert.False(t, c.IsBanned)
	assert.True(t, c.ID.IsZero())
	assert.Nil(t, c.FullName)
}

func TestNewContact_ExplicitFlags(t *testing.T) {
	email, reason := "a@b.com", "fraud"
	yes := true
	c := NewContact(ContactInput{UserEmail: &email, Redeemed: &yes, IsBanned: &yes, BanReason: &reason})

	assert.True(t, c.Redeemed)
	assert.True(t, c.IsBanned)
	assert.Equal(t, &reason, c.BanReason)
}

func TestContact_JSONExposesPlainID(t *testing.T) {
	id := primitive.NewObjectID()
	c := Contact{ID: id, UserEmail: "a@b.com", CreatedAt: time.Now(), UpdatedAt: time.Now()}

	raw, err := json.Marshal(c)
	require.NoError(t, err)

	var out map[string]any
	require.NoError(t, json.Unmarshal(raw, &out))

	assert.Equal(t, id.Hex(), out["id"])
	assert.NotContains(t, out, "_id")
	assert.NotContains(t, out, "__v")
	assert.NotContains(t, out, "fullName")
	assert.Equal(t, false, out["redeemed"])
	assert.Equal(t, false, out["isBanned"])
}
