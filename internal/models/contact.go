package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Contact is a paper plane coin redemption record.
// swagger:model Contact
type Contact struct {
	ID             primitive.ObjectID `json:"id" bson:"_id,omitempty" swaggertype:"string" example:"66f1a2b3c4d5e6f708192a3b"`
	FullName       *string            `json:"fullName,omitempty" bson:"fullName,omitempty" example:"Jane Doe"`
	UserEmail      string             `json:"userEmail" bson:"userEmail" validate:"required,useremail" example:"jane@example.com"`
	Age            *float64           `json:"age,omitempty" bson:"age,omitempty" example:"29"`
	TotalCoins     *float64           `json:"totalCoins,omitempty" bson:"totalCoins,omitempty" example:"500"`
	RemainingCoins *float64           `json:"remainingCoins,omitempty" bson:"remainingCoins,omitempty" example:"120"`
	Redeemed       bool               `json:"redeemed" bson:"redeemed" example:"false"`
	IsBanned       bool               `json:"isBanned" bson:"isBanned" example:"false"`
	BanReason      *string            `json:"banReason,omitempty" bson:"banReason,omitempty"`
	CreatedAt      time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt      time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// ContactInput carries client supplied fields for create and update.
// A nil pointer means the field was not supplied.
// swagger:model ContactInput
type ContactInput struct {
	FullName       *string  `json:"fullName,omitempty" bson:"fullName,omitempty" example:"Jane Doe"`
	UserEmail      *string  `json:"userEmail,omitempty" bson:"userEmail,omitempty" validate:"omitnil,useremail" example:"jane@example.com"`
	Age            *float64 `json:"age,omitempty" bson:"age,omitempty" example:"29"`
	TotalCoins     *float64 `json:"totalCoins,omitempty" bson:"totalCoins,omitempty" example:"500"`
	RemainingCoins *float64 `json:"remainingCoins,omitempty" bson:"remainingCoins,omitempty" example:"120"`
	Redeemed       *bool    `json:"redeemed,omitempty" bson:"redeemed,omitempty" example:"false"`
	IsBanned       *bool    `json:"isBanned,omitempty" bson:"isBanned,omitempty" example:"false"`
	BanReason      *string  `json:"banReason,omitempty" bson:"banReason,omitempty"`
}

// NewContact builds a record from input, applying defaults for the flags.
// Identity and timestamps are left for the store to assign.
func NewContact(in ContactInput) Contact {
	c := Contact{
		FullName:       in.FullName,
		Age:            in.Age,
		TotalCoins:     in.TotalCoins,
		RemainingCoins: in.RemainingCoins,
		BanReason:      in.BanReason,
	}
	if in.UserEmail != nil {
		c.UserEmail = *in.UserEmail
	}
	if in.Redeemed != nil {
		c.Redeemed = *in.Redeemed
	}
	if in.IsBanned != nil {
		c.IsBanned = *in.IsBanned
	}
	return c
}
