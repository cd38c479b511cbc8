package models

// RedeemCoinsResponse is returned after a contact is stored and notified.
// swagger:model RedeemCoinsResponse
type RedeemCoinsResponse struct {
	// example: Redeem email sent successfully!
	Message string   `json:"message"`
	Contact *Contact `json:"contact"`
}

// MessageResponse carries a plain status message.
// swagger:model MessageResponse
type MessageResponse struct {
	// example: Contact deleted successfully
	Message string `json:"message"`
}

// ErrorResponse carries the message of the failure that ended the request.
// swagger:model ErrorResponse
type ErrorResponse struct {
	// example: contact validation failed: userEmail: Invalid email address
	Error string `json:"error"`
}
