package response

// AdminLoginResponse carries the short-lived admin session token.
type AdminLoginResponse struct {
	Token string `json:"token"`
}

// MessageResponse is the generic acknowledgement body for admin
// mutations that return no entity.
type MessageResponse struct {
	Message string `json:"message"`
}
