package dto

// TokenRequest is the payload for POST /jwt. Any extra fields the client
// sends are ignored; only the email becomes part of the caller's identity.
type TokenRequest struct {
	Email string `json:"email"`
	Role  string `json:"role,omitempty"`
}

// TokenResponse carries the signed bearer token.
type TokenResponse struct {
	Token string `json:"token"`
}
