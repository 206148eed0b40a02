package http

// registerResponse confirms a successful account creation.
type registerResponse struct {
	ID      int64  `json:"id"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// messageResponse is the generic confirmation body used by login, logout,
// profile, and password-update responses.
type messageResponse struct {
	Email   string `json:"email,omitempty"`
	Message string `json:"message,omitempty"`
}

// resetTokenResponse returns a freshly issued password-reset token. In a
// deployment with outbound email the token would travel by mail instead;
// returning it in the body mirrors the original application.
type resetTokenResponse struct {
	Email      string `json:"email"`
	ResetToken string `json:"reset_token"`
}
