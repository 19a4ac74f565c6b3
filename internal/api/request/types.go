package request

// RegisterRequest is the request body for registering a user
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginRequest is the request body for logging in
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// TrackPlayRequest is the request body for reporting elapsed play time.
// Duration is a pointer so a missing field can be told apart from zero.
type TrackPlayRequest struct {
	GameTitle string   `json:"gameTitle"`
	Duration  *float64 `json:"duration"`
}

// ContactRequest is the request body for submitting a contact message
type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}
