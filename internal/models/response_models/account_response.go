package response_models

type AuthResponse struct {
	Token string `json:"token"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type ProfileResponse struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Credits int64  `json:"credits"`
}
