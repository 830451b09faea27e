package models

// AdminIdentity is the single static administrator account, built from
// configuration at startup. It is never persisted or mutated at runtime.
type AdminIdentity struct {
	Username     string
	PasswordHash string
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type VerifyResponse struct {
	Username      string `json:"username"`
	Authenticated bool   `json:"authenticated"`
}
