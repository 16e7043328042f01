package auth

type LoginRequest struct {
	Address   string `json:"address"`   // base58 публичный ключ ed25519
	Message   string `json:"message"`   // slots-login:<unix>
	Signature string `json:"signature"` // base58 подпись сообщения
}

type LoginResponse struct {
	AccessToken string `json:"access_token"`
}
