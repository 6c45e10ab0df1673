// Package authrpc is the wire contract of the gophauth gRPC service:
// request/response messages, the JSON codec they travel with, the service
// descriptor and the typed client.
package authrpc

type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type VerifyTokenRequest struct {
	Token string `json:"token"`
}

// User is the public part of an account as returned to callers.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// AuthResponse answers Register, Login and VerifyToken.
type AuthResponse struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}

type PingRequest struct{}

type PingResponse struct {
	Status string `json:"status"`
}
