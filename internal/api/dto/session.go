package dto

type SessionResponse struct {
	SessionID string `json:"session_id"`
}
