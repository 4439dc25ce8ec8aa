package quota

import "time"

// GuestUsage - 비회원 세션의 생성 사용 기록
type GuestUsage struct {
	SessionID   string    `json:"sessionId"`
	UsedCount   int       `json:"usedCount"`
	FirstUsedAt time.Time `json:"firstUsedAt"`
	LastUsedAt  time.Time `json:"lastUsedAt"`
}

// GuestLimitResponse - GET /api/quota/guest 응답
type GuestLimitResponse struct {
	Success      bool   `json:"success"`
	LimitReached bool   `json:"limitReached"`
	UsedCount    int    `json:"usedCount"`
	MaxCount     int    `json:"maxCount"`
	ErrorCode    string `json:"errorCode,omitempty"`
	ErrorMessage string `json:"errorMessage,omitempty"`
}
