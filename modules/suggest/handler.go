package suggest

import (
	"encoding/json"
	"net/http"
)

// Handler handles suggestion-chip requests without any state.
type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

// HandleIdeas - GET /api/suggest/ideas
// 입력 폼의 제안 칩에 쓰이는 시작 아이디어 목록
func (h *Handler) HandleIdeas(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusOK)
		return
	}

	json.NewEncoder(w).Encode(map[string]interface{}{
		"ideas": StarterIdeas(),
	})
}
