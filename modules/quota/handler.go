package quota

import (
	"encoding/json"
	"log"
	"net/http"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// HandleGuestQuota - GET /api/quota/guest?sessionId=...
// 프론트가 생성 버튼 활성화 여부를 판단할 때 사용
func (h *Handler) HandleGuestQuota(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusOK)
		return
	}

	sessionID := r.URL.Query().Get("sessionId")
	if sessionID == "" {
		json.NewEncoder(w).Encode(GuestLimitResponse{
			Success:      false,
			ErrorCode:    "INVALID_REQUEST",
			ErrorMessage: "sessionId is required",
		})
		return
	}

	usage, limitReached, err := h.service.CheckGuestLimit(r.Context(), sessionID)
	if err != nil {
		log.Printf("⚠️ [Quota] Failed to check guest limit: %v", err)
		json.NewEncoder(w).Encode(GuestLimitResponse{
			Success:      false,
			ErrorCode:    "INTERNAL_ERROR",
			ErrorMessage: "Failed to check guest limit",
		})
		return
	}

	json.NewEncoder(w).Encode(GuestLimitResponse{
		Success:      true,
		LimitReached: limitReached,
		UsedCount:    usage.UsedCount,
		MaxCount:     h.service.MaxUses(),
	})
}
