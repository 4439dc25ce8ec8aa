package blueprint

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"storyboard-server/modules/quota"
)

type Handler struct {
	quota *quota.Service
}

func NewHandler(quotaService *quota.Service) *Handler {
	return &Handler{quota: quotaService}
}

// HandleGenerate - POST /api/blueprint/generate
// 컨셉 텍스트를 4막 비디오 블루프린트로 변환 (비회원은 횟수 제한)
func (h *Handler) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	// OPTIONS 요청 처리
	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusOK)
		return
	}

	// POST만 허용
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	// Request 파싱
	var req BlueprintRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("❌ [Blueprint] Invalid request: %v", err)
		json.NewEncoder(w).Encode(BlueprintResponse{
			Success:      false,
			ErrorMessage: "Invalid request format",
			ErrorCode:    ErrCodeInvalidRequest,
		})
		return
	}

	ctx := r.Context()
	isGuest := strings.TrimSpace(req.UserID) == ""

	// 비회원 제한 확인
	if isGuest && h.quota != nil {
		if strings.TrimSpace(req.SessionID) == "" {
			json.NewEncoder(w).Encode(BlueprintResponse{
				Success:      false,
				ErrorMessage: "sessionId is required for guest requests",
				ErrorCode:    ErrCodeInvalidRequest,
			})
			return
		}

		_, limitReached, err := h.quota.CheckGuestLimit(ctx, req.SessionID)
		if err == nil && limitReached {
			log.Printf("🚫 [Blueprint] Guest limit reached: session=%s", req.SessionID)
			json.NewEncoder(w).Encode(BlueprintResponse{
				Success:      false,
				ErrorMessage: "Guest generation limit reached. Please sign in to continue.",
				ErrorCode:    ErrCodeGuestLimitReached,
			})
			return
		}
		// Redis 장애 시에는 제한 없이 통과 (생성 자체는 로컬 연산)
	}

	log.Printf("🎬 [Blueprint] Generating: idea=%q, addOns=%+v",
		truncateString(req.Idea, 40), req.AddOns)

	result, err := GeneratePrompt(req.Idea, req.AddOns)
	if err != nil {
		var invalid *InvalidInputError
		if errors.As(err, &invalid) {
			json.NewEncoder(w).Encode(BlueprintResponse{
				Success:      false,
				ErrorMessage: invalid.Message,
				ErrorCode:    ErrCodeInvalidRequest,
			})
			return
		}

		log.Printf("❌ [Blueprint] Generation failed: %v", err)
		json.NewEncoder(w).Encode(BlueprintResponse{
			Success:      false,
			ErrorMessage: "Failed to generate blueprint",
			ErrorCode:    ErrCodeInternalError,
		})
		return
	}

	// 성공한 생성만 비회원 횟수에 반영
	if isGuest && h.quota != nil {
		if _, err := h.quota.IncrementGuestUsage(ctx, req.SessionID); err != nil {
			log.Printf("⚠️ [Blueprint] Failed to update guest usage: %v", err)
		}
	}

	log.Printf("✅ [Blueprint] Generated: title=%q, addOns=%d",
		result.ConceptTitle, len(result.AddOns))

	json.NewEncoder(w).Encode(BlueprintResponse{
		Success:   true,
		Blueprint: result,
	})
}

// truncateString - 로그용 문자열 자르기
func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
