package blueprint

import (
	"errors"
	"log"
	"net/http"

	"github.com/gorilla/websocket"
)

// WebSocket upgrader
var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		// 개발용 - 모든 origin 허용
		return true
	},
}

// BlueprintEvent - 스트림으로 내보내는 단계별 이벤트.
// 생성 자체는 동기 엔진 호출이고, 스트림은 완성된 결과를
// 분석 → 장면 ×4 → 부가 콘텐츠 → 완료 순서로 재생해서
// 프론트가 진행 상태를 렌더링할 수 있게 한다.
type BlueprintEvent struct {
	Type         string           `json:"type"` // analysis, scene, addOn, complete, error
	ConceptTitle string           `json:"conceptTitle,omitempty"`
	OneLiner     string           `json:"oneLiner,omitempty"`
	Mood         string           `json:"mood,omitempty"`
	Style        string           `json:"style,omitempty"`
	SceneIndex   int              `json:"sceneIndex"`
	Scene        *Scene           `json:"scene,omitempty"`
	AddOnKind    AddOnKind        `json:"addOnKind,omitempty"`
	AddOnContent string           `json:"addOnContent,omitempty"`
	Blueprint    *GeneratedPrompt `json:"blueprint,omitempty"`
	ErrorCode    string           `json:"errorCode,omitempty"`
	ErrorMessage string           `json:"errorMessage,omitempty"`
}

// HandleStream - GET /api/blueprint/stream (WebSocket)
// 소켓당 하나의 생성 요청을 받아 단계별 이벤트로 응답한다.
func (h *Handler) HandleStream(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("❌ [Blueprint] WebSocket upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	var req BlueprintRequest
	if err := conn.ReadJSON(&req); err != nil {
		log.Printf("❌ [Blueprint] Invalid stream request: %v", err)
		conn.WriteJSON(BlueprintEvent{
			Type:         "error",
			ErrorCode:    ErrCodeInvalidRequest,
			ErrorMessage: "Invalid request format",
		})
		return
	}

	result, err := GeneratePrompt(req.Idea, req.AddOns)
	if err != nil {
		var invalid *InvalidInputError
		if errors.As(err, &invalid) {
			conn.WriteJSON(BlueprintEvent{
				Type:         "error",
				ErrorCode:    ErrCodeInvalidRequest,
				ErrorMessage: invalid.Message,
			})
			return
		}
		conn.WriteJSON(BlueprintEvent{
			Type:         "error",
			ErrorCode:    ErrCodeInternalError,
			ErrorMessage: "Failed to generate blueprint",
		})
		return
	}

	// 분석 결과부터 순서대로 전송
	if err := conn.WriteJSON(BlueprintEvent{
		Type:         "analysis",
		ConceptTitle: result.ConceptTitle,
		OneLiner:     result.OneLiner,
		Mood:         result.Mood,
		Style:        result.Style,
	}); err != nil {
		return
	}

	for i := range result.Scenes {
		if err := conn.WriteJSON(BlueprintEvent{
			Type:       "scene",
			SceneIndex: i,
			Scene:      &result.Scenes[i],
		}); err != nil {
			return
		}
	}

	// 부가 콘텐츠는 고정 순서로 (맵 순회 순서에 의존하지 않음)
	for _, kind := range AllAddOnKinds {
		content, ok := result.AddOns[kind]
		if !ok {
			continue
		}
		if err := conn.WriteJSON(BlueprintEvent{
			Type:         "addOn",
			AddOnKind:    kind,
			AddOnContent: content,
		}); err != nil {
			return
		}
	}

	conn.WriteJSON(BlueprintEvent{
		Type:      "complete",
		Blueprint: result,
	})

	log.Printf("✅ [Blueprint] Streamed blueprint: title=%q", result.ConceptTitle)
}
