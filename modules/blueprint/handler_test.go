package blueprint

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storyboard-server/modules/common/config"
	"storyboard-server/modules/quota"
)

func newTestHandler() *Handler {
	cfg := &config.Config{GuestMaxGenerations: 5, GuestLimitTTLHours: 24}
	return NewHandler(quota.NewService(nil, cfg))
}

func postGenerate(t *testing.T, h *Handler, req BlueprintRequest) BlueprintResponse {
	t.Helper()

	body, err := json.Marshal(req)
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	h.HandleGenerate(rec, httptest.NewRequest(http.MethodPost, "/api/blueprint/generate", bytes.NewReader(body)))

	var resp BlueprintResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return resp
}

func TestHandleGenerateSuccess(t *testing.T) {
	h := newTestHandler()

	resp := postGenerate(t, h, BlueprintRequest{
		Idea:   "A jazz trumpeter summoning rain over a drought-stricken town.",
		UserID: "user-1",
		AddOns: AddOnSelections{Voiceover: true},
	})

	require.True(t, resp.Success, "errorMessage=%s", resp.ErrorMessage)
	require.NotNil(t, resp.Blueprint)
	assert.Len(t, resp.Blueprint.Scenes, NumScenes)
	assert.Contains(t, resp.Blueprint.AddOns, AddOnVoiceover)
}

func TestHandleGenerateEmptyIdea(t *testing.T) {
	h := newTestHandler()

	resp := postGenerate(t, h, BlueprintRequest{Idea: "   ", UserID: "user-1"})

	assert.False(t, resp.Success)
	assert.Equal(t, ErrCodeInvalidRequest, resp.ErrorCode)
	assert.NotEmpty(t, resp.ErrorMessage)
	assert.Nil(t, resp.Blueprint)
}

func TestHandleGenerateGuestRequiresSessionID(t *testing.T) {
	h := newTestHandler()

	resp := postGenerate(t, h, BlueprintRequest{Idea: "A valid idea."})

	assert.False(t, resp.Success)
	assert.Equal(t, ErrCodeInvalidRequest, resp.ErrorCode)
	assert.Contains(t, resp.ErrorMessage, "sessionId")
}

func TestHandleGenerateGuestWithSessionID(t *testing.T) {
	// Redis가 없으면 비회원도 제한 없이 생성된다
	h := newTestHandler()

	resp := postGenerate(t, h, BlueprintRequest{
		Idea:      "A kite festival seen from the kite's point of view.",
		SessionID: "session-abc",
	})

	assert.True(t, resp.Success)
	require.NotNil(t, resp.Blueprint)
}

func TestHandleGenerateMethodNotAllowed(t *testing.T) {
	h := newTestHandler()

	rec := httptest.NewRecorder()
	h.HandleGenerate(rec, httptest.NewRequest(http.MethodGet, "/api/blueprint/generate", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestHandleStreamReplaysBlueprintInStages(t *testing.T) {
	h := newTestHandler()

	server := httptest.NewServer(http.HandlerFunc(h.HandleStream))
	defer server.Close()

	wsURL := "ws" + strings.TrimPrefix(server.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	defer conn.Close()

	require.NoError(t, conn.WriteJSON(BlueprintRequest{
		Idea:   "A ghost ship returning to harbor a century late.",
		UserID: "user-1",
		AddOns: AddOnSelections{MusicNotes: true},
	}))

	var types []string
	var final *GeneratedPrompt
	for {
		var event BlueprintEvent
		require.NoError(t, conn.ReadJSON(&event))
		types = append(types, event.Type)
		if event.Type == "complete" {
			final = event.Blueprint
			break
		}
		require.NotEqual(t, "error", event.Type, "unexpected error event: %s", event.ErrorMessage)
	}

	assert.Equal(t, []string{"analysis", "scene", "scene", "scene", "scene", "addOn", "complete"}, types)
	require.NotNil(t, final)
	assert.Len(t, final.Scenes, NumScenes)
	assert.Contains(t, final.AddOns, AddOnMusicNotes)
}

func TestHandleStreamEmptyIdea(t *testing.T) {
	h := newTestHandler()

	server := httptest.NewServer(http.HandlerFunc(h.HandleStream))
	defer server.Close()

	wsURL := "ws" + strings.TrimPrefix(server.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	defer conn.Close()

	require.NoError(t, conn.WriteJSON(BlueprintRequest{Idea: "", UserID: "user-1"}))

	var event BlueprintEvent
	require.NoError(t, conn.ReadJSON(&event))
	assert.Equal(t, "error", event.Type)
	assert.Equal(t, ErrCodeInvalidRequest, event.ErrorCode)
}
