package suggest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStarterIdeasAreComplete(t *testing.T) {
	ideas := StarterIdeas()
	require.NotEmpty(t, ideas)

	for i, idea := range ideas {
		assert.NotEmpty(t, idea.Label, "idea %d label", i)
		assert.NotEmpty(t, idea.Idea, "idea %d text", i)
	}
}

func TestStarterIdeasReturnsCopy(t *testing.T) {
	first := StarterIdeas()
	first[0].Label = "mutated"

	second := StarterIdeas()
	assert.NotEqual(t, "mutated", second[0].Label)
}

func TestHandleIdeas(t *testing.T) {
	h := NewHandler()

	rec := httptest.NewRecorder()
	h.HandleIdeas(rec, httptest.NewRequest(http.MethodGet, "/api/suggest/ideas", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body struct {
		Ideas []Idea `json:"ideas"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Len(t, body.Ideas, len(StarterIdeas()))
}
