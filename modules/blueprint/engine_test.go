package blueprint

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeneratePromptPopulatesAllFields(t *testing.T) {
	result, err := GeneratePrompt("A city fox learning to ride the last night train home.", AddOnSelections{})
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.NotEmpty(t, result.ConceptTitle)
	assert.NotEmpty(t, result.OneLiner)
	assert.NotEmpty(t, result.Mood)
	assert.NotEmpty(t, result.Style)
	assert.NotEmpty(t, result.FullPrompt)
	assert.Len(t, result.Scenes, NumScenes)

	for i, scene := range result.Scenes {
		assert.NotEmpty(t, scene.ID, "scene %d id", i)
		assert.NotEmpty(t, scene.Title, "scene %d title", i)
		assert.NotEmpty(t, scene.Setting, "scene %d setting", i)
		assert.NotEmpty(t, scene.CameraAngle, "scene %d camera angle", i)
		assert.NotEmpty(t, scene.CameraMovement, "scene %d camera movement", i)
		assert.NotEmpty(t, scene.CharacterActions, "scene %d character actions", i)
		assert.NotEmpty(t, scene.Lighting, "scene %d lighting", i)
		assert.NotEmpty(t, scene.Colors, "scene %d colors", i)
		assert.NotEmpty(t, scene.Atmosphere, "scene %d atmosphere", i)
		assert.NotEmpty(t, scene.ImportantObjects, "scene %d important objects", i)
	}
}

func TestGeneratePromptRejectsEmptyIdea(t *testing.T) {
	cases := []string{"", "   ", "\n\t  \n"}

	for _, idea := range cases {
		result, err := GeneratePrompt(idea, AddOnSelections{Voiceover: true, MusicNotes: true})
		require.Error(t, err, "idea=%q", idea)
		assert.Nil(t, result)

		var invalid *InvalidInputError
		require.ErrorAs(t, err, &invalid)
		assert.NotEmpty(t, invalid.Message)
	}
}

func TestGeneratePromptIsDeterministic(t *testing.T) {
	idea := "A forgotten lighthouse awakening during a midnight storm."
	selections := AddOnSelections{Voiceover: true, Dialogue: true, ThumbnailPrompt: true, CaptionsAndTags: true, MusicNotes: true}

	first, err := GeneratePrompt(idea, selections)
	require.NoError(t, err)
	second, err := GeneratePrompt(idea, selections)
	require.NoError(t, err)

	assert.Equal(t, first, second)

	// 직렬화 결과까지 바이트 단위로 동일해야 한다
	firstJSON, err := json.Marshal(first)
	require.NoError(t, err)
	secondJSON, err := json.Marshal(second)
	require.NoError(t, err)
	assert.Equal(t, firstJSON, secondJSON)
}

func TestGeneratePromptAddOnCompleteness(t *testing.T) {
	cases := []struct {
		name       string
		selections AddOnSelections
		expected   []AddOnKind
	}{
		{"none", AddOnSelections{}, nil},
		{"voiceover only", AddOnSelections{Voiceover: true}, []AddOnKind{AddOnVoiceover}},
		{
			"thumbnail and captions",
			AddOnSelections{ThumbnailPrompt: true, CaptionsAndTags: true},
			[]AddOnKind{AddOnThumbnailPrompt, AddOnCaptionsAndTags},
		},
		{
			"all",
			AddOnSelections{Voiceover: true, Dialogue: true, ThumbnailPrompt: true, CaptionsAndTags: true, MusicNotes: true},
			AllAddOnKinds,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result, err := GeneratePrompt("A tiny robot learning to paint sunsets.", tc.selections)
			require.NoError(t, err)

			assert.Len(t, result.AddOns, len(tc.expected))
			for _, kind := range tc.expected {
				content, ok := result.AddOns[kind]
				assert.True(t, ok, "expected add-on %s", kind)
				assert.NotEmpty(t, content, "add-on %s content", kind)
			}
			for _, kind := range AllAddOnKinds {
				if !tc.selections.Enabled(kind) {
					_, ok := result.AddOns[kind]
					assert.False(t, ok, "unexpected add-on %s", kind)
				}
			}
		})
	}
}

func TestGeneratePromptFullPromptReflectsScenes(t *testing.T) {
	result, err := GeneratePrompt("A deep-sea diver finding a piano on the ocean floor.", AddOnSelections{})
	require.NoError(t, err)

	assert.Contains(t, result.FullPrompt, result.ConceptTitle)
	assert.Contains(t, result.FullPrompt, result.Mood)
	assert.Contains(t, result.FullPrompt, result.Style)
	for i, scene := range result.Scenes {
		assert.Contains(t, result.FullPrompt, scene.Title, "scene %d title missing from full prompt", i)
	}
}

func TestGeneratePromptSceneIDsUniqueAndStable(t *testing.T) {
	idea := "A ghost librarian cataloging dreams at midnight."

	first, err := GeneratePrompt(idea, AddOnSelections{})
	require.NoError(t, err)
	second, err := GeneratePrompt(idea, AddOnSelections{})
	require.NoError(t, err)

	seen := make(map[string]bool)
	for i, scene := range first.Scenes {
		assert.False(t, seen[scene.ID], "duplicate scene id %s", scene.ID)
		seen[scene.ID] = true
		assert.Equal(t, scene.ID, second.Scenes[i].ID)
	}
}

func TestGeneratePromptMarsGardenScenario(t *testing.T) {
	result, err := GeneratePrompt(
		"A lone astronaut planting a garden on Mars to remember Earth.",
		AddOnSelections{ThumbnailPrompt: true, CaptionsAndTags: true},
	)
	require.NoError(t, err)

	assert.Len(t, result.Scenes, NumScenes)
	require.Len(t, result.AddOns, 2)
	assert.NotEmpty(t, result.AddOns[AddOnThumbnailPrompt])
	assert.NotEmpty(t, result.AddOns[AddOnCaptionsAndTags])

	_, hasVoiceover := result.AddOns[AddOnVoiceover]
	_, hasDialogue := result.AddOns[AddOnDialogue]
	_, hasMusic := result.AddOns[AddOnMusicNotes]
	assert.False(t, hasVoiceover)
	assert.False(t, hasDialogue)
	assert.False(t, hasMusic)
}

func TestGeneratePromptLighthouseScenario(t *testing.T) {
	result, err := GeneratePrompt(
		"A forgotten lighthouse awakening during a midnight storm.",
		AddOnSelections{},
	)
	require.NoError(t, err)

	assert.Empty(t, result.AddOns)
	assert.Len(t, result.Scenes, NumScenes)
	assert.NotEmpty(t, result.FullPrompt)
	assert.NotEmpty(t, result.ConceptTitle)
}

func TestGeneratePromptTrimsIdeaBeforeDerivation(t *testing.T) {
	padded, err := GeneratePrompt("   A snow leopard guarding a mountain monastery.   ", AddOnSelections{})
	require.NoError(t, err)
	plain, err := GeneratePrompt("A snow leopard guarding a mountain monastery.", AddOnSelections{})
	require.NoError(t, err)

	assert.Equal(t, plain, padded)
}

func TestGeneratePromptHandlesExtremeInputs(t *testing.T) {
	// 한 단어짜리 입력
	short, err := GeneratePrompt("rain", AddOnSelections{Voiceover: true})
	require.NoError(t, err)
	assert.NotEmpty(t, short.ConceptTitle)
	assert.NotEmpty(t, short.AddOns[AddOnVoiceover])

	// 아주 긴 입력도 실패 없이 처리
	long, err := GeneratePrompt(strings.Repeat("an endless caravan of lanterns crossing the dark ", 40), AddOnSelections{})
	require.NoError(t, err)
	assert.NotEmpty(t, long.OneLiner)
	assert.True(t, len(long.OneLiner) < 200, "one-liner should be compressed")
}
