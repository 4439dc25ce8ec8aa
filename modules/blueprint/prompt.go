package blueprint

import (
	"fmt"
	"strings"
)

// buildMasterPrompt - 타이틀/스타일/무드와 4개 장면을 하나의 연속된
// 산문 프롬프트로 합친다. 비디오 생성 모델에 그대로 제출 가능한 형태.
func buildMasterPrompt(profile conceptProfile, scenes SceneList) string {
	var b strings.Builder

	// 프레이밍 문장: 타이틀 + 스타일 + 무드 + 로그라인
	b.WriteString(fmt.Sprintf("\"%s\" — a %s short film with a %s tone. %s ",
		profile.Title, profile.Style, profile.Mood, profile.OneLiner))
	b.WriteString(fmt.Sprintf("The piece unfolds in four continuous movements, "+
		"holding one visual language throughout: %s, rendered consistently %s.\n\n",
		profile.Style, profile.Mood))

	// 장면별 산문 단락
	for i, scene := range scenes {
		b.WriteString(fmt.Sprintf("Scene %d, %s: %s. ", i+1, scene.Title, scene.Setting))
		b.WriteString(fmt.Sprintf("A %s with %s. ", scene.CameraAngle, scene.CameraMovement))
		b.WriteString(scene.CharacterActions + ". ")
		b.WriteString(fmt.Sprintf("Lighting: %s. Color: %s. ",
			lowerFirst(scene.Lighting), lowerFirst(scene.Colors)))
		b.WriteString(fmt.Sprintf("The atmosphere carries %s. ", lowerFirst(scene.Atmosphere)))
		b.WriteString(fmt.Sprintf("Keep in frame: %s.\n\n", lowerFirst(scene.ImportantObjects)))
	}

	b.WriteString(fmt.Sprintf("Maintain continuity of subject, palette and light across all four scenes. "+
		"Photoreal detail, cinematic depth of field, no text or watermarks. Style: %s. Mood: %s.",
		profile.Style, profile.Mood))

	return b.String()
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	// 이미 소문자거나 고유명사처럼 전부 대문자인 경우는 그대로 둔다
	if r[0] >= 'A' && r[0] <= 'Z' && (len(r) < 2 || !(r[1] >= 'A' && r[1] <= 'Z')) {
		r[0] = r[0] + ('a' - 'A')
	}
	return string(r)
}
