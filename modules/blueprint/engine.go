package blueprint

import "strings"

// GeneratePrompt - 엔진의 유일한 진입점.
// 자유 텍스트 컨셉을 4막 비디오 블루프린트로 변환한다.
//
// 순수 함수: I/O, 시계, 랜덤 없음. 같은 (idea, selections)는
// 항상 바이트 단위로 동일한 결과를 만든다. 동시 호출 안전.
func GeneratePrompt(idea string, selections AddOnSelections) (*GeneratedPrompt, error) {
	trimmed := strings.TrimSpace(idea)
	if trimmed == "" {
		return nil, newInvalidInputError()
	}

	profile := analyzeConcept(trimmed)
	scenes := buildScenes(trimmed, profile)

	return &GeneratedPrompt{
		ConceptTitle: profile.Title,
		OneLiner:     profile.OneLiner,
		Mood:         profile.Mood,
		Style:        profile.Style,
		Scenes:       scenes,
		FullPrompt:   buildMasterPrompt(profile, scenes),
		AddOns:       buildAddOns(selections, profile, scenes),
	}, nil
}
