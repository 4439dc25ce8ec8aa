package blueprint

import (
	"fmt"
	"strings"
)

// buildAddOns - 선택된 플래그에 해당하는 부가 콘텐츠만 생성한다.
// 선택되지 않은 종류는 맵에 키 자체가 없다 (빈 문자열 금지).
func buildAddOns(selections AddOnSelections, profile conceptProfile, scenes SceneList) map[AddOnKind]string {
	addOns := make(map[AddOnKind]string)

	for _, kind := range AllAddOnKinds {
		if !selections.Enabled(kind) {
			continue
		}

		switch kind {
		case AddOnVoiceover:
			addOns[kind] = buildVoiceover(profile, scenes)
		case AddOnDialogue:
			addOns[kind] = buildDialogue(profile)
		case AddOnThumbnailPrompt:
			addOns[kind] = buildThumbnailPrompt(profile, scenes)
		case AddOnCaptionsAndTags:
			addOns[kind] = buildCaptionsAndTags(profile)
		case AddOnMusicNotes:
			addOns[kind] = buildMusicNotes(profile)
		}
	}

	return addOns
}

// buildVoiceover - 4막 진행을 따라가는 내레이션 스크립트
func buildVoiceover(profile conceptProfile, scenes SceneList) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("[VOICEOVER — %s read, unhurried]\n\n", profile.Mood))
	b.WriteString(fmt.Sprintf("(%s)\nEvery story starts before anyone is watching. Here, it starts with %s.\n\n",
		scenes[0].Title, profile.Subject))
	b.WriteString(fmt.Sprintf("(%s)\nStep by step, the ordinary gives way. What %s set in motion can no longer be called back.\n\n",
		scenes[1].Title, profile.Subject))
	b.WriteString(fmt.Sprintf("(%s)\nAnd then the moment arrives — the one everything else was only rehearsal for.\n\n",
		scenes[2].Title))
	b.WriteString(fmt.Sprintf("(%s)\nWhat remains is not what was planned. It is what was earned. %s\n",
		scenes[3].Title, profile.OneLiner))

	return b.String()
}

// buildDialogue - 아이디어가 암시하는 인물의 짧은 대사 비트
func buildDialogue(profile conceptProfile) string {
	var b strings.Builder

	b.WriteString("[DIALOGUE BEAT]\n\n")
	b.WriteString(fmt.Sprintf("%s (quietly): \"I didn't come this far to stop at the edge of it.\"\n\n",
		capitalize(profile.Subject)))
	b.WriteString("A beat. The wind answers first.\n\n")
	b.WriteString(fmt.Sprintf("%s: \"Then let's see what it looks like from the other side.\"\n",
		capitalize(profile.Subject)))

	return b.String()
}

// buildThumbnailPrompt - 포스터/썸네일 생성기용 단일 이미지 프롬프트
func buildThumbnailPrompt(profile conceptProfile, scenes SceneList) string {
	climax := scenes[2]

	var b strings.Builder
	b.WriteString(fmt.Sprintf("Single dramatic poster frame for \"%s\": %s, centered and dominant. ",
		profile.Title, profile.Subject))
	b.WriteString(fmt.Sprintf("%s. %s. %s. ",
		climax.Setting, climax.Lighting, climax.Colors))
	b.WriteString(fmt.Sprintf("Style: %s, %s mood. ", profile.Style, profile.Mood))
	b.WriteString("Bold composition with clear negative space for title text, no lettering in the image, 2:3 vertical poster framing.")

	return b.String()
}

// buildCaptionsAndTags - 캡션 카피 + 해시태그 세트
func buildCaptionsAndTags(profile conceptProfile) string {
	tagWords := []string{
		hashtag(profile.Title),
		hashtag(profile.Style),
		hashtag(profile.Mood),
		"#aivideo", "#texttovideo", "#shortfilm", "#cinematic", "#storytelling",
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s ✨\n%s\n\n", profile.Title, profile.OneLiner))
	b.WriteString("Four scenes. One story. Watch until the end.\n\n")
	b.WriteString(strings.Join(tagWords, " "))

	return b.String()
}

// buildMusicNotes - 무드에 맞춘 음악/사운드 디렉션
func buildMusicNotes(profile conceptProfile) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("[MUSIC DIRECTION — %s]\n\n", profile.Mood))
	b.WriteString(fmt.Sprintf("Open sparse and low: a single sustained texture that matches the %s tone, more air than melody. ",
		profile.Mood))
	b.WriteString("Build through scene two with a repeating motif gaining layers — percussion entering late, restrained. ")
	b.WriteString("At the climax let the motif break open: full dynamics, the widest stereo image of the piece. ")
	b.WriteString(fmt.Sprintf("Resolve by stripping back to the opening texture, one register higher, so the %s feeling lands as memory rather than repetition. ",
		profile.Mood))
	b.WriteString(fmt.Sprintf("Sound design should stay diegetic to %s.", profile.Setting))

	return b.String()
}

// hashtag - 구절을 해시태그로 변환 ("cinematic sci-fi" → "#cinematicscifi")
func hashtag(phrase string) string {
	var b strings.Builder
	b.WriteByte('#')
	for _, r := range strings.ToLower(phrase) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}
