package blueprint

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// actTemplate - 4막 구조의 각 막 정의. 카메라는 막마다 고정 진행이고,
// 조명/컬러는 프로필의 램프(막 인덱스)에서 가져온다.
type actTemplate struct {
	Title          string
	CameraAngle    string
	CameraMovement string
	SettingPrefix  string // 프로필 Setting 앞에 붙는 막별 수식
	ActionFormat   string // %s = subject
	AtmosSuffix    string // 프로필 Atmosphere 뒤에 붙는 막별 수식
}

// actTemplates - setup / escalation / climax / resolution
var actTemplates = [NumScenes]actTemplate{
	{
		Title:          "The Arrival",
		CameraAngle:    "wide establishing shot",
		CameraMovement: "slow deliberate push-in",
		SettingPrefix:  "First sight of",
		ActionFormat:   "%s enters the frame small against the space, taking the measure of what lies ahead",
		AtmosSuffix:    "everything still holding its breath",
	},
	{
		Title:          "Momentum",
		CameraAngle:    "medium shot at eye level",
		CameraMovement: "steady lateral tracking",
		SettingPrefix:  "Deeper inside",
		ActionFormat:   "%s commits to the task, hands busy, attention narrowing to the work",
		AtmosSuffix:    "a current of tension starting to build",
	},
	{
		Title:          "The Breaking Point",
		CameraAngle:    "low-angle close-up",
		CameraMovement: "handheld, urgency in every drift",
		SettingPrefix:  "The heart of",
		ActionFormat:   "%s faces the decisive moment, everything accumulated now on the line",
		AtmosSuffix:    "the full weight of the story landing at once",
	},
	{
		Title:          "What Remains",
		CameraAngle:    "high slow aerial",
		CameraMovement: "gradual pull-back and settle",
		SettingPrefix:  "A last look across",
		ActionFormat:   "%s stands changed amid the aftermath, the outcome finally visible",
		AtmosSuffix:    "stillness returning, altered",
	},
}

// sceneIDNamespace - 이름 기반 UUID 네임스페이스 (결정적 장면 ID용)
var sceneIDNamespace = uuid.NewSHA1(uuid.NameSpaceOID, []byte("storyboard-server/blueprint/scene"))

// buildScenes - 공유 프로필에서 4개 장면을 파생한다.
// 조명/컬러는 프로필 램프를 따르므로 막 사이에서 모순되지 않는다.
func buildScenes(idea string, profile conceptProfile) SceneList {
	var scenes SceneList

	for i, act := range actTemplates {
		scenes[i] = Scene{
			ID:               sceneID(idea, i),
			Title:            act.Title,
			Setting:          fmt.Sprintf("%s %s", act.SettingPrefix, profile.Setting),
			CameraAngle:      act.CameraAngle,
			CameraMovement:   act.CameraMovement,
			CharacterActions: capitalize(fmt.Sprintf(act.ActionFormat, profile.Subject)),
			Lighting:         capitalize(profile.Lighting[i]),
			Colors:           capitalize(profile.Palette[i]),
			Atmosphere:       capitalize(fmt.Sprintf("%s, %s", profile.Atmosphere, act.AtmosSuffix)),
			ImportantObjects: capitalize(strings.Join(profile.Objects, ", ")),
		}
	}

	return scenes
}

// sceneID - (아이디어, 막 인덱스)에서 파생되는 결정적 UUID
func sceneID(idea string, index int) string {
	return uuid.NewSHA1(sceneIDNamespace, []byte(fmt.Sprintf("%s|%d", idea, index))).String()
}
