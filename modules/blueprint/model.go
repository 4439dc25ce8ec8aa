package blueprint

// AddOnKind - 부가 콘텐츠 종류 (closed set)
type AddOnKind string

const (
	AddOnVoiceover       AddOnKind = "voiceover"
	AddOnDialogue        AddOnKind = "dialogue"
	AddOnThumbnailPrompt AddOnKind = "thumbnailPrompt"
	AddOnCaptionsAndTags AddOnKind = "captionsAndTags"
	AddOnMusicNotes      AddOnKind = "musicNotes"
)

// AllAddOnKinds - 고정 순서 (결과 조립 순서 보장용)
var AllAddOnKinds = []AddOnKind{
	AddOnVoiceover,
	AddOnDialogue,
	AddOnThumbnailPrompt,
	AddOnCaptionsAndTags,
	AddOnMusicNotes,
}

// AddOnSelections - 부가 콘텐츠 선택 플래그 (기본값 모두 false)
type AddOnSelections struct {
	Voiceover       bool `json:"voiceover"`
	Dialogue        bool `json:"dialogue"`
	ThumbnailPrompt bool `json:"thumbnailPrompt"`
	CaptionsAndTags bool `json:"captionsAndTags"`
	MusicNotes      bool `json:"musicNotes"`
}

// Enabled - 선택 여부 조회
func (s AddOnSelections) Enabled(kind AddOnKind) bool {
	switch kind {
	case AddOnVoiceover:
		return s.Voiceover
	case AddOnDialogue:
		return s.Dialogue
	case AddOnThumbnailPrompt:
		return s.ThumbnailPrompt
	case AddOnCaptionsAndTags:
		return s.CaptionsAndTags
	case AddOnMusicNotes:
		return s.MusicNotes
	}
	return false
}

// NumScenes - 4막 구조 고정
const NumScenes = 4

// Scene - 하나의 내러티브 비트 (설정/카메라/조명 등)
type Scene struct {
	ID               string `json:"id"`
	Title            string `json:"title"`
	Setting          string `json:"setting"`
	CameraAngle      string `json:"cameraAngle"`
	CameraMovement   string `json:"cameraMovement"`
	CharacterActions string `json:"characterActions"`
	Lighting         string `json:"lighting"`
	Colors           string `json:"colors"`
	Atmosphere       string `json:"atmosphere"`
	ImportantObjects string `json:"importantObjects"`
}

// SceneList - 정확히 4개의 장면 (배열 타입으로 구조적 강제)
type SceneList [NumScenes]Scene

// GeneratedPrompt - 엔진 출력 (전체 블루프린트)
type GeneratedPrompt struct {
	ConceptTitle string               `json:"conceptTitle"`
	OneLiner     string               `json:"oneLiner"`
	Mood         string               `json:"mood"`
	Style        string               `json:"style"`
	Scenes       SceneList            `json:"scenes"`
	FullPrompt   string               `json:"fullPrompt"`
	AddOns       map[AddOnKind]string `json:"addOns"`
}

// BlueprintRequest - POST /api/blueprint/generate 요청
type BlueprintRequest struct {
	Idea      string          `json:"idea"`
	AddOns    AddOnSelections `json:"addOns"`
	SessionID string          `json:"sessionId"` // 브라우저 세션 ID (비회원 제한용)
	UserID    string          `json:"userId"`    // 회원 ID (비회원은 빈 문자열)
}

// BlueprintResponse - POST /api/blueprint/generate 응답
type BlueprintResponse struct {
	Success      bool             `json:"success"`
	Blueprint    *GeneratedPrompt `json:"blueprint,omitempty"`
	ErrorMessage string           `json:"errorMessage,omitempty"`
	ErrorCode    string           `json:"errorCode,omitempty"`
}

// Error codes
const (
	ErrCodeInvalidRequest    = "INVALID_REQUEST"
	ErrCodeGuestLimitReached = "GUEST_LIMIT_REACHED"
	ErrCodeInternalError     = "INTERNAL_ERROR"
)
