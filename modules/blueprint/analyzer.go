package blueprint

import (
	"strings"
	"unicode"
)

// conceptProfile - 분석 단계의 결과. 4개 장면과 모든 부가 콘텐츠가
// 이 하나의 프로필에서 파생되어 시각적 일관성을 유지한다.
type conceptProfile struct {
	Title    string
	OneLiner string
	Mood     string
	Style    string

	Subject    string   // 주인공/주요 피사체 구절
	Objects    []string // 핵심 오브젝트 (최대 3개)
	Setting    string   // 기본 배경 구절
	Atmosphere string   // 기본 분위기 구절

	Palette  [NumScenes]string // 막별 컬러 팔레트
	Lighting [NumScenes]string // 막별 조명 (mood와 연동)
}

// themePreset - 키워드 기반 테마 프리셋 (테이블 순서 = 매칭 우선순위)
type themePreset struct {
	Name     string
	Keywords []string
	Mood     string
	Style    string
	Setting  string
	Atmos    string
	Objects  []string
	Palette  [NumScenes]string
	Lighting [NumScenes]string
}

// tonePreset - 감정 키워드 프리셋. 테마보다 우선해서 mood와
// 조명/팔레트 램프를 덮어쓴다 (조명이 mood와 따로 놀지 않도록).
type tonePreset struct {
	Keywords []string
	Mood     string
	Atmos    string
	Palette  [NumScenes]string
	Lighting [NumScenes]string
}

var themePresets = []themePreset{
	{
		Name:     "space",
		Keywords: []string{"astronaut", "mars", "space", "galaxy", "planet", "orbit", "cosmos", "spaceship", "lunar", "moon", "stars"},
		Mood:     "contemplative",
		Style:    "cinematic sci-fi",
		Setting:  "a vast extraterrestrial landscape under an endless starfield",
		Atmos:    "silent immensity pressing in from every horizon",
		Objects:  []string{"a scratched helmet visor", "red dust drifting in low gravity", "a distant pale-blue planet"},
		Palette:  [NumScenes]string{"rust reds and deep space black", "ochre ground against indigo sky", "burning amber against void black", "soft silver and faded rose"},
		Lighting: [NumScenes]string{"hard unfiltered sunlight with knife-edge shadows", "long raking light across dust plains", "a single harsh key light, everything else falling to black", "gentle reflected earthlight, shadows softened"},
	},
	{
		Name:     "maritime",
		Keywords: []string{"lighthouse", "ocean", "sea", "storm", "wave", "ship", "harbor", "coast", "sailor", "tide"},
		Mood:     "brooding",
		Style:    "moody maritime cinematic",
		Setting:  "a weather-beaten coastline where water meets granite",
		Atmos:    "salt wind and the low roar of water against stone",
		Objects:  []string{"a rain-streaked lamp lens", "foam-white breakers", "rusted iron railings"},
		Palette:  [NumScenes]string{"slate greys and cold teal", "graphite waves under pewter sky", "black water split by white light", "washed-out blue and sea-glass green"},
		Lighting: [NumScenes]string{"flat overcast light, horizon dissolved in haze", "storm light strobing through cloud banks", "a sweeping beam cutting the dark in rhythmic passes", "thin dawn light through retreating rain"},
	},
	{
		Name:     "nature",
		Keywords: []string{"forest", "garden", "tree", "flower", "meadow", "mountain", "river", "seed", "bloom", "wilderness"},
		Mood:     "serene",
		Style:    "lush naturalistic",
		Setting:  "a living landscape dense with green and growing things",
		Atmos:    "unhurried quiet broken only by wind through leaves",
		Objects:  []string{"dew caught on leaf edges", "roots knotted through dark soil", "pollen drifting in light shafts"},
		Palette:  [NumScenes]string{"soft greens and morning gold", "saturated emerald and loam brown", "sun-struck chartreuse against deep shade", "honeyed amber and fading green"},
		Lighting: [NumScenes]string{"diffuse dawn light through canopy gaps", "dappled midday light shifting with the wind", "a burst of direct sun flaring through branches", "low golden-hour light, long soft shadows"},
	},
	{
		Name:     "urban",
		Keywords: []string{"city", "neon", "street", "subway", "rooftop", "skyline", "alley", "traffic", "cyber", "downtown"},
		Mood:     "electric",
		Style:    "neon-soaked urban cinematic",
		Setting:  "a dense city of glass, wet asphalt and stacked signage",
		Atmos:    "restless energy humming beneath every surface",
		Objects:  []string{"neon reflections in rain puddles", "steam rising from street grates", "a wall of flickering signs"},
		Palette:  [NumScenes]string{"cyan and magenta against wet black", "sodium orange bleeding into blue shadow", "strobing pink and electric white", "cooled violet and dying neon"},
		Lighting: [NumScenes]string{"mixed neon spill, no single source", "passing headlights raking across faces", "hard strobe-lit contrast, colors at full burn", "pre-dawn grey reclaiming the signs"},
	},
	{
		Name:     "desert",
		Keywords: []string{"desert", "dune", "sand", "oasis", "canyon", "caravan", "mirage"},
		Mood:     "austere",
		Style:    "sweeping desert epic",
		Setting:  "an ocean of sand sculpted by wind into knife-edged dunes",
		Atmos:    "heat shimmer blurring the line between earth and sky",
		Objects:  []string{"wind-rippled sand ridges", "sun-bleached bones of old machines", "a single line of footprints"},
		Palette:  [NumScenes]string{"bone white and pale gold", "deep ochre and hard cobalt sky", "blood orange at full blaze", "cooling lavender and dusk rose"},
		Lighting: [NumScenes]string{"blinding even light, shadows shrunk to nothing", "angled afternoon light carving the dunes", "the sun itself in frame, flare swallowing detail", "violet twilight, first stars emerging"},
	},
	{
		Name:     "winter",
		Keywords: []string{"snow", "ice", "winter", "frozen", "glacier", "arctic", "frost", "blizzard"},
		Mood:     "hushed",
		Style:    "stark winter cinematic",
		Setting:  "a white expanse where every sound arrives muffled",
		Atmos:    "cold so complete it feels like silence made solid",
		Objects:  []string{"breath hanging in frozen air", "ice crystals feathering across glass", "a trail of deep boot prints"},
		Palette:  [NumScenes]string{"blue-white and pale grey", "steel blue against paper white", "white-out glare broken by one dark figure", "rose-grey dusk over snowfields"},
		Lighting: [NumScenes]string{"flat white light with no horizon line", "low cold sun throwing mile-long shadows", "snow-glare overexposure, detail burning away", "blue-hour glow, light dying slowly"},
	},
	{
		Name:     "fantasy",
		Keywords: []string{"dragon", "magic", "kingdom", "wizard", "spell", "sword", "myth", "legend", "enchanted", "fairy"},
		Mood:     "wondrous",
		Style:    "painterly high fantasy",
		Setting:  "a realm where the impossible is simply weather",
		Atmos:    "old power humming in stones and tree roots",
		Objects:  []string{"runes glowing faintly under dust", "a banner torn by old battles", "motes of light circling like insects"},
		Palette:  [NumScenes]string{"forest green and aged gold", "royal purple and torchlit bronze", "incandescent white-gold against storm dark", "soft jade and silver afterglow"},
		Lighting: [NumScenes]string{"storybook morning light, edges softly haloed", "torch and lantern light, shadows alive on walls", "arcane light erupting, overwhelming every torch", "calm enchanted glow settling over the land"},
	},
	{
		Name:     "machine",
		Keywords: []string{"robot", "android", "machine", "factory", "ai", "cyborg", "drone", "laboratory", "engine"},
		Mood:     "clinical",
		Style:    "hard-surface tech noir",
		Setting:  "a precise world of brushed metal, cable runs and status lights",
		Atmos:    "the patient hum of systems that never sleep",
		Objects:  []string{"indicator LEDs blinking in sequence", "hydraulic joints slick with lubricant", "a wall of monitoring screens"},
		Palette:  [NumScenes]string{"gunmetal grey and signal green", "cold white and cautionary amber", "alarm red flooding brushed steel", "powered-down blue and shadow"},
		Lighting: [NumScenes]string{"even fluorescent light, clean and shadowless", "task lighting pooled over workstations", "red emergency light pulsing off every surface", "standby glow, most panels gone dark"},
	},
}

var tonePresets = []tonePreset{
	{
		Keywords: []string{"remember", "memory", "forgotten", "lost", "lonely", "lone", "farewell", "grief", "fading", "goodbye", "abandoned"},
		Mood:     "melancholic",
		Atmos:    "a quiet ache threaded through every frame",
		Palette:  [NumScenes]string{"desaturated blue-grey and faded warmth", "muted slate with one stubborn ember of color", "cold cobalt shadows around a dimming light", "near-monochrome wash, color almost gone"},
		Lighting: [NumScenes]string{"dim diffuse light, as if through old glass", "weak window light losing ground to shadow", "one fragile source against engulfing dark", "ash-blue afterlight, barely holding the scene"},
	},
	{
		Keywords: []string{"whimsical", "playful", "dancing", "tiny", "curious", "wonder", "silly", "bouncing", "parade"},
		Mood:     "whimsical",
		Atmos:    "mischief fizzing just under the surface",
		Palette:  [NumScenes]string{"candy pastels and cream", "bubblegum pink and sky blue", "confetti-bright primaries everywhere at once", "sherbet orange melting into lilac"},
		Lighting: [NumScenes]string{"bright bouncy light with no hard shadows", "sparkling key light with playful rim glints", "saturated full-spectrum glow at peak energy", "warm fairy-light twinkle winding down"},
	},
	{
		Keywords: []string{"haunted", "ghost", "midnight", "shadow", "eerie", "whisper", "graveyard", "curse", "hollow"},
		Mood:     "eerie",
		Atmos:    "the certainty of being watched from just out of frame",
		Palette:  [NumScenes]string{"moss green-black and bone", "bruised purple and candle amber", "void black torn by sickly green light", "grave grey and cold moonsilver"},
		Lighting: [NumScenes]string{"moonlight through gaps, more shadow than light", "a guttering flame throwing wrong-shaped shadows", "unnatural light from below, faces hollowed out", "dead still moonlight, everything finally visible"},
	},
	{
		Keywords: []string{"hope", "dream", "rebirth", "awakening", "dawn", "rising", "begin", "renewal"},
		Mood:     "hopeful",
		Atmos:    "the sense of something good finally arriving",
		Palette:  [NumScenes]string{"pre-dawn grey warming at the edges", "first gold breaking into cool blue", "full sunrise flooding every surface", "clear morning light, colors washed clean"},
		Lighting: [NumScenes]string{"thin early light, still mostly promise", "strengthening sidelight pushing back shadow", "radiant backlight, the subject rimmed in gold", "open even daylight, nothing left hidden"},
	},
}

// stopWords - 제목/키워드 추출에서 제외되는 단어들
var stopWords = map[string]bool{
	"a": true, "an": true, "the": true, "and": true, "or": true, "but": true,
	"of": true, "on": true, "in": true, "to": true, "for": true, "with": true,
	"at": true, "by": true, "from": true, "as": true, "is": true, "are": true,
	"was": true, "were": true, "be": true, "being": true, "been": true,
	"it": true, "its": true, "his": true, "her": true, "their": true,
	"this": true, "that": true, "into": true, "over": true, "under": true,
	"while": true, "during": true, "about": true, "who": true, "which": true,
}

// minorTitleWords - 제목 중간에서 소문자로 유지되는 단어들
var minorTitleWords = map[string]bool{
	"a": true, "an": true, "the": true, "and": true, "or": true, "of": true,
	"on": true, "in": true, "to": true, "for": true, "at": true, "by": true,
}

// defaultTheme - 어떤 테마/톤에도 매칭되지 않는 입력용 폴백
var defaultTheme = themePreset{
	Name:     "default",
	Mood:     "evocative",
	Style:    "polished cinematic",
	Setting:  "a carefully composed world built around the concept",
	Atmos:    "an undercurrent of meaning in every detail",
	Objects:  []string{"a telling detail in the foreground", "textures catching the light", "negative space framing the subject"},
	Palette:  [NumScenes]string{"restrained neutrals with one accent color", "deepening tones as stakes rise", "high-contrast color at full intensity", "softened tones settling into balance"},
	Lighting: [NumScenes]string{"soft establishing light, gentle contrast", "motivated directional light shaping the subject", "dramatic high-contrast key at the peak", "warm resolving light, contrast easing"},
}

// analyzeConcept - 원본 아이디어 텍스트에서 공유 프로필을 도출한다.
// 같은 입력은 항상 같은 프로필을 만든다 (테이블 순서 고정, 랜덤 없음).
func analyzeConcept(idea string) conceptProfile {
	words := significantWords(idea)

	// 테마 매칭 (테이블 순서대로 첫 매칭 승리)
	theme := defaultTheme
	for _, t := range themePresets {
		if containsAny(words, t.Keywords) {
			theme = t
			break
		}
	}

	profile := conceptProfile{
		Mood:       theme.Mood,
		Style:      theme.Style,
		Setting:    theme.Setting,
		Atmosphere: theme.Atmos,
		Objects:    theme.Objects,
		Palette:    theme.Palette,
		Lighting:   theme.Lighting,
	}

	// 톤 키워드가 있으면 mood와 조명/팔레트 램프를 함께 교체
	for _, tone := range tonePresets {
		if containsAny(words, tone.Keywords) {
			profile.Mood = tone.Mood
			profile.Atmosphere = tone.Atmos
			profile.Palette = tone.Palette
			profile.Lighting = tone.Lighting
			break
		}
	}

	profile.Title = deriveTitle(words, idea)
	profile.OneLiner = deriveOneLiner(idea)
	profile.Subject = deriveSubject(words)

	// 아이디어에서 추출한 명사들이 있으면 테마 기본 오브젝트보다 우선
	if extracted := deriveObjects(words); len(extracted) > 0 {
		profile.Objects = extracted
	}

	return profile
}

// significantWords - 구두점 제거 + 소문자화 + 불용어 필터
func significantWords(idea string) []string {
	fields := strings.FieldsFunc(idea, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r) && r != '\''
	})

	out := make([]string, 0, len(fields))
	for _, f := range fields {
		w := strings.ToLower(f)
		if w == "" || stopWords[w] {
			continue
		}
		out = append(out, w)
	}
	return out
}

// containsAny - 토큰 단위 매칭 (단순 복수형 허용, 부분 문자열 매칭 금지)
func containsAny(tokens []string, keywords []string) bool {
	for _, kw := range keywords {
		for _, tok := range tokens {
			if tok == kw || tok == kw+"s" || tok == kw+"es" {
				return true
			}
		}
	}
	return false
}

// deriveTitle - 유의미 단어 앞쪽 4개를 타이틀 케이스로 조합
func deriveTitle(words []string, idea string) string {
	picked := words
	if len(picked) > 4 {
		picked = picked[:4]
	}

	if len(picked) == 0 {
		// 불용어만으로 이루어진 입력: 원문을 그대로 타이틀 케이스 처리
		picked = strings.Fields(strings.ToLower(strings.TrimSpace(idea)))
	}

	titled := make([]string, 0, len(picked))
	for i, w := range picked {
		if i > 0 && minorTitleWords[w] {
			titled = append(titled, w)
			continue
		}
		titled = append(titled, capitalize(w))
	}
	return strings.Join(titled, " ")
}

// deriveOneLiner - 아이디어를 한 문장으로 정돈 (대문자 시작, 마침표 종료, 길이 제한)
func deriveOneLiner(idea string) string {
	line := strings.Join(strings.Fields(idea), " ")
	line = strings.TrimRight(line, ".!? ")

	const maxLen = 160
	if len(line) > maxLen {
		cut := strings.LastIndex(line[:maxLen], " ")
		if cut <= 0 {
			cut = maxLen
		}
		line = line[:cut] + "…"
	}

	return capitalize(line) + "."
}

// deriveSubject - 앞쪽 유의미 단어 2개를 주어 구절로 사용
func deriveSubject(words []string) string {
	switch {
	case len(words) >= 2:
		return words[0] + " " + words[1]
	case len(words) == 1:
		return words[0]
	default:
		return "the central figure"
	}
}

// deriveObjects - 주어 이후의 유의미 단어를 핵심 오브젝트로 (최대 3개)
func deriveObjects(words []string) []string {
	if len(words) <= 2 {
		return nil
	}
	rest := words[2:]
	if len(rest) > 3 {
		rest = rest[:3]
	}
	out := make([]string, 0, len(rest))
	for _, w := range rest {
		out = append(out, "the "+w)
	}
	return out
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
