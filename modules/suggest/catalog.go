package suggest

// Idea - 프론트 제안 칩 하나 (라벨 + 실제 컨셉 텍스트)
type Idea struct {
	Label string `json:"label"`
	Idea  string `json:"idea"`
}

// starterIdeas - 고정 순서의 시작 아이디어 카탈로그
var starterIdeas = []Idea{
	{
		Label: "Martian garden",
		Idea:  "A lone astronaut planting a garden on Mars to remember Earth.",
	},
	{
		Label: "Lighthouse storm",
		Idea:  "A forgotten lighthouse awakening during a midnight storm.",
	},
	{
		Label: "Neon courier",
		Idea:  "A bicycle courier racing through neon-soaked city streets to deliver one last letter.",
	},
	{
		Label: "Paper boat",
		Idea:  "A paper boat carrying a child's wish down a river through four seasons.",
	},
	{
		Label: "Clockmaker's dragon",
		Idea:  "An old clockmaker building a tiny brass dragon that learns to fly.",
	},
	{
		Label: "Desert caravan",
		Idea:  "A caravan crossing endless dunes guided only by a song passed between generations.",
	},
	{
		Label: "Winter violinist",
		Idea:  "A street violinist playing through a snowstorm until the whole frozen square begins to dance.",
	},
	{
		Label: "Robot gardener",
		Idea:  "A decommissioned factory robot secretly tending the last rooftop garden in the city.",
	},
}

// StarterIdeas - 카탈로그 복사본 반환 (호출자가 수정해도 원본 유지)
func StarterIdeas() []Idea {
	out := make([]Idea, len(starterIdeas))
	copy(out, starterIdeas)
	return out
}
