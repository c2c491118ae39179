package domain

// ExpertRole selects which fixed system instruction is sent with a
// consultation. Only the two published roles are accepted.
type ExpertRole string

const (
	ExpertTravel ExpertRole = "A"
	ExpertCareer ExpertRole = "B"
)

const (
	travelInstruction = "あなたは旅行プランニングの専門家です。ユーザーの目的、予算、移動手段、" +
		"季節や安全面を考慮し、現実的で具体的な旅程案を日本語で提案してください。" +
		"可能なら日程ごとのアクティビティ、目安費用、予約のコツも含めてください。"

	careerInstruction = "あなたはキャリアコーチの専門家です。ユーザーの目標、経験、スキルギャップを踏まえ、" +
		"達成可能なアクションプランを日本語で提案してください。" +
		"短期/中期/長期のステップ、学習リソース、ネットワーキングの方法、想定課題と対策を含めてください。"
)

func (r ExpertRole) IsValid() bool {
	switch r {
	case ExpertTravel, ExpertCareer:
		return true
	}
	return false
}

func (r ExpertRole) String() string { return string(r) }

// Instruction returns the system instruction for the role. The empty
// string is returned for unknown roles; callers validate first.
func (r ExpertRole) Instruction() string {
	switch r {
	case ExpertTravel:
		return travelInstruction
	case ExpertCareer:
		return careerInstruction
	}
	return ""
}

// Label is the short human-readable description shown in the UI.
func (r ExpertRole) Label() string {
	switch r {
	case ExpertTravel:
		return "旅行プランナー"
	case ExpertCareer:
		return "キャリアコーチ"
	}
	return ""
}

// Roles lists the selectable roles in display order.
func Roles() []ExpertRole {
	return []ExpertRole{ExpertTravel, ExpertCareer}
}
