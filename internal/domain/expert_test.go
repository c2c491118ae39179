package domain

import "testing"

const (
	wantTravelInstruction = "あなたは旅行プランニングの専門家です。ユーザーの目的、予算、移動手段、" +
		"季節や安全面を考慮し、現実的で具体的な旅程案を日本語で提案してください。" +
		"可能なら日程ごとのアクティビティ、目安費用、予約のコツも含めてください。"

	wantCareerInstruction = "あなたはキャリアコーチの専門家です。ユーザーの目標、経験、スキルギャップを踏まえ、" +
		"達成可能なアクションプランを日本語で提案してください。" +
		"短期/中期/長期のステップ、学習リソース、ネットワーキングの方法、想定課題と対策を含めてください。"
)

func TestExpertRole_Instruction(t *testing.T) {
	tests := []struct {
		role ExpertRole
		want string
	}{
		{ExpertTravel, wantTravelInstruction},
		{ExpertCareer, wantCareerInstruction},
		{ExpertRole("C"), ""},
		{ExpertRole(""), ""},
	}

	for _, tt := range tests {
		t.Run(string(tt.role), func(t *testing.T) {
			if got := tt.role.Instruction(); got != tt.want {
				t.Errorf("Instruction() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExpertRole_IsValid(t *testing.T) {
	tests := []struct {
		role ExpertRole
		want bool
	}{
		{ExpertTravel, true},
		{ExpertCareer, true},
		{ExpertRole("C"), false},
		{ExpertRole("a"), false},
		{ExpertRole(""), false},
		{ExpertRole("AB"), false},
	}

	for _, tt := range tests {
		if got := tt.role.IsValid(); got != tt.want {
			t.Errorf("IsValid(%q) = %v, want %v", tt.role, got, tt.want)
		}
	}
}

func TestRoles(t *testing.T) {
	roles := Roles()
	if len(roles) != 2 {
		t.Fatalf("Roles() = %d entries, want 2", len(roles))
	}
	if roles[0] != ExpertTravel || roles[1] != ExpertCareer {
		t.Errorf("Roles() = %v, want [A B]", roles)
	}
}
