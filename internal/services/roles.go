package services

import "github.com/tbowo/careline/internal/models"

// RoleLabels carries the human-readable scale wordings for one role. The
// patient wording is conversational; the caregiver wording mirrors the
// clinical scales so it can be read back to a doctor. Both decorate the same
// underlying ordinal values.
type RoleLabels struct {
	Energy   []string `json:"energy"`
	Nausea   []string `json:"nausea"`
	Appetite []string `json:"appetite"`
	Sleep    []string `json:"sleep"`
	Diarrhea []string `json:"diarrhea"`
}

var patientLabels = RoleLabels{
	Energy:   []string{"精神不错", "稍微有点累", "需要多休息", "大部分时间想躺着", "今天很疲惫"},
	Nausea:   []string{"没有不舒服", "有一点点", "比较明显", "很难受"},
	Appetite: []string{"完全不想吃", "吃很少", "吃一半", "还行", "挺好", "很好"},
	Sleep:    []string{"睡得不好", "一般般", "还可以", "睡得很好"},
	Diarrhea: []string{"无", "轻度", "中度", "重度"},
}

var caregiverLabels = RoleLabels{
	Energy:   []string{"0 正常", "1 轻度受限", "2 需多休息", "3 多数卧床", "4 完全卧床"},
	Nausea:   []string{"0 无", "1 轻度", "2 中度", "3 重度"},
	Appetite: []string{"完全不想吃", "吃很少", "吃一半", "还行", "挺好", "很好"},
	Sleep:    []string{"0 差", "1 一般", "2 较好", "3 好"},
	Diarrhea: []string{"无", "轻度", "中度", "重度"},
}

// BristolLabels describes the 7-point stool form scale, shared by both roles.
var BristolLabels = []string{"硬块", "腊肠硬", "腊肠裂", "软条✓", "软团", "糊状", "水样"}

func LabelsFor(role models.Role) RoleLabels {
	if role == models.RoleCaregiver {
		return caregiverLabels
	}
	return patientLabels
}

var patientPhaseMessages = map[Phase]string{
	PhaseEarly:      "刚开始，状态还不错",
	PhasePeakWindow: "身体可能会有些反应，注意休息",
	PhaseRecovery:   "最难的几天快过去了",
	PhaseLate:       "快到疗程尾声了，坚持住",
	PhaseOverrun:    "这个疗程已经结束啦，辛苦了！",
}

var caregiverPhaseMessages = map[Phase]string{
	PhaseEarly:      "化疗初期",
	PhasePeakWindow: "⚠️ 副作用高峰期",
	PhaseRecovery:   "副作用窗口已过",
	PhaseLate:       "疗程后段",
	PhaseOverrun:    "疗程已超期，请创建新疗程",
}

// PhaseMessageFor decorates a phase tag with the role's wording. The tag
// boundaries never change per role, only the text.
func PhaseMessageFor(role models.Role, phase Phase) string {
	if role == models.RoleCaregiver {
		return caregiverPhaseMessages[phase]
	}
	return patientPhaseMessages[phase]
}
