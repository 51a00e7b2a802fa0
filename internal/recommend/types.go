package recommend

type Type string

const (
	TypeMotivational Type = "motivational"
	TypeResources    Type = "resources"
	TypeActionPlan   Type = "action_plan"
	TypeStudyTips    Type = "study_tips"
)

// precedence breaks priority ties; lower sorts first.
var precedence = map[Type]int{
	TypeActionPlan:   0,
	TypeResources:    1,
	TypeStudyTips:    2,
	TypeMotivational: 3,
}

type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

func (p Priority) rank() int {
	switch p {
	case PriorityHigh:
		return 0
	case PriorityMedium:
		return 1
	default:
		return 2
	}
}

type Recommendation struct {
	Type        Type     `json:"type"`
	Priority    Priority `json:"priority"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	ActionItems []string `json:"action_items"`
}

type Goal struct {
	Goal            string           `json:"goal"`
	Recommendations []Recommendation `json:"recommendations"`
}

type WeekGoal struct {
	Week  int    `json:"week"`
	Goals []Goal `json:"goals"`
}

type StudyPlan struct {
	StudentID     string     `json:"student_id,omitempty"`
	DurationWeeks int        `json:"duration_weeks"`
	WeeklyGoals   []WeekGoal `json:"weekly_goals"`
}
