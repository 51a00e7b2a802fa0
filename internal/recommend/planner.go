package recommend

import "slices"

const PlanWeeks = 4

var goalVerbs = map[Type]string{
	TypeActionPlan:   "Address",
	TypeResources:    "Explore",
	TypeStudyTips:    "Practice",
	TypeMotivational: "Reflect on",
}

// BuildPlan spreads recommendations round-robin over four weeks in priority
// order: after a stable Sort, recommendation i lands in week i%4+1.
func BuildPlan(studentID string, recs []Recommendation) StudyPlan {
	recs = slices.Clone(recs)
	Sort(recs)

	plan := StudyPlan{
		StudentID:     studentID,
		DurationWeeks: PlanWeeks,
		WeeklyGoals:   make([]WeekGoal, PlanWeeks),
	}
	for w := range plan.WeeklyGoals {
		plan.WeeklyGoals[w] = WeekGoal{Week: w + 1, Goals: []Goal{}}
	}

	for i, rec := range recs {
		week := &plan.WeeklyGoals[i%PlanWeeks]
		week.Goals = append(week.Goals, Goal{
			Goal:            goalText(rec),
			Recommendations: []Recommendation{rec},
		})
	}
	return plan
}

func goalText(rec Recommendation) string {
	verb, ok := goalVerbs[rec.Type]
	if !ok {
		return rec.Title
	}
	return verb + ": " + rec.Title
}
