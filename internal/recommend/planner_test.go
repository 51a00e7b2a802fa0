package recommend

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func numbered(n int) []Recommendation {
	recs := make([]Recommendation, n)
	for i := range recs {
		recs[i] = Recommendation{
			Type:     TypeActionPlan,
			Priority: PriorityHigh,
			Title:    fmt.Sprintf("Rec %d", i+1),
		}
	}
	return recs
}

func titles(w WeekGoal) []string {
	var out []string
	for _, g := range w.Goals {
		for _, r := range g.Recommendations {
			out = append(out, r.Title)
		}
	}
	return out
}

func TestBuildPlan_RoundRobin(t *testing.T) {
	plan := BuildPlan("S001", numbered(6))

	require.Len(t, plan.WeeklyGoals, 4)
	assert.Equal(t, 4, plan.DurationWeeks)
	assert.Equal(t, "S001", plan.StudentID)
	assert.Equal(t, []string{"Rec 1", "Rec 5"}, titles(plan.WeeklyGoals[0]))
	assert.Equal(t, []string{"Rec 2", "Rec 6"}, titles(plan.WeeklyGoals[1]))
	assert.Equal(t, []string{"Rec 3"}, titles(plan.WeeklyGoals[2]))
	assert.Equal(t, []string{"Rec 4"}, titles(plan.WeeklyGoals[3]))

	for i, w := range plan.WeeklyGoals {
		assert.Equal(t, i+1, w.Week)
	}
}

func TestBuildPlan_Empty(t *testing.T) {
	plan := BuildPlan("", nil)

	require.Len(t, plan.WeeklyGoals, 4)
	for _, w := range plan.WeeklyGoals {
		assert.NotNil(t, w.Goals)
		assert.Empty(t, w.Goals)
	}
}

func TestBuildPlan_FewerThanFour(t *testing.T) {
	plan := BuildPlan("S002", numbered(2))

	assert.Len(t, plan.WeeklyGoals[0].Goals, 1)
	assert.Len(t, plan.WeeklyGoals[1].Goals, 1)
	assert.Empty(t, plan.WeeklyGoals[2].Goals)
	assert.Empty(t, plan.WeeklyGoals[3].Goals)
}

func TestBuildPlan_GoalsReferenceListedRecommendations(t *testing.T) {
	recs := Recommend(0, nil, "English")
	plan := BuildPlan("S003", recs)

	for _, w := range plan.WeeklyGoals {
		for _, g := range w.Goals {
			for _, r := range g.Recommendations {
				assert.Contains(t, recs, r)
				assert.Contains(t, g.Goal, r.Title)
			}
		}
	}
	assert.Equal(t, "Explore: Recommended Resources for English", plan.WeeklyGoals[0].Goals[0].Goal)
}

func TestBuildPlan_SortsByPriority(t *testing.T) {
	recs := []Recommendation{
		{Type: TypeMotivational, Priority: PriorityLow, Title: "low"},
		{Type: TypeStudyTips, Priority: PriorityMedium, Title: "medium"},
		{Type: TypeActionPlan, Priority: PriorityHigh, Title: "high"},
	}
	plan := BuildPlan("S", recs)

	assert.Equal(t, []string{"high"}, titles(plan.WeeklyGoals[0]))
	assert.Equal(t, []string{"medium"}, titles(plan.WeeklyGoals[1]))
	assert.Equal(t, []string{"low"}, titles(plan.WeeklyGoals[2]))
	// caller's slice is left untouched
	assert.Equal(t, "low", recs[0].Title)
}
