package recommend

import (
	"learning_assistant_backend/internal/analysis"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func types(recs []Recommendation) []Type {
	out := make([]Type, len(recs))
	for i, r := range recs {
		out[i] = r.Type
	}
	return out
}

func assertSorted(t *testing.T, recs []Recommendation) {
	t.Helper()
	for i := 1; i < len(recs); i++ {
		prev, cur := recs[i-1], recs[i]
		if prev.Priority.rank() == cur.Priority.rank() {
			assert.LessOrEqual(t, precedence[prev.Type], precedence[cur.Type], "tie-break at %d", i)
			continue
		}
		assert.Less(t, prev.Priority.rank(), cur.Priority.rank(), "priority at %d", i)
	}
}

func TestRecommend_NoGaps(t *testing.T) {
	recs := Recommend(analysis.Good, nil, "Mathematics")

	require.Len(t, recs, 3)
	assert.Equal(t, []Type{TypeResources, TypeStudyTips, TypeMotivational}, types(recs))
	for _, r := range recs {
		assert.Equal(t, PriorityMedium, r.Priority)
	}
	assert.Equal(t, "Recommended Resources for Mathematics", recs[0].Title)
	assert.Contains(t, recs[0].ActionItems, "Khan Academy - Algebra and Calculus")
}

func TestRecommend_PoorWithHighGaps(t *testing.T) {
	gaps := analysis.IdentifyGaps(35, 40)
	recs := Recommend(analysis.Poor, gaps, "Science")

	require.Len(t, recs, 5)
	assert.Equal(t,
		[]Type{TypeActionPlan, TypeActionPlan, TypeResources, TypeStudyTips, TypeMotivational},
		types(recs))
	assert.Equal(t, "Improve Science Performance", recs[0].Title)
	assert.Equal(t, "Improve Attendance", recs[1].Title)
	for _, r := range recs[:4] {
		assert.Equal(t, PriorityHigh, r.Priority)
	}
	assert.Equal(t, PriorityMedium, recs[4].Priority)
	assertSorted(t, recs)
}

func TestRecommend_MediumGapsSortBehindEscalatedTypes(t *testing.T) {
	gaps := analysis.IdentifyGaps(55, 70)
	recs := Recommend(analysis.Poor, gaps, "History")

	assert.Equal(t,
		[]Type{TypeResources, TypeStudyTips, TypeActionPlan, TypeActionPlan, TypeMotivational},
		types(recs))
	assertSorted(t, recs)
}

func TestRecommend_SortedForEveryCombination(t *testing.T) {
	for _, level := range analysis.Levels() {
		for _, quiz := range []float64{20, 50, 90} {
			for _, att := range []float64{20, 60, 90} {
				gaps := analysis.IdentifyGaps(quiz, att)
				recs := Recommend(level, gaps, "English")
				assert.Len(t, recs, len(gaps)+3)
				assertSorted(t, recs)

				motivational := 0
				for _, r := range recs {
					if r.Type == TypeMotivational {
						motivational++
					}
				}
				assert.Equal(t, 1, motivational)
			}
		}
	}
}

func TestRecommend_DuplicateGapTypesCollapse(t *testing.T) {
	gaps := []analysis.LearningGap{
		{Type: analysis.LowQuizScore, Severity: analysis.SeverityHigh},
		{Type: analysis.LowQuizScore, Severity: analysis.SeverityMedium},
	}

	recs := Recommend(analysis.Average, gaps, "English")
	assert.Len(t, recs, 4)
}

func TestRecommend_MotivationalTone(t *testing.T) {
	find := func(recs []Recommendation) string {
		for _, r := range recs {
			if r.Type == TypeMotivational {
				return r.Description
			}
		}
		return ""
	}

	assert.Contains(t, motivationalTemplates[analysis.Excellent], find(Recommend(analysis.Excellent, nil, "Science")))
	assert.Contains(t, motivationalTemplates[analysis.Poor], find(Recommend(analysis.Poor, nil, "Science")))
	assert.Contains(t, motivationalTemplates[analysis.BelowAverage], find(Recommend(analysis.BelowAverage, nil, "Science")))
}

func TestRecommend_UnknownSubjectAndDefaults(t *testing.T) {
	recs := Recommend(analysis.Average, nil, "Astronomy")
	assert.Equal(t, generalResources, recs[0].ActionItems)

	recs = Recommend(analysis.Average, nil, "")
	assert.Equal(t, "Recommended Resources for General", recs[0].Title)
}

func TestRecommend_Idempotent(t *testing.T) {
	gaps := analysis.IdentifyGaps(45, 55)
	assert.Equal(t, Recommend(analysis.BelowAverage, gaps, "Mathematics"), Recommend(analysis.BelowAverage, gaps, "Mathematics"))
}

func TestRecommend_CatalogNotShared(t *testing.T) {
	recs := Recommend(analysis.Average, nil, "Mathematics")
	recs[0].ActionItems[0] = "changed"

	assert.Equal(t, "Khan Academy - Algebra and Calculus", Recommend(analysis.Average, nil, "Mathematics")[0].ActionItems[0])
}

func TestRecommend_ActionItemsNameSubjectForEveryGap(t *testing.T) {
	recs := Recommend(analysis.BelowAverage, analysis.IdentifyGaps(35, 40), "Chemistry")

	var plans []Recommendation
	for _, r := range recs {
		if r.Type == TypeActionPlan {
			plans = append(plans, r)
		}
	}
	require.Len(t, plans, 2)

	for _, p := range plans {
		mentions := 0
		for _, item := range p.ActionItems {
			if strings.Contains(item, "Chemistry") {
				mentions++
			}
		}
		assert.Positive(t, mentions, p.Title)
	}
	assert.Equal(t, "Improve Attendance", plans[1].Title)
	assert.Contains(t, plans[1].ActionItems, "Set reminders for Chemistry class schedules")
}
