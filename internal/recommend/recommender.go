package recommend

import (
	"hash/fnv"
	"learning_assistant_backend/internal/analysis"
	"slices"
	"strings"
)

const defaultSubject = "General"

// Recommend builds the ranked recommendation list for one analysis. The output
// depends only on its inputs.
func Recommend(level analysis.PerformanceLevel, gaps []analysis.LearningGap, subject string) []Recommendation {
	subject = strings.TrimSpace(subject)
	if subject == "" {
		subject = defaultSubject
	}

	recs := make([]Recommendation, 0, len(gaps)+3)

	seen := make(map[analysis.GapType]bool, len(gaps))
	for _, gap := range gaps {
		if seen[gap.Type] {
			continue
		}
		seen[gap.Type] = true
		if rec, ok := actionPlan(gap, subject); ok {
			recs = append(recs, rec)
		}
	}

	escalated := PriorityMedium
	if level == analysis.Poor {
		escalated = PriorityHigh
	}

	recs = append(recs,
		Recommendation{
			Type:        TypeMotivational,
			Priority:    PriorityMedium,
			Title:       "Learning Guidance",
			Description: motivationalMessage(level, subject),
			ActionItems: []string{},
		},
		Recommendation{
			Type:        TypeResources,
			Priority:    escalated,
			Title:       "Recommended Resources for " + subject,
			Description: "Here are some resources to help you improve in " + subject,
			ActionItems: Resources(subject),
		},
		Recommendation{
			Type:        TypeStudyTips,
			Priority:    escalated,
			Title:       "General Study Tips",
			Description: "Best practices for effective learning",
			ActionItems: slices.Clone(studyTips),
		},
	)

	Sort(recs)
	return recs
}

// Sort orders by priority, then by type precedence. It is stable, so several
// action plans with equal priority keep their gap order.
func Sort(recs []Recommendation) {
	slices.SortStableFunc(recs, func(a, b Recommendation) int {
		if d := a.Priority.rank() - b.Priority.rank(); d != 0 {
			return d
		}
		return precedence[a.Type] - precedence[b.Type]
	})
}

func actionPlan(gap analysis.LearningGap, subject string) (Recommendation, bool) {
	priority := PriorityMedium
	if gap.Severity == analysis.SeverityHigh {
		priority = PriorityHigh
	}

	switch gap.Type {
	case analysis.LowQuizScore:
		return Recommendation{
			Type:        TypeActionPlan,
			Priority:    priority,
			Title:       "Improve " + subject + " Performance",
			Description: gap.Description,
			ActionItems: quizActionItems(subject),
		}, true
	case analysis.LowAttendance:
		return Recommendation{
			Type:        TypeActionPlan,
			Priority:    priority,
			Title:       "Improve Attendance",
			Description: gap.Description,
			ActionItems: attendanceActionItems(subject),
		}, true
	}
	return Recommendation{}, false
}

func motivationalMessage(level analysis.PerformanceLevel, subject string) string {
	templates, ok := motivationalTemplates[level]
	if !ok {
		templates = motivationalTemplates[analysis.Average]
	}
	h := fnv.New32a()
	h.Write([]byte(level.String() + "|" + subject))
	return templates[h.Sum32()%uint32(len(templates))]
}
