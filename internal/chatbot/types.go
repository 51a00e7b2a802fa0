package chatbot

import (
	"learning_assistant_backend/internal/analysis"
	"slices"
)

type Intent string

const (
	IntentImprovement Intent = "improvement"
	IntentAttendance  Intent = "attendance"
	IntentPerformance Intent = "performance_inquiry"
	IntentWhatToStudy Intent = "recommendation_request"
	IntentStudyHelp   Intent = "study_help"
	IntentMotivation  Intent = "motivation"
	IntentGeneral     Intent = "general"
)

// Context is an optional snapshot of the student used to personalize replies.
// Every field may be empty.
type Context struct {
	Subject          string                     `json:"subject,omitempty"`
	PerformanceLevel *analysis.PerformanceLevel `json:"performance_level,omitempty"`
	LearningGaps     []analysis.LearningGap     `json:"learning_gaps,omitempty"`
	QuizScore        *float64                   `json:"quiz_score,omitempty"`
	Attendance       *float64                   `json:"attendance,omitempty"`
}

// TopGap returns the most severe gap, if any.
func (c *Context) TopGap() (analysis.LearningGap, bool) {
	if c == nil || len(c.LearningGaps) == 0 {
		return analysis.LearningGap{}, false
	}
	gaps := slices.Clone(c.LearningGaps)
	analysis.SortGaps(gaps)
	return gaps[0], true
}

func (c *Context) HasGap(t analysis.GapType) (analysis.LearningGap, bool) {
	if c == nil {
		return analysis.LearningGap{}, false
	}
	for _, g := range c.LearningGaps {
		if g.Type == t {
			return g, true
		}
	}
	return analysis.LearningGap{}, false
}

func (c *Context) subject(fallback string) string {
	if c == nil || c.Subject == "" {
		return fallback
	}
	return c.Subject
}

type Reply struct {
	Response    string `json:"response"`
	Intent      Intent `json:"intent"`
	ContextUsed bool   `json:"context_used"`
	// Guarded is set when the denylist replaced a rendered reply.
	Guarded bool `json:"-"`
}
