package recommend

import (
	"learning_assistant_backend/internal/analysis"
)

var motivationalTemplates = map[analysis.PerformanceLevel][]string{
	analysis.Excellent: {
		"Great job! You're excelling in this subject. Consider exploring advanced topics or helping peers.",
		"Your performance is outstanding. Challenge yourself with more complex problems.",
		"Excellent work! You might want to mentor other students or take on leadership roles.",
	},
	analysis.Good: {
		"You're doing well! Focus on maintaining consistency and reviewing key concepts regularly.",
		"Good progress! Try to identify any minor gaps and practice more challenging problems.",
		"Keep up the good work! Consider joining study groups to reinforce your understanding.",
	},
	analysis.Average: {
		"You're on the right track. Focus on regular practice and review of fundamental concepts.",
		"Consider dedicating more time to this subject. Break down topics into smaller, manageable chunks.",
		"There is clear room to grow here. A structured study schedule will help you get there.",
	},
	analysis.BelowAverage: {
		"Let's work on improving together. Start with the basics and build up gradually, and don't hesitate to ask for help.",
		"Focus on understanding core concepts first. Practice daily and track your progress.",
		"Extra support can make a real difference. Review foundational material and practice regularly.",
	},
	analysis.Poor: {
		"Let's create a focused improvement plan. Start with the basics and practice consistently.",
		"Don't worry, we can improve! Break the subject into small steps and celebrate small wins.",
		"One-on-one tutoring or additional resources can help. Focus on understanding, not just memorizing.",
	},
}

var subjectResources = map[string][]string{
	"Mathematics": {
		"Khan Academy - Algebra and Calculus",
		"Practice problem sets from textbook",
		"Online math tutoring sessions",
		"Math study groups",
	},
	"Science": {
		"Interactive science simulations",
		"Laboratory practice sessions",
		"Science documentaries and videos",
		"Concept mapping exercises",
	},
	"English": {
		"Reading comprehension exercises",
		"Writing practice with feedback",
		"Grammar and vocabulary building",
		"Literature discussion groups",
	},
	"History": {
		"Timeline creation activities",
		"Primary source analysis",
		"Historical documentaries",
		"Study guides and flashcards",
	},
	"Computer Science": {
		"Coding practice platforms",
		"Project-based learning",
		"Algorithm visualization tools",
		"Peer programming sessions",
	},
}

var generalResources = []string{
	"Course textbook chapter reviews",
	"Instructor office hours",
	"Online video lectures on the current unit",
	"Peer study groups",
}

var studyTips = []string{
	"Study in 25-30 minute focused sessions (Pomodoro technique)",
	"Review material within 24 hours of learning",
	"Teach concepts to others to reinforce understanding",
	"Use active recall instead of passive reading",
	"Get adequate sleep for better memory retention",
}

func quizActionItems(subject string) []string {
	return []string{
		"Review " + subject + " fundamentals this week",
		"Complete 3 practice quizzes on " + subject,
		"Schedule a review session with your instructor",
		"Focus on understanding concepts, not just memorization",
	}
}

func attendanceActionItems(subject string) []string {
	return []string{
		"Set reminders for " + subject + " class schedules",
		"Review notes and materials from missed " + subject + " classes",
		"Connect with " + subject + " classmates for notes",
		"Talk to your " + subject + " instructor about absences",
	}
}

// Resources returns the catalog for subject, or the general list when the
// subject has no dedicated entry.
func Resources(subject string) []string {
	items, ok := subjectResources[subject]
	if !ok {
		items = generalResources
	}
	out := make([]string, len(items))
	copy(out, items)
	return out
}
