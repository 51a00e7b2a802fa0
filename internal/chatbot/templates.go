package chatbot

import (
	"fmt"
	"learning_assistant_backend/internal/analysis"
	"strconv"
	"strings"
)

const FallbackReply = "I'm not sure I understood that. Could you rephrase your question? " +
	"I can help you understand your performance, decide what to study next, improve your attendance, or stay motivated."

var encouragements = map[analysis.PerformanceLevel]string{
	analysis.Poor:         "It's okay to struggle, that's how we grow. Small steps lead to big improvements.",
	analysis.BelowAverage: "Remember, every expert was once a beginner. You're making progress!",
	analysis.Average:      "Learning is a journey, not a destination. Keep going!",
	analysis.Good:         "You're building real momentum. Keep it up!",
	analysis.Excellent:    "Outstanding work. Keep challenging yourself!",
}

const defaultEncouragement = "Small steps lead to big improvements. You've got this!"

func encouragement(c *Context) string {
	if c == nil || c.PerformanceLevel == nil {
		return defaultEncouragement
	}
	if e, ok := encouragements[*c.PerformanceLevel]; ok {
		return e
	}
	return defaultEncouragement
}

func struggling(l analysis.PerformanceLevel) bool {
	return l == analysis.Poor || l == analysis.BelowAverage
}

func pct(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "%"
}

// writeStanding appends the level and top gap sentences the context carries.
func writeStanding(b *strings.Builder, c *Context) {
	if c.PerformanceLevel != nil {
		fmt.Fprintf(b, " You're currently at the %s level.", *c.PerformanceLevel)
	}
	if gap, ok := c.TopGap(); ok {
		fmt.Fprintf(b, " Your top focus area is %s (%s priority).", gap.Type, gap.Severity)
	}
}

func renderImprovement(c *Context) string {
	if c == nil {
		return "To improve your results, review the fundamentals, practice regularly with short quizzes, " +
			"and check your answers after each session. Share your quiz score and attendance and I can make this more specific."
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Let's work on improving your %s results.", c.subject("course"))
	if c.PerformanceLevel != nil {
		fmt.Fprintf(&b, " You're currently at the %s level.", *c.PerformanceLevel)
	}
	if gap, ok := c.TopGap(); ok {
		fmt.Fprintf(&b, " Your top focus area is %s (%s priority).", gap.Type, gap.Severity)
		if gap.Description != "" {
			fmt.Fprintf(&b, " %s.", gap.Description)
		}
	}

	switch {
	case c.PerformanceLevel == nil:
		b.WriteString(" Review the fundamentals, practice regularly, and track your progress each week.")
	case struggling(*c.PerformanceLevel):
		b.WriteString(" Start with the fundamentals: review the basic concepts, then complete short practice quizzes to check your understanding.")
	case *c.PerformanceLevel == analysis.Average:
		b.WriteString(" Focus on regular practice and review the topics where you lose the most points.")
	default:
		b.WriteString(" Push further with more challenging problems and advanced topics.")
	}
	return b.String()
}

func renderAttendance(c *Context) string {
	generic := "Attending class consistently is one of the simplest ways to improve your results. " +
		"Set reminders for class schedules and review materials from any classes you miss."
	if c == nil {
		return generic
	}

	var b strings.Builder
	if c.Attendance != nil {
		fmt.Fprintf(&b, "Your attendance in %s is %s.", c.subject("this course"), pct(*c.Attendance))
	} else {
		fmt.Fprintf(&b, "Let's talk about your attendance in %s.", c.subject("this course"))
	}
	writeStanding(&b, c)

	if gap, ok := c.HasGap(analysis.LowAttendance); ok {
		fmt.Fprintf(&b, " This is flagged as a %s priority Low Attendance gap.", gap.Severity)
		b.WriteString(" Set reminders for class schedules, review missed class materials, and connect with classmates for notes.")
	} else if c.Attendance != nil {
		b.WriteString(" Your attendance looks healthy, keep it up! Regular attendance makes every study session more effective.")
	} else {
		b.WriteString(" " + generic)
	}
	return b.String()
}

func renderPerformance(c *Context) string {
	if c == nil || c.PerformanceLevel == nil {
		return "I can explain your performance once you share your quiz score and attendance. " +
			"Run an analysis and I'll tell you where you stand and what to focus on."
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Based on your recent performance in %s", c.subject("your subjects"))
	if c.QuizScore != nil {
		fmt.Fprintf(&b, ", you scored %s", pct(*c.QuizScore))
	}
	fmt.Fprintf(&b, ". This places you in the %s category.", *c.PerformanceLevel)
	if gap, ok := c.TopGap(); ok {
		fmt.Fprintf(&b, " The main area to work on is %s.", gap.Type)
	}
	b.WriteString("\n\n")
	b.WriteString(encouragement(c))
	return b.String()
}

func renderWhatToStudy(c *Context) string {
	if c == nil || c.PerformanceLevel == nil {
		return "Here's a good general plan:\n\n" +
			"1. Review fundamental concepts\n" +
			"2. Practice regularly, consistency is key\n" +
			"3. Ask questions when something is unclear\n" +
			"4. Track your progress each week"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Based on your %s performance in %s, here's what I recommend:\n\n", *c.PerformanceLevel, c.subject("your studies"))
	switch level := *c.PerformanceLevel; {
	case struggling(level):
		b.WriteString("1. Review fundamental concepts, make sure you understand the basics\n")
		b.WriteString("2. Practice regularly, consistency is key\n")
		b.WriteString("3. Seek help when needed, don't hesitate to ask questions\n")
		b.WriteString("4. Track your progress and celebrate small wins")
	case level == analysis.Average:
		b.WriteString("1. Focus on areas where you can improve\n")
		b.WriteString("2. Challenge yourself with more difficult problems\n")
		b.WriteString("3. Join study groups to reinforce learning\n")
		b.WriteString("4. Review and practice regularly")
	default:
		b.WriteString("1. Explore advanced topics to deepen understanding\n")
		b.WriteString("2. Help others learn, teaching reinforces your knowledge\n")
		b.WriteString("3. Take on challenging projects\n")
		b.WriteString("4. Maintain your excellent performance")
	}
	if gap, ok := c.TopGap(); ok {
		fmt.Fprintf(&b, "\n\nStart with your top focus area: %s.", gap.Type)
	}
	return b.String()
}

func renderStudyHelp(c *Context) string {
	if c == nil {
		return "I'm here to help you study! Break topics into smaller concepts, practice with short exercises, " +
			"and review what you learned within a day. Which subject would you like to work on?"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "I'm here to help you with %s!", c.subject("the subject"))
	writeStanding(&b, c)
	b.WriteString(" ")
	if c.PerformanceLevel != nil && struggling(*c.PerformanceLevel) {
		b.WriteString("Let's start with the fundamentals. Review the basic concepts first, then gradually move to more complex topics. ")
		b.WriteString("Would you like me to suggest specific study resources or create a study plan?")
	} else {
		b.WriteString("To improve further, practice more challenging problems and explore advanced topics. ")
		b.WriteString("What specific area would you like help with?")
	}
	return b.String()
}

func renderMotivation(c *Context) string {
	var b strings.Builder
	b.WriteString(encouragement(c))
	if c != nil {
		writeStanding(&b, c)
	}
	b.WriteString("\n\n")
	if subject := c.subject(""); subject != "" {
		fmt.Fprintf(&b, "Getting better at %s takes time and effort, and every small step forward is progress. ", subject)
	} else {
		b.WriteString("Learning takes time and effort, and every small step forward is progress. ")
	}
	b.WriteString("If you're feeling stuck, break your goals into smaller, manageable tasks. You've got this!")
	return b.String()
}
