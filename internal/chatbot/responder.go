package chatbot

import (
	"strings"
)

// Matcher pairs trigger keywords with a template. Render receives nil when no
// student context is available.
type Matcher struct {
	Intent   Intent
	Keywords []string
	Render   func(c *Context) string
}

// Matches is a case-insensitive substring test against the lowered message.
func (m Matcher) Matches(lowered string) bool {
	for _, kw := range m.Keywords {
		if strings.Contains(lowered, kw) {
			return true
		}
	}
	return false
}

// DefaultMatchers returns matchers in priority order. The first match wins, so
// improvement must be checked before performance ("improve my scores").
func DefaultMatchers() []Matcher {
	return []Matcher{
		{
			Intent:   IntentImprovement,
			Keywords: []string{"improve", "get better", "do better", "boost", "raise my", "increase my"},
			Render:   renderImprovement,
		},
		{
			Intent:   IntentAttendance,
			Keywords: []string{"attendance", "absent", "absence", "missed class", "miss class", "skipping class"},
			Render:   renderAttendance,
		},
		{
			Intent:   IntentPerformance,
			Keywords: []string{"score", "performance", "grade", "result", "how am i doing"},
			Render:   renderPerformance,
		},
		{
			Intent:   IntentWhatToStudy,
			Keywords: []string{"what should i study", "what to study", "study next", "recommend", "suggest", "what should", "next", "plan"},
			Render:   renderWhatToStudy,
		},
		{
			Intent:   IntentStudyHelp,
			Keywords: []string{"study", "learn", "practice", "understand", "topic", "help", "explain"},
			Render:   renderStudyHelp,
		},
		{
			Intent:   IntentMotivation,
			Keywords: []string{"motivat", "encourage", "discouraged", "difficult", "hard", "give up"},
			Render:   renderMotivation,
		},
	}
}

// DefaultDenylist holds diagnostic vocabulary that must never reach a student.
func DefaultDenylist() []string {
	return []string{
		"diagnos", "disorder", "depress", "anxiety", "adhd", "dyslexi", "autis",
		"medication", "prescri", "therap", "psychiatr", "mental illness", "clinical", "symptom",
	}
}

// Responder routes a message through ordered matchers. It holds no per-call state.
type Responder struct {
	matchers []Matcher
	denylist []string
}

func NewResponder(matchers []Matcher, denylist []string) *Responder {
	lowered := make([]string, len(denylist))
	for i, term := range denylist {
		lowered[i] = strings.ToLower(term)
	}
	return &Responder{matchers: matchers, denylist: lowered}
}

func NewDefaultResponder() *Responder {
	return NewResponder(DefaultMatchers(), DefaultDenylist())
}

// Match returns the first matcher triggered by message.
func (r *Responder) Match(message string) (Matcher, bool) {
	lowered := strings.ToLower(message)
	for _, m := range r.matchers {
		if m.Matches(lowered) {
			return m, true
		}
	}
	return Matcher{}, false
}

func (r *Responder) Respond(message string, c *Context) Reply {
	m, ok := r.Match(message)
	if !ok {
		return Reply{Response: FallbackReply, Intent: IntentGeneral}
	}

	rendered := m.Render(c)
	if r.denied(rendered) {
		return Reply{Response: FallbackReply, Intent: IntentGeneral, Guarded: true}
	}
	return Reply{Response: rendered, Intent: m.Intent, ContextUsed: c != nil}
}

func (r *Responder) denied(text string) bool {
	lowered := strings.ToLower(text)
	for _, term := range r.denylist {
		if strings.Contains(lowered, term) {
			return true
		}
	}
	return false
}
