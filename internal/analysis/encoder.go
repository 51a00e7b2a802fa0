package analysis

import (
	"math"
	"strings"
)

// Encode turns raw inputs into a FeatureVector. Out-of-range scores are clamped,
// unseen subjects take the reserved "other" index.
func Encode(vocab *Vocabulary, subject string, quizScore, attendance float64) (FeatureVector, error) {
	if strings.TrimSpace(subject) == "" {
		return FeatureVector{}, &InvalidInputError{Field: "subject", Reason: "must not be empty"}
	}
	if !isNumber(quizScore) {
		return FeatureVector{}, &InvalidInputError{Field: "quiz_score", Reason: "must be a finite number"}
	}
	if !isNumber(attendance) {
		return FeatureVector{}, &InvalidInputError{Field: "attendance", Reason: "must be a finite number"}
	}

	idx, known := vocab.Lookup(subject)
	return FeatureVector{
		QuizScore:      Clamp(quizScore),
		Attendance:     Clamp(attendance),
		SubjectEncoded: idx,
		KnownSubject:   known,
	}, nil
}

// Clamp limits a score to [MinScore, MaxScore].
func Clamp(v float64) float64 {
	return math.Max(MinScore, math.Min(MaxScore, v))
}

func isNumber(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
