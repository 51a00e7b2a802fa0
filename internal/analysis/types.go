package analysis

import (
	"fmt"
	"strings"
)

// PerformanceLevel is ordered from worst to best.
type PerformanceLevel int

const (
	Poor PerformanceLevel = iota
	BelowAverage
	Average
	Good
	Excellent
)

var levelNames = [...]string{
	Poor:         "Poor",
	BelowAverage: "Below Average",
	Average:      "Average",
	Good:         "Good",
	Excellent:    "Excellent",
}

// Levels lists every level, worst first.
func Levels() []PerformanceLevel {
	return []PerformanceLevel{Poor, BelowAverage, Average, Good, Excellent}
}

func (l PerformanceLevel) String() string {
	if l < Poor || l > Excellent {
		return fmt.Sprintf("PerformanceLevel(%d)", int(l))
	}
	return levelNames[l]
}

func (l PerformanceLevel) Valid() bool {
	return l >= Poor && l <= Excellent
}

func (l PerformanceLevel) MarshalText() ([]byte, error) {
	if !l.Valid() {
		return nil, fmt.Errorf("invalid performance level %d", int(l))
	}
	return []byte(l.String()), nil
}

func (l *PerformanceLevel) UnmarshalText(b []byte) error {
	parsed, err := ParseLevel(string(b))
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}

// ParseLevel accepts "Below Average" as well as "BelowAverage", case-insensitively.
func ParseLevel(s string) (PerformanceLevel, error) {
	key := strings.ToLower(strings.Join(strings.Fields(s), ""))
	for _, l := range Levels() {
		if strings.ToLower(strings.ReplaceAll(l.String(), " ", "")) == key {
			return l, nil
		}
	}
	return Poor, &InvalidInputError{Field: "performance_level", Reason: fmt.Sprintf("unknown level %q", s)}
}

type GapType string

const (
	LowQuizScore  GapType = "Low Quiz Score"
	LowAttendance GapType = "Low Attendance"
)

type Severity string

const (
	SeverityHigh   Severity = "High"
	SeverityMedium Severity = "Medium"
)

func (s Severity) rank() int {
	if s == SeverityHigh {
		return 0
	}
	return 1
}

// LearningGap is a typed weakness found in a single analysis.
type LearningGap struct {
	Type        GapType  `json:"type"`
	Severity    Severity `json:"severity"`
	Description string   `json:"description"`
}

// Feature names as reported in FeatureImportance.
const (
	FeatureQuizScore  = "quiz_score"
	FeatureAttendance = "attendance"
	FeatureSubject    = "subject_encoded"
)

// FeatureImportance maps feature name to a normalized, non-negative weight.
type FeatureImportance map[string]float64

// FeatureVector is the classifier input. Scores are already clamped to [0,100].
type FeatureVector struct {
	QuizScore      float64 `json:"quiz_score"`
	Attendance     float64 `json:"attendance"`
	SubjectEncoded int     `json:"subject_encoded"`
	// KnownSubject is false when the subject fell back to the reserved index.
	KnownSubject bool `json:"-"`
}

// Prediction is what a Classifier reports for one vector.
type Prediction struct {
	Level             PerformanceLevel  `json:"performance_level"`
	Confidence        float64           `json:"prediction_confidence"`
	FeatureImportance FeatureImportance `json:"feature_importance"`
	CompositeScore    float64           `json:"-"`
}
