package analysis

import (
	"math"
)

const (
	minConfidence = 0.5
	maxConfidence = 0.99
)

var bucketBoundaries = []float64{BelowAverageFloor, AverageFloor, GoodFloor, ExcellentFloor}

// Classifier maps a feature vector to a performance level. Implementations must
// return one of the five levels, a confidence in [0,1] and a non-negative
// importance mapping that sums to 1.
type Classifier interface {
	Classify(v FeatureVector) Prediction
}

// RuleClassifier buckets a weighted composite of quiz score and attendance.
type RuleClassifier struct {
	quizWeight       float64
	attendanceWeight float64
	scale            float64
	importance       FeatureImportance
}

func NewRuleClassifier(w Weights) *RuleClassifier {
	qw, aw := math.Max(0, w.QuizScore), math.Max(0, w.Attendance)
	if qw+aw == 0 {
		def := DefaultWeights()
		qw, aw = def.QuizScore, def.Attendance
	}
	scale := w.ConfidenceScale
	if scale <= 0 {
		scale = DefaultWeights().ConfidenceScale
	}
	return &RuleClassifier{
		quizWeight:       qw,
		attendanceWeight: aw,
		scale:            scale,
		importance:       normalizeImportance(qw, aw, math.Max(0, w.Subject)),
	}
}

func (c *RuleClassifier) Classify(v FeatureVector) Prediction {
	s := c.Composite(v.QuizScore, v.Attendance)
	return Prediction{
		Level:             LevelForScore(s),
		Confidence:        c.confidence(s),
		FeatureImportance: c.Importance(),
		CompositeScore:    s,
	}
}

// Composite returns the weighted score, rounded to 1e-6.
func (c *RuleClassifier) Composite(quizScore, attendance float64) float64 {
	s := (c.quizWeight*quizScore + c.attendanceWeight*attendance) / (c.quizWeight + c.attendanceWeight)
	return math.Round(s*1e6) / 1e6
}

// Importance returns a copy so callers cannot mutate the shared table.
func (c *RuleClassifier) Importance() FeatureImportance {
	out := make(FeatureImportance, len(c.importance))
	for k, v := range c.importance {
		out[k] = v
	}
	return out
}

func (c *RuleClassifier) confidence(s float64) float64 {
	d := math.Inf(1)
	for _, b := range bucketBoundaries {
		d = math.Min(d, math.Abs(s-b))
	}
	conf := minConfidence + (maxConfidence-minConfidence)*(1-math.Exp(-d/c.scale))
	return math.Max(minConfidence, math.Min(maxConfidence, conf))
}

// LevelForScore applies the bucket table to a composite score.
func LevelForScore(s float64) PerformanceLevel {
	switch {
	case s >= ExcellentFloor:
		return Excellent
	case s >= GoodFloor:
		return Good
	case s >= AverageFloor:
		return Average
	case s >= BelowAverageFloor:
		return BelowAverage
	default:
		return Poor
	}
}

func normalizeImportance(quiz, attendance, subject float64) FeatureImportance {
	total := quiz + attendance + subject
	if total == 0 {
		third := 1.0 / 3
		return FeatureImportance{FeatureQuizScore: third, FeatureAttendance: third, FeatureSubject: third}
	}
	return FeatureImportance{
		FeatureQuizScore:  quiz / total,
		FeatureAttendance: attendance / total,
		FeatureSubject:    subject / total,
	}
}

// LabelledRow is a corpus row with an optional known level.
type LabelledRow struct {
	Subject    string
	QuizScore  float64
	Attendance float64
	Level      *PerformanceLevel
}

// Evaluation summarizes how often a classifier agrees with labelled rows.
type Evaluation struct {
	Rows      int     `json:"rows"`
	Labelled  int     `json:"labelled"`
	Agreed    int     `json:"agreed"`
	Skipped   int     `json:"skipped"`
	Agreement float64 `json:"agreement"`
}

func Evaluate(c Classifier, vocab *Vocabulary, rows []LabelledRow) Evaluation {
	ev := Evaluation{Rows: len(rows)}
	for _, r := range rows {
		if r.Level == nil {
			continue
		}
		v, err := Encode(vocab, r.Subject, r.QuizScore, r.Attendance)
		if err != nil {
			ev.Skipped++
			continue
		}
		ev.Labelled++
		if c.Classify(v).Level == *r.Level {
			ev.Agreed++
		}
	}
	if ev.Labelled > 0 {
		ev.Agreement = float64(ev.Agreed) / float64(ev.Labelled)
	}
	return ev
}
