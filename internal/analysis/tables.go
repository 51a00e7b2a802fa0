package analysis

import (
	"sort"
)

// Bucket lower bounds of the composite score. Each bucket is closed on its lower bound.
const (
	ExcellentFloor    = 80.0
	GoodFloor         = 70.0
	AverageFloor      = 60.0
	BelowAverageFloor = 50.0
)

// Gap thresholds. A gap fires strictly below the threshold.
const (
	QuizGapThreshold           = 60.0
	QuizGapHighThreshold       = 40.0
	AttendanceGapThreshold     = 75.0
	AttendanceGapHighThreshold = 50.0
)

const (
	MinScore = 0.0
	MaxScore = 100.0

	OtherSubject = "other"
)

// Weights are calibration parameters of the rule classifier.
type Weights struct {
	QuizScore  float64
	Attendance float64
	// Subject only contributes to reported importance; the rule table ignores it.
	Subject float64
	// ConfidenceScale controls how quickly confidence saturates away from a boundary.
	ConfidenceScale float64
}

func DefaultWeights() Weights {
	return Weights{
		QuizScore:       0.6,
		Attendance:      0.4,
		Subject:         0.05,
		ConfidenceScale: 2.5,
	}
}

// Vocabulary is a fitted subject encoder. It is immutable after construction.
type Vocabulary struct {
	subjects []string
	index    map[string]int
}

// NewVocabulary sorts and de-duplicates the subjects, assigning indices 0..n-1.
// Empty labels are dropped.
func NewVocabulary(subjects []string) *Vocabulary {
	seen := make(map[string]struct{}, len(subjects))
	uniq := make([]string, 0, len(subjects))
	for _, s := range subjects {
		if s == "" {
			continue
		}
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		uniq = append(uniq, s)
	}
	sort.Strings(uniq)

	index := make(map[string]int, len(uniq))
	for i, s := range uniq {
		index[s] = i
	}
	return &Vocabulary{subjects: uniq, index: index}
}

// Lookup is case-sensitive and exact-match.
func (v *Vocabulary) Lookup(subject string) (int, bool) {
	i, ok := v.index[subject]
	if !ok {
		return v.OtherIndex(), false
	}
	return i, true
}

// OtherIndex is reserved for subjects never seen in the corpus.
func (v *Vocabulary) OtherIndex() int {
	return len(v.subjects)
}

func (v *Vocabulary) Subjects() []string {
	out := make([]string, len(v.subjects))
	copy(out, v.subjects)
	return out
}

func (v *Vocabulary) Len() int {
	return len(v.subjects)
}

// Tables bundles the process-wide, read-only state every core call needs.
type Tables struct {
	Vocabulary *Vocabulary
	Weights    Weights
}

func NewTables(vocab *Vocabulary, w Weights) *Tables {
	if vocab == nil {
		vocab = NewVocabulary(nil)
	}
	if w.ConfidenceScale <= 0 {
		w.ConfidenceScale = DefaultWeights().ConfidenceScale
	}
	return &Tables{Vocabulary: vocab, Weights: w}
}
