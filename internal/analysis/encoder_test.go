package analysis

import (
	"encoding/json"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewVocabulary_SortedAndDeduplicated(t *testing.T) {
	v := NewVocabulary([]string{"Science", "Mathematics", "Science", "", "English"})

	assert.Equal(t, []string{"English", "Mathematics", "Science"}, v.Subjects())
	assert.Equal(t, 3, v.OtherIndex())

	i, ok := v.Lookup("Mathematics")
	assert.True(t, ok)
	assert.Equal(t, 1, i)
}

func TestVocabulary_LookupIsCaseSensitive(t *testing.T) {
	v := NewVocabulary([]string{"Mathematics"})

	i, ok := v.Lookup("mathematics")
	assert.False(t, ok)
	assert.Equal(t, v.OtherIndex(), i)
}

func TestEncode(t *testing.T) {
	vocab := NewVocabulary([]string{"English", "Mathematics"})

	tests := []struct {
		name       string
		subject    string
		quiz, att  float64
		want       FeatureVector
		wantErrFld string
	}{
		{
			name:    "in range",
			subject: "Mathematics", quiz: 72.5, att: 88,
			want: FeatureVector{QuizScore: 72.5, Attendance: 88, SubjectEncoded: 1, KnownSubject: true},
		},
		{
			name:    "clamped",
			subject: "English", quiz: -10, att: 140,
			want: FeatureVector{QuizScore: 0, Attendance: 100, SubjectEncoded: 0, KnownSubject: true},
		},
		{
			name:    "unknown subject",
			subject: "Astronomy", quiz: 50, att: 50,
			want: FeatureVector{QuizScore: 50, Attendance: 50, SubjectEncoded: 2, KnownSubject: false},
		},
		{name: "empty subject", subject: "  ", quiz: 50, att: 50, wantErrFld: "subject"},
		{name: "nan quiz", subject: "English", quiz: math.NaN(), att: 50, wantErrFld: "quiz_score"},
		{name: "inf attendance", subject: "English", quiz: 50, att: math.Inf(1), wantErrFld: "attendance"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Encode(vocab, tt.subject, tt.quiz, tt.att)
			if tt.wantErrFld != "" {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidInput))
				var inErr *InvalidInputError
				require.True(t, errors.As(err, &inErr))
				assert.Equal(t, tt.wantErrFld, inErr.Field)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPerformanceLevel_Text(t *testing.T) {
	b, err := json.Marshal(map[string]PerformanceLevel{"level": BelowAverage})
	require.NoError(t, err)
	assert.JSONEq(t, `{"level":"Below Average"}`, string(b))

	for _, in := range []string{"Below Average", "belowaverage", "BELOW  AVERAGE"} {
		l, err := ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, BelowAverage, l)
	}

	_, err = ParseLevel("Legendary")
	assert.ErrorIs(t, err, ErrInvalidInput)

	var decoded struct {
		Level PerformanceLevel `json:"level"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"level":"Excellent"}`), &decoded))
	assert.Equal(t, Excellent, decoded.Level)
}

func TestRun(t *testing.T) {
	tables := NewTables(NewVocabulary([]string{"Mathematics"}), DefaultWeights())
	c := NewRuleClassifier(tables.Weights)

	res, err := Run(tables, c, "Mathematics", 35, 40)
	require.NoError(t, err)
	assert.Equal(t, Poor, res.Prediction.Level)
	assert.Len(t, res.Gaps, 2)

	_, err = Run(tables, c, "", 35, 40)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
