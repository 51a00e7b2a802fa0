package model

import (
	"encoding/json"
	"learning_assistant_backend/internal/analysis"
	"time"

	"gorm.io/datatypes"
)

type RecordSource string

const (
	SourceDataset  RecordSource = "dataset"
	SourceAnalysis RecordSource = "analysis"
)

// PerformanceRecord is one observed (subject, quiz, attendance) row for a student,
// either imported from the training corpus or produced by an analysis.
// swagger:model PerformanceRecord
type PerformanceRecord struct {
	UUIDBase
	StudentID         string         `gorm:"size:64;index:idx_student_recorded;not null" json:"student_id"`
	Subject           string         `gorm:"size:100;not null" json:"subject"`
	QuizScore         float64        `gorm:"not null" json:"quiz_score"`
	Attendance        float64        `gorm:"not null" json:"attendance"`
	PerformanceLevel  string         `gorm:"size:20" json:"performance_level,omitempty"`
	Confidence        float64        `json:"prediction_confidence,omitempty"`
	LearningGaps      datatypes.JSON `json:"learning_gaps,omitempty"`
	FeatureImportance datatypes.JSON `json:"feature_importance,omitempty"`
	Source            RecordSource   `gorm:"type:varchar(20);default:'analysis'" json:"source"`
	RecordedAt        time.Time      `gorm:"index:idx_student_recorded" json:"recorded_at"`
}

func (PerformanceRecord) TableName() string {
	return "performance_records"
}

// Gaps decodes the stored gap list. Malformed or empty columns yield nil.
func (r *PerformanceRecord) Gaps() []analysis.LearningGap {
	if len(r.LearningGaps) == 0 {
		return nil
	}
	var gaps []analysis.LearningGap
	if err := json.Unmarshal(r.LearningGaps, &gaps); err != nil {
		return nil
	}
	return gaps
}

// Level parses the stored level; ok is false for dataset rows without one.
func (r *PerformanceRecord) Level() (analysis.PerformanceLevel, bool) {
	if r.PerformanceLevel == "" {
		return analysis.Poor, false
	}
	l, err := analysis.ParseLevel(r.PerformanceLevel)
	if err != nil {
		return analysis.Poor, false
	}
	return l, true
}

func NewAnalysisRecord(studentID, subject string, res analysis.Result, at time.Time) (*PerformanceRecord, error) {
	gaps, err := json.Marshal(res.Gaps)
	if err != nil {
		return nil, err
	}
	importance, err := json.Marshal(res.Prediction.FeatureImportance)
	if err != nil {
		return nil, err
	}
	return &PerformanceRecord{
		StudentID:         studentID,
		Subject:           subject,
		QuizScore:         res.Vector.QuizScore,
		Attendance:        res.Vector.Attendance,
		PerformanceLevel:  res.Prediction.Level.String(),
		Confidence:        res.Prediction.Confidence,
		LearningGaps:      datatypes.JSON(gaps),
		FeatureImportance: datatypes.JSON(importance),
		Source:            SourceAnalysis,
		RecordedAt:        at,
	}, nil
}
