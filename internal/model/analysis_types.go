package model

import (
	"learning_assistant_backend/internal/analysis"
	"learning_assistant_backend/internal/chatbot"
	"learning_assistant_backend/internal/recommend"
)

// AnalyzeRequest 成绩分析请求
type AnalyzeRequest struct {
	StudentID  string   `json:"student_id" binding:"required"`
	Subject    string   `json:"subject" binding:"required"`
	QuizScore  *float64 `json:"quiz_score" binding:"required"`
	Attendance *float64 `json:"attendance" binding:"required"`
}

// AnalysisResponse 成绩分析结果
type AnalysisResponse struct {
	StudentID            string                     `json:"student_id"`
	Subject              string                     `json:"subject"`
	PerformanceLevel     analysis.PerformanceLevel  `json:"performance_level"`
	PredictionConfidence float64                    `json:"prediction_confidence"`
	LearningGaps         []analysis.LearningGap     `json:"learning_gaps"`
	FeatureImportance    analysis.FeatureImportance `json:"feature_importance"`
}

// RecommendationQuery carries the optional overrides of get_recommendations.
type RecommendationQuery struct {
	StudentID  string
	Subject    string
	QuizScore  *float64
	Attendance *float64
}

type RecommendationResponse struct {
	StudentID        string                     `json:"student_id"`
	Subject          string                     `json:"subject"`
	PerformanceLevel analysis.PerformanceLevel  `json:"performance_level"`
	Recommendations  []recommend.Recommendation `json:"recommendations"`
	StudyPlan        recommend.StudyPlan        `json:"study_plan"`
}

type ChatRequest struct {
	Message        string           `json:"message"`
	StudentID      string           `json:"student_id"`
	StudentContext *chatbot.Context `json:"student_context"`
}

type PerformanceHistoryResponse struct {
	StudentID          string              `json:"student_id"`
	PerformanceHistory []PerformanceRecord `json:"performance_history"`
}
