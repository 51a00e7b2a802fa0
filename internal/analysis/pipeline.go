package analysis

// Result is the output of one encode → classify → gaps pass.
type Result struct {
	Vector     FeatureVector
	Prediction Prediction
	Gaps       []LearningGap
}

// Run executes the analysis pipeline against the process-wide tables.
func Run(t *Tables, c Classifier, subject string, quizScore, attendance float64) (Result, error) {
	v, err := Encode(t.Vocabulary, subject, quizScore, attendance)
	if err != nil {
		return Result{}, err
	}
	return Result{
		Vector:     v,
		Prediction: c.Classify(v),
		Gaps:       IdentifyGaps(v.QuizScore, v.Attendance),
	}, nil
}
