package analysis

import (
	"fmt"
	"sort"
	"strconv"
)

var gapTypeOrder = map[GapType]int{
	LowQuizScore:  0,
	LowAttendance: 1,
}

// IdentifyGaps applies the fixed quiz and attendance thresholds. Both rules are
// independent; the result is ordered High before Medium.
func IdentifyGaps(quizScore, attendance float64) []LearningGap {
	gaps := make([]LearningGap, 0, 2)

	if quizScore < QuizGapThreshold {
		severity := SeverityMedium
		if quizScore < QuizGapHighThreshold {
			severity = SeverityHigh
		}
		gaps = append(gaps, LearningGap{
			Type:        LowQuizScore,
			Severity:    severity,
			Description: fmt.Sprintf("Quiz score of %s%% indicates difficulty understanding core concepts", formatScore(quizScore)),
		})
	}

	if attendance < AttendanceGapThreshold {
		severity := SeverityMedium
		if attendance < AttendanceGapHighThreshold {
			severity = SeverityHigh
		}
		gaps = append(gaps, LearningGap{
			Type:        LowAttendance,
			Severity:    severity,
			Description: fmt.Sprintf("Attendance rate of %s%% may be affecting learning outcomes", formatScore(attendance)),
		})
	}

	SortGaps(gaps)
	return gaps
}

// SortGaps orders gaps High before Medium, then quiz before attendance.
func SortGaps(gaps []LearningGap) {
	sort.SliceStable(gaps, func(i, j int) bool {
		if gaps[i].Severity.rank() != gaps[j].Severity.rank() {
			return gaps[i].Severity.rank() < gaps[j].Severity.rank()
		}
		return gapTypeOrder[gaps[i].Type] < gapTypeOrder[gaps[j].Type]
	})
}

func formatScore(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
