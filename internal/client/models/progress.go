package models

// Rating is the interviewer's verdict returned when a session ends.
type Rating struct {
	Score        float64  `json:"score"`
	Strengths    []string `json:"strengths"`
	Weaknesses   []string `json:"weaknesses"`
	Improvements []string `json:"improvements"`
	Tips         []string `json:"tips"`
}

// ProgressPoint is one completed interview in the user's history.
type ProgressPoint struct {
	Date  string  `json:"date"`
	Score float64 `json:"score"`
	Topic string  `json:"topic"`
}

// ProgressSummary aggregates the user's interview history for the
// progress chart.
type ProgressSummary struct {
	TotalInterviews int             `json:"total_interviews"`
	AverageScore    float64         `json:"average_score"`
	History         []ProgressPoint `json:"sessions_history"`
}
