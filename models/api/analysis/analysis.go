package analysisapimodels

type AnalysisResult struct {
	Approved      bool    `json:"approved"`
	DetectedHours float64 `json:"detected_hours"`
	Confidence    int     `json:"confidence"` // 0-100
	Reason        string  `json:"reason"`
}
