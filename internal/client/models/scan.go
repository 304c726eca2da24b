// Package models defines the client-side data structures exchanged with the
// CyberShield API and cached locally.
package models

// ScanResult is the classification returned by POST /predict. It is
// transient: each new scan replaces the previous result and nothing is
// persisted locally.
type ScanResult struct {
	URL         string  `json:"url"`
	Prediction  int     `json:"prediction"`
	Label       string  `json:"label"`
	RiskScore   float64 `json:"risk_score"`
	Threshold   float64 `json:"threshold"`
	Explanation string  `json:"explanation,omitempty"`
	Timestamp   string  `json:"timestamp"`
}

const (
	LabelPhishing   = "phishing"
	LabelLegitimate = "legitimate"
)

// HistoryRecord is one prior scan from GET /user/history.
type HistoryRecord struct {
	ID        string  `json:"_id"`
	URL       string  `json:"url"`
	Label     string  `json:"label"`
	RiskScore float64 `json:"risk_score"`
	Timestamp string  `json:"ts"`
}
