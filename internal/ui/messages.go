// Package ui is the Bubble Tea front end for sentiscope.
package ui

import "github.com/abelbrown/sentiscope/internal/dataset"

// AnalysisLoaded is sent when an analysis request resolves. RequestID ties
// the result to the request that produced it; results for any request other
// than the latest are dropped.
type AnalysisLoaded struct {
	RequestID string
	Source    string
	Tables    dataset.Tables
	Err       error
}
