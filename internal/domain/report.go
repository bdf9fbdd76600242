package domain

// Report is the narrative buyer memo generated for a scored quiz. When the
// LLM is unavailable a template-built report is used instead.
type Report struct {
	Headline        string   `json:"headline"`
	Summary         string   `json:"summary"`
	Recommendations []string `json:"recommendations"`
}
