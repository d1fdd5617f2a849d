package dto

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}

// UploadResponse returns both salary computations: the positional facts and
// the code-table totals, with the audit trail of every matched line.
type UploadResponse struct {
	SessionID string        `json:"session_id"`
	Facts     PayslipFacts  `json:"facts"`
	Totals    ConceptTotals `json:"totals"`
	Detected  []ConceptLine `json:"detected"`
}

type SimulateResponse struct {
	SessionID  string           `json:"session_id"`
	Simulation SimulationResult `json:"simulation"`
}

type ReasonsResponse struct {
	Reasons []string `json:"reasons"`
}
