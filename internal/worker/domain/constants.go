package domain

// Outcomes of handling one delivery, used as the metrics label
const (
	OutcomeRecorded  = "recorded"
	OutcomeDuplicate = "duplicate"
	OutcomeInvalid   = "invalid"
	OutcomeFailed    = "failed"
)
