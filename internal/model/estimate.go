package model

// Band is the low/high display range around a point estimate.
type Band struct {
	Low  int64 `json:"low"`
	High int64 `json:"high"`
}

// RevenueEstimate is derived from RateAssumptions and never stored.
type RevenueEstimate struct {
	Assumptions RateAssumptions `json:"assumptions"`
	// TotalAmount is the unrounded product units x rate x occupancy x days.
	TotalAmount float64 `json:"total_amount"`
	// Rounded is TotalAmount rounded to the nearest whole baht.
	Rounded int64 `json:"rounded"`
	// Band is set only when a banded display was requested.
	Band *Band `json:"band,omitempty"`
}
