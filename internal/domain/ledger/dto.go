package ledger

// LedgerResponse is the read-only projection of a period ledger.
type LedgerResponse struct {
	EmployeeID           string `json:"employee_id"`
	Month                int    `json:"month"`
	Year                 int    `json:"year"`
	OpeningBalance       string `json:"opening_balance"`
	AutoCredit           string `json:"auto_credit"`
	TakenLeaves          string `json:"taken_leaves"`
	LateArrivalCount     int    `json:"late_arrival_count"`
	ShortLeaveCount      int    `json:"short_leave_count"`
	LateDeductions       string `json:"late_deductions"`
	ShortLeaveDeductions string `json:"short_leave_deductions"`
	ClosingBalance       string `json:"closing_balance"`
}

// ToResponse maps a ledger row to its projection. Day quantities are
// rendered as decimal strings so callers never see float drift.
func ToResponse(l PeriodLedger) LedgerResponse {
	return LedgerResponse{
		EmployeeID:           l.EmployeeID,
		Month:                l.Month,
		Year:                 l.Year,
		OpeningBalance:       l.OpeningBalance.String(),
		AutoCredit:           l.AutoCredit.String(),
		TakenLeaves:          l.TakenLeaves.String(),
		LateArrivalCount:     l.LateArrivalCount,
		ShortLeaveCount:      l.ShortLeaveCount,
		LateDeductions:       l.LateDeductions.String(),
		ShortLeaveDeductions: l.ShortLeaveDeductions.String(),
		ClosingBalance:       l.ClosingBalance.String(),
	}
}
