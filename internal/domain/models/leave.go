package models

// LeaveBalance tracks one employee's balance for a leave type within a
// financial year ("2025-26" style).
type LeaveBalance struct {
	ID             int64   `json:"id"`
	EmployeeName   string  `json:"employeeName"`
	EmployeeID     int64   `json:"employeeId"`
	LeaveType      string  `json:"leaveType"`
	FinancialYear  string  `json:"financialYear"`
	Entitled       float64 `json:"entitled"`
	Taken          float64 `json:"taken"`
	Adjusted       float64 `json:"adjusted"`
	CarriedForward float64 `json:"carriedForward"`
}

// Remaining is the balance still available to take.
func (b LeaveBalance) Remaining() float64 {
	return b.Entitled + b.Adjusted + b.CarriedForward - b.Taken
}

// LeaveAdjustment is the adjust-balance request. Reason is mandatory.
type LeaveAdjustment struct {
	BalanceID  int64   `json:"balanceId" binding:"required"`
	Adjustment float64 `json:"adjustment"`
	Reason     string  `json:"reason"`
}
