package models

// Payslip is one employee pay period, downloadable as PDF.
type Payslip struct {
	ID           int64   `json:"id"`
	EmployeeName string  `json:"employeeName"`
	EmployeeID   int64   `json:"employeeId"`
	PeriodMonth  string  `json:"periodMonth"` // "2026-08"
	Gross        float64 `json:"gross"`
	Deductions   float64 `json:"deductions"`
	Net          float64 `json:"net"`
	Currency     string  `json:"currency"`
	Status       string  `json:"status"`
}

type PayslipPayload struct {
	EmployeeName string  `json:"employeeName" binding:"required"`
	EmployeeID   int64   `json:"employeeId" binding:"required"`
	PeriodMonth  string  `json:"periodMonth" binding:"required"`
	Gross        float64 `json:"gross"`
	Deductions   float64 `json:"deductions"`
	Currency     string  `json:"currency"`
	Status       string  `json:"status"`
}
