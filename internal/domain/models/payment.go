package models

// ContractorPayment is one payment cycle for an external contractor.
type ContractorPayment struct {
	ID             int64   `json:"id"`
	ContractorName string  `json:"contractorName"`
	ContractorID   int64   `json:"contractorId,omitempty"`
	PeriodStart    string  `json:"periodStart"`
	PeriodEnd      string  `json:"periodEnd"`
	Amount         float64 `json:"amount"`
	Currency       string  `json:"currency"`
	Status         string  `json:"status"`
	UpdatedBy      string  `json:"updatedBy,omitempty"`
}

type ContractorPaymentPayload struct {
	ContractorName string  `json:"contractorName" binding:"required"`
	ContractorID   int64   `json:"contractorId"`
	PeriodStart    string  `json:"periodStart"`
	PeriodEnd      string  `json:"periodEnd"`
	Amount         float64 `json:"amount"`
	Currency       string  `json:"currency"`
	Status         string  `json:"status"`
}
