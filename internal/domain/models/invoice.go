package models

// Invoice is a customer invoice row.
type Invoice struct {
	ID            int64   `json:"id"`
	InvoiceNumber string  `json:"invoiceNumber"`
	CustomerName  string  `json:"customerName"`
	CustomerID    int64   `json:"customerId,omitempty"`
	IssueDate     string  `json:"issueDate"`
	DueDate       string  `json:"dueDate"`
	TotalAmount   float64 `json:"totalAmount"`
	PaidAmount    float64 `json:"paidAmount"`
	Currency      string  `json:"currency"`
	Status        string  `json:"status"`
}

type InvoicePayload struct {
	InvoiceNumber string  `json:"invoiceNumber" binding:"required"`
	CustomerName  string  `json:"customerName" binding:"required"`
	CustomerID    int64   `json:"customerId"`
	IssueDate     string  `json:"issueDate"`
	DueDate       string  `json:"dueDate"`
	TotalAmount   float64 `json:"totalAmount"`
	PaidAmount    float64 `json:"paidAmount"`
	Currency      string  `json:"currency"`
	Status        string  `json:"status"`
}

// InvoiceSummary backs the totals cards above the invoice table.
type InvoiceSummary struct {
	Count       int64   `json:"count"`
	TotalAmount float64 `json:"totalAmount"`
	PaidAmount  float64 `json:"paidAmount"`
	DueAmount   float64 `json:"dueAmount"`
}
