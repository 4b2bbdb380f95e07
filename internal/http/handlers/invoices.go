package handlers

import (
	"net/http"
	"time"

	"staffdesk/internal/domain"
	"staffdesk/internal/domain/models"
	"staffdesk/internal/listview"
	"staffdesk/internal/query"
	"staffdesk/internal/repositories"
	"staffdesk/internal/utils"

	"github.com/gin-gonic/gin"
)

type invoiceRow struct {
	models.Invoice
	StatusBadge    string `json:"statusBadge"`
	TotalDisplay   string `json:"totalDisplay"`
	PaidDisplay    string `json:"paidDisplay"`
	DueDateDisplay string `json:"dueDateDisplay"`
	PaymentStatus  string `json:"paymentStatus"`
	Overdue        bool   `json:"overdue"`
}

func presentInvoice(inv models.Invoice, now time.Time) invoiceRow {
	return invoiceRow{
		Invoice:        inv,
		StatusBadge:    listview.BadgeClass(inv.Status),
		TotalDisplay:   listview.FormatAmount(inv.TotalAmount, inv.Currency),
		PaidDisplay:    listview.FormatAmount(inv.PaidAmount, inv.Currency),
		DueDateDisplay: listview.FormatDate(inv.DueDate),
		PaymentStatus:  listview.PaymentStatusText(inv.PaidAmount, inv.TotalAmount),
		Overdue:        listview.Overdue(inv.DueDate, inv.Status, now),
	}
}

// GET /api/invoices?q=&status=&customerId=&page=&limit=
func GetInvoices(c *gin.Context) {
	params := query.Parse(c.Request.URL.Query(), "status", "customerId")

	repo := repositories.InvoiceRepository{}
	invoices, total, err := repo.List(params)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	now := time.Now()
	rows := make([]invoiceRow, 0, len(invoices))
	for _, inv := range invoices {
		rows = append(rows, presentInvoice(inv, now))
	}
	c.JSON(http.StatusOK, ListResponse(rows, params.Meta(total)))
}

// GET /api/invoices/summary returns monetary sums for the cards above the
// table, respecting the same filters as the list.
func GetInvoiceSummary(c *gin.Context) {
	params := query.Parse(c.Request.URL.Query(), "status", "customerId")

	summary, err := repositories.InvoiceRepository{}.Summary(params)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

func GetInvoiceByID(c *gin.Context) {
	id, ok := PathID(c)
	if !ok {
		return
	}
	invoice, err := repositories.InvoiceRepository{}.GetByID(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, presentInvoice(invoice, time.Now()))
}

func CreateInvoice(c *gin.Context) {
	var payload models.InvoicePayload
	if !BindJSONOrError(c, &payload) {
		return
	}
	if payload.Status == "" {
		payload.Status = "pending"
	}
	for field, value := range map[string]string{"issueDate": payload.IssueDate, "dueDate": payload.DueDate} {
		if value == "" {
			continue
		}
		if _, err := utils.ParseDate(value); err != nil {
			RespondDomainError(c, domain.ValidationError{Field: field, Msg: "want YYYY-MM-DD"})
			return
		}
	}
	id, err := repositories.InvoiceRepository{}.Create(payload)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

func UpdateInvoice(c *gin.Context) {
	id, ok := PathID(c)
	if !ok {
		return
	}
	var payload models.InvoicePayload
	if !BindJSONOrError(c, &payload) {
		return
	}
	if err := (repositories.InvoiceRepository{}).Update(id, payload); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id})
}

func DeleteInvoice(c *gin.Context) {
	id, ok := PathID(c)
	if !ok {
		return
	}
	if err := (repositories.InvoiceRepository{}).Delete(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": id})
}
