package handlers

import (
	"net/http"

	"staffdesk/internal/domain"
	"staffdesk/internal/domain/models"
	"staffdesk/internal/http/middleware"
	"staffdesk/internal/listview"
	"staffdesk/internal/query"
	"staffdesk/internal/repositories"
	"staffdesk/internal/services"

	"github.com/gin-gonic/gin"
)

type paymentRow struct {
	models.ContractorPayment
	StatusBadge   string   `json:"statusBadge"`
	AmountDisplay string   `json:"amountDisplay"`
	PeriodDisplay string   `json:"periodDisplay"`
	Actions       []string `json:"actions"`
}

func presentPayment(cp models.ContractorPayment) paymentRow {
	return paymentRow{
		ContractorPayment: cp,
		StatusBadge:       listview.BadgeClass(cp.Status),
		AmountDisplay:     listview.FormatAmount(cp.Amount, cp.Currency),
		PeriodDisplay:     listview.FormatDate(cp.PeriodStart) + " – " + listview.FormatDate(cp.PeriodEnd),
		Actions:           domain.PaymentActions(cp.Status),
	}
}

// GET /api/contractor-payments?q=&status=&contractorId=&page=&limit=
func GetContractorPayments(c *gin.Context) {
	params := query.Parse(c.Request.URL.Query(), "status", "contractorId")

	repo := repositories.PaymentRepository{}
	payments, total, err := repo.List(params)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	rows := make([]paymentRow, 0, len(payments))
	for _, cp := range payments {
		rows = append(rows, presentPayment(cp))
	}
	c.JSON(http.StatusOK, ListResponse(rows, params.Meta(total)))
}

func GetContractorPaymentByID(c *gin.Context) {
	id, ok := PathID(c)
	if !ok {
		return
	}
	payment, err := repositories.PaymentRepository{}.GetByID(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, presentPayment(payment))
}

func CreateContractorPayment(c *gin.Context) {
	var payload models.ContractorPaymentPayload
	if !BindJSONOrError(c, &payload) {
		return
	}
	if payload.Status != "" && !domain.ValidPaymentStatus(payload.Status) {
		RespondDomainError(c, domain.ValidationError{Field: "status", Msg: "unknown status " + payload.Status})
		return
	}
	id, err := repositories.PaymentRepository{}.Create(payload)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

func UpdateContractorPayment(c *gin.Context) {
	id, ok := PathID(c)
	if !ok {
		return
	}
	var payload models.ContractorPaymentPayload
	if !BindJSONOrError(c, &payload) {
		return
	}
	if err := (repositories.PaymentRepository{}).Update(id, payload); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id})
}

func DeleteContractorPayment(c *gin.Context) {
	id, ok := PathID(c)
	if !ok {
		return
	}
	if err := (repositories.PaymentRepository{}).Delete(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": id})
}

// PUT /api/contractor-payments/:id/approve
func ApproveContractorPayment(c *gin.Context) {
	transitionPayment(c, domain.ActionApprove)
}

// PUT /api/contractor-payments/:id/mark-paid
func MarkContractorPaymentPaid(c *gin.Context) {
	transitionPayment(c, domain.ActionMarkPaid)
}

// PUT /api/contractor-payments/:id/cancel
func CancelContractorPayment(c *gin.Context) {
	transitionPayment(c, domain.ActionCancel)
}

func transitionPayment(c *gin.Context, action string) {
	id, ok := PathID(c)
	if !ok {
		return
	}
	identity, ok := MustIdentity(c)
	if !ok {
		return
	}

	svc := services.PaymentService{
		Repo:      repositories.PaymentRepository{},
		RequestID: middleware.GetRequestID(c),
	}
	payment, err := svc.Transition(id, action, identity)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, presentPayment(payment))
}
