package handlers

import (
	"net/http"

	"staffdesk/internal/domain/models"
	"staffdesk/internal/http/middleware"
	"staffdesk/internal/listview"
	"staffdesk/internal/query"
	"staffdesk/internal/repositories"
	"staffdesk/internal/services"

	"github.com/gin-gonic/gin"
)

type payslipRow struct {
	models.Payslip
	StatusBadge  string `json:"statusBadge"`
	GrossDisplay string `json:"grossDisplay"`
	NetDisplay   string `json:"netDisplay"`
}

func presentPayslip(ps models.Payslip) payslipRow {
	return payslipRow{
		Payslip:      ps,
		StatusBadge:  listview.BadgeClass(ps.Status),
		GrossDisplay: listview.FormatAmount(ps.Gross, ps.Currency),
		NetDisplay:   listview.FormatAmount(ps.Net, ps.Currency),
	}
}

// GET /api/payslips?q=&periodMonth=&status=&employeeId=&page=&limit=
func GetPayslips(c *gin.Context) {
	params := query.Parse(c.Request.URL.Query(), "periodMonth", "status", "employeeId")

	repo := repositories.PayslipRepository{}
	payslips, total, err := repo.List(params)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	rows := make([]payslipRow, 0, len(payslips))
	for _, ps := range payslips {
		rows = append(rows, presentPayslip(ps))
	}
	c.JSON(http.StatusOK, ListResponse(rows, params.Meta(total)))
}

func GetPayslipByID(c *gin.Context) {
	id, ok := PathID(c)
	if !ok {
		return
	}
	payslip, err := repositories.PayslipRepository{}.GetByID(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, presentPayslip(payslip))
}

// GET /api/payslips/:id/pdf
func GetPayslipPDF(c *gin.Context) {
	id, ok := PathID(c)
	if !ok {
		return
	}

	svc := services.PayslipService{
		Repo:      repositories.PayslipRepository{},
		RequestID: middleware.GetRequestID(c),
	}
	pdf, filename, err := svc.GeneratePDF(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}

func CreatePayslip(c *gin.Context) {
	var payload models.PayslipPayload
	if !BindJSONOrError(c, &payload) {
		return
	}
	id, err := repositories.PayslipRepository{}.Create(payload)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

func UpdatePayslip(c *gin.Context) {
	id, ok := PathID(c)
	if !ok {
		return
	}
	var payload models.PayslipPayload
	if !BindJSONOrError(c, &payload) {
		return
	}
	if err := (repositories.PayslipRepository{}).Update(id, payload); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id})
}

func DeletePayslip(c *gin.Context) {
	id, ok := PathID(c)
	if !ok {
		return
	}
	if err := (repositories.PayslipRepository{}).Delete(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": id})
}
