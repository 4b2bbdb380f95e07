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

type leaveRow struct {
	models.LeaveBalance
	Remaining   float64 `json:"remaining"`
	StatusBadge string  `json:"statusBadge"`
}

func presentLeave(b models.LeaveBalance) leaveRow {
	// low balance shows amber, exhausted shows red
	badge := listview.BadgeGreen
	switch remaining := b.Remaining(); {
	case remaining <= 0:
		badge = listview.BadgeRed
	case remaining <= 3:
		badge = listview.BadgeAmber
	}
	return leaveRow{LeaveBalance: b, Remaining: b.Remaining(), StatusBadge: badge}
}

// GET /api/leave-balances?q=&leaveType=&financialYear=&employeeId=&page=&limit=
func GetLeaveBalances(c *gin.Context) {
	params := query.Parse(c.Request.URL.Query(), "leaveType", "financialYear", "employeeId")

	repo := repositories.LeaveRepository{}
	balances, total, err := repo.List(params)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	rows := make([]leaveRow, 0, len(balances))
	for _, b := range balances {
		rows = append(rows, presentLeave(b))
	}
	c.JSON(http.StatusOK, ListResponse(rows, params.Meta(total)))
}

func GetLeaveBalanceByID(c *gin.Context) {
	id, ok := PathID(c)
	if !ok {
		return
	}
	balance, err := repositories.LeaveRepository{}.GetByID(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, presentLeave(balance))
}

// POST /api/leave-balances/adjust
func AdjustLeaveBalance(c *gin.Context) {
	var adj models.LeaveAdjustment
	if !BindJSONOrError(c, &adj) {
		return
	}
	identity, ok := MustIdentity(c)
	if !ok {
		return
	}

	svc := services.LeaveService{
		Repo:      repositories.LeaveRepository{},
		RequestID: middleware.GetRequestID(c),
	}
	if err := svc.Adjust(adj, identity); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"balanceId": adj.BalanceID, "adjusted": adj.Adjustment})
}

type yearRequest struct {
	FinancialYear string `json:"financialYear" binding:"required"`
}

// POST /api/leave-balances/initialize
func InitializeLeaveBalances(c *gin.Context) {
	var req yearRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	if _, ok := MustIdentity(c); !ok {
		return
	}

	svc := services.LeaveService{
		Repo:      repositories.LeaveRepository{},
		RequestID: middleware.GetRequestID(c),
	}
	created, err := svc.InitializeYear(req.FinancialYear)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"financialYear": req.FinancialYear, "created": created})
}

// POST /api/leave-balances/carry-forward
func CarryForwardLeaveBalances(c *gin.Context) {
	var req yearRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	if _, ok := MustIdentity(c); !ok {
		return
	}

	svc := services.LeaveService{
		Repo:      repositories.LeaveRepository{},
		RequestID: middleware.GetRequestID(c),
	}
	carried, err := svc.CarryForward(req.FinancialYear)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"from": req.FinancialYear, "carried": carried})
}

func DeleteLeaveBalance(c *gin.Context) {
	id, ok := PathID(c)
	if !ok {
		return
	}
	if err := (repositories.LeaveRepository{}).Delete(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": id})
}
