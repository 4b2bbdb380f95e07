package services

import (
	"fmt"
	"strings"

	"staffdesk/internal/domain"
	"staffdesk/internal/domain/models"
	"staffdesk/internal/repositories"
	"staffdesk/internal/utils"
)

// Default entitlement per leave type when a year is initialized.
var defaultEntitlements = map[string]float64{
	"annual": 20,
	"sick":   10,
	"casual": 5,
}

// CarryForwardCap limits how many unused days roll into the next year.
const CarryForwardCap = 10.0

// LeaveService owns balance adjustments and the per-year lifecycle
// (initialize, carry-forward).
type LeaveService struct {
	Repo      repositories.LeaveRepository
	RequestID string
}

// Adjust applies one manual correction. Reason is mandatory; exactly one
// balance mutation is issued on success.
func (s LeaveService) Adjust(adj models.LeaveAdjustment, actedBy string) error {
	if adj.BalanceID <= 0 {
		return domain.ValidationError{Field: "balanceId", Msg: "must be positive"}
	}
	if strings.TrimSpace(adj.Reason) == "" {
		return domain.ValidationError{Field: "reason", Msg: "reason is required"}
	}
	if adj.Adjustment == 0 {
		return domain.ValidationError{Field: "adjustment", Msg: "adjustment must be non-zero"}
	}
	if strings.TrimSpace(actedBy) == "" {
		return domain.ValidationError{Field: "actedBy", Msg: "acting user is required"}
	}

	if err := s.Repo.ApplyAdjustment(adj.BalanceID, adj.Adjustment, strings.TrimSpace(adj.Reason), actedBy); err != nil {
		return err
	}
	utils.LogEvent(s.RequestID, "leave", "adjust",
		fmt.Sprintf("balance_id=%d delta=%.2f by=%s", adj.BalanceID, adj.Adjustment, actedBy))
	return nil
}

// InitializeYear seeds balance rows for every active employee and leave
// type for the given financial year. Existing rows are left untouched and
// not counted, so re-running reports only what was actually created.
func (s LeaveService) InitializeYear(year string) (int, error) {
	if _, err := utils.ParseFinancialYear(year); err != nil {
		return 0, domain.ValidationError{Field: "financialYear", Msg: err.Error()}
	}

	employees, err := s.Repo.ActiveEmployees()
	if err != nil {
		return 0, err
	}

	created := 0
	for _, emp := range employees {
		for leaveType, entitled := range defaultEntitlements {
			b := models.LeaveBalance{
				EmployeeName:  emp.Name,
				EmployeeID:    emp.ID,
				LeaveType:     leaveType,
				FinancialYear: year,
				Entitled:      entitled,
			}
			inserted, err := s.Repo.Insert(b)
			if err != nil {
				return created, err
			}
			if inserted {
				created++
			}
		}
	}

	utils.LogEvent(s.RequestID, "leave", "initialize", fmt.Sprintf("year=%s rows=%d", year, created))
	return created, nil
}

// CarryForward rolls unused balance from one financial year into the next,
// capped per balance. Rows for the next year are created with the carried
// amount; entitlement is seeded from the defaults.
func (s LeaveService) CarryForward(fromYear string) (int, error) {
	nextYear, err := utils.NextFinancialYear(fromYear)
	if err != nil {
		return 0, domain.ValidationError{Field: "financialYear", Msg: err.Error()}
	}

	balances, err := s.Repo.ListByYear(fromYear)
	if err != nil {
		return 0, err
	}
	if len(balances) == 0 {
		return 0, domain.NotFoundError{Resource: "leave balances for " + fromYear}
	}

	carried := 0
	for _, b := range balances {
		remaining := b.Remaining()
		if remaining < 0 {
			remaining = 0
		}
		if remaining > CarryForwardCap {
			remaining = CarryForwardCap
		}

		next := models.LeaveBalance{
			EmployeeName:   b.EmployeeName,
			EmployeeID:     b.EmployeeID,
			LeaveType:      b.LeaveType,
			FinancialYear:  nextYear,
			Entitled:       defaultEntitlements[strings.ToLower(b.LeaveType)],
			CarriedForward: remaining,
		}
		inserted, err := s.Repo.Insert(next)
		if err != nil {
			return carried, err
		}
		if inserted {
			carried++
		}
	}

	utils.LogEvent(s.RequestID, "leave", "carry_forward",
		fmt.Sprintf("from=%s to=%s rows=%d", fromYear, nextYear, carried))
	return carried, nil
}
