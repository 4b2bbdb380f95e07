package services

import (
	"strings"

	"staffdesk/internal/domain"
	"staffdesk/internal/domain/models"
	"staffdesk/internal/repositories"
	"staffdesk/internal/utils"
)

// PaymentService drives the contractor-payment workflow. Transitions are
// guarded by the status state machine, so approve on a paid record fails
// with a conflict instead of silently rewriting history.
type PaymentService struct {
	Repo      repositories.PaymentRepository
	RequestID string
}

// Transition applies one workflow action (approve, mark-paid, cancel) on
// behalf of actedBy. Exactly one status update is issued per call.
func (s PaymentService) Transition(id int64, action, actedBy string) (models.ContractorPayment, error) {
	if id <= 0 {
		return models.ContractorPayment{}, domain.ValidationError{Field: "id", Msg: "must be positive"}
	}
	if strings.TrimSpace(actedBy) == "" {
		// No silent 'current-user' default: the caller identity comes from
		// the authenticated session or the request is refused.
		return models.ContractorPayment{}, domain.ValidationError{Field: "actedBy", Msg: "acting user is required"}
	}

	next, ok := domain.NextStatus(action)
	if !ok {
		return models.ContractorPayment{}, domain.ValidationError{Field: "action", Msg: "unknown action " + action}
	}

	payment, err := s.Repo.GetByID(id)
	if err != nil {
		return models.ContractorPayment{}, err
	}

	if !domain.CanTransition(payment.Status, action) {
		return models.ContractorPayment{}, domain.ConflictError{
			Resource: "contractor payment",
			Msg:      action + " not allowed from status " + payment.Status,
		}
	}

	if err := s.Repo.UpdateStatus(id, next, actedBy); err != nil {
		return models.ContractorPayment{}, err
	}

	utils.LogEvent(s.RequestID, "payment", action, "payment_id updated by "+actedBy)

	payment.Status = next
	payment.UpdatedBy = actedBy
	return payment, nil
}
