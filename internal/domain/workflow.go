package domain

import "strings"

// Payment/invoice lifecycle statuses. One tagged value per record, so two
// actions can never be "open" at the same time.
const (
	StatusPending   = "pending"
	StatusApproved  = "approved"
	StatusPaid      = "paid"
	StatusCancelled = "cancelled"
)

// Asset statuses.
const (
	AssetAvailable   = "available"
	AssetAssigned    = "assigned"
	AssetMaintenance = "maintenance"
	AssetRetired     = "retired"
	AssetDisposed    = "disposed"
	AssetReserved    = "reserved"
)

// Action names exposed to the list UI.
const (
	ActionApprove  = "approve"
	ActionMarkPaid = "mark-paid"
	ActionCancel   = "cancel"
)

var paymentTransitions = map[string][]string{
	StatusPending:   {ActionApprove, ActionCancel},
	StatusApproved:  {ActionMarkPaid, ActionCancel},
	StatusPaid:      {},
	StatusCancelled: {},
}

// PaymentActions returns the mutations valid for a record in the given
// status. Unknown statuses get no actions rather than an error.
func PaymentActions(status string) []string {
	actions, ok := paymentTransitions[strings.ToLower(strings.TrimSpace(status))]
	if !ok {
		return []string{}
	}
	out := make([]string, len(actions))
	copy(out, actions)
	return out
}

// CanTransition reports whether action is valid from the given status.
func CanTransition(status, action string) bool {
	for _, a := range PaymentActions(status) {
		if a == action {
			return true
		}
	}
	return false
}

// NextStatus maps an action to the status it produces.
func NextStatus(action string) (string, bool) {
	switch action {
	case ActionApprove:
		return StatusApproved, true
	case ActionMarkPaid:
		return StatusPaid, true
	case ActionCancel:
		return StatusCancelled, true
	}
	return "", false
}

var assetStatuses = map[string]bool{
	AssetAvailable:   true,
	AssetAssigned:    true,
	AssetMaintenance: true,
	AssetRetired:     true,
	AssetDisposed:    true,
	AssetReserved:    true,
}

// ValidAssetStatus reports whether s is one of the known asset statuses.
func ValidAssetStatus(s string) bool {
	return assetStatuses[strings.ToLower(strings.TrimSpace(s))]
}

var paymentStatuses = map[string]bool{
	StatusPending:   true,
	StatusApproved:  true,
	StatusPaid:      true,
	StatusCancelled: true,
}

// ValidPaymentStatus reports whether s is one of the known payment statuses.
func ValidPaymentStatus(s string) bool {
	return paymentStatuses[strings.ToLower(strings.TrimSpace(s))]
}
