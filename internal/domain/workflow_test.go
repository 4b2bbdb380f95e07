package domain

import "testing"

func contains(actions []string, want string) bool {
	for _, a := range actions {
		if a == want {
			return true
		}
	}
	return false
}

func TestPendingExposesApproveOnly(t *testing.T) {
	actions := PaymentActions(StatusPending)
	if !contains(actions, ActionApprove) {
		t.Fatalf("pending should expose approve, got %v", actions)
	}
	if contains(actions, ActionMarkPaid) {
		t.Fatalf("pending must not expose mark-paid, got %v", actions)
	}
}

func TestApprovedExposesMarkPaidOnly(t *testing.T) {
	actions := PaymentActions(StatusApproved)
	if !contains(actions, ActionMarkPaid) {
		t.Fatalf("approved should expose mark-paid, got %v", actions)
	}
	if contains(actions, ActionApprove) {
		t.Fatalf("approved must not expose approve, got %v", actions)
	}
}

func TestTerminalStatusesExposeNothing(t *testing.T) {
	for _, status := range []string{StatusPaid, StatusCancelled} {
		if actions := PaymentActions(status); len(actions) != 0 {
			t.Fatalf("%s should expose no actions, got %v", status, actions)
		}
	}
}

func TestPaymentActionsUnknownStatus(t *testing.T) {
	for _, status := range []string{"", "weird", "  PENDING  "} {
		actions := PaymentActions(status)
		if status == "  PENDING  " {
			if !contains(actions, ActionApprove) {
				t.Fatalf("status should be normalized before lookup")
			}
			continue
		}
		if len(actions) != 0 {
			t.Fatalf("unknown status %q should have no actions, got %v", status, actions)
		}
	}
}

func TestCanTransition(t *testing.T) {
	if !CanTransition(StatusPending, ActionApprove) {
		t.Fatalf("pending -> approve should be allowed")
	}
	if CanTransition(StatusPending, ActionMarkPaid) {
		t.Fatalf("pending -> mark-paid must be refused")
	}
	if !CanTransition(StatusApproved, ActionMarkPaid) {
		t.Fatalf("approved -> mark-paid should be allowed")
	}
	if CanTransition(StatusPaid, ActionCancel) {
		t.Fatalf("paid is terminal")
	}
}

func TestNextStatus(t *testing.T) {
	cases := map[string]string{
		ActionApprove:  StatusApproved,
		ActionMarkPaid: StatusPaid,
		ActionCancel:   StatusCancelled,
	}
	for action, want := range cases {
		got, ok := NextStatus(action)
		if !ok || got != want {
			t.Fatalf("NextStatus(%q) = %q/%v, want %q", action, got, ok, want)
		}
	}
	if _, ok := NextStatus("escalate"); ok {
		t.Fatalf("unknown action must not map to a status")
	}
}

func TestValidAssetStatus(t *testing.T) {
	if !ValidAssetStatus("Available") || !ValidAssetStatus("retired") {
		t.Fatalf("known asset statuses rejected")
	}
	if ValidAssetStatus("broken") || ValidAssetStatus("") {
		t.Fatalf("unknown asset statuses accepted")
	}
}
