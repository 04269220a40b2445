package model

type ReconcileStatus string

const (
	// ReconcileStatusVerifying is transient and UI-facing only, shown while
	// the outcome is being computed. It is never persisted.
	ReconcileStatusVerifying ReconcileStatus = "VERIFYING"
	ReconcileStatusVerified  ReconcileStatus = "VERIFIED"
	ReconcileStatusFailed    ReconcileStatus = "FAILED"
)

func (s ReconcileStatus) IsTerminal() bool {
	return s == ReconcileStatusVerified || s == ReconcileStatusFailed
}

func (s ReconcileStatus) String() string {
	return string(s)
}

// FailureReason says why a return redirect could not be verified.
type FailureReason string

const (
	// FailureMalformedReturn: a required query parameter was absent or unparseable.
	FailureMalformedReturn FailureReason = "MALFORMED_RETURN"
	// FailureNoPendingCheckout: no checkpoint exists for this session.
	FailureNoPendingCheckout FailureReason = "NO_PENDING_CHECKOUT"
	// FailureMismatch: status, order id or amount disagreed with the checkpoint.
	FailureMismatch FailureReason = "MISMATCH"
)
