package adapter

import "errors"

// Purchase outcome sentinels. Callers match them with [errors.Is] to
// distinguish the non-failure outcomes of a purchase submission from real
// errors.
var (
	// ErrPurchaseCancelled is returned when the user cancelled the
	// purchase flow. No state change has happened.
	ErrPurchaseCancelled = errors.New("purchase cancelled by user")

	// ErrPurchasePending is returned when the purchase is awaiting
	// external approval (e.g. family approval). This is informational,
	// not a failure.
	ErrPurchasePending = errors.New("purchase pending approval")
)
