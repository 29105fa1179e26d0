package commands

import (
	"context"

	"shuttlebook/internal/domain/waitlist"
)

// Notifier is the messaging gateway for waitlist promotions. Dispatch is
// best-effort: callers log failures and never roll back the promotion.
type Notifier interface {
	NotifyWaitlist(ctx context.Context, entry *waitlist.Entry) error
}
