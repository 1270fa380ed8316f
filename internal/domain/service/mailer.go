package service

import "context"

// Mailer defines outbound transactional mail. Every send is best-effort:
// callers dispatch and move on, and a delivery failure is logged, never
// propagated into the triggering flow.
type Mailer interface {
	// SendWelcome greets a newly registered user.
	SendWelcome(ctx context.Context, email, name, role string) error

	// SendPasswordReset mails the raw reset token link.
	SendPasswordReset(ctx context.Context, email, name, resetToken string) error

	// SendApprovalDecision notifies a distributor of the review outcome.
	SendApprovalDecision(ctx context.Context, email, name string, approved bool, rejectionReason string) error
}
