package mail

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"bazaar/config"
)

func newTestSender() *smtpMailer {
	return newSMTPMailer(&config.MailConfig{
		Host:        "smtp.example.com",
		Port:        587,
		From:        "noreply@example.com",
		FrontendURL: "https://shop.example.com",
	})
}

func TestWelcomeMessage(t *testing.T) {
	t.Parallel()

	sender := newTestSender()

	msg := sender.welcomeMessage("jane@example.com", "Jane Doe", "retail_customer")
	assert.Equal(t, "jane@example.com", msg.to)
	assert.Equal(t, "Welcome to B2B2C Platform", msg.subject)
	assert.Contains(t, msg.body, "Hello Jane Doe")
	assert.Contains(t, msg.body, "retail customer")
	assert.Contains(t, msg.body, "https://shop.example.com/login")
	assert.NotContains(t, msg.body, "pending approval")
}

func TestWelcomeMessage_DistributorPendingNote(t *testing.T) {
	t.Parallel()

	sender := newTestSender()

	msg := sender.welcomeMessage("dist@example.com", "Dana Smith", "distributor")
	assert.Contains(t, msg.body, "pending approval")
}

func TestPasswordResetMessage(t *testing.T) {
	t.Parallel()

	sender := newTestSender()

	msg := sender.passwordResetMessage("jane@example.com", "Jane Doe", "abc123")
	assert.Equal(t, "Password Reset Request", msg.subject)
	assert.Contains(t, msg.body, "https://shop.example.com/reset-password?token=abc123")
	assert.Contains(t, msg.body, "expire in 1 hour")
}

func TestApprovalDecisionMessage(t *testing.T) {
	t.Parallel()

	sender := newTestSender()

	approved := sender.approvalDecisionMessage("dist@example.com", "Dana Smith", true, "")
	assert.Equal(t, "Distributor Account Approved", approved.subject)
	assert.Contains(t, approved.body, "has been approved")
	assert.Contains(t, approved.body, "https://shop.example.com/login")

	rejected := sender.approvalDecisionMessage("dist@example.com", "Dana Smith", false, "Incomplete registration documents")
	assert.Equal(t, "Distributor Account Application Update", rejected.subject)
	assert.Contains(t, rejected.body, "has been rejected")
	assert.Contains(t, rejected.body, "Incomplete registration documents")
}

func TestEncodeMessage(t *testing.T) {
	t.Parallel()

	raw := string(encodeMessage("noreply@example.com", message{
		to:      "jane@example.com",
		subject: "Test Subject",
		body:    "<p>Hi</p>",
	}))

	assert.Contains(t, raw, "From: noreply@example.com\r\n")
	assert.Contains(t, raw, "To: jane@example.com\r\n")
	assert.Contains(t, raw, "Subject: Test Subject\r\n")
	assert.Contains(t, raw, "Content-Type: text/html")
	assert.Contains(t, raw, "\r\n\r\n<p>Hi</p>")
}
