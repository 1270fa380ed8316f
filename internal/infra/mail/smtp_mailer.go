// Package mail delivers transactional email over SMTP and decouples senders
// from the request path through an in-process dispatch queue.
package mail

import (
	"fmt"
	"net"
	"net/smtp"
	"strconv"
	"strings"
	"time"

	"bazaar/config"
	"bazaar/internal/errors"
)

// smtpMailer sends a single message over SMTP with a hard per-send deadline.
type smtpMailer struct {
	cfg *config.MailConfig
}

func newSMTPMailer(cfg *config.MailConfig) *smtpMailer {
	return &smtpMailer{cfg: cfg}
}

// message is a fully rendered outbound email.
type message struct {
	to      string
	subject string
	body    string
}

func (m *smtpMailer) welcomeMessage(email, name, role string) message {
	roleDisplay := strings.ReplaceAll(role, "_", " ")

	pendingNote := ""
	if role == "distributor" {
		pendingNote = "<p>Your account is currently pending approval. You will receive an email once your account has been reviewed.</p>"
	}

	body := fmt.Sprintf(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
<h2>Welcome to B2B2C Platform!</h2>
<p>Hello %s,</p>
<p>Thank you for registering as a %s.</p>
%s
<p>You can log in to your account using the email address you registered with.</p>
<p><a href="%s/login">Go to Login</a></p>
<br>
<p>Best regards,<br>B2B2C Platform Team</p>
</div>`, name, roleDisplay, pendingNote, m.cfg.FrontendURL)

	return message{to: email, subject: "Welcome to B2B2C Platform", body: body}
}

func (m *smtpMailer) passwordResetMessage(email, name, resetToken string) message {
	resetURL := fmt.Sprintf("%s/reset-password?token=%s", m.cfg.FrontendURL, resetToken)

	body := fmt.Sprintf(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
<h2>Password Reset Request</h2>
<p>Hello %s,</p>
<p>You requested to reset your password. Click the link below to reset it:</p>
<p><a href="%s">Reset Password</a></p>
<p>Or copy and paste this link in your browser:</p>
<p>%s</p>
<p>This link will expire in 1 hour.</p>
<p>If you didn't request this, please ignore this email.</p>
<br>
<p>Best regards,<br>B2B2C Platform Team</p>
</div>`, name, resetURL, resetURL)

	return message{to: email, subject: "Password Reset Request", body: body}
}

func (m *smtpMailer) approvalDecisionMessage(email, name string, approved bool, rejectionReason string) message {
	subject := "Distributor Account Application Update"
	content := "<p>We regret to inform you that your distributor account application has been rejected.</p>"
	if rejectionReason != "" {
		content += fmt.Sprintf("<p><strong>Reason:</strong> %s</p>", rejectionReason)
	}
	content += "<p>If you have any questions, please contact our support team.</p>"

	if approved {
		subject = "Distributor Account Approved"
		content = fmt.Sprintf(`<p>Congratulations! Your distributor account has been approved.</p>
<p>You can now log in and start placing orders at distributor prices.</p>
<p><a href="%s/login">Login Now</a></p>`, m.cfg.FrontendURL)
	}

	body := fmt.Sprintf(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
<h2>%s</h2>
<p>Hello %s,</p>
%s
<br>
<p>Best regards,<br>B2B2C Platform Team</p>
</div>`, subject, name, content)

	return message{to: email, subject: subject, body: body}
}

// send performs the SMTP conversation. The deadline covers dial, auth, and
// the data transfer as a whole.
func (m *smtpMailer) send(msg message, timeout time.Duration) error {
	addr := net.JoinHostPort(m.cfg.Host, strconv.Itoa(m.cfg.Port))

	conn, err := net.DialTimeout("tcp", addr, timeout)
	if err != nil {
		return errors.Wrap(err, "dial smtp server")
	}
	if err := conn.SetDeadline(time.Now().Add(timeout)); err != nil {
		conn.Close()

		return errors.Wrap(err, "set smtp deadline")
	}

	client, err := smtp.NewClient(conn, m.cfg.Host)
	if err != nil {
		conn.Close()

		return errors.Wrap(err, "open smtp session")
	}
	defer client.Close()

	if m.cfg.Username != "" {
		auth := smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)
		if err := client.Auth(auth); err != nil {
			return errors.Wrap(err, "smtp auth")
		}
	}

	if err := client.Mail(m.cfg.From); err != nil {
		return errors.Wrap(err, "smtp mail from")
	}
	if err := client.Rcpt(msg.to); err != nil {
		return errors.Wrap(err, "smtp rcpt to")
	}

	writer, err := client.Data()
	if err != nil {
		return errors.Wrap(err, "smtp data")
	}
	if _, err := writer.Write(encodeMessage(m.cfg.From, msg)); err != nil {
		return errors.Wrap(err, "write smtp body")
	}
	if err := writer.Close(); err != nil {
		return errors.Wrap(err, "close smtp body")
	}

	return client.Quit()
}

func encodeMessage(from string, msg message) []byte {
	var b strings.Builder
	b.WriteString("From: " + from + "\r\n")
	b.WriteString("To: " + msg.to + "\r\n")
	b.WriteString("Subject: " + msg.subject + "\r\n")
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n")
	b.WriteString("\r\n")
	b.WriteString(msg.body)
	b.WriteString("\r\n")

	return []byte(b.String())
}
