package mail

import (
	"context"
	"log/slog"
	"time"

	"bazaar/config"
	"bazaar/internal/domain/service"

	"go.uber.org/fx"
)

const (
	defaultQueueSize   = 64
	defaultSendTimeout = 10 * time.Second
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// Dispatcher implements service.Mailer with fire-and-forget semantics.
// Sends are queued and delivered by a background worker so a slow or down
// SMTP server never stalls the request that triggered the mail. When the
// queue is full the message is dropped and logged, not blocked on.
type Dispatcher struct {
	sender      *smtpMailer
	logger      *slog.Logger
	queue       chan message
	done        chan struct{}
	sendTimeout time.Duration
}

// NewDispatcher is the constructor for Dispatcher, wired as the
// service.Mailer provider.
func NewDispatcher(params Params) service.Mailer {
	cfg := params.Config.Mail

	queueSize := defaultQueueSize
	sendTimeout := defaultSendTimeout
	if cfg != nil {
		if cfg.QueueSize > 0 {
			queueSize = cfg.QueueSize
		}
		if cfg.SendTimeout > 0 {
			sendTimeout = cfg.SendTimeout
		}
	}

	d := &Dispatcher{
		sender:      newSMTPMailer(cfg),
		logger:      params.Logger,
		queue:       make(chan message, queueSize),
		done:        make(chan struct{}),
		sendTimeout: sendTimeout,
	}

	params.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go d.run()

			return nil
		},
		OnStop: func(_ context.Context) error {
			// Stop accepting work and let the worker drain what is queued.
			close(d.queue)
			<-d.done

			return nil
		},
	})

	return d
}

// SendWelcome greets a newly registered user.
func (d *Dispatcher) SendWelcome(ctx context.Context, email, name, role string) error {
	d.enqueue(ctx, d.sender.welcomeMessage(email, name, role))

	return nil
}

// SendPasswordReset mails the raw reset token link.
func (d *Dispatcher) SendPasswordReset(ctx context.Context, email, name, resetToken string) error {
	d.enqueue(ctx, d.sender.passwordResetMessage(email, name, resetToken))

	return nil
}

// SendApprovalDecision notifies a distributor of the review outcome.
func (d *Dispatcher) SendApprovalDecision(ctx context.Context, email, name string, approved bool, rejectionReason string) error {
	d.enqueue(ctx, d.sender.approvalDecisionMessage(email, name, approved, rejectionReason))

	return nil
}

func (d *Dispatcher) enqueue(ctx context.Context, msg message) {
	if d.sender.cfg == nil {
		d.logger.DebugContext(ctx, "mail disabled, message skipped",
			slog.String("subject", msg.subject))

		return
	}

	select {
	case d.queue <- msg:
	default:
		d.logger.WarnContext(ctx, "mail queue full, message dropped",
			slog.String("subject", msg.subject))
	}
}

func (d *Dispatcher) run() {
	defer close(d.done)

	for msg := range d.queue {
		if err := d.sender.send(msg, d.sendTimeout); err != nil {
			d.logger.Error("mail delivery failed",
				slog.String("subject", msg.subject),
				slog.Any("error", err))
		}
	}
}
