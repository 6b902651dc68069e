package usecase

import (
	"context"
	"errors"
	"strings"
)

var ErrMessageRequired = errors.New("message is required")

// ContactRequest is a contact form submission. Only Message is mandatory.
type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// ContactEmail is the message handed to the mail transport. Sender and
// recipient come from the transport configuration.
type ContactEmail struct {
	ReplyTo string
	Subject string
	Text    string
}

type Mailer interface {
	Send(ctx context.Context, msg ContactEmail) error
}

type ContactService struct {
	mailer Mailer
}

func NewContactService(m Mailer) *ContactService {
	return &ContactService{mailer: m}
}

// Submit validates the request and relays it. Mailer errors are returned
// unchanged so callers can tell configuration problems apart.
func (s *ContactService) Submit(ctx context.Context, req ContactRequest) error {
	msg, err := ComposeContactEmail(req)
	if err != nil {
		return err
	}
	return s.mailer.Send(ctx, msg)
}

func ComposeContactEmail(req ContactRequest) (ContactEmail, error) {
	name := strings.TrimSpace(req.Name)
	replyTo := strings.TrimSpace(req.Email)
	subject := strings.TrimSpace(req.Subject)
	message := strings.TrimSpace(req.Message)

	if message == "" {
		return ContactEmail{}, ErrMessageRequired
	}

	if subject == "" {
		subject = "Portfolio contact"
		if name != "" {
			subject += " from " + name
		}
	}

	var lines []string
	if name != "" {
		lines = append(lines, "Name: "+name)
	}
	if replyTo != "" {
		lines = append(lines, "Email: "+replyTo)
	}
	lines = append(lines, message)

	return ContactEmail{
		ReplyTo: replyTo,
		Subject: subject,
		Text:    strings.Join(lines, "\n"),
	}, nil
}
