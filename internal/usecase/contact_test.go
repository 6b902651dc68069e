package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingMailer struct {
	sent []ContactEmail
	err  error
}

func (m *recordingMailer) Send(_ context.Context, msg ContactEmail) error {
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, msg)
	return nil
}

func TestComposeContactEmail(t *testing.T) {
	msg, err := ComposeContactEmail(ContactRequest{
		Name:    "  Ana ",
		Email:   "ana@example.com ",
		Message: " hello there ",
	})
	require.NoError(t, err)
	assert.Equal(t, ContactEmail{
		ReplyTo: "ana@example.com",
		Subject: "Portfolio contact from Ana",
		Text:    "Name: Ana\nEmail: ana@example.com\nhello there",
	}, msg)
}

func TestComposeContactEmailDefaultsAndExplicitSubject(t *testing.T) {
	msg, err := ComposeContactEmail(ContactRequest{Message: "hi"})
	require.NoError(t, err)
	assert.Equal(t, "Portfolio contact", msg.Subject)
	assert.Equal(t, "hi", msg.Text)
	assert.Empty(t, msg.ReplyTo)

	msg, err = ComposeContactEmail(ContactRequest{Name: "Ana", Subject: " Job offer ", Message: "hi"})
	require.NoError(t, err)
	assert.Equal(t, "Job offer", msg.Subject)
}

func TestSubmitRequiresMessage(t *testing.T) {
	m := &recordingMailer{}
	err := NewContactService(m).Submit(context.Background(), ContactRequest{Name: "Ana", Message: "   "})
	require.ErrorIs(t, err, ErrMessageRequired)
	assert.Equal(t, "message is required", err.Error())
	assert.Empty(t, m.sent)
}

func TestSubmitReturnsMailerError(t *testing.T) {
	boom := errors.New("smtp down")
	err := NewContactService(&recordingMailer{err: boom}).Submit(context.Background(), ContactRequest{Message: "hi"})
	require.ErrorIs(t, err, boom)
}
