package storage

import (
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/wneessen/go-mail"

	"mikes-grill/notify-svc/internal/domain"
)

// MessageSender delivers built messages. *mail.Client satisfies it.
type MessageSender interface {
	DialAndSend(messages ...*mail.Msg) error
}

// SMTPMailer forwards contact messages to the restaurant admin.
type SMTPMailer struct {
	From   string
	To     string
	Sender MessageSender
}

// NewSMTPMailer builds the SMTP client without dialing. Plain auth is used
// only when a user is configured; STARTTLS is used when the server offers it.
func NewSMTPMailer(host, port, user, password, from, to string) (*SMTPMailer, error) {
	portNum, err := strconv.Atoi(port)
	if err != nil {
		return nil, fmt.Errorf("smtp port %q: %w", port, err)
	}
	opts := []mail.Option{
		mail.WithPort(portNum),
		mail.WithTLSPortPolicy(mail.TLSOpportunistic),
	}
	if user != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(user),
			mail.WithPassword(password),
		)
	}
	client, err := mail.NewClient(host, opts...)
	if err != nil {
		return nil, fmt.Errorf("smtp client: %w", err)
	}
	return &SMTPMailer{From: from, To: to, Sender: client}, nil
}

func (m *SMTPMailer) SendContact(event domain.ContactEvent) error {
	msg, err := BuildContactEmail(m.From, m.To, event)
	if err != nil {
		return fmt.Errorf("build contact %d: %w", event.ContactID, err)
	}
	if err := m.Sender.DialAndSend(msg); err != nil {
		return fmt.Errorf("send contact %d: %w", event.ContactID, err)
	}
	return nil
}

// headerSafe drops CR and LF so submitted values cannot inject headers.
func headerSafe(v string) string {
	return strings.NewReplacer("\r", "", "\n", " ").Replace(v)
}

// BuildContactEmail returns the notification for one contact message. Non-ASCII
// header text is RFC 2047 encoded and the body is sent quoted-printable.
func BuildContactEmail(from, to string, event domain.ContactEvent) (*mail.Msg, error) {
	msg := mail.NewMsg()
	if err := msg.From(from); err != nil {
		return nil, fmt.Errorf("from %q: %w", from, err)
	}
	if err := msg.To(to); err != nil {
		return nil, fmt.Errorf("to %q: %w", to, err)
	}
	if err := msg.ReplyTo(headerSafe(event.Email)); err != nil {
		log.Printf("WARNING: Contact %d has no usable reply address: %v", event.ContactID, err)
	}
	msg.Subject("Website contact: " + headerSafe(event.Name))
	msg.SetDate()
	msg.SetMessageID()

	var body strings.Builder
	fmt.Fprintf(&body, "Name: %s\n", headerSafe(event.Name))
	fmt.Fprintf(&body, "Email: %s\n\n", headerSafe(event.Email))
	body.WriteString(event.Message)
	body.WriteString("\n")
	msg.SetBodyString(mail.TypeTextPlain, body.String())
	return msg, nil
}
