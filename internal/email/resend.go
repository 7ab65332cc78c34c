// Package email delivers organizer notifications through the Resend
// HTTP API. Delivery is best-effort: the booking and registration
// flows never block on it.
package email

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/danceinaction/booking-api/internal/domain"
)

const endpoint = "https://api.resend.com/emails"

type Client struct {
	apiKey  string
	from    string
	adminTo string
	baseURL string
	hc      *http.Client
}

// NewClient builds a Resend client. An empty apiKey disables sending;
// Send logs and returns nil so callers need no special casing.
func NewClient(apiKey, from, adminTo, baseURL string) *Client {
	return &Client{
		apiKey:  apiKey,
		from:    from,
		adminTo: adminTo,
		baseURL: baseURL,
		hc:      &http.Client{Timeout: 10 * time.Second},
	}
}

type message struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

// RegistrationSubmitted mails the organizers about a newly submitted
// group registration.
func (c *Client) RegistrationSubmitted(ctx context.Context, reg domain.Registration) error {
	subject := fmt.Sprintf("Nueva Inscripción: %s (%s)", reg.GroupName, reg.Category)
	return c.send(ctx, message{
		From:    c.from,
		To:      []string{c.adminTo},
		Subject: subject,
		HTML:    registrationBody(reg, c.baseURL),
	})
}

func (c *Client) send(ctx context.Context, msg message) error {
	if c.apiKey == "" {
		zap.L().Warn("email api key missing, notification skipped", zap.String("subject", msg.Subject))
		return nil
	}

	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("json.Marshal -> %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("http.NewRequestWithContext -> %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.hc.Do(req)
	if err != nil {
		return fmt.Errorf("c.hc.Do -> %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("resend responded %d", resp.StatusCode)
	}
	return nil
}

func registrationBody(reg domain.Registration, baseURL string) string {
	var b strings.Builder
	b.WriteString("<h1>¡Nueva Inscripción Recibida!</h1>")
	fmt.Fprintf(&b, "<p><strong>Grupo:</strong> %s</p>", reg.GroupName)
	fmt.Fprintf(&b, "<p><strong>Categoría:</strong> %s</p>", reg.Category)
	fmt.Fprintf(&b, "<p><strong>Participantes:</strong> %d</p>", len(reg.Participants))

	b.WriteString("<h3>Responsables:</h3><pre>")
	for _, r := range reg.Responsibles {
		fmt.Fprintf(&b, "- %s %s (%s)\n", r.Name, r.Surnames, r.Phone)
	}
	b.WriteString("</pre>")

	if reg.Notes != "" {
		b.WriteString("<h3>Notas a la Organización:</h3><div>")
		b.WriteString(strings.ReplaceAll(reg.Notes, "\n", "<br>"))
		b.WriteString("</div>")
	}

	fmt.Fprintf(&b, `<p><a href="%s/admin">Ver en Panel de Admin</a></p>`, baseURL)
	return b.String()
}
