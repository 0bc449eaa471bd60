package utils

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

const ResendBaseURL = "https://api.resend.com"

// ResendError represents a Resend API error response
type ResendError struct {
	Name     string `json:"name"`
	Message  string `json:"message"`
	HTTPCode int    `json:"-"`
}

func (e *ResendError) Error() string {
	return fmt.Sprintf("resend error [%s]: %s", e.Name, e.Message)
}

// PurchaseNotification carries the data for the "gift purchased" email.
type PurchaseNotification struct {
	GiftName              string
	BuyerName             string
	BuyerSurname          string
	HomeDelivery          bool
	EstimatedDeliveryDate *time.Time
	Price                 float64
}

type resendEmailRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

// SendPurchaseNotification emails the couple about a completed purchase via
// the Resend API. The caller decides whether a failure matters; the
// reservation flow logs and swallows it.
func SendPurchaseNotification(n PurchaseNotification) (map[string]interface{}, error) {
	apiKey := strings.TrimSpace(os.Getenv("RESEND_API_KEY"))
	if apiKey == "" {
		return nil, fmt.Errorf("RESEND_API_KEY is not set")
	}

	from := getenvDefault("NOTIFY_FROM", "Lista de Presentes <onboarding@resend.dev>")
	to := getenvDefault("NOTIFY_TO", "bernardocandrade6@gmail.com")

	payload := resendEmailRequest{
		From:    from,
		To:      strings.Split(to, ","),
		Subject: "Novo Presente Comprado! 🎁",
		HTML:    BuildPurchaseEmailHTML(n),
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequest(http.MethodPost, ResendBaseURL+"/emails", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+apiKey)
	req.Header.Set("Content-Type", "application/json")

	client := &http.Client{Timeout: 15 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &ResendError{HTTPCode: resp.StatusCode}
		if err := json.Unmarshal(raw, apiErr); err != nil || apiErr.Message == "" {
			apiErr.Message = strings.TrimSpace(string(raw))
		}
		return nil, apiErr
	}

	var data map[string]interface{}
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, err
	}
	return data, nil
}

// BuildPurchaseEmailHTML renders the notification body sent to the couple.
func BuildPurchaseEmailHTML(n PurchaseNotification) string {
	var b strings.Builder
	b.WriteString("<h2>Um presente foi comprado da sua lista!</h2>")
	b.WriteString(fmt.Sprintf("<p><strong>Presente:</strong> %s</p>", n.GiftName))
	b.WriteString(fmt.Sprintf("<p><strong>Comprador:</strong> %s %s</p>", n.BuyerName, n.BuyerSurname))
	b.WriteString(fmt.Sprintf("<p><strong>Valor:</strong> %s</p>", FormatBRL(n.Price)))
	if n.HomeDelivery {
		b.WriteString("<p><strong>Entrega:</strong> Será entregue na sua casa</p>")
	} else {
		b.WriteString("<p><strong>Entrega:</strong> O convidado levará ao casamento</p>")
	}
	if n.HomeDelivery && n.EstimatedDeliveryDate != nil {
		b.WriteString(fmt.Sprintf("<p><strong>Data estimada de entrega:</strong> %s</p>",
			n.EstimatedDeliveryDate.Format("02/01/2006")))
	}
	return b.String()
}

// FormatBRL renders a price as Brazilian currency, e.g. R$ 1.234,56.
func FormatBRL(value float64) string {
	neg := value < 0
	if neg {
		value = -value
	}
	cents := int64(value*100 + 0.5)
	intPart := cents / 100
	frac := cents % 100

	digits := fmt.Sprintf("%d", intPart)
	var grouped strings.Builder
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			grouped.WriteByte('.')
		}
		grouped.WriteRune(d)
	}

	sign := ""
	if neg {
		sign = "-"
	}
	return fmt.Sprintf("%sR$ %s,%02d", sign, grouped.String(), frac)
}

func getenvDefault(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}
