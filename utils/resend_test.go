package utils

import (
	"strings"
	"testing"
	"time"
)

func TestFormatBRL(t *testing.T) {
	tests := []struct {
		value float64
		want  string
	}{
		{0, "R$ 0,00"},
		{9.9, "R$ 9,90"},
		{100, "R$ 100,00"},
		{1234.56, "R$ 1.234,56"},
		{1000000, "R$ 1.000.000,00"},
		{-42.5, "-R$ 42,50"},
	}
	for _, tt := range tests {
		if got := FormatBRL(tt.value); got != tt.want {
			t.Errorf("FormatBRL(%v) = %q, want %q", tt.value, got, tt.want)
		}
	}
}

func TestBuildPurchaseEmailHTML(t *testing.T) {
	date := time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC)

	t.Run("home delivery", func(t *testing.T) {
		html := BuildPurchaseEmailHTML(PurchaseNotification{
			GiftName:              "Jogo de Panelas",
			BuyerName:             "Carlos",
			BuyerSurname:          "Souza",
			HomeDelivery:          true,
			EstimatedDeliveryDate: &date,
			Price:                 350,
		})
		for _, want := range []string{
			"Jogo de Panelas",
			"Carlos Souza",
			"R$ 350,00",
			"Será entregue na sua casa",
			"15/10/2026",
		} {
			if !strings.Contains(html, want) {
				t.Errorf("email body missing %q", want)
			}
		}
	})

	t.Run("pickup at wedding", func(t *testing.T) {
		html := BuildPurchaseEmailHTML(PurchaseNotification{
			GiftName:     "Air Fryer",
			BuyerName:    "Maria",
			BuyerSurname: "Silva",
			Price:        499.99,
		})
		if !strings.Contains(html, "O convidado levará ao casamento") {
			t.Error("email body missing pickup note")
		}
		if strings.Contains(html, "Data estimada") {
			t.Error("pickup email should not mention a delivery date")
		}
	})
}

func TestResendErrorMessage(t *testing.T) {
	err := &ResendError{Name: "validation_error", Message: "Invalid `to` field"}
	got := err.Error()
	if !strings.Contains(got, "validation_error") || !strings.Contains(got, "Invalid `to` field") {
		t.Errorf("unexpected error string: %q", got)
	}
}

func TestSendPurchaseNotificationRequiresAPIKey(t *testing.T) {
	t.Setenv("RESEND_API_KEY", "")
	if _, err := SendPurchaseNotification(PurchaseNotification{GiftName: "Cafeteira"}); err == nil {
		t.Fatal("expected error when RESEND_API_KEY is unset")
	}
}
