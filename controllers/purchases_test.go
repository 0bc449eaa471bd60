package controllers

import (
	"testing"
	"time"
)

func TestValidatePurchaseRequest(t *testing.T) {
	t.Run("accepts pickup without date", func(t *testing.T) {
		req := PurchaseRequest{BuyerName: "Carlos", BuyerSurname: "Souza"}
		date, msg := validatePurchaseRequest(&req)
		if msg != "" {
			t.Fatalf("unexpected validation error: %q", msg)
		}
		if date != nil {
			t.Errorf("expected no date for pickup, got %v", date)
		}
	})

	t.Run("rejects missing name", func(t *testing.T) {
		req := PurchaseRequest{BuyerName: "  ", BuyerSurname: "Souza"}
		if _, msg := validatePurchaseRequest(&req); msg == "" {
			t.Fatal("expected rejection of blank buyer name")
		}
	})

	t.Run("rejects missing surname", func(t *testing.T) {
		req := PurchaseRequest{BuyerName: "Carlos"}
		if _, msg := validatePurchaseRequest(&req); msg == "" {
			t.Fatal("expected rejection of blank surname")
		}
	})

	t.Run("home delivery requires date", func(t *testing.T) {
		req := PurchaseRequest{BuyerName: "Carlos", BuyerSurname: "Souza", HomeDelivery: true}
		if _, msg := validatePurchaseRequest(&req); msg == "" {
			t.Fatal("expected rejection when home delivery has no date")
		}
	})

	t.Run("home delivery accepts future date", func(t *testing.T) {
		future := time.Now().AddDate(0, 0, 7).Format("2006-01-02")
		req := PurchaseRequest{
			BuyerName:             "Carlos",
			BuyerSurname:          "Souza",
			HomeDelivery:          true,
			EstimatedDeliveryDate: future,
		}
		date, msg := validatePurchaseRequest(&req)
		if msg != "" {
			t.Fatalf("unexpected validation error: %q", msg)
		}
		if date == nil {
			t.Fatal("expected parsed delivery date")
		}
	})

	t.Run("home delivery accepts today", func(t *testing.T) {
		today := time.Now().Format("2006-01-02")
		req := PurchaseRequest{
			BuyerName:             "Carlos",
			BuyerSurname:          "Souza",
			HomeDelivery:          true,
			EstimatedDeliveryDate: today,
		}
		if _, msg := validatePurchaseRequest(&req); msg != "" {
			t.Fatalf("today should be accepted, got %q", msg)
		}
	})

	t.Run("home delivery rejects past date", func(t *testing.T) {
		past := time.Now().AddDate(0, 0, -1).Format("2006-01-02")
		req := PurchaseRequest{
			BuyerName:             "Carlos",
			BuyerSurname:          "Souza",
			HomeDelivery:          true,
			EstimatedDeliveryDate: past,
		}
		if _, msg := validatePurchaseRequest(&req); msg == "" {
			t.Fatal("expected rejection of past delivery date")
		}
	})

	t.Run("rejects garbage date", func(t *testing.T) {
		req := PurchaseRequest{
			BuyerName:             "Carlos",
			BuyerSurname:          "Souza",
			HomeDelivery:          true,
			EstimatedDeliveryDate: "31/12/2026",
		}
		if _, msg := validatePurchaseRequest(&req); msg == "" {
			t.Fatal("expected rejection of unparseable date")
		}
	})

	t.Run("accepts RFC3339 date", func(t *testing.T) {
		future := time.Now().AddDate(0, 1, 0).Format(time.RFC3339)
		req := PurchaseRequest{
			BuyerName:             "Carlos",
			BuyerSurname:          "Souza",
			HomeDelivery:          true,
			EstimatedDeliveryDate: future,
		}
		if _, msg := validatePurchaseRequest(&req); msg != "" {
			t.Fatalf("unexpected validation error: %q", msg)
		}
	})
}
