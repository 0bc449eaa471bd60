package controllers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/becandrade6/wedding-gift-list/utils"
)

// NotificationRequest mirrors the payload the purchase dialog posts; field
// names are camelCase on the wire for compatibility with the frontend.
type NotificationRequest struct {
	GiftName              string  `json:"giftName"`
	BuyerName             string  `json:"buyerName"`
	BuyerSurname          string  `json:"buyerSurname"`
	HomeDelivery          bool    `json:"homeDelivery"`
	EstimatedDeliveryDate string  `json:"estimatedDeliveryDate,omitempty"`
	Price                 float64 `json:"price"`
}

func writeRaw(w http.ResponseWriter, status int, body map[string]interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// SendNotificationHandler POST /notifications/purchase - forwards a purchase
// event to the email API. Replies {"data": ...} on success or {"error": ...}
// with a non-200 status, keeping the wire shape the frontend expects.
func SendNotificationHandler(w http.ResponseWriter, r *http.Request) {
	var req NotificationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeRaw(w, http.StatusBadRequest, map[string]interface{}{"error": "invalid JSON body"})
		return
	}

	notification := utils.PurchaseNotification{
		GiftName:     req.GiftName,
		BuyerName:    req.BuyerName,
		BuyerSurname: req.BuyerSurname,
		HomeDelivery: req.HomeDelivery,
		Price:        req.Price,
	}
	if raw := strings.TrimSpace(req.EstimatedDeliveryDate); raw != "" {
		date, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			date, err = time.Parse("2006-01-02", raw)
		}
		if err == nil {
			notification.EstimatedDeliveryDate = &date
		}
	}

	data, err := utils.SendPurchaseNotification(notification)
	if err != nil {
		log.Printf("[notifications] send failed: %v", err)
		var apiErr *utils.ResendError
		if errors.As(err, &apiErr) {
			writeRaw(w, http.StatusBadRequest, map[string]interface{}{"error": apiErr.Message})
			return
		}
		writeRaw(w, http.StatusInternalServerError, map[string]interface{}{"error": "failed to send notification"})
		return
	}

	writeRaw(w, http.StatusOK, map[string]interface{}{"data": data})
}
