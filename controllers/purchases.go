package controllers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/becandrade6/wedding-gift-list/database"
	"github.com/becandrade6/wedding-gift-list/models"
	"github.com/becandrade6/wedding-gift-list/utils"

	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

// PurchaseRequest for POST /gifts/{id}/purchase
type PurchaseRequest struct {
	BuyerName             string `json:"buyer_name"`
	BuyerSurname          string `json:"buyer_surname"`
	HomeDelivery          bool   `json:"home_delivery"`
	EstimatedDeliveryDate string `json:"estimated_delivery_date,omitempty"`
}

var errGiftTaken = errors.New("gift already purchased")

// validatePurchaseRequest checks buyer data before any write. It returns the
// parsed delivery date (when home delivery is requested) and an empty message
// on success, or a user-facing message describing the first problem found.
func validatePurchaseRequest(req *PurchaseRequest) (*time.Time, string) {
	req.BuyerName = strings.TrimSpace(req.BuyerName)
	req.BuyerSurname = strings.TrimSpace(req.BuyerSurname)

	if req.BuyerName == "" {
		return nil, "Informe seu nome"
	}
	if req.BuyerSurname == "" {
		return nil, "Informe seu sobrenome"
	}
	if !req.HomeDelivery {
		return nil, ""
	}

	raw := strings.TrimSpace(req.EstimatedDeliveryDate)
	if raw == "" {
		return nil, "Informe a data estimada de entrega"
	}
	date, err := time.Parse("2006-01-02", raw)
	if err != nil {
		if date, err = time.Parse(time.RFC3339, raw); err != nil {
			return nil, "Data estimada de entrega inválida"
		}
	}
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, date.Location())
	if date.Before(today) {
		return nil, "A data estimada de entrega não pode estar no passado"
	}
	return &date, ""
}

// PurchaseGiftHandler POST /gifts/{id}/purchase - the reservation flow.
// The conditional update on the purchased flag is the sole arbiter between
// concurrent guests: zero rows affected means someone else already claimed
// the gift. The purchase row is written in the same transaction, so a failed
// insert rolls the flag back instead of stranding a half-reserved gift.
func PurchaseGiftHandler(w http.ResponseWriter, r *http.Request) {
	idStr := mux.Vars(r)["id"]
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil {
		utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "ID do presente inválido"})
		return
	}

	var req PurchaseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "Formato de dados inválido"})
		return
	}

	deliveryDate, msg := validatePurchaseRequest(&req)
	if msg != "" {
		utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: msg})
		return
	}

	var gift models.Gift
	if err := database.DB.First(&gift, uint(id)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.WriteJSON(w, http.StatusNotFound, utils.APIResponse{Success: false, Message: "Presente não encontrado"})
			return
		}
		log.Printf("[purchase] availability check error: %v", err)
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Não foi possível verificar a disponibilidade do presente"})
		return
	}

	if gift.Purchased {
		utils.WriteJSON(w, http.StatusConflict, utils.APIResponse{Success: false, Message: "Este presente já foi escolhido por outro convidado"})
		return
	}

	purchase := models.Purchase{
		GiftID:       gift.ID,
		BuyerName:    req.BuyerName,
		BuyerSurname: req.BuyerSurname,
		HomeDelivery: req.HomeDelivery,
	}
	if req.HomeDelivery {
		purchase.EstimatedDeliveryDate = deliveryDate
	}

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Gift{}).
			Where("id = ? AND purchased = ?", gift.ID, false).
			Update("purchased", true)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return errGiftTaken
		}
		return tx.Create(&purchase).Error
	})

	if errors.Is(err, errGiftTaken) {
		utils.WriteJSON(w, http.StatusConflict, utils.APIResponse{Success: false, Message: "Este presente já foi escolhido por outro convidado"})
		return
	}
	if err != nil {
		log.Printf("[purchase] transaction error gift_id=%d: %v", gift.ID, err)
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Não foi possível registrar a compra. Tente novamente."})
		return
	}

	// Email failure never undoes a committed reservation.
	if _, err := utils.SendPurchaseNotification(utils.PurchaseNotification{
		GiftName:              gift.Name,
		BuyerName:             purchase.BuyerName,
		BuyerSurname:          purchase.BuyerSurname,
		HomeDelivery:          purchase.HomeDelivery,
		EstimatedDeliveryDate: purchase.EstimatedDeliveryDate,
		Price:                 gift.Price,
	}); err != nil {
		log.Printf("[purchase] email notification failed gift_id=%d: %v", gift.ID, err)
	}

	if Catalog != nil {
		if err := Catalog.Refresh(); err != nil {
			log.Printf("[purchase] catalog refresh failed: %v", err)
		}
	}

	gift.Purchased = true
	utils.WriteJSON(w, http.StatusCreated, utils.APIResponse{
		Success: true,
		Message: "Compra registrada com sucesso. Obrigado!",
		Data: map[string]interface{}{
			"purchase": purchase,
			"gift":     gift,
		},
	})
}
