package admins

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/becandrade6/wedding-gift-list/database"
	"github.com/becandrade6/wedding-gift-list/models"
	"github.com/becandrade6/wedding-gift-list/utils"

	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

// GetPurchases GET /admin/purchases - list purchases with their gifts
func GetPurchases(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	buyer := strings.TrimSpace(r.URL.Query().Get("buyer"))
	giftName := strings.TrimSpace(r.URL.Query().Get("name"))

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	offset := (page - 1) * limit

	query := database.DB.Model(&models.Purchase{})
	if buyer != "" {
		pattern := "%" + strings.ToLower(buyer) + "%"
		query = query.Where("LOWER(CONCAT(buyer_name, ' ', buyer_surname)) LIKE ?", pattern)
	}
	if giftName != "" {
		query = query.Joins("JOIN gifts ON gifts.id = purchases.gift_id").
			Where("LOWER(gifts.name) LIKE ?", "%"+strings.ToLower(giftName)+"%")
	}

	var total int64
	query.Count(&total)

	var purchases []models.Purchase
	if err := query.Preload("Gift").
		Order("purchases.created_at DESC").
		Offset(offset).Limit(limit).
		Find(&purchases).Error; err != nil {
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{
			Success: false,
			Message: "Não foi possível carregar as compras",
		})
		return
	}

	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{
		Success: true,
		Message: "Successfully",
		Data: map[string]interface{}{
			"items": purchases,
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}

// DeletePurchase DELETE /admin/purchases/{id} - undo a purchase. The row is
// removed and the linked gift goes back to available in one transaction, so
// the gift is never left purchased without a purchase record. Resetting an
// already-available gift is a no-op.
func DeletePurchase(w http.ResponseWriter, r *http.Request) {
	idStr := mux.Vars(r)["id"]
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil {
		utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "ID da compra inválido"})
		return
	}

	var purchase models.Purchase
	if err := database.DB.First(&purchase, uint(id)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.WriteJSON(w, http.StatusNotFound, utils.APIResponse{Success: false, Message: "Compra não encontrada"})
			return
		}
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Não foi possível carregar a compra"})
		return
	}

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&purchase).Error; err != nil {
			return err
		}
		return tx.Model(&models.Gift{}).
			Where("id = ?", purchase.GiftID).
			Update("purchased", false).Error
	})
	if err != nil {
		log.Printf("[admin/purchases] delete error id=%d: %v", purchase.ID, err)
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Não foi possível remover a compra"})
		return
	}

	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{
		Success: true,
		Message: "Compra removida e presente disponível novamente",
		Data: map[string]interface{}{
			"gift_id": purchase.GiftID,
		},
	})
}
