package admins

import (
	"encoding/json"
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

// GiftRequest for create/update
type GiftRequest struct {
	Name  string  `json:"name"`
	Link  string  `json:"link"`
	Price float64 `json:"price"`
	Store string  `json:"store"`
}

func (req *GiftRequest) validate() string {
	req.Name = strings.TrimSpace(req.Name)
	req.Link = strings.TrimSpace(req.Link)
	req.Store = strings.TrimSpace(req.Store)

	if req.Name == "" {
		return "Nome do presente é obrigatório"
	}
	if req.Store == "" {
		return "Loja é obrigatória"
	}
	if !utils.ValidLink(req.Link) {
		return "Link do produto inválido"
	}
	if req.Price < 0 {
		return "Preço não pode ser negativo"
	}
	return ""
}

// applyPriceRange narrows a gift query to one of the catalog's price buckets.
func applyPriceRange(query *gorm.DB, bucket string) *gorm.DB {
	switch bucket {
	case "", "all":
		return query
	case "500-plus":
		return query.Where("price >= ?", 500)
	}
	parts := strings.SplitN(bucket, "-", 2)
	if len(parts) != 2 {
		return query
	}
	min, err1 := strconv.ParseFloat(parts[0], 64)
	max, err2 := strconv.ParseFloat(parts[1], 64)
	if err1 != nil || err2 != nil {
		return query
	}
	return query.Where("price >= ? AND price <= ?", min, max)
}

// GetGifts GET /admin/gifts - list all gifts with filters
func GetGifts(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	name := strings.TrimSpace(r.URL.Query().Get("name"))
	store := strings.TrimSpace(r.URL.Query().Get("store"))
	status := strings.TrimSpace(r.URL.Query().Get("status"))
	priceRange := strings.TrimSpace(r.URL.Query().Get("price_range"))

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

	query := database.DB.Model(&models.Gift{})
	if name != "" {
		query = query.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(name)+"%")
	}
	if store != "" && store != "all" {
		query = query.Where("store = ?", store)
	}
	switch status {
	case "available":
		query = query.Where("purchased = ?", false)
	case "purchased":
		query = query.Where("purchased = ?", true)
	}
	query = applyPriceRange(query, priceRange)

	var total int64
	query.Count(&total)

	var gifts []models.Gift
	if err := query.Order("purchased ASC, created_at ASC").
		Offset(offset).Limit(limit).
		Find(&gifts).Error; err != nil {
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{
			Success: false,
			Message: "Não foi possível carregar os presentes",
		})
		return
	}

	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{
		Success: true,
		Message: "Successfully",
		Data: map[string]interface{}{
			"items": gifts,
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}

// CreateGift POST /admin/gifts - add a gift to the registry
func CreateGift(w http.ResponseWriter, r *http.Request) {
	var req GiftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "Formato de dados inválido"})
		return
	}
	if msg := req.validate(); msg != "" {
		utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: msg})
		return
	}

	gift := models.Gift{
		Name:      req.Name,
		Link:      req.Link,
		Price:     req.Price,
		Store:     req.Store,
		Purchased: false,
	}
	if err := database.DB.Create(&gift).Error; err != nil {
		log.Printf("[admin/gifts] create error: %v", err)
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Não foi possível criar o presente"})
		return
	}

	utils.WriteJSON(w, http.StatusCreated, utils.APIResponse{
		Success: true,
		Message: "Presente adicionado com sucesso",
		Data:    map[string]interface{}{"gift": gift},
	})
}

// UpdateGift PUT /admin/gifts/{id} - edit a gift; refused once purchased
func UpdateGift(w http.ResponseWriter, r *http.Request) {
	gift, ok := findGift(w, r)
	if !ok {
		return
	}
	if gift.Purchased {
		utils.WriteJSON(w, http.StatusConflict, utils.APIResponse{
			Success: false,
			Message: "Presentes já comprados não podem ser editados",
		})
		return
	}

	var req GiftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "Formato de dados inválido"})
		return
	}
	if msg := req.validate(); msg != "" {
		utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: msg})
		return
	}

	updates := map[string]interface{}{
		"name":  req.Name,
		"link":  req.Link,
		"price": req.Price,
		"store": req.Store,
	}
	if err := database.DB.Model(&gift).Updates(updates).Error; err != nil {
		log.Printf("[admin/gifts] update error id=%d: %v", gift.ID, err)
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Não foi possível atualizar o presente"})
		return
	}

	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{
		Success: true,
		Message: "Presente atualizado com sucesso",
		Data:    map[string]interface{}{"gift": gift},
	})
}

// DeleteGift DELETE /admin/gifts/{id} - remove a gift; refused once purchased
func DeleteGift(w http.ResponseWriter, r *http.Request) {
	gift, ok := findGift(w, r)
	if !ok {
		return
	}
	if gift.Purchased {
		utils.WriteJSON(w, http.StatusConflict, utils.APIResponse{
			Success: false,
			Message: "Presentes já comprados não podem ser removidos",
		})
		return
	}

	if err := database.DB.Delete(&gift).Error; err != nil {
		log.Printf("[admin/gifts] delete error id=%d: %v", gift.ID, err)
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Não foi possível remover o presente"})
		return
	}

	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{
		Success: true,
		Message: "Presente removido com sucesso",
	})
}

// findGift resolves the {id} path var; on failure it writes the error
// response and returns ok=false.
func findGift(w http.ResponseWriter, r *http.Request) (models.Gift, bool) {
	var gift models.Gift

	idStr := mux.Vars(r)["id"]
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil {
		utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "ID do presente inválido"})
		return gift, false
	}

	if err := database.DB.First(&gift, uint(id)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.WriteJSON(w, http.StatusNotFound, utils.APIResponse{Success: false, Message: "Presente não encontrado"})
			return gift, false
		}
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Não foi possível carregar o presente"})
		return gift, false
	}
	return gift, true
}
