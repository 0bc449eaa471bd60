package admins

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/becandrade6/wedding-gift-list/controllers"
	"github.com/becandrade6/wedding-gift-list/database"
	"github.com/becandrade6/wedding-gift-list/models"
	"github.com/becandrade6/wedding-gift-list/utils"

	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

// GetRSVPs GET /admin/rsvps - list confirmations
func GetRSVPs(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	name := strings.TrimSpace(r.URL.Query().Get("name"))
	attendance := strings.TrimSpace(r.URL.Query().Get("attendance"))

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

	query := database.DB.Model(&models.RSVP{})
	if name != "" {
		query = query.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(name)+"%")
	}
	switch attendance {
	case "yes":
		query = query.Where("will_attend = ?", true)
	case "no":
		query = query.Where("will_attend = ?", false)
	}

	var total int64
	query.Count(&total)

	var rsvps []models.RSVP
	if err := query.Order("created_at DESC").
		Offset(offset).Limit(limit).
		Find(&rsvps).Error; err != nil {
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{
			Success: false,
			Message: "Não foi possível carregar as confirmações",
		})
		return
	}

	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{
		Success: true,
		Message: "Successfully",
		Data: map[string]interface{}{
			"items": rsvps,
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}

// UpdateRSVP PUT /admin/rsvps/{id} - edit a confirmation with the same
// validation rules as the public flow
func UpdateRSVP(w http.ResponseWriter, r *http.Request) {
	rsvp, ok := findRSVP(w, r)
	if !ok {
		return
	}

	var req controllers.RSVPRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "Formato de dados inválido"})
		return
	}
	if msg := controllers.ValidateRSVP(&req); msg != "" {
		utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: msg})
		return
	}

	rsvp.Name = req.Name
	rsvp.WillAttend = req.WillAttend
	rsvp.Email = req.Email
	rsvp.Phone = req.Phone
	rsvp.NumAdults = req.NumAdults
	rsvp.NumChildren = req.NumChildren
	rsvp.AdditionalAdults = models.StringList(req.AdditionalAdults)
	rsvp.ChildrenNames = models.StringList(req.ChildrenNames)
	rsvp.Observations = req.Observations

	if err := database.DB.Save(&rsvp).Error; err != nil {
		log.Printf("[admin/rsvps] update error id=%d: %v", rsvp.ID, err)
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Não foi possível atualizar a confirmação"})
		return
	}

	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{
		Success: true,
		Message: "Confirmação atualizada com sucesso",
		Data:    map[string]interface{}{"rsvp": rsvp},
	})
}

// DeleteRSVP DELETE /admin/rsvps/{id}
func DeleteRSVP(w http.ResponseWriter, r *http.Request) {
	rsvp, ok := findRSVP(w, r)
	if !ok {
		return
	}

	if err := database.DB.Delete(&rsvp).Error; err != nil {
		log.Printf("[admin/rsvps] delete error id=%d: %v", rsvp.ID, err)
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Não foi possível remover a confirmação"})
		return
	}

	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{
		Success: true,
		Message: "Confirmação removida com sucesso",
	})
}

func findRSVP(w http.ResponseWriter, r *http.Request) (models.RSVP, bool) {
	var rsvp models.RSVP

	idStr := mux.Vars(r)["id"]
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil {
		utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "ID da confirmação inválido"})
		return rsvp, false
	}

	if err := database.DB.First(&rsvp, uint(id)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.WriteJSON(w, http.StatusNotFound, utils.APIResponse{Success: false, Message: "Confirmação não encontrada"})
			return rsvp, false
		}
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "Não foi possível carregar a confirmação"})
		return rsvp, false
	}
	return rsvp, true
}
