package controllers

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/becandrade6/wedding-gift-list/database"
	"github.com/becandrade6/wedding-gift-list/models"
	"github.com/becandrade6/wedding-gift-list/utils"
)

// RSVPRequest for POST /rsvps
type RSVPRequest struct {
	Name             string   `json:"name"`
	WillAttend       bool     `json:"will_attend"`
	Email            string   `json:"email"`
	Phone            string   `json:"phone"`
	NumAdults        int      `json:"num_adults"`
	NumChildren      int      `json:"num_children"`
	AdditionalAdults []string `json:"additional_adults"`
	ChildrenNames    []string `json:"children_names"`
	Observations     string   `json:"observations"`
}

// ValidateRSVP checks the whole submission and returns a user-facing message
// on the first problem, or "" when the request may be stored. Nothing is
// written when validation fails.
func ValidateRSVP(req *RSVPRequest) string {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	req.Phone = strings.TrimSpace(req.Phone)

	if req.Name == "" {
		return "Informe seu nome completo"
	}
	if !utils.ValidPhone(req.Phone) {
		return "Por favor, insira um telefone no formato (xx) xxxxx-xxxx"
	}
	if !utils.ValidEmail(req.Email) {
		return "Por favor, insira um e-mail válido"
	}
	if req.NumAdults < 1 {
		return "O número de adultos deve ser pelo menos 1"
	}
	if req.NumChildren < 0 {
		return "O número de crianças não pode ser negativo"
	}
	if len(req.AdditionalAdults) != req.NumAdults-1 {
		return fmt.Sprintf("Informe o nome dos %d adultos adicionais", req.NumAdults-1)
	}
	for _, name := range req.AdditionalAdults {
		if strings.TrimSpace(name) == "" {
			return "Informe o nome de todos os adultos adicionais"
		}
	}
	if len(req.ChildrenNames) != req.NumChildren {
		return fmt.Sprintf("Informe o nome das %d crianças", req.NumChildren)
	}
	for _, name := range req.ChildrenNames {
		if strings.TrimSpace(name) == "" {
			return "Informe o nome de todas as crianças"
		}
	}
	return ""
}

// RSVPConfirmationMessage is shown in the dialog until the guest dismisses it.
func RSVPConfirmationMessage(willAttend bool, name string) string {
	if willAttend {
		return fmt.Sprintf("Que alegria, %s! Mal podemos esperar para celebrar com você este momento tão especial. Nos vemos em breve!", name)
	}
	return fmt.Sprintf("Sentiremos sua falta, %s. Agradecemos por nos comunicar. Você estará em nossos corações neste dia especial.", name)
}

// CreateRSVPHandler POST /rsvps - store one attendance confirmation
func CreateRSVPHandler(w http.ResponseWriter, r *http.Request) {
	var req RSVPRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "Formato de dados inválido"})
		return
	}

	if msg := ValidateRSVP(&req); msg != "" {
		utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: msg})
		return
	}

	rsvp := models.RSVP{
		Name:             req.Name,
		WillAttend:       req.WillAttend,
		Email:            req.Email,
		Phone:            req.Phone,
		NumAdults:        req.NumAdults,
		NumChildren:      req.NumChildren,
		AdditionalAdults: models.StringList(req.AdditionalAdults),
		ChildrenNames:    models.StringList(req.ChildrenNames),
		Observations:     req.Observations,
	}

	if err := database.DB.Create(&rsvp).Error; err != nil {
		log.Printf("[rsvp] create error: %v", err)
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{
			Success: false,
			Message: "Ocorreu um erro ao processar sua confirmação. Por favor, tente novamente.",
		})
		return
	}

	utils.WriteJSON(w, http.StatusCreated, utils.APIResponse{
		Success: true,
		Message: RSVPConfirmationMessage(rsvp.WillAttend, rsvp.Name),
		Data: map[string]interface{}{
			"rsvp": rsvp,
		},
	})
}
