package admins

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/becandrade6/wedding-gift-list/middleware"
	"github.com/becandrade6/wedding-gift-list/models"
	"github.com/becandrade6/wedding-gift-list/utils"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{
			Success: false,
			Message: "Invalid JSON body",
		})
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	if locked, ttl := middleware.IsAccountLocked(email); locked {
		utils.WriteJSON(w, http.StatusTooManyRequests, utils.APIResponse{
			Success: false,
			Message: "Conta temporariamente bloqueada. Tente novamente mais tarde.",
			Data:    map[string]interface{}{"retry_after_seconds": int(ttl.Seconds())},
		})
		return
	}

	admin, err := models.GetAdminByEmail(email)
	if err != nil {
		middleware.RecordFailedLogin(email)
		utils.WriteJSON(w, http.StatusUnauthorized, utils.APIResponse{
			Success: false,
			Message: "E-mail ou senha incorretos",
		})
		return
	}

	if !admin.ValidatePassword(req.Password) {
		middleware.RecordFailedLogin(email)
		utils.WriteJSON(w, http.StatusUnauthorized, utils.APIResponse{
			Success: false,
			Message: "E-mail ou senha incorretos",
		})
		return
	}

	middleware.ResetFailedLogin(email)

	token, err := utils.GenerateJWT(admin.ID, admin.Email)
	if err != nil {
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{
			Success: false,
			Message: "Não foi possível gerar o token",
		})
		return
	}

	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{
		Success: true,
		Message: "Login realizado com sucesso",
		Data: map[string]interface{}{
			"token": token,
			"admin": admin,
		},
	})
}
