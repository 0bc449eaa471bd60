package admins

import (
	"net/http"

	"github.com/becandrade6/wedding-gift-list/database"
	"github.com/becandrade6/wedding-gift-list/models"
	"github.com/becandrade6/wedding-gift-list/utils"
)

// GetDashboardStats GET /admin/dashboard - headline numbers for the admin home
func GetDashboardStats(w http.ResponseWriter, r *http.Request) {
	var totalGifts, purchasedGifts, totalPurchases, totalRSVPs, attendingRSVPs int64

	database.DB.Model(&models.Gift{}).Count(&totalGifts)
	database.DB.Model(&models.Gift{}).Where("purchased = ?", true).Count(&purchasedGifts)
	database.DB.Model(&models.Purchase{}).Count(&totalPurchases)
	database.DB.Model(&models.RSVP{}).Count(&totalRSVPs)
	database.DB.Model(&models.RSVP{}).Where("will_attend = ?", true).Count(&attendingRSVPs)

	// Confirmed head count = adults + children over attending RSVPs
	type guestTotals struct {
		Adults   int64
		Children int64
	}
	var totals guestTotals
	database.DB.Model(&models.RSVP{}).
		Select("COALESCE(SUM(num_adults),0) AS adults, COALESCE(SUM(num_children),0) AS children").
		Where("will_attend = ?", true).
		Scan(&totals)

	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{
		Success: true,
		Message: "Successfully",
		Data: map[string]interface{}{
			"gifts": map[string]interface{}{
				"total":     totalGifts,
				"purchased": purchasedGifts,
				"available": totalGifts - purchasedGifts,
			},
			"purchases": totalPurchases,
			"rsvps": map[string]interface{}{
				"total":     totalRSVPs,
				"attending": attendingRSVPs,
				"declined":  totalRSVPs - attendingRSVPs,
				"adults":    totals.Adults,
				"children":  totals.Children,
			},
		},
	})
}
