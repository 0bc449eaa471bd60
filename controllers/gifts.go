package controllers

import (
	"net/http"
	"sort"
	"strconv"
	"strings"

	"github.com/becandrade6/wedding-gift-list/models"
	"github.com/becandrade6/wedding-gift-list/utils"
)

const catalogPageSize = 12

// GiftFilter holds the catalog's query predicates. Zero values ("" or "all")
// mean "no restriction"; purchased gifts are excluded regardless.
type GiftFilter struct {
	Name       string
	Store      string
	PriceRange string
}

// MatchesPriceRange reports whether price falls into the named bucket.
// Buckets are inclusive on both ends; "500-plus" means price >= 500.
func MatchesPriceRange(price float64, bucket string) bool {
	switch bucket {
	case "", "all":
		return true
	case "500-plus":
		return price >= 500
	}
	parts := strings.SplitN(bucket, "-", 2)
	if len(parts) != 2 {
		return true
	}
	min, err1 := strconv.ParseFloat(parts[0], 64)
	max, err2 := strconv.ParseFloat(parts[1], 64)
	if err1 != nil || err2 != nil {
		return true
	}
	return price >= min && price <= max
}

// FilterGifts applies the catalog predicates over the snapshot, always
// dropping purchased gifts.
func FilterGifts(gifts []models.Gift, f GiftFilter) []models.Gift {
	name := strings.ToLower(strings.TrimSpace(f.Name))
	out := make([]models.Gift, 0, len(gifts))
	for _, g := range gifts {
		if g.Purchased {
			continue
		}
		if name != "" && !strings.Contains(strings.ToLower(g.Name), name) {
			continue
		}
		if f.Store != "" && f.Store != "all" && g.Store != f.Store {
			continue
		}
		if !MatchesPriceRange(g.Price, f.PriceRange) {
			continue
		}
		out = append(out, g)
	}
	return out
}

// PaginateGifts slices one page out of the filtered list. Pages are 1-based;
// out-of-range pages yield an empty slice.
func PaginateGifts(gifts []models.Gift, page, limit int) ([]models.Gift, int) {
	if limit < 1 {
		limit = catalogPageSize
	}
	if page < 1 {
		page = 1
	}
	totalPages := (len(gifts) + limit - 1) / limit

	start := (page - 1) * limit
	if start >= len(gifts) {
		return []models.Gift{}, totalPages
	}
	end := start + limit
	if end > len(gifts) {
		end = len(gifts)
	}
	return gifts[start:end], totalPages
}

// StoreNames collects the sorted unique store labels for the filter dropdown.
func StoreNames(gifts []models.Gift) []string {
	seen := make(map[string]bool)
	names := make([]string, 0)
	for _, g := range gifts {
		if !seen[g.Store] {
			seen[g.Store] = true
			names = append(names, g.Store)
		}
	}
	sort.Strings(names)
	return names
}

// ListGiftsHandler GET /gifts - the public catalog, served from the polled
// snapshot. all_purchased distinguishes the celebratory empty state from a
// plain filter miss.
func ListGiftsHandler(w http.ResponseWriter, r *http.Request) {
	var gifts []models.Gift
	if Catalog != nil {
		gifts = Catalog.Gifts()
	} else {
		var err error
		gifts, err = fetchGiftsFromDB()
		if err != nil {
			utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{
				Success: false,
				Message: "Não foi possível carregar os presentes",
			})
			return
		}
	}

	filter := GiftFilter{
		Name:       r.URL.Query().Get("name"),
		Store:      strings.TrimSpace(r.URL.Query().Get("store")),
		PriceRange: strings.TrimSpace(r.URL.Query().Get("price_range")),
	}
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = catalogPageSize
	}
	if limit > 100 {
		limit = 100
	}

	allPurchased := len(gifts) > 0
	for _, g := range gifts {
		if !g.Purchased {
			allPurchased = false
			break
		}
	}

	filtered := FilterGifts(gifts, filter)
	items, totalPages := PaginateGifts(filtered, page, limit)

	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{
		Success: true,
		Message: "Successfully",
		Data: map[string]interface{}{
			"items":         items,
			"total":         len(filtered),
			"page":          page,
			"limit":         limit,
			"total_pages":   totalPages,
			"stores":        StoreNames(gifts),
			"all_purchased": allPurchased,
		},
	})
}
