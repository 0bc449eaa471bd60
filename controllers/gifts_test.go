package controllers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/becandrade6/wedding-gift-list/models"
	"github.com/becandrade6/wedding-gift-list/utils"
)

func TestMatchesPriceRange(t *testing.T) {
	tests := []struct {
		name   string
		price  float64
		bucket string
		want   bool
	}{
		{"empty bucket matches everything", 999.99, "", true},
		{"all matches everything", 0.01, "all", true},
		{"lower bound inclusive", 100.00, "100-300", true},
		{"upper bound inclusive", 300.00, "100-300", true},
		{"below range", 99.99, "100-300", false},
		{"above range", 300.01, "100-300", false},
		{"500-plus includes exactly 500", 500.00, "500-plus", true},
		{"500-plus excludes 499.99", 499.99, "500-plus", false},
		{"zero in first bucket", 0, "0-100", true},
		{"malformed bucket matches everything", 42, "cheap", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MatchesPriceRange(tt.price, tt.bucket); got != tt.want {
				t.Errorf("MatchesPriceRange(%v, %q) = %v, want %v", tt.price, tt.bucket, got, tt.want)
			}
		})
	}
}

func sampleGifts() []models.Gift {
	return []models.Gift{
		{ID: 1, Name: "Jogo de Panelas", Price: 350, Store: "Amazon"},
		{ID: 2, Name: "Air Fryer", Price: 499.99, Store: "Magalu"},
		{ID: 3, Name: "Geladeira", Price: 3200, Store: "Amazon", Purchased: true},
		{ID: 4, Name: "Jogo de Toalhas", Price: 89.90, Store: "Amazon"},
	}
}

func TestFilterGifts(t *testing.T) {
	gifts := sampleGifts()

	t.Run("drops purchased", func(t *testing.T) {
		got := FilterGifts(gifts, GiftFilter{})
		if len(got) != 3 {
			t.Fatalf("expected 3 gifts, got %d", len(got))
		}
		for _, g := range got {
			if g.Purchased {
				t.Errorf("purchased gift %d leaked into results", g.ID)
			}
		}
	})

	t.Run("name is case-insensitive substring", func(t *testing.T) {
		got := FilterGifts(gifts, GiftFilter{Name: "jogo"})
		if len(got) != 2 {
			t.Fatalf("expected 2 gifts matching %q, got %d", "jogo", len(got))
		}
	})

	t.Run("store exact match", func(t *testing.T) {
		got := FilterGifts(gifts, GiftFilter{Store: "Magalu"})
		if len(got) != 1 || got[0].ID != 2 {
			t.Fatalf("expected only gift 2, got %+v", got)
		}
	})

	t.Run("store all means no restriction", func(t *testing.T) {
		got := FilterGifts(gifts, GiftFilter{Store: "all"})
		if len(got) != 3 {
			t.Fatalf("expected 3 gifts, got %d", len(got))
		}
	})

	t.Run("combined filters", func(t *testing.T) {
		got := FilterGifts(gifts, GiftFilter{Store: "Amazon", PriceRange: "0-100"})
		if len(got) != 1 || got[0].ID != 4 {
			t.Fatalf("expected only gift 4, got %+v", got)
		}
	})
}

func TestPaginateGifts(t *testing.T) {
	gifts := make([]models.Gift, 25)
	for i := range gifts {
		gifts[i] = models.Gift{ID: uint(i + 1), Name: fmt.Sprintf("Presente %d", i+1)}
	}

	tests := []struct {
		name       string
		page       int
		limit      int
		wantLen    int
		wantPages  int
		wantFirst  uint
	}{
		{"first page", 1, 12, 12, 3, 1},
		{"second page", 2, 12, 12, 3, 13},
		{"last partial page", 3, 12, 1, 3, 25},
		{"out of range", 4, 12, 0, 3, 0},
		{"page below one clamps", 0, 12, 12, 3, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items, totalPages := PaginateGifts(gifts, tt.page, tt.limit)
			if len(items) != tt.wantLen {
				t.Fatalf("len = %d, want %d", len(items), tt.wantLen)
			}
			if totalPages != tt.wantPages {
				t.Errorf("totalPages = %d, want %d", totalPages, tt.wantPages)
			}
			if tt.wantLen > 0 && items[0].ID != tt.wantFirst {
				t.Errorf("first ID = %d, want %d", items[0].ID, tt.wantFirst)
			}
		})
	}

	t.Run("empty list", func(t *testing.T) {
		items, totalPages := PaginateGifts(nil, 1, 12)
		if len(items) != 0 || totalPages != 0 {
			t.Errorf("got %d items, %d pages, want 0 and 0", len(items), totalPages)
		}
	})
}

func TestStoreNames(t *testing.T) {
	got := StoreNames(sampleGifts())
	want := []string{"Amazon", "Magalu"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestListGiftsHandler(t *testing.T) {
	prev := Catalog
	defer func() { Catalog = prev }()

	Catalog = NewGiftCache(func() ([]models.Gift, error) {
		return sampleGifts(), nil
	}, defaultPollInterval)
	if err := Catalog.Refresh(); err != nil {
		t.Fatalf("refresh: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/v1/gifts?store=Amazon&price_range=0-100", nil)
	rr := httptest.NewRecorder()
	ListGiftsHandler(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}

	var resp utils.APIResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !resp.Success {
		t.Fatalf("expected success, got %+v", resp)
	}
	data, ok := resp.Data.(map[string]interface{})
	if !ok {
		t.Fatalf("data is %T, want map", resp.Data)
	}
	if total, _ := data["total"].(float64); total != 1 {
		t.Errorf("total = %v, want 1", data["total"])
	}
	if ap, _ := data["all_purchased"].(bool); ap {
		t.Error("all_purchased should be false while gifts remain")
	}
	stores, _ := data["stores"].([]interface{})
	if len(stores) != 2 {
		t.Errorf("stores = %v, want 2 entries", stores)
	}
}

func TestListGiftsHandlerAllPurchased(t *testing.T) {
	prev := Catalog
	defer func() { Catalog = prev }()

	Catalog = NewGiftCache(func() ([]models.Gift, error) {
		return []models.Gift{
			{ID: 1, Name: "Cafeteira", Purchased: true},
			{ID: 2, Name: "Liquidificador", Purchased: true},
		}, nil
	}, defaultPollInterval)
	if err := Catalog.Refresh(); err != nil {
		t.Fatalf("refresh: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/v1/gifts", nil)
	rr := httptest.NewRecorder()
	ListGiftsHandler(rr, req)

	var resp utils.APIResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	data := resp.Data.(map[string]interface{})
	if ap, _ := data["all_purchased"].(bool); !ap {
		t.Error("all_purchased should be true when every gift is taken")
	}
	if total, _ := data["total"].(float64); total != 0 {
		t.Errorf("total = %v, want 0", data["total"])
	}
}
