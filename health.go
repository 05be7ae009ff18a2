package fareplanner

import (
	"encoding/json"
	"net/http"
)

type healthResponse struct {
	Status      string `json:"status"`
	GeneratedAt string `json:"generated_at"`
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	resp := healthResponse{
		Status:      "ok",
		GeneratedAt: iso8601Now(),
	}
	_ = json.NewEncoder(w).Encode(resp)
}
