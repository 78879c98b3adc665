package recommend

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"proman-recommender/internal/tasks"
)

// RecommendHandler serves GET /recommend: every task in the store, ranked,
// as a JSON array of at most DefaultLimit items.
func RecommendHandler(store tasks.Store, engine *Engine, clock func() time.Time) http.HandlerFunc {
	if clock == nil {
		clock = time.Now
	}
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}

		records, err := store.ListTasks(r.Context())
		if err != nil {
			log.Printf("[WARN] list tasks failed: %v", err)
			http.Error(w, "db error", http.StatusInternalServerError)
			return
		}

		recommended := engine.Rank(records, clock())

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(recommended); err != nil {
			log.Printf("[WARN] encode recommendations failed: %v", err)
		}
	}
}

