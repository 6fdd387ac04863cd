package mux

import (
	"hobbitname-server/pkg/namepool"
	"net/http"

	gmux "github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	cache "github.com/victorspringer/http-cache"
	"github.com/victorspringer/http-cache/adapter/memory"
)

type poolResponse struct {
	Category string   `json:"category"`
	Names    []string `json:"names"`
}

func (m *Mux) getPool() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		category, err := namepool.ParseCategory(gmux.Vars(r)["category"])
		if err != nil {
			writeJSONError(w, http.StatusNotFound, err)
			return
		}

		writeJSON(w, http.StatusOK, poolResponse{
			Category: category.String(),
			Names:    namepool.Pool(category),
		})
	}
}

// poolCache caches successful pool responses in memory
func (m *Mux) poolCache(next http.Handler) http.Handler {
	if m.config.poolCacheTTL <= 0 {
		return next
	}

	adapter, err := memory.NewAdapter(
		memory.AdapterWithAlgorithm(memory.LRU),
		memory.AdapterWithCapacity(len(namepool.Categories())*4),
	)
	if err != nil {
		logrus.WithError(err).Error("could not create pool cache adapter")
		return next
	}

	client, err := cache.NewClient(
		cache.ClientWithAdapter(adapter),
		cache.ClientWithTTL(m.config.poolCacheTTL),
	)
	if err != nil {
		logrus.WithError(err).Error("could not create pool cache client")
		return next
	}

	return client.Middleware(next)
}
