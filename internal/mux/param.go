package mux

import (
	"fmt"
	"hobbitname-server/pkg/queryparam"
	"net/http"

	gmux "github.com/gorilla/mux"
)

type paramResponse struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// getParam echoes a single parameter of the request's own query string
func (m *Mux) getParam() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := gmux.Vars(r)["name"]
		val, ok := queryparam.Get(r.URL.RawQuery, name)
		if !ok {
			writeJSONError(w, http.StatusNotFound, fmt.Errorf("parameter %q not found", name))
			return
		}

		writeJSON(w, http.StatusOK, paramResponse{Name: name, Value: val})
	}
}
