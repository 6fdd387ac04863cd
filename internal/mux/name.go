package mux

import (
	"hobbitname-server/pkg/namegen"
	"net/http"
)

type nameResponse struct {
	Names []string `json:"names"`
}

func (m *Mux) getName() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		genderStr, err := queryValue(r, "gender")
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, err)
			return
		}

		gender, err := namegen.ParseGender(genderStr)
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, err)
			return
		}

		count, err := m.parseCount(r)
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, err)
			return
		}

		names, err := m.generator.GenerateN(gender, count)
		if err != nil {
			writeGeneratorError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, nameResponse{Names: names})
	}
}
