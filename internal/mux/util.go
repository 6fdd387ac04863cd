package mux

import (
	"encoding/json"
	"errors"
	"fmt"
	"hobbitname-server/pkg/namegen"
	"hobbitname-server/pkg/queryparam"
	"net/http"
	"strconv"

	"github.com/sirupsen/logrus"
)

// queryValue returns the decoded query parameter, or an empty string if absent.
// A value that cannot be decoded is an error.
func queryValue(r *http.Request, name string) (string, error) {
	val, err := queryparam.Parse(r.URL.RawQuery, name)
	if errors.Is(err, queryparam.ErrNotFound) {
		return "", nil
	}

	if err != nil {
		return "", fmt.Errorf("could not decode %s: %w", name, err)
	}

	return val, nil
}

func (m *Mux) parseCount(r *http.Request) (int, error) {
	countStr, err := queryValue(r, "count")
	if err != nil {
		return 0, err
	}

	if countStr == "" {
		return 1, nil
	}

	val, err := strconv.Atoi(countStr)
	if err != nil {
		return 0, errors.New("count must be a number")
	}

	if val < 1 {
		return 0, errors.New("count must be greater than zero")
	}

	if val > m.config.maxBatch {
		return 0, fmt.Errorf("count cannot be greater than %d", m.config.maxBatch)
	}

	return val, nil
}

func writeJSON(w http.ResponseWriter, statusCode int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logrus.WithError(err).Error("could not write JSON response")
	}
}

type errorResponse struct {
	Message    string `json:"message"`
	StatusCode int    `json:"statusCode"`
}

// if err is an invalid argument, treat as 400, otherwise treat as a 500
func writeGeneratorError(w http.ResponseWriter, err error) {
	if errors.Is(err, namegen.ErrInvalidArgument) {
		writeJSONError(w, http.StatusBadRequest, err)
		return
	}

	writeJSONError(w, http.StatusInternalServerError, err)
}

func writeJSONError(w http.ResponseWriter, statusCode int, err error) {
	var msg string

	if statusCode < 500 && err != nil {
		msg = err.Error()
	} else {
		msg = http.StatusText(statusCode)
	}

	if statusCode >= 500 {
		logrus.WithField("statusCode", statusCode).Error(err)
	}

	writeJSON(w, statusCode, errorResponse{
		Message:    msg,
		StatusCode: statusCode,
	})
}
