package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"strconv"

	"kings-crust-service/internal/domain"
)

var (
	errLatLonPair    = errors.New("lat and lon must be supplied together")
	errLatLonInvalid = errors.New("lat and lon must be decimal degrees")
)

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encode failed: method=%s path=%s err=%v", r.Method, r.URL.Path, err)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	writeJSON(w, r, status, map[string]string{"error": msg})
}

// decodeBody decodes exactly one JSON object from the request body into dst.
// Unknown fields and trailing content are rejected. On failure a 400 is
// written and false returned.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return false
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return false
	}

	return true
}

// userLocation reads the optional lat/lon query parameters. Both must be
// supplied together; absence of both means the caller's location is unknown
// (permission denied or unavailable), which is not an error.
func userLocation(r *http.Request) (*domain.Coordinates, error) {
	latStr := r.URL.Query().Get("lat")
	lonStr := r.URL.Query().Get("lon")

	if latStr == "" && lonStr == "" {
		return nil, nil
	}
	if latStr == "" || lonStr == "" {
		return nil, errLatLonPair
	}

	lat, err := strconv.ParseFloat(latStr, 64)
	if err != nil {
		return nil, errLatLonInvalid
	}
	lon, err := strconv.ParseFloat(lonStr, 64)
	if err != nil {
		return nil, errLatLonInvalid
	}

	return &domain.Coordinates{Lat: lat, Lon: lon}, nil
}
