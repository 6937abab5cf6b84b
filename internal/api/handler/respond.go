package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/cafe-nour/cafe-service/internal/api"
)

var validate = validator.New()

func respondJSON(w http.ResponseWriter, v interface{}) {
	api.RespondJSON(w, v)
}

func respondCreated(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(v)
}

// decodeAndValidate decodes the request body into req and runs struct
// validation. On failure it writes the 400 response and returns false, so
// no service call happens for an invalid request.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, req interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		api.BadRequest(w, "Requête invalide")
		return false
	}
	if err := validate.Struct(req); err != nil {
		api.BadRequest(w, "Champs manquants ou invalides")
		return false
	}
	return true
}
