package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeError(w http.ResponseWriter, status int, message string) {
	code := strings.ToLower(strings.ReplaceAll(http.StatusText(status), " ", "_"))
	writeJSON(w, status, errorResponse{Code: code, Message: message})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// decodeJSON parses the request body into dst and runs its validate tags.
// The returned error message is safe to show to clients.
func decodeJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return errors.New("invalid JSON payload")
	}
	if err := validate.Struct(dst); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			e := fieldErrs[0]
			return fmt.Errorf("%s failed %s validation", strings.ToLower(e.Field()), e.Tag())
		}
		return errors.New("invalid payload")
	}
	return nil
}

// validationMessage strips the sentinel prefix from wrapped input errors so
// clients see "distance must be non-negative" rather than "invalid input: ...".
func validationMessage(err error) string {
	message := err.Error()
	if idx := strings.Index(message, ":"); idx >= 0 {
		message = strings.TrimSpace(message[idx+1:])
	}
	return message
}
