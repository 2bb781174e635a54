package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"

	"sportclash/internal/models"
)

// validate is shared by all handlers; validator instances cache struct
// metadata and are safe for concurrent use.
var validate = validator.New()

const dateLayout = "2006-01-02"

// decodeAndValidate decodes a JSON request body into dst and runs its
// validator tags. Returns a ValidationError suitable for a 400 response.
func decodeAndValidate(r *http.Request, dst interface{}) error {
	decoder := json.NewDecoder(r.Body)
	if err := decoder.Decode(dst); err != nil {
		return models.ValidationError{Field: "body", Message: "invalid JSON"}
	}
	if err := validate.Struct(dst); err != nil {
		var errs validator.ValidationErrors
		if ok := asValidationErrors(err, &errs); ok && len(errs) > 0 {
			first := errs[0]
			return models.ValidationError{
				Field:   first.Field(),
				Message: fmt.Sprintf("failed %s validation", first.Tag()),
			}
		}
		return models.ValidationError{Field: "body", Message: err.Error()}
	}
	return nil
}

func asValidationErrors(err error, target *validator.ValidationErrors) bool {
	if errs, ok := err.(validator.ValidationErrors); ok {
		*target = errs
		return true
	}
	return false
}

// pathID parses the {id} path segment of a request
func pathID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, models.ValidationError{Field: "id", Message: "invalid id in path"}
	}
	return id, nil
}

// parseDate parses a calendar date in YYYY-MM-DD form; empty means today
func parseDate(value string) (time.Time, error) {
	if value == "" {
		now := time.Now().UTC()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC), nil
	}
	date, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, models.ValidationError{Field: "date", Message: "expected YYYY-MM-DD"}
	}
	return date, nil
}
