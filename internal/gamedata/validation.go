package gamedata

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/MKhiriev/game-stats/models"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// validateResponse checks every record of resp and reports all violations
// at once, e.g. "statistics[2].player.uuid is required".
func validateResponse(resp *ListPlayerStatisticsResponse) error {
	var msgs []string

	if err := validate.Struct(resp); err != nil {
		var validationErrs validator.ValidationErrors
		if !errors.As(err, &validationErrs) {
			return fmt.Errorf("%w: %w", ErrInvalidPlayerRecord, err)
		}
		for _, fe := range validationErrs {
			msgs = append(msgs, formatFieldError(fe))
		}
	}

	msgs = append(msgs, duplicatePlayers(resp.Statistics)...)
	if len(msgs) == 0 {
		return nil
	}

	return fmt.Errorf("%w: %s", ErrInvalidPlayerRecord, strings.Join(msgs, "; "))
}

// duplicatePlayers reports records repeating the UUID of an earlier record.
// A single upsert statement cannot touch the same row twice. Nil UUIDs are
// left to the required check.
func duplicatePlayers(stats []models.PlayerStatistics) []string {
	var msgs []string
	first := make(map[uuid.UUID]int, len(stats))
	for i, s := range stats {
		if s.Player.UUID == uuid.Nil {
			continue
		}
		if j, seen := first[s.Player.UUID]; seen {
			msgs = append(msgs, fmt.Sprintf("statistics[%d].player.uuid duplicates statistics[%d]", i, j))
			continue
		}
		first[s.Player.UUID] = i
	}

	return msgs
}

func formatFieldError(fe validator.FieldError) string {
	_, field, _ := strings.Cut(fe.Namespace(), ".")

	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "max":
		return field + " must be at most " + fe.Param()
	default:
		return field + " is invalid"
	}
}
