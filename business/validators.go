package business

import (
	"strings"

	"bitbucket.org/mmdatafocus/dynamics_connector/result"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// validateAll checks every item and aggregates all failures into one
// newline-joined message; a single invalid item fails the whole batch.
func validateAll[T any](items []T) result.Result[result.Unit] {
	var messages []string
	for _, item := range items {
		if err := validate.Struct(item); err != nil {
			messages = append(messages, err.Error())
		}
	}
	if len(messages) > 0 {
		return result.ErrUnit(strings.Join(messages, "\n"))
	}
	return result.OkUnit()
}
