package validators

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	dto "taskflow.com/taskflow/internal/data_models"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

func ValidateCreateTaskRequest(r *dto.CreateTaskRequest) error {
	if err := validate.Struct(r); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, firstViolation(err))
	}
	return nil
}

func ValidateUpdateTaskRequest(r *dto.UpdateTaskRequest) error {
	if err := validate.Struct(r); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, firstViolation(err))
	}
	return nil
}

func firstViolation(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return "invalid request"
	}

	field := verrs[0]
	switch field.Tag() {
	case "required":
		return field.Field() + " is required"
	case "oneof":
		return field.Field() + " must be one of " + field.Param()
	case "uuid4":
		return field.Field() + " must be a valid uuid"
	default:
		return field.Field() + " is invalid"
	}
}
