package server

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/xmanojpx/SkillLens/internal/catalog"
	"github.com/xmanojpx/SkillLens/internal/graph"
	"github.com/xmanojpx/SkillLens/internal/scoring"
)

// HTTPStatus returns the appropriate HTTP status code for an engine error.
func HTTPStatus(err error) int {
	var roleErr *catalog.UnknownRoleError
	var skillErr *graph.UnknownSkillError
	var weightErr *scoring.InvalidWeightError
	var fieldErrs validator.ValidationErrors

	switch {
	case errors.As(err, &roleErr), errors.As(err, &skillErr):
		return http.StatusNotFound
	case errors.As(err, &fieldErrs):
		return http.StatusBadRequest
	case errors.As(err, &weightErr):
		// Weights come from server configuration, not the request.
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}
