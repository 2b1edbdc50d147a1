package utils

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAPIErrorStatuses(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, StatusOf(NewValidationError("bad")))
	assert.Equal(t, http.StatusNotFound, StatusOf(NewNotFoundError("missing")))
	assert.Equal(t, http.StatusForbidden, StatusOf(NewForbiddenError("nope")))
	assert.Equal(t, http.StatusConflict, StatusOf(NewConflictError("taken")))
}

func TestUnexpectedErrorsAreMasked(t *testing.T) {
	dbErr := errors.New("pq: connection refused")

	assert.Equal(t, http.StatusInternalServerError, StatusOf(dbErr))
	assert.Equal(t, "Internal server error", MessageOf(dbErr))
}

func TestWrappedAPIErrorUnwraps(t *testing.T) {
	wrapped := fmt.Errorf("create idea: %w", NewConflictError("Title is already taken"))

	assert.Equal(t, http.StatusConflict, StatusOf(wrapped))
	assert.Equal(t, "Title is already taken", MessageOf(wrapped))
}
