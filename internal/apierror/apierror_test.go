package apierror

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMessageTable(t *testing.T) {
	assert.Equal(t, "Bad Request", Message(http.StatusBadRequest))
	assert.Equal(t, "Resource Not Found", Message(http.StatusNotFound))
	assert.Equal(t, "Method Not Allowed", Message(http.StatusMethodNotAllowed))
	assert.Equal(t, "Unprocessable Entity", Message(http.StatusUnprocessableEntity))
	assert.Equal(t, "Internal Server Error", Message(http.StatusInternalServerError))
	assert.Equal(t, "Gateway Timeout", Message(http.StatusGatewayTimeout))

	// Statuses outside the table fall back to the standard phrase.
	assert.Equal(t, http.StatusText(http.StatusTeapot), Message(http.StatusTeapot))
}

func TestStatusMapsWrappedSentinels(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, Status(fmt.Errorf("payload: %w", ErrBadRequest)))
	assert.Equal(t, http.StatusNotFound, Status(fmt.Errorf("question 7: %w", ErrNotFound)))
	assert.Equal(t, http.StatusUnprocessableEntity, Status(fmt.Errorf("insert: %w", ErrUnprocessable)))
	assert.Equal(t, http.StatusInternalServerError, Status(fmt.Errorf("boom")))
}
