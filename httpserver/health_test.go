package httpserver_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHealthcheck(t *testing.T) {
	// Arrange
	server := newTestServer()

	// Act
	recorder := serve(server, httptest.NewRequest(http.MethodGet, "/healthcheck", nil))

	// Assert
	assert.Equal(t, http.StatusOK, recorder.Code)

	var body map[string]string
	decodeJSON(t, recorder, &body)
	assert.Equal(t, "OK", body["status"])
}
