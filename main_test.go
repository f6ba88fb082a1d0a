package main

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreateRouter(t *testing.T) {

	t.Run("ServesLivenessAndReadiness", func(t *testing.T) {

		router := createRouter()

		for _, path := range []string{"/liveness", "/readiness"} {

			recorder := httptest.NewRecorder()
			request := httptest.NewRequest("GET", path, nil)

			// act
			router.ServeHTTP(recorder, request)

			assert.Equal(t, http.StatusOK, recorder.Code)
		}
	})

	t.Run("ReturnsNotFoundForUnknownRoute", func(t *testing.T) {

		router := createRouter()

		recorder := httptest.NewRecorder()
		request := httptest.NewRequest("GET", "/does-not-exist", nil)

		// act
		router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})
}
