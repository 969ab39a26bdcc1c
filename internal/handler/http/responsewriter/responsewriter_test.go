package responsewriter_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"pressroom/internal/handler/http/responsewriter"
)

func TestWrap_RecordsStatusAndSize(t *testing.T) {
	rr := httptest.NewRecorder()
	w := responsewriter.Wrap(rr)

	w.WriteHeader(http.StatusNotFound)
	n, err := w.Write([]byte(`{"error":"article not found"}`))

	assert.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, w.StatusCode())
	assert.Equal(t, n, w.BytesWritten())
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestWrap_ImplicitOK(t *testing.T) {
	rr := httptest.NewRecorder()
	w := responsewriter.Wrap(rr)

	_, _ = w.Write([]byte("[]"))

	assert.Equal(t, http.StatusOK, w.StatusCode())
	assert.Equal(t, 2, w.BytesWritten())
}

func TestWrap_SecondWriteHeaderIgnored(t *testing.T) {
	rr := httptest.NewRecorder()
	w := responsewriter.Wrap(rr)

	w.WriteHeader(http.StatusInternalServerError)
	w.WriteHeader(http.StatusOK)

	assert.Equal(t, http.StatusInternalServerError, w.StatusCode())
}

func TestWrap_Unwrap(t *testing.T) {
	rr := httptest.NewRecorder()
	w := responsewriter.Wrap(rr)
	assert.Equal(t, http.ResponseWriter(rr), w.Unwrap())
}
