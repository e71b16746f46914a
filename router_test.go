package weetools_test

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	weetools "github.com/dracory/weetools"
)

func TestNewRouter(t *testing.T) {
	var gotReqID string
	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotReqID = weetools.GetRequestID(r.Context())
		weetools.Text(w, http.StatusOK, "ok")
	})

	router := weetools.NewRouter("/api/", h)

	req := httptest.NewRequest("GET", "/api/", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "nosniff", rr.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", rr.Header().Get("X-Frame-Options"))
	assert.NotEmpty(t, rr.Header().Get("X-Request-Id"))
	assert.Equal(t, rr.Header().Get("X-Request-Id"), gotReqID)
}

func TestRegister_AddsLeadingSlash(t *testing.T) {
	mux := http.NewServeMux()
	weetools.Register(mux, "things", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		weetools.Status(w, http.StatusNoContent)
	}))

	req := httptest.NewRequest("GET", "/things", nil)
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNoContent, rr.Code)
}

func TestGetRequestID_Missing(t *testing.T) {
	assert.Empty(t, weetools.GetRequestID(context.Background()))
}

func TestParseBody_JSON(t *testing.T) {
	req := httptest.NewRequest("POST", "/", strings.NewReader(`{"title":"x","count":2}`))
	req.Header.Set("Content-Type", "application/json")

	got, err := weetools.ParseBody(req)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"title": "x", "count": float64(2)}, got)
}

func TestParseBody_JSONInvalid(t *testing.T) {
	req := httptest.NewRequest("POST", "/", strings.NewReader(`{"title":`))
	req.Header.Set("Content-Type", "application/json; charset=utf-8")

	_, err := weetools.ParseBody(req)
	assert.Error(t, err)
}

func TestParseBody_Form(t *testing.T) {
	form := url.Values{}
	form.Add("title", "x")
	form.Add("tag", "a")
	form.Add("tag", "b")
	req := httptest.NewRequest("POST", "/", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	got, err := weetools.ParseBody(req)
	require.NoError(t, err)
	assert.Equal(t, "x", got["title"], "single values collapse to strings")
	assert.Equal(t, []string{"a", "b"}, got["tag"])
}

func TestParseBody_Multipart(t *testing.T) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("title", "x"))
	require.NoError(t, mw.Close())

	req := httptest.NewRequest("POST", "/", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())

	got, err := weetools.ParseBody(req)
	require.NoError(t, err)
	assert.Equal(t, "x", got["title"])
}
