package yandex

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"yatranslator/internal/domain"
	"yatranslator/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Translate(t *testing.T) {
	tests := []struct {
		name          string
		status        int
		body          string
		expectedText  string
		expectedCode  int
		expectedError bool
	}{
		{
			name:         "success",
			status:       http.StatusOK,
			body:         `{"code":200,"lang":"en-es","text":["Hola"]}`,
			expectedText: "Hola",
		},
		{
			name:         "only first segment is used",
			status:       http.StatusOK,
			body:         `{"code":200,"lang":"en-es","text":["Hola","mundo"]}`,
			expectedText: "Hola",
		},
		{
			name:          "provider error in body",
			status:        http.StatusOK,
			body:          `{"code":402}`,
			expectedCode:  402,
			expectedError: true,
		},
		{
			name:          "provider error with http status",
			status:        http.StatusForbidden,
			body:          `{"code":401,"message":"API key is invalid"}`,
			expectedCode:  401,
			expectedError: true,
		},
		{
			name:          "malformed response",
			status:        http.StatusOK,
			body:          `<html>oops</html>`,
			expectedError: true,
		},
		{
			name:          "ok without text",
			status:        http.StatusOK,
			body:          `{"code":200,"text":[]}`,
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodGet, r.Method)
				assert.Equal(t, "secret", r.URL.Query().Get("key"))
				assert.Equal(t, "hello world", r.URL.Query().Get("text"))
				assert.Equal(t, "en-es", r.URL.Query().Get("lang"))

				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			client := NewClient(srv.Client(), srv.URL+"/api/v1.5/tr.json/translate", "secret", testutil.NewTestLogger())

			text, err := client.Translate(context.Background(), "hello world", domain.Direction{From: "en", To: "es"})

			if !tt.expectedError {
				require.NoError(t, err)
				assert.Equal(t, tt.expectedText, text)
				return
			}

			require.Error(t, err)
			assert.Empty(t, text)

			var providerErr *domain.ProviderError
			if tt.expectedCode != 0 {
				require.True(t, errors.As(err, &providerErr))
				assert.Equal(t, tt.expectedCode, providerErr.Code)
			} else {
				assert.False(t, errors.As(err, &providerErr))
			}
		})
	}
}

func TestClient_Translate_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	client := NewClient(nil, url, "secret", testutil.NewTestLogger())

	text, err := client.Translate(context.Background(), "hello", domain.Direction{From: "en", To: "ru"})

	assert.Error(t, err)
	assert.Empty(t, text)
	var providerErr *domain.ProviderError
	assert.False(t, errors.As(err, &providerErr))
}

func TestClient_Translate_EscapesText(t *testing.T) {
	var got string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.URL.Query().Get("text")
		w.Write([]byte(`{"code":200,"text":["ok"]}`))
	}))
	defer srv.Close()

	client := NewClient(srv.Client(), srv.URL, "secret", testutil.NewTestLogger())

	_, err := client.Translate(context.Background(), "a&b=c?д", domain.Direction{From: "ru", To: "en"})

	require.NoError(t, err)
	assert.Equal(t, "a&b=c?д", got)
}
