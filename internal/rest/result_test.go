package rest

import (
	"net/http"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvelopes(t *testing.T) {
	tests := []struct {
		name       string
		res        *Response
		wantStatus int
		wantBody   string
	}{
		{"created", Created(map[string]string{"name": "Widget"}), http.StatusCreated, `{"data": {"name": "Widget"}}`},
		{"ok list", OK([]int{1, 2, 3}), http.StatusOK, `{"data": [1, 2, 3]}`},
		{"ok scalar", OK("pong"), http.StatusOK, `{"data": "pong"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantStatus, tt.res.Status)
			b, err := json.Marshal(tt.res.Body)
			require.NoError(t, err)
			assert.JSONEq(t, tt.wantBody, string(b))
		})
	}

	noContent := NoContent()
	assert.Equal(t, http.StatusNoContent, noContent.Status)
	assert.Nil(t, noContent.Body)
}

func TestWrap(t *testing.T) {
	wrapped := Wrap(struct {
		ID int `json:"id"`
	}{ID: 7})

	b, err := json.Marshal(wrapped)
	require.NoError(t, err)
	assert.JSONEq(t, `{"data": {"id": 7}}`, string(b))
}
