package line_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/diegoclair/daily-commit-bot/internal/domain/apperr"
	"github.com/diegoclair/daily-commit-bot/internal/line"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type capturedRequest struct {
	Path          string
	Authorization string
	Body          map[string]any
}

func newLineServer(t *testing.T, status int, captured *[]capturedRequest) *httptest.Server {
	t.Helper()

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, err := io.ReadAll(r.Body)
		assert.NoError(t, err)

		var body map[string]any
		assert.NoError(t, json.Unmarshal(raw, &body))

		*captured = append(*captured, capturedRequest{
			Path:          r.URL.Path,
			Authorization: r.Header.Get("Authorization"),
			Body:          body,
		})

		w.WriteHeader(status)
		w.Write([]byte(`{}`))
	}))
}

func TestNotifier_Push(t *testing.T) {
	var captured []capturedRequest
	server := newLineServer(t, http.StatusOK, &captured)
	defer server.Close()

	n := line.NewNotifier(server.URL+"/", "line-token", server.Client())
	err := n.Push(context.Background(), "U123", "hello")

	require.NoError(t, err)
	require.Len(t, captured, 1)
	assert.Equal(t, "/v2/bot/message/push", captured[0].Path)
	assert.Equal(t, "Bearer line-token", captured[0].Authorization)
	assert.Equal(t, "U123", captured[0].Body["to"])
	assert.Equal(t, []any{map[string]any{"type": "text", "text": "hello"}}, captured[0].Body["messages"])
}

func TestNotifier_Reply(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		wantCode string
	}{
		{
			name:   "Should send the reply token",
			status: http.StatusOK,
		},
		{
			name:     "Should report rejected replies",
			status:   http.StatusBadRequest,
			wantCode: apperr.UpstreamRejected,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var captured []capturedRequest
			server := newLineServer(t, tt.status, &captured)
			defer server.Close()

			n := line.NewNotifier(server.URL, "line-token", server.Client())
			err := n.Reply(context.Background(), "reply-token-1", "hi")

			require.Len(t, captured, 1)
			assert.Equal(t, "/v2/bot/message/reply", captured[0].Path)
			assert.Equal(t, "reply-token-1", captured[0].Body["replyToken"])

			if tt.wantCode != "" {
				require.Error(t, err)
				assert.True(t, apperr.Is(err, tt.wantCode))
				return
			}
			require.NoError(t, err)
		})
	}
}
