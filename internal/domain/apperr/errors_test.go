package apperr_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/diegoclair/daily-commit-bot/internal/domain/apperr"
	"github.com/stretchr/testify/assert"
)

func TestTaxonomy(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantCode   string
		wantStatus int
	}{
		{
			name:       "Should classify transport failures as unavailable",
			err:        apperr.Unavailable(errors.New("dial tcp: refused"), "github"),
			wantCode:   apperr.UpstreamUnavailable,
			wantStatus: http.StatusServiceUnavailable,
		},
		{
			name:       "Should classify non-success status as rejected",
			err:        apperr.Rejected("line", http.StatusUnauthorized, "invalid token"),
			wantCode:   apperr.UpstreamRejected,
			wantStatus: http.StatusBadGateway,
		},
		{
			name:       "Should classify payload mismatch as malformed",
			err:        apperr.Malformed(nil, "github", "user not found in response"),
			wantCode:   apperr.MalformedResponse,
			wantStatus: http.StatusBadGateway,
		},
		{
			name:       "Should classify configuration problems",
			err:        apperr.Missing("GITHUB_TOKEN is required"),
			wantCode:   apperr.ConfigurationMissing,
			wantStatus: http.StatusInternalServerError,
		},
		{
			name:       "Should survive fmt wrapping",
			err:        fmt.Errorf("check: %w", apperr.NoReply("sns")),
			wantCode:   apperr.ReplyUnsupported,
			wantStatus: http.StatusNotImplemented,
		},
		{
			name:       "Should treat plain errors as internal",
			err:        errors.New("boom"),
			wantCode:   apperr.Internal,
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantCode, apperr.TextCode(tt.err))
			assert.True(t, apperr.Is(tt.err, tt.wantCode))
			assert.Equal(t, tt.wantStatus, apperr.StatusCode(tt.err))
		})
	}

	assert.Empty(t, apperr.TextCode(nil))
}
