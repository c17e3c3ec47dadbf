// Package apperr holds the error taxonomy shared by the provider clients, the
// scheduler and the HTTP handlers.
package apperr

import (
	"net/http"

	goerrors "github.com/goliatone/go-errors"
)

const (
	UpstreamUnavailable  = "UPSTREAM_UNAVAILABLE"
	UpstreamRejected     = "UPSTREAM_REJECTED"
	MalformedResponse    = "MALFORMED_RESPONSE"
	ConfigurationMissing = "CONFIGURATION_MISSING"
	ReplyUnsupported     = "REPLY_UNSUPPORTED"
	Internal             = "INTERNAL_ERROR"
)

// Unavailable reports a transport failure reaching an external provider.
func Unavailable(source error, provider string) error {
	return goerrors.Wrap(source, goerrors.CategoryExternal, provider+": request failed").
		WithCode(http.StatusServiceUnavailable).
		WithTextCode(UpstreamUnavailable).
		WithMetadata(map[string]any{"provider": provider})
}

// Rejected reports a non-success HTTP status from an external provider.
func Rejected(provider string, statusCode int, body string) error {
	return goerrors.New(provider+": upstream rejected request", goerrors.CategoryExternal).
		WithCode(http.StatusBadGateway).
		WithTextCode(UpstreamRejected).
		WithMetadata(map[string]any{
			"provider":    provider,
			"status_code": statusCode,
			"body":        truncate(body, 512),
		})
}

// Malformed reports a provider payload that does not match the expected shape.
func Malformed(source error, provider, message string) error {
	meta := map[string]any{"provider": provider}
	if source == nil {
		return goerrors.New(provider+": "+message, goerrors.CategoryBadInput).
			WithCode(http.StatusBadGateway).
			WithTextCode(MalformedResponse).
			WithMetadata(meta)
	}
	return goerrors.Wrap(source, goerrors.CategoryBadInput, provider+": "+message).
		WithCode(http.StatusBadGateway).
		WithTextCode(MalformedResponse).
		WithMetadata(meta)
}

// Missing reports an absent or invalid configuration value.
func Missing(message string) error {
	return goerrors.New(message, goerrors.CategoryValidation).
		WithCode(http.StatusInternalServerError).
		WithTextCode(ConfigurationMissing)
}

// NoReply is returned by notification backends that can only push.
func NoReply(backend string) error {
	return goerrors.New(backend+": reply delivery is not supported", goerrors.CategoryOperation).
		WithCode(http.StatusNotImplemented).
		WithTextCode(ReplyUnsupported)
}

// Is reports whether err carries the given text code.
func Is(err error, textCode string) bool {
	return TextCode(err) == textCode
}

func TextCode(err error) string {
	if err == nil {
		return ""
	}
	var rich *goerrors.Error
	if goerrors.As(err, &rich) && rich.TextCode != "" {
		return rich.TextCode
	}
	return Internal
}

// StatusCode maps err to the HTTP status a handler should answer with.
func StatusCode(err error) int {
	var rich *goerrors.Error
	if goerrors.As(err, &rich) && rich.Code != 0 {
		return rich.Code
	}
	return http.StatusInternalServerError
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
