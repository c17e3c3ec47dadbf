package test

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/diegoclair/daily-commit-bot/internal/handlers"
	"github.com/diegoclair/daily-commit-bot/internal/line"
	"github.com/diegoclair/daily-commit-bot/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const ChannelSecret = "test-channel-secret"

type ServiceMocks struct {
	CheckerMock    *mocks.MockChecker
	DispatcherMock *mocks.MockDispatcher
	DeliveryMock   *mocks.MockDeliveryRepo
	SchedulerMock  *mocks.MockSchedulerStatus
}

func GetHandlerTest(t *testing.T) (m ServiceMocks, handler *handlers.Handler, ctrl *gomock.Controller) {
	t.Helper()

	ctrl = gomock.NewController(t)
	m = ServiceMocks{
		CheckerMock:    mocks.NewMockChecker(ctrl),
		DispatcherMock: mocks.NewMockDispatcher(ctrl),
		DeliveryMock:   mocks.NewMockDeliveryRepo(ctrl),
		SchedulerMock:  mocks.NewMockSchedulerStatus(ctrl),
	}

	handler = handlers.New(m.CheckerMock, m.DispatcherMock, m.DeliveryMock, m.SchedulerMock, ChannelSecret, NewLogger())

	return
}

// NewLogger returns a logger that discards its output
func NewLogger() *logrus.Entry {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logrus.NewEntry(logger)
}

// CreateWebhookRequest creates a webhook request signed with ChannelSecret
func CreateWebhookRequest(t *testing.T, body string) *http.Request {
	t.Helper()

	req, err := http.NewRequest(http.MethodPost, "/webhook", bytes.NewBufferString(body))
	require.NoError(t, err)

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(line.SignatureHeader, GenerateLineSignature(ChannelSecret, body))

	return req
}

// GenerateLineSignature signs body the way the LINE platform does
func GenerateLineSignature(channelSecret, body string) string {
	h := hmac.New(sha256.New, []byte(channelSecret))
	h.Write([]byte(body))
	return base64.StdEncoding.EncodeToString(h.Sum(nil))
}

// Serve routes req through a mux with every handler registered
func Serve(handler *handlers.Handler, req *http.Request) *httptest.ResponseRecorder {
	mux := http.NewServeMux()
	handler.Register(mux)

	recorder := httptest.NewRecorder()
	mux.ServeHTTP(recorder, req)
	return recorder
}
