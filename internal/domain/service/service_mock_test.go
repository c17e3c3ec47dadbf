package service

import (
	"io"
	"testing"

	"github.com/diegoclair/daily-commit-bot/mocks"
	"github.com/sirupsen/logrus"
	"go.uber.org/mock/gomock"
)

type allMocks struct {
	mockCalendar   *mocks.MockCalendarClient
	mockNotifier   *mocks.MockNotifier
	mockDeliveries *mocks.MockDeliveryRepo
	mockChecker    *mocks.MockChecker
	mockDispatcher *mocks.MockDispatcher
}

func newServiceTestMock(t *testing.T) (m allMocks, ctrl *gomock.Controller) {
	t.Helper()

	ctrl = gomock.NewController(t)

	m = allMocks{
		mockCalendar:   mocks.NewMockCalendarClient(ctrl),
		mockNotifier:   mocks.NewMockNotifier(ctrl),
		mockDeliveries: mocks.NewMockDeliveryRepo(ctrl),
		mockChecker:    mocks.NewMockChecker(ctrl),
		mockDispatcher: mocks.NewMockDispatcher(ctrl),
	}

	return
}

func newTestLogger() *logrus.Entry {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logrus.NewEntry(logger)
}
