package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type MockGateway struct {
	mock.Mock
}

func (m *MockGateway) Upload(ctx context.Context, dataURI, folder string) (string, error) {
	args := m.Called(ctx, dataURI, folder)
	return args.String(0), args.Error(1)
}

func (m *MockGateway) Delete(ctx context.Context, assetID string) error {
	args := m.Called(ctx, assetID)
	return args.Error(0)
}

func (m *MockGateway) ResolveDownloadURL(ctx context.Context, assetURL string) string {
	args := m.Called(ctx, assetURL)
	return args.String(0)
}
