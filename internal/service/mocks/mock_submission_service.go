package mocks

import (
	"context"
	"mime/multipart"

	"leadintake/internal/service"

	"github.com/stretchr/testify/mock"
)

type MockSubmissionService struct {
	mock.Mock
}

func (m *MockSubmissionService) SubmitClientInformation(ctx context.Context, form *multipart.Form) error {
	args := m.Called(ctx, form)
	return args.Error(0)
}

func (m *MockSubmissionService) SubmitPartnerApplication(ctx context.Context, form *multipart.Form) error {
	args := m.Called(ctx, form)
	return args.Error(0)
}

func (m *MockSubmissionService) ListClientInformation(ctx context.Context, limit, offset int) (*service.ClientInformationListResult, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ClientInformationListResult), args.Error(1)
}

func (m *MockSubmissionService) ListPartnerApplications(ctx context.Context, limit, offset int) (*service.PartnerApplicationListResult, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.PartnerApplicationListResult), args.Error(1)
}

func (m *MockSubmissionService) DeleteAsset(ctx context.Context, assetID string) error {
	args := m.Called(ctx, assetID)
	return args.Error(0)
}
