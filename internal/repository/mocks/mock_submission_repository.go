package mocks

import (
	"context"

	"leadintake/internal/model"
	"leadintake/internal/repository"

	"github.com/stretchr/testify/mock"
)

type MockSubmissionRepository struct {
	mock.Mock
}

func (m *MockSubmissionRepository) CreateClientInformation(ctx context.Context, form *model.ClientInformationForm) (*model.ClientInformationForm, error) {
	args := m.Called(ctx, form)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ClientInformationForm), args.Error(1)
}

func (m *MockSubmissionRepository) CreatePartnerApplication(ctx context.Context, form *model.PartnerApplicationForm) (*model.PartnerApplicationForm, error) {
	args := m.Called(ctx, form)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PartnerApplicationForm), args.Error(1)
}

func (m *MockSubmissionRepository) ListClientInformation(ctx context.Context, pq repository.PageQuery) (*repository.PageResult[model.ClientInformationForm], error) {
	args := m.Called(ctx, pq)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.PageResult[model.ClientInformationForm]), args.Error(1)
}

func (m *MockSubmissionRepository) ListPartnerApplications(ctx context.Context, pq repository.PageQuery) (*repository.PageResult[model.PartnerApplicationForm], error) {
	args := m.Called(ctx, pq)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.PageResult[model.PartnerApplicationForm]), args.Error(1)
}
