package repository

import (
	"context"

	"leadintake/internal/model"
)

// Package repository contains the data access layer for submission records.
// Implementations live in subpackages (e.g. postgres). No business logic here,
// strictly persistence operations.

// SubmissionRepository is the record store for intake form submissions. One
// Create call per submission; constraint violations and connectivity loss
// surface as generic persistence errors, nothing is retried.
type SubmissionRepository interface {
	// CreateClientInformation inserts one client-information record and
	// returns the stored row (may include values set by the DB).
	CreateClientInformation(ctx context.Context, form *model.ClientInformationForm) (*model.ClientInformationForm, error)

	// CreatePartnerApplication inserts one partner-application record.
	CreatePartnerApplication(ctx context.Context, form *model.PartnerApplicationForm) (*model.PartnerApplicationForm, error)

	// ListClientInformation returns a page of client-information records,
	// newest first, with the total row count.
	ListClientInformation(ctx context.Context, pq PageQuery) (*PageResult[model.ClientInformationForm], error)

	// ListPartnerApplications returns a page of partner-application records.
	ListPartnerApplications(ctx context.Context, pq PageQuery) (*PageResult[model.PartnerApplicationForm], error)
}

// PageQuery holds limit/offset pagination parameters.
type PageQuery struct {
	Limit  int
	Offset int
}

// PageResult is a generic pagination result wrapper.
// T is typically a model type.
type PageResult[T any] struct {
	Items []T
	Total int
}
