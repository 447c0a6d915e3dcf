package service

import (
	"context"
	"fmt"
	"mime/multipart"
	"time"

	"github.com/google/uuid"

	"leadintake/internal/forms"
	"leadintake/internal/logger"
	"leadintake/internal/model"
	"leadintake/internal/repository"
	"leadintake/internal/uploads"
)

// ClientInformationListResult is the service-level DTO for paginated
// client-information records.
type ClientInformationListResult struct {
	Items []model.ClientInformationForm `json:"data"`
	Total int                           `json:"total"`
}

// PartnerApplicationListResult is the service-level DTO for paginated
// partner-application records.
type PartnerApplicationListResult struct {
	Items []model.PartnerApplicationForm `json:"data"`
	Total int                            `json:"total"`
}

// SubmissionService defines the use cases around intake form submissions.
type SubmissionService interface {
	// SubmitClientInformation runs one client-information submission:
	// schema-driven extraction, sequential file uploads, one Create call.
	SubmitClientInformation(ctx context.Context, form *multipart.Form) error

	// SubmitPartnerApplication runs one partner-application submission.
	SubmitPartnerApplication(ctx context.Context, form *multipart.Form) error

	// ListClientInformation returns client-information records using
	// limit/offset and a total count.
	ListClientInformation(ctx context.Context, limit, offset int) (*ClientInformationListResult, error)

	// ListPartnerApplications returns partner-application records.
	ListPartnerApplications(ctx context.Context, limit, offset int) (*PartnerApplicationListResult, error)

	// DeleteAsset removes an uploaded asset by ID. Administrative cleanup;
	// never part of the submission path.
	DeleteAsset(ctx context.Context, assetID string) error
}

// submissionService is a concrete implementation of SubmissionService.
type submissionService struct {
	gateway uploads.Gateway
	repo    repository.SubmissionRepository
	log     logger.Logger
}

// NewSubmissionService constructs a new SubmissionService.
func NewSubmissionService(gateway uploads.Gateway, repo repository.SubmissionRepository, log logger.Logger) SubmissionService {
	if log == nil {
		log = logger.NewNop()
	}
	return &submissionService{gateway: gateway, repo: repo, log: log}
}

func (s *submissionService) SubmitClientInformation(ctx context.Context, form *multipart.Form) error {
	values, err := forms.Extract(ctx, form, forms.ClientInformation, s.gateway.Upload)
	if err != nil {
		s.log.WithError(err).Error("client information extraction failed", map[string]any{
			"form_type": forms.ClientInformation.FormType,
		})
		return fmt.Errorf("extract client information: %w", err)
	}

	rec := clientInformationFromValues(values)
	rec.ID = uuid.New().String()
	rec.CreatedAt = time.Now().UTC()

	if _, err := s.repo.CreateClientInformation(ctx, rec); err != nil {
		s.logOrphanedAssets(forms.ClientInformation, values, err)
		return fmt.Errorf("persist client information: %w", err)
	}
	return nil
}

func (s *submissionService) SubmitPartnerApplication(ctx context.Context, form *multipart.Form) error {
	values, err := forms.Extract(ctx, form, forms.PartnerApplication, s.gateway.Upload)
	if err != nil {
		s.log.WithError(err).Error("partner application extraction failed", map[string]any{
			"form_type": forms.PartnerApplication.FormType,
		})
		return fmt.Errorf("extract partner application: %w", err)
	}

	rec := partnerApplicationFromValues(values)
	rec.ID = uuid.New().String()
	rec.CreatedAt = time.Now().UTC()

	if _, err := s.repo.CreatePartnerApplication(ctx, rec); err != nil {
		s.logOrphanedAssets(forms.PartnerApplication, values, err)
		return fmt.Errorf("persist partner application: %w", err)
	}
	return nil
}

// logOrphanedAssets records uploads that now have no referencing record.
// Uploads are not transactionally linked to persistence, so a failed Create
// leaves them behind in storage; cleanup is manual.
func (s *submissionService) logOrphanedAssets(schema forms.Schema, values forms.Values, cause error) {
	var urls []string
	for _, f := range schema.Fields {
		if f.Kind != forms.File {
			continue
		}
		if u := values.String(f.Name); u != "" {
			urls = append(urls, u)
		}
	}

	fields := map[string]any{"form_type": schema.FormType}
	if len(urls) > 0 {
		fields["orphaned_assets"] = urls
	}
	s.log.WithError(cause).Error("submission persistence failed", fields)
}

// ListClientInformation returns paginated records without exposing repository types.
func (s *submissionService) ListClientInformation(ctx context.Context, limit, offset int) (*ClientInformationListResult, error) {
	res, err := s.repo.ListClientInformation(ctx, pageQuery(limit, offset))
	if err != nil {
		return nil, err
	}
	return &ClientInformationListResult{Items: res.Items, Total: res.Total}, nil
}

// ListPartnerApplications returns paginated records without exposing repository types.
func (s *submissionService) ListPartnerApplications(ctx context.Context, limit, offset int) (*PartnerApplicationListResult, error) {
	res, err := s.repo.ListPartnerApplications(ctx, pageQuery(limit, offset))
	if err != nil {
		return nil, err
	}
	return &PartnerApplicationListResult{Items: res.Items, Total: res.Total}, nil
}

// DeleteAsset removes an asset through the gateway.
func (s *submissionService) DeleteAsset(ctx context.Context, assetID string) error {
	if assetID == "" {
		return fmt.Errorf("asset id is required")
	}
	if err := s.gateway.Delete(ctx, assetID); err != nil {
		s.log.WithError(err).Error("asset deletion failed", map[string]any{"asset_id": assetID})
		return err
	}
	return nil
}

func pageQuery(limit, offset int) repository.PageQuery {
	if limit <= 0 {
		limit = 10
	}
	if offset < 0 {
		offset = 0
	}
	return repository.PageQuery{Limit: limit, Offset: offset}
}

func clientInformationFromValues(v forms.Values) *model.ClientInformationForm {
	return &model.ClientInformationForm{
		FullName:               v.String("fullName"),
		BusinessName:           v.String("businessName"),
		PhoneNumber:            v.String("phoneNumber"),
		Email:                  v.String("email"),
		Address:                v.String("address"),
		PreferredContactMethod: v.String("preferredContactMethod"),

		BusinessType:               v.String("businessType"),
		IndustryCategory:           v.String("industryCategory"),
		TaxIdentificationNumber:    v.String("taxIdentificationNumber"),
		BusinessRegistrationNumber: v.String("businessRegistrationNumber"),
		AnnualRevenueRange:         v.String("annualRevenueRange"),
		NumberOfEmployees:          v.Int("numberOfEmployees"),

		ServicesRequired:               v.StringList("servicesRequired"),
		FrequencyOfService:             v.String("frequencyOfService"),
		SpecificGoalsOrNeeds:           v.String("specificGoalsOrNeeds"),
		CurrentAccountingSoftware:      v.String("currentAccountingSoftware"),
		PreferredCommunicationSchedule: v.String("preferredCommunicationSchedule"),

		BankAccountDetails: v.String("bankAccountDetails"),
		CreditLimit:        v.String("creditLimit"),
		BillingAddress:     v.String("billingAddress"),

		BusinessRegistrationCertificate: v.String("businessRegistrationCertificate"),
		TaxIdentificationCertificate:    v.String("taxIdentificationCertificate"),
		FinancialStatements:             v.String("financialStatements"),
		GovernmentIssuedID:              v.String("governmentIssuedID"),

		Declaration: v.Bool("declaration"),
		Consent:     v.Bool("consent"),
		Signature:   v.String("signature"),
		Date:        v.String("date"),
	}
}

func partnerApplicationFromValues(v forms.Values) *model.PartnerApplicationForm {
	return &model.PartnerApplicationForm{
		BusinessName:    v.String("businessName"),
		ContactPerson:   v.String("contactPerson"),
		BusinessAddress: v.String("businessAddress"),
		PhoneNumber:     v.String("phoneNumber"),
		Email:           v.String("email"),
		Website:         v.String("website"),

		TypeOfBusiness:             v.String("typeOfBusiness"),
		IndustryCategory:           v.String("industryCategory"),
		YearsInOperation:           v.Int("yearsInOperation"),
		BusinessRegistrationNumber: v.String("businessRegistrationNumber"),
		TaxIdentificationNumber:    v.String("taxIdentificationNumber"),

		ReasonForPartnership:       v.String("reasonForPartnership"),
		ServicesOrProductsOffered:  v.String("servicesOrProductsOffered"),
		GeographicalCoverage:       v.String("geographicalCoverage"),
		PreferredCollaborationType: v.String("preferredCollaborationType"),
		PreviousPartnerships:       v.String("previousPartnerships"),

		AnnualRevenue:             v.String("annualRevenue"),
		BusinessLicensesOrPermits: v.String("businessLicensesOrPermits"),
		InsuranceCoverage:         v.String("insuranceCoverage"),

		BusinessRegistrationCertificate: v.String("businessRegistrationCertificate"),
		TaxIdentificationCertificate:    v.String("taxIdentificationCertificate"),
		PortfolioOrReferences:           v.String("portfolioOrReferences"),

		Declaration: v.Bool("declaration"),
		Consent:     v.Bool("consent"),
		Signature:   v.String("signature"),
		Date:        v.String("date"),
	}
}
