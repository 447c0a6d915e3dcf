package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"leadintake/internal/model"
	"leadintake/internal/repository"
)

// SubmissionPostgres is a PostgreSQL implementation of
// repository.SubmissionRepository. It uses database/sql with parameterized
// queries and contains no business logic.
type SubmissionPostgres struct {
	db *sql.DB
}

// NewSubmissionPostgres creates a new SubmissionPostgres repository.
func NewSubmissionPostgres(db *sql.DB) *SubmissionPostgres {
	return &SubmissionPostgres{db: db}
}

var _ repository.SubmissionRepository = (*SubmissionPostgres)(nil)

const clientInformationColumns = `
	id, full_name, business_name, phone_number, email, address, preferred_contact_method,
	business_type, industry_category, tax_identification_number, business_registration_number,
	annual_revenue_range, number_of_employees, services_required, frequency_of_service,
	specific_goals_or_needs, current_accounting_software, preferred_communication_schedule,
	bank_account_details, credit_limit, billing_address,
	business_registration_certificate, tax_identification_certificate, financial_statements,
	government_issued_id, declaration, consent, signature, date, created_at`

// CreateClientInformation inserts a new client-information row and returns the
// stored record.
func (r *SubmissionPostgres) CreateClientInformation(ctx context.Context, form *model.ClientInformationForm) (*model.ClientInformationForm, error) {
	services, err := json.Marshal(form.ServicesRequired)
	if err != nil {
		return nil, fmt.Errorf("encode services_required: %w", err)
	}

	q := `
		INSERT INTO client_information_forms (` + clientInformationColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15,
			$16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26, $27, $28, $29, $30)
		RETURNING ` + clientInformationColumns

	row := r.db.QueryRowContext(ctx, q,
		form.ID,
		form.FullName,
		form.BusinessName,
		form.PhoneNumber,
		form.Email,
		form.Address,
		form.PreferredContactMethod,
		form.BusinessType,
		form.IndustryCategory,
		form.TaxIdentificationNumber,
		form.BusinessRegistrationNumber,
		form.AnnualRevenueRange,
		form.NumberOfEmployees,
		services,
		form.FrequencyOfService,
		form.SpecificGoalsOrNeeds,
		form.CurrentAccountingSoftware,
		form.PreferredCommunicationSchedule,
		form.BankAccountDetails,
		form.CreditLimit,
		form.BillingAddress,
		form.BusinessRegistrationCertificate,
		form.TaxIdentificationCertificate,
		form.FinancialStatements,
		form.GovernmentIssuedID,
		form.Declaration,
		form.Consent,
		form.Signature,
		form.Date,
		form.CreatedAt,
	)
	return scanClientInformation(row)
}

// CreatePartnerApplication inserts a new partner-application row and returns
// the stored record.
func (r *SubmissionPostgres) CreatePartnerApplication(ctx context.Context, form *model.PartnerApplicationForm) (*model.PartnerApplicationForm, error) {
	q := `
		INSERT INTO partner_application_forms (` + partnerApplicationColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15,
			$16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26, $27, $28)
		RETURNING ` + partnerApplicationColumns

	row := r.db.QueryRowContext(ctx, q,
		form.ID,
		form.BusinessName,
		form.ContactPerson,
		form.BusinessAddress,
		form.PhoneNumber,
		form.Email,
		form.Website,
		form.TypeOfBusiness,
		form.IndustryCategory,
		form.YearsInOperation,
		form.BusinessRegistrationNumber,
		form.TaxIdentificationNumber,
		form.ReasonForPartnership,
		form.ServicesOrProductsOffered,
		form.GeographicalCoverage,
		form.PreferredCollaborationType,
		form.PreviousPartnerships,
		form.AnnualRevenue,
		form.BusinessLicensesOrPermits,
		form.InsuranceCoverage,
		form.BusinessRegistrationCertificate,
		form.TaxIdentificationCertificate,
		form.PortfolioOrReferences,
		form.Declaration,
		form.Consent,
		form.Signature,
		form.Date,
		form.CreatedAt,
	)
	return scanPartnerApplication(row)
}

const partnerApplicationColumns = `
	id, business_name, contact_person, business_address, phone_number, email, website,
	type_of_business, industry_category, years_in_operation, business_registration_number,
	tax_identification_number, reason_for_partnership, services_or_products_offered,
	geographical_coverage, preferred_collaboration_type, previous_partnerships,
	annual_revenue, business_licenses_or_permits, insurance_coverage,
	business_registration_certificate, tax_identification_certificate, portfolio_or_references,
	declaration, consent, signature, date, created_at`

// ListClientInformation returns client-information rows using LIMIT/OFFSET
// pagination and a total count.
func (r *SubmissionPostgres) ListClientInformation(ctx context.Context, pq repository.PageQuery) (*repository.PageResult[model.ClientInformationForm], error) {
	const qCount = `SELECT COUNT(*) FROM client_information_forms`
	var total int
	if err := r.db.QueryRowContext(ctx, qCount).Scan(&total); err != nil {
		return nil, err
	}

	q := `
		SELECT ` + clientInformationColumns + `
		FROM client_information_forms
		ORDER BY created_at DESC, id DESC
		LIMIT $1 OFFSET $2`
	rows, err := r.db.QueryContext(ctx, q, pq.Limit, pq.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.ClientInformationForm, 0)
	for rows.Next() {
		form, err := scanClientInformation(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *form)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &repository.PageResult[model.ClientInformationForm]{Items: items, Total: total}, nil
}

// ListPartnerApplications returns partner-application rows using LIMIT/OFFSET
// pagination and a total count.
func (r *SubmissionPostgres) ListPartnerApplications(ctx context.Context, pq repository.PageQuery) (*repository.PageResult[model.PartnerApplicationForm], error) {
	const qCount = `SELECT COUNT(*) FROM partner_application_forms`
	var total int
	if err := r.db.QueryRowContext(ctx, qCount).Scan(&total); err != nil {
		return nil, err
	}

	q := `
		SELECT ` + partnerApplicationColumns + `
		FROM partner_application_forms
		ORDER BY created_at DESC, id DESC
		LIMIT $1 OFFSET $2`
	rows, err := r.db.QueryContext(ctx, q, pq.Limit, pq.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.PartnerApplicationForm, 0)
	for rows.Next() {
		form, err := scanPartnerApplication(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *form)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &repository.PageResult[model.PartnerApplicationForm]{Items: items, Total: total}, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanClientInformation(row rowScanner) (*model.ClientInformationForm, error) {
	var out model.ClientInformationForm
	var services []byte
	if err := row.Scan(
		&out.ID,
		&out.FullName,
		&out.BusinessName,
		&out.PhoneNumber,
		&out.Email,
		&out.Address,
		&out.PreferredContactMethod,
		&out.BusinessType,
		&out.IndustryCategory,
		&out.TaxIdentificationNumber,
		&out.BusinessRegistrationNumber,
		&out.AnnualRevenueRange,
		&out.NumberOfEmployees,
		&services,
		&out.FrequencyOfService,
		&out.SpecificGoalsOrNeeds,
		&out.CurrentAccountingSoftware,
		&out.PreferredCommunicationSchedule,
		&out.BankAccountDetails,
		&out.CreditLimit,
		&out.BillingAddress,
		&out.BusinessRegistrationCertificate,
		&out.TaxIdentificationCertificate,
		&out.FinancialStatements,
		&out.GovernmentIssuedID,
		&out.Declaration,
		&out.Consent,
		&out.Signature,
		&out.Date,
		&out.CreatedAt,
	); err != nil {
		return nil, err
	}
	if len(services) > 0 {
		if err := json.Unmarshal(services, &out.ServicesRequired); err != nil {
			return nil, fmt.Errorf("decode services_required: %w", err)
		}
	} else {
		out.ServicesRequired = []string{}
	}
	return &out, nil
}

func scanPartnerApplication(row rowScanner) (*model.PartnerApplicationForm, error) {
	var out model.PartnerApplicationForm
	if err := row.Scan(partnerApplicationDest(&out)...); err != nil {
		return nil, err
	}
	return &out, nil
}

func partnerApplicationDest(form *model.PartnerApplicationForm) []any {
	return []any{
		&form.ID,
		&form.BusinessName,
		&form.ContactPerson,
		&form.BusinessAddress,
		&form.PhoneNumber,
		&form.Email,
		&form.Website,
		&form.TypeOfBusiness,
		&form.IndustryCategory,
		&form.YearsInOperation,
		&form.BusinessRegistrationNumber,
		&form.TaxIdentificationNumber,
		&form.ReasonForPartnership,
		&form.ServicesOrProductsOffered,
		&form.GeographicalCoverage,
		&form.PreferredCollaborationType,
		&form.PreviousPartnerships,
		&form.AnnualRevenue,
		&form.BusinessLicensesOrPermits,
		&form.InsuranceCoverage,
		&form.BusinessRegistrationCertificate,
		&form.TaxIdentificationCertificate,
		&form.PortfolioOrReferences,
		&form.Declaration,
		&form.Consent,
		&form.Signature,
		&form.Date,
		&form.CreatedAt,
	}
}
