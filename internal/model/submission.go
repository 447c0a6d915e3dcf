package model

import "time"

// Package model contains the domain models for lead-intake submissions.
// These are pure data structures with no database-specific dependencies or
// tags beyond JSON; they can be used across layers without coupling to
// persistence.

// ClientInformationForm is the persisted result of one client-information
// submission. File-bearing fields hold either an empty string (no file
// provided) or a fully resolved, publicly retrievable asset URL.
type ClientInformationForm struct {
	ID string `json:"id"`

	FullName               string `json:"fullName"`
	BusinessName           string `json:"businessName"`
	PhoneNumber            string `json:"phoneNumber"`
	Email                  string `json:"email"`
	Address                string `json:"address"`
	PreferredContactMethod string `json:"preferredContactMethod"`

	BusinessType               string `json:"businessType"`
	IndustryCategory           string `json:"industryCategory"`
	TaxIdentificationNumber    string `json:"taxIdentificationNumber"`
	BusinessRegistrationNumber string `json:"businessRegistrationNumber"`
	AnnualRevenueRange         string `json:"annualRevenueRange"`
	NumberOfEmployees          int    `json:"numberOfEmployees"`

	ServicesRequired               []string `json:"servicesRequired"`
	FrequencyOfService             string   `json:"frequencyOfService"`
	SpecificGoalsOrNeeds           string   `json:"specificGoalsOrNeeds"`
	CurrentAccountingSoftware      string   `json:"currentAccountingSoftware"`
	PreferredCommunicationSchedule string   `json:"preferredCommunicationSchedule"`

	BankAccountDetails string `json:"bankAccountDetails"`
	CreditLimit        string `json:"creditLimit"`
	BillingAddress     string `json:"billingAddress"`

	BusinessRegistrationCertificate string `json:"businessRegistrationCertificate"`
	TaxIdentificationCertificate    string `json:"taxIdentificationCertificate"`
	FinancialStatements             string `json:"financialStatements"`
	GovernmentIssuedID              string `json:"governmentIssuedID"`

	Declaration bool   `json:"declaration"`
	Consent     bool   `json:"consent"`
	Signature   string `json:"signature"`
	Date        string `json:"date"`

	CreatedAt time.Time `json:"createdAt"`
}

// PartnerApplicationForm is the persisted result of one partner-application
// submission.
type PartnerApplicationForm struct {
	ID string `json:"id"`

	BusinessName    string `json:"businessName"`
	ContactPerson   string `json:"contactPerson"`
	BusinessAddress string `json:"businessAddress"`
	PhoneNumber     string `json:"phoneNumber"`
	Email           string `json:"email"`
	Website         string `json:"website"`

	TypeOfBusiness             string `json:"typeOfBusiness"`
	IndustryCategory           string `json:"industryCategory"`
	YearsInOperation           int    `json:"yearsInOperation"`
	BusinessRegistrationNumber string `json:"businessRegistrationNumber"`
	TaxIdentificationNumber    string `json:"taxIdentificationNumber"`

	ReasonForPartnership      string `json:"reasonForPartnership"`
	ServicesOrProductsOffered string `json:"servicesOrProductsOffered"`
	GeographicalCoverage      string `json:"geographicalCoverage"`
	PreferredCollaborationType string `json:"preferredCollaborationType"`
	PreviousPartnerships      string `json:"previousPartnerships"`

	AnnualRevenue             string `json:"annualRevenue"`
	BusinessLicensesOrPermits string `json:"businessLicensesOrPermits"`
	InsuranceCoverage         string `json:"insuranceCoverage"`

	BusinessRegistrationCertificate string `json:"businessRegistrationCertificate"`
	TaxIdentificationCertificate    string `json:"taxIdentificationCertificate"`
	PortfolioOrReferences           string `json:"portfolioOrReferences"`

	Declaration bool   `json:"declaration"`
	Consent     bool   `json:"consent"`
	Signature   string `json:"signature"`
	Date        string `json:"date"`

	CreatedAt time.Time `json:"createdAt"`
}
