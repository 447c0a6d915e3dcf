// Package forms defines declarative field schemas for the intake forms and a
// generic extraction-and-coercion engine over multipart form data. One ordered
// descriptor list per form type drives the whole pipeline; there is no
// hand-written per-field extraction code.
package forms

// Kind is the declared semantic type of a form field.
type Kind int

const (
	// Text is a short free-text value.
	Text Kind = iota
	// LongText is a multi-line free-text value.
	LongText
	// Bool is true iff the submitted literal equals exactly "true".
	Bool
	// Int is parsed as a base-10 integer, falling back to 0 on empty or
	// invalid input.
	Int
	// StringList is a JSON-encoded array of strings.
	StringList
	// File is an uploaded document; its extracted value is the durable
	// asset URL, or "" when no file was provided.
	File
)

// Field describes one expected form field.
type Field struct {
	Name     string
	Kind     Kind
	Required bool
	// Folder is the storage folder for File fields,
	// e.g. "client-information/business-registration".
	Folder string
}

// Schema is the ordered field list for one form type.
type Schema struct {
	FormType string
	Fields   []Field
}

// ClientInformation describes the client-information intake form.
var ClientInformation = Schema{
	FormType: "client-information",
	Fields: []Field{
		{Name: "businessRegistrationCertificate", Kind: File, Folder: "client-information/business-registration"},
		{Name: "taxIdentificationCertificate", Kind: File, Folder: "client-information/tax-identification"},
		{Name: "financialStatements", Kind: File, Folder: "client-information/financial-statements"},
		{Name: "governmentIssuedID", Kind: File, Folder: "client-information/government-id"},

		{Name: "fullName", Kind: Text},
		{Name: "businessName", Kind: Text},
		{Name: "phoneNumber", Kind: Text},
		{Name: "email", Kind: Text},
		{Name: "address", Kind: Text},
		{Name: "preferredContactMethod", Kind: Text},

		{Name: "businessType", Kind: Text},
		{Name: "industryCategory", Kind: Text},
		{Name: "taxIdentificationNumber", Kind: Text},
		{Name: "businessRegistrationNumber", Kind: Text},
		{Name: "annualRevenueRange", Kind: Text},
		{Name: "numberOfEmployees", Kind: Int},

		{Name: "servicesRequired", Kind: StringList},
		{Name: "frequencyOfService", Kind: Text},
		{Name: "specificGoalsOrNeeds", Kind: LongText},
		{Name: "currentAccountingSoftware", Kind: Text},
		{Name: "preferredCommunicationSchedule", Kind: Text},

		{Name: "bankAccountDetails", Kind: LongText},
		{Name: "creditLimit", Kind: Text},
		{Name: "billingAddress", Kind: LongText},

		{Name: "declaration", Kind: Bool},
		{Name: "consent", Kind: Bool},
		{Name: "signature", Kind: Text},
		{Name: "date", Kind: Text},
	},
}

// PartnerApplication describes the partner-application intake form.
var PartnerApplication = Schema{
	FormType: "partner-application",
	Fields: []Field{
		{Name: "businessRegistrationCertificate", Kind: File, Folder: "partner-application/business-registration"},
		{Name: "taxIdentificationCertificate", Kind: File, Folder: "partner-application/tax-identification"},
		{Name: "portfolioOrReferences", Kind: File, Folder: "partner-application/portfolio"},

		{Name: "businessName", Kind: Text},
		{Name: "contactPerson", Kind: Text},
		{Name: "businessAddress", Kind: LongText},
		{Name: "phoneNumber", Kind: Text},
		{Name: "email", Kind: Text},
		{Name: "website", Kind: Text},

		{Name: "typeOfBusiness", Kind: Text},
		{Name: "industryCategory", Kind: Text},
		{Name: "yearsInOperation", Kind: Int},
		{Name: "businessRegistrationNumber", Kind: Text},
		{Name: "taxIdentificationNumber", Kind: Text},

		{Name: "reasonForPartnership", Kind: LongText},
		{Name: "servicesOrProductsOffered", Kind: LongText},
		{Name: "geographicalCoverage", Kind: Text},
		{Name: "preferredCollaborationType", Kind: Text},
		{Name: "previousPartnerships", Kind: LongText},

		{Name: "annualRevenue", Kind: Text},
		{Name: "businessLicensesOrPermits", Kind: Text},
		{Name: "insuranceCoverage", Kind: Text},

		{Name: "declaration", Kind: Bool},
		{Name: "consent", Kind: Bool},
		{Name: "signature", Kind: Text},
		{Name: "date", Kind: Text},
	},
}
