// Package delta holds the CHIPS delta schema: the shape of the JSON payload
// carried inside a change-event envelope. Optional source fields are pointers
// so that absent and empty values stay distinguishable through mapping.
package delta

// Kind discriminates which PSC/BO sub-schema a delta record uses. Values are
// the wire values CHIPS emits.
type Kind string

const (
	KindIndividual                     Kind = "individual"
	KindCorporateEntity                Kind = "corporate-entity"
	KindLegalPerson                    Kind = "legal-person"
	KindSuperSecure                    Kind = "super-secure"
	KindIndividualBeneficialOwner      Kind = "individual-beneficial-owner"
	KindCorporateEntityBeneficialOwner Kind = "corporate-entity-beneficial-owner"
	KindLegalPersonBeneficialOwner     Kind = "legal-person-beneficial-owner"
	KindSuperSecureBeneficialOwner     Kind = "super-secure-beneficial-owner"
)

// DeleteKind is the kind enumeration of the delete envelope. It shares wire
// values with Kind but maps to public slugs through its own classifier.
type DeleteKind string

const (
	DeleteKindIndividual                     DeleteKind = "individual"
	DeleteKindCorporateEntity                DeleteKind = "corporate-entity"
	DeleteKindLegalPerson                    DeleteKind = "legal-person"
	DeleteKindSuperSecure                    DeleteKind = "super-secure"
	DeleteKindIndividualBeneficialOwner      DeleteKind = "individual-beneficial-owner"
	DeleteKindCorporateEntityBeneficialOwner DeleteKind = "corporate-entity-beneficial-owner"
	DeleteKindLegalPersonBeneficialOwner     DeleteKind = "legal-person-beneficial-owner"
	DeleteKindSuperSecureBeneficialOwner     DeleteKind = "super-secure-beneficial-owner"
)

// PscDelta is the upsert payload. Exactly one record per message; an empty
// list is a fatal mapping error.
type PscDelta struct {
	Pscs    []Psc  `json:"pscs"`
	DeltaAt string `json:"delta_at"` // yyyyMMddHHmmssSSSSSS, UTC
}

// Psc is one PSC or beneficial-owner change record.
type Psc struct {
	CompanyNumber  string  `json:"company_number"`
	InternalID     string  `json:"internal_id"`
	PscID          *string `json:"psc_id,omitempty"`
	PscStatementID *string `json:"psc_statement_id,omitempty"`
	Kind           Kind    `json:"kind"`

	NameElements *NameElements `json:"name_elements,omitempty"`
	Name         *string       `json:"name,omitempty"`

	DateOfBirth      *string `json:"date_of_birth,omitempty"`     // yyyyMMdd
	NotificationDate string  `json:"notification_date,omitempty"` // yyyyMMdd
	CeasedOn         *string `json:"ceased_on,omitempty"`         // yyyyMMdd

	Nationality        *string `json:"nationality,omitempty"`
	CountryOfResidence *string `json:"country_of_residence,omitempty"`

	Address                 *Address `json:"address,omitempty"` // service address
	PrincipalOfficeAddress  *Address `json:"principal_office_address,omitempty"`
	UsualResidentialAddress *Address `json:"usual_residential_address,omitempty"`

	NaturesOfControl []string `json:"natures_of_control,omitempty"`

	SanctionInd *int `json:"sanction_ind,omitempty"` // 0 or 1; anything else ignored

	ServiceAddressSameAsRegisteredAddress  *string `json:"service_address_same_as_registered_address,omitempty"`  // Y/N
	ResidentialAddressSameAsServiceAddress *string `json:"residential_address_same_as_service_address,omitempty"` // Y/N

	// Corporate/legal kinds only.
	LegalAuthority     *string `json:"legal_authority,omitempty"`
	LegalForm          *string `json:"legal_form,omitempty"`
	CountryRegistered  *string `json:"country_registered,omitempty"`
	PlaceRegistered    *string `json:"place_registered,omitempty"`
	RegistrationNumber *string `json:"registration_number,omitempty"`
}

// NameElements carries the split name parts used for individual kinds.
type NameElements struct {
	Title      *string `json:"title,omitempty"`
	Forename   *string `json:"forename,omitempty"`
	MiddleName *string `json:"middle_name,omitempty"`
	Surname    *string `json:"surname,omitempty"`
}

// Address is a CHIPS address. Note the singular "premise"; the public schema
// uses "premises".
type Address struct {
	Premise      *string `json:"premise,omitempty"`
	AddressLine1 *string `json:"address_line_1,omitempty"`
	AddressLine2 *string `json:"address_line_2,omitempty"`
	Locality     *string `json:"locality,omitempty"`
	Region       *string `json:"region,omitempty"`
	Country      *string `json:"country,omitempty"`
	PostalCode   *string `json:"postal_code,omitempty"`
	PoBox        *string `json:"po_box,omitempty"`
	CareOfName   *string `json:"care_of_name,omitempty"`
}

// PscDeleteDelta is the delete payload. DeltaAt is forwarded to the data API
// as an opaque string and is never parsed here.
type PscDeleteDelta struct {
	InternalID    string     `json:"internal_id"`
	CompanyNumber string     `json:"company_number"`
	Kind          DeleteKind `json:"kind"`
	DeltaAt       string     `json:"delta_at"`
}
