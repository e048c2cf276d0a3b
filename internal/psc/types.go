// Package psc holds the public full-record API schema sent to the data API,
// plus the derived delete-request model.
package psc

import (
	"fmt"
	"time"
)

// FullRecord is the body of a full-record PUT.
type FullRecord struct {
	ExternalData ExternalData  `json:"external_data"`
	InternalData *InternalData `json:"internal_data,omitempty"`
}

// ExternalData wraps the public data block plus the encoded identifiers.
type ExternalData struct {
	ID             string `json:"id,omitempty"`
	CompanyNumber  string `json:"company_number,omitempty"`
	InternalID     string `json:"internal_id,omitempty"`
	NotificationID string `json:"notification_id,omitempty"`
	PscID          string `json:"psc_id,omitempty"`
	PscStatementID string `json:"psc_statement_id,omitempty"`

	Data          Data           `json:"data"`
	SensitiveData *SensitiveData `json:"sensitive_data,omitempty"`
}

// Data is the public-facing record body.
type Data struct {
	Etag        string `json:"etag,omitempty"`
	Kind        string `json:"kind,omitempty"`
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`

	NameElements *NameElements `json:"name_elements,omitempty"`

	Nationality        string `json:"nationality,omitempty"`
	CountryOfResidence string `json:"country_of_residence,omitempty"`

	NotifiedOn       *Date `json:"notified_on,omitempty"`
	NotificationDate *Date `json:"notification_date,omitempty"`
	CeasedOn         *Date `json:"ceased_on,omitempty"`

	ServiceAddress         *Address `json:"service_address,omitempty"`
	PrincipalOfficeAddress *Address `json:"principal_office_address,omitempty"`

	NaturesOfControl []string `json:"natures_of_control,omitempty"`

	Links []ItemLinks `json:"links,omitempty"`

	Identification *Identification `json:"identification,omitempty"`

	IsSanctioned *bool `json:"is_sanctioned,omitempty"`

	ServiceAddressSameAsRegisteredOfficeAddress *bool `json:"service_address_same_as_registered_office_address,omitempty"`
}

// SensitiveData is the restricted block of the record.
type SensitiveData struct {
	DateOfBirth                            *DateOfBirth `json:"date_of_birth,omitempty"`
	UsualResidentialAddress                *Address     `json:"usual_residential_address,omitempty"`
	ResidentialAddressSameAsServiceAddress *bool        `json:"residential_address_same_as_service_address,omitempty"`
}

// InternalData carries processing metadata for the data API.
type InternalData struct {
	DeltaAt time.Time `json:"delta_at"`
}

// NameElements mirrors the split name parts on the public schema.
type NameElements struct {
	Title      string `json:"title,omitempty"`
	Forename   string `json:"forename,omitempty"`
	MiddleName string `json:"middle_name,omitempty"`
	Surname    string `json:"surname,omitempty"`
}

// Address is a public-schema address ("premises", plural).
type Address struct {
	Premises     string `json:"premises,omitempty"`
	AddressLine1 string `json:"address_line_1,omitempty"`
	AddressLine2 string `json:"address_line_2,omitempty"`
	Locality     string `json:"locality,omitempty"`
	Region       string `json:"region,omitempty"`
	Country      string `json:"country,omitempty"`
	PostalCode   string `json:"postal_code,omitempty"`
	PoBox        string `json:"po_box,omitempty"`
	CareOf       string `json:"care_of,omitempty"`
}

// DateOfBirth is the partial-date block on sensitive data.
type DateOfBirth struct {
	Day   int `json:"day"`
	Month int `json:"month"`
	Year  int `json:"year"`
}

// Identification is populated per kind: all five fields for corporate
// entities, authority and form only for legal persons, nothing otherwise. The
// block itself is always present on a mapped record.
type Identification struct {
	LegalAuthority     string `json:"legal_authority,omitempty"`
	LegalForm          string `json:"legal_form,omitempty"`
	CountryRegistered  string `json:"country_registered,omitempty"`
	PlaceRegistered    string `json:"place_registered,omitempty"`
	RegistrationNumber string `json:"registration_number,omitempty"`
}

// ItemLinks holds the record's links. Exactly one element is emitted per
// record; Statements is set only when the delta carries a statement id.
type ItemLinks struct {
	Self       string `json:"self,omitempty"`
	Statements string `json:"statements,omitempty"`
}

// Date is a calendar date with no time zone.
type Date struct {
	Year  int
	Month int
	Day   int
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// MarshalJSON renders the ISO date the data API expects.
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

// UnmarshalJSON accepts the same ISO form.
func (d *Date) UnmarshalJSON(b []byte) error {
	var y, m, day int
	if _, err := fmt.Sscanf(string(b), `"%04d-%02d-%02d"`, &y, &m, &day); err != nil {
		return fmt.Errorf("invalid date %s: %w", b, err)
	}
	d.Year, d.Month, d.Day = y, m, day
	return nil
}

// DeleteRequest is the immutable parameter set for a full-record DELETE.
// DeltaAt travels unparsed; the HTTP layer forwards it as a header.
type DeleteRequest struct {
	ContextID      string
	NotificationID string
	CompanyNumber  string
	DeltaAt        string
	Kind           string
}
