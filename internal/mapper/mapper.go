// Package mapper converts CHIPS delta records into the public full-record
// schema: identifier encoding, kind classification, date parsing,
// nature-of-control translation and the field-level mapping rules.
package mapper

import (
	"fmt"
	"strings"

	"psc-delta-consumer/internal/delta"
	"psc-delta-consumer/internal/psc"
)

const (
	selfLinkFormat       = "/company/%s/persons-with-significant-control/%s/%s"
	statementsLinkFormat = "/company/%s/persons-with-significant-control-statements/%s"

	descriptionSuperSecure   = "super-secure-persons-with-significant-control"
	descriptionSuperSecureBO = "super-secure-beneficial-owner"
)

// Mapper maps a single delta record to the external-data half of a full
// record. InternalData (delta_at) is attached by the transformer.
type Mapper struct {
	etag EtagGenerator
}

// New returns a Mapper using the given etag generator; nil selects the
// production generator.
func New(etag EtagGenerator) *Mapper {
	if etag == nil {
		etag = NewEtag
	}
	return &Mapper{etag: etag}
}

// Map builds the external data for one delta record. Errors are always
// non-retryable: the record itself is malformed.
func (m *Mapper) Map(in delta.Psc) (psc.ExternalData, error) {
	slug, err := KindSlug(in.Kind)
	if err != nil {
		return psc.ExternalData{}, err
	}

	encodedID := Encode(in.InternalID)
	out := psc.ExternalData{
		ID:             encodedID,
		CompanyNumber:  in.CompanyNumber,
		InternalID:     in.InternalID,
		NotificationID: encodedID,
	}
	if in.PscID != nil {
		out.PscID = Encode(*in.PscID)
	}
	if in.PscStatementID != nil {
		out.PscStatementID = Encode(*in.PscStatementID)
	}

	data := psc.Data{
		Etag:             m.etag(),
		Kind:             slug,
		Name:             mapName(in),
		Description:      mapDescription(in.Kind),
		NaturesOfControl: MapNaturesOfControl(in.CompanyNumber, in.NaturesOfControl),
		Identification:   mapIdentification(in),
		Links:            []psc.ItemLinks{mapLinks(in, encodedID)},
	}

	if in.Nationality != nil {
		data.Nationality = *in.Nationality
	}
	if in.CountryOfResidence != nil {
		data.CountryOfResidence = *in.CountryOfResidence
	}
	if isIndividualKind(in.Kind) && in.NameElements != nil {
		data.NameElements = mapNameElements(*in.NameElements)
	}

	if in.NotificationDate != "" {
		d, err := ParseDate(in.NotificationDate)
		if err != nil {
			return psc.ExternalData{}, err
		}
		data.NotifiedOn = &d
		notification := d
		data.NotificationDate = &notification
	}
	if in.CeasedOn != nil {
		d, err := ParseDate(*in.CeasedOn)
		if err != nil {
			return psc.ExternalData{}, err
		}
		data.CeasedOn = &d
	}

	data.ServiceAddress = mapAddress(in.Address)
	if data.ServiceAddress != nil {
		data.ServiceAddress.CareOf = deref(in.Address.CareOfName)
	}
	data.PrincipalOfficeAddress = mapAddress(in.PrincipalOfficeAddress)

	if in.SanctionInd != nil {
		switch *in.SanctionInd {
		case 0:
			data.IsSanctioned = boolPtr(false)
		case 1:
			data.IsSanctioned = boolPtr(true)
		}
	}
	if in.ServiceAddressSameAsRegisteredAddress != nil {
		data.ServiceAddressSameAsRegisteredOfficeAddress = yesNo(*in.ServiceAddressSameAsRegisteredAddress)
	}

	out.Data = data
	out.SensitiveData, err = mapSensitiveData(in)
	if err != nil {
		return psc.ExternalData{}, err
	}
	return out, nil
}

// mapName joins the non-nil split name parts with single spaces for
// individual kinds and takes the plain name verbatim for everything else.
func mapName(in delta.Psc) string {
	if !isIndividualKind(in.Kind) {
		if in.Name != nil {
			return *in.Name
		}
		return ""
	}
	if in.NameElements == nil {
		return ""
	}
	parts := make([]string, 0, 4)
	for _, p := range []*string{
		in.NameElements.Title,
		in.NameElements.Forename,
		in.NameElements.MiddleName,
		in.NameElements.Surname,
	} {
		if p != nil {
			parts = append(parts, *p)
		}
	}
	return strings.Join(parts, " ")
}

func mapNameElements(in delta.NameElements) *psc.NameElements {
	out := &psc.NameElements{}
	if in.Title != nil {
		out.Title = *in.Title
	}
	if in.Forename != nil {
		out.Forename = *in.Forename
	}
	if in.MiddleName != nil {
		out.MiddleName = *in.MiddleName
	}
	if in.Surname != nil {
		out.Surname = *in.Surname
	}
	return out
}

// mapDescription emits the fixed description for the two super-secure kinds
// and nothing for any other kind.
func mapDescription(k delta.Kind) string {
	switch k {
	case delta.KindSuperSecure:
		return descriptionSuperSecure
	case delta.KindSuperSecureBeneficialOwner:
		return descriptionSuperSecureBO
	default:
		return ""
	}
}

// mapIdentification always returns a block. Corporate kinds fill all five
// fields, legal kinds authority and form only, everything else leaves it
// empty.
func mapIdentification(in delta.Psc) *psc.Identification {
	id := &psc.Identification{}
	switch {
	case isCorporateKind(in.Kind):
		id.LegalAuthority = deref(in.LegalAuthority)
		id.LegalForm = deref(in.LegalForm)
		id.CountryRegistered = deref(in.CountryRegistered)
		id.PlaceRegistered = deref(in.PlaceRegistered)
		id.RegistrationNumber = deref(in.RegistrationNumber)
	case isLegalKind(in.Kind):
		id.LegalAuthority = deref(in.LegalAuthority)
		id.LegalForm = deref(in.LegalForm)
	}
	return id
}

// mapLinks builds the single links element. The self link's middle segment is
// the raw delta kind, not the public slug.
func mapLinks(in delta.Psc, encodedID string) psc.ItemLinks {
	links := psc.ItemLinks{
		Self: fmt.Sprintf(selfLinkFormat, in.CompanyNumber, in.Kind, encodedID),
	}
	if in.PscStatementID != nil {
		links.Statements = fmt.Sprintf(statementsLinkFormat, in.CompanyNumber, Encode(*in.PscStatementID))
	}
	return links
}

// mapAddress converts a CHIPS address, renaming premise to premises. Nil in,
// nil out. care_of_name is mapped onto the service address only.
func mapAddress(in *delta.Address) *psc.Address {
	if in == nil {
		return nil
	}
	return &psc.Address{
		Premises:     deref(in.Premise),
		AddressLine1: deref(in.AddressLine1),
		AddressLine2: deref(in.AddressLine2),
		Locality:     deref(in.Locality),
		Region:       deref(in.Region),
		Country:      deref(in.Country),
		PostalCode:   deref(in.PostalCode),
		PoBox:        deref(in.PoBox),
	}
}

// mapSensitiveData builds the restricted block for individual kinds. Other
// kinds get no block at all.
func mapSensitiveData(in delta.Psc) (*psc.SensitiveData, error) {
	if !isIndividualKind(in.Kind) {
		return nil, nil
	}
	sensitive := &psc.SensitiveData{
		UsualResidentialAddress: mapAddress(in.UsualResidentialAddress),
	}
	if in.DateOfBirth != nil {
		d, err := ParseDate(*in.DateOfBirth)
		if err != nil {
			return nil, err
		}
		sensitive.DateOfBirth = &psc.DateOfBirth{Day: d.Day, Month: d.Month, Year: d.Year}
	}
	if in.ResidentialAddressSameAsServiceAddress != nil {
		sensitive.ResidentialAddressSameAsServiceAddress = yesNo(*in.ResidentialAddressSameAsServiceAddress)
	}
	return sensitive, nil
}

// yesNo maps the CHIPS Y/N flag to a bool pointer; any other value leaves the
// flag unset.
func yesNo(v string) *bool {
	switch v {
	case "Y":
		return boolPtr(true)
	case "N":
		return boolPtr(false)
	default:
		return nil
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func boolPtr(b bool) *bool { return &b }
