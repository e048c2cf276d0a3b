package mapper

import (
	"psc-delta-consumer/internal/delta"
	"psc-delta-consumer/internal/errs"
)

// Public kind slugs. PSC kinds expand to the long
// "...-person-with-significant-control" form; beneficial-owner kinds pass
// through unchanged.
const (
	slugIndividual      = "individual-person-with-significant-control"
	slugCorporateEntity = "corporate-entity-person-with-significant-control"
	slugLegalPerson     = "legal-person-person-with-significant-control"
	slugSuperSecure     = "super-secure-person-with-significant-control"

	slugIndividualBO      = "individual-beneficial-owner"
	slugCorporateEntityBO = "corporate-entity-beneficial-owner"
	slugLegalPersonBO     = "legal-person-beneficial-owner"
	slugSuperSecureBO     = "super-secure-beneficial-owner"
)

// KindSlug resolves a delta kind to its public slug. An unrecognised kind is
// a non-retryable error: redelivery cannot make it valid.
func KindSlug(k delta.Kind) (string, error) {
	switch k {
	case delta.KindIndividual:
		return slugIndividual, nil
	case delta.KindCorporateEntity:
		return slugCorporateEntity, nil
	case delta.KindLegalPerson:
		return slugLegalPerson, nil
	case delta.KindSuperSecure:
		return slugSuperSecure, nil
	case delta.KindIndividualBeneficialOwner:
		return slugIndividualBO, nil
	case delta.KindCorporateEntityBeneficialOwner:
		return slugCorporateEntityBO, nil
	case delta.KindLegalPersonBeneficialOwner:
		return slugLegalPersonBO, nil
	case delta.KindSuperSecureBeneficialOwner:
		return slugSuperSecureBO, nil
	default:
		return "", errs.NewNonRetryable("Invalid Kind type supplied", nil)
	}
}

// DeleteKindSlug resolves a delete-envelope kind to the same public slugs.
func DeleteKindSlug(k delta.DeleteKind) (string, error) {
	switch k {
	case delta.DeleteKindIndividual:
		return slugIndividual, nil
	case delta.DeleteKindCorporateEntity:
		return slugCorporateEntity, nil
	case delta.DeleteKindLegalPerson:
		return slugLegalPerson, nil
	case delta.DeleteKindSuperSecure:
		return slugSuperSecure, nil
	case delta.DeleteKindIndividualBeneficialOwner:
		return slugIndividualBO, nil
	case delta.DeleteKindCorporateEntityBeneficialOwner:
		return slugCorporateEntityBO, nil
	case delta.DeleteKindLegalPersonBeneficialOwner:
		return slugLegalPersonBO, nil
	case delta.DeleteKindSuperSecureBeneficialOwner:
		return slugSuperSecureBO, nil
	default:
		return "", errs.NewNonRetryable("Invalid Kind type supplied in delete", nil)
	}
}

// isIndividualKind reports whether a kind carries split name elements and the
// sensitive data block.
func isIndividualKind(k delta.Kind) bool {
	return k == delta.KindIndividual || k == delta.KindIndividualBeneficialOwner
}

// isCorporateKind reports whether a kind fills the full identification block.
func isCorporateKind(k delta.Kind) bool {
	return k == delta.KindCorporateEntity || k == delta.KindCorporateEntityBeneficialOwner
}

// isLegalKind reports whether a kind fills legal authority and form only.
func isLegalKind(k delta.Kind) bool {
	return k == delta.KindLegalPerson || k == delta.KindLegalPersonBeneficialOwner
}
