package mapper

// Nature-of-control vocabularies. Which map applies depends on the company
// number prefix: SO/NC/OC companies use the limited-liability-partnership
// vocabulary, OE companies the registered-overseas-entity vocabulary, and
// everything else (including company numbers shorter than two characters) the
// default vocabulary. The default map retains the legacy LLP and OE keys so
// records written before the dedicated maps existed still resolve.

var defaultControlMap = map[string]string{
	"OWNERSHIPOFSHARES_25TO50PERCENT_AS_PERSON":  "ownership-of-shares-25-to-50-percent",
	"OWNERSHIPOFSHARES_50TO75PERCENT_AS_PERSON":  "ownership-of-shares-50-to-75-percent",
	"OWNERSHIPOFSHARES_75TO100PERCENT_AS_PERSON": "ownership-of-shares-75-to-100-percent",
	"OWNERSHIPOFSHARES_25TO50PERCENT_AS_TRUST":   "ownership-of-shares-25-to-50-percent-as-trust",
	"OWNERSHIPOFSHARES_50TO75PERCENT_AS_TRUST":   "ownership-of-shares-50-to-75-percent-as-trust",
	"OWNERSHIPOFSHARES_75TO100PERCENT_AS_TRUST":  "ownership-of-shares-75-to-100-percent-as-trust",
	"OWNERSHIPOFSHARES_25TO50PERCENT_AS_FIRM":    "ownership-of-shares-25-to-50-percent-as-firm",
	"OWNERSHIPOFSHARES_50TO75PERCENT_AS_FIRM":    "ownership-of-shares-50-to-75-percent-as-firm",
	"OWNERSHIPOFSHARES_75TO100PERCENT_AS_FIRM":   "ownership-of-shares-75-to-100-percent-as-firm",

	"VOTINGRIGHTS_25TO50PERCENT_AS_PERSON":  "voting-rights-25-to-50-percent",
	"VOTINGRIGHTS_50TO75PERCENT_AS_PERSON":  "voting-rights-50-to-75-percent",
	"VOTINGRIGHTS_75TO100PERCENT_AS_PERSON": "voting-rights-75-to-100-percent",
	"VOTINGRIGHTS_25TO50PERCENT_AS_TRUST":   "voting-rights-25-to-50-percent-as-trust",
	"VOTINGRIGHTS_50TO75PERCENT_AS_TRUST":   "voting-rights-50-to-75-percent-as-trust",
	"VOTINGRIGHTS_75TO100PERCENT_AS_TRUST":  "voting-rights-75-to-100-percent-as-trust",
	"VOTINGRIGHTS_25TO50PERCENT_AS_FIRM":    "voting-rights-25-to-50-percent-as-firm",
	"VOTINGRIGHTS_50TO75PERCENT_AS_FIRM":    "voting-rights-50-to-75-percent-as-firm",
	"VOTINGRIGHTS_75TO100PERCENT_AS_FIRM":   "voting-rights-75-to-100-percent-as-firm",

	"RIGHTTOAPPOINTANDREMOVEDIRECTORS_AS_PERSON": "right-to-appoint-and-remove-directors",
	"RIGHTTOAPPOINTANDREMOVEDIRECTORS_AS_TRUST":  "right-to-appoint-and-remove-directors-as-trust",
	"RIGHTTOAPPOINTANDREMOVEDIRECTORS_AS_FIRM":   "right-to-appoint-and-remove-directors-as-firm",

	"SIGINFLUENCECONTROL_AS_PERSON": "significant-influence-or-control",
	"SIGINFLUENCECONTROL_AS_TRUST":  "significant-influence-or-control-as-trust",
	"SIGINFLUENCECONTROL_AS_FIRM":   "significant-influence-or-control-as-firm",

	"PART_RIGHTTOSHARESURPLUSASSETS_25TO50PERCENT_AS_PERSON":  "part-right-to-share-surplus-assets-25-to-50-percent",
	"PART_RIGHTTOSHARESURPLUSASSETS_50TO75PERCENT_AS_PERSON":  "part-right-to-share-surplus-assets-50-to-75-percent",
	"PART_RIGHTTOSHARESURPLUSASSETS_75TO100PERCENT_AS_PERSON": "part-right-to-share-surplus-assets-75-to-100-percent",
	"PART_RIGHTTOSHARESURPLUSASSETS_25TO50PERCENT_AS_TRUST":   "part-right-to-share-surplus-assets-25-to-50-percent-as-trust",
	"PART_RIGHTTOSHARESURPLUSASSETS_50TO75PERCENT_AS_TRUST":   "part-right-to-share-surplus-assets-50-to-75-percent-as-trust",
	"PART_RIGHTTOSHARESURPLUSASSETS_75TO100PERCENT_AS_TRUST":  "part-right-to-share-surplus-assets-75-to-100-percent-as-trust",
	"PART_RIGHTTOSHARESURPLUSASSETS_25TO50PERCENT_AS_FIRM":    "part-right-to-share-surplus-assets-25-to-50-percent-as-firm",
	"PART_RIGHTTOSHARESURPLUSASSETS_50TO75PERCENT_AS_FIRM":    "part-right-to-share-surplus-assets-50-to-75-percent-as-firm",
	"PART_RIGHTTOSHARESURPLUSASSETS_75TO100PERCENT_AS_FIRM":   "part-right-to-share-surplus-assets-75-to-100-percent-as-firm",

	"RIGHTTOAPPOINTANDREMOVEPERSONS_AS_PERSON": "right-to-appoint-and-remove-person",
	"RIGHTTOAPPOINTANDREMOVEPERSONS_AS_FIRM":   "right-to-appoint-and-remove-person-as-firm",
	"RIGHTTOAPPOINTANDREMOVEPERSONS_AS_TRUST":  "right-to-appoint-and-remove-person-as-trust",

	"OE_OWNERSHIPOFSHARES_MORETHAN25PERCENT_AS_PERSON": "ownership-of-shares-more-than-25-percent-registered-overseas-entity",
	"OE_OWNERSHIPOFSHARES_MORETHAN25PERCENT_AS_TRUST":  "ownership-of-shares-more-than-25-percent-as-trust-registered-overseas-entity",
	"OE_OWNERSHIPOFSHARES_MORETHAN25PERCENT_AS_FIRM":   "ownership-of-shares-more-than-25-percent-as-firm-registered-overseas-entity",
	"OE_VOTINGRIGHTS_MORETHAN25PERCENT_AS_PERSON":      "voting-rights-more-than-25-percent-registered-overseas-entity",
	"OE_VOTINGRIGHTS_MORETHAN25PERCENT_AS_TRUST":       "voting-rights-more-than-25-percent-as-trust-registered-overseas-entity",
	"OE_VOTINGRIGHTS_MORETHAN25PERCENT_AS_FIRM":        "voting-rights-more-than-25-percent-as-firm-registered-overseas-entity",
	"OE_RIGHTTOAPPOINTANDREMOVEDIRECTORS_AS_PERSON":    "right-to-appoint-and-remove-directors-registered-overseas-entity",
	"OE_RIGHTTOAPPOINTANDREMOVEDIRECTORS_AS_TRUST":     "right-to-appoint-and-remove-directors-as-trust-registered-overseas-entity",
	"OE_RIGHTTOAPPOINTANDREMOVEDIRECTORS_AS_FIRM":      "right-to-appoint-and-remove-directors-as-firm-registered-overseas-entity",
	"OE_SIGINFLUENCECONTROL_AS_PERSON":                 "significant-influence-or-control-registered-overseas-entity",
	"OE_SIGINFLUENCECONTROL_AS_TRUST":                  "significant-influence-or-control-as-trust-registered-overseas-entity",
	"OE_SIGINFLUENCECONTROL_AS_FIRM":                   "significant-influence-or-control-as-firm-registered-overseas-entity",

	"RIGHTTOSHARESURPLUSASSETS_25TO50PERCENT_AS_PERSON":  "right-to-share-surplus-assets-25-to-50-percent-limited-liability-partnership",
	"RIGHTTOSHARESURPLUSASSETS_50TO75PERCENT_AS_PERSON":  "right-to-share-surplus-assets-50-to-75-percent-limited-liability-partnership",
	"RIGHTTOSHARESURPLUSASSETS_75TO100PERCENT_AS_PERSON": "right-to-share-surplus-assets-75-to-100-percent-limited-liability-partnership",
	"RIGHTTOSHARESURPLUSASSETS_25TO50PERCENT_AS_TRUST":   "right-to-share-surplus-assets-25-to-50-percent-as-trust-limited-liability-partnership",
	"RIGHTTOSHARESURPLUSASSETS_50TO75PERCENT_AS_TRUST":   "right-to-share-surplus-assets-50-to-75-percent-as-trust-limited-liability-partnership",
	"RIGHTTOSHARESURPLUSASSETS_75TO100PERCENT_AS_TRUST":  "right-to-share-surplus-assets-75-to-100-percent-as-trust-limited-liability-partnership",
	"RIGHTTOSHARESURPLUSASSETS_25TO50PERCENT_AS_FIRM":    "right-to-share-surplus-assets-25-to-50-percent-as-firm-limited-liability-partnership",
	"RIGHTTOSHARESURPLUSASSETS_50TO75PERCENT_AS_FIRM":    "right-to-share-surplus-assets-50-to-75-percent-as-firm-limited-liability-partnership",
	"RIGHTTOSHARESURPLUSASSETS_75TO100PERCENT_AS_FIRM":   "right-to-share-surplus-assets-75-to-100-percent-as-firm-limited-liability-partnership",

	"RIGHTTOAPPOINTANDREMOVEMEMBERS_AS_PERSON": "right-to-appoint-and-remove-members-limited-liability-partnership",
	"RIGHTTOAPPOINTANDREMOVEMEMBERS_AS_FIRM":   "right-to-appoint-and-remove-members-as-firm-limited-liability-partnership",
	"RIGHTTOAPPOINTANDREMOVEMEMBERS_AS_TRUST":  "right-to-appoint-and-remove-members-as-trust-limited-liability-partnership",

	"OE_OWNERSHIPOFSHARES_MORETHAN25PERCENT_AS_CONTROLOVERTRUST": "ownership-of-shares-more-than-25-percent-as-control-over-trust-registered-overseas-entity",
	"OE_VOTINGRIGHTS_MORETHAN25PERCENT_AS_CONTROLOVERTRUST":      "voting-rights-more-than-25-percent-as-control-over-trust-registered-overseas-entity",
	"OE_RIGHTTOAPPOINTANDREMOVEDIRECTORS_AS_CONTROLOVERTRUST":    "right-to-appoint-and-remove-directors-as-control-over-trust-registered-overseas-entity",
	"OE_SIGINFLUENCECONTROL_AS_CONTROLOVERTRUST":                 "significant-influence-or-control-as-control-over-trust-registered-overseas-entity",
	"OE_OWNERSHIPOFSHARES_MORETHAN25PERCENT_AS_CONTROLOVERFIRM":  "ownership-of-shares-more-than-25-percent-as-control-over-firm-registered-overseas-entity",
	"OE_VOTINGRIGHTS_MORETHAN25PERCENT_AS_CONTROLOVERFIRM":       "voting-rights-more-than-25-percent-as-control-over-firm-registered-overseas-entity",
	"OE_RIGHTTOAPPOINTANDREMOVEDIRECTORS_AS_CONTROLOVERFIRM":     "right-to-appoint-and-remove-directors-as-control-over-firm-registered-overseas-entity",
	"OE_SIGINFLUENCECONTROL_AS_CONTROLOVERFIRM":                  "significant-influence-or-control-as-control-over-firm-registered-overseas-entity",

	"OE_REGOWNER_AS_NOMINEEPERSON_ENGLANDWALES":           "registered-owner-as-nominee-person-england-wales-registered-overseas-entity",
	"OE_REGOWNER_AS_NOMINEEPERSON_SCOTLAND":               "registered-owner-as-nominee-person-scotland-registered-overseas-entity",
	"OE_REGOWNER_AS_NOMINEEPERSON_NORTHERNIRELAND":        "registered-owner-as-nominee-person-northern-ireland-registered-overseas-entity",
	"OE_REGOWNER_AS_NOMINEEANOTHERENTITY_ENGLANDWALES":    "registered-owner-as-nominee-another-entity-england-wales-registered-overseas-entity",
	"OE_REGOWNER_AS_NOMINEEANOTHERENTITY_SCOTLAND":        "registered-owner-as-nominee-another-entity-scotland-registered-overseas-entity",
	"OE_REGOWNER_AS_NOMINEEANOTHERENTITY_NORTHERNIRELAND": "registered-owner-as-nominee-another-entity-northern-ireland-registered-overseas-entity",
}

var llpControlMap = map[string]string{
	"RIGHTTOSHARESURPLUSASSETS_25TO50PERCENT_AS_PERSON":  "right-to-share-surplus-assets-25-to-50-percent-limited-liability-partnership",
	"RIGHTTOSHARESURPLUSASSETS_50TO75PERCENT_AS_PERSON":  "right-to-share-surplus-assets-50-to-75-percent-limited-liability-partnership",
	"RIGHTTOSHARESURPLUSASSETS_75TO100PERCENT_AS_PERSON": "right-to-share-surplus-assets-75-to-100-percent-limited-liability-partnership",
	"RIGHTTOSHARESURPLUSASSETS_25TO50PERCENT_AS_TRUST":   "right-to-share-surplus-assets-25-to-50-percent-as-trust-limited-liability-partnership",
	"RIGHTTOSHARESURPLUSASSETS_50TO75PERCENT_AS_TRUST":   "right-to-share-surplus-assets-50-to-75-percent-as-trust-limited-liability-partnership",
	"RIGHTTOSHARESURPLUSASSETS_75TO100PERCENT_AS_TRUST":  "right-to-share-surplus-assets-75-to-100-percent-as-trust-limited-liability-partnership",
	"RIGHTTOSHARESURPLUSASSETS_25TO50PERCENT_AS_FIRM":    "right-to-share-surplus-assets-25-to-50-percent-as-firm-limited-liability-partnership",
	"RIGHTTOSHARESURPLUSASSETS_50TO75PERCENT_AS_FIRM":    "right-to-share-surplus-assets-50-to-75-percent-as-firm-limited-liability-partnership",
	"RIGHTTOSHARESURPLUSASSETS_75TO100PERCENT_AS_FIRM":   "right-to-share-surplus-assets-75-to-100-percent-as-firm-limited-liability-partnership",

	"RIGHTTOAPPOINTANDREMOVEMEMBERS_AS_PERSON": "right-to-appoint-and-remove-members-limited-liability-partnership",
	"RIGHTTOAPPOINTANDREMOVEMEMBERS_AS_FIRM":   "right-to-appoint-and-remove-members-as-firm-limited-liability-partnership",
	"RIGHTTOAPPOINTANDREMOVEMEMBERS_AS_TRUST":  "right-to-appoint-and-remove-members-as-trust-limited-liability-partnership",

	"VOTINGRIGHTS_25TO50PERCENT_AS_PERSON":  "voting-rights-25-to-50-percent-limited-liability-partnership",
	"VOTINGRIGHTS_50TO75PERCENT_AS_PERSON":  "voting-rights-50-to-75-percent-limited-liability-partnership",
	"VOTINGRIGHTS_75TO100PERCENT_AS_PERSON": "voting-rights-75-to-100-percent-limited-liability-partnership",
	"VOTINGRIGHTS_25TO50PERCENT_AS_TRUST":   "voting-rights-25-to-50-percent-as-trust-limited-liability-partnership",
	"VOTINGRIGHTS_50TO75PERCENT_AS_TRUST":   "voting-rights-50-to-75-percent-as-trust-limited-liability-partnership",
	"VOTINGRIGHTS_75TO100PERCENT_AS_TRUST":  "voting-rights-75-to-100-percent-as-trust-limited-liability-partnership",
	"VOTINGRIGHTS_25TO50PERCENT_AS_FIRM":    "voting-rights-25-to-50-percent-as-firm-limited-liability-partnership",
	"VOTINGRIGHTS_50TO75PERCENT_AS_FIRM":    "voting-rights-50-to-75-percent-as-firm-limited-liability-partnership",
	"VOTINGRIGHTS_75TO100PERCENT_AS_FIRM":   "voting-rights-75-to-100-percent-as-firm-limited-liability-partnership",

	"SIGINFLUENCECONTROL_AS_PERSON": "significant-influence-or-control-limited-liability-partnership",
	"SIGINFLUENCECONTROL_AS_TRUST":  "significant-influence-or-control-as-trust-limited-liability-partnership",
	"SIGINFLUENCECONTROL_AS_FIRM":   "significant-influence-or-control-as-firm-limited-liability-partnership",
}

var roeControlMap = map[string]string{
	"OE_OWNERSHIPOFSHARES_MORETHAN25PERCENT_AS_PERSON": "ownership-of-shares-more-than-25-percent-registered-overseas-entity",
	"OE_OWNERSHIPOFSHARES_MORETHAN25PERCENT_AS_TRUST":  "ownership-of-shares-more-than-25-percent-as-trust-registered-overseas-entity",
	"OE_OWNERSHIPOFSHARES_MORETHAN25PERCENT_AS_FIRM":   "ownership-of-shares-more-than-25-percent-as-firm-registered-overseas-entity",
	"OE_VOTINGRIGHTS_MORETHAN25PERCENT_AS_PERSON":      "voting-rights-more-than-25-percent-registered-overseas-entity",
	"OE_VOTINGRIGHTS_MORETHAN25PERCENT_AS_TRUST":       "voting-rights-more-than-25-percent-as-trust-registered-overseas-entity",
	"OE_VOTINGRIGHTS_MORETHAN25PERCENT_AS_FIRM":        "voting-rights-more-than-25-percent-as-firm-registered-overseas-entity",
	"OE_RIGHTTOAPPOINTANDREMOVEDIRECTORS_AS_PERSON":    "right-to-appoint-and-remove-directors-registered-overseas-entity",
	"OE_RIGHTTOAPPOINTANDREMOVEDIRECTORS_AS_TRUST":     "right-to-appoint-and-remove-directors-as-trust-registered-overseas-entity",
	"OE_RIGHTTOAPPOINTANDREMOVEDIRECTORS_AS_FIRM":      "right-to-appoint-and-remove-directors-as-firm-registered-overseas-entity",
	"OE_SIGINFLUENCECONTROL_AS_PERSON":                 "significant-influence-or-control-registered-overseas-entity",
	"OE_SIGINFLUENCECONTROL_AS_TRUST":                  "significant-influence-or-control-as-trust-registered-overseas-entity",
	"OE_SIGINFLUENCECONTROL_AS_FIRM":                   "significant-influence-or-control-as-firm-registered-overseas-entity",

	"OE_OWNERSHIPOFSHARES_MORETHAN25PERCENT_AS_CONTROLOVERTRUST": "ownership-of-shares-more-than-25-percent-as-control-over-trust-registered-overseas-entity",
	"OE_VOTINGRIGHTS_MORETHAN25PERCENT_AS_CONTROLOVERTRUST":      "voting-rights-more-than-25-percent-as-control-over-trust-registered-overseas-entity",
	"OE_RIGHTTOAPPOINTANDREMOVEDIRECTORS_AS_CONTROLOVERTRUST":    "right-to-appoint-and-remove-directors-as-control-over-trust-registered-overseas-entity",
	"OE_SIGINFLUENCECONTROL_AS_CONTROLOVERTRUST":                 "significant-influence-or-control-as-control-over-trust-registered-overseas-entity",
	"OE_OWNERSHIPOFSHARES_MORETHAN25PERCENT_AS_CONTROLOVERFIRM":  "ownership-of-shares-more-than-25-percent-as-control-over-firm-registered-overseas-entity",
	"OE_VOTINGRIGHTS_MORETHAN25PERCENT_AS_CONTROLOVERFIRM":       "voting-rights-more-than-25-percent-as-control-over-firm-registered-overseas-entity",
	"OE_RIGHTTOAPPOINTANDREMOVEDIRECTORS_AS_CONTROLOVERFIRM":     "right-to-appoint-and-remove-directors-as-control-over-firm-registered-overseas-entity",
	"OE_SIGINFLUENCECONTROL_AS_CONTROLOVERFIRM":                  "significant-influence-or-control-as-control-over-firm-registered-overseas-entity",

	"OE_REGOWNER_AS_NOMINEEPERSON_ENGLANDWALES":           "registered-owner-as-nominee-person-england-wales-registered-overseas-entity",
	"OE_REGOWNER_AS_NOMINEEPERSON_SCOTLAND":               "registered-owner-as-nominee-person-scotland-registered-overseas-entity",
	"OE_REGOWNER_AS_NOMINEEPERSON_NORTHERNIRELAND":        "registered-owner-as-nominee-person-northern-ireland-registered-overseas-entity",
	"OE_REGOWNER_AS_NOMINEEANOTHERENTITY_ENGLANDWALES":    "registered-owner-as-nominee-another-entity-england-wales-registered-overseas-entity",
	"OE_REGOWNER_AS_NOMINEEANOTHERENTITY_SCOTLAND":        "registered-owner-as-nominee-another-entity-scotland-registered-overseas-entity",
	"OE_REGOWNER_AS_NOMINEEANOTHERENTITY_NORTHERNIRELAND": "registered-owner-as-nominee-another-entity-northern-ireland-registered-overseas-entity",
}

// ControlMapFor selects the nature-of-control vocabulary for a company number.
func ControlMapFor(companyNumber string) map[string]string {
	if len(companyNumber) < 2 {
		return defaultControlMap
	}
	switch companyNumber[:2] {
	case "SO", "NC", "OC":
		return llpControlMap
	case "OE":
		return roeControlMap
	default:
		return defaultControlMap
	}
}

// MapNaturesOfControl translates delta control codes to public slugs,
// preserving input order. A code missing from the selected vocabulary yields
// an empty placeholder at that position so positional consumers see the same
// cardinality as the input. An empty input leaves the field unset.
func MapNaturesOfControl(companyNumber string, codes []string) []string {
	if len(codes) == 0 {
		return nil
	}
	vocabulary := ControlMapFor(companyNumber)
	slugs := make([]string, len(codes))
	for i, code := range codes {
		slugs[i] = vocabulary[code]
	}
	return slugs
}
