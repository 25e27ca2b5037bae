package enum

// DonationType identifies the kind of donation a receipt covers. It is
// stored as a string so that receipts generated for values outside the
// known set still render (the raw value becomes the display label).
type DonationType string

const (
	DonationGeneral             DonationType = "General Donation"
	DonationSeva                DonationType = "Seva Donation"
	DonationAnnadanam           DonationType = "Annadanam"
	DonationVastraDanam         DonationType = "Vastra Danam"
	DonationBuildingFund        DonationType = "Building Fund"
	DonationFestivalSponsorship DonationType = "Festival Sponsorship"
	DonationPujaSponsorship     DonationType = "Puja Sponsorship"
)

// donationLabels maps each known donation type to its Nepali display label.
var donationLabels = map[DonationType]string{
	DonationGeneral:             "साधारण दान",
	DonationSeva:                "सेवा दान",
	DonationAnnadanam:           "अन्नदान",
	DonationVastraDanam:         "वस्त्र दान",
	DonationBuildingFund:        "भवन निर्माण कोष",
	DonationFestivalSponsorship: "पर्व प्रायोजन",
	DonationPujaSponsorship:     "पूजा प्रायोजन",
}

// Label returns the localized display label for the donation type. Unmapped
// values fall back to the raw value unchanged, never an empty string.
func (t DonationType) Label() string {
	if label, ok := donationLabels[t]; ok {
		return label
	}
	return string(t)
}

// IsPeriodBased reports whether the donation covers a date range rather
// than a single donation date.
func (t DonationType) IsPeriodBased() bool {
	return t == DonationSeva
}
