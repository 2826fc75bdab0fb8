package constants

// Closed option sets for the onboarding form. The submission schema
// rejects any value outside these lists.

// OptionOther is the sentinel checklist entry that unlocks the
// dependent free-text tag field.
const OptionOther = "Autres"

var AccountTypes = []string{
	"Auto-entrepreneur",
	"Société",
}

var VehicleCategories = []string{
	"Berline",
	"Business",
	"Van",
	"VIP",
}

var PricingModels = []string{
	"Forfait Horaire",
	"Forfait Journée",
	"Mixte",
}

var PaymentTimings = []string{
	"100% commande",
	"30% acompte",
	"Paiement à bord",
}

var ServiceAreas = []string{
	"Paris Intramuros",
	"Île-de-France",
	"France Entière",
}

var BookingChannels = []string{
	"Téléphone",
	"Email",
	"Plateformes",
	"Site web",
	OptionOther,
}

var CriticalInfoItems = []string{
	"Vol retardé",
	"Client absent",
	"Embouteillages",
	"Changement d'itinéraire",
	OptionOther,
}

var Languages = []string{
	"Français",
	"Anglais",
	OptionOther,
}

var PremiumServices = []string{
	"Eau",
	"Wifi",
	"Chargeurs",
	"Presse",
	"Siège enfant",
}

var CancellationPolicies = []string{
	"Flexible",
	"Modérée",
	"Stricte",
}

// Contains reports whether value is part of the given option set.
func Contains(options []string, value string) bool {
	for _, o := range options {
		if o == value {
			return true
		}
	}
	return false
}
