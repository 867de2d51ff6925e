package models

// DashboardVariant tells real data apart from the empty state.
type DashboardVariant string

const (
	// DashboardLive renders the user's own patient_info row.
	DashboardLive DashboardVariant = "live"
	// DashboardPlaceholder renders sample values because no row exists yet.
	DashboardPlaceholder DashboardVariant = "placeholder"
	// DashboardUnavailable renders sample values because the lookup failed.
	DashboardUnavailable DashboardVariant = "unavailable"
)

// Dashboard is everything the home page shows.
type Dashboard struct {
	Variant  DashboardVariant
	Summary  PatientSummary
	User     *User
	Services []Service
}

// PlaceholderSummary returns the sample values shown when a patient has no
// health summary yet.
func PlaceholderSummary() PatientSummary {
	biological, chronological, difference := 26.0, 41.0, -15.0
	name, title, avatar := "Dr. Aarav Lingmoor, MD", "Supervisory Longevity Physician", "/static/img/doctor.png"

	return PatientSummary{
		Biomarkers: BiomarkerCounts{Tested: 312, InRange: 72, OutOfRange: 15},
		Age: AgeSummary{
			Biological:    &biological,
			Chronological: &chronological,
			Difference:    &difference,
		},
		Doctor: DoctorSummary{Name: &name, Title: &title, Avatar: &avatar},
	}
}
