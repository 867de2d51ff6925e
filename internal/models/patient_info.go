package models

import "time"

// PatientInfo is the aggregated health summary of one user.
type PatientInfo struct {
	ID                 string    `json:"id" db:"id"`
	UserID             string    `json:"user_id" db:"user_id"`
	BiomarkersTested   int       `json:"biomarkers_tested" db:"biomarkers_tested"`
	BiomarkersInRange  int       `json:"biomarkers_in_range" db:"biomarkers_in_range"`
	BiomarkersOutRange int       `json:"biomarkers_out_range" db:"biomarkers_out_range"`
	BiologicalAge      *float64  `json:"biological_age" db:"biological_age"`
	ChronologicalAge   *float64  `json:"chronological_age" db:"chronological_age"`
	YearsDifference    *float64  `json:"years_difference" db:"years_difference"`
	DoctorName         *string   `json:"doctor_name" db:"doctor_name"`
	DoctorTitle        *string   `json:"doctor_title" db:"doctor_title"`
	DoctorAvatar       *string   `json:"doctor_avatar" db:"doctor_avatar"`
	CreatedAt          time.Time `json:"created_at" db:"created_at"`
}

// BiomarkerCounts summarises tested biomarkers.
type BiomarkerCounts struct {
	Tested     int `json:"tested"`
	InRange    int `json:"inRange"`
	OutOfRange int `json:"outOfRange"`
}

// AgeSummary compares biological and chronological age.
type AgeSummary struct {
	Biological    *float64 `json:"biological"`
	Chronological *float64 `json:"chronological"`
	Difference    *float64 `json:"difference"`
}

// DoctorSummary is the patient's assigned doctor.
type DoctorSummary struct {
	Name   *string `json:"name"`
	Title  *string `json:"title"`
	Avatar *string `json:"avatar"`
}

// PatientSummary is the camelCase view of PatientInfo served by the API.
type PatientSummary struct {
	Biomarkers BiomarkerCounts `json:"biomarkers"`
	Age        AgeSummary      `json:"age"`
	Doctor     DoctorSummary   `json:"doctor"`
}

// NewPatientSummary maps a patient_info row to its API representation.
func NewPatientSummary(p *PatientInfo) PatientSummary {
	return PatientSummary{
		Biomarkers: BiomarkerCounts{
			Tested:     p.BiomarkersTested,
			InRange:    p.BiomarkersInRange,
			OutOfRange: p.BiomarkersOutRange,
		},
		Age: AgeSummary{
			Biological:    p.BiologicalAge,
			Chronological: p.ChronologicalAge,
			Difference:    p.YearsDifference,
		},
		Doctor: DoctorSummary{
			Name:   p.DoctorName,
			Title:  p.DoctorTitle,
			Avatar: p.DoctorAvatar,
		},
	}
}
