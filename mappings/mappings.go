package mappings

import "strconv"

// Code -> label tables for the coded profile fields. The backend stores
// religion, caste, education, occupation and district/city as small integer
// codes; these tables translate them for display. Loaded once, never mutated.
// Unmapped codes are expected (the backend adds new ones over time) and fall
// back to the raw code, never an error.

var RELIGION_MAP = map[string]string{
	"1": "Hindu",
	"2": "Christian",
	"3": "Muslim",
	"4": "Other",
}

var CASTE_MAP = map[string]string{
	"1": "Nadar",
	"2": "Other",
}

var EDUCATION_MAP = map[string]string{
	"1":  "B.E",
	"2":  "M.E",
	"3":  "B.Tech",
	"4":  "M.Tech",
	"5":  "MBBS",
	"6":  "MD",
	"7":  "BDS",
	"8":  "B.Sc",
	"9":  "M.Sc",
	"10": "B.Com",
	"11": "M.Com",
	"12": "B.A",
	"13": "M.A",
	"14": "MBA",
	"15": "MCA",
	"16": "PhD",
	"17": "Diploma",
	"18": "HSC",
	"19": "SSLC",
	"20": "Degree",
	"21": "Other",
}

var OCCUPATION_MAP = map[string]string{
	"1":  "Software Engineer",
	"2":  "Government",
	"3":  "Doctor",
	"4":  "Teacher",
	"5":  "Banker",
	"6":  "Business",
	"18": "Private Sector",
	"20": "Employee",
	"21": "Self Employed",
}

var LOCATION_MAP = map[string]string{
	"1":  "Chennai",
	"2":  "Madurai",
	"3":  "Coimbatore",
	"4":  "Trichy",
	"5":  "Salem",
	"6":  "Tirunelveli",
	"7":  "Thoothukudi",
	"26": "Thoothukudi",
}

// GetLabel resolves a coded field value to its human label. Rules, in order:
// empty values return the fallback; literal (non-numeric) values pass through
// untouched; mapped codes return their label; unmapped codes return the
// fallback when one was given, else the code itself.
func GetLabel(m map[string]string, value, fallback string) string {
	if value == "" {
		return fallback
	}
	if _, err := strconv.Atoi(value); err != nil {
		return value
	}
	if label, ok := m[value]; ok {
		return label
	}
	if fallback != "" {
		return fallback
	}
	return value
}
