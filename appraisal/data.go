package appraisal

type Stat struct {
	Label   string
	Value   string
	Note    string
	Palette Palette
}

type Feature struct {
	Title       string
	Description string
	Palette     Palette
}

var sampleRecords = []Record{
	{
		ID:         "APR-2024-001",
		Address:    "123 Oak Street, Beverly Hills, CA",
		Status:     StatusCompleted,
		Value:      "$2,450,000",
		Confidence: 94,
		Date:       "2024-01-15",
		Encrypted:  true,
	},
	{
		ID:         "APR-2024-002",
		Address:    "456 Maple Avenue, Manhattan, NY",
		Status:     StatusProcessing,
		Value:      "Processing...",
		Confidence: 0,
		Date:       "2024-01-16",
		Encrypted:  true,
	},
	{
		ID:         "APR-2024-003",
		Address:    "789 Pine Street, Miami, FL",
		Status:     StatusPending,
		Value:      "Pending Review",
		Confidence: 0,
		Date:       "2024-01-16",
		Encrypted:  true,
	},
}

// SampleRecords returns a copy of the dashboard's fixed record list.
func SampleRecords() []Record {
	out := make([]Record, len(sampleRecords))
	copy(out, sampleRecords)
	return out
}

func DashboardStats() []Stat {
	return []Stat{
		{Label: "Total Appraisals", Value: "247", Note: "+12% from last month", Palette: PalettePrimary},
		{Label: "Total Value Assessed", Value: "$42.8M", Note: "+8% from last month", Palette: PaletteAccent},
		{Label: "Privacy Score", Value: "99.8%", Note: "Zero data breaches", Palette: PaletteSuccess},
	}
}

func LandingStats() []Stat {
	return []Stat{
		{Label: "Privacy Score", Value: "99.8%", Palette: PalettePrimary},
		{Label: "Properties Valued", Value: "$2.4B+", Palette: PaletteAccent},
		{Label: "Encrypted Appraisals", Value: "5,247", Palette: PaletteSuccess},
		{Label: "Data Breaches", Value: "0", Palette: PalettePrimary},
	}
}

func Features() []Feature {
	return []Feature{
		{
			Title:       "Zero-Knowledge Proofs",
			Description: "Appraisals computed without revealing sensitive property data to assessors or third parties.",
			Palette:     PalettePrimary,
		},
		{
			Title:       "End-to-End Encryption",
			Description: "All property data encrypted from submission to final appraisal report delivery.",
			Palette:     PaletteAccent,
		},
		{
			Title:       "Accurate Valuations",
			Description: "Advanced ML models deliver precise appraisals while maintaining complete data privacy.",
			Palette:     PaletteSuccess,
		},
	}
}
