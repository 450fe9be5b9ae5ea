package catalog

// Projects returns the De Steiger dataset: the bedrijfsunit product lines and
// the opslagbox lines. The dataset is read-only at runtime; unit status is the
// single source of truth for availability.
func Projects() []Project {
	return []Project{
		{
			ID:            1,
			Name:          "Bedrijfsunit Type 1",
			Location:      "De Steiger, Almere",
			Status:        ProjectForSale,
			Description:   "Compacte bedrijfsunit met eigen entree en overheaddeur, geschikt voor opslag en lichte bedrijvigheid.",
			StartingPrice: "€ 148,890 v.o.n. ex. BTW",
			UnitCount:     8,
			Features:      []string{"Overheaddeur 3.5m", "Eigen parkeerplaats", "Krachtstroom"},
			Images:        []string{"/images/type-1/exterieur.jpg", "/images/type-1/interieur.jpg"},
			Slug:          "bedrijfsunit-type-1",
			Details: &ProjectDetails{
				LocationText:   "Direct aan de hoofdontsluiting van bedrijvenpark De Steiger.",
				Accessibility:  "Op vijf minuten van de A6, afrit 4.",
				Sustainability: "Gasloos, voorbereid op zonnepanelen.",
				Facilities:     []string{"Gezamenlijk buitenterrein", "Camerabewaking"},
				Specifications: map[string]string{
					"Vrije hoogte":    "6.5 m",
					"Vloerbelasting":  "1.000 kg/m²",
					"Overheaddeur":    "3.5 x 4.2 m",
				},
				Units: []UnitDetail{
					{UnitNumber: 1, NetArea: 64, GrossArea: 68, Price: "€ 148,890 v.o.n. ex. BTW", Status: UnitSold},
					{UnitNumber: 2, NetArea: 64, GrossArea: 68, Price: "€ 148,890 v.o.n. ex. BTW", Status: UnitAvailable},
					{UnitNumber: 3, NetArea: 64, GrossArea: 68, Price: "€ 148,890 v.o.n. ex. BTW", Status: UnitAvailable},
					{UnitNumber: 4, NetArea: 72, GrossArea: 76, Price: "€ 167,560 v.o.n. ex. BTW", Status: UnitReserved},
					{UnitNumber: 5, NetArea: 72, GrossArea: 76, Price: "€ 167,560 v.o.n. ex. BTW", Status: UnitAvailable},
					{UnitNumber: 6, NetArea: 72, GrossArea: 76, Price: "€ 167,560 v.o.n. ex. BTW", Status: UnitAvailable},
					{UnitNumber: 7, NetArea: 80, GrossArea: 85, Price: "€ 186,230 v.o.n. ex. BTW", Status: UnitAvailable},
					{UnitNumber: 8, NetArea: 80, GrossArea: 85, Price: "€ 186,230 v.o.n. ex. BTW", Status: UnitSold},
				},
			},
		},
		{
			ID:            2,
			Name:          "Bedrijfsunit Type 2",
			Location:      "De Steiger, Almere",
			Status:        ProjectForSale,
			Description:   "Ruime bedrijfsunit met entresolvloer, geschikt voor productie en groothandel.",
			StartingPrice: "€ 212,520 v.o.n. ex. BTW",
			UnitCount:     6,
			Features:      []string{"Entresolvloer", "Overheaddeur 4m", "Eigen meterkast"},
			Images:        []string{"/images/type-2/exterieur.jpg"},
			Slug:          "bedrijfsunit-type-2",
			Details: &ProjectDetails{
				LocationText:  "Middenstrook van het park, zicht op de waterkant.",
				Accessibility: "Op vijf minuten van de A6, afrit 4.",
				Facilities:    []string{"Gezamenlijk buitenterrein", "Glasvezel"},
				Specifications: map[string]string{
					"Vrije hoogte":   "7.2 m",
					"Vloerbelasting": "1.500 kg/m²",
					"Overheaddeur":   "4.0 x 4.5 m",
				},
				Investor: &InvestorInfo{
					RentalYield:  "6.8%",
					RentPerMonth: "€ 1,275 ex. BTW",
				},
				Units: []UnitDetail{
					{UnitNumber: 1, NetArea: 92, GrossArea: 98, Price: "€ 212,520 v.o.n. ex. BTW", Status: UnitSold},
					{UnitNumber: 2, NetArea: 92, GrossArea: 98, Price: "€ 212,520 v.o.n. ex. BTW", Status: UnitAvailable},
					{UnitNumber: 3, NetArea: 92, GrossArea: 98, Price: "€ 212,520 v.o.n. ex. BTW", Status: UnitAvailable},
					{UnitNumber: 4, NetArea: 104, GrossArea: 110, Price: "€ 239,800 v.o.n. ex. BTW", Status: UnitReserved},
					{UnitNumber: 5, NetArea: 104, GrossArea: 110, Price: "€ 239,800 v.o.n. ex. BTW", Status: UnitAvailable},
					{UnitNumber: 6, NetArea: 104, GrossArea: 110, Price: "€ 239,800 v.o.n. ex. BTW", Status: UnitSold},
				},
			},
		},
		{
			ID:            3,
			Name:          "Bedrijfsunit Type 3",
			Location:      "De Steiger, Almere",
			Status:        ProjectForSale,
			Description:   "Grote bedrijfsunit met gecombineerde bedrijfs- en kantoorruimte op de kop van het park.",
			StartingPrice: "€ 610,400 - € 640,920 v.o.n. ex. BTW",
			UnitCount:     4,
			Features:      []string{"Kantoor op verdieping", "Twee overheaddeuren", "Representatieve entree"},
			Images:        []string{"/images/type-3/exterieur.jpg", "/images/type-3/kantoor.jpg"},
			Slug:          "bedrijfsunit-type-3",
			Details: &ProjectDetails{
				LocationText:  "Zichtlocatie op de kop van het park.",
				Accessibility: "Eigen in- en uitrit voor vrachtverkeer.",
				Facilities:    []string{"Eigen parkeerterrein", "Laaddock"},
				Specifications: map[string]string{
					"Vrije hoogte":   "8.0 m",
					"Vloerbelasting": "2.000 kg/m²",
				},
				Investor: &InvestorInfo{
					RentalYield:    "6.2%",
					RentPerMonth:   "€ 3,450 ex. BTW",
					ServiceCharges: "€ 180 per maand",
				},
				Units: []UnitDetail{
					{UnitNumber: 1, NetArea: 285, GrossArea: 301, Price: "€ 610,400 v.o.n. ex. BTW", Status: UnitAvailable, IndustryArea: 220, OfficeArea: 65},
					{UnitNumber: 2, NetArea: 285, GrossArea: 301, Price: "€ 610,400 v.o.n. ex. BTW", Status: UnitReserved, IndustryArea: 220, OfficeArea: 65},
					{UnitNumber: 3, NetArea: 298, GrossArea: 315, Price: "€ 640,920 v.o.n. ex. BTW", Status: UnitAvailable, IndustryArea: 230, OfficeArea: 68},
					{UnitNumber: 4, NetArea: 298, GrossArea: 315, Price: "€ 640,920 v.o.n. ex. BTW", Status: UnitAvailable, IndustryArea: 230, OfficeArea: 68},
				},
			},
		},
		{
			ID:            4,
			Name:          "Bedrijfsunit Type 4",
			Location:      "De Steiger, Almere",
			Status:        ProjectComingSoon,
			Description:   "Tweede fase: bedrijfsunits met flexibele indeling, oplevering nader te bepalen.",
			UnitCount:     12,
			Images:        []string{"/images/type-4/impressie.jpg"},
			Slug:          "bedrijfsunit-type-4",
		},
		{
			ID:            5,
			Name:          "Opslagbox Type A",
			Location:      "De Steiger, Almere",
			Status:        ProjectForSale,
			Description:   "Opslagbox op de begane grond met eigen roldeur, direct aan de rijbaan.",
			StartingPrice: "€ 42,500 v.o.n. ex. BTW",
			UnitCount:     24,
			Features:      []string{"Roldeur", "Verlichting", "24/7 toegang"},
			Images:        []string{"/images/opslagbox-a/rij.jpg"},
			Slug:          "opslagbox-type-a",
			Details: &ProjectDetails{
				LocationText: "Achterzijde van het park, eigen toegangspoort.",
				Facilities:   []string{"Toegangspoort met tag", "Camerabewaking"},
				Specifications: map[string]string{
					"Vrije hoogte": "3.0 m",
					"Roldeur":      "2.5 x 2.8 m",
				},
				Units: []UnitDetail{
					{UnitNumber: 1, NetArea: 18, GrossArea: 20, Price: "€ 42,500 v.o.n. ex. BTW", Status: UnitAvailable},
					{UnitNumber: 2, NetArea: 18, GrossArea: 20, Price: "€ 42,500 v.o.n. ex. BTW", Status: UnitAvailable},
					{UnitNumber: 3, NetArea: 18, GrossArea: 20, Price: "€ 42,500 v.o.n. ex. BTW", Status: UnitReserved},
					{UnitNumber: 4, NetArea: 24, GrossArea: 26, Price: "€ 51,800 v.o.n. ex. BTW", Status: UnitAvailable},
					{UnitNumber: 5, NetArea: 24, GrossArea: 26, Price: "€ 51,800 v.o.n. ex. BTW", Status: UnitSold},
					{UnitNumber: 6, NetArea: 24, GrossArea: 26, Price: "€ 51,800 v.o.n. ex. BTW", Status: UnitAvailable},
				},
			},
		},
		{
			ID:            6,
			Name:          "Opslagbox Type B",
			Location:      "De Steiger, Almere",
			Status:        ProjectSoldOut,
			Description:   "Opslagbox op de verdieping, bereikbaar via de gezamenlijke goederenlift.",
			StartingPrice: "€ 29,750 v.o.n. ex. BTW",
			UnitCount:     16,
			Images:        []string{"/images/opslagbox-b/gang.jpg"},
			Slug:          "opslagbox-type-b",
		},
	}
}
