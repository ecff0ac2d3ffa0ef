package water

import "strings"

// MineralizationOf buckets a water by mineral content. A textual category
// from the source wins over the numeric threshold when present; phrasing
// follows the French labeling vocabulary found in production datasets.
func MineralizationOf(dryResidue *float64, rawCategory string) Mineralization {
	if cat := strings.ToLower(strings.TrimSpace(rawCategory)); cat != "" {
		switch {
		case strings.Contains(cat, "très faiblement") || strings.Contains(cat, "<50"):
			return MineralizationVeryLow
		case strings.Contains(cat, "faiblement") || strings.Contains(cat, "<500"):
			return MineralizationLow
		case strings.Contains(cat, "moyennement") || strings.Contains(cat, "500-1500"):
			return MineralizationMedium
		case strings.Contains(cat, "fortement") || strings.Contains(cat, ">1500") || strings.Contains(cat, ">3000"):
			return MineralizationHigh
		}
	}
	if dryResidue == nil {
		return MineralizationUnknown
	}
	switch rs := *dryResidue; {
	case rs < 50:
		return MineralizationVeryLow
	case rs <= 500:
		return MineralizationLow
	case rs <= 1500:
		return MineralizationMedium
	default:
		return MineralizationHigh
	}
}

// GeographyOf maps free-text region names onto a coarse zone.
func GeographyOf(region string) Geography {
	reg := strings.ToLower(strings.TrimSpace(region))
	if reg == "" {
		return GeoUnknown
	}
	switch {
	case strings.Contains(reg, "france") || strings.Contains(reg, "français"):
		return GeoFrance
	case strings.Contains(reg, "alpes") || strings.Contains(reg, "massif-central"),
		strings.Contains(reg, "vosges") || strings.Contains(reg, "jura"):
		return GeoMountain
	case strings.Contains(reg, "bretagne") || strings.Contains(reg, "normandie"):
		return GeoAtlantic
	case strings.Contains(reg, "provence") || strings.Contains(reg, "corse"):
		return GeoMediterranean
	default:
		return GeoOther
	}
}

// UsageOf derives consumption tags from explicit usage annotations plus a few
// numeric heuristics. When nothing applies the water defaults to everyday use.
func UsageOf(dryResidue, sodium, ph *float64, name, usages string) []Usage {
	var tags []Usage
	add := func(u Usage) {
		for _, t := range tags {
			if t == u {
				return
			}
		}
		tags = append(tags, u)
	}

	if usages != "" {
		u := strings.ToLower(usages)
		if strings.Contains(u, "nourrisson") {
			add(UsageInfants)
		}
		if strings.Contains(u, "enfant") {
			add(UsageChildren)
		}
		if strings.Contains(u, "digestion") {
			add(UsageDigestion)
		}
		if strings.Contains(u, "magnésium") || strings.Contains(u, "calcium") {
			add(UsageMineralIntake)
		}
		if strings.Contains(u, "sport") {
			add(UsageSport)
		}
	}

	if dryResidue != nil && *dryResidue < 100 && sodium != nil && *sodium < 20 {
		add(UsageInfants)
	}
	if dryResidue != nil && *dryResidue > 1500 {
		add(UsageMineralIntake)
	}
	if name != "" && containsCarbonationKeyword(name) {
		add(UsageDigestion)
	}

	if len(tags) == 0 {
		return []Usage{UsageDaily}
	}
	return tags
}

var carbonationKeywords = []string{"gazéifié", "gazeuse", "pétillant", "sparkling", "carbonated"}

func containsCarbonationKeyword(s string) bool {
	s = strings.ToLower(s)
	for _, kw := range carbonationKeywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}
