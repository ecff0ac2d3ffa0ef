package water

import (
	"math"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// RawRow maps a CSV header name to the raw field value for one line.
type RawRow map[string]string

// Normalizer turns raw rows into canonical records. The zero value is not
// usable; construct with NewNormalizer. NewID can be overridden for
// deterministic ids in tests.
type Normalizer struct {
	NewID func() string
}

func NewNormalizer() *Normalizer {
	return &Normalizer{NewID: uuid.NewString}
}

// get resolves one canonical field from an ordered list of acceptable source
// headers. Matches are case-sensitive against the header as found in the
// file; the first alias with a non-empty value wins.
func (r RawRow) get(keys ...string) string {
	for _, k := range keys {
		if v, ok := r[k]; ok && strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	return ""
}

// num coerces a raw value to a float. Decimal commas are accepted; anything
// that does not parse to a finite number is absent, never zero.
func num(v string) *float64 {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil
	}
	f, err := strconv.ParseFloat(strings.ReplaceAll(v, ",", "."), 64)
	if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
		return nil
	}
	return &f
}

// truthy recognizes the sparkling-flag vocabulary of the source datasets.
func truthy(v string) bool {
	v = strings.ToLower(strings.TrimSpace(v))
	if v == "" {
		return false
	}
	return v == "oui" || strings.HasPrefix(v, "o") || v == "1" || v == "true" || v == "yes"
}

// Normalize maps an arbitrarily-named source row into a canonical Record.
// Rows whose name cannot be resolved are discarded (nil return).
func (n *Normalizer) Normalize(row RawRow) *Record {
	name := row.get("Nom", "name", "libelle", "label")
	if name == "" {
		return nil
	}

	rec := &Record{Name: name}

	rec.ID = row.get("id", "ID", "Id")
	if rec.ID == "" {
		rec.ID = n.NewID()
	}

	typeRaw := strings.ToLower(row.get("Type_eau", "type", "Type", "categorie"))
	sparklingFlag := truthy(row.get("Gazeuse", "gazeuse", "Carbonatée", "Eau gazeuse"))
	switch {
	case strings.Contains(typeRaw, "pétillante") || strings.Contains(typeRaw, "petillante") || strings.Contains(typeRaw, "sparkling"):
		rec.Type = Sparkling
	case sparklingFlag:
		rec.Type = Sparkling
	case containsCarbonationKeyword(name):
		rec.Type = Sparkling
	default:
		rec.Type = Still
	}

	rec.Source = row.get("source", "Source", "origine", "ressource")
	rec.Region = row.get("Origine_geographique", "region", "Region", "departement", "dept", "pays")
	rec.Owner = row.get("Proprietaire", "Proprietaire_Marque")
	rec.Packaging = row.get("Type_conditionnement")
	rec.OfficialType = row.get("Type_officiel_ANSES")
	rec.Certifications = row.get("Label_certification")
	rec.History = row.get("Historique_Anecdotes")

	rec.Coordinates.Latitude = num(row.get("lat", "latitude", "Latitude"))
	rec.Coordinates.Longitude = num(row.get("lon", "lng", "longitude", "Longitude"))

	rec.PH = num(row.get("pH", "ph", "PH", "Ph"))
	rec.Conductivity = num(row.get("Conductivite_µS_cm"))
	rec.DryResidue = num(row.get("Residu_sec_180C_mg_L", "residuSec", "residu", "residu sec", "RS", "residu_sec"))
	rec.Temperature = num(row.get("Température_source_C", "temperature"))

	rec.Bicarbonate = num(row.get("Bicarbonates_mg_L", "bicarbonates", "HCO3"))
	rec.Calcium = num(row.get("Calcium_mg_L", "calcium", "Ca"))
	rec.Magnesium = num(row.get("Magnesium_mg_L", "magnesium", "Mg", "magnesium (mg/L)", "Magnésium"))
	rec.Sodium = num(row.get("Sodium_mg_L", "sodium", "Na", "sodium (mg/L)", "Sodium"))
	rec.Potassium = num(row.get("Potassium_mg_L", "potassium", "K"))
	rec.Chloride = num(row.get("Chlorures_mg_L", "chlorures", "Cl"))
	rec.Sulfate = num(row.get("Sulfates_mg_L", "sulfates", "SO4"))
	rec.Nitrate = num(row.get("Nitrates_mg_L", "nitrates", "NO3"))
	rec.Fluoride = num(row.get("Fluorures_mg_L", "fluorures", "F"))
	rec.Silica = num(row.get("Silice_mg_L", "silice", "SiO2"))
	rec.Iron = num(row.get("Fer_mg_L", "fer", "Fe"))

	rec.TFA = num(row.get("TFA_ng_L"))
	rec.PFOA = num(row.get("PFOA_ng_L"))
	rec.PFOS = num(row.get("PFOS_ng_L"))
	rec.PFASSum = num(row.get("Somme_PFAS_ng_L"))
	rec.RelevantPesticides = num(row.get("Metabolites_pesticides_pertinents_µg_L"))
	rec.NonRelevantPesticides = num(row.get("Metabolites_pesticides_non_pertinents_µg_L"))
	rec.MicroplasticsPerLiter = num(row.get("Microplastiques_particules_L", "microplasticsParticlesPerLiter",
		"microplastiques", "microplastiques (p/L)", "microplastics (p/L)"))
	rec.Bisphenols = num(row.get("Bisphenols_µg_L"))
	rec.Phthalates = num(row.get("Phtalates_µg_L"))
	rec.DrugResidueStatus = row.get("Residus_medicamenteux_detection")

	rec.AlphaActivity = num(row.get("Activite_alpha_globale_Bq_L"))
	rec.BetaActivity = num(row.get("Activite_beta_globale_Bq_L"))
	rec.Tritium = num(row.get("Tritium_Bq_L"))
	rec.AnnualDoseIndicator = num(row.get("DTI_mSv_an"))
	rec.Uranium = num(row.get("Uranium_µg_L"))
	rec.Radon = num(row.get("Radon_222_Bq_L"))

	rec.DailyValueCalciumPct = num(row.get("AJR_Calcium_pourcentage_1L"))
	rec.DailyValueMagnesiumPct = num(row.get("AJR_Magnesium_pourcentage_1L"))

	rec.CarbonFootprint = num(row.get("Empreinte_carbone_kg_CO2_L", "Empreinte_carbone_estimee"))
	rec.WaterFootprint = num(row.get("Empreinte_hydrique_L_eau_L_produit"))
	rec.PackagingRecyclingPct = num(row.get("Taux_recyclage_emballage_pourcentage"))
	rec.RecognitionYear = num(row.get("Annee_reconnaissance_officielle"))
	rec.CompositionVariationCoef = num(row.get("Coefficient_variation_composition"))

	rec.EUComplianceStatus = row.get("Conformite_EU_2008_100_CE")
	rec.NationalComplianceStatus = row.get("Conformite_ANSES_2025")
	rec.MicrobiologicalStability = row.get("Stabilite_microbiologique")
	rec.ControlLab = row.get("Laboratoire_controle")
	rec.LastAnalysisDate = row.get("Date_derniere_analyse")

	rec.RecommendedUses = row.get("Mentions_therapeutiques_validees", "Usages_recommandes", "usages", "usage")
	rec.UsageRestrictions = row.get("Restrictions_usage", "Contre_indications_medicales", "Restrictions_sanitaires")
	rec.MedicalContraindications = row.get("Contre_indications_medicales")
	rec.LabelingMentions = row.get("Mentions_obligatoires_etiquetage")

	rec.Categories = Categories{
		Mineralization: MineralizationOf(rec.DryResidue, row.get("Categorie_mineralisation")),
		Geography:      GeographyOf(rec.Region),
		Usage:          UsageOf(rec.DryResidue, rec.Sodium, rec.PH, rec.Name, rec.RecommendedUses),
	}

	return rec
}
