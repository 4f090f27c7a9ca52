package usecase

import (
	"strings"

	"github.com/mealweek/backend/internal/domain"
)

// Base-unit factors for the two ladder families. Volume accumulates in
// teaspoons, weight in ounces.
const (
	tspPerTbsp = 3.0
	tspPerCup  = 48.0
	ozPerLb    = 16.0
)

// volumeFactors maps recognized volume units to teaspoons.
var volumeFactors = map[string]float64{
	"tsp":  1,
	"tbsp": tspPerTbsp,
	"cup":  tspPerCup,
}

// weightFactors maps recognized weight units to ounces.
var weightFactors = map[string]float64{
	"oz": 1,
	"lb": ozPerLb,
}

// countSynonyms all collapse to the canonical "whole" count unit.
var countSynonyms = map[string]bool{
	"whole": true,
	"piece": true,
	"each":  true,
}

// Classification ties a raw unit string to its family, its canonical
// spelling, and the multiplier into the family's base unit.
type Classification struct {
	Family     domain.UnitFamily
	Canonical  string
	BaseFactor float64
}

// Classify resolves a raw unit string. It is a total function: anything not
// in the taxonomy becomes its own singleton Other family with factor 1, so an
// unanticipated unit on a new ingredient can never break list generation.
// Input is matched case-insensitively and with surrounding whitespace ignored.
func Classify(unit string) Classification {
	u := strings.ToLower(strings.TrimSpace(unit))

	if factor, ok := volumeFactors[u]; ok {
		return Classification{
			Family:     domain.UnitFamily{Kind: domain.FamilyVolume},
			Canonical:  u,
			BaseFactor: factor,
		}
	}

	if factor, ok := weightFactors[u]; ok {
		return Classification{
			Family:     domain.UnitFamily{Kind: domain.FamilyWeight},
			Canonical:  u,
			BaseFactor: factor,
		}
	}

	if countSynonyms[u] {
		return Classification{
			Family:     domain.UnitFamily{Kind: domain.FamilyCount},
			Canonical:  "whole",
			BaseFactor: 1,
		}
	}

	return Classification{
		Family:     domain.UnitFamily{Kind: domain.FamilyOther, Other: u},
		Canonical:  u,
		BaseFactor: 1,
	}
}
