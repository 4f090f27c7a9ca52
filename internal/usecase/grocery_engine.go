package usecase

import (
	"log"
	"math"
	"strings"

	"github.com/mealweek/backend/internal/domain"
)

// aggregationKey decides whether two ingredient lines merge: same normalized
// item name and same unit family.
type aggregationKey struct {
	item   string
	family domain.UnitFamily
}

// bucket is the running total for one aggregation key. baseTotal is exact in
// the family's base unit; rounding happens only when lines are rendered.
// displayText and grocerySection come from the first line seen for the key
// and are never overwritten by later lines.
type bucket struct {
	key            aggregationKey
	baseTotal      float64
	displayText    string
	grocerySection string
}

// quantityUnit is one rendered (quantity, unit) pair after up-conversion.
type quantityUnit struct {
	quantity float64
	unit     string
}

// EngineConfig holds configuration for the grocery engine
type EngineConfig struct {
	EnableDebugLogging bool
}

// GroceryEngine turns a flat list of raw ingredient lines into merged,
// display-ready shopping list lines. It is pure: no I/O, no shared state,
// safe to call concurrently for independent inputs.
type GroceryEngine struct {
	enableDebugLogging bool
}

// NewGroceryEngine creates a new grocery engine
func NewGroceryEngine(config EngineConfig) *GroceryEngine {
	return &GroceryEngine{
		enableDebugLogging: config.EnableDebugLogging,
	}
}

// BuildList aggregates the given lines and renders one or more shopping list
// lines per bucket. Output order is unspecified; callers that need stable
// order sort the result.
func (e *GroceryEngine) BuildList(lines []domain.IngredientLine) []domain.ShoppingListLine {
	buckets := e.aggregate(lines)

	out := make([]domain.ShoppingListLine, 0, len(buckets))
	for _, b := range buckets {
		for _, qu := range upconvert(b.key.family, b.baseTotal) {
			out = append(out, domain.ShoppingListLine{
				Item:           b.displayText,
				Quantity:       qu.quantity,
				Unit:           qu.unit,
				GrocerySection: b.grocerySection,
				Source:         domain.SourceGenerated,
			})
		}
	}

	if e.enableDebugLogging {
		log.Printf("[ENGINE] %d lines -> %d buckets -> %d list lines",
			len(lines), len(buckets), len(out))
	}

	return out
}

// aggregate groups lines by (normalized item, family) and sums quantities
// converted into the family's base unit. Sums stay exact floats here; no
// intermediate rounding, so many small contributions cannot compound error.
func (e *GroceryEngine) aggregate(lines []domain.IngredientLine) map[aggregationKey]*bucket {
	buckets := make(map[aggregationKey]*bucket)

	for _, line := range lines {
		c := Classify(line.Unit)
		key := aggregationKey{
			item:   strings.ToLower(strings.TrimSpace(line.Item)),
			family: c.Family,
		}
		converted := line.Quantity * c.BaseFactor

		if b, ok := buckets[key]; ok {
			b.baseTotal += converted
			continue
		}
		buckets[key] = &bucket{
			key:            key,
			baseTotal:      converted,
			displayText:    strings.TrimSpace(line.Item),
			grocerySection: line.GrocerySection,
		}
	}

	return buckets
}

// upconvert expands a base-unit total into display pairs under the
// never-downconvert policy: a total that fits a coarser unit is never
// expressed purely in a finer one. Thresholds are inclusive, and remainder
// lines below 1 base unit are suppressed rather than emitted as 0.0.
func upconvert(family domain.UnitFamily, baseTotal float64) []quantityUnit {
	switch family.Kind {
	case domain.FamilyVolume:
		return upconvertVolume(baseTotal)
	case domain.FamilyWeight:
		return upconvertWeight(baseTotal)
	case domain.FamilyCount:
		return []quantityUnit{{round1(baseTotal), "whole"}}
	default:
		// Singleton family: identity passthrough in the original unit.
		return []quantityUnit{{round1(baseTotal), family.Other}}
	}
}

// upconvertVolume walks the tsp -> tbsp -> cup ladder from the top.
func upconvertVolume(total float64) []quantityUnit {
	if total >= tspPerCup {
		cups := math.Floor(total / tspPerCup)
		rem := total - cups*tspPerCup
		out := []quantityUnit{{cups, "cup"}}
		if rem >= tspPerTbsp {
			tbsp := math.Floor(rem / tspPerTbsp)
			rem2 := rem - tbsp*tspPerTbsp
			out = append(out, quantityUnit{tbsp, "tbsp"})
			if rem2 >= 1 {
				out = append(out, quantityUnit{round1(rem2), "tsp"})
			}
		} else if rem >= 1 {
			// Sub-tbsp remainder: straight to teaspoons, no tbsp line.
			out = append(out, quantityUnit{round1(rem), "tsp"})
		}
		return out
	}

	if total >= tspPerTbsp {
		tbsp := math.Floor(total / tspPerTbsp)
		rem := total - tbsp*tspPerTbsp
		out := []quantityUnit{{tbsp, "tbsp"}}
		if rem >= 1 {
			out = append(out, quantityUnit{round1(rem), "tsp"})
		}
		return out
	}

	return []quantityUnit{{round1(total), "tsp"}}
}

// upconvertWeight walks the single-level oz -> lb ladder.
func upconvertWeight(total float64) []quantityUnit {
	if total >= ozPerLb {
		lb := math.Floor(total / ozPerLb)
		rem := total - lb*ozPerLb
		out := []quantityUnit{{lb, "lb"}}
		if rem >= 1 {
			out = append(out, quantityUnit{round1(rem), "oz"})
		}
		return out
	}

	return []quantityUnit{{round1(total), "oz"}}
}

// round1 rounds to one decimal place, the single rounding step applied to
// any quantity before it reaches a shopping list line.
func round1(x float64) float64 {
	return math.Round(x*10) / 10
}
