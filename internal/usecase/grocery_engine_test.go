package usecase

import (
	"math"
	"testing"

	"github.com/mealweek/backend/internal/domain"
)

func line(item string, qty float64, unit string) domain.IngredientLine {
	return domain.IngredientLine{Item: item, Quantity: qty, Unit: unit}
}

type wantLine struct {
	qty  float64
	unit string
	item string
}

func assertLines(t *testing.T, got []domain.ShoppingListLine, want []wantLine) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d lines, want %d: %+v", len(got), len(want), got)
	}
	// Engine output order is unspecified; match each expectation anywhere.
	used := make([]bool, len(got))
	for _, w := range want {
		found := false
		for i, g := range got {
			if used[i] {
				continue
			}
			if g.Item == w.item && g.Unit == w.unit && g.Quantity == w.qty {
				used[i] = true
				found = true
				break
			}
		}
		if !found {
			t.Errorf("missing line (%.1f, %q, %q) in %+v", w.qty, w.unit, w.item, got)
		}
	}
}

func TestBuildListScenarios(t *testing.T) {
	e := NewGroceryEngine(EngineConfig{})

	testCases := []struct {
		name  string
		input []domain.IngredientLine
		want  []wantLine
	}{
		{
			name:  "merges same item same unit",
			input: []domain.IngredientLine{line("flour", 2, "cup"), line("flour", 1, "cup")},
			want:  []wantLine{{3.0, "cup", "flour"}},
		},
		{
			name:  "exact tbsp threshold suppresses remainder",
			input: []domain.IngredientLine{line("salt", 2, "tsp"), line("salt", 1, "tsp")},
			want:  []wantLine{{1.0, "tbsp", "salt"}},
		},
		{
			name:  "tbsp with tsp remainder",
			input: []domain.IngredientLine{line("pepper", 4, "tsp")},
			want:  []wantLine{{1.0, "tbsp", "pepper"}, {1.0, "tsp", "pepper"}},
		},
		{
			name:  "never upconverts below the cup threshold",
			input: []domain.IngredientLine{line("oil", 2, "tbsp")},
			want:  []wantLine{{2.0, "tbsp", "oil"}},
		},
		{
			name:  "exact pound threshold",
			input: []domain.IngredientLine{line("chicken", 8, "oz"), line("chicken", 8, "oz")},
			want:  []wantLine{{1.0, "lb", "chicken"}},
		},
		{
			name:  "count synonyms merge to whole",
			input: []domain.IngredientLine{line("egg", 1, "whole"), line("egg", 1, "piece")},
			want:  []wantLine{{2.0, "whole", "egg"}},
		},
		{
			name:  "different families never merge",
			input: []domain.IngredientLine{line("flour", 2, "cup"), line("flour", 100, "g")},
			want:  []wantLine{{2.0, "cup", "flour"}, {100.0, "g", "flour"}},
		},
		{
			name:  "sub-pound total rounds once at the end",
			input: []domain.IngredientLine{line("beef", 0.333, "lb"), line("beef", 0.333, "lb")},
			want:  []wantLine{{10.7, "oz", "beef"}},
		},
		{
			name:  "exact cup threshold never renders as tbsp",
			input: []domain.IngredientLine{line("sugar", 48, "tsp")},
			want:  []wantLine{{1.0, "cup", "sugar"}},
		},
		{
			name:  "cup plus tbsp plus tsp",
			input: []domain.IngredientLine{line("milk", 52, "tsp")},
			want:  []wantLine{{1.0, "cup", "milk"}, {1.0, "tbsp", "milk"}, {1.0, "tsp", "milk"}},
		},
		{
			name:  "sub-tbsp remainder above a cup skips the tbsp line",
			input: []domain.IngredientLine{line("broth", 50, "tsp")},
			want:  []wantLine{{1.0, "cup", "broth"}, {2.0, "tsp", "broth"}},
		},
		{
			name:  "pound with ounce remainder",
			input: []domain.IngredientLine{line("potatoes", 20, "oz")},
			want:  []wantLine{{1.0, "lb", "potatoes"}, {4.0, "oz", "potatoes"}},
		},
		{
			name:  "different items never merge",
			input: []domain.IngredientLine{line("salt", 1, "tsp"), line("sugar", 1, "tsp")},
			want:  []wantLine{{1.0, "tsp", "salt"}, {1.0, "tsp", "sugar"}},
		},
		{
			name:  "item identity ignores case and padding",
			input: []domain.IngredientLine{line("Flour", 1, "cup"), line("  flour ", 1, "cup")},
			want:  []wantLine{{2.0, "cup", "Flour"}},
		},
		{
			name:  "unknown units pass through untouched",
			input: []domain.IngredientLine{line("garlic", 3, "cloves"), line("garlic", 2, "cloves")},
			want:  []wantLine{{5.0, "cloves", "garlic"}},
		},
		{
			name:  "zero quantity still emits a line",
			input: []domain.IngredientLine{line("saffron", 0, "tsp")},
			want:  []wantLine{{0.0, "tsp", "saffron"}},
		},
		{
			name:  "empty input yields empty list",
			input: nil,
			want:  nil,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := e.BuildList(tc.input)
			assertLines(t, got, tc.want)
		})
	}
}

func TestBuildListKeepsFirstDisplayTextAndSection(t *testing.T) {
	e := NewGroceryEngine(EngineConfig{})

	input := []domain.IngredientLine{
		{Item: "Cheddar Cheese", Quantity: 4, Unit: "oz", GrocerySection: "dairy"},
		{Item: "cheddar cheese", Quantity: 4, Unit: "oz", GrocerySection: "deli"},
	}

	got := e.BuildList(input)
	if len(got) != 1 {
		t.Fatalf("got %d lines, want 1: %+v", len(got), got)
	}
	if got[0].Item != "Cheddar Cheese" {
		t.Errorf("Item = %q, want first-seen casing %q", got[0].Item, "Cheddar Cheese")
	}
	if got[0].GrocerySection != "dairy" {
		t.Errorf("GrocerySection = %q, want first-seen %q", got[0].GrocerySection, "dairy")
	}
	if got[0].Quantity != 8.0 {
		t.Errorf("Quantity = %v, want 8.0", got[0].Quantity)
	}
	if got[0].Source != domain.SourceGenerated {
		t.Errorf("Source = %q, want %q", got[0].Source, domain.SourceGenerated)
	}
}

// Conservation: the emitted lines for one bucket must re-sum to the bucket's
// base total within 0.1 absolute tolerance.
func TestBuildListConservation(t *testing.T) {
	e := NewGroceryEngine(EngineConfig{})

	testCases := []struct {
		name      string
		input     []domain.IngredientLine
		baseTotal float64 // in the family's base unit
	}{
		{
			name:      "volume with awkward fractions",
			input:     []domain.IngredientLine{line("stock", 1.3, "cup"), line("stock", 2.7, "tbsp"), line("stock", 0.4, "tsp")},
			baseTotal: 1.3*48 + 2.7*3 + 0.4,
		},
		{
			name:      "weight with repeating decimals",
			input:     []domain.IngredientLine{line("rice", 0.333, "lb"), line("rice", 0.333, "lb"), line("rice", 1.1, "oz")},
			baseTotal: 0.333*16 + 0.333*16 + 1.1,
		},
		{
			name:      "large volume total",
			input:     []domain.IngredientLine{line("water", 3.25, "cup"), line("water", 5, "tbsp"), line("water", 2, "tsp")},
			baseTotal: 3.25*48 + 5*3 + 2,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := e.BuildList(tc.input)
			var sum float64
			for _, l := range got {
				c := Classify(l.Unit)
				sum += l.Quantity * c.BaseFactor
			}
			if math.Abs(sum-tc.baseTotal) > 0.1 {
				t.Errorf("emitted lines sum to %v base units, want %v ±0.1", sum, tc.baseTotal)
			}
		})
	}
}

func TestUpconvertVolume(t *testing.T) {
	testCases := []struct {
		name  string
		total float64
		want  []quantityUnit
	}{
		{name: "zero", total: 0, want: []quantityUnit{{0, "tsp"}}},
		{name: "below tbsp", total: 2.9, want: []quantityUnit{{2.9, "tsp"}}},
		{name: "exactly one tbsp", total: 3, want: []quantityUnit{{1, "tbsp"}}},
		{name: "tbsp with sub-tsp remainder suppressed", total: 3.5, want: []quantityUnit{{1, "tbsp"}}},
		{name: "tbsp with tsp remainder", total: 4, want: []quantityUnit{{1, "tbsp"}, {1, "tsp"}}},
		{name: "just under a cup", total: 47, want: []quantityUnit{{15, "tbsp"}, {2, "tsp"}}},
		{name: "exactly one cup", total: 48, want: []quantityUnit{{1, "cup"}}},
		{name: "cup with sub-tsp remainder suppressed", total: 48.9, want: []quantityUnit{{1, "cup"}}},
		{name: "cup with tsp remainder skips tbsp", total: 50, want: []quantityUnit{{1, "cup"}, {2, "tsp"}}},
		{name: "cup with tbsp remainder", total: 54, want: []quantityUnit{{1, "cup"}, {2, "tbsp"}}},
		{name: "cup tbsp and tsp", total: 52, want: []quantityUnit{{1, "cup"}, {1, "tbsp"}, {1, "tsp"}}},
		{name: "multiple cups", total: 100, want: []quantityUnit{{2, "cup"}, {1, "tbsp"}, {1, "tsp"}}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := upconvertVolume(tc.total)
			if len(got) != len(tc.want) {
				t.Fatalf("got %v, want %v", got, tc.want)
			}
			for i := range got {
				if got[i] != tc.want[i] {
					t.Errorf("entry %d = %v, want %v", i, got[i], tc.want[i])
				}
			}
		})
	}
}

func TestUpconvertWeight(t *testing.T) {
	testCases := []struct {
		name  string
		total float64
		want  []quantityUnit
	}{
		{name: "zero", total: 0, want: []quantityUnit{{0, "oz"}}},
		{name: "below a pound", total: 15.9, want: []quantityUnit{{15.9, "oz"}}},
		{name: "exactly one pound", total: 16, want: []quantityUnit{{1, "lb"}}},
		{name: "pound with sub-oz remainder suppressed", total: 16.5, want: []quantityUnit{{1, "lb"}}},
		{name: "pound with oz remainder", total: 20, want: []quantityUnit{{1, "lb"}, {4, "oz"}}},
		{name: "several pounds", total: 35.2, want: []quantityUnit{{2, "lb"}, {3.2, "oz"}}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := upconvertWeight(tc.total)
			if len(got) != len(tc.want) {
				t.Fatalf("got %v, want %v", got, tc.want)
			}
			for i := range got {
				if got[i] != tc.want[i] {
					t.Errorf("entry %d = %v, want %v", i, got[i], tc.want[i])
				}
			}
		})
	}
}

func TestRound1(t *testing.T) {
	testCases := []struct {
		in   float64
		want float64
	}{
		{0.333, 0.3},
		{10.656, 10.7},
		{0.04, 0.0},
		{2.25, 2.3},
		{2.0, 2.0},
	}

	for _, tc := range testCases {
		if got := round1(tc.in); got != tc.want {
			t.Errorf("round1(%v) = %v, want %v", tc.in, got, tc.want)
		}
	}
}
