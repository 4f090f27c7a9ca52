package usecase

import "strings"

// DefaultSection is used when no keyword matches an item name.
const DefaultSection = "other"

// exactSections maps whole item names to grocery sections.
var exactSections = map[string]string{
	// produce
	"apple": "produce", "apples": "produce",
	"banana": "produce", "bananas": "produce",
	"orange": "produce", "oranges": "produce",
	"lemon": "produce", "lemons": "produce",
	"lime": "produce", "limes": "produce",
	"avocado": "produce", "avocados": "produce",
	"tomato": "produce", "tomatoes": "produce",
	"potato": "produce", "potatoes": "produce",
	"onion": "produce", "onions": "produce",
	"garlic":    "produce",
	"lettuce":   "produce",
	"spinach":   "produce",
	"kale":      "produce",
	"broccoli":  "produce",
	"carrot":    "produce",
	"carrots":   "produce",
	"celery":    "produce",
	"cucumber":  "produce",
	"mushrooms": "produce",
	"cilantro":  "produce",
	"parsley":   "produce",
	"ginger":    "produce",

	// dairy
	"milk": "dairy", "butter": "dairy", "cream": "dairy",
	"yogurt": "dairy", "cheese": "dairy",
	"egg": "dairy", "eggs": "dairy",
	"sour cream": "dairy", "heavy cream": "dairy",

	// meat
	"chicken": "meat", "beef": "meat", "pork": "meat",
	"bacon": "meat", "sausage": "meat", "turkey": "meat",
	"ham": "meat", "salmon": "meat", "shrimp": "meat",
	"ground beef": "meat", "chicken breast": "meat",

	// bakery
	"bread": "bakery", "bagels": "bakery", "tortillas": "bakery",
	"buns": "bakery", "rolls": "bakery",

	// pantry
	"flour": "pantry", "sugar": "pantry", "salt": "pantry",
	"pepper": "pantry", "rice": "pantry", "pasta": "pantry",
	"oil": "pantry", "olive oil": "pantry", "vinegar": "pantry",
	"honey": "pantry", "oats": "pantry", "cereal": "pantry",
	"beans": "pantry", "lentils": "pantry",
	"baking powder": "pantry", "baking soda": "pantry",
	"vanilla": "pantry", "cinnamon": "pantry", "cumin": "pantry",
	"paprika": "pantry", "oregano": "pantry", "soy sauce": "pantry",
}

// substringSections is checked in order after exact lookup fails; more
// specific keywords come first.
var substringSections = []struct {
	keyword string
	section string
}{
	{"chicken", "meat"},
	{"beef", "meat"},
	{"pork", "meat"},
	{"fish", "meat"},
	{"steak", "meat"},
	{"cheese", "dairy"},
	{"yogurt", "dairy"},
	{"milk", "dairy"},
	{"cream", "dairy"},
	{"bread", "bakery"},
	{"tortilla", "bakery"},
	{"frozen", "frozen"},
	{"juice", "beverages"},
	{"soda", "beverages"},
	{"coffee", "beverages"},
	{"tea", "beverages"},
	{"sauce", "pantry"},
	{"spice", "pantry"},
	{"flour", "pantry"},
	{"sugar", "pantry"},
	{"oil", "pantry"},
	{"berr", "produce"},
	{"pepper", "produce"},
}

// ClassifySection suggests a grocery section for an item name. Matching is
// case-insensitive: whole-name lookup first, then substring keywords, then
// DefaultSection. Used to default the section on manual items and on recipe
// ingredients saved without one.
func ClassifySection(itemName string) string {
	name := strings.ToLower(strings.TrimSpace(itemName))
	if name == "" {
		return DefaultSection
	}

	if section, ok := exactSections[name]; ok {
		return section
	}

	for _, entry := range substringSections {
		if strings.Contains(name, entry.keyword) {
			return entry.section
		}
	}

	return DefaultSection
}
