package entity

// The 14 EU-regulated allergens. Ids are the small numeric strings stored in
// MenuItem.Allergens; the table never changes at runtime.
var AllergenNames = map[string]string{
	"1":  "GLUTEN/WHEAT",
	"2":  "CRUSTACEANS",
	"3":  "FISH",
	"4":  "EGGS",
	"5":  "MOLLUSCS",
	"6":  "MILK",
	"7":  "NUTS",
	"8":  "PEANUTS",
	"9":  "SESAME SEEDS",
	"10": "SOYBEANS",
	"11": "CELERY",
	"12": "MUSTARD",
	"13": "SULPHUR DIOXIDE",
	"14": "LUPIN",
}

// Icon assets served from the frontend bundle, keyed by the same ids.
var AllergenIcons = map[string]string{
	"1":  "/icons/allergens/gluten.svg",
	"2":  "/icons/allergens/crustaceans.svg",
	"3":  "/icons/allergens/fish.svg",
	"4":  "/icons/allergens/eggs.svg",
	"5":  "/icons/allergens/molluscs.svg",
	"6":  "/icons/allergens/milk.svg",
	"7":  "/icons/allergens/nuts.svg",
	"8":  "/icons/allergens/peanuts.svg",
	"9":  "/icons/allergens/sesame.svg",
	"10": "/icons/allergens/soybeans.svg",
	"11": "/icons/allergens/celery.svg",
	"12": "/icons/allergens/mustard.svg",
	"13": "/icons/allergens/sulphur.svg",
	"14": "/icons/allergens/lupin.svg",
}

// AllergenName resolves an id to its display name, empty when unknown.
func AllergenName(id string) string {
	return AllergenNames[id]
}
