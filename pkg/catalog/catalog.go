// Package catalog holds the ingredient risk catalog: an ordered, immutable
// set of risk records plus a separate set of known-beneficial ingredient
// name fragments.
package catalog

import (
	"strings"

	"github.com/dermasafe-inc/dermasafe-engine/pkg/models"
)

// Catalog is an ordered collection of ingredient risk records. Record order
// is load-bearing: partial-match lookups scan records in declaration order
// and return the first hit, so two catalogs with the same records in a
// different order can classify differently.
type Catalog struct {
	records       []models.IngredientRecord
	byName        map[string]int
	safeFragments []string
}

// New builds a catalog from records and safe-name fragments. The record
// slice order is preserved as the lookup scan order.
func New(records []models.IngredientRecord, safeFragments []string) *Catalog {
	byName := make(map[string]int, len(records))
	for i, rec := range records {
		if _, dup := byName[rec.Name]; !dup {
			byName[rec.Name] = i
		}
	}
	return &Catalog{
		records:       records,
		byName:        byName,
		safeFragments: safeFragments,
	}
}

// Default returns the catalog seeded with the built-in record set.
func Default() *Catalog {
	return New(seedRecords, seedSafeFragments)
}

// DefaultRecord is the sentinel returned for ingredients absent from the
// catalog: zero risk, no category, no concerns. It can never trigger an
// allergy or skin-type override.
func DefaultRecord() models.IngredientRecord {
	return models.IngredientRecord{
		RiskLevel:         models.RiskSafe,
		Concerns:          []string{},
		AffectedSkinTypes: []string{},
	}
}

// Lookup resolves an ingredient name to its risk record. The name is
// trimmed and lower-cased, then matched exactly; failing that, records are
// scanned in declaration order and the first record whose key is a
// substring of the name, or contains the name as a substring, wins.
// The second result is false when nothing matched.
func (c *Catalog) Lookup(name string) (models.IngredientRecord, bool) {
	normalized := strings.ToLower(strings.TrimSpace(name))

	if i, ok := c.byName[normalized]; ok {
		return c.records[i], true
	}

	for _, rec := range c.records {
		if strings.Contains(normalized, rec.Name) || strings.Contains(rec.Name, normalized) {
			return rec, true
		}
	}

	return DefaultRecord(), false
}

// IsKnownSafe reports whether any known-beneficial fragment occurs in the
// normalized name. This is a separate reference query and does not feed
// into risk scoring.
func (c *Catalog) IsKnownSafe(name string) bool {
	normalized := strings.ToLower(strings.TrimSpace(name))
	for _, fragment := range c.safeFragments {
		if strings.Contains(normalized, fragment) {
			return true
		}
	}
	return false
}

// List returns catalog records in declaration order, optionally filtered by
// exact category and/or risk level. Empty filter values match everything.
func (c *Catalog) List(category, riskLevel string) []models.IngredientRecord {
	out := make([]models.IngredientRecord, 0, len(c.records))
	for _, rec := range c.records {
		if category != "" && rec.Category != category {
			continue
		}
		if riskLevel != "" && rec.RiskLevel != riskLevel {
			continue
		}
		out = append(out, rec)
	}
	return out
}

// Len returns the number of risk records in the catalog.
func (c *Catalog) Len() int {
	return len(c.records)
}
