package category

import "strings"

// Canonical CFA curriculum topic areas. The order here is the display
// order; pickers and progress breakdowns iterate it as-is.
const (
	Ethics              = "Ethical and Professional Standards"
	QuantitativeMethods = "Quantitative Methods"
	Economics           = "Economics"
	FinancialStatements = "Financial Statement Analysis"
	CorporateIssuers    = "Corporate Issuers"
	Equity              = "Equity Investments"
	FixedIncome         = "Fixed Income"
	Derivatives         = "Derivatives"
	Alternatives        = "Alternative Investments"
	PortfolioManagement = "Portfolio Management"
)

var canonical = []string{
	Ethics,
	QuantitativeMethods,
	Economics,
	FinancialStatements,
	CorporateIssuers,
	Equity,
	FixedIncome,
	Derivatives,
	Alternatives,
	PortfolioManagement,
}

// aliases maps known alternate topic spellings (lowercased) to canonical
// names. Question files authored against older curricula use several of
// these interchangeably.
var aliases = map[string]string{
	"ethics":                                   Ethics,
	"ethical & professional standards":         Ethics,
	"professional standards":                   Ethics,
	"quant":                                    QuantitativeMethods,
	"quantitative analysis":                    QuantitativeMethods,
	"economics and markets":                    Economics,
	"fra":                                      FinancialStatements,
	"financial reporting and analysis":         FinancialStatements,
	"financial reporting & analysis":           FinancialStatements,
	"corporate finance":                        CorporateIssuers,
	"equity":                                   Equity,
	"equities":                                 Equity,
	"fixed income investments":                 FixedIncome,
	"derivative investments":                   Derivatives,
	"alternatives":                             Alternatives,
	"portfolio management and wealth planning": PortfolioManagement,
}

// Canonical returns the ordered list of canonical category names.
// Callers get a fresh copy; the underlying order never changes.
func Canonical() []string {
	out := make([]string, len(canonical))
	copy(out, canonical)
	return out
}

// Resolve maps a raw topic string to its canonical category name.
// Canonical names resolve to themselves. Unknown topics are returned
// verbatim (trimmed) so banks can carry categories outside the fixed
// curriculum without being silently dropped.
func Resolve(topic string) string {
	trimmed := strings.TrimSpace(topic)
	if name, ok := aliases[strings.ToLower(trimmed)]; ok {
		return name
	}
	for _, name := range canonical {
		if strings.EqualFold(trimmed, name) {
			return name
		}
	}
	return trimmed
}

// IsCanonical reports whether name is one of the fixed curriculum categories.
func IsCanonical(name string) bool {
	for _, c := range canonical {
		if c == name {
			return true
		}
	}
	return false
}
