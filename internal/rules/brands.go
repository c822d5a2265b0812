package rules

// brandAliases maps canonical brand hints to alternate spellings seen in
// catalog exports. Keys and values are authored in normalized form.
var brandAliases = map[string][]string{
	"johnsons baby": {"johnson s baby"},
	"oral b":        {"oralb"},
	"accu chek":     {"accuchek"},
	"bepanthen":     {"bepanthol"},
	"nan optipro":   {"nestle nan"},
}

// ExpandBrands returns the brand hints extended with their known
// alternate spellings, so rule authors only list the canonical name.
func ExpandBrands(brands []string) []string {
	out := make([]string, 0, len(brands))
	for _, b := range brands {
		out = append(out, b)
		out = append(out, brandAliases[b]...)
	}
	return out
}
