package resolver

import (
	"regexp"
	"sort"
	"strings"
)

// cityToCountry resolves well-known city names to countries. A hit here
// wins over every other country source and is never overwritten.
var cityToCountry = map[string]string{
	// China
	"guangzhou": "China", "shenzhen": "China", "shanghai": "China",
	"beijing": "China", "hangzhou": "China", "ningbo": "China",
	"dongguan": "China", "qingdao": "China", "tianjin": "China",
	// Brazil
	"sao paulo": "Brazil", "são paulo": "Brazil", "rio de janeiro": "Brazil",
	"curitiba": "Brazil", "belo horizonte": "Brazil", "porto alegre": "Brazil",
	"campinas": "Brazil", "salvador": "Brazil",
	// United States
	"new york": "United States", "chicago": "United States",
	"houston": "United States", "los angeles": "United States",
	"miami": "United States", "atlanta": "United States",
	// Europe
	"london": "United Kingdom", "manchester": "United Kingdom",
	"birmingham": "United Kingdom",
	"berlin": "Germany", "munich": "Germany", "hamburg": "Germany",
	"paris": "France", "lyon": "France",
	"madrid": "Spain", "barcelona": "Spain",
	"milan": "Italy", "rome": "Italy",
	"amsterdam": "Netherlands", "rotterdam": "Netherlands",
	"lisbon": "Portugal", "porto": "Portugal",
	"warsaw": "Poland",
	// Asia-Pacific
	"tokyo": "Japan", "osaka": "Japan",
	"seoul": "South Korea",
	"mumbai": "India", "delhi": "India", "bangalore": "India",
	"singapore": "Singapore",
	"bangkok": "Thailand",
	"hanoi": "Vietnam", "ho chi minh": "Vietnam",
	"sydney": "Australia", "melbourne": "Australia",
	"dubai": "United Arab Emirates",
	"istanbul": "Turkey",
	// Americas
	"toronto": "Canada", "vancouver": "Canada", "montreal": "Canada",
	"mexico city": "Mexico", "guadalajara": "Mexico", "monterrey": "Mexico",
	"buenos aires": "Argentina",
	"santiago": "Chile",
	"bogota": "Colombia", "bogotá": "Colombia",
	"lima": "Peru",
}

// ddiToCountry maps international dialing codes to countries. Code 1 is
// shared across NANP members; the resolver attributes it to the US,
// which is the dominant case in the dataset.
var ddiToCountry = map[string]string{
	"1":   "United States",
	"7":   "Russia",
	"27":  "South Africa",
	"31":  "Netherlands",
	"33":  "France",
	"34":  "Spain",
	"39":  "Italy",
	"44":  "United Kingdom",
	"48":  "Poland",
	"49":  "Germany",
	"52":  "Mexico",
	"54":  "Argentina",
	"55":  "Brazil",
	"56":  "Chile",
	"57":  "Colombia",
	"61":  "Australia",
	"64":  "New Zealand",
	"65":  "Singapore",
	"66":  "Thailand",
	"81":  "Japan",
	"82":  "South Korea",
	"84":  "Vietnam",
	"86":  "China",
	"90":  "Turkey",
	"91":  "India",
	"351": "Portugal",
	"971": "United Arab Emirates",
}

// ddiCodes holds the dialing codes longest-first so "351" wins over "35".
var ddiCodes = func() []string {
	codes := make([]string, 0, len(ddiToCountry))
	for c := range ddiToCountry {
		codes = append(codes, c)
	}
	sort.Slice(codes, func(i, j int) bool {
		if len(codes[i]) != len(codes[j]) {
			return len(codes[i]) > len(codes[j])
		}
		return codes[i] < codes[j]
	})
	return codes
}()

// phonePattern matches an international phone number with an explicit
// country code prefix.
var phonePattern = regexp.MustCompile(`\+\s?(\d{1,3})[\s.()-]{0,2}\d[\d\s.()-]{5,16}`)

// countryFromPhone extracts the DDI from the first international phone
// number in text and maps it to a country.
func countryFromPhone(text string) (country, phone string) {
	m := phonePattern.FindStringSubmatch(text)
	if m == nil {
		return "", ""
	}
	digits := m[1]
	for _, code := range ddiCodes {
		if strings.HasPrefix(digits, code) {
			return ddiToCountry[code], strings.TrimRight(m[0], " \t.-()")
		}
	}
	return "", ""
}

// cityHit returns the mapped country and the city for the first known
// city name contained in text as a whole word.
func cityHit(text string) (country, city string) {
	lower := strings.ToLower(text)
	for c, country := range cityToCountry {
		if containsWord(lower, c) {
			return country, c
		}
	}
	return "", ""
}

// containsWord checks if text contains needle bounded by
// non-alphanumeric characters or string boundaries. Both arguments are
// expected lowercase.
func containsWord(text, needle string) bool {
	if needle == "" || text == "" {
		return false
	}
	start := 0
	for {
		idx := strings.Index(text[start:], needle)
		if idx < 0 {
			return false
		}
		absIdx := start + idx
		endIdx := absIdx + len(needle)

		leftOK := absIdx == 0 || !isAlphaNum(text[absIdx-1])
		rightOK := endIdx == len(text) || !isAlphaNum(text[endIdx])

		if leftOK && rightOK {
			return true
		}
		start = absIdx + 1
	}
}

func isAlphaNum(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9')
}

// postalFamily ties a postal-code shape to the country it implies.
type postalFamily struct {
	name    string
	country string
	re      *regexp.Regexp
}

// postalFamilies are checked in order; the more distinctive shapes come
// first so the generic US ZIP cannot shadow them.
var postalFamilies = []postalFamily{
	{"uk_postcode", "United Kingdom", regexp.MustCompile(`\b[A-Z]{1,2}\d[A-Z\d]?\s\d[A-Z]{2}\b`)},
	{"ca_postal", "Canada", regexp.MustCompile(`\b[A-Za-z]\d[A-Za-z]\s?\d[A-Za-z]\d\b`)},
	{"br_cep", "Brazil", regexp.MustCompile(`\b\d{5}-\d{3}\b`)},
	// US ZIP requires a preceding state abbreviation to avoid matching
	// arbitrary five-digit numbers.
	{"us_zip", "United States", regexp.MustCompile(`\b[A-Z]{2},?\s+\d{5}(?:-\d{4})?\b`)},
}

// countryFromPostal scans text for a postal-code family match.
func countryFromPostal(text string) string {
	for _, f := range postalFamilies {
		if f.re.MatchString(text) {
			return f.country
		}
	}
	return ""
}

// countryNames is the lookup list for search-evidence and page-text
// country mentions.
var countryNames = []string{
	"United States", "United Kingdom", "United Arab Emirates",
	"South Korea", "South Africa", "New Zealand", "Netherlands",
	"Brazil", "China", "Germany", "France", "Spain", "Italy",
	"Portugal", "Poland", "Japan", "India", "Mexico", "Canada",
	"Australia", "Argentina", "Chile", "Colombia", "Peru",
	"Singapore", "Thailand", "Vietnam", "Turkey", "Russia",
}

// locationKeywords anchor a country mention to location phrasing.
var locationKeywords = []string{
	"located", "headquarters", "headquartered", "based", "head office",
	"offices in", "sede",
}

// locationWindow is how close (in bytes) a country name must be to a
// location keyword to count as a location statement.
const locationWindow = 80

// countryNearLocation finds a country name within locationWindow bytes
// of a location keyword in text.
func countryNearLocation(text string) string {
	lower := strings.ToLower(text)
	for _, kw := range locationKeywords {
		idx := strings.Index(lower, kw)
		if idx < 0 {
			continue
		}
		lo := idx - locationWindow
		if lo < 0 {
			lo = 0
		}
		hi := idx + len(kw) + locationWindow
		if hi > len(lower) {
			hi = len(lower)
		}
		window := lower[lo:hi]
		for _, country := range countryNames {
			if strings.Contains(window, strings.ToLower(country)) {
				return country
			}
		}
	}
	return ""
}

// locatedInPattern catches generic "located in <Country>" phrasing.
var locatedInPattern = regexp.MustCompile(`(?i)(?:located|headquartered|based)\s+in\s+([A-Z][A-Za-z ]{2,30})`)

// countryFromLocatedIn extracts the country from "located in X" text,
// accepting only known country names.
func countryFromLocatedIn(text string) string {
	m := locatedInPattern.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	candidate := strings.ToLower(strings.TrimSpace(m[1]))
	for _, country := range countryNames {
		if strings.HasPrefix(candidate, strings.ToLower(country)) {
			return country
		}
	}
	return ""
}

// addressPattern matches street-address lines in several conventions.
var addressPattern = regexp.MustCompile(`(?i)\b\d{1,5}\s+[A-Za-z][A-Za-z .]{2,40}\s(?:street|st\.?|avenue|ave\.?|road|rd\.?|boulevard|blvd\.?|drive|dr\.?|lane|ln\.?)\b|\b(?:rua|avenida|av\.|travessa|alameda)\s+[A-Za-z][A-Za-zÀ-ú .]{2,40},?\s*\d{1,5}\b`)

// emailPattern matches contact email addresses.
var emailPattern = regexp.MustCompile(`[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}`)
