package resolver

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.Und)

// domainLabelName turns the first label of a host into a display name:
// "abc-pilates.com.cn" becomes "Abc Pilates". Last-resort name source.
func domainLabelName(host string) string {
	host = strings.TrimPrefix(strings.ToLower(host), "www.")
	label, _, _ := strings.Cut(host, ".")
	if label == "" {
		return ""
	}
	label = strings.ReplaceAll(label, "-", " ")
	label = strings.ReplaceAll(label, "_", " ")
	return titleCaser.String(label)
}

// resolveName walks the candidate chain and returns the first name that
// survives the gate's name predicates. Page-derived candidates are
// empty when the fetch failed.
func resolveName(knownName string, page string, host string) string {
	candidates := []string{
		knownName,
		metaSiteName(page),
		structuredOrgName(page),
		pageTitle(page),
		copyrightName(page),
		domainLabelName(host),
	}
	for _, c := range candidates {
		c = strings.TrimSpace(c)
		if c == "" {
			continue
		}
		if CheckName(c) != nil {
			continue
		}
		return c
	}
	return ""
}
