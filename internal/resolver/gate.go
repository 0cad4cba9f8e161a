package resolver

import (
	"net/url"
	"regexp"
	"strings"
	"unicode"
)

// The gate is three independent predicate sets composed by OR: blocked
// domains, blocked URL paths, and name patterns. The name checks exist
// because the same domain can host both a legitimate company page and a
// listing or article page.

// domainBlock ties a domain fragment to a rejection reason code.
type domainBlock struct {
	fragment string
	reason   string
}

var blockedDomains = []domainBlock{
	// Social networks
	{"facebook.com", "facebook_content"},
	{"instagram.com", "instagram_content"},
	{"twitter.com", "social_content"},
	{"x.com", "social_content"},
	{"tiktok.com", "social_content"},
	{"pinterest.com", "social_content"},
	{"reddit.com", "social_content"},
	// Marketplaces
	{"amazon.", "marketplace_domain"},
	{"ebay.", "marketplace_domain"},
	{"aliexpress.com", "marketplace_domain"},
	{"alibaba.com", "marketplace_domain"},
	{"mercadolivre.com", "marketplace_domain"},
	{"mercadolibre.com", "marketplace_domain"},
	{"etsy.com", "marketplace_domain"},
	{"shopee.", "marketplace_domain"},
	// Academic publishers
	{"researchgate.net", "academic_source"},
	{"sciencedirect.com", "academic_source"},
	{"springer.com", "academic_source"},
	{"ieee.org", "academic_source"},
	{"academia.edu", "academic_source"},
	{"scielo.", "academic_source"},
	{"jstor.org", "academic_source"},
	{"nature.com", "academic_source"},
	{"arxiv.org", "academic_source"},
	{"wiley.com", "academic_source"},
	// Video platforms
	{"youtube.com", "video_content"},
	{"youtu.be", "video_content"},
	{"vimeo.com", "video_content"},
}

// blockedPaths catches post/group/video paths on otherwise mixed-use
// domains.
var blockedPaths = []string{
	"/posts/", "/groups/", "/watch", "/video/", "/videos/", "/reel/",
	"/status/", "/events/",
}

// Name patterns that mark listing or article titles rather than company
// names.
var (
	topNPattern       = regexp.MustCompile(`(?i)^top\s+\d+\b`)
	yearSuffixPattern = regexp.MustCompile(`\(20\d{2}\)\s*$`)
	partPattern       = regexp.MustCompile(`(?i)\bpart\s+(?:[ivx]+|\d+)\s*:`)
	shoppingPattern   = regexp.MustCompile(`(?i)\b(?:buy|shop|order)\s|\b\d+%\s*off\b|\bbest\s+price\b|\bfree\s+shipping\b`)
)

// maxNameLength bounds a plausible company name; anything longer reads
// like a headline.
const maxNameLength = 120

// CheckURL runs the domain and path predicates against a parsed URL.
func CheckURL(u *url.URL) *BlockedError {
	host := strings.ToLower(strings.TrimPrefix(u.Hostname(), "www."))
	path := strings.ToLower(u.Path)

	for _, b := range blockedDomains {
		if strings.Contains(host, b.fragment) {
			return &BlockedError{Reason: b.reason, Offender: host}
		}
	}
	for _, p := range blockedPaths {
		if strings.Contains(path, p) {
			return &BlockedError{Reason: "content_path", Offender: host + u.Path}
		}
	}
	return nil
}

// CheckName runs the name-pattern predicates against a candidate
// company name. A rejection here discards the candidate, not the whole
// resolution.
func CheckName(name string) *BlockedError {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return nil
	}

	switch {
	case topNPattern.MatchString(trimmed):
		return &BlockedError{Reason: "listing_title", Offender: trimmed}
	case yearSuffixPattern.MatchString(trimmed):
		return &BlockedError{Reason: "article_title", Offender: trimmed}
	case partPattern.MatchString(trimmed):
		return &BlockedError{Reason: "article_title", Offender: trimmed}
	case shoppingPattern.MatchString(trimmed):
		return &BlockedError{Reason: "product_listing", Offender: trimmed}
	case len(trimmed) > maxNameLength:
		return &BlockedError{Reason: "name_too_long", Offender: trimmed[:40] + "..."}
	case containsEmoji(trimmed):
		return &BlockedError{Reason: "decorated_name", Offender: trimmed}
	}
	return nil
}

// Check runs the full gate: URL predicates first, then the candidate
// name. It must run before any page fetch.
func Check(u *url.URL, candidateName string) *BlockedError {
	if be := CheckURL(u); be != nil {
		return be
	}
	return CheckName(candidateName)
}

func containsEmoji(s string) bool {
	for _, r := range s {
		if unicode.Is(unicode.So, r) || (r >= 0x1F000 && r <= 0x1FAFF) {
			return true
		}
	}
	return false
}
