package resolver

import (
	"html"
	"regexp"
	"strings"
)

// Lightweight HTML probes. The resolver needs a handful of metadata
// fields, not a DOM, so targeted patterns over the raw page are enough.

var (
	siteNamePattern = regexp.MustCompile(`(?i)<meta[^>]+property=["']og:site_name["'][^>]+content=["']([^"']+)["']|<meta[^>]+content=["']([^"']+)["'][^>]+property=["']og:site_name["']`)
	titlePattern    = regexp.MustCompile(`(?is)<title[^>]*>(.*?)</title>`)
	orgNamePattern  = regexp.MustCompile(`(?s)"@type"\s*:\s*"Organization".{0,200}?"name"\s*:\s*"([^"]+)"`)
	orgNamePreType  = regexp.MustCompile(`(?s)"name"\s*:\s*"([^"]+)".{0,200}?"@type"\s*:\s*"Organization"`)
	copyrightPat    = regexp.MustCompile(`(?:©|&copy;|\(c\))\s*(?:20\d{2}[\s,.-]*)?([A-Za-z][^<.\n|©]{1,60})`)
	tagPattern      = regexp.MustCompile(`(?s)<[^>]*>`)
	scriptPattern   = regexp.MustCompile(`(?is)<(script|style)[^>]*>.*?</(script|style)>`)
)

// metaSiteName pulls og:site_name from the page head.
func metaSiteName(page string) string {
	m := siteNamePattern.FindStringSubmatch(page)
	if m == nil {
		return ""
	}
	if m[1] != "" {
		return strings.TrimSpace(html.UnescapeString(m[1]))
	}
	return strings.TrimSpace(html.UnescapeString(m[2]))
}

// structuredOrgName pulls the organization name from embedded JSON-LD.
func structuredOrgName(page string) string {
	if m := orgNamePattern.FindStringSubmatch(page); m != nil {
		return strings.TrimSpace(html.UnescapeString(m[1]))
	}
	if m := orgNamePreType.FindStringSubmatch(page); m != nil {
		return strings.TrimSpace(html.UnescapeString(m[1]))
	}
	return ""
}

// pageTitle returns the first segment of the <title> tag, split on the
// usual separators sites use to append taglines.
func pageTitle(page string) string {
	m := titlePattern.FindStringSubmatch(page)
	if m == nil {
		return ""
	}
	title := html.UnescapeString(strings.TrimSpace(m[1]))
	for _, sep := range []string{"|", " - ", "–", "—", "::"} {
		if idx := strings.Index(title, sep); idx > 0 {
			title = title[:idx]
			break
		}
	}
	return strings.TrimSpace(title)
}

// copyrightName pulls the owner from footer copyright text.
func copyrightName(page string) string {
	m := copyrightPat.FindStringSubmatch(page)
	if m == nil {
		return ""
	}
	name := strings.TrimSpace(html.UnescapeString(m[1]))
	// "All rights reserved" sometimes precedes or replaces the owner.
	lower := strings.ToLower(name)
	if strings.HasPrefix(lower, "all rights") || strings.HasPrefix(lower, "todos os direitos") {
		return ""
	}
	return name
}

// visibleText strips scripts, styles, and tags, leaving rough page text
// for pattern scanning.
func visibleText(page string) string {
	text := scriptPattern.ReplaceAllString(page, " ")
	text = tagPattern.ReplaceAllString(text, " ")
	return html.UnescapeString(text)
}
