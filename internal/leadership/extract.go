// Package leadership extracts named executives from
// business-intelligence evidence.
package leadership

import (
	"regexp"
	"strings"

	"github.com/OLVCORE/olv-trade-intelligence-sub000/internal/model"
	"github.com/OLVCORE/olv-trade-intelligence-sub000/internal/source"
)

// titleVocab matches executive titles worth extracting.
const titleVocab = `(?:Chief Executive Officer|Chief Financial Officer|Chief Operating Officer|Chief Technology Officer|Managing Director|Vice President|General Manager|CEO|CFO|COO|CTO|President|Director|Owner|Partner|Founder|Co-Founder)`

// name matches two to three capitalized words, allowing accented
// initials common in Latin-script names.
const namePattern = `([A-Z][\p{L}'.-]+(?:\s+[A-Z][\p{L}'.-]+){1,2})`

// "Jane Smith, CEO" / "Jane Smith - Chief Financial Officer"
var nameThenTitle = regexp.MustCompile(namePattern + `\s*[,:\-–]\s*` + titleVocab)

// "CEO Jane Smith" / "Founder: Jane Smith"
var titleThenName = regexp.MustCompile(titleVocab + `\s*[,:\-–]?\s+` + namePattern)

// titleOf extracts the title portion of a full match.
var titleRe = regexp.MustCompile(titleVocab)

// Extract pulls deduplicated executive contacts out of
// business-intelligence evidence. Evidence from other source categories
// is ignored: only provider profiles are structured enough for the
// pattern match to be trustworthy.
func Extract(evidences []model.EvidenceItem) []model.LeadershipContact {
	var contacts []model.LeadershipContact
	seen := make(map[string]bool)

	add := func(name, title string, ev model.EvidenceItem) {
		key := strings.ToLower(strings.Join(strings.Fields(name), " "))
		if key == "" || seen[key] {
			return
		}
		seen[key] = true
		contacts = append(contacts, model.LeadershipContact{
			Name:   strings.Join(strings.Fields(name), " "),
			Title:  title,
			Source: ev.SourceCategory,
			URL:    ev.Link,
		})
	}

	for _, ev := range evidences {
		if ev.SourceCategory != source.BusinessIntel {
			continue
		}
		text := ev.Title + " " + ev.Snippet

		for _, m := range nameThenTitle.FindAllString(text, -1) {
			name := nameThenTitle.FindStringSubmatch(m)[1]
			add(name, titleRe.FindString(m), ev)
		}
		for _, m := range titleThenName.FindAllString(text, -1) {
			name := titleThenName.FindStringSubmatch(m)[1]
			add(name, titleRe.FindString(m), ev)
		}
	}

	return contacts
}
