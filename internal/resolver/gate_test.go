package resolver

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, raw string) *url.URL {
	t.Helper()
	u, err := url.Parse(raw)
	require.NoError(t, err)
	return u
}

func TestCheckURL_BlockedDomains(t *testing.T) {
	tests := []struct {
		name   string
		url    string
		reason string
	}{
		{"facebook", "https://www.facebook.com/somecompany", "facebook_content"},
		{"instagram", "https://instagram.com/somecompany", "instagram_content"},
		{"amazon store", "https://amazon.com.br/stores/acme", "marketplace_domain"},
		{"alibaba", "https://alibaba.com/supplier/acme", "marketplace_domain"},
		{"researchgate", "https://www.researchgate.net/publication/12345", "academic_source"},
		{"youtube", "https://youtube.com/@acme", "video_content"},
		{"linkedin post path", "https://www.linkedin.com/posts/acme-activity-123", "content_path"},
		{"group path", "https://example.com/groups/12345", "content_path"},
		{"twitter status", "https://x.com/acme/status/123", "social_content"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			be := CheckURL(mustParse(t, tt.url))
			require.NotNil(t, be)
			assert.Equal(t, tt.reason, be.Reason)
		})
	}
}

func TestCheckURL_CleanCompanySite(t *testing.T) {
	assert.Nil(t, CheckURL(mustParse(t, "https://www.acme-tools.com/about")))
	assert.Nil(t, CheckURL(mustParse(t, "https://acme.com.br")))
}

func TestCheckName(t *testing.T) {
	tests := []struct {
		name      string
		candidate string
		reason    string
	}{
		{"top-n listing", "Top 10 Pilates Equipment Suppliers", "listing_title"},
		{"year suffix", "Best Reformer Brands (2024)", "article_title"},
		{"part series", "Part II: Choosing a Supplier", "article_title"},
		{"shopping language", "Buy Reformers Online - 30% off", "product_listing"},
		{"emoji decorated", "Acme Fitness 🏋️", "decorated_name"},
		{"too long", strings.Repeat("Industrial Equipment ", 10), "name_too_long"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			be := CheckName(tt.candidate)
			require.NotNil(t, be)
			assert.Equal(t, tt.reason, be.Reason)
		})
	}
}

func TestCheckName_AcceptsPlausibleNames(t *testing.T) {
	for _, name := range []string{
		"",
		"Guangzhou ABC Pilates Co",
		"Müller & Söhne GmbH",
		"ACME Comércio de Máquinas Ltda",
	} {
		assert.Nil(t, CheckName(name), "name %q should pass", name)
	}
}

func TestCheck_URLTakesPrecedenceOverName(t *testing.T) {
	be := Check(mustParse(t, "https://facebook.com/acme"), "Top 10 Suppliers")
	require.NotNil(t, be)
	assert.Equal(t, "facebook_content", be.Reason)
}
