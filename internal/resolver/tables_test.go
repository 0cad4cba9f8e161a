package resolver

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCountryFromPhone(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		country string
	}{
		{"brazil", "Fale conosco: +55 11 3456-7890", "Brazil"},
		{"china", "Tel: +86 20 8888 6666", "China"},
		{"portugal beats spain prefix", "Contact +351 21 123 4567", "Portugal"},
		{"nanp attributed to us", "Call +1 (212) 555-0100", "United States"},
		{"uae", "+971 4 123 4567", "United Arab Emirates"},
		{"no plus prefix", "Tel: 55 11 3456-7890", ""},
		{"no phone", "no contact info here", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			country, _ := countryFromPhone(tt.text)
			assert.Equal(t, tt.country, country)
		})
	}
}

func TestCityHit_WordBoundaries(t *testing.T) {
	country, city := cityHit("Offices in Lima, Peru and Santiago")
	assert.NotEmpty(t, country)
	assert.NotEmpty(t, city)

	// "lima" inside another word must not match.
	country, city = cityHit("sublimation printing equipment")
	assert.Empty(t, country)
	assert.Empty(t, city)

	country, city = cityHit("Guangzhou ABC Pilates Co")
	assert.Equal(t, "China", country)
	assert.Equal(t, "guangzhou", city)
}

func TestCountryFromPostal(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		country string
	}{
		{"uk postcode", "12 High Street, London SW1A 1AA", "United Kingdom"},
		{"canadian postal", "Toronto ON M5V 2T6", "Canada"},
		{"brazilian cep", "Av. Paulista, 1000 - 01310-100 São Paulo", "Brazil"},
		{"us zip needs state", "Austin, TX 78701", "United States"},
		{"bare five digits", "order number 78701 confirmed", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.country, countryFromPostal(tt.text))
		})
	}
}

func TestCountryNearLocation(t *testing.T) {
	assert.Equal(t, "Germany",
		countryNearLocation("Acme GmbH is headquartered in Berlin, Germany."))
	assert.Equal(t, "",
		countryNearLocation("Germany exported machinery last year."))
	assert.Equal(t, "",
		countryNearLocation("the company is based somewhere undisclosed"))
}

func TestCountryFromLocatedIn(t *testing.T) {
	assert.Equal(t, "Vietnam", countryFromLocatedIn("The factory is located in Vietnam since 2015."))
	assert.Equal(t, "", countryFromLocatedIn("located in a quiet suburb"))
}

func TestAddressPattern(t *testing.T) {
	assert.NotEmpty(t, addressPattern.FindString("Visit us at 1200 Industrial Avenue, Suite 4"))
	assert.NotEmpty(t, addressPattern.FindString("Rua das Flores, 123 - Centro"))
	assert.Empty(t, addressPattern.FindString("no street information"))
}
