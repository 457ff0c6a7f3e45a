package structurer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractContactInfo_AllFields(t *testing.T) {
	info := ExtractContactInfo(sampleResume)

	assert.Equal(t, "john.doe@example.com", info.Email)
	assert.Equal(t, "(555) 123-4567", info.Phone)
	assert.Equal(t, "https://linkedin.com/in/johndoe", info.LinkedIn)
	assert.Equal(t, "https://github.com/johndoe", info.GitHub)
}

func TestExtractContactInfo_FirstMatchWins(t *testing.T) {
	text := "a@example.com\nb@example.com"
	info := ExtractContactInfo(text)
	assert.Equal(t, "a@example.com", info.Email)
}

func TestExtractContactInfo_PhoneReformatted(t *testing.T) {
	for _, raw := range []string{"555-123-4567", "555.123.4567", "+1 555 123 4567", "(555) 123-4567"} {
		info := ExtractContactInfo(raw)
		assert.Equal(t, "(555) 123-4567", info.Phone, "input %q", raw)
	}
}

func TestExtractContactInfo_MissingFieldsStayEmpty(t *testing.T) {
	info := ExtractContactInfo("no contact details at all")

	assert.Empty(t, info.Email)
	assert.Empty(t, info.Phone)
	assert.Empty(t, info.LinkedIn)
	assert.Empty(t, info.GitHub)
}
