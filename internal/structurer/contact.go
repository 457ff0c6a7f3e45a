package structurer

import (
	"fmt"

	"github.com/jonathan/resume-matcher/internal/types"
)

// ExtractContactInfo pulls contact fields out of the full text, taking only
// the first match per field. Missing fields stay empty. Phone numbers are
// reformatted to "(XXX) XXX-XXXX".
func ExtractContactInfo(text string) types.ContactInfo {
	var info types.ContactInfo

	if m := emailPattern.FindString(text); m != "" {
		info.Email = m
	}

	if m := phonePattern.FindStringSubmatch(text); m != nil {
		info.Phone = fmt.Sprintf("(%s) %s-%s", m[1], m[2], m[3])
	}

	if m := linkedinPattern.FindString(text); m != "" {
		info.LinkedIn = "https://" + m
	}

	if m := githubPattern.FindString(text); m != "" {
		info.GitHub = "https://" + m
	}

	return info
}
