package checkout

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/junubipay/paylink/pkg/domain/common"
)

// South Sudan mobile numbers: +211 followed by exactly nine digits.
var phonePattern = regexp.MustCompile(`^\+211[0-9]{9}$`)

// Deliberately permissive local@domain.tld shape, not full RFC validation.
var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// CustomerInput is the raw checkout form as the customer typed it.
type CustomerInput struct {
	Name        string
	PhoneNumber string
	Email       string
}

// Customer is the normalized output of ValidateCustomer: trimmed name, phone
// with internal whitespace stripped.
type Customer struct {
	Name        string
	PhoneNumber string
	Email       string
}

// ValidateCustomer checks the customer fields against the link's collection
// requirements. It is pure and must be re-run on every submission attempt;
// results are never cached across retries.
func ValidateCustomer(in CustomerInput, emailRequired bool) (*Customer, common.FieldErrors) {
	ferrs := common.FieldErrors{}

	name := strings.TrimSpace(in.Name)
	if name == "" {
		ferrs["name"] = "Name is required"
	}

	phone := stripSpaces(in.PhoneNumber)
	if !phonePattern.MatchString(phone) {
		ferrs["phoneNumber"] = "Enter a valid phone number (+211 followed by 9 digits)"
	}

	email := strings.TrimSpace(in.Email)
	if email == "" {
		if emailRequired {
			ferrs["email"] = "Email is required"
		}
	} else if !emailPattern.MatchString(email) {
		ferrs["email"] = "Enter a valid email address"
	}

	if len(ferrs) > 0 {
		return nil, ferrs
	}
	return &Customer{Name: name, PhoneNumber: phone, Email: email}, nil
}

func stripSpaces(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}
