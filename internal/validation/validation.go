// Package validation checks and normalizes booking and contact submissions.
package validation

import (
	"math"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/jimmy00415/ChefWeb-sub000/internal/model"
	"github.com/jimmy00415/ChefWeb-sub000/internal/pricing"
)

// Field length limits, in runes.
const (
	MaxNameLength            = 100
	MaxEmailLength           = 254
	MaxPhoneLength           = 20
	MaxSubjectLength         = 200
	MaxMessageLength         = 5000
	MaxSpecialRequestsLength = 2000
)

// Upper bounds for client-supplied counts and amounts.
const (
	MaxGuests = 500
	MaxAmount = 100000
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidateBookingPayload reports every problem with a booking submission in
// field order. An empty result means the payload is valid.
func ValidateBookingPayload(p *model.BookingRequest) []string {
	if p == nil {
		p = &model.BookingRequest{}
	}

	var errs []string
	required := []struct {
		value string
		msg   string
	}{
		{p.ServiceState, "Service state is required"},
		{p.City, "City is required"},
		{p.EventDate, "Event date is required"},
		{p.EventTime, "Event time is required"},
		{p.ContactName, "Contact name is required"},
		{p.ContactEmail, "Contact email is required"},
		{p.ContactPhone, "Contact phone is required"},
	}
	// Whitespace-only values count as missing, unlike a plain truthiness check.
	for _, r := range required {
		if isBlank(r.value) {
			errs = append(errs, r.msg)
		}
	}

	if !p.AgreeToTerms {
		errs = append(errs, "You must agree to the terms and conditions")
	}

	if pkg := strings.TrimSpace(p.Package); pkg != "" && !pricing.IsValidPackage(pkg) {
		errs = append(errs, "Invalid package: "+pkg)
	}

	return errs
}

// ValidateContact normalizes a contact form submission and reports missing or
// malformed fields. The normalized copy is returned even when invalid.
func ValidateContact(p *model.ContactRequest) (model.ContactRequest, []string) {
	var in model.ContactRequest
	if p != nil {
		in = *p
	}

	out := model.ContactRequest{
		Name:    NormalizeName(in.Name),
		Email:   NormalizeEmail(in.Email),
		Phone:   Clamp(NormalizePhone(in.Phone), MaxPhoneLength),
		Subject: Clamp(strings.TrimSpace(in.Subject), MaxSubjectLength),
		Message: Clamp(strings.TrimSpace(in.Message), MaxMessageLength),
	}

	var errs []string
	if out.Name == "" {
		errs = append(errs, "Name is required")
	}
	switch {
	case out.Email == "":
		errs = append(errs, "Email is required")
	case !IsValidEmail(out.Email):
		errs = append(errs, "Email address is invalid")
	}
	if out.Message == "" {
		errs = append(errs, "Message is required")
	}

	return out, errs
}

// NormalizeBooking returns a copy of the booking with contact fields cleaned
// up and free text clamped. It never adds or removes validation errors on its
// own; run ValidateBookingPayload on the result.
func NormalizeBooking(p *model.BookingRequest) model.BookingRequest {
	if p == nil {
		return model.BookingRequest{}
	}

	out := *p
	out.ServiceState = strings.TrimSpace(out.ServiceState)
	out.City = collapseSpaces(out.City)
	out.EventDate = strings.TrimSpace(out.EventDate)
	out.EventTime = strings.TrimSpace(out.EventTime)
	out.Package = strings.ToLower(strings.TrimSpace(out.Package))
	out.TravelFeeStatus = strings.ToLower(strings.TrimSpace(out.TravelFeeStatus))
	out.ContactName = NormalizeName(out.ContactName)
	out.ContactEmail = NormalizeEmail(out.ContactEmail)
	out.SpecialRequests = Clamp(strings.TrimSpace(out.SpecialRequests), MaxSpecialRequestsLength)

	// Guests are priced and stored as the same whole number.
	out.NumAdults = guestCount(out.NumAdults)
	out.NumChildren = guestCount(out.NumChildren)
	out.AddonsTotal = amount(out.AddonsTotal)
	out.TravelFeeAmount = amount(out.TravelFeeAmount)

	// Keep the raw value when the phone cannot be parsed so the required
	// check still sees something was entered.
	if phone := NormalizePhone(out.ContactPhone); phone != "" {
		out.ContactPhone = phone
	} else {
		out.ContactPhone = Clamp(strings.TrimSpace(out.ContactPhone), MaxPhoneLength)
	}

	if len(out.Addons) > 0 {
		addons := make([]string, 0, len(out.Addons))
		for _, a := range out.Addons {
			if a = strings.TrimSpace(a); a != "" {
				addons = append(addons, a)
			}
		}
		out.Addons = addons
	}

	return out
}

func guestCount(n model.Number) model.Number {
	return model.Number(math.Min(math.Floor(pricing.ToNonNegativeNumber(n.Float64())), MaxGuests))
}

func amount(n model.Number) model.Number {
	return model.Number(math.Min(pricing.ToNonNegativeNumber(n.Float64()), MaxAmount))
}

// NormalizeName collapses whitespace, title-cases and clamps a person's name.
func NormalizeName(name string) string {
	name = collapseSpaces(name)
	if name == "" {
		return ""
	}
	return Clamp(cases.Title(language.English).String(name), MaxNameLength)
}

// NormalizeEmail trims, lowercases and clamps an email address.
func NormalizeEmail(email string) string {
	return Clamp(strings.ToLower(strings.TrimSpace(email)), MaxEmailLength)
}

// IsValidEmail reports whether email has a local@domain.tld shape.
func IsValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// NormalizePhone converts a phone number to +<digits>. Ten-digit numbers are
// treated as North American and get a +1 prefix. Returns "" if the input does
// not look like a phone number.
func NormalizePhone(phone string) string {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return ""
	}

	var digits strings.Builder
	for _, r := range phone {
		switch {
		case r >= '0' && r <= '9':
			digits.WriteRune(r)
		case r == '+', r == '-', r == '.', r == '(', r == ')', unicode.IsSpace(r):
		default:
			return ""
		}
	}

	d := digits.String()
	switch {
	case len(d) == 10:
		return "+1" + d
	case len(d) == 11 && d[0] == '1':
		return "+" + d
	case len(d) >= 8 && len(d) <= 15 && strings.HasPrefix(phone, "+"):
		return "+" + d
	default:
		return ""
	}
}

// Clamp truncates s to at most max runes.
func Clamp(s string, max int) string {
	if max <= 0 {
		return ""
	}
	n := 0
	for i := range s {
		if n == max {
			return s[:i]
		}
		n++
	}
	return s
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func collapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
