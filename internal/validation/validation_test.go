package validation

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jimmy00415/ChefWeb-sub000/internal/model"
)

func validBooking() *model.BookingRequest {
	return &model.BookingRequest{
		ServiceState:    "CA",
		City:            "San Diego",
		EventDate:       "2026-06-12",
		EventTime:       "18:30",
		Package:         "premium",
		NumAdults:       8,
		NumChildren:     2,
		TravelFeeStatus: "included",
		ContactName:     "Dana Reyes",
		ContactEmail:    "dana@example.com",
		ContactPhone:    "(619) 555-0134",
		AgreeToTerms:    true,
	}
}

func TestValidateBookingPayload(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(p *model.BookingRequest)
		want   []string
	}{
		{
			name:   "valid",
			mutate: func(p *model.BookingRequest) {},
			want:   nil,
		},
		{
			name: "missing email and terms",
			mutate: func(p *model.BookingRequest) {
				p.ContactEmail = ""
				p.AgreeToTerms = false
			},
			want: []string{
				"Contact email is required",
				"You must agree to the terms and conditions",
			},
		},
		{
			name:   "whitespace only counts as missing",
			mutate: func(p *model.BookingRequest) { p.City = "   " },
			want:   []string{"City is required"},
		},
		{
			name:   "unknown package",
			mutate: func(p *model.BookingRequest) { p.Package = "deluxe" },
			want:   []string{"Invalid package: deluxe"},
		},
		{
			name:   "absent package is fine",
			mutate: func(p *model.BookingRequest) { p.Package = "" },
			want:   nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validBooking()
			tt.mutate(p)
			assert.Equal(t, tt.want, ValidateBookingPayload(p))
		})
	}
}

func TestValidateBookingPayload_FieldOrder(t *testing.T) {
	errs := ValidateBookingPayload(&model.BookingRequest{Package: "nope"})
	assert.Equal(t, []string{
		"Service state is required",
		"City is required",
		"Event date is required",
		"Event time is required",
		"Contact name is required",
		"Contact email is required",
		"Contact phone is required",
		"You must agree to the terms and conditions",
		"Invalid package: nope",
	}, errs)
}

func TestValidateBookingPayload_Nil(t *testing.T) {
	assert.NotPanics(t, func() {
		errs := ValidateBookingPayload(nil)
		assert.Len(t, errs, 8)
	})
}

func TestValidateBookingPayload_FromJSON(t *testing.T) {
	body := `{
		"serviceState": "CA", "city": "Irvine", "eventDate": "2026-07-04",
		"eventTime": "17:00", "contactName": "sam lee", "contactPhone": "9495550100",
		"numAdults": "six", "numChildren": null, "agreeToTerms": "false"
	}`

	var p model.BookingRequest
	require.NoError(t, json.Unmarshal([]byte(body), &p))
	assert.Equal(t, model.Number(0), p.NumAdults)
	assert.Equal(t, []string{
		"Contact email is required",
		"You must agree to the terms and conditions",
	}, ValidateBookingPayload(&p))
}

func TestValidateContact(t *testing.T) {
	tests := []struct {
		name     string
		in       *model.ContactRequest
		wantErrs []string
	}{
		{
			name:     "valid",
			in:       &model.ContactRequest{Name: "ana", Email: "ana@example.com", Message: "Hi"},
			wantErrs: nil,
		},
		{
			name:     "nil",
			in:       nil,
			wantErrs: []string{"Name is required", "Email is required", "Message is required"},
		},
		{
			name:     "bad email",
			in:       &model.ContactRequest{Name: "Ana", Email: "ana@example", Message: "Hi"},
			wantErrs: []string{"Email address is invalid"},
		},
		{
			name:     "email with spaces",
			in:       &model.ContactRequest{Name: "Ana", Email: "ana b@example.com", Message: "Hi"},
			wantErrs: []string{"Email address is invalid"},
		},
		{
			name:     "blank message",
			in:       &model.ContactRequest{Name: "Ana", Email: "ana@example.com", Message: "  \n "},
			wantErrs: []string{"Message is required"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, errs := ValidateContact(tt.in)
			assert.Equal(t, tt.wantErrs, errs)
		})
	}
}

func TestValidateContact_Normalizes(t *testing.T) {
	out, errs := ValidateContact(&model.ContactRequest{
		Name:    "  maria   della  rosa ",
		Email:   " Maria@Example.COM ",
		Phone:   "619.555.0134",
		Subject: strings.Repeat("s", 250),
		Message: strings.Repeat("m", 6000),
	})

	require.Empty(t, errs)
	assert.Equal(t, "Maria Della Rosa", out.Name)
	assert.Equal(t, "maria@example.com", out.Email)
	assert.Equal(t, "+16195550134", out.Phone)
	assert.Len(t, out.Subject, MaxSubjectLength)
	assert.Len(t, out.Message, MaxMessageLength)
}

func TestValidateContact_DropsBadPhone(t *testing.T) {
	out, errs := ValidateContact(&model.ContactRequest{
		Name: "Ana", Email: "ana@example.com", Message: "Hi", Phone: "call me maybe",
	})
	assert.Empty(t, errs)
	assert.Empty(t, out.Phone)
}

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"(619) 555-0134", "+16195550134"},
		{"1-619-555-0134", "+16195550134"},
		{"+44 20 7946 0958", "+442079460958"},
		{"555-0134", ""},
		{"619555013x", ""},
		{"", ""},
		{"+1234567890123456", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizePhone(tt.in))
		})
	}
}

func TestNormalizeBooking(t *testing.T) {
	p := validBooking()
	p.ContactName = "dana   reyes"
	p.ContactEmail = " DANA@example.com"
	p.Package = " Premium "
	p.SpecialRequests = strings.Repeat("é", 2500)
	p.Addons = []string{" bartender ", "", "cleanup"}

	out := NormalizeBooking(p)

	assert.Equal(t, "Dana Reyes", out.ContactName)
	assert.Equal(t, "dana@example.com", out.ContactEmail)
	assert.Equal(t, "+16195550134", out.ContactPhone)
	assert.Equal(t, "premium", out.Package)
	assert.Equal(t, MaxSpecialRequestsLength, len([]rune(out.SpecialRequests)))
	assert.Equal(t, []string{"bartender", "cleanup"}, out.Addons)
	assert.Empty(t, ValidateBookingPayload(&out))

	// input is untouched
	assert.Equal(t, "dana   reyes", p.ContactName)
}

func TestNormalizeBooking_GuestsAndAmounts(t *testing.T) {
	tests := []struct {
		name         string
		adults       model.Number
		children     model.Number
		fee          model.Number
		wantAdults   model.Number
		wantChildren model.Number
		wantFee      model.Number
	}{
		{"whole", 4, 2, 50, 4, 2, 50},
		{"fractional rounds down", 2.5, 1.9, 49.99, 2, 1, 49.99},
		{"oversized capped", 1e20, MaxGuests + 1, 1e20, MaxGuests, MaxGuests, MaxAmount},
		{"negative", -3, -1, -10, 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validBooking()
			p.NumAdults, p.NumChildren, p.TravelFeeAmount = tt.adults, tt.children, tt.fee

			out := NormalizeBooking(p)
			assert.Equal(t, tt.wantAdults, out.NumAdults)
			assert.Equal(t, tt.wantChildren, out.NumChildren)
			assert.Equal(t, tt.wantFee, out.TravelFeeAmount)
			assert.Equal(t, int(tt.wantAdults), out.NumAdults.Int())
		})
	}
}

func TestNormalizeBooking_KeepsUnparseablePhone(t *testing.T) {
	p := validBooking()
	p.ContactPhone = "ask front desk"
	out := NormalizeBooking(p)
	assert.Equal(t, "ask front desk", out.ContactPhone)
	assert.Equal(t, model.BookingRequest{}, NormalizeBooking(nil))
}

func TestClamp(t *testing.T) {
	assert.Equal(t, "héll", Clamp("héllo", 4))
	assert.Equal(t, "hi", Clamp("hi", 10))
	assert.Equal(t, "", Clamp("hi", 0))
}
