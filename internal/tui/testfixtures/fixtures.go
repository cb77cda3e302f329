package testfixtures

import (
	"time"

	"github.com/emony/landing/internal/funnel"
)

// Fixed test values for consistent output.
var (
	FixedTime = time.Date(2026, 1, 15, 10, 30, 0, 0, time.UTC)
)

// LoanValues returns a complete loan request.
func LoanValues() funnel.Values {
	return funnel.Values{
		funnel.FieldAmount:  "500",
		funnel.FieldTerm:    "30",
		funnel.FieldPurpose: "negocio",
		funnel.FieldChannel: funnel.ChannelWhatsApp,
		funnel.FieldContact: "+51 999 999 999",
	}
}

// TesterValues returns a complete tester signup.
func TesterValues() funnel.Values {
	return funnel.Values{
		funnel.FieldName:            "Abel",
		funnel.FieldAgeRange:        "25-30",
		funnel.FieldDevice:          "android",
		funnel.FieldContact:         "abel@example.com",
		funnel.FieldUsesFinanceApps: "si",
		funnel.FieldNote:            "más claridad en los pasos",
	}
}
