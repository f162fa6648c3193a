package validator

import (
	"testing"

	"github.com/go-playground/validator/v10"
)

type sample struct {
	Currency string `validate:"omitempty,iso4217"`
	Status   string `validate:"omitempty,investment_status"`
	Role     string `validate:"omitempty,user_role"`
	Date     string `validate:"omitempty,iso_date"`
}

func TestCustomTags(t *testing.T) {
	v := validator.New()
	RegisterOn(v)

	tests := []struct {
		name    string
		in      sample
		wantErr bool
	}{
		{"all valid", sample{Currency: "GBP", Status: "matured", Role: "super_user", Date: "2024-01-15"}, false},
		{"empty skipped", sample{}, false},
		{"unknown currency", sample{Currency: "XXX"}, true},
		{"lowercase currency", sample{Currency: "usd"}, true},
		{"unknown status", sample{Status: "paused"}, true},
		{"unknown role", sample{Role: "admin"}, true},
		{"bad date", sample{Date: "15/01/2024"}, true},
		{"impossible date", sample{Date: "2024-02-30"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Struct(tt.in)
			if (err != nil) != tt.wantErr {
				t.Errorf("Struct() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
