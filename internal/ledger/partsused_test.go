package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePartsUsed(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []PartLine
	}{
		{
			"single token",
			"Widget x2",
			[]PartLine{{Name: "Widget", Qty: 2}},
		},
		{
			"multiple tokens keep order",
			"Fuse 10A x2, V-Belt A45 x1",
			[]PartLine{{Name: "Fuse 10A", Qty: 2}, {Name: "V-Belt A45", Qty: 1}},
		},
		{
			"name with parentheses and spaces",
			"Hydraulic Oil (5L) x1",
			[]PartLine{{Name: "Hydraulic Oil (5L)", Qty: 1}},
		},
		{
			"name containing the quantity marker",
			"Box x Large x2",
			[]PartLine{{Name: "Box x Large", Qty: 2}},
		},
		{
			"repeated names are kept as separate lines",
			"Fuse 10A x1, Fuse 10A x2",
			[]PartLine{{Name: "Fuse 10A", Qty: 1}, {Name: "Fuse 10A", Qty: 2}},
		},
		{"empty string", "", nil},
		{"blank string", "   ", nil},
		{"token without marker", "just some text", nil},
		{"missing quantity", "Widget x", nil},
		{"zero quantity dropped", "Widget x0", nil},
		{"negative quantity dropped", "Widget x-2", nil},
		{"non-numeric quantity dropped", "Widget xtwo", nil},
		{
			"bad tokens skipped, good ones kept",
			"garbage, Widget x3, also garbage x",
			[]PartLine{{Name: "Widget", Qty: 3}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParsePartsUsed(tt.input))
		})
	}
}
