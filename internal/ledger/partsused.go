package ledger

import (
	"strconv"
	"strings"
)

// PartLine is one parsed line item of a work order's parts-consumption
// record.
type PartLine struct {
	Name string
	Qty  int
}

// ParsePartsUsed parses the legacy free-text format
// "<PartName> x<Qty>, <PartName> x<Qty>, ...". Part names may contain
// spaces and parentheses; the quantity marker is the last " x" in the
// token. Tokens with the wrong shape or a non-positive quantity are
// dropped, order of the remaining lines is preserved.
func ParsePartsUsed(value string) []PartLine {
	if strings.TrimSpace(value) == "" {
		return nil
	}

	var lines []PartLine
	for _, token := range strings.Split(value, ",") {
		token = strings.TrimSpace(token)

		sep := strings.LastIndex(token, " x")
		if sep <= 0 {
			continue
		}

		name := strings.TrimSpace(token[:sep])
		qtyRaw := token[sep+2:]
		if name == "" || qtyRaw == "" || !isDigits(qtyRaw) {
			continue
		}

		qty, err := strconv.Atoi(qtyRaw)
		if err != nil || qty <= 0 {
			continue
		}

		lines = append(lines, PartLine{Name: name, Qty: qty})
	}

	return lines
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
