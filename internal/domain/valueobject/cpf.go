package valueobject

import "strings"

const cpfLength = 11

// NormalizeCPF strips the usual "000.000.000-00" punctuation from a CPF.
func NormalizeCPF(raw string) string {
	return strings.NewReplacer(".", "", "-", "", " ", "").Replace(raw)
}

// IsValidCPF reports whether raw is a Brazilian individual taxpayer number
// with valid check digits. Formatted and bare inputs are both accepted.
func IsValidCPF(raw string) bool {
	normalized := NormalizeCPF(raw)
	if len(normalized) != cpfLength {
		return false
	}

	digits := make([]int, cpfLength)
	repeated := true
	for i, r := range normalized {
		if r < '0' || r > '9' {
			return false
		}
		digits[i] = int(r - '0')
		if digits[i] != digits[0] {
			repeated = false
		}
	}
	if repeated {
		return false
	}

	return cpfCheckDigit(digits[:9]) == digits[9] && cpfCheckDigit(digits[:10]) == digits[10]
}

func cpfCheckDigit(digits []int) int {
	sum := 0
	weight := len(digits) + 1
	for _, d := range digits {
		sum += d * weight
		weight--
	}

	rest := sum * 10 % 11
	if rest == 10 {
		return 0
	}
	return rest
}
