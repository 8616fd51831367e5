package customer

import "strings"

const cpfLength = 11

// NormalizeCPF strips the "ddd.ddd.ddd-dd" punctuation and returns the 11 raw digits.
// ok is false when the input is neither a punctuated nor a raw CPF.
func NormalizeCPF(raw string) (digits string, ok bool) {
	raw = strings.TrimSpace(raw)

	switch len(raw) {
	case cpfLength:
		if !allDigits(raw) {
			return "", false
		}
		return raw, true
	case cpfLength + 3:
		if raw[3] != '.' || raw[7] != '.' || raw[11] != '-' {
			return "", false
		}
		d := raw[0:3] + raw[4:7] + raw[8:11] + raw[12:14]
		if !allDigits(d) {
			return "", false
		}
		return d, true
	default:
		return "", false
	}
}

// IsValidCPF checks both mod-11 check digits. Sequences of a single repeated digit are rejected.
func IsValidCPF(raw string) bool {
	d, ok := NormalizeCPF(raw)
	if !ok {
		return false
	}

	if strings.Count(d, d[:1]) == cpfLength {
		return false
	}

	return checkDigit(d[:9], 10) == int(d[9]-'0') &&
		checkDigit(d[:10], 11) == int(d[10]-'0')
}

func checkDigit(prefix string, weight int) int {
	sum := 0
	for i := 0; i < len(prefix); i++ {
		sum += int(prefix[i]-'0') * (weight - i)
	}
	rem := (sum * 10) % 11
	if rem == 10 {
		return 0
	}
	return rem
}

// FormatCPF renders 11 digits as ddd.ddd.ddd-dd.
func FormatCPF(digits string) string {
	if len(digits) != cpfLength {
		return digits
	}
	return digits[0:3] + "." + digits[3:6] + "." + digits[6:9] + "-" + digits[9:11]
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
