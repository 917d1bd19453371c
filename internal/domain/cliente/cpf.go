package cliente

// ValidCPF reports whether s is a well-formed CPF: exactly 11 digits,
// not all identical, with both mod-11 check digits correct.
func ValidCPF(s string) bool {
	if len(s) != 11 {
		return false
	}

	digits := make([]int, 11)
	allEqual := true
	for i := 0; i < 11; i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return false
		}
		digits[i] = int(c - '0')
		if digits[i] != digits[0] {
			allEqual = false
		}
	}
	// Sequences like 00000000000 pass the arithmetic but are not valid CPFs
	if allEqual {
		return false
	}

	return checkDigit(digits, 9) == digits[9] && checkDigit(digits, 10) == digits[10]
}

// checkDigit computes the mod-11 verification digit over the first n digits
func checkDigit(digits []int, n int) int {
	sum := 0
	for i := 0; i < n; i++ {
		sum += digits[i] * (n + 1 - i)
	}
	r := sum * 10 % 11
	if r == 10 {
		r = 0
	}
	return r
}
