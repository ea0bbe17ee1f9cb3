// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package pattern

// digitsOf strips everything but decimal digits.
func digitsOf(s string) []int {
	var digits []int
	for _, r := range s {
		if r >= '0' && r <= '9' {
			digits = append(digits, int(r-'0'))
		}
	}
	return digits
}

func allSame(digits []int) bool {
	for _, d := range digits[1:] {
		if d != digits[0] {
			return false
		}
	}
	return true
}

// validCPF checks the two verification digits of a CPF. Sequences of one
// repeated digit pass the arithmetic but are reserved test values.
func validCPF(s string) bool {
	d := digitsOf(s)
	if len(d) != 11 || allSame(d) {
		return false
	}
	for _, n := range []int{9, 10} {
		sum := 0
		for i := 0; i < n; i++ {
			sum += d[i] * (n + 1 - i)
		}
		check := (sum * 10) % 11
		if check == 10 {
			check = 0
		}
		if check != d[n] {
			return false
		}
	}
	return true
}

// validCNPJ checks the two verification digits of a CNPJ.
func validCNPJ(s string) bool {
	d := digitsOf(s)
	if len(d) != 14 || allSame(d) {
		return false
	}
	weights := []int{6, 5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
	for _, n := range []int{12, 13} {
		sum := 0
		for i := 0; i < n; i++ {
			sum += d[i] * weights[len(weights)-n+i]
		}
		check := sum % 11
		if check < 2 {
			check = 0
		} else {
			check = 11 - check
		}
		if check != d[n] {
			return false
		}
	}
	return true
}

// validVoterID checks a voter registration number: eight sequential
// digits weighted 2..9, a state code between 01 and 28, and two mod-11
// verification digits (remainder 10 maps to 0).
func validVoterID(s string) bool {
	d := digitsOf(s)
	if len(d) != 12 || allSame(d) {
		return false
	}
	state := d[8]*10 + d[9]
	if state < 1 || state > 28 {
		return false
	}
	sum := 0
	for i := 0; i < 8; i++ {
		sum += d[i] * (i + 2)
	}
	dv1 := sum % 11
	if dv1 == 10 {
		dv1 = 0
	}
	if dv1 != d[10] {
		return false
	}
	dv2 := (d[8]*7 + d[9]*8 + dv1*9) % 11
	if dv2 == 10 {
		dv2 = 0
	}
	return dv2 == d[11]
}

// validPIS checks the mod-11 verification digit of a PIS/PASEP/NIS
// number, weights 3,2,9,8,7,6,5,4,3,2.
func validPIS(s string) bool {
	d := digitsOf(s)
	if len(d) != 11 || allSame(d) {
		return false
	}
	weights := []int{3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
	sum := 0
	for i, w := range weights {
		sum += d[i] * w
	}
	check := 11 - sum%11
	if check >= 10 {
		check = 0
	}
	return check == d[10]
}

// validCNS checks a national health card number: fifteen digits starting
// with 1, 2, 7, 8, or 9 whose sum weighted 15..1 is divisible by 11.
func validCNS(s string) bool {
	d := digitsOf(s)
	if len(d) != 15 {
		return false
	}
	switch d[0] {
	case 1, 2, 7, 8, 9:
	default:
		return false
	}
	sum := 0
	for i, n := range d {
		sum += n * (15 - i)
	}
	return sum%11 == 0
}

// validLuhn checks a payment-card number with the Luhn algorithm.
func validLuhn(s string) bool {
	d := digitsOf(s)
	if len(d) < 13 || len(d) > 19 {
		return false
	}
	sum := 0
	double := false
	for i := len(d) - 1; i >= 0; i-- {
		n := d[i]
		if double {
			n *= 2
			if n > 9 {
				n -= 9
			}
		}
		sum += n
		double = !double
	}
	return sum%10 == 0
}
