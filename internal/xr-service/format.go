package xrservice

import (
	"math"
	"strconv"
	"strings"
)

const (
	plainMin = 1e-3
	plainMax = 1e7
)

// FormatRate renders v with the shortest round-trip digits. Integral values
// keep a trailing ".0" and very large or small magnitudes switch to
// d.dddE±n notation, e.g. 1.0, 8.539734222673566, 1.0E7, 2.5E-4.
func FormatRate(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	}

	abs := math.Abs(v)
	if abs == 0 || (abs >= plainMin && abs < plainMax) {
		return withFraction(strconv.FormatFloat(v, 'f', -1, 64))
	}

	mantissa, exp, _ := strings.Cut(strconv.FormatFloat(v, 'E', -1, 64), "E")

	n, err := strconv.Atoi(exp)
	if err != nil {
		return strconv.FormatFloat(v, 'E', -1, 64)
	}

	return withFraction(mantissa) + "E" + strconv.Itoa(n)
}

func withFraction(s string) string {
	if strings.Contains(s, ".") {
		return s
	}

	return s + ".0"
}
