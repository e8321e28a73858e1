package domain

// Ratio returns num/den as a nullable rate. Returns nil when den is zero
// or the sample is below min, preserving the no-signal-vs-zero-signal
// distinction: "no signal" must never look like "zero signal".
func Ratio(num, den, min int) *float64 {
	if den == 0 || den < min {
		return nil
	}
	r := float64(num) / float64(den)
	return &r
}

// FloatRatio is Ratio over a float numerator (partial-credit sums)
func FloatRatio(num float64, den, min int) *float64 {
	if den == 0 || den < min {
		return nil
	}
	r := num / float64(den)
	return &r
}

// Float returns a pointer to v, for literal nullable rates
func Float(v float64) *float64 {
	return &v
}

// Int returns a pointer to v
func Int(v int) *int {
	return &v
}
