package reedsolomon

// Poly represents a polynomial whose coefficients are elements of GF(256).
// Instances are immutable.
type Poly struct {
	coefficients []int
}

var zeroPoly = &Poly{coefficients: []int{0}}

// NewPoly creates a polynomial. Coefficients are ordered from highest-degree
// to lowest-degree; leading zeros are dropped.
func NewPoly(coefficients []int) *Poly {
	if len(coefficients) == 0 {
		panic("reedsolomon: empty coefficients")
	}
	if len(coefficients) > 1 && coefficients[0] == 0 {
		firstNonZero := 1
		for firstNonZero < len(coefficients) && coefficients[firstNonZero] == 0 {
			firstNonZero++
		}
		if firstNonZero == len(coefficients) {
			return zeroPoly
		}
		coefficients = coefficients[firstNonZero:]
	}
	c := make([]int, len(coefficients))
	copy(c, coefficients)
	return &Poly{coefficients: c}
}

// BytesPoly creates a polynomial from a codeword sequence, first codeword
// being the highest-degree coefficient.
func BytesPoly(codewords []byte) *Poly {
	if len(codewords) == 0 {
		return zeroPoly
	}
	c := make([]int, len(codewords))
	for i, b := range codewords {
		c[i] = int(b)
	}
	return NewPoly(c)
}

// Coefficients returns the polynomial coefficients, highest degree first.
func (p *Poly) Coefficients() []int {
	return p.coefficients
}

// Degree returns the degree of this polynomial.
func (p *Poly) Degree() int {
	return len(p.coefficients) - 1
}

// IsZero returns true if this is the zero polynomial.
func (p *Poly) IsZero() bool {
	return p.coefficients[0] == 0
}

// Coefficient returns the coefficient of x^degree.
func (p *Poly) Coefficient(degree int) int {
	return p.coefficients[len(p.coefficients)-1-degree]
}

// EvaluateAt evaluates this polynomial at a.
func (p *Poly) EvaluateAt(a int) int {
	if a == 0 {
		return p.Coefficient(0)
	}
	if a == 1 {
		result := 0
		for _, c := range p.coefficients {
			result = AddOrSubtract(result, c)
		}
		return result
	}
	result := p.coefficients[0]
	for i := 1; i < len(p.coefficients); i++ {
		result = AddOrSubtract(Multiply(a, result), p.coefficients[i])
	}
	return result
}
