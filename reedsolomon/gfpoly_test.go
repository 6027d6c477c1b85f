package reedsolomon

// Polynomial arithmetic used to rebuild generators from their roots and to
// check that encoded blocks divide evenly.

// monomial returns coefficient * x^degree.
func monomial(degree, coefficient int) *Poly {
	if degree < 0 {
		panic("reedsolomon: negative degree")
	}
	if coefficient == 0 {
		return zeroPoly
	}
	coefficients := make([]int, degree+1)
	coefficients[0] = coefficient
	return &Poly{coefficients: coefficients}
}

// generatorPoly returns the monic generator polynomial for eccBlockSize
// check codewords built from the constant coefficient table.
func generatorPoly(eccBlockSize int) (*Poly, error) {
	c, err := Generator(eccBlockSize)
	if err != nil {
		return nil, err
	}
	coefficients := make([]int, len(c)+1)
	coefficients[0] = 1
	for i, v := range c {
		coefficients[len(c)-i] = v
	}
	return &Poly{coefficients: coefficients}, nil
}

// addOrSubtractPoly adds (or subtracts) another polynomial.
func (p *Poly) addOrSubtractPoly(other *Poly) *Poly {
	if p.IsZero() {
		return other
	}
	if other.IsZero() {
		return p
	}

	smallerCoeff := p.coefficients
	largerCoeff := other.coefficients
	if len(smallerCoeff) > len(largerCoeff) {
		smallerCoeff, largerCoeff = largerCoeff, smallerCoeff
	}

	sumDiff := make([]int, len(largerCoeff))
	lengthDiff := len(largerCoeff) - len(smallerCoeff)
	copy(sumDiff, largerCoeff[:lengthDiff])

	for i := lengthDiff; i < len(largerCoeff); i++ {
		sumDiff[i] = AddOrSubtract(smallerCoeff[i-lengthDiff], largerCoeff[i])
	}

	return NewPoly(sumDiff)
}

// multiplyPoly multiplies by another polynomial.
func (p *Poly) multiplyPoly(other *Poly) *Poly {
	if p.IsZero() || other.IsZero() {
		return zeroPoly
	}
	aCoeff := p.coefficients
	bCoeff := other.coefficients
	product := make([]int, len(aCoeff)+len(bCoeff)-1)
	for i, ac := range aCoeff {
		for j, bc := range bCoeff {
			product[i+j] = AddOrSubtract(product[i+j], Multiply(ac, bc))
		}
	}
	return NewPoly(product)
}

// multiplyByMonomial multiplies by coefficient * x^degree.
func (p *Poly) multiplyByMonomial(degree, coefficient int) *Poly {
	if degree < 0 {
		panic("reedsolomon: negative degree")
	}
	if coefficient == 0 {
		return zeroPoly
	}
	product := make([]int, len(p.coefficients)+degree)
	for i, c := range p.coefficients {
		product[i] = Multiply(c, coefficient)
	}
	return NewPoly(product)
}

// divide divides by another polynomial, returning [quotient, remainder].
func (p *Poly) divide(other *Poly) [2]*Poly {
	if other.IsZero() {
		panic("reedsolomon: divide by zero")
	}

	quotient := zeroPoly
	remainder := p

	inverseDLT := Inverse(other.Coefficient(other.Degree()))

	for remainder.Degree() >= other.Degree() && !remainder.IsZero() {
		degreeDiff := remainder.Degree() - other.Degree()
		scale := Multiply(remainder.Coefficient(remainder.Degree()), inverseDLT)
		term := other.multiplyByMonomial(degreeDiff, scale)
		quotient = quotient.addOrSubtractPoly(monomial(degreeDiff, scale))
		remainder = remainder.addOrSubtractPoly(term)
	}

	return [2]*Poly{quotient, remainder}
}
