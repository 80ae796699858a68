package integer

// Cmp compares x and y and returns:
//
//	-1 if x <  y
//	 0 if x == y
//	+1 if x >  y
func (x *Int) Cmp(y *Int) int {
	if x.further != y.further {
		if x.further == 0 {
			return 1
		}

		return -1
	}

	return cmpDigits(x, y)
}

// CmpAbs compares |x| and |y| the same way Cmp does.
func (x *Int) CmpAbs(y *Int) int {
	return cmpDigits(magnitude(x), magnitude(y))
}

// Equal reports whether x == y.
func (x *Int) Equal(y *Int) bool {
	return x.further == y.further && cmpDigits(x, y) == 0
}

// cmpDigits compares the digits of x and y as unsigned words from the most
// significant position down. Both must share the same further.
func cmpDigits(x, y *Int) int {
	for i := max(x.size(), y.size()) - 1; i >= 0; i-- {
		a, b := x.at(i), y.at(i)

		switch {
		case a > b:
			return 1
		case a < b:
			return -1
		}
	}

	return 0
}

// magnitude returns x if it is non-negative and a new Int holding -x
// otherwise.
func magnitude(x *Int) *Int {
	if !x.negative() {
		return x
	}

	return new(Int).Neg(x)
}
