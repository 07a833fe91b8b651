package roman

// Range of integers that have a Roman numeral.
const (
	MinValue = 1
	MaxValue = 3999
)

// Symbol is one of the seven numeral letters, stored as its uppercase ASCII byte.
type Symbol byte

// The seven canonical symbols.
const (
	I Symbol = 'I'
	V Symbol = 'V'
	X Symbol = 'X'
	L Symbol = 'L'
	C Symbol = 'C'
	D Symbol = 'D'
	M Symbol = 'M'
)

// symbols is ordered by value; a symbol's index here is its slot in the grammar table.
var symbols = [...]Symbol{I, V, X, L, C, D, M}

// Symbols returns the seven symbols in ascending order of value.
func Symbols() []Symbol {
	out := make([]Symbol, len(symbols))
	copy(out, symbols[:])
	return out
}

// Value returns the integer value of the symbol, or 0 for a byte that is not a symbol.
func (s Symbol) Value() int {
	switch s {
	case I:
		return 1
	case V:
		return 5
	case X:
		return 10
	case L:
		return 50
	case C:
		return 100
	case D:
		return 500
	case M:
		return 1000
	default:
		return 0
	}
}

// String returns the uppercase letter.
func (s Symbol) String() string {
	return string(rune(s))
}

// LookupSymbol maps a letter to its symbol, ignoring case.
// Only the fourteen ASCII letters are accepted.
func LookupSymbol(r rune) (Symbol, bool) {
	switch r {
	case 'I', 'i':
		return I, true
	case 'V', 'v':
		return V, true
	case 'X', 'x':
		return X, true
	case 'L', 'l':
		return L, true
	case 'C', 'c':
		return C, true
	case 'D', 'd':
		return D, true
	case 'M', 'm':
		return M, true
	default:
		return 0, false
	}
}

// Term is one step of the greedy descent used by the formatter.
type Term struct {
	Value   int
	Numeral string
}

// terms encodes the subtractive shortcuts alongside the plain symbols, in
// descending order of value.
var terms = [...]Term{
	{1000, "M"},
	{900, "CM"},
	{500, "D"},
	{400, "CD"},
	{100, "C"},
	{90, "XC"},
	{50, "L"},
	{40, "XL"},
	{10, "X"},
	{9, "IX"},
	{5, "V"},
	{4, "IV"},
	{1, "I"},
}

// Terms returns a copy of the formatter's descent table.
func Terms() []Term {
	out := make([]Term, len(terms))
	copy(out, terms[:])
	return out
}
