package candidate

// Fraction is the political fraction a candidate runs for.
type Fraction int

const (
	FractionEdro Fraction = iota
	FractionYabloko
	FractionLdpr
	FractionNovieLudi
	FractionKprf
	FractionUnknown
)

var fractionNames = [...]string{
	FractionEdro:      "EDRO",
	FractionYabloko:   "YABLOKO",
	FractionLdpr:      "LDPR",
	FractionNovieLudi: "NOVIE LUDI",
	FractionKprf:      "KPRF",
	FractionUnknown:   "UNKNOWN",
}

var fractionsByName = func() map[string]Fraction {
	m := make(map[string]Fraction, len(fractionNames))
	for f, name := range fractionNames {
		m[name] = Fraction(f)
	}
	return m
}()

// ParseFraction never fails: unrecognized names map to FractionUnknown.
func ParseFraction(name string) Fraction {
	f, ok := fractionsByName[name]
	if !ok {
		return FractionUnknown
	}
	return f
}

func (f Fraction) Valid() bool {
	return f >= FractionEdro && f <= FractionUnknown
}

func (f Fraction) String() string {
	if !f.Valid() {
		return fractionNames[FractionUnknown]
	}
	return fractionNames[f]
}

func (f Fraction) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

func (f *Fraction) UnmarshalText(text []byte) error {
	*f = ParseFraction(string(text))
	return nil
}
