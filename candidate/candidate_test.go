package candidate

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	. "github.com/fulldump/biff"

	"github.com/fulldump/candidatedb/codec"
)

func TestNew(t *testing.T) {

	c, err := New("Ivanov", "Petrovich", 45, 60000, FractionEdro, 1200)
	AssertNil(err)
	AssertEqual(c.Name(), "Ivanov")
	AssertEqual(c.Surname(), "Petrovich")
	AssertEqual(c.Age(), uint32(45))
	AssertEqual(c.Income(), uint32(60000))
	AssertEqual(c.Fraction(), FractionEdro)
	AssertEqual(c.Voices(), uint32(1200))
	AssertEqual(c.String(), "Ivanov Petrovich 45 60000 EDRO 1200")
}

func TestNew_Invalid(t *testing.T) {

	cases := []struct {
		name    string
		first   string
		surname string
		age     uint32
		field   string
	}{
		{"too young", "Ivanov", "Petrovich", 15, "age"},
		{"too old", "Ivanov", "Petrovich", 200, "age"},
		{"empty name", "", "Petrovich", 45, "name"},
		{"empty surname", "Ivanov", "", 45, "surname"},
		{"long name", strings.Repeat("a", MaxNameLength+1), "Petrovich", 45, "name"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, err := New(tc.first, tc.surname, tc.age, 1, FractionKprf, 1)
			AssertNil(c)
			AssertTrue(errors.Is(err, ErrInvalid))

			validationErr := &ValidationError{}
			AssertTrue(errors.As(err, &validationErr))
			AssertEqual(validationErr.Field, tc.field)
		})
	}
}

func TestNew_Bounds(t *testing.T) {

	_, err := New("A", "B", MinAge, 0, FractionLdpr, 0)
	AssertNil(err)

	_, err = New("A", "B", MaxAge, 0, FractionLdpr, 0)
	AssertNil(err)

	_, err = New(strings.Repeat("a", MaxNameLength), "B", MaxAge, 0, FractionLdpr, 0)
	AssertNil(err)

	_, err = New("A", "B", 45, 0, Fraction(42), 0)
	AssertTrue(errors.Is(err, ErrInvalid))
}

func TestParse(t *testing.T) {

	c, err := Parse([]string{"Ivanov", "Petrovich", "45", "60000", "NOVIE LUDI", "1200"})
	AssertNil(err)
	AssertEqual(c.Fraction(), FractionNovieLudi)
	AssertEqual(c.Income(), uint32(60000))
}

func TestParse_Invalid(t *testing.T) {

	cases := map[string][]string{
		"young":        {"Ivanov", "Petrovich", "15", "60000", "EDRO", "1200"},
		"old":          {"Ivanov", "Petrovich", "200", "60000", "EDRO", "1200"},
		"negative":     {"Ivanov", "Petrovich", "45", "-1", "EDRO", "1200"},
		"not a number": {"Ivanov", "Petrovich", "45", "60000", "EDRO", "many"},
		"overflow":     {"Ivanov", "Petrovich", "45", "99999999999", "EDRO", "1"},
		"arity":        {"Ivanov", "45", "60000", "EDRO", "1200"},
	}

	for name, args := range cases {
		t.Run(name, func(t *testing.T) {
			c, err := Parse(args)
			AssertNil(c)
			AssertTrue(errors.Is(err, ErrInvalid))
		})
	}
}

func TestParseFraction(t *testing.T) {

	AssertEqual(ParseFraction("EDRO"), FractionEdro)
	AssertEqual(ParseFraction("YABLOKO"), FractionYabloko)
	AssertEqual(ParseFraction("LDPR"), FractionLdpr)
	AssertEqual(ParseFraction("NOVIE LUDI"), FractionNovieLudi)
	AssertEqual(ParseFraction("KPRF"), FractionKprf)
	AssertEqual(ParseFraction("MARTIANS"), FractionUnknown)
	AssertEqual(ParseFraction("edro"), FractionUnknown)

	for f := FractionEdro; f <= FractionUnknown; f++ {
		AssertEqual(ParseFraction(f.String()), f)
	}
}

func TestParse_UnknownFraction(t *testing.T) {

	c, err := Parse([]string{"Ivanov", "Petrovich", "45", "60000", "MARTIANS", "1200"})
	AssertNil(err)
	AssertEqual(c.Fraction(), FractionUnknown)
	AssertEqual(c.String(), "Ivanov Petrovich 45 60000 UNKNOWN 1200")
}

func TestFraction_JSON(t *testing.T) {

	payload, err := json.Marshal(struct {
		Fraction Fraction `json:"fraction"`
	}{FractionNovieLudi})
	AssertNil(err)
	AssertEqual(string(payload), `{"fraction":"NOVIE LUDI"}`)

	input := struct {
		Fraction Fraction `json:"fraction"`
	}{}
	err = json.Unmarshal([]byte(`{"fraction":"MARTIANS"}`), &input)
	AssertNil(err)
	AssertEqual(input.Fraction, FractionUnknown)
}

func TestWriteRead(t *testing.T) {

	original, _ := New("Ivanov", "Petrovich", 45, 60000, FractionYabloko, 1200)

	buf := &bytes.Buffer{}
	AssertNil(original.Write(codec.NewWriter(buf)))

	record, err := Read(codec.NewReader(buf))
	AssertNil(err)
	AssertEqual(record, original)
}

func TestRead_InvalidAge(t *testing.T) {

	buf := &bytes.Buffer{}
	w := codec.NewWriter(buf)
	codec.WriteString(w, "Ivanov")
	codec.WriteString(w, "Petrovich")
	codec.WriteNumber(w, uint32(15))
	codec.WriteNumber(w, uint32(60000))
	codec.WriteString(w, "EDRO")
	codec.WriteNumber(w, uint32(1200))

	record, err := Read(codec.NewReader(buf))
	AssertNil(record)
	AssertTrue(errors.Is(err, ErrInvalid))
}

func TestRead_NameTooLong(t *testing.T) {

	buf := &bytes.Buffer{}
	w := codec.NewWriter(buf)
	codec.WriteString(w, strings.Repeat("x", MaxNameLength+1))

	record, err := Read(codec.NewReader(buf))
	AssertNil(record)
	AssertTrue(errors.Is(err, codec.ErrStringTooLong))
}
