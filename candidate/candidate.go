// Package candidate implements the candidate record stored by the collector.
//
// A Candidate can only exist with valid fields: every way of building one
// (New, Parse and Read) runs the same validation and returns a
// *ValidationError instead of a value when it fails.
package candidate

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/fulldump/candidatedb/codec"
	"github.com/fulldump/candidatedb/collector"
)

const (
	MaxNameLength     = 30
	MaxFractionLength = 20
	MinAge            = 21
	MaxAge            = 120

	// Fields is the number of text arguments Parse expects
	Fields = 6
)

// ErrInvalid matches every *ValidationError with errors.Is.
var ErrInvalid = errors.New("invalid candidate")

type ValidationError struct {
	Field  string
	Value  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s '%s': %s", e.Field, e.Value, e.Reason)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalid
}

type Candidate struct {
	name     string
	surname  string
	age      uint32
	income   uint32
	fraction Fraction
	voices   uint32
}

func New(name, surname string, age, income uint32, fraction Fraction, voices uint32) (*Candidate, error) {
	c := &Candidate{
		name:     name,
		surname:  surname,
		age:      age,
		income:   income,
		fraction: fraction,
		voices:   voices,
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Parse builds a candidate from text arguments in this order:
// name surname age income fraction voices.
func Parse(args []string) (*Candidate, error) {
	if len(args) != Fields {
		return nil, fmt.Errorf("%w: expected %d fields, got %d", ErrInvalid, Fields, len(args))
	}

	age, err := parseUint("age", args[2])
	if err != nil {
		return nil, err
	}
	income, err := parseUint("income", args[3])
	if err != nil {
		return nil, err
	}
	voices, err := parseUint("voices", args[5])
	if err != nil {
		return nil, err
	}

	return New(args[0], args[1], age, income, ParseFraction(args[4]), voices)
}

func parseUint(field, value string) (uint32, error) {
	n, err := strconv.ParseUint(value, 10, 32)
	if err != nil {
		return 0, &ValidationError{Field: field, Value: value, Reason: "not an unsigned 32 bit number"}
	}
	return uint32(n), nil
}

// Read is the collector.Factory for candidates.
func Read(r *codec.Reader) (collector.Record, error) {
	name := codec.ReadString(r, MaxNameLength)
	surname := codec.ReadString(r, MaxNameLength)
	age := codec.ReadNumber[uint32](r)
	income := codec.ReadNumber[uint32](r)
	fraction := ParseFraction(codec.ReadString(r, MaxFractionLength))
	voices := codec.ReadNumber[uint32](r)
	if err := r.Err(); err != nil {
		return nil, err
	}

	c, err := New(name, surname, age, income, fraction, voices)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Candidate) Write(w *codec.Writer) error {
	codec.WriteString(w, c.name)
	codec.WriteString(w, c.surname)
	codec.WriteNumber(w, c.age)
	codec.WriteNumber(w, c.income)
	codec.WriteString(w, c.fraction.String())
	codec.WriteNumber(w, c.voices)

	return w.Err()
}

func (c *Candidate) validate() error {
	if err := validateName("name", c.name); err != nil {
		return err
	}
	if err := validateName("surname", c.surname); err != nil {
		return err
	}
	if c.age < MinAge || c.age > MaxAge {
		return &ValidationError{
			Field:  "age",
			Value:  strconv.FormatUint(uint64(c.age), 10),
			Reason: fmt.Sprintf("must be between %d and %d", MinAge, MaxAge),
		}
	}
	if !c.fraction.Valid() {
		return &ValidationError{
			Field:  "fraction",
			Value:  strconv.Itoa(int(c.fraction)),
			Reason: "unknown fraction code",
		}
	}
	return nil
}

func validateName(field, value string) error {
	if value == "" {
		return &ValidationError{Field: field, Value: value, Reason: "must not be empty"}
	}
	if len(value) > MaxNameLength {
		return &ValidationError{
			Field:  field,
			Value:  value,
			Reason: fmt.Sprintf("longer than %d bytes", MaxNameLength),
		}
	}
	return nil
}

func (c *Candidate) Name() string       { return c.name }
func (c *Candidate) Surname() string    { return c.surname }
func (c *Candidate) Age() uint32        { return c.age }
func (c *Candidate) Income() uint32     { return c.income }
func (c *Candidate) Fraction() Fraction { return c.fraction }
func (c *Candidate) Voices() uint32     { return c.voices }

// String is the one line form used by the view command.
func (c *Candidate) String() string {
	return fmt.Sprintf("%s %s %d %d %s %d", c.name, c.surname, c.age, c.income, c.fraction, c.voices)
}
