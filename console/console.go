// Package console reads text commands line by line and runs them against the
// collection.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fulldump/candidatedb/candidate"
	"github.com/fulldump/candidatedb/service"
)

var (
	ErrEmptyCommand   = errors.New("empty command")
	ErrUnknownCommand = errors.New("unknown command")
	ErrInvalidIndex   = errors.New("invalid index")
)

type ArityError struct {
	Command string
	Got     int
}

func (e *ArityError) Error() string {
	return fmt.Sprintf("wrong number of arguments for command %s: %d", e.Command, e.Got)
}

type Console struct {
	service service.Servicer
	stdout  io.Writer
	stderr  io.Writer
}

func New(s service.Servicer, stdout, stderr io.Writer) *Console {
	return &Console{
		service: s,
		stdout:  stdout,
		stderr:  stderr,
	}
}

// Run executes one command per line until an empty line or the end of in.
// The first failing command stops the run and its error is returned.
func (c *Console) Run(in io.Reader) error {

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			break
		}

		args, err := Tokenize(line)
		if err == nil {
			err = c.Perform(args)
		}
		if err != nil {
			fmt.Fprintln(c.stderr, "ERROR:", err.Error())
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintln(c.stderr, "ERROR: read input:", err.Error())
		return err
	}

	fmt.Fprintln(c.stdout, "Execution completed successfully")
	return nil
}

// Perform runs a single tokenized command.
func (c *Console) Perform(args []string) error {

	if len(args) == 0 {
		return ErrEmptyCommand
	}

	command, params := args[0], args[1:]

	switch command {
	case "l", "load":
		return c.load(params)
	case "s", "save":
		return c.save(params)
	case "c", "clean":
		return c.clean(params)
	case "a", "add":
		return c.add(params)
	case "r", "remove":
		return c.remove(params)
	case "u", "update":
		return c.update(params)
	case "v", "view":
		return c.view(params)
	}

	return fmt.Errorf("%w '%s'", ErrUnknownCommand, command)
}

func optionalFilename(command string, params []string) (string, error) {
	switch len(params) {
	case 0:
		return "", nil
	case 1:
		return params[0], nil
	}
	return "", &ArityError{Command: command, Got: len(params)}
}

func (c *Console) load(params []string) error {
	filename, err := optionalFilename("load", params)
	if err != nil {
		return err
	}
	filename, err = c.service.Load(filename)
	if err != nil {
		return fmt.Errorf("loading file '%s': %w", filename, err)
	}
	return nil
}

func (c *Console) save(params []string) error {
	filename, err := optionalFilename("save", params)
	if err != nil {
		return err
	}
	filename, err = c.service.Save(filename)
	if err != nil {
		return fmt.Errorf("saving file '%s': %w", filename, err)
	}
	return nil
}

func (c *Console) clean(params []string) error {
	if len(params) != 0 {
		return &ArityError{Command: "clean", Got: len(params)}
	}
	c.service.Clean()
	return nil
}

func (c *Console) add(params []string) error {
	if len(params) != candidate.Fields {
		return &ArityError{Command: "add", Got: len(params)}
	}
	item, err := candidate.Parse(params)
	if err != nil {
		return err
	}
	_, err = c.service.Add(item)
	return err
}

func (c *Console) remove(params []string) error {
	if len(params) != 1 {
		return &ArityError{Command: "remove", Got: len(params)}
	}
	index, err := parseIndex(params[0])
	if err != nil {
		return err
	}
	return c.service.Remove(index)
}

func (c *Console) update(params []string) error {
	if len(params) != candidate.Fields+1 {
		return &ArityError{Command: "update", Got: len(params)}
	}
	index, err := parseIndex(params[0])
	if err != nil {
		return err
	}
	item, err := candidate.Parse(params[1:])
	if err != nil {
		return err
	}
	return c.service.Update(index, item)
}

func (c *Console) view(params []string) error {
	if len(params) != 0 {
		return &ArityError{Command: "view", Got: len(params)}
	}

	entries, err := c.service.View()
	if err != nil {
		return err
	}

	b := &strings.Builder{}
	for _, entry := range entries {
		fmt.Fprintf(b, "[%d] %s\n", entry.Index, entry.Candidate.String())
	}
	fmt.Fprintf(b, "Items in collection: %d\n", len(entries))

	_, err = io.WriteString(c.stdout, b.String())
	return err
}

func parseIndex(s string) (int, error) {
	i, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w '%s'", ErrInvalidIndex, s)
	}
	return i, nil
}
