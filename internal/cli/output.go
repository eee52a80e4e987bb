package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/calebcase/csd/fault"
)

// Exit codes for CLI commands.
const (
	ExitSuccess = 0
	ExitFailure = 1
)

// OutputFormatter handles JSON vs text output for CLI commands.
type OutputFormatter struct {
	Format    string
	Writer    io.Writer
	ErrWriter io.Writer
}

// Result is the payload of a successful conversion.
type Result struct {
	Input  string `json:"input"`
	Output string `json:"output"`
	Kind   string `json:"kind"`
}

// CLIResponse is the JSON envelope of every command.
type CLIResponse struct {
	Status string    `json:"status"` // "ok" or "error"
	Data   *Result   `json:"data,omitempty"`
	Error  *CLIError `json:"error,omitempty"`
}

// CLIError is the error structure for CLI responses.
type CLIError struct {
	Kind     string `json:"kind,omitempty"` // fault kind, empty for usage errors
	Message  string `json:"message"`
	Position *int   `json:"position,omitempty"`
}

// Success writes the converted value. Text output is the bare value.
func (f *OutputFormatter) Success(r Result) error {
	if f.Format == "json" {
		return json.NewEncoder(f.Writer).Encode(CLIResponse{
			Status: "ok",
			Data:   &r,
		})
	}

	_, err := fmt.Fprintln(f.Writer, r.Output)
	return err
}

// Error writes err. Text errors go to ErrWriter; JSON errors go to Writer so
// the response stays machine readable.
func (f *OutputFormatter) Error(err error) error {
	if f.Format == "json" {
		return json.NewEncoder(f.Writer).Encode(CLIResponse{
			Status: "error",
			Error:  newCLIError(err),
		})
	}

	_, werr := fmt.Fprintln(f.ErrWriter, err.Error())
	return werr
}

func newCLIError(err error) *CLIError {
	ce := &CLIError{Message: err.Error()}

	if flt, ok := fault.As(err); ok {
		ce.Kind = flt.Kind.String()

		switch flt.Kind {
		case fault.InvalidCharacter, fault.ConsecutiveNonZero:
			pos := flt.Position
			ce.Position = &pos
		}
	}

	return ce
}
