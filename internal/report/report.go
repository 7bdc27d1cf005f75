// Package report encodes the results of circuit runs.
package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/specialistvlad/qmock/internal/register"
	"github.com/vmihailenco/msgpack/v5"
)

// Format is an output encoding.
type Format string

const (
	FormatJSON    Format = "json"
	FormatMsgpack Format = "msgpack"
)

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatJSON, FormatMsgpack:
		return f, nil
	default:
		return "", fmt.Errorf("invalid output format %q: must be 'json' or 'msgpack'", s)
	}
}

// Complex is a complex number encoded as [re, im].
type Complex [2]float64

// Report is the result of all repetitions of one circuit.
type Report struct {
	Circuit     string                 `json:"circuit" msgpack:"circuit"`
	Repetitions int                    `json:"repetitions" msgpack:"repetitions"`
	Seed        uint64                 `json:"seed" msgpack:"seed"`
	GlobalPhase float64                `json:"global_phase" msgpack:"global_phase"`
	Bits        map[string][][]bool    `json:"bit_registers" msgpack:"bit_registers"`
	Reals       map[string][][]float64 `json:"float_registers" msgpack:"float_registers"`
	Complexes   map[string][][]Complex `json:"complex_registers" msgpack:"complex_registers"`
}

// New builds a report from accumulated output registers.
func New(circuit string, repetitions int, seed uint64, globalPhase float64, out *register.Outputs) *Report {
	r := &Report{
		Circuit:     circuit,
		Repetitions: repetitions,
		Seed:        seed,
		GlobalPhase: globalPhase,
		Bits:        map[string][][]bool{},
		Reals:       map[string][][]float64{},
		Complexes:   map[string][][]Complex{},
	}
	if out == nil {
		return r
	}
	for name, rows := range out.Bits {
		r.Bits[name] = rows
	}
	for name, rows := range out.Reals {
		r.Reals[name] = rows
	}
	for name, rows := range out.Complexes {
		encoded := make([][]Complex, len(rows))
		for i, row := range rows {
			encoded[i] = make([]Complex, len(row))
			for j, c := range row {
				encoded[i][j] = Complex{real(c), imag(c)}
			}
		}
		r.Complexes[name] = encoded
	}
	return r
}

// Outputs converts the report back into output registers.
func (r *Report) Outputs() *register.Outputs {
	out := register.NewOutputs()
	for name, rows := range r.Bits {
		out.Bits[name] = rows
	}
	for name, rows := range r.Reals {
		out.Reals[name] = rows
	}
	for name, rows := range r.Complexes {
		decoded := make([][]complex128, len(rows))
		for i, row := range rows {
			decoded[i] = make([]complex128, len(row))
			for j, c := range row {
				decoded[i][j] = complex(c[0], c[1])
			}
		}
		out.Complexes[name] = decoded
	}
	return out
}

// Marshal encodes r in the given format.
func (r *Report) Marshal(f Format) ([]byte, error) {
	switch f {
	case FormatMsgpack:
		return msgpack.Marshal(r)
	case FormatJSON:
		return json.Marshal(r)
	default:
		return nil, fmt.Errorf("unsupported output format %q", f)
	}
}

// Write encodes reports to w. JSON is written as one document per line;
// msgpack as a stream of concatenated values.
func Write(w io.Writer, f Format, reports ...*Report) error {
	switch f {
	case FormatJSON:
		enc := json.NewEncoder(w)
		for _, r := range reports {
			if err := enc.Encode(r); err != nil {
				return fmt.Errorf("encoding report %q: %w", r.Circuit, err)
			}
		}
	case FormatMsgpack:
		enc := msgpack.NewEncoder(w)
		for _, r := range reports {
			if err := enc.Encode(r); err != nil {
				return fmt.Errorf("encoding report %q: %w", r.Circuit, err)
			}
		}
	default:
		return fmt.Errorf("unsupported output format %q", f)
	}
	return nil
}

// Read decodes every report in r.
func Read(r io.Reader, f Format) ([]*Report, error) {
	var reports []*Report
	switch f {
	case FormatJSON:
		dec := json.NewDecoder(r)
		for dec.More() {
			rep := &Report{}
			if err := dec.Decode(rep); err != nil {
				return nil, fmt.Errorf("decoding report: %w", err)
			}
			reports = append(reports, rep)
		}
	case FormatMsgpack:
		dec := msgpack.NewDecoder(r)
		for {
			rep := &Report{}
			if err := dec.Decode(rep); err != nil {
				if errors.Is(err, io.EOF) {
					break
				}
				return nil, fmt.Errorf("decoding report: %w", err)
			}
			reports = append(reports, rep)
		}
	default:
		return nil, fmt.Errorf("unsupported output format %q", f)
	}
	return reports, nil
}
