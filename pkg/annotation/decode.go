package annotation

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	"github.com/aretw0/manualfsm/pkg/domain"
)

// DecodeError aggregates per-record decoding failures.
type DecodeError struct {
	Errors []error
}

func (e *DecodeError) Error() string {
	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}
	msg := fmt.Sprintf("%d invalid records:\n", len(e.Errors))
	for i, err := range e.Errors {
		msg += fmt.Sprintf("  %d. %s\n", i+1, err.Error())
	}
	return msg
}

// Unwrap exposes the individual failures to errors.Is / errors.As.
func (e *DecodeError) Unwrap() []error {
	return e.Errors
}

// Decode converts loose annotator records into instructions.
// "type" is accepted as an alias of "kind", and a missing id defaults to the
// record's position.
func Decode(raw []map[string]any) ([]domain.Instruction, error) {
	out := make([]domain.Instruction, 0, len(raw))
	var errs []error

	for i, m := range raw {
		rec, err := decodeRecord(m, i)
		if err != nil {
			errs = append(errs, fmt.Errorf("record %d: %w", i, err))
			continue
		}
		in, err := rec.Instruction()
		if err != nil {
			errs = append(errs, fmt.Errorf("record %d: %w", i, err))
			continue
		}
		out = append(out, in)
	}

	if len(errs) > 0 {
		return nil, &DecodeError{Errors: errs}
	}
	return out, nil
}

// Parse decodes a JSON or YAML list of records.
func Parse(data []byte) ([]domain.Instruction, error) {
	var raw []map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse annotation records: %w", err)
	}
	return Decode(raw)
}

func decodeRecord(m map[string]any, index int) (domain.Record, error) {
	fields := make(map[string]any, len(m)+1)
	for k, v := range m {
		fields[k] = v
	}
	if _, ok := fields["kind"]; !ok {
		if t, ok := fields["type"]; ok {
			fields["kind"] = t
		}
	}
	delete(fields, "type")
	if _, ok := fields["id"]; !ok {
		fields["id"] = index
	}

	rec := domain.Record{}
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &rec,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
	})
	if err != nil {
		return rec, err
	}
	if err := dec.Decode(fields); err != nil {
		return rec, err
	}
	return rec, nil
}
