package model

import (
	"encoding/json"
	"errors"
	"fmt"
)

// SchemaError reports a response body that does not match the overview schema.
type SchemaError struct {
	Path   string // JSON path of the offending field, empty for whole-document errors
	Reason string
	Err    error // underlying encoding/json error, if any
}

func (e *SchemaError) Error() string {
	if e.Path == "" {
		return "schema error: " + e.Reason
	}
	return fmt.Sprintf("schema error at %s: %s", e.Path, e.Reason)
}

func (e *SchemaError) Unwrap() error {
	return e.Err
}

// DecodeCurrencyOverview decodes and validates a currency overview document.
func DecodeCurrencyOverview(data []byte) (*CurrencyOverview, error) {
	var out CurrencyOverview
	if err := unmarshal(data, &out); err != nil {
		return nil, err
	}

	var probe struct {
		Lines *[]struct {
			Name      *string `json:"currencyTypeName"`
			DetailsID *string `json:"detailsId"`
		} `json:"lines"`
		CurrencyDetails []struct {
			Name *string `json:"name"`
		} `json:"currencyDetails"`
	}
	if err := unmarshal(data, &probe); err != nil {
		return nil, err
	}

	if probe.Lines == nil {
		return nil, missing("lines")
	}
	for i, l := range *probe.Lines {
		if l.Name == nil {
			return nil, missing(fmt.Sprintf("lines[%d].currencyTypeName", i))
		}
		if l.DetailsID == nil {
			return nil, missing(fmt.Sprintf("lines[%d].detailsId", i))
		}
	}
	for i, d := range probe.CurrencyDetails {
		if d.Name == nil {
			return nil, missing(fmt.Sprintf("currencyDetails[%d].name", i))
		}
	}

	return &out, nil
}

// DecodeItemOverview decodes and validates an item overview document.
func DecodeItemOverview(data []byte) (*ItemOverview, error) {
	var out ItemOverview
	if err := unmarshal(data, &out); err != nil {
		return nil, err
	}

	var probe struct {
		Lines *[]struct {
			Name       *string  `json:"name"`
			ChaosValue *float64 `json:"chaosValue"`
			DetailsID  *string  `json:"detailsId"`
		} `json:"lines"`
	}
	if err := unmarshal(data, &probe); err != nil {
		return nil, err
	}

	if probe.Lines == nil {
		return nil, missing("lines")
	}
	for i, l := range *probe.Lines {
		switch {
		case l.Name == nil:
			return nil, missing(fmt.Sprintf("lines[%d].name", i))
		case l.ChaosValue == nil:
			return nil, missing(fmt.Sprintf("lines[%d].chaosValue", i))
		case l.DetailsID == nil:
			return nil, missing(fmt.Sprintf("lines[%d].detailsId", i))
		}
	}

	return &out, nil
}

func missing(path string) *SchemaError {
	return &SchemaError{Path: path, Reason: "missing required field"}
}

// unmarshal maps encoding/json failures onto SchemaError.
func unmarshal(data []byte, v any) error {
	err := json.Unmarshal(data, v)
	if err == nil {
		return nil
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return &SchemaError{
			Path:   typeErr.Field,
			Reason: fmt.Sprintf("cannot decode JSON %s into %s", typeErr.Value, typeErr.Type),
			Err:    err,
		}
	}

	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		return &SchemaError{
			Reason: fmt.Sprintf("invalid JSON at offset %d", syntaxErr.Offset),
			Err:    err,
		}
	}

	return &SchemaError{Reason: err.Error(), Err: err}
}
