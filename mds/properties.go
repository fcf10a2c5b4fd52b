package mds

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Property keys of the flat configuration set.
const (
	PropertyDimension  = "nmds.isotonic_mds.d"
	PropertyTolerance  = "nmds.isotonic_mds.tolerance"
	PropertyIterations = "nmds.isotonic_mds.iterations"
)

// Properties is a flat key/value configuration set.
type Properties map[string]string

// Properties returns the persisted subset of o: dimension, tolerance and
// iteration cap. Minimizers and logger are runtime-only.
func (o Options) Properties() Properties {
	return Properties{
		PropertyDimension:  strconv.Itoa(o.Dimension),
		PropertyTolerance:  strconv.FormatFloat(o.Tolerance, 'g', -1, 64),
		PropertyIterations: strconv.Itoa(o.MaxIterations),
	}
}

// OptionsFromProperties builds Options from p on top of DefaultOptions.
// Missing keys keep their defaults; unknown keys are ignored.
//
// Errors: ErrConfiguration for unparsable values or a result failing Validate.
func OptionsFromProperties(p Properties) (Options, error) {
	o := DefaultOptions()

	if v, ok := p[PropertyDimension]; ok {
		d, err := strconv.Atoi(v)
		if err != nil {
			return Options{}, fmt.Errorf("%w: %s=%q: %w", ErrConfiguration, PropertyDimension, v, err)
		}
		o.Dimension = d
	}
	if v, ok := p[PropertyTolerance]; ok {
		tol, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return Options{}, fmt.Errorf("%w: %s=%q: %w", ErrConfiguration, PropertyTolerance, v, err)
		}
		o.Tolerance = tol
	}
	if v, ok := p[PropertyIterations]; ok {
		it, err := strconv.Atoi(v)
		if err != nil {
			return Options{}, fmt.Errorf("%w: %s=%q: %w", ErrConfiguration, PropertyIterations, v, err)
		}
		o.MaxIterations = it
	}

	if err := o.Validate(); err != nil {
		return Options{}, err
	}

	return o, nil
}

// WriteProperties encodes p as a flat YAML mapping.
func WriteProperties(w io.Writer, p Properties) error {
	enc := yaml.NewEncoder(w)
	if err := enc.Encode(map[string]string(p)); err != nil {
		return fmt.Errorf("mds: write properties: %w", err)
	}

	return enc.Close()
}

// ReadProperties decodes a flat YAML mapping. An empty document yields an
// empty set.
//
// Errors: ErrConfiguration when the document is not a flat string mapping.
func ReadProperties(r io.Reader) (Properties, error) {
	m := map[string]string{}
	if err := yaml.NewDecoder(r).Decode(&m); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: read properties: %w", ErrConfiguration, err)
	}

	return Properties(m), nil
}
