package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/ardnew/corefmt/lang"
)

// Tokens prints the token stream of a Core program in the chosen format.
type Tokens struct {
	JSON TokensJSON `cmd:"" default:"withargs" help:"Print tokens as JSON (default)."`
	YAML TokensYAML `cmd:""                    help:"Print tokens as YAML."`
}

// tokenRecord is the serialized form of one scanned token.
type tokenRecord struct {
	Kind   string `json:"kind"           yaml:"kind"`
	Text   string `json:"text,omitempty" yaml:"text,omitempty"`
	Line   int    `json:"line"           yaml:"line"`
	Column int    `json:"column"         yaml:"column"`
}

// scanRecords scans src up to EOF. Lexical errors appear as ERROR records.
func scanRecords(src []byte) []tokenRecord {
	records := make([]tokenRecord, 0)

	for tok := range lang.All(lang.NewScanner(src)) {
		records = append(records, tokenRecord{
			Kind:   tok.Kind.String(),
			Text:   tok.Attr,
			Line:   tok.Pos.Line,
			Column: tok.Pos.Column,
		})
	}

	return records
}

// TokensJSON prints the token stream as a JSON array.
type TokensJSON struct {
	Indent int `default:"2" help:"Indent width for JSON output (0 for compact)" name:"json-indent" short:"i"`

	Source string `arg:"" default:"-" help:"Source input file or '-' for default stdin." name:"source"`
}

// Run executes the tokens json command.
func (j *TokensJSON) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) {
		cancel(*err)
	}(&err)

	src, err := readSource(ctx, j.Source)
	if err != nil {
		return err
	}

	records := scanRecords(src)

	var data []byte

	if j.Indent > 0 {
		data, err = json.MarshalIndent(records, "", strings.Repeat(" ", j.Indent))
	} else {
		data, err = json.Marshal(records)
	}

	if err != nil {
		return ErrJSONMarshal.Wrap(err)
	}

	if _, err := fmt.Fprintln(StreamsFrom(ctx).Out, string(data)); err != nil {
		return ErrWriteOutput.Wrap(err)
	}

	return nil
}

// TokensYAML prints the token stream as a YAML sequence.
type TokensYAML struct {
	Indent int `default:"2" help:"Indent width for YAML output (0 for flow style)" name:"yaml-indent" short:"i"`

	Source string `arg:"" default:"-" help:"Source input file or '-' for default stdin." name:"source"`
}

// Run executes the tokens yaml command.
func (y *TokensYAML) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) {
		cancel(*err)
	}(&err)

	src, err := readSource(ctx, y.Source)
	if err != nil {
		return err
	}

	var opts []yaml.EncodeOption
	if y.Indent > 0 {
		opts = append(opts, yaml.Indent(y.Indent))
	} else {
		opts = append(opts, yaml.Flow(true))
	}

	data, err := yaml.MarshalContext(ctx, scanRecords(src), opts...)
	if err != nil {
		return ErrYAMLMarshal.Wrap(err)
	}

	if _, err := fmt.Fprint(StreamsFrom(ctx).Out, string(data)); err != nil {
		return ErrWriteOutput.Wrap(err)
	}

	return nil
}
