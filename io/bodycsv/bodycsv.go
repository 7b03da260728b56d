// Package bodycsv encodes and decodes body records in the tabular CSV
// format the core treats as an external collaborator: header
// id,name,class,mass,pos_x,pos_y,pos_z,vel_x,vel_y,vel_z, one body per
// row, quoted fields with "" escaping for embedded quotes.
//
// Grounded in solarsim's include/solarsim/body_definition_csv.hpp and
// src/body_definition_csv.cpp (the origin's boost::spirit grammar and
// fmt-based writer); this package uses the standard library's
// encoding/csv instead, which already implements RFC 4180 quoting
// (including "" escaping) without a hand-rolled grammar.
package bodycsv

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/google/uuid"

	"github.com/nbodysim/barnes-hut/core/vector"
	"github.com/nbodysim/barnes-hut/physics/body"
	"github.com/nbodysim/barnes-hut/simerr"
)

// Header is the fixed column order both Decode and Encode use.
var Header = []string{"id", "name", "class", "mass", "pos_x", "pos_y", "pos_z", "vel_x", "vel_y", "vel_z"}

// Decode reads body records from r. It returns simerr.ErrMalformedInput
// if the header is missing or a row doesn't parse, and
// simerr.ErrEmptyDataset if the file contains a header but no body rows.
func Decode(r io.Reader) ([]body.Record, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // validated manually for a clearer error

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("bodycsv: reading header: %v: %w", err, simerr.ErrMalformedInput)
	}
	if len(header) != len(Header) {
		return nil, fmt.Errorf("bodycsv: expected %d columns, header has %d: %w", len(Header), len(header), simerr.ErrMalformedInput)
	}
	for i, name := range Header {
		if header[i] != name {
			return nil, fmt.Errorf("bodycsv: header column %d is %q, want %q: %w", i, header[i], name, simerr.ErrMalformedInput)
		}
	}

	var records []body.Record
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("bodycsv: reading row: %v: %w", err, simerr.ErrMalformedInput)
		}
		rec, err := parseRow(row)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	if len(records) == 0 {
		return nil, simerr.ErrEmptyDataset
	}
	return records, nil
}

func parseRow(row []string) (body.Record, error) {
	if len(row) != len(Header) {
		return body.Record{}, fmt.Errorf("bodycsv: row has %d columns, want %d: %w", len(row), len(Header), simerr.ErrMalformedInput)
	}

	id, err := uuid.Parse(row[0])
	if err != nil {
		return body.Record{}, fmt.Errorf("bodycsv: invalid id %q: %v: %w", row[0], err, simerr.ErrMalformedInput)
	}

	floats := make([]float64, 7)
	for i, col := range row[3:] {
		v, err := strconv.ParseFloat(col, 64)
		if err != nil {
			return body.Record{}, fmt.Errorf("bodycsv: invalid numeric field %q: %v: %w", col, err, simerr.ErrMalformedInput)
		}
		floats[i] = v
	}

	return body.Record{
		ID:       id,
		Name:     row[1],
		Class:    row[2],
		Mass:     floats[0],
		Position: vector.NewVector3(floats[1], floats[2], floats[3]),
		Velocity: vector.NewVector3(floats[4], floats[5], floats[6]),
	}, nil
}

// Encode writes records to w in the fixed column order, using
// full-precision decimal floats ('g' format, -1 precision) sufficient to
// round-trip double precision.
func Encode(w io.Writer, records []body.Record) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("bodycsv: writing header: %w", err)
	}

	for _, r := range records {
		row := []string{
			r.ID.String(),
			r.Name,
			r.Class,
			formatFloat(r.Mass),
			formatFloat(r.Position.X()),
			formatFloat(r.Position.Y()),
			formatFloat(r.Position.Z()),
			formatFloat(r.Velocity.X()),
			formatFloat(r.Velocity.Y()),
			formatFloat(r.Velocity.Z()),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("bodycsv: writing row for %s: %w", r.ID, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
