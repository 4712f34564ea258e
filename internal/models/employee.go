// Package models defines the employee records flowing through the cleaner.
package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// Column names of the employee input file.
const (
	FieldID         = "emp_id"
	FieldName       = "name"
	FieldDepartment = "department"
	FieldSalary     = "salary"
)

// RequiredFields lists the input columns in validation order.
var RequiredFields = []string{FieldID, FieldName, FieldDepartment, FieldSalary}

// RawRecord is one input row keyed by header name.
type RawRecord struct {
	Values  map[string]string
	Headers []string
	Line    int
}

// Get returns the raw value of a column, or "" if the row has no such cell.
func (r RawRecord) Get(field string) string {
	return r.Values[field]
}

// String renders the row in header order for diagnostics.
func (r RawRecord) String() string {
	var sb strings.Builder

	sb.WriteString("{")

	for i, h := range r.Headers {
		if i > 0 {
			sb.WriteString(", ")
		}

		fmt.Fprintf(&sb, "%s: %q", h, r.Values[h])
	}

	sb.WriteString("}")

	return sb.String()
}

// DedupKey is the ordered tuple (id, name, department, salary) of normalized values.
type DedupKey [4]string

// NewDedupKey builds a key in the fixed field order.
func NewDedupKey(id, name, department, salary string) DedupKey {
	return DedupKey{id, name, department, salary}
}

// Value returns the key component for one of the required fields.
func (k DedupKey) Value(field string) (string, bool) {
	for i, f := range RequiredFields {
		if f == field {
			return k[i], true
		}
	}

	return "", false
}

// Field is a single named value of a normalized record.
type Field struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Employee is a normalized record. Fields keep the input column order.
type Employee struct {
	Fields []Field
}

// NewEmployee re-associates a dedup key with the column names in the given order.
// Columns that are not required fields are skipped.
func NewEmployee(key DedupKey, columns []string) Employee {
	fields := make([]Field, 0, len(RequiredFields))

	for _, col := range columns {
		if v, ok := key.Value(col); ok {
			fields = append(fields, Field{Name: col, Value: v})
		}
	}

	return Employee{Fields: fields}
}

// MarshalJSON writes the record as an object with keys in column order.
func (e Employee) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteByte('{')

	for i, f := range e.Fields {
		if i > 0 {
			buf.WriteByte(',')
		}

		k, err := json.Marshal(f.Name)
		if err != nil {
			return nil, err
		}

		v, err := json.Marshal(f.Value)
		if err != nil {
			return nil, err
		}

		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}

	buf.WriteByte('}')

	return buf.Bytes(), nil
}
