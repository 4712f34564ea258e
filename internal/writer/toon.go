package writer

import (
	"fmt"
	"io"

	toon "github.com/toon-format/toon-go"

	"empclean/internal/models"
)

// encodeTOON writes records as a TOON document under an "employees" key.
func encodeTOON(out io.Writer, records []models.Employee) error {
	objects := make([]toon.Object, len(records))

	for i, rec := range records {
		fields := make([]toon.Field, len(rec.Fields))
		for j, f := range rec.Fields {
			fields[j] = toon.Field{Key: f.Name, Value: f.Value}
		}

		objects[i] = toon.NewObject(fields...)
	}

	doc := toon.NewObject(
		toon.Field{Key: "employees", Value: objects},
	)

	result, err := toon.MarshalString(doc)
	if err != nil {
		return fmt.Errorf("toon marshal error: %w", err)
	}

	if _, err := fmt.Fprintln(out, result); err != nil {
		return fmt.Errorf("writing toon: %w", err)
	}

	return nil
}
