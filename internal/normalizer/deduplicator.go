package normalizer

import "empclean/internal/models"

// Deduplicator keeps the first occurrence of every dedup key of a run.
type Deduplicator struct {
	seen    map[models.DedupKey]struct{}
	columns []string
	records []models.Employee
}

// NewDeduplicator creates an empty seen set. Kept records use columns as
// their field order.
func NewDeduplicator(columns []string) *Deduplicator {
	return &Deduplicator{
		seen:    make(map[models.DedupKey]struct{}),
		columns: columns,
		records: make([]models.Employee, 0),
	}
}

// Add keeps the record for key unless the key was seen before.
// It reports whether the record was kept.
func (d *Deduplicator) Add(key models.DedupKey) bool {
	if _, ok := d.seen[key]; ok {
		return false
	}

	d.seen[key] = struct{}{}
	d.records = append(d.records, models.NewEmployee(key, d.columns))

	return true
}

// Records returns the kept records in first-occurrence order.
func (d *Deduplicator) Records() []models.Employee {
	return d.records
}

// Len returns the number of kept records.
func (d *Deduplicator) Len() int {
	return len(d.records)
}
