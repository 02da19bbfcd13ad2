package food

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"sort"
)

// Record is the persisted form of a food: the catalog fields plus the
// stomach and availability counts captured at save time.
type Record struct {
	Food
	Stomach   int `json:"Stomach"`
	Available int `json:"Available"`
}

// LoadRecords reads a food state file (a JSON array of records).
func LoadRecords(path string) ([]Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading food state: %w", err)
	}
	var records []Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parsing food state: %w", err)
	}
	return records, nil
}

// SaveRecords writes records as pretty-printed JSON, deduplicating by
// canonical name (last occurrence wins) so repeated saves stay stable.
func SaveRecords(records []Record, path string) error {
	byKey := make(map[Key]Record, len(records))
	order := make([]Key, 0, len(records))
	for _, rec := range records {
		key := rec.Key()
		if _, seen := byKey[key]; !seen {
			order = append(order, key)
		}
		byKey[key] = rec
	}

	unique := make([]Record, 0, len(byKey))
	for _, key := range order {
		unique = append(unique, byKey[key])
	}

	data, err := json.MarshalIndent(unique, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling food state: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing food state: %w", err)
	}
	return nil
}

// StateFromRecords builds a working State from persisted records, seeding
// stomach and availability with the positive counts. Invalid records are
// dropped with a warning; unknown tastiness is reported but kept (it scores
// as neutral).
func StateFromRecords(records []Record) *State {
	foods := make([]*Food, 0, len(records))
	for i := range records {
		f := records[i].Food
		if !(&f).Valid() {
			slog.Warn("dropping invalid food record", "food", f.Name, "detail", f.DebugString())
			continue
		}
		foods = append(foods, &f)
	}

	s := NewState(foods)
	for _, rec := range records {
		f := s.Foods[rec.Key()]
		if f == nil {
			continue
		}
		s.Stomach.Add(f, rec.Stomach)
		s.Available.Add(f, rec.Available)
	}

	reportUnrated(s)
	return s
}

// reportUnrated logs foods that are available but still carry the unknown
// tastiness sentinel; they contribute a neutral tastiness bonus.
func reportUnrated(s *State) {
	var names []string
	for _, f := range s.Available.Foods() {
		if f.Tastiness == TastinessUnknown {
			names = append(names, f.Name)
		}
	}
	if len(names) > 0 {
		sort.Strings(names)
		slog.Warn("available foods with unknown tastiness (scored neutral)",
			"count", len(names), "foods", names)
	}
}

// MergeCatalog folds imported catalog foods into existing records. A food
// already on record gets its catalog fields refreshed but keeps its counts;
// new foods start with zero counts.
func MergeCatalog(records []Record, catalog []*Food) []Record {
	index := make(map[Key]int, len(records))
	for i, rec := range records {
		index[rec.Key()] = i
	}

	for _, f := range catalog {
		if i, ok := index[f.Key()]; ok {
			records[i].Food = *f
			continue
		}
		index[f.Key()] = len(records)
		records = append(records, Record{Food: *f})
	}
	return records
}

// LoadState reads a food state file and builds the working State.
func LoadState(path string) (*State, error) {
	records, err := LoadRecords(path)
	if err != nil {
		return nil, err
	}
	return StateFromRecords(records), nil
}

// Records captures the current state as persistable records, one per catalog
// food, sorted by canonical name.
func (s *State) Records() []Record {
	keys := make([]Key, 0, len(s.Foods))
	for key := range s.Foods {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	records := make([]Record, 0, len(keys))
	for _, key := range keys {
		f := s.Foods[key]
		records = append(records, Record{
			Food:      *f,
			Stomach:   s.Stomach.Count(f),
			Available: s.Available.Count(f),
		})
	}
	return records
}

// SaveState writes the current state to a food state file.
func SaveState(s *State, path string) error {
	return SaveRecords(s.Records(), path)
}
