package food

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	bannock := &Food{Name: "Bannock", Calories: 650, Carbs: 6, Protein: 5, Fat: 7, Vitamins: 4, Tastiness: 2}
	berry := &Food{Name: "Wild Berry", Calories: 50, Vitamins: 3, Tastiness: TastinessUnknown}

	st := NewState([]*Food{bannock, berry})
	st.Available.Add(bannock, 4)
	st.Available.Add(berry, 10)
	st.Consume(bannock)

	path := filepath.Join(t.TempDir(), "food_state.json")
	if err := SaveState(st, path); err != nil {
		t.Fatalf("SaveState: %v", err)
	}

	loaded, err := LoadState(path)
	if err != nil {
		t.Fatalf("LoadState: %v", err)
	}

	if len(loaded.Foods) != 2 {
		t.Fatalf("loaded %d foods, want 2", len(loaded.Foods))
	}
	got := loaded.Lookup("bannock")
	if got == nil || *got != *bannock {
		t.Errorf("loaded bannock = %+v, want %+v", got, bannock)
	}
	if n := loaded.Stomach.Count(bannock); n != 1 {
		t.Errorf("stomach count = %d, want 1", n)
	}
	if n := loaded.Available.Count(bannock); n != 3 {
		t.Errorf("available count = %d, want 3", n)
	}
	if n := loaded.Available.Count(berry); n != 10 {
		t.Errorf("berry available = %d, want 10", n)
	}
}

func TestSaveRecordsDeduplicates(t *testing.T) {
	records := []Record{
		{Food: Food{Name: "Bannock", Calories: 600, Tastiness: 0}, Available: 1},
		{Food: Food{Name: "BANNOCK", Calories: 650, Tastiness: 2}, Available: 4},
	}

	path := filepath.Join(t.TempDir(), "food_state.json")
	if err := SaveRecords(records, path); err != nil {
		t.Fatalf("SaveRecords: %v", err)
	}

	loaded, err := LoadRecords(path)
	if err != nil {
		t.Fatalf("LoadRecords: %v", err)
	}
	if len(loaded) != 1 {
		t.Fatalf("loaded %d records, want 1 after dedupe", len(loaded))
	}
	if loaded[0].Calories != 650 || loaded[0].Available != 4 {
		t.Errorf("dedupe kept %+v, want the last occurrence", loaded[0])
	}
}

func TestStateFromRecordsDropsInvalid(t *testing.T) {
	records := []Record{
		{Food: Food{Name: "Bannock", Calories: 650, Carbs: 6, Protein: 5, Fat: 7, Vitamins: 4, Tastiness: 2}, Available: 2},
		{Food: Food{Name: "Broken", Calories: -10, Tastiness: 0}, Available: 5},
		{Food: Food{Name: "OffScale", Calories: 100, Tastiness: 11}, Available: 5},
	}

	st := StateFromRecords(records)
	if len(st.Foods) != 1 {
		t.Fatalf("catalog has %d entries, want 1 (invalid dropped)", len(st.Foods))
	}
	if st.Lookup("broken") != nil || st.Lookup("offscale") != nil {
		t.Error("invalid records made it into the catalog")
	}
}

func TestMergeCatalog(t *testing.T) {
	records := []Record{
		{Food: Food{Name: "Bannock", Calories: 600, Tastiness: 0}, Stomach: 1, Available: 3},
	}
	catalog := []*Food{
		{Name: "BANNOCK", Calories: 650, Carbs: 6, Protein: 5, Fat: 7, Vitamins: 4, Tastiness: 2},
		{Name: "Gruel", Calories: 300, Carbs: 3, Tastiness: 0},
	}

	merged := MergeCatalog(records, catalog)
	if len(merged) != 2 {
		t.Fatalf("merged %d records, want 2", len(merged))
	}
	// Refreshed fields, preserved counts.
	if merged[0].Calories != 650 || merged[0].Tastiness != 2 {
		t.Errorf("existing record not refreshed: %+v", merged[0])
	}
	if merged[0].Stomach != 1 || merged[0].Available != 3 {
		t.Errorf("existing counts lost: %+v", merged[0])
	}
	// New foods start uncounted.
	if merged[1].Name != "Gruel" || merged[1].Stomach != 0 || merged[1].Available != 0 {
		t.Errorf("new record = %+v", merged[1])
	}
}

func TestLoadRecordsRejectsBadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "food_state.json")
	if err := os.WriteFile(path, []byte("not json"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadRecords(path); err == nil {
		t.Error("LoadRecords accepted malformed JSON")
	}
	if _, err := LoadRecords(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("LoadRecords accepted a missing file")
	}
}

func TestLoadCatalogCSV(t *testing.T) {
	dir := t.TempDir()

	t.Run("valid catalog", func(t *testing.T) {
		path := filepath.Join(dir, "catalog.csv")
		csv := "name,calories,carbs,protein,fat,vitamins,tastiness\n" +
			"Bannock,650,6,5,7,4,2\n" +
			"Wild Berry,50,0,0,0,3,99\n"
		if err := os.WriteFile(path, []byte(csv), 0644); err != nil {
			t.Fatal(err)
		}

		foods, err := LoadCatalogCSV(path)
		if err != nil {
			t.Fatalf("LoadCatalogCSV: %v", err)
		}
		if len(foods) != 2 {
			t.Fatalf("loaded %d foods, want 2", len(foods))
		}
		if foods[0].Name != "Bannock" || foods[0].Calories != 650 || foods[0].Tastiness != 2 {
			t.Errorf("first row = %+v", foods[0])
		}
		if foods[1].Tastiness != TastinessUnknown {
			t.Errorf("unrated row tastiness = %d, want sentinel", foods[1].Tastiness)
		}
	})

	t.Run("invalid row rejected", func(t *testing.T) {
		path := filepath.Join(dir, "bad.csv")
		csv := "name,calories,carbs,protein,fat,vitamins,tastiness\n" +
			"Broken,-5,0,0,0,0,0\n"
		if err := os.WriteFile(path, []byte(csv), 0644); err != nil {
			t.Fatal(err)
		}
		if _, err := LoadCatalogCSV(path); err == nil {
			t.Error("LoadCatalogCSV accepted a negative-calorie row")
		}
	})
}
