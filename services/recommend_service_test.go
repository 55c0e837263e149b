package services

import (
	"testing"

	"backend/entity"
)

func tagStores() []entity.Store {
	return []entity.Store{
		{NameJP: "A", AvgRating: 4.0, Tags: []string{"work", "reading"}},
		{NameJP: "B", AvgRating: 4.8, Tags: []string{"date", "photo"}},
		{NameJP: "C", AvgRating: 4.5, Tags: []string{"work", "date", "relax"}},
		{NameJP: "D", AvgRating: 4.9, Tags: nil},
	}
}

func TestGetRecommendationsEmptyNeeds(t *testing.T) {
	stores := tagStores()
	got := GetRecommendations(stores, nil)
	if len(got) != len(stores) {
		t.Fatalf("empty needs must return input unchanged, got %d stores", len(got))
	}
	for i := range got {
		if got[i].NameJP != stores[i].NameJP {
			t.Fatalf("order changed at %d", i)
		}
	}
}

func TestGetRecommendationsRanking(t *testing.T) {
	got := GetRecommendations(tagStores(), []string{"work", "date"})

	// C ตรง 2 tag มาก่อน, A กับ B ตรงคนละ 1 — B rating สูงกว่าจึงมาก่อน A
	want := []string{"C", "B", "A"}
	if len(got) != len(want) {
		t.Fatalf("got %d stores, want %d", len(got), len(want))
	}
	for i, name := range want {
		if got[i].NameJP != name {
			t.Errorf("position %d: got %q want %q", i, got[i].NameJP, name)
		}
	}
}

func TestGetRecommendationsFiltersNonMatching(t *testing.T) {
	got := GetRecommendations(tagStores(), []string{"nature"})
	if len(got) != 0 {
		t.Errorf("stores without matching tags must be dropped, got %d", len(got))
	}
}

func TestGetMatchingPercentage(t *testing.T) {
	tests := []struct {
		name  string
		tags  []string
		needs []string
		want  int
	}{
		{"full match", []string{"work", "date"}, []string{"work", "date"}, 100},
		{"half match", []string{"work"}, []string{"work", "date"}, 50},
		{"one third", []string{"work"}, []string{"work", "date", "photo"}, 33},
		{"disjoint", []string{"relax"}, []string{"work"}, 0},
		{"empty tags", nil, []string{"work"}, 0},
		{"empty needs", []string{"work"}, nil, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := entity.Store{Tags: tt.tags}
			if got := GetMatchingPercentage(&store, tt.needs); got != tt.want {
				t.Errorf("got %d, want %d", got, tt.want)
			}
		})
	}
}

func TestExtractTagsFromText(t *testing.T) {
	tags := ExtractTagsFromText("Tôi muốn tìm quán để học bài")
	found := false
	for _, tag := range tags {
		if tag == "work" {
			found = true
		}
	}
	if !found {
		t.Errorf(`"học bài" must map to work, got %v`, tags)
	}
}

func TestExtractTagsFromTextBlank(t *testing.T) {
	for _, text := range []string{"", "   ", "\t\n"} {
		if got := ExtractTagsFromText(text); len(got) != 0 {
			t.Errorf("ExtractTagsFromText(%q) = %v, want empty", text, got)
		}
	}
}

func TestExtractTagsFromTextDedup(t *testing.T) {
	// "học" กับ "wifi" ชี้ work ทั้งคู่ — ต้องได้ work ครั้งเดียว
	tags := ExtractTagsFromText("quán có wifi để học")
	count := 0
	for _, tag := range tags {
		if tag == "work" {
			count++
		}
	}
	if count != 1 {
		t.Errorf("work appears %d times, want 1 (tags=%v)", count, tags)
	}
}

func TestExtractTagsFromTextMultiple(t *testing.T) {
	tags := ExtractTagsFromText("Quán yên tĩnh có sân vườn để thư giãn")
	want := map[string]bool{"reading": true, "work": true, "nature": true, "relax": true}
	for _, tag := range tags {
		if !want[tag] {
			t.Errorf("unexpected tag %q", tag)
		}
		delete(want, tag)
	}
	if len(want) != 0 {
		t.Errorf("missing tags: %v (got %v)", want, tags)
	}
}
