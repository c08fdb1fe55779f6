package matching

import (
	"reflect"
	"testing"
)

func TestVariantsOrdering(t *testing.T) {
	got := Variants("Castlevania: Rondo of Blood")
	want := []string{"castlevania rondo of blood", "castlevania"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Variants() = %v, want %v", got, want)
	}
}

func TestVariantsArticle(t *testing.T) {
	got := Variants("The Lion King")
	want := []string{"the lion king", "lion king"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Variants() = %v, want %v", got, want)
	}
}

func TestVariantsArticleAndSubtitle(t *testing.T) {
	got := Variants("The Legend of Zelda: Ocarina of Time")
	want := []string{
		"the legend of zelda ocarina of time",
		"the legend of zelda",
		"legend of zelda ocarina of time",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Variants() = %v, want %v", got, want)
	}
}

func TestVariantsNoSeparator(t *testing.T) {
	got := Variants("Super Mario World")
	want := []string{"super mario world"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Variants() = %v, want %v", got, want)
	}
}

func TestVariantsDeduplicates(t *testing.T) {
	// The dash splits off "Mega Man X", which normalizes to the same value
	// as the full title once the trailing tag is stripped.
	got := Variants("Mega Man X - ")
	want := []string{"mega man x"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Variants() = %v, want %v", got, want)
	}
}

func TestVariantsEmpty(t *testing.T) {
	if got := Variants(""); len(got) != 0 {
		t.Errorf("Variants(\"\") = %v, want empty", got)
	}
}
