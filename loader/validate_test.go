package loader

import (
	"strings"
	"testing"
)

// validRaw returns minimal valid raw settings for testing.
func validRaw() *rawSettings {
	hp := 20
	return &rawSettings{
		Title:    "Test",
		MaxHP:    &hp,
		Monsters: map[string]string{"2": "Rat"},
	}
}

func TestValidate_ValidSettings(t *testing.T) {
	if err := validate(validRaw()); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
}

func TestValidate_MissingFieldsAreFine(t *testing.T) {
	if err := validate(&rawSettings{}); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
}

func TestValidate_NonPositiveMaxHP(t *testing.T) {
	for _, hp := range []int{0, -5} {
		raw := validRaw()
		raw.MaxHP = &hp

		err := validate(raw)
		if err == nil {
			t.Fatalf("expected error for max_hp %d", hp)
		}
		ve, ok := err.(*ValidationError)
		if !ok {
			t.Fatalf("expected *ValidationError, got %T", err)
		}
		assertContains(t, ve.Errors, "max_hp must be positive")
	}
}

func TestValidate_BadMonsterKey(t *testing.T) {
	raw := validRaw()
	raw.Monsters["Joker"] = "Clown"

	err := validate(raw)
	if err == nil {
		t.Fatal("expected error for bad monster key")
	}
	ve := err.(*ValidationError)
	assertContains(t, ve.Errors, `"Joker"`)
}

func TestValidate_EmptyMonsterName(t *testing.T) {
	raw := validRaw()
	raw.Monsters["Q"] = "  "

	err := validate(raw)
	if err == nil {
		t.Fatal("expected error for empty monster name")
	}
	assertContains(t, err.(*ValidationError).Errors, "empty name")
}

func TestValidate_SameRankTwice(t *testing.T) {
	raw := validRaw()
	raw.Monsters["11"] = "Knave"
	raw.Monsters["J"] = "Jester"

	err := validate(raw)
	if err == nil {
		t.Fatal("expected error for duplicate rank")
	}
	assertContains(t, err.(*ValidationError).Errors, "both name rank J")
}

func TestValidate_CollectsAllErrors(t *testing.T) {
	hp := 0
	raw := &rawSettings{
		MaxHP:    &hp,
		Monsters: map[string]string{"1": "a", "99": "b"},
		badTypes: []string{"seed must be a number, got boolean"},
	}

	err := validate(raw)
	if err == nil {
		t.Fatal("expected errors")
	}
	ve := err.(*ValidationError)
	if len(ve.Errors) != 4 {
		t.Errorf("expected 4 errors, got %d: %v", len(ve.Errors), ve.Errors)
	}
	if !strings.Contains(ve.Error(), "4 error(s)") {
		t.Errorf("Error() = %q", ve.Error())
	}
}

func TestValidate_WarningsDontFail(t *testing.T) {
	raw := validRaw()
	raw.Seed = -3
	raw.unknown = []string{"lives"}
	raw.duplicates = []string{"Monsters"}

	if err := validate(raw); err != nil {
		t.Fatalf("warnings should not fail validation, got: %v", err)
	}
}

// assertContains checks that at least one string in the slice contains substr.
func assertContains(t *testing.T, strs []string, substr string) {
	t.Helper()
	for _, s := range strs {
		if strings.Contains(s, substr) {
			return
		}
	}
	t.Errorf("expected one of %v to contain %q", strs, substr)
}
