package matching

import (
	"reflect"
	"testing"
)

func TestNewRuleSetDefaultsWeights(t *testing.T) {
	rules := NewRuleSet(Params{})
	want := Weights{
		Europe:  DefaultEuropeWeight,
		USA:     DefaultUSAWeight,
		World:   DefaultWorldWeight,
		English: DefaultEnglishWeight,
	}
	if rules.Weights() != want {
		t.Errorf("Weights() = %+v, want %+v", rules.Weights(), want)
	}
}

func TestNewRuleSetKeepsExplicitWeights(t *testing.T) {
	rules := NewRuleSet(Params{Weights: Weights{Europe: 5, USA: 4, World: 3, English: 2}})
	want := Weights{Europe: 5, USA: 4, World: 3, English: 2}
	if rules.Weights() != want {
		t.Errorf("Weights() = %+v, want %+v", rules.Weights(), want)
	}
}

func TestNewRuleSetCleansTokens(t *testing.T) {
	rules := NewRuleSet(Params{
		RejectTagGroups:   [][]string{{" Beta ", "beta", ""}, {}},
		AcceptableRegions: []string{"Europe", "", "EUROPE", "usa"},
	})
	if got, want := rules.rejectTagGroups, [][]string{{"beta"}}; !reflect.DeepEqual(got, want) {
		t.Errorf("rejectTagGroups = %v, want %v", got, want)
	}
	if got, want := rules.acceptableRegions, []string{"europe", "usa"}; !reflect.DeepEqual(got, want) {
		t.Errorf("acceptableRegions = %v, want %v", got, want)
	}
}

func TestNewRuleSetCopiesInputs(t *testing.T) {
	regions := []string{"europe"}
	rules := NewRuleSet(Params{AcceptableRegions: regions})
	regions[0] = "mutated"
	if rules.acceptableRegions[0] != "europe" {
		t.Error("rule set aliases caller slice")
	}
}

func TestAbsentTagGroupsDisableRejection(t *testing.T) {
	rules := NewRuleSet(Params{AcceptableRegions: DefaultAcceptableRegions()})
	matched, score := Score("Game (Beta).bin", []string{"game"}, rules)
	if !matched || score == ScoreRejected {
		t.Errorf("matched=%v score=%d; no tag groups should mean no tag rejection", matched, score)
	}
}
