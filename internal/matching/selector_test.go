package matching

import "testing"

func TestSelectBestRegionRanking(t *testing.T) {
	files := []string{
		"Game (Europe).bin",
		"Game (Japan).bin",
		"Game (USA).bin",
	}
	result := SelectBest("Game", files, DefaultRuleSet())

	if result.Winner != "Game (Europe).bin" {
		t.Errorf("winner = %q, want Game (Europe).bin", result.Winner)
	}
	if len(result.Candidates) != 3 {
		t.Fatalf("candidates = %d, want 3", len(result.Candidates))
	}
	// Japan-only release is carried in the candidate list at the sentinel,
	// sorted last.
	last := result.Candidates[len(result.Candidates)-1]
	if last.File != "Game (Japan).bin" || !last.Rejected() {
		t.Errorf("last candidate = %+v, want rejected Game (Japan).bin", last)
	}
}

func TestSelectBestNoCandidates(t *testing.T) {
	files := []string{"Sonic (USA).md", "Tetris (World).gb"}
	result := SelectBest("Super Mario World", files, DefaultRuleSet())
	if result.HasWinner() || len(result.Candidates) != 0 {
		t.Errorf("result = %+v, want empty", result)
	}
	if result.AllRejected() {
		t.Error("AllRejected true with no candidates")
	}
}

func TestSelectBestAllRejected(t *testing.T) {
	files := []string{"Game (Japan).bin", "Game (Beta).bin"}
	result := SelectBest("Game", files, DefaultRuleSet())
	if result.HasWinner() {
		t.Errorf("winner = %q, want none", result.Winner)
	}
	if !result.AllRejected() {
		t.Error("AllRejected = false, want true")
	}
	if len(result.Candidates) != 2 {
		t.Errorf("candidates = %d, want 2", len(result.Candidates))
	}
}

func TestSelectBestTieBreakEncounterOrder(t *testing.T) {
	// Identical scores: the first file in the provided listing wins, so a
	// lexically sorted listing yields lexical tie-breaks.
	files := []string{"Game A (USA).bin", "Game B (USA).bin"}
	result := SelectBest("Game", files, DefaultRuleSet())
	if result.Winner != "Game A (USA).bin" {
		t.Errorf("winner = %q, want Game A (USA).bin", result.Winner)
	}

	reversed := []string{"Game B (USA).bin", "Game A (USA).bin"}
	result = SelectBest("Game", reversed, DefaultRuleSet())
	if result.Winner != "Game B (USA).bin" {
		t.Errorf("winner = %q, want Game B (USA).bin", result.Winner)
	}
}

func TestSelectBestCandidatesSortedDescending(t *testing.T) {
	files := []string{
		"Game (World).bin",
		"Game (Europe).bin",
		"Game (USA).bin",
	}
	result := SelectBest("Game", files, DefaultRuleSet())
	for i := 1; i < len(result.Candidates); i++ {
		if result.Candidates[i-1].Score < result.Candidates[i].Score {
			t.Fatalf("candidates not sorted descending: %+v", result.Candidates)
		}
	}
	if result.Candidates[0].File != "Game (Europe).bin" {
		t.Errorf("top candidate = %q, want Game (Europe).bin", result.Candidates[0].File)
	}
}

func TestSelectBestEmptyReference(t *testing.T) {
	result := SelectBest("", []string{"Game (USA).bin"}, DefaultRuleSet())
	if result.HasWinner() || len(result.Candidates) != 0 {
		t.Errorf("result = %+v, want empty", result)
	}
}
