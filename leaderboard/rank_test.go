package leaderboard

import (
	"testing"

	"embervale/models"
)

func TestAssignRanksOrdersByTotalDesc(t *testing.T) {
	ranked := AssignRanks(seedSurvivors)

	if ranked[0].Name != "Max Rockatansky" || ranked[0].Rank != "A1" {
		t.Fatalf("highest total should be A1, got %s (%s)", ranked[0].Name, ranked[0].Rank)
	}
	if ranked[1].Name != "Sarah Connor" || ranked[1].Rank != "A2" {
		t.Fatalf("expected Sarah Connor at A2, got %s (%s)", ranked[1].Name, ranked[1].Rank)
	}
	for i := 1; i < len(ranked); i++ {
		if ranked[i-1].Contributions.Total < ranked[i].Contributions.Total {
			t.Fatalf("totals not descending at %d: %d < %d", i,
				ranked[i-1].Contributions.Total, ranked[i].Contributions.Total)
		}
	}
}

func TestAssignRanksKeepsTieOrder(t *testing.T) {
	tied := []models.Survivor{
		{ID: "a", Name: "First", Contributions: models.Contributions{Total: 10}},
		{ID: "b", Name: "Second", Contributions: models.Contributions{Total: 10}},
	}

	ranked := AssignRanks(tied)
	if ranked[0].ID != "a" || ranked[1].ID != "b" {
		t.Fatalf("tie order not preserved: %s, %s", ranked[0].ID, ranked[1].ID)
	}
	if ranked[0].Rank != "A1" || ranked[1].Rank != "A2" {
		t.Fatalf("ranks wrong on tie: %s, %s", ranked[0].Rank, ranked[1].Rank)
	}
}

func TestAssignRanksDoesNotMutateInput(t *testing.T) {
	in := []models.Survivor{
		{ID: "a", Contributions: models.Contributions{Total: 1}},
		{ID: "b", Contributions: models.Contributions{Total: 2}},
	}
	AssignRanks(in)
	if in[0].ID != "a" || in[0].Rank != "" {
		t.Fatalf("input slice was mutated: %+v", in[0])
	}
}

func TestInitialsOf(t *testing.T) {
	cases := map[string]string{
		"Sarah Connor":     "SC",
		"Aloy":             "AL",
		"Max Rockatansky":  "MR",
		"Ellen Louise Ripley": "ER",
		"":                 "??",
	}
	for name, want := range cases {
		if got := InitialsOf(name); got != want {
			t.Errorf("InitialsOf(%q) = %q, want %q", name, got, want)
		}
	}
}
