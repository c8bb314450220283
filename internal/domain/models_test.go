package domain

import (
	"errors"
	"testing"
)

func validQuestion() Question {
	return Question{Prompt: "Which river?", Options: []string{"a", "b", "c", "d"}, CorrectIndex: 2}
}

func TestQuestionBankValidate(t *testing.T) {
	good := QuestionBank{"history": {ID: "history", Name: "History", Questions: []Question{validQuestion()}}}
	if err := good.Validate(); err != nil {
		t.Fatalf("expected valid bank, got %v", err)
	}

	threeOptions := validQuestion()
	threeOptions.Options = threeOptions.Options[:3]
	badIndex := validQuestion()
	badIndex.CorrectIndex = 4
	blank := validQuestion()
	blank.Prompt = "  "

	cases := map[string]QuestionBank{
		"mismatched key": {"history": {ID: "culture", Questions: []Question{validQuestion()}}},
		"empty category": {"history": {ID: "history"}},
		"three options":  {"history": {ID: "history", Questions: []Question{threeOptions}}},
		"correct index":  {"history": {ID: "history", Questions: []Question{badIndex}}},
		"blank prompt":   {"history": {ID: "history", Questions: []Question{blank}}},
	}
	for name, bank := range cases {
		if err := bank.Validate(); !errors.Is(err, ErrInvalidQuestionBank) {
			t.Fatalf("%s: expected ErrInvalidQuestionBank, got %v", name, err)
		}
	}
}

func TestSummariesSortedByID(t *testing.T) {
	bank := QuestionBank{
		"mixed":   {ID: "mixed", Name: "Mixed", Questions: []Question{validQuestion()}},
		"culture": {ID: "culture", Name: "Culture", Questions: []Question{validQuestion(), validQuestion()}},
	}
	got := bank.Summaries()
	if len(got) != 2 || got[0].ID != "culture" || got[0].QuestionCount != 2 || got[1].ID != "mixed" {
		t.Fatalf("unexpected summaries %+v", got)
	}
}

func TestParseLifeline(t *testing.T) {
	for _, l := range AllLifelines {
		got, err := ParseLifeline(string(l))
		if err != nil || got != l {
			t.Fatalf("ParseLifeline(%s) = %s, %v", l, got, err)
		}
	}
	if _, err := ParseLifeline("phoneAFriend"); !errors.Is(err, ErrUnknownLifeline) {
		t.Fatalf("expected ErrUnknownLifeline, got %v", err)
	}
}
