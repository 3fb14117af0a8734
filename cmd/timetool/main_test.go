package main

import (
	"bytes"
	"strings"
	"testing"

	"timeclash/internal/service"
)

type fixedSource struct {
	values []int
	calls  int
}

func (s *fixedSource) IntN(n int) int {
	v := s.values[s.calls%len(s.values)]
	s.calls++
	return v % n
}

func TestRunConvert(t *testing.T) {
	var out bytes.Buffer
	if err := runConvert(&out, "hours", "1.5"); err != nil {
		t.Fatalf("runConvert() error = %v", err)
	}
	got := out.String()
	for _, want := range []string{"hours    1.5", "minutes  90", "seconds  5400"} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}

	if err := runConvert(&out, "weeks", "1"); err == nil {
		t.Error("expected error for unknown unit")
	}
}

func TestRunQuiz(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		rounds       int
		wantScore    int
		wantAnswered int
		wantOutput   []string
	}{
		{
			name:         "all answered",
			input:        "120\n100\n120\n",
			rounds:       3,
			wantScore:    2,
			wantAnswered: 3,
			wantOutput:   []string{"[1/3] How many minutes are in 2 hours?", "Accuracy: 67%"},
		},
		{
			name:         "blank line skips",
			input:        "\n120\n",
			rounds:       2,
			wantScore:    1,
			wantAnswered: 1,
			wantOutput:   []string{"Skipped. The answer was 120.", "Correct: 1 | Answered: 1"},
		},
		{
			name:         "quit early",
			input:        "120\nq\n",
			rounds:       5,
			wantScore:    1,
			wantAnswered: 1,
		},
		{
			name:         "input ends",
			input:        "",
			rounds:       3,
			wantScore:    0,
			wantAnswered: 0,
			wantOutput:   []string{"Correct: 0 | Answered: 0\n"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// every question is 2 hours → minutes
			quiz := service.NewQuizService(&fixedSource{values: []int{0, 1}})
			var out bytes.Buffer

			session, err := runQuiz(quiz, strings.NewReader(tt.input), &out, tt.rounds)
			if err != nil {
				t.Fatalf("runQuiz() error = %v", err)
			}
			if session.Score != tt.wantScore || session.QuestionsAnswered != tt.wantAnswered {
				t.Errorf("score = %d/%d, want %d/%d", session.Score, session.QuestionsAnswered, tt.wantScore, tt.wantAnswered)
			}
			for _, want := range tt.wantOutput {
				if !strings.Contains(out.String(), want) {
					t.Errorf("output missing %q:\n%s", want, out.String())
				}
			}
		})
	}
}

func TestPrintKnowledge(t *testing.T) {
	var out bytes.Buffer
	printKnowledge(&out, service.KnowledgePanel())
	if !strings.Contains(out.String(), "Watching a film: 2 hours = 120 minutes = 7200 seconds") {
		t.Errorf("unexpected table:\n%s", out.String())
	}
}
