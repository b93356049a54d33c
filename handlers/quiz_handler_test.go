package handlers

import "testing"

func TestValidateQuestions(t *testing.T) {
	cases := []struct {
		name      string
		questions []QuestionRequest
		wantErr   bool
	}{
		{
			name: "two choices one correct",
			questions: []QuestionRequest{{
				QuestionText: "q",
				Choices: []ChoiceRequest{
					{ChoiceText: "a", IsCorrect: true},
					{ChoiceText: "b"},
				},
			}},
		},
		{
			name: "multiple correct choices allowed",
			questions: []QuestionRequest{{
				QuestionText: "q",
				Choices: []ChoiceRequest{
					{ChoiceText: "a", IsCorrect: true},
					{ChoiceText: "b", IsCorrect: true},
					{ChoiceText: "c"},
				},
			}},
		},
		{
			name: "single choice rejected",
			questions: []QuestionRequest{{
				QuestionText: "q",
				Choices:      []ChoiceRequest{{ChoiceText: "a", IsCorrect: true}},
			}},
			wantErr: true,
		},
		{
			name: "no correct choice rejected",
			questions: []QuestionRequest{{
				QuestionText: "q",
				Choices: []ChoiceRequest{
					{ChoiceText: "a"},
					{ChoiceText: "b"},
				},
			}},
			wantErr: true,
		},
		{
			name: "one bad question fails the batch",
			questions: []QuestionRequest{
				{
					QuestionText: "ok",
					Choices: []ChoiceRequest{
						{ChoiceText: "a", IsCorrect: true},
						{ChoiceText: "b"},
					},
				},
				{
					QuestionText: "bad",
					Choices: []ChoiceRequest{
						{ChoiceText: "a"},
						{ChoiceText: "b"},
					},
				},
			},
			wantErr: true,
		},
		{
			name:      "empty batch is fine",
			questions: nil,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := validateQuestions(tc.questions)
			if tc.wantErr && err == nil {
				t.Errorf("expected validation error")
			}
			if !tc.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}
