package contact

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const sample = `John Smith
Senior Electrical Engineer
Riyadh, Saudi Arabia
john.smith@example.com | +966 50 123 4567
https://www.linkedin.com/in/john-smith-pe
`

func TestEnrichFillsBlanks(t *testing.T) {
	c := Enrich(sample, Contact{})
	assert.Equal(t, "John Smith", c.FullName)
	assert.Equal(t, "john.smith@example.com", c.Email)
	assert.Equal(t, "+966 50 123 4567", c.Phone)
	assert.Equal(t, "https://www.linkedin.com/in/john-smith-pe", c.LinkedIn)
}

func TestEnrichNeverOverwrites(t *testing.T) {
	c := Enrich(sample, Contact{
		FullName: "Jane Doe",
		Email:    "a@b.com",
		Phone:    "+1 000",
		LinkedIn: "linkedin.com/in/jane",
	})
	assert.Equal(t, "Jane Doe", c.FullName)
	assert.Equal(t, "a@b.com", c.Email)
	assert.Equal(t, "+1 000", c.Phone)
	assert.Equal(t, "linkedin.com/in/jane", c.LinkedIn)
}

func TestEnrichBareLinkedIn(t *testing.T) {
	c := Enrich("find me at linkedin.com/in/someone else", Contact{})
	assert.Equal(t, "linkedin.com/in/someone", c.LinkedIn)
}

func TestEnrichNothingToInfer(t *testing.T) {
	c := Enrich("", Contact{})
	assert.Equal(t, Contact{}, c)
}

func TestInferName(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"plain name first", "John Smith\nSenior Engineer\njohn@x.com", "John Smith"},
		{"resume heading blocks inference", "RESUME\nJohn Smith", ""},
		{"cv heading blocks inference", "Curriculum Vitae\nJohn Smith", ""},
		{"email line is not a name", "john@x.com\nJohn Smith", ""},
		{"digits disqualify", "John Smith +966501234567", ""},
		{"too long disqualifies", "John Smith, an engineer with a very long self description on the first line", ""},
		{"arabic name", "المعتز أبوطالب\nمهندس كهرباء", "المعتز أبوطالب"},
		{"leading blank lines skipped", "\n\n  John Smith  \nEngineer", "John Smith"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, inferName(tt.text))
		})
	}
}
