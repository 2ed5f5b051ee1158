package intent

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifier_Classify(t *testing.T) {
	c := NewClassifier(DefaultConfig())

	tests := []struct {
		message string
		want    Intent
	}{
		// Explicit command prefix.
		{"/execute implement auth", ExplicitCommand},
		{"  /execute deploy", ExplicitCommand},

		// Lookup questions stay conversational, with tools.
		{"What files use authentication?", SimpleTask},
		{"where is the session handler defined", SimpleTask},
		{"show me the lock manager", SimpleTask},
		{"list the failing pods", SimpleTask},
		{"find usages of NewClient", SimpleTask},

		// Plain questions go to QA without tools.
		{"What can you do?", QA},
		{"how does the wait queue work", QA},
		{"", QA},

		// Single action verb routes to one specialist.
		{"Fix the auth bug in login.py", MediumComplexity},
		{"implement rate limiting", MediumComplexity},
		{"deploy the api service", MediumComplexity},

		// Multi-step requests route to full orchestration.
		{"Refactor authentication, update tests, and deploy", HighComplexity},
		{"fix the bug then deploy to staging", HighComplexity},
		{"run migrations after the backup completes and verify the data and notify the team", HighComplexity},

		// Verb deeper in the message is not an execution request.
		{"why does deploy fail", QA},
	}

	for _, tt := range tests {
		t.Run(tt.message, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.message))
		})
	}
}

func TestClassifier_Determinism(t *testing.T) {
	c := NewClassifier(DefaultConfig())
	for i := 0; i < 100; i++ {
		assert.Equal(t, HighComplexity, c.Classify("Refactor auth, update tests, and deploy"))
	}
}

func TestClassifier_Disabled(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Enabled = false
	c := NewClassifier(cfg)

	// Everything except explicit commands goes to full orchestration.
	assert.Equal(t, HighComplexity, c.Classify("What can you do?"))
	assert.Equal(t, HighComplexity, c.Classify("show me the lock manager"))
	assert.Equal(t, ExplicitCommand, c.Classify("/execute implement auth"))
}

func TestClassifier_TieBreaksTowardLowerComplexity(t *testing.T) {
	c := NewClassifier(DefaultConfig())

	// Search pattern plus a trailing action verb resolves to the simpler
	// conversational route.
	assert.Equal(t, SimpleTask, c.Classify("show me what to fix"))

	// A single multi-step marker without an action verb is not enough for
	// orchestration.
	assert.Equal(t, QA, c.Classify("what happens after a timeout"))
}
