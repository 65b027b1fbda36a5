package service_test

import (
	"strings"
	"testing"

	"github.com/prodpilot/prodpilot/internal/service"
)

func TestBuildPrompt(t *testing.T) {
	prompt := service.BuildPrompt("SmartKettle X", "Boils water in 90 seconds", "How long to boil?")

	for _, want := range []string{
		"SmartKettle X",
		"Boils water in 90 seconds",
		"only the product information",
		"not sure",
		"support",
	} {
		if !strings.Contains(prompt, want) {
			t.Fatalf("prompt missing %q:\n%s", want, prompt)
		}
	}

	if !strings.HasSuffix(prompt, "How long to boil?") {
		t.Fatalf("prompt must end with the literal question:\n%s", prompt)
	}
}

func TestBuildPromptIsDeterministic(t *testing.T) {
	a := service.BuildPrompt("A", "B", "C?")
	b := service.BuildPrompt("A", "B", "C?")
	if a != b {
		t.Fatal("prompt must be a pure function of its inputs")
	}
}
