package handlers

import (
	"testing"

	"github.com/benthecarman/ldk-server-cli/service"
)

func TestUnitInit(t *testing.T) {
	commands := Init(&service.Service{})

	if len(commands) != 3 {
		t.Errorf("Expected 3 commands, got %d", len(commands))
	}

	expected := map[string]bool{
		"list-payments":           false,
		"payment-details":         false,
		"list-forwarded-payments": false,
	}

	for _, command := range commands {
		if _, ok := expected[command.Name]; !ok {
			t.Errorf("Unexpected command registered: %s", command.Name)
			continue
		}
		expected[command.Name] = true
		if command.Action == nil {
			t.Errorf("Command %s has no action", command.Name)
		}
	}

	for name, seen := range expected {
		if !seen {
			t.Errorf("Command %s was not registered", name)
		}
	}
}
