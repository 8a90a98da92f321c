package git

import (
	"errors"
	"strings"
	"testing"
)

// MockRunner is a mock implementation of the Runner interface for testing
type MockRunner struct {
	ReturnOutput string
	ReturnError  error
	CommandRun   string
	ArgsRun      []string
}

// Run implements the Runner interface
func (m *MockRunner) Run(name string, args ...string) (string, error) {
	m.CommandRun = name
	m.ArgsRun = args
	return m.ReturnOutput, m.ReturnError
}

// ScriptedRunner replays one result per call and records every invocation
type ScriptedRunner struct {
	RunFunc func(call int, name string, args ...string) (string, error)
	Calls   [][]string
}

func (r *ScriptedRunner) Run(name string, args ...string) (string, error) {
	call := len(r.Calls)
	r.Calls = append(r.Calls, append([]string{name}, args...))
	return r.RunFunc(call, name, args...)
}

func TestDiffAgainstBase(t *testing.T) {
	runner := &ScriptedRunner{
		RunFunc: func(call int, name string, args ...string) (string, error) {
			switch call {
			case 0:
				// Base ref is already resolvable
				if args[0] != "rev-parse" || args[len(args)-1] != "origin/main" {
					t.Errorf("Expected first call to verify origin/main, got %v", args)
				}
				return "abc123", nil
			case 1:
				if args[0] != "diff" {
					t.Errorf("Expected second call to be a diff, got %v", args)
				}
				if args[len(args)-1] != "origin/main...head456" {
					t.Errorf("Expected three-dot range 'origin/main...head456', got %s", args[len(args)-1])
				}
				return "mock diff output", nil
			}
			t.Fatalf("Unexpected call %d: %v", call, args)
			return "", nil
		},
	}

	client := NewClient(runner)
	diff, err := client.DiffAgainstBase("main", "head456")

	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if diff != "mock diff output" {
		t.Errorf("Expected 'mock diff output', got %s", diff)
	}

	if len(runner.Calls) != 2 {
		t.Errorf("Expected 2 git invocations, got %d", len(runner.Calls))
	}
}

func TestDiffAgainstBaseFetchesMissingBase(t *testing.T) {
	runner := &ScriptedRunner{
		RunFunc: func(call int, name string, args ...string) (string, error) {
			switch call {
			case 0:
				// Base ref is not resolvable locally
				return "", errors.New("unknown revision")
			case 1:
				if args[0] != "fetch" || args[1] != "origin" || args[2] != "develop" {
					t.Errorf("Expected fetch of origin develop, got %v", args)
				}
				return "", nil
			case 2:
				if args[len(args)-1] != "origin/develop...head456" {
					t.Errorf("Expected three-dot range 'origin/develop...head456', got %s", args[len(args)-1])
				}
				return "fetched diff", nil
			}
			t.Fatalf("Unexpected call %d: %v", call, args)
			return "", nil
		},
	}

	client := NewClient(runner)
	diff, err := client.DiffAgainstBase("develop", "head456")

	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if diff != "fetched diff" {
		t.Errorf("Expected 'fetched diff', got %s", diff)
	}

	if len(runner.Calls) != 3 {
		t.Errorf("Expected 3 git invocations, got %d", len(runner.Calls))
	}
}

func TestDiffAgainstBaseFetchFailure(t *testing.T) {
	runner := &ScriptedRunner{
		RunFunc: func(call int, name string, args ...string) (string, error) {
			switch call {
			case 0:
				return "", errors.New("unknown revision")
			case 1:
				return "", errors.New("could not read from remote repository")
			}
			t.Fatalf("Unexpected call %d: %v", call, args)
			return "", nil
		},
	}

	client := NewClient(runner)
	_, err := client.DiffAgainstBase("main", "head456")

	if err == nil {
		t.Fatal("Expected an error when the base branch cannot be fetched")
	}

	if !strings.Contains(err.Error(), "fetching base branch") {
		t.Errorf("Expected fetch failure in error, got %v", err)
	}
}

func TestDiffAgainstBaseEmptyDiffIsValid(t *testing.T) {
	runner := &ScriptedRunner{
		RunFunc: func(call int, name string, args ...string) (string, error) {
			return "", nil
		},
	}

	client := NewClient(runner)
	diff, err := client.DiffAgainstBase("main", "head456")

	if err != nil {
		t.Fatalf("Expected no error for empty diff, got %v", err)
	}

	if diff != "" {
		t.Errorf("Expected empty diff, got %q", diff)
	}
}

func TestDiffAgainstBaseRequiresArguments(t *testing.T) {
	client := NewClient(&MockRunner{})

	if _, err := client.DiffAgainstBase("", "head456"); err == nil {
		t.Error("Expected error for empty base branch")
	}

	if _, err := client.DiffAgainstBase("main", ""); err == nil {
		t.Error("Expected error for empty revision")
	}
}
