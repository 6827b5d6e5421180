package ai

import (
	"errors"
	"testing"
)

func TestNewToolsetValidation(t *testing.T) {
	tests := []struct {
		name    string
		tools   []*Tool
		wantErr error
	}{
		{
			name:    "empty name",
			tools:   []*Tool{{Name: "", Execute: func([]string) error { return nil }}},
			wantErr: ErrToolNameEmpty,
		},
		{
			name:    "nil execute",
			tools:   []*Tool{{Name: "x"}},
			wantErr: ErrToolExecuteNil,
		},
		{
			name: "duplicate name",
			tools: []*Tool{
				{Name: "x", Execute: func([]string) error { return nil }},
				{Name: "x", Execute: func([]string) error { return nil }},
			},
			wantErr: ErrToolAlreadyListed,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewToolset(nil, tt.tools...)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("got err %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestDispatchRunsInOrder(t *testing.T) {
	var trace []string
	set, err := NewToolset(nil,
		&Tool{Name: "first", Execute: func(args []string) error {
			trace = append(trace, "first:"+args[0])
			return nil
		}},
		&Tool{Name: "second", Execute: func(args []string) error {
			trace = append(trace, "second")
			return nil
		}},
	)
	if err != nil {
		t.Fatal(err)
	}

	results := set.Dispatch([]ToolCall{
		{FunctionName: "first", Args: []string{"a"}},
		{FunctionName: "second"},
		{FunctionName: "first", Args: []string{"b"}},
	})

	want := []string{"first:a", "second", "first:b"}
	if len(trace) != len(want) {
		t.Fatalf("trace = %v, want %v", trace, want)
	}
	for i := range want {
		if trace[i] != want[i] {
			t.Errorf("trace[%d] = %q, want %q", i, trace[i], want[i])
		}
	}
	for _, r := range results {
		if r.Unknown || r.Err != nil {
			t.Errorf("unexpected result for %s: unknown=%v err=%v", r.Call.FunctionName, r.Unknown, r.Err)
		}
	}
}

func TestDispatchNeverInvokesUnlistedFunctions(t *testing.T) {
	executed := false
	set, err := NewToolset(nil, &Tool{
		Name:    "navigateTo",
		Execute: func([]string) error { executed = true; return nil },
	})
	if err != nil {
		t.Fatal(err)
	}

	// Names that collide with globals or builtins stay inert too.
	for _, name := range []string{"eval", "exec", "NavigateTo", "os.Remove", "init", "panic"} {
		results := set.Dispatch([]ToolCall{{FunctionName: name}})
		if len(results) != 1 || !results[0].Unknown {
			t.Errorf("call %q was not reported unknown", name)
		}
	}
	if executed {
		t.Error("an unlisted name executed the whitelisted tool")
	}
}

func TestDispatchIsolatesFaultsPerCall(t *testing.T) {
	var ran []string
	set, err := NewToolset(nil,
		&Tool{Name: "fails", Execute: func([]string) error {
			ran = append(ran, "fails")
			return errors.New("boom")
		}},
		&Tool{Name: "panics", Execute: func([]string) error {
			ran = append(ran, "panics")
			panic("kaboom")
		}},
		&Tool{Name: "works", Execute: func([]string) error {
			ran = append(ran, "works")
			return nil
		}},
	)
	if err != nil {
		t.Fatal(err)
	}

	results := set.Dispatch([]ToolCall{
		{FunctionName: "fails"},
		{FunctionName: "panics"},
		{FunctionName: "ghost"},
		{FunctionName: "works"},
	})

	if len(ran) != 3 || ran[2] != "works" {
		t.Errorf("batch did not continue past faults: ran=%v", ran)
	}
	if results[0].Err == nil {
		t.Error("failing tool reported no error")
	}
	if results[1].Err == nil {
		t.Error("panicking tool reported no error")
	}
	if !results[2].Unknown {
		t.Error("unknown tool not flagged")
	}
	if results[3].Err != nil || results[3].Unknown {
		t.Errorf("healthy tool after faults reported %+v", results[3])
	}
}
