package ai

import (
	"context"
	"testing"
)

func testInterpreter(t *testing.T, gw Gateway, tools ...*Tool) *Interpreter {
	t.Helper()
	set, err := NewToolset(nil, tools...)
	if err != nil {
		t.Fatal(err)
	}
	return NewInterpreter(NewSessionManager(gw, nil), set, nil)
}

func TestHandleQuerySplitsProseAndCalls(t *testing.T) {
	gw := &fakeGateway{avail: AvailabilityAvailable}
	interp := testInterpreter(t, gw)
	interp.manager.EnsureSession(context.Background())
	gw.session.reply = "Taking you there! [CALL:navigateTo(skills)]"

	turn, ok := interp.HandleQuery(context.Background(), "show me the skills")
	if !ok {
		t.Fatal("HandleQuery failed")
	}
	if turn.DisplayText != "Taking you there!" {
		t.Errorf("display = %q", turn.DisplayText)
	}
	if !turn.HasCalls() || turn.Calls[0].FunctionName != "navigateTo" {
		t.Errorf("calls = %v", turn.Calls)
	}
	if turn.ID == "" {
		t.Error("turn has no ID")
	}
}

func TestHandleQueryGatewayUnavailable(t *testing.T) {
	// End to end: gateway down, the turn fails soft with no calls and
	// no confirmation ever requested.
	interp := testInterpreter(t, &fakeGateway{avail: AvailabilityUnavailable})

	turn, ok := interp.HandleQuery(context.Background(), "what is this site")
	if ok || turn != nil {
		t.Fatalf("HandleQuery = (%v, %v), want (nil, false)", turn, ok)
	}
	if interp.Confirmer().Waiting() {
		t.Error("confirmation requested for a failed turn")
	}
}

func TestConfirmedTurnDispatchesInOrder(t *testing.T) {
	var trace []string
	gw := &fakeGateway{avail: AvailabilityAvailable}
	interp := testInterpreter(t, gw,
		&Tool{Name: "navigateTo", Execute: func(args []string) error {
			trace = append(trace, "navigateTo:"+args[0])
			return nil
		}},
		&Tool{Name: "showHelp", Execute: func([]string) error {
			trace = append(trace, "showHelp")
			return nil
		}},
	)
	interp.manager.EnsureSession(context.Background())
	gw.session.reply = "Hi [CALL:navigateTo(skills)] bye [CALL:showHelp()]"

	turn, ok := interp.HandleQuery(context.Background(), "help me around")
	if !ok {
		t.Fatal("HandleQuery failed")
	}

	result, err := interp.RequestConfirmation(turn)
	if err != nil {
		t.Fatal(err)
	}
	if !interp.Confirmer().Submit("y") {
		t.Fatal("accept did not resolve")
	}
	if accepted := <-result; !accepted {
		t.Fatal("accept delivered false")
	}

	interp.Dispatch(turn.Calls)
	if len(trace) != 2 || trace[0] != "navigateTo:skills" || trace[1] != "showHelp" {
		t.Errorf("trace = %v", trace)
	}
}

func TestCancelledTurnExecutesNothing(t *testing.T) {
	executed := false
	gw := &fakeGateway{avail: AvailabilityAvailable}
	interp := testInterpreter(t, gw, &Tool{
		Name:    "setTheme",
		Execute: func([]string) error { executed = true; return nil },
	})
	interp.manager.EnsureSession(context.Background())
	gw.session.reply = "[CALL:setTheme(amber)]"

	turn, _ := interp.HandleQuery(context.Background(), "go amber")
	result, err := interp.RequestConfirmation(turn)
	if err != nil {
		t.Fatal(err)
	}

	interp.Confirmer().Cancel()
	if accepted := <-result; accepted {
		t.Fatal("cancel delivered true")
	}
	if executed {
		t.Error("cancelled batch executed")
	}
}

func TestUsableConsultsOnlyTheCache(t *testing.T) {
	gw := &fakeGateway{avail: AvailabilityAvailable}
	interp := testInterpreter(t, gw)

	if interp.Usable() {
		t.Fatal("Usable() = true before any probe")
	}
	if gw.availCalls != 0 {
		t.Fatalf("Usable() probed the gateway %d times", gw.availCalls)
	}

	if !interp.Available(context.Background()) {
		t.Fatal("Available() = false")
	}
	if !interp.Usable() {
		t.Error("Usable() = false after a successful probe")
	}
}
