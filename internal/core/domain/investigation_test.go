// internal/core/domain/investigation_test.go
package domain

import (
	"testing"

	"laelaps/internal/testutil"
)

func TestInvestigationState_StepLifecycle(t *testing.T) {
	state := NewInvestigationState(Subject{Name: "Amanda Driskell"})

	step := state.StartStep("Generate people search links")
	testutil.AssertLen(t, state.Steps, 1, "one step appended")
	testutil.AssertEqual(t, step.Index, 1, "step index")
	testutil.AssertEqual(t, step.Status, StepRunning, "step starts running")

	state.CompleteStep(step, "Generated 12 search links")
	testutil.AssertEqual(t, step.Status, StepComplete, "step completed")
	testutil.AssertEqual(t, step.Result, "Generated 12 search links", "step result")

	failing := state.StartStep("Check email registration")
	state.FailStep(failing, "holehe not installed")
	testutil.AssertEqual(t, failing.Status, StepError, "step failed")
	testutil.AssertEqual(t, failing.Index, 2, "second step index")
	testutil.AssertFalse(t, state.StepsComplete(), "not all steps complete")
}

func TestInvestigationState_GrowsOnly(t *testing.T) {
	state := NewInvestigationState(Subject{Name: "Amanda Driskell"})

	state.AddEmail("a@example.com")
	state.AddUsername("amandadriskell")
	state.AddProfile(NewFinding("GitHub", "https://github.com/amandadriskell", "sherlock"))

	before := len(state.Profiles)

	// Pasos posteriores solo añaden; nada desaparece
	state.AddProfile(NewFinding("Twitter", "https://twitter.com/amandadriskell", "sherlock"))
	state.AddEmail("b@example.com")

	testutil.AssertEqual(t, len(state.Profiles), before+1, "profiles only grow")
	testutil.AssertLen(t, state.Emails, 2, "emails only grow")
	testutil.AssertLen(t, state.Usernames, 1, "usernames unchanged")
}

func TestInvestigationState_EmailSetSemantics(t *testing.T) {
	state := NewInvestigationState(Subject{})

	state.AddEmail("a@example.com")
	state.AddEmail("a@example.com")
	state.AddEmail("")

	testutil.AssertLen(t, state.Emails, 1, "duplicate and empty emails dropped")
}

func TestInvestigationState_UsernameOrder(t *testing.T) {
	state := NewInvestigationState(Subject{})

	for _, u := range []string{"amandadriskell", "amanda_driskell", "adriskell"} {
		state.AddUsername(u)
	}
	state.AddUsername("amandadriskell") // duplicado

	testutil.AssertLen(t, state.Usernames, 3, "duplicates dropped")
	testutil.AssertEqual(t, state.Usernames[0], "amandadriskell", "generation order kept")
	testutil.AssertEqual(t, state.Usernames[2], "adriskell", "generation order kept")
}

func TestInvestigationState_InvalidProfileIgnored(t *testing.T) {
	state := NewInvestigationState(Subject{})

	state.AddProfile(nil)
	state.AddProfile(&Finding{Status: FindingFound}) // sin plataforma ni URL

	testutil.AssertLen(t, state.Profiles, 0, "invalid profiles not added")
}
