package storefront

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"oss-kar/internal/model"
)

// Step is a stage of the order wizard.
type Step int

const (
	StepEmail Step = iota
	StepDetails
	StepConfirm
	StepDone
)

func (s Step) String() string {
	switch s {
	case StepEmail:
		return "email"
	case StepDetails:
		return "details"
	case StepConfirm:
		return "confirm"
	case StepDone:
		return "done"
	}
	return fmt.Sprintf("step(%d)", int(s))
}

var (
	// ErrWrongStep is returned when an action does not belong to the current step.
	ErrWrongStep = errors.New("action not allowed at this step")

	// ErrMissingEmail is returned for a blank email.
	ErrMissingEmail = errors.New("email is required")

	// ErrMissingName is returned when first or last name is blank.
	ErrMissingName = errors.New("first and last name are required")
)

// OrderPlacer submits orders. *Client implements it.
type OrderPlacer interface {
	PlaceOrder(ctx context.Context, req *model.OrderRequest) (*model.OrderResponse, error)
}

// Wizard walks a shopper linearly through email, name and confirmation.
// Earlier steps can be shown again without losing entered data.
type Wizard struct {
	placer  OrderPlacer
	session *Session

	step    Step
	reached Step

	email     string
	firstName string
	lastName  string

	result *model.OrderResponse
}

// NewWizard starts a wizard for the selection held by session.
func NewWizard(placer OrderPlacer, session *Session) *Wizard {
	return &Wizard{
		placer:  placer,
		session: session,
		step:    StepEmail,
		reached: StepEmail,
	}
}

// Step returns the step currently shown.
func (w *Wizard) Step() Step {
	return w.step
}

// Email returns the entered email.
func (w *Wizard) Email() string {
	return w.email
}

// Name returns the entered first and last name.
func (w *Wizard) Name() (string, string) {
	return w.firstName, w.lastName
}

// Result returns the placed order once the wizard is done.
func (w *Wizard) Result() *model.OrderResponse {
	return w.result
}

// SubmitEmail stores the email and advances to StepDetails.
func (w *Wizard) SubmitEmail(email string) error {
	if w.step != StepEmail {
		return ErrWrongStep
	}
	email = strings.TrimSpace(email)
	if email == "" {
		return ErrMissingEmail
	}
	w.email = email
	w.advance(StepDetails)
	return nil
}

// SubmitDetails stores the names and advances to StepConfirm.
func (w *Wizard) SubmitDetails(firstName, lastName string) error {
	if w.step != StepDetails {
		return ErrWrongStep
	}
	firstName, lastName = strings.TrimSpace(firstName), strings.TrimSpace(lastName)
	if firstName == "" || lastName == "" {
		return ErrMissingName
	}
	w.firstName, w.lastName = firstName, lastName
	w.advance(StepConfirm)
	return nil
}

// Confirm submits the order. On failure the wizard stays on StepConfirm with
// all data intact so the shopper can retry.
func (w *Wizard) Confirm(ctx context.Context) (*model.OrderResponse, error) {
	if w.step != StepConfirm {
		return nil, ErrWrongStep
	}

	resp, err := w.placer.PlaceOrder(ctx, &model.OrderRequest{
		Email:      w.email,
		FirstName:  w.firstName,
		LastName:   w.lastName,
		ConfigData: w.session.Selection(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to place order: %w", err)
	}

	w.result = resp
	w.advance(StepDone)
	return resp, nil
}

// Show re-displays a step that was already reached. A finished wizard cannot
// go back.
func (w *Wizard) Show(step Step) error {
	if w.step == StepDone || step > w.reached || step == StepDone || step < StepEmail {
		return ErrWrongStep
	}
	w.step = step
	return nil
}

func (w *Wizard) advance(to Step) {
	w.step = to
	if to > w.reached {
		w.reached = to
	}
}
