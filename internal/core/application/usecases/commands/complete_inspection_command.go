package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/returns"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrCompleteInspectionCommandIsNotConstructed = errors.New(
		"CompleteInspectionCommand must be created via NewCompleteInspectionCommand constructor",
	)
	ErrAssessmentsAreRequired = errors.New("at least one item assessment is required")
)

// CompleteInspectionCommand records the per-item inspection outcome for a
// received return. Every item of the order must be assessed; the aggregate
// rejects partial inspections.
type CompleteInspectionCommand struct { //nolint:recvcheck //using for validation
	returnID         kernel.UUID
	assessments      map[kernel.UUID]returns.Assessment
	notes            string
	hasExternalGoods bool

	guard guard.ConstructorGuard
}

// NewCompleteInspectionCommand creates a command to complete inspection.
// Assessments are keyed by return-item identifier.
func NewCompleteInspectionCommand(
	returnID kernel.UUID,
	assessments map[kernel.UUID]returns.Assessment,
	notes string,
	hasExternalGoods bool,
) (CompleteInspectionCommand, error) {
	cmd := CompleteInspectionCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setReturnID(returnID),
		cmd.setAssessments(assessments),
	); err != nil {
		return CompleteInspectionCommand{}, err
	}

	cmd.notes = notes
	cmd.hasExternalGoods = hasExternalGoods
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CompleteInspectionCommand) Validate() error {
	return c.guard.Validate(ErrCompleteInspectionCommandIsNotConstructed)
}

// ReturnID returns the target return-order identifier.
func (c CompleteInspectionCommand) ReturnID() kernel.UUID { return c.returnID }

// Assessments returns the per-item assessments keyed by item identifier.
func (c CompleteInspectionCommand) Assessments() map[kernel.UUID]returns.Assessment {
	out := make(map[kernel.UUID]returns.Assessment, len(c.assessments))
	for id, a := range c.assessments {
		out[id] = a
	}
	return out
}

// Notes returns the inspection remarks.
func (c CompleteInspectionCommand) Notes() string { return c.notes }

// HasExternalGoods reports whether goods from outside the rental were found
// in the return.
func (c CompleteInspectionCommand) HasExternalGoods() bool { return c.hasExternalGoods }

func (c *CompleteInspectionCommand) setReturnID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.returnID = id
	return nil
}

func (c *CompleteInspectionCommand) setAssessments(assessments map[kernel.UUID]returns.Assessment) error {
	if len(assessments) == 0 {
		return ErrAssessmentsAreRequired
	}
	c.assessments = make(map[kernel.UUID]returns.Assessment, len(assessments))
	for id, a := range assessments {
		c.assessments[id] = a
	}
	return nil
}
