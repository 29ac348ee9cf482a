package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrIssuePackingListCommandIsNotConstructed = errors.New(
		"IssuePackingListCommand must be created via NewIssuePackingListCommand constructor",
	)
	ErrActorIsRequired = errors.New("acting staff member is required")
)

// IssuePackingListCommand issues (or re-issues) the packing list document for
// a fulfillment set, starting the warehouse workflow.
type IssuePackingListCommand struct { //nolint:recvcheck //using for validation
	setID kernel.UUID
	actor string

	guard guard.ConstructorGuard
}

// NewIssuePackingListCommand creates a command to issue a packing list.
func NewIssuePackingListCommand(setID kernel.UUID, actor string) (IssuePackingListCommand, error) {
	cmd := IssuePackingListCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setSetID(setID),
		cmd.setActor(actor),
	); err != nil {
		return IssuePackingListCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c IssuePackingListCommand) Validate() error {
	return c.guard.Validate(ErrIssuePackingListCommandIsNotConstructed)
}

// SetID returns the target set identifier.
func (c IssuePackingListCommand) SetID() kernel.UUID { return c.setID }

// Actor returns the staff member issuing the document.
func (c IssuePackingListCommand) Actor() string { return c.actor }

func (c *IssuePackingListCommand) setSetID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.setID = id
	return nil
}

func (c *IssuePackingListCommand) setActor(actor string) error {
	if actor == "" {
		return ErrActorIsRequired
	}
	c.actor = actor
	return nil
}
