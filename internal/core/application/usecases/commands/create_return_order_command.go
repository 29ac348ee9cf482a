package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/returns"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrCreateReturnOrderCommandIsNotConstructed = errors.New(
		"CreateReturnOrderCommand must be created via NewCreateReturnOrderCommand constructor",
	)
	ErrReturnItemsAreRequired = errors.New("at least one return item is required")
	ErrCustomerIsRequired     = errors.New("customer name and contact are required")
)

// CreateReturnOrderCommand submits a new return request in Requested status.
// The collection method and return type are declared up front and fix the
// branch the workflow will take.
type CreateReturnOrderCommand struct { //nolint:recvcheck //using for validation
	returnID       kernel.UUID
	customer       returns.Customer
	originOrderRef string
	returnType     returns.ReturnType
	method         returns.CollectionMethod
	items          []returns.ReturnItem

	guard guard.ConstructorGuard
}

// NewCreateReturnOrderCommand creates a command to submit a return request.
func NewCreateReturnOrderCommand(
	returnID kernel.UUID,
	customer returns.Customer,
	originOrderRef string,
	returnType returns.ReturnType,
	method returns.CollectionMethod,
	items []returns.ReturnItem,
) (CreateReturnOrderCommand, error) {
	cmd := CreateReturnOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setReturnID(returnID),
		cmd.setCustomer(customer),
		cmd.setReturnType(returnType),
		cmd.setMethod(method),
		cmd.setItems(items),
	); err != nil {
		return CreateReturnOrderCommand{}, err
	}

	cmd.originOrderRef = originOrderRef
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateReturnOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateReturnOrderCommandIsNotConstructed)
}

// ReturnID returns the identifier for the new return order.
func (c CreateReturnOrderCommand) ReturnID() kernel.UUID { return c.returnID }

// Customer returns the returning customer.
func (c CreateReturnOrderCommand) Customer() returns.Customer { return c.customer }

// OriginOrderRef returns the originating rental order reference.
func (c CreateReturnOrderCommand) OriginOrderRef() string { return c.originOrderRef }

// ReturnType returns the declared full/partial return type.
func (c CreateReturnOrderCommand) ReturnType() returns.ReturnType { return c.returnType }

// Method returns the declared collection method.
func (c CreateReturnOrderCommand) Method() returns.CollectionMethod { return c.method }

// Items returns the return lines.
func (c CreateReturnOrderCommand) Items() []returns.ReturnItem {
	return append([]returns.ReturnItem(nil), c.items...)
}

func (c *CreateReturnOrderCommand) setReturnID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.returnID = id
	return nil
}

func (c *CreateReturnOrderCommand) setCustomer(customer returns.Customer) error {
	if customer.Name == "" || customer.Contact == "" {
		return ErrCustomerIsRequired
	}
	c.customer = customer
	return nil
}

func (c *CreateReturnOrderCommand) setReturnType(returnType returns.ReturnType) error {
	if err := returnType.Validate(); err != nil {
		return err
	}
	c.returnType = returnType
	return nil
}

func (c *CreateReturnOrderCommand) setMethod(method returns.CollectionMethod) error {
	if err := method.Validate(); err != nil {
		return err
	}
	c.method = method
	return nil
}

func (c *CreateReturnOrderCommand) setItems(items []returns.ReturnItem) error {
	if len(items) == 0 {
		return ErrReturnItemsAreRequired
	}
	c.items = append([]returns.ReturnItem(nil), items...)
	return nil
}
