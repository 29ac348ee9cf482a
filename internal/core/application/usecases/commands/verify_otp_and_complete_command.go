package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrVerifyOTPAndCompleteCommandIsNotConstructed = errors.New(
		"VerifyOTPAndCompleteCommand must be created via NewVerifyOTPAndCompleteCommand constructor",
	)
	ErrCodeIsRequired      = errors.New("one-time code is required")
	ErrSignatureIsRequired = errors.New("signature reference is required")
)

// VerifyOTPAndCompleteCommand verifies the customer's one-time code and, on
// success, completes the handover: the set reaches Completed and the goods
// go on rental.
type VerifyOTPAndCompleteCommand struct { //nolint:recvcheck //using for validation
	setID        kernel.UUID
	code         string
	signedBy     string
	signatureRef string

	guard guard.ConstructorGuard
}

// NewVerifyOTPAndCompleteCommand creates a command to verify a code and
// complete the handover.
func NewVerifyOTPAndCompleteCommand(
	setID kernel.UUID,
	code, signedBy, signatureRef string,
) (VerifyOTPAndCompleteCommand, error) {
	cmd := VerifyOTPAndCompleteCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setSetID(setID),
		cmd.setCode(code),
		cmd.setSignatureRef(signatureRef),
	); err != nil {
		return VerifyOTPAndCompleteCommand{}, err
	}

	cmd.signedBy = signedBy
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c VerifyOTPAndCompleteCommand) Validate() error {
	return c.guard.Validate(ErrVerifyOTPAndCompleteCommandIsNotConstructed)
}

// SetID returns the target set identifier.
func (c VerifyOTPAndCompleteCommand) SetID() kernel.UUID { return c.setID }

// Code returns the code the customer supplied.
func (c VerifyOTPAndCompleteCommand) Code() string { return c.code }

// SignedBy returns the name of the person acknowledging receipt.
func (c VerifyOTPAndCompleteCommand) SignedBy() string { return c.signedBy }

// SignatureRef returns the captured signature reference.
func (c VerifyOTPAndCompleteCommand) SignatureRef() string { return c.signatureRef }

func (c *VerifyOTPAndCompleteCommand) setSetID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.setID = id
	return nil
}

func (c *VerifyOTPAndCompleteCommand) setCode(code string) error {
	if code == "" {
		return ErrCodeIsRequired
	}
	c.code = code
	return nil
}

func (c *VerifyOTPAndCompleteCommand) setSignatureRef(ref string) error {
	if ref == "" {
		return ErrSignatureIsRequired
	}
	c.signatureRef = ref
	return nil
}
