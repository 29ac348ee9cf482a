package returns

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// ReturnType declares whether the customer returns the whole rental or part
// of it.
type ReturnType int

const (
	TypeUnknown ReturnType = iota
	FullReturn
	PartialReturn
)

func getReturnTypeStrings() map[ReturnType]string {
	return map[ReturnType]string{
		TypeUnknown:   "Unknown",
		FullReturn:    "Full",
		PartialReturn: "Partial",
	}
}

// Validate checks that the ReturnType is Full or Partial.
func (t ReturnType) Validate() error {
	if t != FullReturn && t != PartialReturn {
		return errs.NewValueIsInvalidErrorWithCause("return type is invalid",
			fmt.Errorf("%d is not a valid return type", t))
	}
	return nil
}

func (t ReturnType) String() string {
	if str, ok := getReturnTypeStrings()[t]; ok {
		return str
	}
	return "Unknown"
}

// CollectionMethod selects the branch the return order takes at approval
// time. It is declared on the request and never changes.
type CollectionMethod int

const (
	MethodUnknown CollectionMethod = iota

	// Courier means a company driver collects the goods: the long branch
	// with pickup scheduling, driver recording and transit.
	Courier

	// SelfReturn means the customer brings the goods back: the short branch
	// going straight to warehouse receipt.
	SelfReturn
)

func getCollectionMethodStrings() map[CollectionMethod]string {
	return map[CollectionMethod]string{
		MethodUnknown: "Unknown",
		Courier:       "Courier",
		SelfReturn:    "SelfReturn",
	}
}

// Validate checks that the CollectionMethod is Courier or SelfReturn.
func (m CollectionMethod) Validate() error {
	if m != Courier && m != SelfReturn {
		return errs.NewValueIsInvalidErrorWithCause("collection method is invalid",
			fmt.Errorf("%d is not a valid collection method", m))
	}
	return nil
}

func (m CollectionMethod) String() string {
	if str, ok := getCollectionMethodStrings()[m]; ok {
		return str
	}
	return "Unknown"
}

// Condition is the inspected state assigned to a returned item. Every item
// must receive a condition other than ConditionUnset before the inspection
// can complete.
type Condition int

const (
	ConditionUnset Condition = iota
	Good
	Damaged
	Repairable
	ToRetire
	ReadyToReuse
)

func getConditionStrings() map[Condition]string {
	return map[Condition]string{
		ConditionUnset: "Unset",
		Good:           "Good",
		Damaged:        "Damaged",
		Repairable:     "Repairable",
		ToRetire:       "To Retire",
		ReadyToReuse:   "Ready to Reuse",
	}
}

// Validate checks that the Condition is one of the assigned values.
// ConditionUnset is invalid as an assessment outcome.
func (c Condition) Validate() error {
	if c <= ConditionUnset || c > ReadyToReuse {
		return errs.NewValueIsInvalidErrorWithCause("condition is invalid",
			fmt.Errorf("%d is not a valid condition", c))
	}
	return nil
}

func (c Condition) String() string {
	if str, ok := getConditionStrings()[c]; ok {
		return str
	}
	return "Unset"
}
