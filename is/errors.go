package is

import "errors"

// Sentinel errors for ImplicationalSystem mutation. add_element/add_rule
// failures are reported as booleans, not errors (spec §7's
// PreconditionViolation policy: "this is a query, not an error"). No
// function in this module returns these sentinels: AddRule, RemoveRule and
// ReplaceRule report the same conditions as false, and package isio uses
// its own ErrParse/ErrIO.
var (
	// ErrElementNotInGroundSet names the condition of a rule referencing an
	// element outside S.
	ErrElementNotInGroundSet = errors.New("is: element not in ground set")

	// ErrRuleNotFound names the condition of ReplaceRule/RemoveRule targeting
	// an absent rule.
	ErrRuleNotFound = errors.New("is: rule not found")
)
