package domain

import "fmt"

// Reason classifies a denial.
type Reason string

const (
	ReasonNone                    Reason = ""
	ReasonNotFound                Reason = "not_found"
	ReasonForbidden               Reason = "forbidden"
	ReasonInvalidState            Reason = "invalid_state"
	ReasonInvalidPermissionConfig Reason = "invalid_permission_config"
)

// Rule names the rule that produced a decision. Callers use it to choose
// between disclosing and hiding an item.
type Rule string

const (
	RuleOwner           Rule = "owner"
	RulePublic          Rule = "public"
	RulePrivate         Rule = "private"
	RuleDraft           Rule = "draft"
	RulePassword        Rule = "password"
	RuleDeleted         Rule = "deleted"
	RuleRecycleBin      Rule = "recycle_bin"
	RuleParent          Rule = "parent"
	RuleOwnership       Rule = "ownership"
	RuleModeration      Rule = "moderation"
	RuleUnauthenticated Rule = "unauthenticated"
)

// Decision is the outcome of a permission check.
type Decision struct {
	Allowed bool
	Reason  Reason
	Rule    Rule
}

func Allow(rule Rule) Decision {
	return Decision{Allowed: true, Rule: rule}
}

func Deny(reason Reason, rule Rule) Decision {
	return Decision{Reason: reason, Rule: rule}
}

func (d Decision) Denied() bool { return !d.Allowed }

func (d Decision) String() string {
	if d.Allowed {
		return fmt.Sprintf("allow(%s)", d.Rule)
	}
	return fmt.Sprintf("deny(%s, %s)", d.Reason, d.Rule)
}
