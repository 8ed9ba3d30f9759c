package services

import (
	"fmt"
	"unicode/utf8"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/reglet-dev/ketchlist/internal/domain/values"
)

// maxFilterNodes bounds the size of a compiled filter expression.
const maxFilterNodes = 1000

// CandidateSpecification decides whether a candidate is written.
type CandidateSpecification interface {
	IsSatisfiedBy(candidate string) bool
}

// SatisfiesPolicy reports whether candidate meets policy. A nil policy
// accepts every candidate.
func SatisfiesPolicy(candidate string, policy *values.PasswordPolicy) bool {
	if policy == nil {
		return true
	}
	return policy.Satisfies(candidate)
}

// AndSpecification combines multiple specifications with logical AND.
type AndSpecification struct {
	specs []CandidateSpecification
}

// NewAndSpecification creates a new AndSpecification. Nil entries are
// dropped.
func NewAndSpecification(specs ...CandidateSpecification) *AndSpecification {
	kept := make([]CandidateSpecification, 0, len(specs))
	for _, s := range specs {
		if s != nil {
			kept = append(kept, s)
		}
	}
	return &AndSpecification{specs: kept}
}

// IsSatisfiedBy checks if all specifications are satisfied.
func (s *AndSpecification) IsSatisfiedBy(candidate string) bool {
	for _, spec := range s.specs {
		if !spec.IsSatisfiedBy(candidate) {
			return false
		}
	}
	return true
}

// Empty reports whether the specification has nothing to check.
func (s *AndSpecification) Empty() bool {
	return len(s.specs) == 0
}

// PolicySpecification applies a password policy.
type PolicySpecification struct {
	policy *values.PasswordPolicy
}

// NewPolicySpecification creates a new PolicySpecification.
func NewPolicySpecification(policy *values.PasswordPolicy) *PolicySpecification {
	return &PolicySpecification{policy: policy}
}

// IsSatisfiedBy checks the candidate against the policy.
func (s *PolicySpecification) IsSatisfiedBy(candidate string) bool {
	return SatisfiesPolicy(candidate, s.policy)
}

// CandidateEnv defines the variables available to filter expressions.
type CandidateEnv struct {
	Candidate  string `expr:"candidate"`
	Length     int    `expr:"length"`
	HasUpper   bool   `expr:"hasUpper"`
	HasLower   bool   `expr:"hasLower"`
	HasDigit   bool   `expr:"hasDigit"`
	HasSpecial bool   `expr:"hasSpecial"`
}

// NewCandidateEnv builds the evaluation environment for candidate.
func NewCandidateEnv(candidate string) CandidateEnv {
	c := values.ClassifyChars(candidate)
	return CandidateEnv{
		Candidate:  candidate,
		Length:     utf8.RuneCountInString(candidate),
		HasUpper:   c.Upper,
		HasLower:   c.Lower,
		HasDigit:   c.Digit,
		HasSpecial: c.Special,
	}
}

// CompileFilter compiles a boolean filter expression over CandidateEnv.
func CompileFilter(expression string) (*vm.Program, error) {
	program, err := expr.Compile(expression,
		expr.Env(CandidateEnv{}),
		expr.AsBool(),
		expr.MaxNodes(maxFilterNodes))
	if err != nil {
		return nil, fmt.Errorf("invalid filter expression: %w", err)
	}
	return program, nil
}

// ExpressionSpecification filters candidates using an expr program.
type ExpressionSpecification struct {
	program *vm.Program
}

// NewExpressionSpecification creates a new ExpressionSpecification.
func NewExpressionSpecification(program *vm.Program) *ExpressionSpecification {
	return &ExpressionSpecification{program: program}
}

// IsSatisfiedBy evaluates the expr program against the candidate.
// Evaluation errors reject the candidate.
func (s *ExpressionSpecification) IsSatisfiedBy(candidate string) bool {
	if s.program == nil {
		return true
	}

	output, err := expr.Run(s.program, NewCandidateEnv(candidate))
	if err != nil {
		return false
	}

	result, ok := output.(bool)
	return ok && result
}
