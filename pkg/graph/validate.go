package graph

import (
	"fmt"

	"github.com/matzehuels/commitgraph/pkg/errors"
)

// Validate checks the input contract for a commit sequence. It stops at the
// first violation; nothing is rendered for invalid input.
func Validate(commits []Commit) error {
	for i, c := range commits {
		if err := validateCommit(i, c); err != nil {
			return err
		}
	}
	return nil
}

type intField struct {
	name  string
	value int
}

func validateCommit(i int, c Commit) error {
	if err := errors.ValidateCommitID(c.ID); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "commit %d", i)
	}
	if c.Index != i {
		return errors.New(errors.ErrCodeInvalidInput, "commit %d (%s): index %d does not match its position", i, c.ID, c.Index)
	}

	fields := []intField{
		{"dot lane", c.Dot.Lane},
		{"dot branch", c.Dot.Branch},
	}
	for j, r := range c.Routes {
		fields = append(fields,
			intField{fmt.Sprintf("route %d from", j), r.From},
			intField{fmt.Sprintf("route %d to", j), r.To},
			intField{fmt.Sprintf("route %d branch", j), r.Branch},
		)
	}
	for _, f := range fields {
		if err := errors.ValidateNonNegative(f.name, f.value); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidInput, err, "commit %d (%s)", i, c.ID)
		}
	}
	return nil
}
