package graph

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/matzehuels/commitgraph/pkg/errors"
)

// Encoding names accepted by [Unmarshal].
const (
	EncodingJSON = "json"
	EncodingYAML = "yaml"
)

// ReadJSON decodes a commit sequence in either wire format from r and
// validates it.
func ReadJSON(r io.Reader) ([]Commit, error) {
	var wire []wireCommit
	if err := json.NewDecoder(r).Decode(&wire); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode json")
	}
	return fromWire(wire)
}

// ReadYAML decodes a commit sequence in either wire format from r and
// validates it.
func ReadYAML(r io.Reader) ([]Commit, error) {
	var wire []wireCommit
	if err := yaml.NewDecoder(r).Decode(&wire); err != nil {
		if err == io.EOF {
			return []Commit{}, nil
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode yaml")
	}
	return fromWire(wire)
}

// Unmarshal decodes data using the named encoding.
func Unmarshal(data []byte, encoding string) ([]Commit, error) {
	switch encoding {
	case EncodingJSON, "":
		return ReadJSON(bytes.NewReader(data))
	case EncodingYAML, "yml":
		return ReadYAML(bytes.NewReader(data))
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unknown input encoding %q", encoding)
	}
}

// Marshal encodes commits in the compact tuple format.
func Marshal(commits []Commit) ([]byte, error) {
	rows := make([][]any, len(commits))
	for i, c := range commits {
		routes := make([][3]int, len(c.Routes))
		for j, r := range c.Routes {
			routes[j] = [3]int{r.From, r.To, r.Branch}
		}
		rows[i] = []any{c.ID, [2]int{c.Dot.Lane, c.Dot.Branch}, routes}
	}
	return json.Marshal(rows)
}

// wireCommit is the decoded form of one row before positions are checked.
type wireCommit struct {
	ID     string
	Index  *int
	Dot    *Dot
	Routes []Route
}

type commitObject struct {
	ID     string  `json:"id" yaml:"id"`
	SHA    string  `json:"sha" yaml:"sha"`
	Index  *int    `json:"index" yaml:"index"`
	Dot    *Dot    `json:"dot" yaml:"dot"`
	Routes []Route `json:"routes" yaml:"routes"`
}

func (o commitObject) wire() wireCommit {
	id := o.ID
	if id == "" {
		id = o.SHA
	}
	return wireCommit{ID: id, Index: o.Index, Dot: o.Dot, Routes: o.Routes}
}

func (w *wireCommit) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || data[0] != '[' {
		var o commitObject
		if err := json.Unmarshal(data, &o); err != nil {
			return err
		}
		*w = o.wire()
		return nil
	}

	var parts []json.RawMessage
	if err := json.Unmarshal(data, &parts); err != nil {
		return err
	}
	if len(parts) < 2 || len(parts) > 3 {
		return fmt.Errorf("commit tuple needs 2 or 3 elements, got %d", len(parts))
	}
	if err := json.Unmarshal(parts[0], &w.ID); err != nil {
		return fmt.Errorf("commit id: %w", err)
	}
	var d Dot
	if err := json.Unmarshal(parts[1], &d); err != nil {
		return fmt.Errorf("commit %s dot: %w", w.ID, err)
	}
	w.Dot = &d
	if len(parts) == 3 {
		if err := json.Unmarshal(parts[2], &w.Routes); err != nil {
			return fmt.Errorf("commit %s routes: %w", w.ID, err)
		}
	}
	return nil
}

func (w *wireCommit) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.SequenceNode {
		var o commitObject
		if err := node.Decode(&o); err != nil {
			return err
		}
		*w = o.wire()
		return nil
	}

	if n := len(node.Content); n < 2 || n > 3 {
		return fmt.Errorf("line %d: commit tuple needs 2 or 3 elements, got %d", node.Line, n)
	}
	if err := node.Content[0].Decode(&w.ID); err != nil {
		return fmt.Errorf("commit id: %w", err)
	}
	var d Dot
	if err := node.Content[1].Decode(&d); err != nil {
		return fmt.Errorf("commit %s dot: %w", w.ID, err)
	}
	w.Dot = &d
	if len(node.Content) == 3 {
		if err := node.Content[2].Decode(&w.Routes); err != nil {
			return fmt.Errorf("commit %s routes: %w", w.ID, err)
		}
	}
	return nil
}

type dotObject Dot

// UnmarshalJSON accepts [lane, branch] or {"lane": .., "branch": ..}.
func (d *Dot) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '[' {
		var xs []int
		if err := json.Unmarshal(data, &xs); err != nil {
			return err
		}
		return d.fromTuple(xs)
	}
	return json.Unmarshal(data, (*dotObject)(d))
}

// UnmarshalYAML accepts [lane, branch] or a lane/branch mapping.
func (d *Dot) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.SequenceNode {
		var xs []int
		if err := node.Decode(&xs); err != nil {
			return err
		}
		return d.fromTuple(xs)
	}
	return node.Decode((*dotObject)(d))
}

func (d *Dot) fromTuple(xs []int) error {
	if len(xs) != 2 {
		return fmt.Errorf("dot tuple needs [lane, branch], got %d elements", len(xs))
	}
	d.Lane, d.Branch = xs[0], xs[1]
	return nil
}

type routeObject Route

// UnmarshalJSON accepts [from, to, branch] or an object.
func (r *Route) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '[' {
		var xs []int
		if err := json.Unmarshal(data, &xs); err != nil {
			return err
		}
		return r.fromTuple(xs)
	}
	return json.Unmarshal(data, (*routeObject)(r))
}

// UnmarshalYAML accepts [from, to, branch] or a mapping.
func (r *Route) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.SequenceNode {
		var xs []int
		if err := node.Decode(&xs); err != nil {
			return err
		}
		return r.fromTuple(xs)
	}
	return node.Decode((*routeObject)(r))
}

func (r *Route) fromTuple(xs []int) error {
	if len(xs) != 3 {
		return fmt.Errorf("route tuple needs [from, to, branch], got %d elements", len(xs))
	}
	r.From, r.To, r.Branch = xs[0], xs[1], xs[2]
	return nil
}

// fromWire assigns positions, rejects rows without a dot descriptor and
// validates the result.
func fromWire(wire []wireCommit) ([]Commit, error) {
	commits := make([]Commit, len(wire))
	for i, w := range wire {
		if w.Dot == nil {
			return nil, errors.New(errors.ErrCodeInvalidInput, "commit %d (%s): missing dot descriptor", i, w.ID)
		}
		idx := i
		if w.Index != nil {
			idx = *w.Index
		}
		routes := w.Routes
		if routes == nil {
			routes = []Route{}
		}
		commits[i] = Commit{ID: w.ID, Index: idx, Dot: *w.Dot, Routes: routes}
	}
	if err := Validate(commits); err != nil {
		return nil, err
	}
	return commits, nil
}
