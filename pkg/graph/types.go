package graph

// Dot is the marker a commit draws on its own row.
type Dot struct {
	Lane   int `json:"lane" yaml:"lane"`
	Branch int `json:"branch" yaml:"branch"`
}

// Route is an edge leaving a commit. It starts at lane From on the commit's
// row and ends at lane To on the next row. Branch selects the stroke color
// and may differ from the owning commit's dot branch.
type Route struct {
	From   int `json:"from" yaml:"from"`
	To     int `json:"to" yaml:"to"`
	Branch int `json:"branch" yaml:"branch"`
}

// Straight reports whether the route stays in its lane.
func (r Route) Straight() bool { return r.From == r.To }

// Commit is one row of the rendered history.
type Commit struct {
	ID     string  `json:"id" yaml:"id"`
	Index  int     `json:"index" yaml:"index"`
	Dot    Dot     `json:"dot" yaml:"dot"`
	Routes []Route `json:"routes" yaml:"routes"`
}

// BranchCount returns one more than the largest lane referenced by any
// route, or 0 when there are no routes. It sizes the lane axis.
func BranchCount(commits []Commit) int {
	maxLane := -1
	for _, c := range commits {
		for _, r := range c.Routes {
			maxLane = max(maxLane, r.From, r.To)
		}
	}
	return maxLane + 1
}

// RouteCount returns the total number of routes.
func RouteCount(commits []Commit) int {
	n := 0
	for _, c := range commits {
		n += len(c.Routes)
	}
	return n
}
