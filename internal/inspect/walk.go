package inspect

// DefaultMaxDepth is the recursion limit used when Options does not set one.
const DefaultMaxDepth = 10

// Marker flags a result that was not fully expanded.
type Marker string

const (
	MarkerNone     Marker = ""
	MarkerCycle    Marker = "cycle"
	MarkerMaxDepth Marker = "max_depth"
	MarkerError    Marker = "error"
)

// Options configures a walk. MaxDepth limits recursion depth; nil means
// DefaultMaxDepth, so an explicit 0 still counts as a real limit that
// expands only the root. Negative limits behave like 0.
type Options struct {
	MaxDepth *int
}

// Depth wraps a depth limit for Options.MaxDepth.
func Depth(n int) *int { return &n }

func (o Options) maxDepth() int {
	if o.MaxDepth == nil {
		return DefaultMaxDepth
	}
	if *o.MaxDepth < 0 {
		return 0
	}
	return *o.MaxDepth
}

// Result is the structural output of walking one node: its type name, its
// ordered properties, and its walked children — or a marker in place of
// expansion when the node is a cycle reference, past the depth limit, or
// failed inspection.
type Result struct {
	Type       string
	Marker     Marker
	Properties []Property
	Children   []Child
}

// Child pairs a child relation label with the recursively walked result.
type Child struct {
	Slot   string
	Index  int
	Result Result
}

// Walk traverses the control tree rooted at node depth-first and returns
// its structural result. The walk always terminates: recursion is bounded
// by the depth limit, and a path-scoped identity set breaks reference
// cycles. All state is local to this call.
func Walk(node any, opts Options) Result {
	return walk(node, 0, opts.maxDepth(), make(map[uintptr]struct{}))
}

func walk(node any, depth, maxDepth int, visited map[uintptr]struct{}) Result {
	name := TypeName(node)
	if !IsNode(node) {
		return Result{Type: name}
	}

	id, hasID := identity(node)
	if hasID {
		if _, seen := visited[id]; seen {
			return Result{Type: name, Marker: MarkerCycle}
		}
	}
	if depth > maxDepth {
		return Result{Type: name, Marker: MarkerMaxDepth}
	}
	if hasID {
		// Path-only cycle detection: a node reachable via two disjoint
		// paths is walked independently on each.
		visited[id] = struct{}{}
		defer delete(visited, id)
	}

	res := Result{Type: name}
	ok := func() (ok bool) {
		defer func() {
			if r := recover(); r != nil {
				ok = false
			}
		}()
		res.Properties = Properties(node)
		for _, e := range Children(node) {
			res.Children = append(res.Children, Child{
				Slot:   e.Slot,
				Index:  e.Index,
				Result: walk(e.Node, depth+1, maxDepth, visited),
			})
		}
		return true
	}()
	if !ok {
		// A malformed node degrades to its type name; siblings and
		// ancestors are unaffected.
		return Result{Type: name, Marker: MarkerError}
	}
	return res
}
