package model

// RouteKind classifies how a route path is declared
type RouteKind string

const (
	RouteStatic  RouteKind = "static"  // Fixed path (e.g., "/settings")
	RouteDynamic RouteKind = "dynamic" // Parameterized path (e.g., "/products/:id")
)

// LinkKind classifies how a navigation link is expressed in the source
type LinkKind string

const (
	LinkNavigational LinkKind = "navigational" // Rendered link or menu entry
	LinkProgrammatic LinkKind = "programmatic" // Redirect or scripted navigation
)

// RouteNode represents a declared page or endpoint in the navigation graph.
// SourceRef points back to where the route is defined (file, line, or registry
// key) and is carried through for reporting only.
type RouteNode struct {
	Path      string    `json:"path"`
	SourceRef string    `json:"sourceRef,omitempty"`
	Kind      RouteKind `json:"kind"`
}

// LinkEdge represents a directed navigation link between two declared routes.
// The kind is informational; all kinds count equally for reachability.
type LinkEdge struct {
	From string   `json:"from"`
	To   string   `json:"to"`
	Kind LinkKind `json:"kind"`
}

// Journey is a named ordered sequence of route paths describing an intended
// user flow. The registry loader guarantees at least two steps.
type Journey struct {
	Name  string   `json:"name"`
	Steps []string `json:"steps"`
}

// JourneyStatus summarizes whether every step transition of a journey is
// backed by an edge in the graph
type JourneyStatus string

const (
	JourneyComplete JourneyStatus = "complete"
	JourneyPartial  JourneyStatus = "partial"
)

// MissingLinkReason distinguishes why a journey step pair is unsatisfied
type MissingLinkReason string

const (
	// ReasonMissingEdge means both steps are known routes but no edge
	// connects them in the required direction.
	ReasonMissingEdge MissingLinkReason = "missing-edge"
	// ReasonUnknownNode means a step references a route that is not
	// declared in the graph at all.
	ReasonUnknownNode MissingLinkReason = "unknown-node"
)

// MissingLink is a journey step pair that is not backed by a graph edge
type MissingLink struct {
	From   string            `json:"from"`
	To     string            `json:"to"`
	Reason MissingLinkReason `json:"reason"`
}

// JourneyResult holds the validation outcome for a single journey.
// MissingLinks preserves step order, so the first entry is the first break
// encountered walking the journey from its start.
type JourneyResult struct {
	Name         string        `json:"name"`
	Status       JourneyStatus `json:"status"`
	Coverage     float64       `json:"coverage"`
	MissingLinks []MissingLink `json:"missingLinks,omitempty"`
}

// ReachabilityResult partitions every route into exactly one of three sets.
// Reachable excludes dead-ends; the three slices are disjoint and together
// cover the full node set. Slices are sorted for reproducible output.
type ReachabilityResult struct {
	Reachable []string `json:"reachable"`
	Orphans   []string `json:"orphans"`
	DeadEnds  []string `json:"deadEnds"`
}

// AnalysisResult is the terminal, read-only output of a full analysis run
type AnalysisResult struct {
	NodeCount      int             `json:"nodeCount"`
	EdgeCount      int             `json:"edgeCount"`
	Reachable      []string        `json:"reachable"`
	Orphans        []string        `json:"orphans"`
	DeadEnds       []string        `json:"deadEnds"`
	JourneyResults []JourneyResult `json:"journeyResults,omitempty"`
	HealthScore    float64         `json:"healthScore"`
}

// AllJourneysComplete reports whether every validated journey is complete.
// True when no journeys were validated.
func (r *AnalysisResult) AllJourneysComplete() bool {
	for _, jr := range r.JourneyResults {
		if jr.Status != JourneyComplete {
			return false
		}
	}
	return true
}
