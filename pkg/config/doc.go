// Package config provides the engine's configuration: structural size
// limits and a run duration ceiling, following the same Default/Validate/
// Clone shape the rest of the corpus uses for its own Config types.
//
// # Usage
//
//	cfg := config.Default()
//	if err := cfg.Validate(); err != nil {
//	    // ...
//	}
//
// Size limits (MaxNodes, MaxEdges, MaxPlanSize) bound how large a single
// Graph or a single plan may grow. graph.NewWithConfig enforces MaxNodes and
// MaxEdges on every AddNode/AddNodeAt/AddEdge; plan.PlanWithLimit enforces
// MaxPlanSize. engine.RunWithConfig forwards MaxPlanSize to the planner and
// turns a positive MaxRunDuration into a context.WithTimeout deadline. The
// plain graph.New, plan.Plan, and engine.Run do not consult Config.
package config
