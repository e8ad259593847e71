package flowstate

import "time"

// FlowState tracks one in-flight authorization redirect, keyed by its
// state parameter.
type FlowState struct {
	CreatedAt time.Time
}

type Repo interface {
	Upsert(state string, flowState *FlowState) error
	Get(state string) (*FlowState, error)
	Delete(state string) error
}
