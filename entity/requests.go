package entity

import "time"

const DefaultPollInterval = 3 * time.Second

// PollOptions controls the polling loops. Without Rolling a loop runs once.
type PollOptions struct {
	Rolling  bool
	Interval time.Duration
}

// DeploymentSelector picks a deployment either by id or, when ID is nil, by
// the first deployment of Type.
type DeploymentSelector struct {
	ID   *uint64
	Type DeploymentType
}
