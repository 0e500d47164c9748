package entity

import (
	"fmt"
	"time"
)

type DeploymentType string

const (
	DeploymentTypePrimary DeploymentType = "primary"
	DeploymentTypeStage   DeploymentType = "stage"
)

// ParseDeploymentType validates a user supplied deployment type.
func ParseDeploymentType(s string) (DeploymentType, error) {
	switch DeploymentType(s) {
	case DeploymentTypePrimary, DeploymentTypeStage:
		return DeploymentType(s), nil
	}
	return "", fmt.Errorf("invalid deployment type %q: use %q or %q", s, DeploymentTypeStage, DeploymentTypePrimary)
}

type DeploymentStatus string

const (
	STATUS_PROCESSING DeploymentStatus = "processing"
	STATUS_RUNNING    DeploymentStatus = "running"
	STATUS_ERROR      DeploymentStatus = "error"
	STATUS_STOPPED    DeploymentStatus = "stopped"
)

type Deployment struct {
	ID              uint64              `json:"id"`
	ProjectKey      string              `json:"projectKey"`
	Version         string              `json:"version"`
	Status          DeploymentStatus    `json:"status"`
	Cluster         string              `json:"cluster"`
	IndexerImage    string              `json:"indexerImage"`
	QueryImage      string              `json:"queryImage"`
	SubFolder       string              `json:"subFolder,omitempty"`
	Endpoint        string              `json:"endpoint,omitempty"`
	DictEndpoint    string              `json:"dictEndpoint,omitempty"`
	Type            DeploymentType      `json:"type"`
	QueryURL        string              `json:"queryUrl"`
	QueryClusterURL string              `json:"queryClusterUrl"`
	Metadata        *DeploymentMetadata `json:"metadata,omitempty"`
	CreatedAt       time.Time           `json:"createdAt"`
	UpdatedAt       *time.Time          `json:"updatedAt,omitempty"`
}

type DeploymentMetadata struct {
	Role             string `json:"role"`
	IsSample         bool   `json:"isSample"`
	EnableTimestamp  bool   `json:"enableTimestamp"`
	IndexerBatchSize uint32 `json:"indexerBatchSize"`
}

// CreateDeployRequest is a deployment request as the user typed it. Nil
// fields are filled in by the defaulting engine before anything is sent.
type CreateDeployRequest struct {
	Type                DeploymentType
	Commit              *string // Optional
	Endpoint            *string // Optional
	DictEndpoint        *string // Optional
	IndexerImageVersion *string // Optional
	QueryImageVersion   *string // Optional
	SubFolder           *string // Optional
}

// DeployRequest is the complete body of a create or redeploy call.
type DeployRequest struct {
	Version             string         `json:"version"`
	Endpoint            string         `json:"endpoint,omitempty"`
	DictEndpoint        string         `json:"dictEndpoint,omitempty"`
	IndexerImageVersion string         `json:"indexerImageVersion"`
	QueryImageVersion   string         `json:"queryImageVersion"`
	Type                DeploymentType `json:"type"`
	SubFolder           string         `json:"subFolder,omitempty"`
}

type SyncStatus struct {
	ProcessingBlock uint64 `json:"processingBlock"`
	TargetBlock     uint64 `json:"targetBlock"`
	TotalEntities   uint64 `json:"totalEntities"`
}

// Percent is processing/target as a percentage. A zero target reports 0.
func (s *SyncStatus) Percent() float64 {
	if s.TargetBlock == 0 {
		return 0
	}
	return float64(s.ProcessingBlock) / float64(s.TargetBlock) * 100
}

// SyncSnapshot is one iteration of the sync-status poller.
type SyncSnapshot struct {
	*SyncStatus
	Iteration int
}

// FormattedPercent renders Percent with two decimals.
func (s *SyncSnapshot) FormattedPercent() string {
	return fmt.Sprintf("%.2f", s.Percent())
}

// Metadata is the _metadata object served by a deployment's query endpoint.
type Metadata struct {
	LastProcessedHeight uint64 `json:"lastProcessedHeight"`
	TargetHeight        uint64 `json:"targetHeight"`
	Chain               string `json:"chain"`
	SpecName            string `json:"specName"`
	GenesisHash         string `json:"genesisHash"`
	IndexerHealthy      bool   `json:"indexerHealthy"`
	IndexerNodeVersion  string `json:"indexerNodeVersion"`
	QueryNodeVersion    string `json:"queryNodeVersion"`
}

// MetadataGQL selects the fields of Metadata in a GraphQL query.
type MetadataGQL struct {
	LastProcessedHeight bool `json:"lastProcessedHeight"`
	TargetHeight        bool `json:"targetHeight"`
	Chain               bool `json:"chain"`
	SpecName            bool `json:"specName"`
	GenesisHash         bool `json:"genesisHash"`
	IndexerHealthy      bool `json:"indexerHealthy"`
	IndexerNodeVersion  bool `json:"indexerNodeVersion"`
	QueryNodeVersion    bool `json:"queryNodeVersion"`
}
