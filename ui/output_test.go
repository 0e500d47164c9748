package ui_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/subquery/cli/entity"
	"github.com/subquery/cli/ui"
	"gopkg.in/yaml.v3"
)

func sampleDeployments() []*entity.Deployment {
	return []*entity.Deployment{
		{ID: 1, ProjectKey: "org/project", Version: "abc123", Type: entity.DeploymentTypeStage, Status: entity.STATUS_PROCESSING},
		{ID: 2, ProjectKey: "org/project", Version: "def456", Type: entity.DeploymentTypePrimary, Status: entity.STATUS_RUNNING, QueryURL: "https://api.subquery.network/sq/org/project"},
	}
}

func TestParseOutputFormat(t *testing.T) {
	format, err := ui.ParseOutputFormat("")
	require.NoError(t, err)
	require.Equal(t, ui.OutputRaw, format)

	format, err = ui.ParseOutputFormat("yaml")
	require.NoError(t, err)
	require.Equal(t, ui.OutputYAML, format)

	_, err = ui.ParseOutputFormat("xml")
	require.Error(t, err)
}

func TestPrintDeploymentsRaw(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, ui.NewPrinter(ui.OutputRaw, &buf).PrintDeployments(sampleDeployments()))

	out := buf.String()
	primary := strings.Index(out, "Primary")
	stage := strings.Index(out, "Stage")
	require.True(t, primary >= 0 && stage > primary, out)
	require.Contains(t, out, "Commit:            def456\n")
	require.Contains(t, out, "Status:            Running\n")
	require.Contains(t, out, "Commit:            abc123\n")
}

func TestPrintDeploymentsRawEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, ui.NewPrinter(ui.OutputRaw, &buf).PrintDeployments(nil))
	require.Equal(t, "Not have any deployments\n", buf.String())
}

func TestPrintDeploymentsJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, ui.NewPrinter(ui.OutputJSON, &buf).PrintDeployments(sampleDeployments()))

	var decoded []*entity.Deployment
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 2)
	require.Equal(t, uint64(2), decoded[1].ID)
	require.Contains(t, buf.String(), "\n  {\n")
}

func TestPrintDeploymentsYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, ui.NewPrinter(ui.OutputYAML, &buf).PrintDeployments(sampleDeployments()))

	var decoded []map[string]interface{}
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 2)
	require.Equal(t, "org/project", decoded[0]["projectKey"])
	require.Equal(t, "https://api.subquery.network/sq/org/project", decoded[1]["queryUrl"])
}

func TestPrintDeploymentsTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, ui.NewPrinter(ui.OutputTable, &buf).PrintDeployments(sampleDeployments()))

	out := buf.String()
	require.Contains(t, out, "ID")
	require.Contains(t, out, "QUERY URL")
	require.Contains(t, out, "abc123")
	require.Contains(t, out, "Processing")
}

func TestPrintProjectsRaw(t *testing.T) {
	var buf bytes.Buffer
	err := ui.NewPrinter(ui.OutputRaw, &buf).PrintProjects([]*entity.Project{
		{Key: "org/starter", Name: "starter"},
		{Key: "org/kusama", Name: "Kusama Indexer"},
		{Key: "org/unnamed"},
	})
	require.NoError(t, err)
	require.Equal(t, multiline(
		"org/starter",
		"org/kusama (Kusama Indexer)",
		"org/unnamed",
	), buf.String())
}

func TestPrintUserRedactsToken(t *testing.T) {
	user := &entity.User{ID: "7", Username: "fewensa", Email: "dev@subquery.network", AccessToken: "secret"}

	var buf bytes.Buffer
	require.NoError(t, ui.NewPrinter(ui.OutputJSON, &buf).PrintUser(user))
	require.NotContains(t, buf.String(), "secret")
	require.Equal(t, "secret", user.AccessToken)

	buf.Reset()
	require.NoError(t, ui.NewPrinter(ui.OutputRaw, &buf).PrintUser(user))
	require.Equal(t, multiline(
		"ID:    7",
		"NAME:  fewensa",
		"EMAIL: dev@subquery.network",
	), buf.String())
}

func TestPrintMetadataRaw(t *testing.T) {
	var buf bytes.Buffer
	err := ui.NewPrinter(ui.OutputRaw, &buf).PrintMetadata(&entity.Metadata{
		Chain:               "Polkadot",
		LastProcessedHeight: 120,
		TargetHeight:        200,
		IndexerHealthy:      true,
	})
	require.NoError(t, err)
	require.Contains(t, buf.String(), "Chain:                 Polkadot\n")
	require.Contains(t, buf.String(), "Last processed height: 120\n")
	require.Contains(t, buf.String(), "Indexer healthy:       true\n")
}

func TestPrintBranches(t *testing.T) {
	branches := []*entity.Branch{
		{Name: "main", Protected: true, Commit: entity.BranchCommit{Sha: "6f1ed002ab5595859014ebf0951522d9"}},
		{Name: "develop"},
	}

	var buf bytes.Buffer
	require.NoError(t, ui.NewPrinter(ui.OutputRaw, &buf).PrintBranches(branches))
	require.Equal(t, multiline("main", "develop"), buf.String())

	buf.Reset()
	require.NoError(t, ui.NewPrinter(ui.OutputTable, &buf).PrintBranches(branches))
	require.Contains(t, buf.String(), "6f1ed...22d9")
}
