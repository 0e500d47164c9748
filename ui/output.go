package ui

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/samber/lo"
	"github.com/subquery/cli/entity"
	"gopkg.in/yaml.v3"
)

type OutputFormat string

const (
	OutputJSON  OutputFormat = "json"
	OutputRaw   OutputFormat = "raw"
	OutputTable OutputFormat = "table"
	OutputYAML  OutputFormat = "yaml"
)

func ParseOutputFormat(s string) (OutputFormat, error) {
	switch OutputFormat(s) {
	case OutputJSON, OutputRaw, OutputTable, OutputYAML:
		return OutputFormat(s), nil
	case "":
		return OutputRaw, nil
	}
	return "", fmt.Errorf("unknown output format: %s (use raw, table, json or yaml)", s)
}

// Printer renders records in the requested format. It never mutates them.
type Printer struct {
	Format OutputFormat
	Writer io.Writer
}

func NewPrinter(format OutputFormat, w io.Writer) *Printer {
	return &Printer{Format: format, Writer: w}
}

func (p *Printer) isStructured() bool {
	return p.Format == OutputJSON || p.Format == OutputYAML
}

func (p *Printer) structured(data interface{}) error {
	if p.Format == OutputYAML {
		return p.printYAML(data)
	}
	return p.printJSON(data)
}

func (p *Printer) printJSON(data interface{}) error {
	enc := json.NewEncoder(p.Writer)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

// printYAML goes through JSON first so field names match the json output.
func (p *Printer) printYAML(data interface{}) error {
	b, err := json.Marshal(data)
	if err != nil {
		return err
	}
	var generic interface{}
	if err := json.Unmarshal(b, &generic); err != nil {
		return err
	}
	enc := yaml.NewEncoder(p.Writer)
	enc.SetIndent(2)
	defer enc.Close()
	return enc.Encode(generic)
}

func (p *Printer) printTable(headers []string, rows [][]string) {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return lipgloss.NewStyle().Bold(true).Padding(0, 1)
			}
			return lipgloss.NewStyle().Padding(0, 1)
		}).
		Headers(headers...).
		Rows(rows...)
	fmt.Fprintln(p.Writer, t.Render())
}

func (p *Printer) statusText(status entity.DeploymentStatus) string {
	au := Color(p.Writer)
	switch status {
	case entity.STATUS_RUNNING:
		return au.Bold(au.Green("Running")).String()
	case entity.STATUS_ERROR:
		return au.Bold(au.Red("Error")).String()
	case entity.STATUS_PROCESSING:
		return au.Bold(au.Cyan("Processing")).String()
	case entity.STATUS_STOPPED:
		return au.Bold(au.Yellow("Stopped")).String()
	}
	return string(status)
}

func (p *Printer) heading(text string) string {
	au := Color(p.Writer)
	return au.Bold(au.Blue(text)).String()
}

var deploymentKeys = []string{
	"Id", "Project key", "Type", "Commit", "Status", "Cluster", "Indexer image", "Query image",
	"Sub folder", "Endpoint", "Dict endpoint", "Query url", "Query cluster url",
}

func (p *Printer) deploymentValues(d *entity.Deployment) map[string]string {
	return map[string]string{
		"Id":                strconv.FormatUint(d.ID, 10),
		"Project key":       d.ProjectKey,
		"Type":              string(d.Type),
		"Commit":            d.Version,
		"Status":            p.statusText(d.Status),
		"Cluster":           d.Cluster,
		"Indexer image":     d.IndexerImage,
		"Query image":       d.QueryImage,
		"Sub folder":        d.SubFolder,
		"Endpoint":          d.Endpoint,
		"Dict endpoint":     d.DictEndpoint,
		"Query url":         d.QueryURL,
		"Query cluster url": d.QueryClusterURL,
	}
}

// PrintDeployments prints the current primary and stage deployments in raw
// mode, or every deployment in the other formats.
func (p *Printer) PrintDeployments(deployments []*entity.Deployment) error {
	if p.isStructured() {
		return p.structured(deployments)
	}
	if p.Format == OutputTable {
		rows := lo.Map(deployments, func(d *entity.Deployment, _ int) []string {
			return []string{
				strconv.FormatUint(d.ID, 10), string(d.Type), p.statusText(d.Status),
				Truncate(d.Version, 12), d.Cluster, d.IndexerImage, d.QueryImage, d.QueryURL,
			}
		})
		p.printTable([]string{"ID", "TYPE", "STATUS", "COMMIT", "CLUSTER", "INDEXER", "QUERY", "QUERY URL"}, rows)
		return nil
	}

	primary, hasPrimary := lo.Find(deployments, func(d *entity.Deployment) bool {
		return d.Type == entity.DeploymentTypePrimary
	})
	stage, hasStage := lo.Find(deployments, func(d *entity.Deployment) bool {
		return d.Type == entity.DeploymentTypeStage
	})
	if !hasPrimary && !hasStage {
		fmt.Fprintln(p.Writer, "Not have any deployments")
		return nil
	}
	if hasPrimary {
		fmt.Fprintln(p.Writer, p.heading("Primary"))
		fmt.Fprint(p.Writer, OrderedKeyValues(deploymentKeys, p.deploymentValues(primary)))
		if hasStage {
			fmt.Fprintln(p.Writer)
		}
	}
	if hasStage {
		fmt.Fprintln(p.Writer, p.heading("Stage"))
		fmt.Fprint(p.Writer, OrderedKeyValues(deploymentKeys, p.deploymentValues(stage)))
	}
	return nil
}

func (p *Printer) PrintDeployment(d *entity.Deployment) error {
	if p.isStructured() {
		return p.structured(d)
	}
	return p.PrintDeployments([]*entity.Deployment{d})
}

var projectKeys = []string{
	"Key", "Account", "Name", "Network", "Deployed", "Logo", "Subtitle", "Description",
	"Repository", "Hide", "Dedicate db key", "Query url",
}

func (p *Printer) PrintProject(project *entity.Project) error {
	if p.isStructured() {
		return p.structured(project)
	}
	values := map[string]string{
		"Key":             project.Key,
		"Account":         project.Account,
		"Name":            project.Name,
		"Network":         project.Network,
		"Deployed":        strconv.FormatBool(project.Deployed),
		"Logo":            project.LogoURL,
		"Subtitle":        project.Subtitle,
		"Description":     project.Description,
		"Repository":      project.GitRepository,
		"Hide":            strconv.FormatBool(project.Hide),
		"Dedicate db key": project.DedicateDBKey,
		"Query url":       project.QueryURL,
	}
	if p.Format == OutputTable {
		rows := lo.Map(projectKeys, func(k string, _ int) []string { return []string{k, values[k]} })
		p.printTable([]string{"NAME", "VALUE"}, rows)
	} else {
		fmt.Fprintln(p.Writer, p.heading(project.Key))
		fmt.Fprint(p.Writer, OrderedKeyValues(projectKeys, values))
	}
	if project.Deployment != nil {
		fmt.Fprintln(p.Writer)
		return p.PrintDeployments([]*entity.Deployment{project.Deployment})
	}
	return nil
}

// PrintProjects prints one line per project; the name is appended when it
// differs from the slug.
func (p *Printer) PrintProjects(projects []*entity.Project) error {
	if p.isStructured() {
		return p.structured(projects)
	}
	if p.Format == OutputTable {
		rows := lo.Map(projects, func(project *entity.Project, _ int) []string {
			return []string{project.Key, project.Name, project.GitRepository, strconv.FormatBool(project.Deployed), strconv.FormatBool(project.Hide)}
		})
		p.printTable([]string{"KEY", "NAME", "REPOSITORY", "DEPLOYED", "HIDDEN"}, rows)
		return nil
	}
	for _, project := range projects {
		if project.Name == "" || project.Name == project.Slug() {
			fmt.Fprintln(p.Writer, project.Key)
		} else {
			fmt.Fprintf(p.Writer, "%s (%s)\n", project.Key, project.Name)
		}
	}
	return nil
}

func (p *Printer) PrintBranches(branches []*entity.Branch) error {
	if p.isStructured() {
		return p.structured(branches)
	}
	if p.Format == OutputTable {
		rows := lo.Map(branches, func(b *entity.Branch, _ int) []string {
			return []string{b.Name, Truncate(b.Commit.Sha, 12), strconv.FormatBool(b.Protected)}
		})
		p.printTable([]string{"BRANCH", "HEAD", "PROTECTED"}, rows)
		return nil
	}
	for _, b := range branches {
		fmt.Fprintln(p.Writer, b.Name)
	}
	return nil
}

var metadataKeys = []string{
	"Chain", "Spec name", "Genesis hash", "Last processed height", "Target height",
	"Indexer healthy", "Indexer version", "Query version",
}

func (p *Printer) PrintMetadata(m *entity.Metadata) error {
	if p.isStructured() {
		return p.structured(m)
	}
	values := map[string]string{
		"Chain":                 m.Chain,
		"Spec name":             m.SpecName,
		"Genesis hash":          m.GenesisHash,
		"Last processed height": strconv.FormatUint(m.LastProcessedHeight, 10),
		"Target height":         strconv.FormatUint(m.TargetHeight, 10),
		"Indexer healthy":       strconv.FormatBool(m.IndexerHealthy),
		"Indexer version":       m.IndexerNodeVersion,
		"Query version":         m.QueryNodeVersion,
	}
	if p.Format == OutputTable {
		rows := lo.Map(metadataKeys, func(k string, _ int) []string { return []string{k, values[k]} })
		p.printTable([]string{"NAME", "VALUE"}, rows)
		return nil
	}
	fmt.Fprint(p.Writer, OrderedKeyValues(metadataKeys, values))
	return nil
}

func (p *Printer) PrintUser(user *entity.User) error {
	if p.isStructured() {
		// never echo the token in structured output
		redacted := *user
		redacted.AccessToken = ""
		return p.structured(&redacted)
	}
	fmt.Fprint(p.Writer, OrderedKeyValues([]string{"ID", "NAME", "EMAIL"}, map[string]string{
		"ID":    user.ID,
		"NAME":  user.Username,
		"EMAIL": user.Email,
	}))
	return nil
}

func (p *Printer) PrintAccounts(accounts []*entity.Account) error {
	if p.isStructured() {
		return p.structured(accounts)
	}
	if p.Format == OutputTable {
		rows := lo.Map(accounts, func(a *entity.Account, _ int) []string {
			return []string{a.Key, a.Name, string(a.Type)}
		})
		p.printTable([]string{"KEY", "NAME", "ROLE"}, rows)
		return nil
	}
	for _, a := range accounts {
		fmt.Fprintln(p.Writer, a.Key)
	}
	return nil
}
