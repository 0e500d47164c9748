package cmd

import (
	"github.com/spf13/pflag"
	"github.com/subquery/cli/entity"
	"github.com/subquery/cli/errors"
	"github.com/subquery/cli/gateway"
	"github.com/subquery/cli/lib/git"
	"github.com/subquery/cli/ui"
)

func projectKey(req *entity.CommandRequest) (string, error) {
	org, err := req.Cmd.Flags().GetString("org")
	if err != nil {
		return "", err
	}
	key, err := req.Cmd.Flags().GetString("key")
	if err != nil {
		return "", err
	}
	return entity.ProjectKey(org, key), nil
}

func printer(req *entity.CommandRequest) (*ui.Printer, error) {
	raw, err := req.Cmd.Flags().GetString("output")
	if err != nil {
		return nil, err
	}
	format, err := ui.ParseOutputFormat(raw)
	if err != nil {
		return nil, err
	}
	return ui.NewPrinter(format, req.Cmd.OutOrStdout()), nil
}

// optionalString is nil unless the flag was given on the command line.
func optionalString(flags *pflag.FlagSet, name string) (*string, error) {
	if !flags.Changed(name) {
		return nil, nil
	}
	v, err := flags.GetString(name)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func optionalBool(flags *pflag.FlagSet, name string) (*bool, error) {
	if !flags.Changed(name) {
		return nil, nil
	}
	v, err := flags.GetBool(name)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func optionalID(flags *pflag.FlagSet) (*uint64, error) {
	if !flags.Changed("id") {
		return nil, nil
	}
	id, err := flags.GetUint64("id")
	if err != nil {
		return nil, err
	}
	return &id, nil
}

func deploymentType(flags *pflag.FlagSet) (entity.DeploymentType, error) {
	raw, err := flags.GetString("type")
	if err != nil {
		return "", err
	}
	return entity.ParseDeploymentType(raw)
}

func deploymentSelector(flags *pflag.FlagSet) (entity.DeploymentSelector, error) {
	id, err := optionalID(flags)
	if err != nil {
		return entity.DeploymentSelector{}, err
	}
	t, err := deploymentType(flags)
	if err != nil {
		return entity.DeploymentSelector{}, err
	}
	return entity.DeploymentSelector{ID: id, Type: t}, nil
}

// createDeployRequest collects the deploy flags. Flags left out stay nil so
// the defaulting engine can fill them in.
func createDeployRequest(flags *pflag.FlagSet) (entity.CreateDeployRequest, error) {
	t, err := deploymentType(flags)
	if err != nil {
		return entity.CreateDeployRequest{}, err
	}
	req := entity.CreateDeployRequest{Type: t}
	for name, dst := range map[string]**string{
		"commit":                &req.Commit,
		"endpoint":              &req.Endpoint,
		"dict-endpoint":         &req.DictEndpoint,
		"indexer-image-version": &req.IndexerImageVersion,
		"query-image-version":   &req.QueryImageVersion,
		"sub-folder":            &req.SubFolder,
	} {
		if *dst, err = optionalString(flags, name); err != nil {
			return entity.CreateDeployRequest{}, err
		}
	}
	return req, nil
}

// branch falls back to the branch checked out in the working directory.
func branch(flags *pflag.FlagSet) (string, error) {
	b, err := flags.GetString("branch")
	if err != nil {
		return "", err
	}
	if b != "" {
		return b, nil
	}
	if b = git.Inspect(".").Branch; b == "" {
		return "", errors.BranchNotDetected
	}
	return b, nil
}

// repository falls back to the origin remote of the working directory.
func repository(flags *pflag.FlagSet) (string, error) {
	repo, err := flags.GetString("repo")
	if err != nil {
		return "", err
	}
	if repo == "" {
		repo = git.Inspect(".").OriginURL
	}
	if repo == "" {
		return "", errors.RepositoryNotDetected
	}
	if _, err := gateway.ParseRepository(repo); err != nil {
		return "", err
	}
	return repo, nil
}
