package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime/debug"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/subquery/cli/cmd"
	"github.com/subquery/cli/constants"
	"github.com/subquery/cli/entity"
	cerrors "github.com/subquery/cli/errors"
)

var rootCmd = &cobra.Command{
	Use:           "subquery",
	SilenceUsage:  true,
	SilenceErrors: true,
	Version:       constants.Version,
	Short:         "Manage SubQuery projects and deployments",
	Long:          "Interact with the SubQuery managed service from the command line.\n\nDocs: https://doc.subquery.network",
}

var skipAuth = map[string]string{cmd.SkipAuthAnnotation: "true"}

/* contextualize converts a HandlerFunction to a cobra function
 */
func contextualize(fn entity.HandlerFunction, panicFn entity.PanicFunction) entity.CobraFunction {
	return func(cmd *cobra.Command, args []string) (err error) {
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		defer func() {
			if r := recover(); r != nil {
				err = panicFn(ctx, fmt.Sprint(r), string(debug.Stack()), cmd.Name(), args)
			}
		}()

		req := &entity.CommandRequest{
			Cmd:  cmd,
			Args: args,
		}
		return fn(ctx, req)
	}
}

func addProjectFlags(c *cobra.Command) {
	c.Flags().String("org", "", "Org name")
	c.Flags().String("key", "", "Project key")
	_ = c.MarkFlagRequired("org")
	_ = c.MarkFlagRequired("key")
}

func addOutputFlag(c *cobra.Command) {
	c.Flags().StringP("output", "o", "raw", "Output format: raw, table, json or yaml")
}

func addDeployFlags(c *cobra.Command) {
	c.Flags().String("branch", "", "Branch of the git repository, defaults to the current branch")
	c.Flags().String("commit", "", "Commit to deploy, defaults to the latest commit of the branch")
	c.Flags().String("endpoint", "", "Override the network endpoint")
	c.Flags().String("dict-endpoint", "", "Override the dictionary endpoint")
	c.Flags().String("indexer-image-version", "", "Indexer version (@subql/node), defaults to the latest")
	c.Flags().String("query-image-version", "", "Query version (@subql/query), defaults to the latest")
	c.Flags().String("type", string(entity.DeploymentTypeStage), "Deployment type: stage or primary")
	c.Flags().String("sub-folder", "", "Sub folder of the project inside the repository")
}

func addSelectorFlags(c *cobra.Command) {
	c.Flags().Uint64("id", 0, "Deployment id")
	c.Flags().String("type", string(entity.DeploymentTypePrimary), "Deployment type used when --id is not given")
}

func addPollFlags(c *cobra.Command) {
	c.Flags().Bool("rolling", false, "Keep polling until interrupted")
	c.Flags().Uint("interval", uint(entity.DefaultPollInterval.Seconds()), "Seconds between polls")
}

func init() {
	// Initializes all commands
	handler := cmd.New()

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Print debug logs to stderr")
	if err := handler.Configs().BindFlags(rootCmd.PersistentFlags()); err != nil {
		panic(err)
	}
	rootCmd.PersistentPreRunE = contextualize(handler.Prepare, handler.Panic)
	rootCmd.PersistentPostRun = func(*cobra.Command, []string) { handler.Sync() }

	loginCmd := &cobra.Command{
		Use:         "login",
		Short:       "Login to SubQuery with the session id of the web console",
		Annotations: skipAuth,
		RunE:        contextualize(handler.Login, handler.Panic),
	}
	loginCmd.Flags().String("sid", "", "Value of the connect.sid cookie")
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(&cobra.Command{
		Use:         "logout",
		Short:       "Logout of SubQuery",
		Annotations: skipAuth,
		RunE:        contextualize(handler.Logout, handler.Panic),
	})

	userCmd := &cobra.Command{
		Use:   "user",
		Short: "Show the logged in user",
	}
	userInfoCmd := &cobra.Command{
		Use:   "info",
		Short: "Show user info",
		RunE:  contextualize(handler.UserInfo, handler.Panic),
	}
	addOutputFlag(userInfoCmd)
	userOrgsCmd := &cobra.Command{
		Use:   "orgs",
		Short: "Show all accounts and organizations",
		RunE:  contextualize(handler.Orgs, handler.Panic),
	}
	addOutputFlag(userOrgsCmd)
	userCmd.AddCommand(userInfoCmd, userOrgsCmd, &cobra.Command{
		Use:   "access-token",
		Short: "Show the current access token",
		RunE:  contextualize(handler.AccessToken, handler.Panic),
	})
	rootCmd.AddCommand(userCmd)

	projectCmd := &cobra.Command{
		Use:   "project",
		Short: "Manage projects",
	}
	projectCreateCmd := &cobra.Command{
		Use:   "create",
		Short: "Create a project",
		RunE:  contextualize(handler.CreateProject, handler.Panic),
	}
	addProjectFlags(projectCreateCmd)
	addOutputFlag(projectCreateCmd)
	projectCreateCmd.Flags().String("name", "", "Project name, defaults to the key")
	projectCreateCmd.Flags().String("subtitle", "", "Subtitle")
	projectCreateCmd.Flags().String("description", "", "Description")
	projectCreateCmd.Flags().String("repo", "", "GitHub repository url, defaults to the origin remote")
	projectCreateCmd.Flags().Bool("hide", true, "Hide the project in the explorer")

	projectUpdateCmd := &cobra.Command{
		Use:   "update",
		Short: "Update a project",
		RunE:  contextualize(handler.UpdateProject, handler.Panic),
	}
	addProjectFlags(projectUpdateCmd)
	projectUpdateCmd.Flags().String("name", "", "Project name")
	projectUpdateCmd.Flags().String("subtitle", "", "Subtitle")
	projectUpdateCmd.Flags().String("description", "", "Description")
	projectUpdateCmd.Flags().Bool("hide", false, "Hide the project in the explorer")

	projectDeleteCmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete a project",
		RunE:  contextualize(handler.DeleteProject, handler.Panic),
	}
	addProjectFlags(projectDeleteCmd)
	projectDeleteCmd.Flags().BoolP("yes", "y", false, "Skip the confirmation prompt")

	projectListCmd := &cobra.Command{
		Use:   "list",
		Short: "Show all projects of an org",
		RunE:  contextualize(handler.ListProjects, handler.Panic),
	}
	projectListCmd.Flags().String("org", "", "Org name")
	_ = projectListCmd.MarkFlagRequired("org")
	addOutputFlag(projectListCmd)

	projectOpenCmd := &cobra.Command{
		Use:   "open",
		Short: "Open the project in the explorer",
		RunE:  contextualize(handler.OpenProject, handler.Panic),
	}
	addProjectFlags(projectOpenCmd)

	projectBranchesCmd := &cobra.Command{
		Use:   "branches",
		Short: "List the branches of the linked git repository",
		RunE:  contextualize(handler.ListBranches, handler.Panic),
	}
	addProjectFlags(projectBranchesCmd)
	addOutputFlag(projectBranchesCmd)

	projectCmd.AddCommand(projectCreateCmd, projectUpdateCmd, projectDeleteCmd, projectListCmd, projectOpenCmd, projectBranchesCmd)
	rootCmd.AddCommand(projectCmd)

	deploymentCmd := &cobra.Command{
		Use:   "deployment",
		Short: "Manage deployments",
	}
	deploymentListCmd := &cobra.Command{
		Use:   "list",
		Short: "List all deployments",
		RunE:  contextualize(handler.ListDeployments, handler.Panic),
	}
	addProjectFlags(deploymentListCmd)
	addOutputFlag(deploymentListCmd)

	deployCmd := &cobra.Command{
		Use:   "deploy",
		Short: "Deploy a new version",
		RunE:  contextualize(handler.Deploy, handler.Panic),
	}
	addProjectFlags(deployCmd)
	addOutputFlag(deployCmd)
	addDeployFlags(deployCmd)
	deployCmd.Flags().Bool("force", false, "Delete the existing deployment of the same type first")

	deploymentDeleteCmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete a deployment",
		RunE:  contextualize(handler.DeleteDeployment, handler.Panic),
	}
	addProjectFlags(deploymentDeleteCmd)
	deploymentDeleteCmd.Flags().Uint64("id", 0, "Deployment id")
	_ = deploymentDeleteCmd.MarkFlagRequired("id")
	deploymentDeleteCmd.Flags().BoolP("yes", "y", false, "Skip the confirmation prompt")

	redeployCmd := &cobra.Command{
		Use:   "redeploy",
		Short: "Redeploy an existing deployment",
		RunE:  contextualize(handler.Redeploy, handler.Panic),
	}
	addProjectFlags(redeployCmd)
	addDeployFlags(redeployCmd)
	redeployCmd.Flags().Uint64("id", 0, "Deployment id, defaults to the deployment of --type")

	promoteCmd := &cobra.Command{
		Use:   "promote",
		Short: "Promote the stage deployment to primary",
		RunE:  contextualize(handler.Promote, handler.Panic),
	}
	addProjectFlags(promoteCmd)
	promoteCmd.Flags().Uint64("id", 0, "Deployment id, defaults to the stage deployment")

	syncStatusCmd := &cobra.Command{
		Use:   "sync-status",
		Short: "Show the indexing progress of a deployment",
		RunE:  contextualize(handler.SyncStatus, handler.Panic),
	}
	addProjectFlags(syncStatusCmd)
	addSelectorFlags(syncStatusCmd)
	addPollFlags(syncStatusCmd)

	metadataCmd := &cobra.Command{
		Use:   "metadata",
		Short: "Query the metadata of a deployment",
		RunE:  contextualize(handler.Metadata, handler.Panic),
	}
	addProjectFlags(metadataCmd)
	addSelectorFlags(metadataCmd)
	addOutputFlag(metadataCmd)

	deploymentCmd.AddCommand(deploymentListCmd, deployCmd, deploymentDeleteCmd, redeployCmd, promoteCmd, syncStatusCmd, metadataCmd)
	rootCmd.AddCommand(deploymentCmd)

	logsCmd := &cobra.Command{
		Use:   "logs",
		Short: "Search the logs of a project",
		RunE:  contextualize(handler.Logs, handler.Panic),
	}
	addProjectFlags(logsCmd)
	addPollFlags(logsCmd)
	logsCmd.Flags().Bool("stage", false, "Read the logs of the stage deployment")
	logsCmd.Flags().String("level", "info", "Log level")
	logsCmd.Flags().String("keyword", "", "Only show lines containing keyword")

	rootCmd.AddCommand(&cobra.Command{
		Use:         "version",
		Short:       "Get version of the SubQuery CLI",
		Annotations: skipAuth,
		RunE:        contextualize(handler.Version, handler.Panic),
	})
	rootCmd.AddCommand(&cobra.Command{
		Use:         "docs [shortcut]",
		Short:       "List documentation links or open one in the browser",
		Args:        cobra.MaximumNArgs(1),
		Annotations: skipAuth,
		RunE:        contextualize(handler.Docs, handler.Panic),
	})
	rootCmd.AddCommand(&cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 "Generate completion script",
		DisableFlagsInUseLine: true,
		Annotations:           skipAuth,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.ExactValidArgs(1),
		RunE:                  contextualize(handler.Completion, handler.Panic),
	})
	rootCmd.AddCommand(logsCmd)
}

// exitCode maps configuration problems to EX_CONFIG and everything else to 1.
func exitCode(err error) int {
	var configErr *cerrors.ConfigError
	if errors.As(err, &configErr) {
		return cerrors.ExitConfig
	}
	return cerrors.ExitFailure
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err == nil || errors.Is(err, context.Canceled) {
		return
	}

	if strings.Contains(err.Error(), "unknown command") && len(os.Args) > 1 {
		suggStr := "\nS"

		suggestions := rootCmd.SuggestionsFor(os.Args[1])
		if len(suggestions) > 0 {
			suggStr = fmt.Sprintf(" Did you mean \"%s\"?\nIf not, s", suggestions[0])
		}

		fmt.Fprintf(os.Stderr, "Unknown command \"%s\" for \"%s\".%s"+
			"ee \"subquery --help\" for available commands.\n",
			os.Args[1], rootCmd.CommandPath(), suggStr)
	} else {
		fmt.Fprintln(os.Stderr, err)
	}
	os.Exit(exitCode(err))
}
