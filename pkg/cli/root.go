package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/getmockd/ews/pkg/config"
	"github.com/getmockd/ews/pkg/ews"
	"github.com/spf13/cobra"
)

var (
	// Version is injected during build
	Version = "dev"
	// Commit is injected during build
	Commit = "none"
)

// globalFlags are the persistent flags shared by every command.
type globalFlags struct {
	configPath    string
	endpoint      string
	serverVersion string
	logLevel      string
	jsonOutput    bool
}

// app carries what the commands of one invocation share.
type app struct {
	flags  globalFlags
	lookup config.LookupFunc
}

// NewRootCommand builds the ewsctl command tree. Environment variables are
// read through lookup.
func NewRootCommand(lookup config.LookupFunc) *cobra.Command {
	return newRootCommand(&app{lookup: lookup})
}

func newRootCommand(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "ewsctl",
		Short: "ewsctl manages items on an Exchange Web Services endpoint",
		Long: `ewsctl creates, reads, updates, deletes and searches items through the
Exchange Web Services SOAP API.

Connection settings come from a YAML profile (--config or EWS_CONFIG),
EWS_* environment variables and flags, in increasing order of precedence.`,
		Version:       fmt.Sprintf("%s (%s)", Version, Commit),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.flags.configPath, "config", "", "Path to a YAML connection profile")
	pf.StringVar(&a.flags.endpoint, "endpoint", "", "EWS endpoint URL (overrides EWS_ENDPOINT)")
	pf.StringVar(&a.flags.serverVersion, "server-version", "", "Requested server version, e.g. Exchange2013_SP1")
	pf.StringVar(&a.flags.logLevel, "log-level", "", "Log level: debug, info, warn, error")
	pf.BoolVar(&a.flags.jsonOutput, "json", false, "Output command results in JSON format")

	root.AddCommand(
		newGetCmd(a),
		newCreateTaskCmd(a),
		newDeleteCmd(a),
		newFindTasksCmd(a),
		newUpdateSubjectCmd(a),
		newServeCmd(a),
	)
	return root
}

// loadConfig resolves the profile and applies flag overrides.
func (a *app) loadConfig() (*config.Config, error) {
	cfg, err := config.Load(a.flags.configPath, a.lookup)
	if err != nil {
		return nil, err
	}
	override := func(v, key string, dst *string) {
		if v != "" {
			*dst = v
			cfg.Sources[key] = config.SourceFlag
		}
	}
	override(a.flags.endpoint, "endpoint", &cfg.Endpoint)
	override(a.flags.serverVersion, "serverVersion", &cfg.ServerVersion)
	override(a.flags.logLevel, "log.level", &cfg.Log.Level)
	return cfg, nil
}

// service builds the client for one command run.
func (a *app) service(cmd *cobra.Command) (*ews.Service, error) {
	cfg, err := a.loadConfig()
	if err != nil {
		return nil, err
	}
	if res := config.Validate(cfg); !res.IsValid() {
		return nil, fmt.Errorf("invalid configuration:\n%w", res)
	}

	logger := cfg.Logger(cmd.ErrOrStderr())
	return ews.NewService(cfg.Transport(), cfg.ServiceOptions(logger)...), nil
}

// Main runs ewsctl with args and returns the process exit code.
func Main(args []string) int {
	return run(NewRootCommand(os.LookupEnv), args, os.Stdout, os.Stderr)
}

func run(root *cobra.Command, args []string, stdout, stderr io.Writer) int {
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)
	if err := root.Execute(); err != nil {
		fmt.Fprintln(stderr, "Error:", describeError(err))
		return 1
	}
	return 0
}

// Execute runs ewsctl with the process arguments and exits on failure.
func Execute() {
	if code := Main(os.Args[1:]); code != 0 {
		os.Exit(code)
	}
}

// describeError renders Exchange failures with their response code so
// scripts can match on it.
func describeError(err error) string {
	var xe *ews.ExchangeError
	if errors.As(err, &xe) {
		msg := fmt.Sprintf("%s (%s)", xe.Token, xe.Code.Name())
		if xe.ServerMessage != "" {
			msg += ": " + xe.ServerMessage
		}
		return msg
	}
	var fe *ews.FaultError
	if errors.As(err, &fe) {
		return fe.Error()
	}
	return err.Error()
}
