package main

import (
	"os"
	"time"

	"notify-complete/internal/config"
	"notify-complete/internal/notifier"
	"notify-complete/internal/output"
	"notify-complete/internal/runner"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	cfgFile      string
	profileName  string
	title        string
	message      string
	timeout      string
	urgency      string
	showExitCode string
	verbose      bool

	// status mirrors the child's exit code once the run finishes.
	status int
)

var rootCmd = &cobra.Command{
	Use:   "notify-complete [flags] command [args...]",
	Short: "Run a command and notify when it finishes",
	Long: `notify-complete runs the given command, waits for it to finish and
sends a desktop notification describing the outcome. Notification
defaults come from named profiles in the configuration file and can be
overridden per run on the command line.`,
	Args:         cobra.MinimumNArgs(1),
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	// Everything after the first positional token belongs to the child
	// command, including flag-like tokens.
	rootCmd.Flags().SetInterspersed(false)
	rootCmd.Flags().StringVarP(&cfgFile, "config", "c", "", "config file (default is <user config dir>/notify-complete/config.toml)")
	rootCmd.Flags().StringVarP(&profileName, "profile", "p", config.DefaultProfileName, "name of the profile to use for the notification")
	rootCmd.Flags().StringVarP(&title, "title", "t", "", "title of the notification")
	rootCmd.Flags().StringVarP(&message, "message", "m", "", "notification contents")
	rootCmd.Flags().StringVarP(&timeout, "timeout", "o", "", "notification timeout in ms or 'never'/'default'")
	rootCmd.Flags().StringVarP(&urgency, "urgency", "u", "", "notification urgency (low, normal, critical)")
	rootCmd.Flags().StringVar(&showExitCode, "show-exit-code", "", "when to include the exit code in the body (on-failure, always, never)")
	rootCmd.Flags().BoolVar(&verbose, "verbose", false, "verbose logs")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
	os.Exit(status)
}

func run(cmd *cobra.Command, args []string) error {
	log := initLogger(verbose)

	if cfgFile == "" {
		path, err := config.Path()
		if err != nil {
			log.Warn().Err(err).Msg("cannot determine user config directory")
		} else {
			cfgFile = path
		}
	}

	store := config.Load(cfgFile, log)
	eff := config.Resolve(store.Lookup(profileName), overrides(cmd, args), log)

	res, err := runner.Run(eff.Command, log)
	if err != nil {
		return err
	}
	status = res.StatusCode()

	if err := notifier.New(log).Send(output.Compose(eff, res)); err != nil {
		log.Warn().Err(err).Msg("notification failed")
	}
	return nil
}

// overrides picks up only the flags the user actually set, so unset
// flags fall through to the profile's values.
func overrides(cmd *cobra.Command, args []string) config.Overrides {
	o := config.Overrides{Command: args}
	set := func(name string, v *string) *string {
		if cmd.Flags().Changed(name) {
			return v
		}
		return nil
	}
	o.Title = set("title", &title)
	o.Message = set("message", &message)
	o.Timeout = set("timeout", &timeout)
	o.Urgency = set("urgency", &urgency)
	o.ShowExitCode = set("show-exit-code", &showExitCode)
	return o
}

func initLogger(verbose bool) zerolog.Logger {
	out := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}
