package main

import (
	"context"
	"farm-advisor/domain"
	"farm-advisor/domain/event"
	"farm-advisor/intake"
	"farm-advisor/observability"
	"farm-advisor/panels"
	"farm-advisor/tui"
	"farm-advisor/weather"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/Netflix/go-env"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/gookit/color"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func loadConfig() (Config, error) {
	_ = godotenv.Load()
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return Config{}, fmt.Errorf("config error: %w", err)
	}
	return config, nil
}

func newRootCommand() *cobra.Command {
	var config, overrides Config

	root := &cobra.Command{
		Use:           "farm-advisor",
		Short:         "Farm advisory assistant for the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			c, err := loadConfig()
			if err != nil {
				return err
			}
			config = applyFlags(cmd.Flags(), c, overrides)
			return nil
		},
	}
	flags := root.PersistentFlags()
	flags.StringVar(&overrides.LogLevel, "log-level", "", "Log level, overrides LOG_LEVEL")
	flags.StringVar(&overrides.LogFile, "log-file", "", "Log file for the terminal ui, overrides LOG_FILE")
	flags.DurationVar(&overrides.ReplyDelay, "reply-delay", 0, "Delay before the advisor answers, overrides REPLY_DELAY")
	flags.IntVar(&overrides.MaxPendingReplies, "max-pending-replies", 0, "Replies allowed in flight, 0 for no limit, overrides MAX_PENDING_REPLIES")

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "Run the interactive login, intake and advisory flow",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(config)
		},
	}
	root.RunE = tuiCmd.RunE

	root.AddCommand(
		tuiCmd,
		newAskCommand(&config),
		newPoliciesCommand(),
		newWeatherCommand(&config),
	)
	return root
}

// applyFlags lets explicitly set flags win over the environment.
func applyFlags(flags *pflag.FlagSet, config, overrides Config) Config {
	if flags.Changed("log-level") {
		config.LogLevel = overrides.LogLevel
	}
	if flags.Changed("log-file") {
		config.LogFile = overrides.LogFile
	}
	if flags.Changed("reply-delay") {
		config.ReplyDelay = overrides.ReplyDelay
	}
	if flags.Changed("max-pending-replies") {
		config.MaxPendingReplies = overrides.MaxPendingReplies
	}
	return config
}

func runTUI(config Config) error {
	log, closeLog, err := fileLogger(config)
	if err != nil {
		return err
	}
	defer closeLog()

	sink := tui.NewSink(log, 64)
	a, err := newApp(log, config, sink)
	if err != nil {
		return err
	}
	defer a.close()

	program := tea.NewProgram(tui.New(log, a.controller, a.weather, sink), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("terminal ui failed: %w", err)
	}
	return nil
}

// fileLogger keeps the terminal clean: logs go to LOG_FILE or nowhere.
func fileLogger(config Config) (*slog.Logger, func(), error) {
	if config.LogFile == "" {
		return slog.New(slog.DiscardHandler), func() {}, nil
	}
	f, err := os.OpenFile(config.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("log file opening failed: %w", err)
	}
	log := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: logs.GetLevelFromString(config.LogLevel)}))
	return log, func() { _ = f.Close() }, nil
}

// replyWaiter signals the first bot message appended after it is registered.
type replyWaiter struct {
	replies chan domain.Message
}

func (w replyWaiter) Consume(_ context.Context, e event.DomainEvent) error {
	appended, ok := e.(event.MessageAppended)
	if !ok || !appended.Message.FromBot() {
		return nil
	}
	select {
	case w.replies <- appended.Message:
	default:
	}
	return nil
}

func newAskCommand(config *Config) *cobra.Command {
	var form intake.Form
	var username string

	cmd := &cobra.Command{
		Use:   "ask [question]",
		Short: "Ask one question about a farm and print the transcript",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logs.GetLoggerFromString(config.LogLevel)
			a, err := newApp(log, *config)
			if err != nil {
				return err
			}
			defer a.close()

			if err := a.controller.Login(username, "cli"); err != nil {
				return err
			}
			profile, err := intake.Submit(form)
			if err != nil {
				return err
			}
			if err := a.controller.SubmitProfile(profile); err != nil {
				return err
			}

			// A blank question schedules no reply, only the greeting is printed.
			question := strings.Join(args, " ")
			if strings.TrimSpace(question) != "" {
				if err := ask(cmd.Context(), a, question, config.ReplyDelay+5*time.Second); err != nil {
					return err
				}
			}

			messages, err := a.controller.Transcript()
			if err != nil {
				return err
			}
			return printTranscript(cmd.OutOrStdout(), messages)
		},
	}
	cmd.Flags().StringVar(&username, "username", "farmer", "Name used to open the session")
	cmd.Flags().StringVar(&form.PlotSize, "plot", "", "Plot size in acres")
	cmd.Flags().StringVar(&form.SoilType, "soil", "", "Soil type: "+strings.Join(domain.SoilTypes, ", "))
	cmd.Flags().StringVar(&form.Location, "location", "", "City, State/Province")
	cmd.Flags().StringVar(&form.CropType, "crop", "", "Crop type: "+strings.Join(domain.CropTypes, ", "))
	return cmd
}

// ask sends the question and waits for the bot reply it triggers.
func ask(ctx context.Context, a *app, question string, timeout time.Duration) error {
	waiter := replyWaiter{replies: make(chan domain.Message, 1)}
	a.fanout.Add(waiter)
	if err := a.controller.SendMessage(question); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	select {
	case <-waiter.replies:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("no reply received: %w", ctx.Err())
	}
}

func printTranscript(w io.Writer, messages []domain.Message) error {
	for _, m := range messages {
		who := color.FgCyan.Render("You")
		if m.FromBot() {
			who = color.FgGreen.Render("Advisor")
		}
		if _, err := fmt.Fprintf(w, "[%s] %s: %s\n", m.CreatedAt.Format("15:04:05"), who, m.Text); err != nil {
			return err
		}
	}
	return nil
}

func newPoliciesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "policies",
		Short: "List government policies and schemes",
		RunE: func(cmd *cobra.Command, args []string) error {
			return panels.RenderPolicies(cmd.OutOrStdout(), panels.Policies())
		},
	}
}

func newWeatherCommand(config *Config) *cobra.Command {
	var location, condition string

	cmd := &cobra.Command{
		Use:   "weather",
		Short: "Show the weather panel for a location",
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logs.GetLoggerFromString(config.LogLevel)
			snapshot := panels.DefaultWeather
			if condition != "" {
				snapshot.Condition = condition
			}
			provider := newWeatherProvider(log, *config, weather.NewStaticProvider(snapshot), observability.NewUnregistered())
			current, err := provider.Current(cmd.Context(), location)
			if err != nil {
				log.Warn("Showing fallback weather", "error", err)
			}
			return panels.RenderWeather(cmd.OutOrStdout(), panels.NewWeatherPanel(location, &current))
		},
	}
	cmd.Flags().StringVar(&location, "location", "", "City, State/Province")
	cmd.Flags().StringVar(&condition, "condition", "", "Override the reported condition")
	_ = cmd.MarkFlagRequired("location")
	return cmd
}
