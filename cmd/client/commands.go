package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/MKhiriev/go-gtd/internal/client"
	"github.com/MKhiriev/go-gtd/internal/config"
	"github.com/MKhiriev/go-gtd/internal/tui"
	"github.com/MKhiriev/go-gtd/models"
	"github.com/spf13/cobra"
)

const listCacheTTL = 30 * time.Second

type rootOptions struct {
	configPath string
	gatewayURL string
	dsn        string
	logDir     string
	pageSize   int
}

func (o *rootOptions) override() *config.StructuredConfig {
	return &config.StructuredConfig{
		JSONFilePath: o.configPath,
		Client: config.Client{
			GatewayURL: o.gatewayURL,
			DSN:        o.dsn,
			LogDir:     o.logDir,
			PageSize:   o.pageSize,
		},
	}
}

// withRuntime opens the runtime for one command invocation.
func (o *rootOptions) withRuntime(run func(ctx context.Context, rt *runtime, cmd *cobra.Command, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		rt, err := newRuntime(ctx, o.override())
		if err != nil {
			return err
		}
		defer rt.Close()
		return run(ctx, rt, cmd, args)
	}
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:           "gtd",
		Short:         "Getting Things Done in the terminal",
		Long:          "gtd manages projects and tasks through the GTD gateway. Without a subcommand it opens the terminal UI.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          opts.withRuntime(runTUI),
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "path to a JSON or YAML config file")
	flags.StringVar(&opts.gatewayURL, "gateway", "", "gateway base URL")
	flags.StringVar(&opts.dsn, "db", "", "local preferences database")
	flags.StringVar(&opts.logDir, "log-dir", "", "directory for client.log")
	flags.IntVar(&opts.pageSize, "page-size", 0, "initial list page size")

	root.AddCommand(
		&cobra.Command{
			Use:   "tui",
			Short: "Open the terminal UI",
			Args:  cobra.NoArgs,
			RunE:  opts.withRuntime(runTUI),
		},
		newLoginCmd(opts),
		&cobra.Command{
			Use:   "logout",
			Short: "End the saved session",
			Args:  cobra.NoArgs,
			RunE:  opts.withRuntime(runLogout),
		},
		&cobra.Command{
			Use:     "add <text...>",
			Short:   "Quick-add a task, e.g. gtd add Call Anna #Errands @home !2 tomorrow",
			Args:    cobra.MinimumNArgs(1),
			Example: "  gtd add Buy milk #Errands today",
			RunE:    opts.withRuntime(runAdd),
		},
		&cobra.Command{
			Use:   "today",
			Short: "List the open tasks planned for today",
			Args:  cobra.NoArgs,
			RunE:  opts.withRuntime(runToday),
		},
		&cobra.Command{
			Use:   "stats",
			Short: "Show the dashboard counters",
			Args:  cobra.NoArgs,
			RunE:  opts.withRuntime(runStats),
		},
		&cobra.Command{
			Use:   "watch",
			Short: "Print change events as JSON lines until interrupted",
			Args:  cobra.NoArgs,
			RunE:  opts.withRuntime(runWatch),
		},
		&cobra.Command{
			Use:   "version",
			Short: "Print build information",
			Args:  cobra.NoArgs,
			Run: func(cmd *cobra.Command, _ []string) {
				printBuildInfo(cmd.OutOrStdout(), buildInfo())
			},
		},
	)
	return root
}

func newLoginCmd(opts *rootOptions) *cobra.Command {
	var (
		login    string
		password string
		register bool
	)
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and save the session locally",
		Args:  cobra.NoArgs,
		RunE: opts.withRuntime(func(ctx context.Context, rt *runtime, cmd *cobra.Command, _ []string) error {
			login = strings.TrimSpace(login)
			if login == "" || password == "" {
				return errors.New("both --login and --password are required")
			}

			var (
				user models.User
				err  error
			)
			if register {
				user, err = rt.api.Register(ctx, login, password)
			} else {
				user, err = rt.api.Login(ctx, login, password)
			}
			if err != nil {
				rt.log.Error().Err(err).Str("login", login).Msg("authentication failed")
				return err
			}
			if err := rt.prefs.SaveSessionID(ctx, rt.api.SessionID()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s\n", user.Login)
			return nil
		}),
	}
	cmd.Flags().StringVarP(&login, "login", "u", "", "account login")
	cmd.Flags().StringVarP(&password, "password", "p", "", "account password")
	cmd.Flags().BoolVar(&register, "register", false, "create the account first")
	return cmd
}

func runTUI(ctx context.Context, rt *runtime, _ *cobra.Command, _ []string) error {
	features, err := rt.api.Features(ctx)
	if err != nil {
		rt.log.Warn().Err(err).Msg("features not loaded")
		features = models.Features{Auth: true}
	}
	loggedIn := !features.Auth || rt.api.SessionID() != ""

	ui := tui.New(rt.api, rt.prefs, tui.Options{
		PageSize:    rt.cfg.PageSize,
		MaxPageSize: rt.cfg.MaxPageSize,
		CacheTTL:    listCacheTTL,
		Realtime:    features.Realtime,
	}, rt.log)

	logout, err := ui.Run(ctx, loggedIn)
	if err != nil {
		return err
	}
	if logout {
		rt.log.Info().Msg("user logged out")
	}
	return nil
}

func runLogout(ctx context.Context, rt *runtime, cmd *cobra.Command, _ []string) error {
	if rt.api.SessionID() == "" {
		fmt.Fprintln(cmd.OutOrStdout(), "Not logged in")
		return nil
	}
	if err := rt.api.Logout(ctx); err != nil {
		rt.log.Warn().Err(err).Msg("logout request failed")
	}
	if err := rt.prefs.SaveSessionID(ctx, ""); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), "Logged out")
	return nil
}

func runAdd(ctx context.Context, rt *runtime, cmd *cobra.Command, args []string) error {
	if err := rt.requireSession(ctx); err != nil {
		return err
	}
	task, err := rt.api.QuickAdd(ctx, strings.Join(args, " "))
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Added #%d %s\n", task.ID, task.TaskName)
	return nil
}

func runToday(ctx context.Context, rt *runtime, cmd *cobra.Command, _ []string) error {
	if err := rt.requireSession(ctx); err != nil {
		return err
	}
	page, err := client.FetchAll(ctx, client.Query{}, rt.cfg.MaxPageSize,
		func(ctx context.Context, q client.Query) (models.ViewPage[models.TaskView], error) {
			return rt.api.Tasks(ctx, client.ViewToday, q)
		})
	if err != nil {
		return err
	}
	printTasks(cmd.OutOrStdout(), page.Items)
	return nil
}

func runStats(ctx context.Context, rt *runtime, cmd *cobra.Command, _ []string) error {
	if err := rt.requireSession(ctx); err != nil {
		return err
	}
	stats, err := rt.api.Stats(ctx)
	if err != nil {
		return err
	}
	printStats(cmd.OutOrStdout(), stats)
	return nil
}

func runWatch(ctx context.Context, rt *runtime, cmd *cobra.Command, _ []string) error {
	if err := rt.requireSession(ctx); err != nil {
		return err
	}
	enc := json.NewEncoder(cmd.OutOrStdout())
	return rt.api.Watch(ctx, func(e models.Event) {
		if err := enc.Encode(e); err != nil {
			rt.log.Error().Err(err).Msg("error writing event")
		}
	})
}

func printTasks(w io.Writer, tasks []models.TaskView) {
	if len(tasks) == 0 {
		fmt.Fprintln(w, "Nothing planned for today")
		return
	}
	for _, t := range tasks {
		line := fmt.Sprintf("%5d  %s", t.ID, t.TaskName)
		if t.Priority > 0 {
			line += fmt.Sprintf("  !%d", t.Priority)
		}
		if t.ProjectName != "" {
			line += "  (" + t.ProjectName + ")"
		}
		fmt.Fprintln(w, line)
	}
}

func printStats(w io.Writer, s models.DashboardStats) {
	fmt.Fprintf(w, "Projects: %d active, %d this week, %d done, %d total\n",
		s.ActiveProjects, s.WeeklyProjects, s.CompletedProjects, s.TotalProjects)
	fmt.Fprintf(w, "Tasks:    %d active, %d today, %d this week, %d waiting, %d overdue, %d done\n",
		s.ActiveTasks, s.TodayTasks, s.WeekTasks, s.WaitingTasks, s.OverdueTasks, s.CompletedTasks)
	fmt.Fprintf(w, "Fields:   %d\n", s.TotalFields)
}

func printBuildInfo(w io.Writer, info models.AppBuildInfo) {
	fmt.Fprintf(w, "Build version: %s\n", info.BuildVersion())
	fmt.Fprintf(w, "Build date: %s\n", info.BuildDate())
	fmt.Fprintf(w, "Build commit: %s\n", info.BuildCommit())
}
