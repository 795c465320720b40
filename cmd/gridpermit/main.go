package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"gridpermit/internal/app"
	"gridpermit/internal/config"
	"gridpermit/internal/domain"
	"gridpermit/internal/engine"
	"gridpermit/internal/logging"
	"gridpermit/internal/repo"
	"gridpermit/internal/server"
	"gridpermit/internal/workflow"
)

var rootCmd = &cobra.Command{
	Use:   "gridpermit",
	Short: "GridPermit CLI",
	Long: `GridPermit tracks permitting procedures for power-line projects.
- Procedure (Pfad): NABEG for lines of 220 kV and above, EnWG below.
- Project: one line with its stages, route sections and permits.
- Stage: a legal step of the procedure; its status follows from its tasks.
- Task: checklist and form fields; complete, save as draft or reopen.
- Event log: diary of changes (sqlite store), view with 'gridpermit log tail'.`,
	SilenceUsage: true,
}

func main() {
	cobra.OnInitialize(initConfig)
	addPersistentFlags()
	registerCommands()
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func initConfig() {
	viper.SetEnvPrefix("GRIDPERMIT")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}

func addPersistentFlags() {
	flags := rootCmd.PersistentFlags()
	flags.StringP("workspace", "w", ".", "workspace directory")
	flags.StringP("config", "c", "", "config file (default <workspace>/gridpermit.yml)")
	flags.Bool("json", false, "output JSON")
	flags.String("driver", "", "store driver: memory or sqlite")
	flags.String("log-level", "", "log level: debug, info, warn, error")
	flags.String("lang", "", "output language: de or en")
	for _, name := range []string{"workspace", "config", "json", "driver", "log-level", "lang"} {
		_ = viper.BindPFlag(name, flags.Lookup(name))
	}
}

func registerCommands() {
	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(projectCmd())
	rootCmd.AddCommand(taskCmd())
	rootCmd.AddCommand(templateCmd())
	rootCmd.AddCommand(logCmd())
	rootCmd.AddCommand(configCmd())
}

func serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start HTTP API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd.Context(), func(ctx context.Context, a *app.App) error {
				cfg := a.Config
				handler, err := server.New(server.Config{
					Engine:      a.Engine,
					BasePath:    cfg.Server.BasePath,
					Auth:        server.AuthConfig{JWTSecret: cfg.Auth.JWTSecret},
					CORSOrigins: cfg.Server.CORSOrigins,
					StaticDir:   cfg.Server.StaticDir,
					DefaultLang: outputLang(cfg),
					Log:         a.Log.Named("http"),
				})
				if err != nil {
					return err
				}
				srv := &http.Server{Addr: cfg.Server.Addr, Handler: handler, ReadHeaderTimeout: 10 * time.Second}
				go func() {
					<-ctx.Done()
					shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
					defer cancel()
					_ = srv.Shutdown(shutdownCtx)
				}()
				a.Log.Info("serving GridPermit API",
					zap.String("addr", cfg.Server.Addr),
					zap.String("base_path", cfg.Server.BasePath),
					zap.String("driver", cfg.Store.Driver),
					zap.Bool("auth", cfg.Auth.JWTSecret != ""))
				fmt.Printf("Serving GridPermit API on http://%s%s (OpenAPI at /openapi.json, Swagger UI at /docs)\n", cfg.Server.Addr, cfg.Server.BasePath)
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					return err
				}
				return nil
			})
		},
	}
	cmd.Flags().String("addr", "", "listen address")
	cmd.Flags().String("base-path", "", "API base path")
	cmd.Flags().String("static-dir", "", "directory of the built frontend")
	for _, name := range []string{"addr", "base-path", "static-dir"} {
		_ = viper.BindPFlag(name, cmd.Flags().Lookup(name))
	}
	return cmd
}

func projectCmd() *cobra.Command {
	prj := &cobra.Command{Use: "project", Short: "Manage projects"}
	prj.AddCommand(projectListCmd())
	prj.AddCommand(projectCreateCmd())
	prj.AddCommand(projectShowCmd())
	return prj
}

func projectListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List projects",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd.Context(), func(ctx context.Context, a *app.App) error {
				items, err := a.Engine.ListProjects(ctx)
				if err != nil {
					return err
				}
				if viper.GetBool("json") {
					return printJSON(items)
				}
				tw := newTable()
				tw.AppendHeader(table.Row{"ID", "Name", "Pfad", "kV", "Stage", "Sections", "Created"})
				for _, p := range items {
					tw.AppendRow(table.Row{p.ID, p.Name, p.Pfad, p.KVLevel, p.CurrentStageIndex, len(p.Sections), p.CreatedAt.Format(time.DateOnly)})
				}
				tw.Render()
				return nil
			})
		},
	}
}

func projectCreateCmd() *cobra.Command {
	var in engine.CreateProjectInput
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create project",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd.Context(), func(ctx context.Context, a *app.App) error {
				wf, err := a.Engine.CreateProject(ctx, in)
				if err != nil {
					return err
				}
				warnEphemeral(a, wf.Project.ID)
				if viper.GetBool("json") {
					return printJSON(wf)
				}
				fmt.Printf("created %s (%s, %d stages)\n", wf.Project.ID, wf.Project.Pfad, len(wf.Project.Stages))
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&in.Name, "name", "", "project name")
	cmd.Flags().IntVar(&in.KVLevel, "kv", 380, "voltage level in kV")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}

func projectShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <project-id>",
		Short: "Show project workflow",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd.Context(), func(ctx context.Context, a *app.App) error {
				wf, err := a.Engine.Workflow(ctx, args[0], outputLang(a.Config))
				if err != nil {
					return err
				}
				if viper.GetBool("json") {
					return printJSON(wf)
				}
				fmt.Printf("%s  %s  (%s, %d kV)\n", wf.Project.ID, wf.Project.Name, wf.Project.Pfad, wf.Project.KVLevel)
				printStages(wf.Template, "", wf.Project.Stages, wf.Project.CurrentStageIndex)
				for _, s := range wf.Project.Sections {
					fmt.Printf("\n%s  %s  km %.1f-%.1f  %s\n", s.ID, s.Name, s.KmStart, s.KmEnd, s.Region)
					printStages(wf.Template, s.ID, s.Stages, s.CurrentStageIndex)
				}
				return nil
			})
		},
	}
}

func printStages(tpl domain.ProcessTemplate, section string, stages []domain.StageInstance, current int) {
	if len(stages) == 0 {
		return
	}
	titles := make(map[string]string, len(tpl.Stages))
	for _, st := range tpl.Stages {
		titles[st.ID] = st.Title
	}
	tw := newTable()
	if section != "" {
		tw.SetTitle(section)
	}
	tw.AppendHeader(table.Row{"", "#", "Stage", "Status", "Tasks done"})
	for i, st := range stages {
		marker := ""
		if i == current {
			marker = ">"
		}
		done := 0
		for _, t := range st.Tasks {
			if t.Status == domain.TaskDone {
				done++
			}
		}
		tw.AppendRow(table.Row{marker, i, titles[st.TemplateID], st.Status, fmt.Sprintf("%d/%d", done, len(st.Tasks))})
	}
	tw.Render()
}

const (
	taskComplete = "complete"
	taskSave     = "save"
	taskReopen   = "reopen"
)

func taskCmd() *cobra.Command {
	tc := &cobra.Command{Use: "task", Short: "Work on project tasks"}
	tc.AddCommand(taskActionCmd(taskComplete, "Complete task, replacing its form data and checklist"))
	tc.AddCommand(taskActionCmd(taskSave, "Save a task draft"))
	tc.AddCommand(taskActionCmd(taskReopen, "Reopen a task"))
	return tc
}

func taskActionCmd(action, short string) *cobra.Command {
	var projectID string
	var fields map[string]string
	var checked []int
	cmd := &cobra.Command{
		Use:   action + " <task-id>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd.Context(), func(ctx context.Context, a *app.App) error {
				in := engine.TaskInput{FormData: fields, CompletedChecklist: checked}
				p, err := runTaskAction(ctx, a.Engine, action, projectID, args[0], in, outputLang(a.Config))
				if err != nil {
					return err
				}
				warnEphemeral(a, p.ID)
				if viper.GetBool("json") {
					return printJSON(p)
				}
				loc, ok := workflow.FindTask(&p, args[0])
				if t := workflow.Task(&p, loc); ok && t != nil {
					fmt.Printf("%s %s: %s\n", action, args[0], t.Status)
				}
				return nil
			})
		},
	}
	cmd.Flags().StringVarP(&projectID, "project", "p", "", "project id")
	_ = cmd.MarkFlagRequired("project")
	if action != taskReopen {
		cmd.Flags().StringToStringVar(&fields, "field", nil, "form field, name=value (repeatable)")
		cmd.Flags().IntSliceVar(&checked, "check", nil, "checked checklist indices, e.g. 0,2")
	}
	return cmd
}

func runTaskAction(ctx context.Context, e engine.Engine, action, projectID, taskID string, in engine.TaskInput, lang domain.Lang) (domain.Project, error) {
	switch action {
	case taskComplete:
		return e.CompleteTask(ctx, projectID, taskID, in, lang)
	case taskSave:
		return e.SaveTask(ctx, projectID, taskID, in, lang)
	case taskReopen:
		return e.ReopenTask(ctx, projectID, taskID, lang)
	default:
		return domain.Project{}, fmt.Errorf("unknown task action %q", action)
	}
}

func templateCmd() *cobra.Command {
	tpl := &cobra.Command{Use: "template", Short: "Inspect procedure templates"}
	tpl.AddCommand(templateShowCmd())
	return tpl
}

func templateShowCmd() *cobra.Command {
	var pfad string
	var kv int
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the stages of a procedure",
		RunE: func(cmd *cobra.Command, args []string) error {
			p := domain.Pfad(pfad)
			if kv > 0 {
				p = workflow.DeterminePfad(kv)
			}
			if !p.Valid() {
				return fmt.Errorf("unknown pfad %q (want NABEG or EnWG)", pfad)
			}
			cfg, err := resolveConfig(viper.GetViper())
			if err != nil {
				return err
			}
			t := workflow.Template(p, outputLang(cfg))
			if viper.GetBool("json") {
				return printJSON(t)
			}
			fmt.Printf("%s: %s\n", t.Pfad, t.Label)
			tw := newTable()
			tw.AppendHeader(table.Row{"#", "ID", "Stage", "Law", "Tasks"})
			for i, st := range t.Stages {
				tw.AppendRow(table.Row{i, st.ID, st.Title, st.LawReference, len(st.Tasks)})
			}
			tw.Render()
			return nil
		},
	}
	cmd.Flags().StringVar(&pfad, "pfad", string(domain.PfadNABEG), "procedure: NABEG or EnWG")
	cmd.Flags().IntVar(&kv, "kv", 0, "derive the procedure from a voltage level instead")
	return cmd
}

func logCmd() *cobra.Command {
	l := &cobra.Command{Use: "log", Short: "Inspect the event log"}
	l.AddCommand(logTailCmd())
	return l
}

func logTailCmd() *cobra.Command {
	var n int
	var f repo.EventFilter
	cmd := &cobra.Command{
		Use:   "tail",
		Short: "Tail events",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd.Context(), func(ctx context.Context, a *app.App) error {
				if a.DB == nil {
					return errors.New("the event log needs the sqlite driver (--driver sqlite)")
				}
				events, err := repo.SQLite{DB: a.DB}.LatestEvents(ctx, n, f)
				if err != nil {
					return err
				}
				if viper.GetBool("json") {
					return printJSON(events)
				}
				tw := newTable()
				tw.AppendHeader(table.Row{"ID", "TS", "Type", "Project", "Entity", "Payload"})
				for _, e := range events {
					tw.AppendRow(table.Row{e.ID, e.TS, e.Type, e.ProjectID, e.EntityKind + ":" + e.EntityID, e.Payload})
				}
				tw.Render()
				return nil
			})
		},
	}
	cmd.Flags().IntVar(&n, "n", 20, "number of events")
	cmd.Flags().StringVar(&f.ProjectID, "project", "", "project id")
	cmd.Flags().StringVar(&f.Type, "type", "", "event type filter")
	cmd.Flags().StringVar(&f.EntityKind, "entity-kind", "", "entity kind")
	cmd.Flags().StringVar(&f.EntityID, "entity-id", "", "entity id")
	cmd.Flags().Int64Var(&f.Before, "before", 0, "only events with a smaller id")
	return cmd
}

func configCmd() *cobra.Command {
	cfg := &cobra.Command{Use: "config", Short: "Inspect configuration"}
	cfg.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show effective config",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := resolveConfig(viper.GetViper())
			if err != nil {
				return err
			}
			if viper.GetBool("json") {
				return printJSON(c)
			}
			return yaml.NewEncoder(os.Stdout).Encode(c)
		},
	})
	cfg.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Write a default gridpermit.yml to the workspace",
		RunE: func(cmd *cobra.Command, args []string) error {
			path := config.Path(viper.GetString("workspace"))
			if _, err := os.Stat(path); err == nil {
				return fmt.Errorf("%s already exists", path)
			}
			if err := os.WriteFile(path, []byte(config.GenerateDefault()), 0o644); err != nil {
				return err
			}
			fmt.Println("wrote", path)
			return nil
		},
	})
	return cfg
}

// --- helpers ---

// resolveConfig loads the config file and overlays flags and GRIDPERMIT_* env.
func resolveConfig(v *viper.Viper) (*config.Config, error) {
	workspace := v.GetString("workspace")
	path := v.GetString("config")
	if path == "" {
		path = config.Path(workspace)
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	if v.IsSet("workspace") && workspace != "" {
		cfg.Store.Workspace = workspace
	}
	overlay := map[string]*string{
		"driver":     &cfg.Store.Driver,
		"log-level":  &cfg.Log.Level,
		"log-format": &cfg.Log.Format,
		"lang":       &cfg.DefaultLang,
		"addr":       &cfg.Server.Addr,
		"base-path":  &cfg.Server.BasePath,
		"static-dir": &cfg.Server.StaticDir,
		"jwt-secret": &cfg.Auth.JWTSecret,
	}
	for key, dst := range overlay {
		if s := v.GetString(key); s != "" {
			*dst = s
		}
	}
	if v.IsSet("seed-demo") {
		cfg.Seed.Demo = v.GetBool("seed-demo")
	}
	if origins := v.GetStringSlice("cors-origins"); len(origins) > 0 {
		cfg.Server.CORSOrigins = origins
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func withApp(ctx context.Context, fn func(context.Context, *app.App) error) error {
	cfg, err := resolveConfig(viper.GetViper())
	if err != nil {
		return err
	}
	log, err := logging.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()
	a, err := app.Open(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer a.Close()
	return fn(ctx, a)
}

// warnEphemeral reminds that changes are lost with the memory driver.
func warnEphemeral(a *app.App, projectID string) {
	if a.Config.Store.Driver != config.DriverMemory {
		return
	}
	a.Log.Warn("memory store: changes are discarded on exit, use --driver sqlite to keep them",
		zap.String("project_id", projectID))
}

func outputLang(cfg *config.Config) domain.Lang {
	return domain.ParseLang(cfg.DefaultLang)
}

func newTable() table.Writer {
	tw := table.NewWriter()
	tw.SetOutputMirror(os.Stdout)
	return tw
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
