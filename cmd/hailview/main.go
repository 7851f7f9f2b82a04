// Package main provides the hailview CLI for browsing canonical HAIL
// transcripts recorded by AI coding assistants.
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"hailview/internal/format"
	"hailview/internal/model"
	"hailview/internal/store"
)

var version = "dev"

var rootCmd = &cobra.Command{
	Use:     "hailview",
	Short:   "Browse, filter, and search AI coding assistant transcripts",
	Version: version,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("sessions-dir", "",
		"sessions directory (config: sessions_dir, env: HAILVIEW_SESSIONS_DIR)")
	_ = viper.BindPFlag("sessions_dir", rootCmd.PersistentFlags().Lookup("sessions-dir"))

	rootCmd.AddCommand(newListCmd())
	rootCmd.AddCommand(newInfoCmd())
	rootCmd.AddCommand(newViewCmd())
	rootCmd.AddCommand(newSearchCmd())
}

func initConfig() {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(filepath.Join(home, ".config", "hailview"))
	}
	viper.SetEnvPrefix("hailview")
	viper.AutomaticEnv()

	viper.SetDefault("sessions_dir", defaultSessionsDir())
	viper.SetDefault("view_mode", "unified")
	viper.SetDefault("cache_size", 32)

	// A missing config file is fine; flags and env cover everything.
	_ = viper.ReadInConfig()
}

func defaultSessionsDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".hail", "sessions")
}

func newStore() (*store.Store, error) {
	return store.New(viper.GetInt("cache_size"))
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "hailview: %v\n", err)
		os.Exit(1)
	}
}

func newListCmd() *cobra.Command {
	var (
		tool         string
		afterStr     string
		beforeStr    string
		limit        int
		formatFlag   string
		noHeader     bool
		summaryWidth int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List sessions in reverse chronological order",
		RunE: func(cmd *cobra.Command, _ []string) error {
			after, err := parseTimeFlag("after", afterStr)
			if err != nil {
				return err
			}
			before, err := parseTimeFlag("before", beforeStr)
			if err != nil {
				return err
			}

			st, err := newStore()
			if err != nil {
				return err
			}

			result, err := st.List(store.ListOptions{
				Root:       viper.GetString("sessions_dir"),
				Tool:       tool,
				After:      after,
				Before:     before,
				Limit:      limit,
				MaxSummary: summaryWidth,
			})
			if err != nil {
				return err
			}

			errs := cmd.ErrOrStderr()
			for _, warn := range result.Warnings {
				fmt.Fprintf(errs, "warning: %v\n", warn) //nolint:errcheck
			}

			return format.WriteSummaries(cmd.OutOrStdout(), result.Summaries, !noHeader, formatFlag)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&tool, "tool", "", "only sessions recorded by the given tool")
	flags.StringVar(&afterStr, "after", "", "include sessions starting on/after the given RFC3339 timestamp or date")
	flags.StringVar(&beforeStr, "before", "", "include sessions starting on/before the given RFC3339 timestamp or date")
	flags.IntVar(&limit, "limit", 0, "limit number of sessions returned (0 means no limit)")
	flags.StringVar(&formatFlag, "format", "table", "output format: table, plain, json, or jsonl")
	flags.BoolVar(&noHeader, "no-header", false, "omit header row")
	flags.IntVar(&summaryWidth, "summary-width", 160, "maximum characters included in the summary column")

	return cmd
}

type infoPayload struct {
	SessionID       string      `json:"session_id"`
	Path            string      `json:"path"`
	Provider        string      `json:"provider"`
	Model           string      `json:"model"`
	Tool            string      `json:"tool"`
	ToolVersion     string      `json:"tool_version,omitempty"`
	Title           string      `json:"title,omitempty"`
	Tags            []string    `json:"tags,omitempty"`
	CreatedAt       string      `json:"created_at,omitempty"`
	Stats           model.Stats `json:"stats"`
	DurationDisplay string      `json:"duration_display"`
}

func newInfoCmd() *cobra.Command {
	var formatFlag string

	cmd := &cobra.Command{
		Use:   "info <session>",
		Short: "Show session metadata and derived stats",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := newStore()
			if err != nil {
				return err
			}
			session, path, err := resolveSession(st, args[0])
			if err != nil {
				return err
			}

			stats := session.Stats
			if stats.EventCount == 0 {
				stats = model.DeriveStats(session.Events)
			}

			createdAt := ""
			if !session.Context.CreatedAt.IsZero() {
				createdAt = session.Context.CreatedAt.Format(time.RFC3339)
			}

			payload := infoPayload{
				SessionID:       session.ID,
				Path:            path,
				Provider:        session.Agent.Provider,
				Model:           session.Agent.Model,
				Tool:            session.Agent.Tool,
				ToolVersion:     session.Agent.ToolVersion,
				Title:           session.Context.Title,
				Tags:            session.Context.Tags,
				CreatedAt:       createdAt,
				Stats:           stats,
				DurationDisplay: format.FormatDuration(stats.DurationSeconds),
			}

			switch strings.ToLower(formatFlag) {
			case "json":
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(payload)
			case "text":
				renderInfoText(cmd, payload)
				return nil
			default:
				return fmt.Errorf("unsupported format: %s", formatFlag)
			}
		},
	}

	cmd.Flags().StringVar(&formatFlag, "format", "text", "output format: text or json")
	return cmd
}

func renderInfoText(cmd *cobra.Command, payload infoPayload) {
	out := cmd.OutOrStdout()
	const labelWidth = 14
	kv := func(label, value string) {
		fmt.Fprintf(out, "%-*s: %s\n", labelWidth, label, value) //nolint:errcheck
	}

	kv("Session ID", payload.SessionID)
	kv("Tool", payload.Tool)
	kv("Provider", payload.Provider)
	kv("Model", payload.Model)
	if payload.Title != "" {
		kv("Title", payload.Title)
	}
	if len(payload.Tags) > 0 {
		kv("Tags", strings.Join(payload.Tags, ", "))
	}
	if payload.CreatedAt != "" {
		kv("Created At", payload.CreatedAt)
	}
	kv("Duration", payload.DurationDisplay)
	kv("Events", fmt.Sprintf("%d", payload.Stats.EventCount))
	kv("Messages", fmt.Sprintf("%d", payload.Stats.MessageCount))
	kv("Tool Calls", fmt.Sprintf("%d", payload.Stats.ToolCallCount))
	kv("Tasks", fmt.Sprintf("%d", payload.Stats.TaskCount))
	kv("Files Changed", fmt.Sprintf("%d", payload.Stats.FilesChanged))
	kv("Lines", fmt.Sprintf("+%d -%d", payload.Stats.LinesAdded, payload.Stats.LinesRemoved))
	kv("Path", payload.Path)
}

// resolveSession accepts a file path or a session id under sessions_dir.
func resolveSession(st *store.Store, arg string) (*model.Session, string, error) {
	if arg == "" {
		return nil, "", errors.New("session identifier is empty")
	}

	if info, err := os.Stat(arg); err == nil && !info.IsDir() {
		session, err := st.Load(arg)
		return session, arg, err
	}

	root := viper.GetString("sessions_dir")
	candidate := filepath.Join(root, arg)
	if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
		session, err := st.Load(candidate)
		return session, candidate, err
	}

	path, err := st.FindSessionPath(root, arg)
	if err != nil {
		return nil, "", err
	}
	session, err := st.Load(path)
	return session, path, err
}

func parseTimeFlag(name, value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return &t, nil
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil, fmt.Errorf("invalid --%s value: %s", name, value)
	}
	return &t, nil
}
