package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"hailview/internal/filter"
	"hailview/internal/format"
	"hailview/internal/search"
	"hailview/internal/timeline"
)

func newViewCmd() *cobra.Command {
	var (
		modeFlag        string
		filterKeys      string
		showBoilerplate bool
		showFilters     bool
		showBody        bool
		query           string
		wrap            int
		forceColor      bool
		forceNoColor    bool
	)

	cmd := &cobra.Command{
		Use:   "view <session>",
		Short: "Render a session timeline with filtering and lane rails",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := newStore()
			if err != nil {
				return err
			}
			session, _, err := resolveSession(st, args[0])
			if err != nil {
				return err
			}
			events := session.Events

			if modeFlag == "" {
				modeFlag = viper.GetString("view_mode")
			}
			mode, err := filter.ParseViewMode(modeFlag)
			if err != nil {
				return err
			}

			visible := timeline.VisibleIndices(events)
			if showBoilerplate {
				visible = nil
			}

			options, err := filter.Options(session.Agent.Tool, events, visible, mode)
			var unsupported *filter.UnsupportedViewModeError
			if errors.As(err, &unsupported) {
				fmt.Fprintf(cmd.ErrOrStderr(), "hailview: %v, falling back to unified view\n", err) //nolint:errcheck
				mode = filter.ViewUnified
				options, err = filter.Options(session.Agent.Tool, events, visible, mode)
			}
			if err != nil {
				return err
			}

			enabled := filter.EnableAll(options)
			if filterKeys != "" {
				enabled = map[string]bool{}
				for _, key := range strings.Split(filterKeys, ",") {
					key = strings.TrimSpace(key)
					if key == "" {
						continue
					}
					if !knownKey(options, key) {
						return fmt.Errorf("unknown filter key: %s", key)
					}
					enabled[key] = true
				}
			}

			rendered, err := filter.Apply(session.Agent.Tool, events, visible, mode, enabled)
			if err != nil {
				return err
			}

			if query != "" {
				index := search.BuildIndex(events)
				rendered = index.Matches(query, rendered)
			}

			pairs := timeline.PairToolCallResults(events, nil)
			lanes := timeline.AssignLanes(events, rendered)

			out := cmd.OutOrStdout()
			useColor := format.ResolveColor(forceColor, forceNoColor, out)
			outFile, _ := out.(*os.File)
			width := format.DetermineWidth(outFile, wrap)

			if showFilters {
				format.WriteOptions(out, options, enabled, useColor)
			}

			lines := format.RenderTimeline(events, rendered, lanes, pairs, format.TimelineOptions{
				Width:    width,
				Color:    useColor,
				ShowBody: showBody,
			})
			for _, line := range lines {
				if _, err := fmt.Fprintln(out, line); err != nil {
					return err
				}
			}
			if len(rendered) == 0 {
				fmt.Fprintln(out, "(no events match)") //nolint:errcheck
			}
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&modeFlag, "mode", "", "taxonomy mode: unified or native (config: view_mode)")
	flags.StringVar(&filterKeys, "filter", "", "comma-separated option keys to enable (default: all)")
	flags.BoolVar(&showBoilerplate, "show-boilerplate", false, "include tool-internal noise events")
	flags.BoolVar(&showFilters, "show-filters", false, "print the option table above the timeline")
	flags.BoolVar(&showBody, "body", false, "print event content under each timeline line")
	flags.StringVar(&query, "search", "", "narrow the timeline to events containing the text")
	flags.IntVar(&wrap, "wrap", 0, "render width (0 means auto-detect)")
	flags.BoolVar(&forceColor, "color", false, "force ANSI colors on")
	flags.BoolVar(&forceNoColor, "no-color", false, "force ANSI colors off")

	return cmd
}

func knownKey(options []filter.Option, key string) bool {
	for _, opt := range options {
		if opt.Key == key {
			return true
		}
	}
	return false
}

func newSearchCmd() *cobra.Command {
	var (
		jump         int
		forceNoColor bool
	)

	cmd := &cobra.Command{
		Use:   "search <session> <query>",
		Short: "Search event content and navigate matches",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := newStore()
			if err != nil {
				return err
			}
			session, _, err := resolveSession(st, args[0])
			if err != nil {
				return err
			}
			events := session.Events

			visible := timeline.VisibleIndices(events)
			index := search.BuildIndex(events)
			matches := index.Matches(args[1], visible)

			out := cmd.OutOrStdout()
			if len(matches) == 0 {
				fmt.Fprintln(out, "no matches") //nolint:errcheck
				return nil
			}

			useColor := format.ResolveColor(false, forceNoColor, out)
			pairs := timeline.PairToolCallResults(events, nil)
			lanes := timeline.AssignLanes(events, matches)
			lines := format.RenderTimeline(events, matches, lanes, pairs, format.TimelineOptions{
				Width: format.DetermineWidth(nil, 0),
				Color: useColor,
			})

			fmt.Fprintf(out, "%d matches\n", len(matches)) //nolint:errcheck
			for _, line := range lines {
				fmt.Fprintln(out, line) //nolint:errcheck
			}

			if jump != 0 {
				cursor := search.NewCursor()
				pos := 0
				for i := 0; i < abs(jump); i++ {
					if jump > 0 {
						pos, _ = cursor.Next(len(matches))
					} else {
						pos, _ = cursor.Prev(len(matches))
					}
				}
				ev := events[matches[pos]]
				fmt.Fprintf(out, "cursor at match %d/%d: %s\n", pos+1, len(matches), format.EventLabel(ev)) //nolint:errcheck
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&jump, "jump", 0, "advance the match cursor n times (negative for backwards)")
	cmd.Flags().BoolVar(&forceNoColor, "no-color", false, "force ANSI colors off")

	return cmd
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
