package openmodules

import (
	"fmt"

	"github.com/Alb-O/openmodules/internal/version"
	"github.com/Alb-O/openmodules/pkg/commands/compile"
	"github.com/Alb-O/openmodules/pkg/commands/docs"
	"github.com/Alb-O/openmodules/pkg/commands/list"
	"github.com/Alb-O/openmodules/pkg/commands/match"
	"github.com/Alb-O/openmodules/pkg/commands/reindex"
	"github.com/Alb-O/openmodules/pkg/config"
	"github.com/Alb-O/openmodules/pkg/paths"
	"github.com/Alb-O/openmodules/pkg/style"
	"github.com/Alb-O/openmodules/pkg/types"
	"github.com/spf13/cobra"
)

// initEnv resolves the modules root and loads the effective config
func initEnv(root string) (*paths.Paths, *config.Config, error) {
	p, err := paths.New(root)
	if err != nil {
		return nil, nil, err
	}
	cfg, err := config.Load(p.RootConfig())
	if err != nil {
		return nil, nil, err
	}
	return p, cfg, nil
}

func newListCmd(root *string) *cobra.Command {
	var noIndex bool

	cmd := &cobra.Command{
		Use:     "list",
		Short:   MsgListShort,
		Long:    MsgListLong,
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, cfg, err := initEnv(*root)
			if err != nil {
				return err
			}

			result, err := list.ListModules(list.Options{
				ModulesRoot: p.ModulesRoot(),
				IndexPath:   p.IndexPath(),
				UseIndex:    cfg.Index.Enabled && !noIndex,
				Ignore:      cfg.Modules.Ignore,
			})
			if err != nil {
				return fmt.Errorf(MsgErrListModules, err)
			}

			printModuleList(result)
			return nil
		},
	}

	cmd.Flags().BoolVar(&noIndex, "no-index", false, MsgFlagNoIndex)
	return cmd
}

func printModuleList(result *types.ListModulesResult) {
	if len(result.Modules) == 0 {
		fmt.Println("No modules found.")
		return
	}
	for _, mod := range result.Modules {
		posture := "always visible"
		switch {
		case mod.HasActivate && mod.HasDisclose:
			posture = "disclose+activate"
		case mod.HasActivate:
			posture = "activate"
		case mod.HasDisclose:
			posture = "disclose"
		}
		line := fmt.Sprintf("%s  %s", style.Render(style.TitleStyle, mod.Name),
			style.Render(style.MutedStyle, "["+posture+"]"))
		fmt.Println(line)
		if mod.Description != "" {
			fmt.Println("  " + mod.Description)
		}
	}
}

func newCompileCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "compile <pattern>",
		Short:   MsgCompileShort,
		Long:    MsgCompileLong,
		Example: MsgCompileExample,
		GroupID: "core",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := compile.CompilePattern(compile.Options{Pattern: args[0]})
			if err != nil {
				return err
			}

			if result.AlwaysMatch {
				fmt.Println("pattern is the bare wildcard: always matches, no regex compiled")
				return nil
			}
			if len(result.Alternatives) == 0 {
				fmt.Println("empty pattern: never matches")
				return nil
			}

			fmt.Printf("alternatives (%d):\n", len(result.Alternatives))
			for _, alt := range result.Alternatives {
				fmt.Println("  " + alt)
			}
			fmt.Printf("regexes (%d):\n", len(result.Regexes))
			for _, re := range result.Regexes {
				fmt.Println("  " + re)
			}
			if len(result.Regexes) < len(result.Alternatives) {
				fmt.Println(style.Render(style.WarningStyle,
					fmt.Sprintf("%d alternative(s) were malformed and dropped",
						len(result.Alternatives)-len(result.Regexes))))
			}
			return nil
		},
	}
}

func newMatchCmd(root *string) *cobra.Command {
	var (
		userText      string
		agentText     string
		includeHidden bool
		noIndex       bool
	)

	cmd := &cobra.Command{
		Use:     "match",
		Short:   MsgMatchShort,
		Long:    MsgMatchLong,
		Example: MsgMatchExample,
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, cfg, err := initEnv(*root)
			if err != nil {
				return err
			}

			result, err := match.MatchConversation(match.Options{
				ModulesRoot:   p.ModulesRoot(),
				IndexPath:     p.IndexPath(),
				UseIndex:      cfg.Index.Enabled && !noIndex,
				Ignore:        cfg.Modules.Ignore,
				UserText:      userText,
				AgentText:     agentText,
				IncludeHidden: includeHidden,
			})
			if err != nil {
				return fmt.Errorf(MsgErrMatch, err)
			}

			for _, r := range result.Results {
				outcome := string(r.Outcome)
				switch r.Outcome {
				case types.OutcomeActivate:
					outcome = style.Render(style.SuccessStyle, outcome)
				case types.OutcomeDisclose:
					outcome = style.Render(style.TitleStyle, outcome)
				case types.OutcomeHidden:
					outcome = style.Render(style.MutedStyle, outcome)
				}
				fmt.Printf("%-10s %s\n", outcome, r.Name)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&userText, "user", "", MsgFlagUser)
	cmd.Flags().StringVar(&agentText, "agent", "", MsgFlagAgent)
	cmd.Flags().BoolVar(&includeHidden, "hidden", false, MsgFlagHidden)
	cmd.Flags().BoolVar(&noIndex, "no-index", false, MsgFlagNoIndex)
	return cmd
}

func newDocsCmd(root *string) *cobra.Command {
	var render bool

	cmd := &cobra.Command{
		Use:     "docs <module>",
		Short:   MsgDocsShort,
		Long:    MsgDocsLong,
		Example: MsgDocsExample,
		GroupID: "core",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, cfg, err := initEnv(*root)
			if err != nil {
				return err
			}

			result, err := docs.GenDocs(docs.Options{
				ModulesRoot: p.ModulesRoot(),
				Ignore:      cfg.Modules.Ignore,
				Module:      args[0],
				Render:      render,
			})
			if err != nil {
				return fmt.Errorf(MsgErrDocs, err)
			}

			fmt.Print(result.Tree)
			if result.Rendered != "" {
				fmt.Print(result.Rendered)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&render, "render", false, MsgFlagRender)
	return cmd
}

func newIndexCmd(root *string) *cobra.Command {
	return &cobra.Command{
		Use:     "index",
		Short:   MsgIndexShort,
		Long:    MsgIndexLong,
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, cfg, err := initEnv(*root)
			if err != nil {
				return err
			}

			result, err := reindex.RebuildIndex(reindex.Options{
				ModulesRoot: p.ModulesRoot(),
				IndexPath:   p.IndexPath(),
				Ignore:      cfg.Modules.Ignore,
			})
			if err != nil {
				return fmt.Errorf(MsgErrIndex, err)
			}

			fmt.Printf("indexed %d module(s) at %s\n", result.ModuleCount, result.Ref)
			return nil
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		GroupID: "misc",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("openmodules version %s\n", version.Version)
			fmt.Printf("  commit: %s\n", version.Commit)
			fmt.Printf("  built:  %s\n", version.Date)
		},
	}
}
