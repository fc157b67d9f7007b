package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/tcg/grid"
	"github.com/katalvlaran/tcg/language"
	"github.com/katalvlaran/tcg/notation"
	"github.com/katalvlaran/tcg/operator"
	"github.com/katalvlaran/tcg/trajectory"
)

var (
	composeStart    string
	composeFinish   string
	composeGoal     string
	composeLanguage string
	composeLimit    int
	composeFormat   string
	composeCheck    bool
)

// composeCmd enumerates the trajectories signalling a goal
var composeCmd = &cobra.Command{
	Use:   "compose",
	Short: "Enumerate the trajectories that signal a goal",
	Long: `Composes every trajectory from --start to --finish that signals --goal
with the given language. Without --language one is sampled from the
configured pools.

Example:
  tcg compose --start "(0,0)@1" --finish "(2,2)" --goal "(1,1)@2" \
    --language "loc=point orient=pause(duration=1) order=loc-orient"`,
	Args: cobra.NoArgs,
	RunE: runCompose,
}

func init() {
	composeCmd.Flags().StringVar(&composeStart, "start", "", "Start position (default from config)")
	composeCmd.Flags().StringVar(&composeFinish, "finish", "", "Finish position (default from config)")
	composeCmd.Flags().StringVar(&composeGoal, "goal", "", "Goal position (default from config)")
	composeCmd.Flags().StringVarP(&composeLanguage, "language", "l", "", `Language, e.g. "loc=point orient=wiggle(width=1, repetition=1)"`)
	composeCmd.Flags().IntVarP(&composeLimit, "limit", "n", 0, "Print at most n trajectories (0 = all)")
	composeCmd.Flags().StringVarP(&composeFormat, "format", "f", "text", "Output format: text or yaml")
	composeCmd.Flags().BoolVar(&composeCheck, "check", false, "Validate every trajectory against the grid")
}

// composeReport is the yaml rendering of a compose run.
type composeReport struct {
	Language     string     `yaml:"language"`
	Start        string     `yaml:"start"`
	Finish       string     `yaml:"finish"`
	Goal         string     `yaml:"goal"`
	Count        int        `yaml:"count"`
	Trajectories [][]string `yaml:"trajectories"`
}

func runCompose(cmd *cobra.Command, args []string) error {
	if composeFormat != "text" && composeFormat != "yaml" {
		return fmt.Errorf("unknown format %q (want text or yaml)", composeFormat)
	}
	start, finish, goal, err := scenario()
	if err != nil {
		return err
	}
	cat, err := catalog()
	if err != nil {
		return err
	}
	var lang language.Language
	if composeLanguage != "" {
		lang, err = parseLanguage(composeLanguage, cat)
	} else {
		lang, err = sampleLanguage(cat)
	}
	if err != nil {
		return err
	}
	return compose(cmd.OutOrStdout(), lang, start, finish, goal)
}

// scenario resolves the flag positions, falling back to the config.
func scenario() (start, finish, goal grid.Position, err error) {
	start, finish, goal, err = cfg.ScenarioPositions()
	if err != nil {
		return start, finish, goal, err
	}
	for _, f := range []struct {
		raw string
		dst *grid.Position
	}{{composeStart, &start}, {composeFinish, &finish}, {composeGoal, &goal}} {
		if f.raw == "" {
			continue
		}
		if *f.dst, err = notation.ParsePosition(f.raw); err != nil {
			return start, finish, goal, err
		}
	}
	return start, finish, goal, nil
}

func parseLanguage(s string, cat *operator.Catalog) (language.Language, error) {
	spec, err := notation.ParseLanguage(s)
	if err != nil {
		return language.Language{}, err
	}
	return spec.Build(cat)
}

func compose(w io.Writer, lang language.Language, start, finish, goal grid.Position) error {
	plan, err := trajectory.Prepare(lang, goal, start, finish, trajectory.WithLogger(logger))
	if err != nil {
		return err
	}
	logger.Info("composing trajectories",
		zap.Stringer("language", lang),
		zap.Stringer("goal", goal),
		zap.Int("count", plan.Count()))

	var out []trajectory.Trajectory
	for t := range plan.All() {
		if composeLimit > 0 && len(out) == composeLimit {
			break
		}
		if composeCheck {
			if err := trajectory.Validate(t, start, finish, nil); err != nil {
				return err
			}
		}
		out = append(out, t)
	}

	if composeFormat == "yaml" {
		rep := composeReport{
			Language: lang.String(),
			Start:    notation.FormatPosition(start),
			Finish:   notation.FormatPosition(finish),
			Goal:     notation.FormatPosition(goal),
			Count:    plan.Count(),
		}
		for _, t := range out {
			steps := make([]string, len(t))
			for i, p := range t {
				steps[i] = notation.FormatPosition(p)
			}
			rep.Trajectories = append(rep.Trajectories, steps)
		}
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(rep); err != nil {
			return fmt.Errorf("failed to encode report: %w", err)
		}
		return enc.Close()
	}

	fmt.Fprintf(w, "language: %s\n", lang)
	fmt.Fprintf(w, "trajectories: %d\n", plan.Count())
	for _, t := range out {
		fmt.Fprintln(w, t)
	}
	return nil
}
