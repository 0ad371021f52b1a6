package pkg

import (
	"context"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/andrejsstepanovs/storyshape/pkg/ai"
	"github.com/andrejsstepanovs/storyshape/pkg/config"
	"github.com/andrejsstepanovs/storyshape/pkg/narrative"
	"github.com/andrejsstepanovs/storyshape/pkg/structures"
	"github.com/andrejsstepanovs/storyshape/pkg/utils"
	"github.com/spf13/cobra"
)

const (
	formatText   = "text"
	formatJson   = "json"
	formatPretty = "pretty"
	formatJsonl  = "jsonl"
)

// NewCommands returns every subcommand of the CLI.
func NewCommands() []*cobra.Command {
	return []*cobra.Command{
		newStructuresCommand(),
		newAnalyzeCommand(),
		newVisualizeCommand(),
		newPromptCommand(),
		newReviewCommand(),
		newSchemaCommand(),
	}
}

func newStructuresCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "structures",
		Short: "List available narrative structures",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := io.WriteString(cmd.OutOrStdout(), structureList(structures.GetAvailableStructures()))
			return err
		},
	}
}

func newAnalyzeCommand() *cobra.Command {
	var (
		format string
		clean  bool
		all    bool
	)

	cmd := &cobra.Command{
		Use:   "analyze [structure] [file]",
		Short: "Analyze text (file or stdin) against a narrative structure",
		Args:  cobra.RangeArgs(0, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			list, file, err := pickStructures(args, all)
			if err != nil {
				return err
			}
			text, err := readInput(file, clean)
			if err != nil {
				return err
			}

			log.Printf("Analyzing %d characters with %d structure(s)...", len([]rune(text)), len(list))
			results := structures.AnalyzeAll(list, text)

			out := make([]string, 0, len(results))
			for i, result := range results {
				rendered, err := renderResult(result, list[i], text, format)
				if err != nil {
					return err
				}
				out = append(out, rendered)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), strings.Join(out, "\n"))
			return err
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", formatText, "output format: text, json, jsonl or pretty")
	cmd.Flags().BoolVar(&clean, "clean", false, "strip emojis and collapse whitespace before analysis")
	cmd.Flags().BoolVar(&all, "all", false, "analyze with every structure; the first argument is the file")
	return cmd
}

func newVisualizeCommand() *cobra.Command {
	var (
		out   string
		clean bool
	)

	cmd := &cobra.Command{
		Use:   "visualize <structure> [file]",
		Short: "Render the HTML diagram of an analysis",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := structures.Find(args[0])
			if err != nil {
				return err
			}
			text, err := readInput(argAt(args, 1), clean)
			if err != nil {
				return err
			}

			html := s.Analyze(text).Visualization
			if out == "" {
				_, err = fmt.Fprintln(cmd.OutOrStdout(), html)
				return err
			}

			cfg, err := config.Load()
			if err != nil {
				return err
			}
			file, err := utils.SaveTextToFile(cfg.OutputDir, out, "html", html)
			if err != nil {
				return err
			}
			log.Printf("HTML saved: %s", file)
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "file name (without extension) to write the html to")
	cmd.Flags().BoolVar(&clean, "clean", false, "strip emojis and collapse whitespace before analysis")
	return cmd
}

func newPromptCommand() *cobra.Command {
	var tokens bool

	cmd := &cobra.Command{
		Use:   "prompt <structure>",
		Short: "Print the LLM analysis prompt of a structure",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := structures.Find(args[0])
			if err != nil {
				return err
			}

			prompt := s.Prompt()
			if _, err := fmt.Fprintln(cmd.OutOrStdout(), prompt); err != nil {
				return err
			}
			if tokens {
				count, err := utils.CountTokens(prompt, utils.DefaultEncoding)
				if err != nil {
					return err
				}
				log.Printf("Prompt tokens (%s): %d", utils.DefaultEncoding, count)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&tokens, "tokens", false, "log the prompt token count")
	return cmd
}

func newReviewCommand() *cobra.Command {
	var clean bool

	cmd := &cobra.Command{
		Use:   "review <structure> [file]",
		Short: "Ask the configured LLM to review text against a structure",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := structures.Find(args[0])
			if err != nil {
				return err
			}
			text, err := readInput(argAt(args, 1), clean)
			if err != nil {
				return err
			}

			cfg, err := config.Load()
			if err != nil {
				return err
			}
			reviewer, err := ai.NewReviewer(cfg)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			log.Printf("Requesting %s review...", s.DisplayName())
			review, err := reviewer.Review(ctx, s, text)
			if err != nil {
				return fmt.Errorf("review: %w", err)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), review)
			return err
		},
	}

	cmd.Flags().BoolVar(&clean, "clean", false, "strip emojis and collapse whitespace before review")
	return cmd
}

func newSchemaCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON schema of an analysis result",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := utils.ToIndentedJson(narrative.ResultSchema())
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
			return err
		},
	}
}

// pickStructures resolves the structure argument. With all set, every
// structure is used and the only argument is the input file.
func pickStructures(args []string, all bool) ([]narrative.Structure, string, error) {
	if all {
		if len(args) > 1 {
			return nil, "", fmt.Errorf("--all takes at most one argument (the file), got %d", len(args))
		}
		return structures.GetAvailableStructures(), argAt(args, 0), nil
	}
	if len(args) == 0 {
		return nil, "", fmt.Errorf("structure is required unless --all is set")
	}
	s, err := structures.Find(args[0])
	if err != nil {
		return nil, "", err
	}
	return []narrative.Structure{s}, argAt(args, 1), nil
}

func readInput(file string, clean bool) (string, error) {
	text, err := utils.LoadText(file)
	if err != nil {
		return "", err
	}
	if clean {
		text = utils.CleanText(text)
	}
	return text, nil
}

func renderResult(result narrative.AnalysisResult, s narrative.Structure, text, format string) (string, error) {
	switch format {
	case formatText, "":
		return textReport(result, narrative.Partition(text, s.Catalog().Len())), nil
	case formatJson:
		return utils.ToIndentedJson(result)
	case formatPretty:
		return utils.ToPrettyJson(result)
	case formatJsonl:
		return result.ToJson()
	}
	return "", fmt.Errorf("unknown format %q", format)
}

func argAt(args []string, i int) string {
	if i < len(args) {
		return args[i]
	}
	return ""
}
