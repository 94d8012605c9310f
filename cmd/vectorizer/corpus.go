package main

import (
	"context"
	"fmt"
	"time"

	"text-vectorizer/internal/corpus"

	"github.com/spf13/cobra"
)

func CorpusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "corpus [source...]",
		Short: "Build a demo corpus from CoNLL-U treebanks",
		Long: "Reads CoNLL-U files (URLs or local paths, UD Russian-GSD by default), " +
			"joins the word forms of each sentence and writes one sentence per line.",
		RunE: func(cmd *cobra.Command, args []string) error {
			output, _ := cmd.Flags().GetString("output")
			limit, _ := cmd.Flags().GetInt("limit")
			timeout, _ := cmd.Flags().GetDuration("timeout")

			sources := corpus.DefaultSources
			if len(args) > 0 {
				sources = make([]corpus.Source, len(args))
				for i, arg := range args {
					sources[i] = corpus.Source{Name: fmt.Sprintf("source-%d", i+1), Location: arg}
				}
			}

			sentences, err := corpus.NewLoader(timeout).LoadSentences(context.Background(), sources)
			if err != nil {
				return err
			}

			lines := corpus.BuildCorpus(sentences, limit)
			if err := corpus.WriteFile(output, lines); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Saved corpus with %d sentences to %s\n", len(lines), output)
			return nil
		},
	}

	cmd.Flags().StringP("output", "o", "data/corpus.txt", "output file")
	cmd.Flags().Int("limit", corpus.DefaultLimit, "number of sentences to keep")
	cmd.Flags().Duration("timeout", 60*time.Second, "download timeout per source")
	return cmd
}
