package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"text-vectorizer/internal/corpus"
	"text-vectorizer/internal/models"
	"text-vectorizer/internal/services"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// offlineService runs the vectorizers without statistics or limits
func offlineService(cmd *cobra.Command) *services.VectorizerService {
	logger := logrus.New()
	logger.SetOutput(cmd.ErrOrStderr())
	logger.SetLevel(logrus.WarnLevel)
	return services.NewVectorizerService(nil, services.Limits{}, logrus.NewEntry(logger))
}

func addCorpusFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("file", "f", "", "corpus file with one document per line")
	cmd.Flags().Bool("lower", true, "lowercase tokens")
	cmd.Flags().Int("min-token-len", 2, "minimum token length in characters")
	cmd.Flags().Int("limit", 0, "use only the first N documents (0 uses all)")
	_ = cmd.MarkFlagRequired("file")
}

func vectorizeRequest(cmd *cobra.Command) (models.VectorizeRequest, error) {
	path, _ := cmd.Flags().GetString("file")
	limit, _ := cmd.Flags().GetInt("limit")
	lower, _ := cmd.Flags().GetBool("lower")
	minLen, _ := cmd.Flags().GetInt("min-token-len")

	texts, err := corpus.ReadFile(path)
	if err != nil {
		return models.VectorizeRequest{}, err
	}

	return models.VectorizeRequest{
		Texts:       corpus.BuildCorpus(texts, limit),
		Lower:       &lower,
		MinTokenLen: &minLen,
	}, nil
}

func printJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func BOWCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bow",
		Short: "Print the bag-of-words model of a corpus file",
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := vectorizeRequest(cmd)
			if err != nil {
				return err
			}

			result, err := offlineService(cmd).BagOfWords(context.Background(), &req)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), result)
		},
	}
	addCorpusFlags(cmd)
	return cmd
}

func TFIDFCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tfidf",
		Short: "Print the TF-IDF model of a corpus file",
		RunE: func(cmd *cobra.Command, args []string) error {
			base, err := vectorizeRequest(cmd)
			if err != nil {
				return err
			}
			smooth, _ := cmd.Flags().GetBool("smooth-idf")
			normalize, _ := cmd.Flags().GetString("normalize")

			req := models.TFIDFRequest{VectorizeRequest: base, SmoothIDF: &smooth, Normalize: &normalize}
			result, err := offlineService(cmd).TFIDF(context.Background(), &req)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), result)
		},
	}
	addCorpusFlags(cmd)
	cmd.Flags().Bool("smooth-idf", true, "smooth idf weights")
	cmd.Flags().String("normalize", "l2", `row normalization, "l2" or "none"`)
	return cmd
}

func LSACmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lsa",
		Short: "Print the LSA model of a corpus file",
		RunE: func(cmd *cobra.Command, args []string) error {
			base, err := vectorizeRequest(cmd)
			if err != nil {
				return err
			}
			components, _ := cmd.Flags().GetInt("components")
			topTerms, _ := cmd.Flags().GetInt("top-terms")

			req := models.LSARequest{VectorizeRequest: base, NComponents: &components, NTopTerms: &topTerms}
			result, err := offlineService(cmd).LSA(context.Background(), &req)
			if err != nil {
				return fmt.Errorf("lsa failed: %w", err)
			}
			return printJSON(cmd.OutOrStdout(), result)
		},
	}
	addCorpusFlags(cmd)
	cmd.Flags().IntP("components", "k", 2, "number of SVD components")
	cmd.Flags().Int("top-terms", 10, "number of top terms per component")
	return cmd
}
