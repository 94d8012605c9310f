// Package main Text Vectorizer
//
//	@title			Text Vectorizer API
//	@version		1.0
//	@description	Bag-of-words, TF-IDF and LSA vectorization with Russian text annotation
//
//	@license.name	Apache 2.0
//	@license.url	http://www.apache.org/licenses/LICENSE-2.0.html
//
//	@host		localhost:8080
//	@BasePath	/
package main

import (
	"fmt"
	"os"

	_ "text-vectorizer/docs" // This imports the docs package to initialize swagger

	"github.com/spf13/cobra"
)

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "vectorizer",
		Short:         "Text vectorization service and tools",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().String("config", "", "path to a TOML config file (default $VECTORIZER_CONFIG)")

	cmd.AddCommand(
		ServeCmd(),
		BOWCmd(),
		TFIDFCmd(),
		LSACmd(),
		CorpusCmd(),
	)
	return cmd
}

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
