package main

import (
	"log"
	"os"

	"github.com/koskimas/xsdgo/internal/cmd"
	"github.com/spf13/cobra"
)

var (
	workingDir string
	configFile string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:           "xsdgo",
	Short:         "Generate Go types from XML Schema documents",
	Long:          `xsdgo reads the schemas listed in xsdgo.yaml and writes one Go file of type declarations per schema. Without a subcommand it runs generate.`,
	Args:          cobra.NoArgs,
	RunE:          generate,
	SilenceUsage:  true,
	SilenceErrors: true,
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate Go code for every schema in the config",
	Args:  cobra.NoArgs,
	RunE:  generate,
}

var dumpCmd = &cobra.Command{
	Use:   "dump <file.xsd>",
	Short: "Print the AST of a schema as YAML",
	Args:  cobra.ExactArgs(1),
	RunE: func(c *cobra.Command, args []string) error {
		return cmd.Dump(settings().Resolve(args[0]), os.Stdout)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&workingDir, "dir", "C", "", "Working directory (default: current directory)")

	for _, c := range []*cobra.Command{rootCmd, generateCmd} {
		c.Flags().StringVarP(&configFile, "config", "c", "", "Config file (default: xsdgo.yaml in the working directory)")
		c.Flags().BoolVarP(&verbose, "verbose", "v", false, "Print every generated file")
	}

	rootCmd.AddCommand(generateCmd, dumpCmd)
}

func settings() cmd.Settings {
	wd := workingDir
	if len(wd) == 0 {
		var err error
		if wd, err = os.Getwd(); err != nil {
			log.Fatal("failed to determine working directory")
		}
	}

	s := cmd.Settings{
		WorkingDir: wd,
		ConfigFile: configFile,
	}

	if verbose {
		s.Logf = log.Printf
	}

	return s
}

func generate(c *cobra.Command, args []string) error {
	return cmd.Run(settings())
}

func main() {
	log.SetFlags(0)

	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err.Error())
	}
}
