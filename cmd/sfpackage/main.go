package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/nbrown30/Salesforce-XML-Package-Builder/internal/config"
	"github.com/nbrown30/Salesforce-XML-Package-Builder/internal/manifest"
	"github.com/nbrown30/Salesforce-XML-Package-Builder/internal/output"
	"github.com/nbrown30/Salesforce-XML-Package-Builder/internal/registry"
	"github.com/nbrown30/Salesforce-XML-Package-Builder/internal/scanner"
	"github.com/nbrown30/Salesforce-XML-Package-Builder/internal/utils"
	"github.com/nbrown30/Salesforce-XML-Package-Builder/pkg/version"
)

var (
	cfgFile string
	verbose bool
	log     *utils.Logger
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "sfpackage",
	Short: "Generate a Salesforce package.xml manifest from a project directory",
	Long: `sfpackage scans a Salesforce project directory tree and writes a
package.xml manifest listing every discovered file, grouped by metadata
type. With --dir it instead prints the <members> entries of one
subdirectory to standard output, without writing a manifest file.`,
	Version: version.Short(),
	Args:    cobra.NoArgs,
	RunE:    run,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.sfpackage/config.yaml)")
	rootCmd.PersistentFlags().StringP("root", "r", ".", "Project directory to scan")
	rootCmd.PersistentFlags().StringP("dir", "d", "", "List members of this subdirectory only (no manifest written)")
	rootCmd.PersistentFlags().String("api-version", config.DefaultAPIVersion, "Metadata API version for the manifest")
	rootCmd.PersistentFlags().String("package-name", config.DefaultPackageName, "Manifest file name written under the root")
	rootCmd.PersistentFlags().String("xmlns", config.DefaultXmlns, "Manifest namespace URL")
	rootCmd.PersistentFlags().String("mappings", "", "YAML file with extra folder-to-type mappings")
	rootCmd.PersistentFlags().Bool("dry-run", false, "Print the manifest to stdout instead of writing it")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")

	_ = viper.BindPFlag("project.root", rootCmd.PersistentFlags().Lookup("root"))
	_ = viper.BindPFlag("project.dir", rootCmd.PersistentFlags().Lookup("dir"))
	_ = viper.BindPFlag("project.api_version", rootCmd.PersistentFlags().Lookup("api-version"))
	_ = viper.BindPFlag("project.package_name", rootCmd.PersistentFlags().Lookup("package-name"))
	_ = viper.BindPFlag("project.xmlns", rootCmd.PersistentFlags().Lookup("xmlns"))
	_ = viper.BindPFlag("project.mappings", rootCmd.PersistentFlags().Lookup("mappings"))

	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	}
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log = utils.NewLogger(utils.LoggerOptions{
		Level:   cfg.Logging.Level,
		Format:  cfg.Logging.Format,
		Verbose: verbose,
	})
	if verbose {
		utils.SetGlobalLevel("debug")
	}

	reg := registry.New()
	if cfg.Project.Mappings != "" {
		reg, err = registry.Load(utils.ExpandPath(cfg.Project.Mappings))
		if err != nil {
			return err
		}
	}

	dryRun, _ := cmd.Flags().GetBool("dry-run")

	if cfg.Project.Dir != "" {
		return runSingleDir(cfg, log, os.Stdout)
	}
	return runManifest(cfg, reg, dryRun, log, os.Stdout)
}

// runSingleDir lists one subdirectory recursively, hidden entries included
// and no exclusion filter applied, and streams raw <members> fragments.
func runSingleDir(cfg *config.Config, log *utils.Logger, out io.Writer) error {
	dir := filepath.Join(cfg.Project.Root, cfg.Project.Dir)

	names, err := scanner.New(log).Files(dir, scanner.ListOptions{Recursive: true})
	if err != nil {
		return err
	}

	log.Debug().Str("dir", dir).Int("files", len(names)).Msg("single-directory listing")
	return output.WriteMembers(out, names)
}

// runManifest builds the full manifest and writes root/packageName, or
// prints the document to out when dryRun is set.
func runManifest(cfg *config.Config, reg *registry.Registry, dryRun bool, log *utils.Logger, out io.Writer) error {
	builder := manifest.NewBuilder(manifest.BuilderOptions{
		Scanner:    scanner.New(log),
		Registry:   reg,
		APIVersion: cfg.Project.APIVersion,
		Xmlns:      cfg.Project.Xmlns,
		Exclude:    cfg.Scan.Exclude,
		Logger:     log,
	})

	m, err := builder.Build(cfg.Project.Root)
	if err != nil {
		return err
	}

	writer := output.NewWriter(output.WriterOptions{
		Path:   filepath.Join(cfg.Project.Root, cfg.Project.PackageName),
		DryRun: dryRun,
		Logger: log,
	})

	if dryRun {
		data, err := output.Render(m)
		if err != nil {
			return err
		}
		if _, err := out.Write(data); err != nil {
			return err
		}
	}

	return writer.Write(m)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.Full())
	},
}
