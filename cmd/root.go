package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"vboxmanager/internal/app"
	"vboxmanager/internal/config"
)

var (
	cfgFile string
	noTUI   bool
	debug   bool

	// appVersion is what runManager reports. rootCmd cannot be read from
	// its own RunE.
	appVersion = "dev"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "vboxmanager [file...]",
	Short: "Manage virtual machines from the terminal",
	Long: `vboxmanager is a terminal manager for VirtualBox style virtual machines.
It shows the machine chooser, the global and machine tools and the activity
of running operations. Files given as arguments (.ova, .ovf, .vbox,
.vbox-extpack) are opened once the manager is on screen.

Use --no-tui to print the machine list and exit.`,
	Args: cobra.ArbitraryArgs,
	// SilenceUsage is set to true to prevent printing usage message on errors
	// handled by us (e.g. a broken inventory file)
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runManager(cmd.Context(), noTUI, args)
	},
}

// SetVersion sets the version for the root command
func SetVersion(v string) {
	appVersion = v
	rootCmd.Version = v
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "vboxmanager version %s\n" .Version}}`)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		// Cobra prints the error, we just exit non-zero
		stop()
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newSelfUpdateCmd())
	rootCmd.AddCommand(newOpenCmd())
	rootCmd.AddCommand(newVMsCmd())

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "extra config file layered over the user and project config")
	flags.BoolVar(&noTUI, "no-tui", false, "print the machine list instead of starting the terminal UI")
	flags.BoolVar(&debug, "debug", false, "enable debug logging")
	flags.String("inventory", "", "inventory file of the in-process VM service")
	flags.String("extradata-dir", "", "directory holding persisted GUI settings")
	flags.String("platform", "", "menu conventions: auto, mac, linux or windows")
	flags.String("log-level", "", "log level: debug, info, warn or error")

	_ = viper.BindPFlag("inventory", flags.Lookup("inventory"))
	_ = viper.BindPFlag("extradatadir", flags.Lookup("extradata-dir"))
	_ = viper.BindPFlag("platform", flags.Lookup("platform"))
	_ = viper.BindPFlag("loglevel", flags.Lookup("log-level"))

	viper.SetEnvPrefix("VBOXMANAGER")
	viper.AutomaticEnv()
}

// runManager loads the layered settings and runs the application.
func runManager(ctx context.Context, headless bool, urls []string) error {
	if ctx == nil {
		ctx = context.Background()
	}
	settings, err := loadSettings(viper.GetViper())
	if err != nil {
		return err
	}

	cfg := app.NewConfig(headless, debug)
	cfg.URLs = urls
	cfg.Version = appVersion
	cfg.Settings = &settings

	application, err := app.NewApplication(ctx, cfg)
	if err != nil {
		return err
	}
	return application.Run(ctx)
}

// loadSettings layers the --config file, environment and flags over the
// user and project configuration files.
func loadSettings(v *viper.Viper) (config.Config, error) {
	settings, err := config.LoadConfig()
	if err != nil {
		return config.Config{}, err
	}
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return config.Config{}, fmt.Errorf("failed to read config file %s: %w", cfgFile, err)
		}
	}
	return applyOverrides(settings, v)
}

// applyOverrides copies every key v has a value for over settings.
func applyOverrides(settings config.Config, v *viper.Viper) (config.Config, error) {
	if s := v.GetString("inventory"); s != "" {
		settings.Inventory = s
	}
	if s := v.GetString("extradatadir"); s != "" {
		settings.ExtraDataDir = s
	}
	if s := v.GetString("platform"); s != "" {
		settings.Platform = config.Platform(s)
	}
	if s := v.GetString("loglevel"); s != "" {
		settings.LogLevel = s
	}
	if v.IsSet("cloudrefreshinterval") {
		settings.CloudRefreshInterval = v.GetDuration("cloudrefreshinterval")
	}
	if v.IsSet("updatecheckenabled") {
		enabled := v.GetBool("updatecheckenabled")
		settings.UpdateCheckEnabled = &enabled
	}
	if err := settings.Validate(); err != nil {
		return config.Config{}, err
	}
	return settings, nil
}
