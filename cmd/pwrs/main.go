// pwrs prints memorable passphrases built from random dictionary words.
package main

import (
	"io"
	"os"
	"strconv"

	"github.com/alecthomas/kingpin/v2"

	"github.com/eugenenazirov/pwrs/internal/application"
	"github.com/eugenenazirov/pwrs/internal/config"
	"github.com/eugenenazirov/pwrs/internal/logging"
	"github.com/eugenenazirov/pwrs/internal/passphrase"
	"github.com/eugenenazirov/pwrs/internal/version"
)

// Exit codes
const (
	exitSuccess = 0
	exitFailure = 1
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	defaults := config.Default()

	terminated, status := false, exitSuccess
	kingpinApp := kingpin.New("pwrs", "Generate memorable passphrases from random dictionary words.\n\n"+
		"The dictionary path defaults to "+defaults.Wordlist+" and may be overridden with "+
		"the PWRS_WORDLIST environment variable or the --wordlist flag (the flag wins).")
	kingpinApp.UsageWriter(stdout)
	kingpinApp.ErrorWriter(stderr)
	kingpinApp.Terminate(func(code int) {
		terminated, status = true, code
	})
	kingpinApp.HelpFlag.Short('h')
	kingpinApp.Version(version.String())

	var minSet, maxSet, numberSet, countSet bool
	configFile := kingpinApp.Flag("config", "Path to YAML configuration file").PlaceHolder("PATH").String()
	minLen := kingpinApp.Flag("min", "Minimum number of characters in words").Short('m').PlaceHolder("MIN").
		Default(formatUint(defaults.Min)).IsSetByUser(&minSet).Uint()
	maxLen := kingpinApp.Flag("max", "Maximum number of characters in words").Short('M').PlaceHolder("MAX").
		Default(formatUint(defaults.Max)).IsSetByUser(&maxSet).Uint()
	count := kingpinApp.Flag("count", "Count of passphrases to print").Short('c').PlaceHolder("COUNT").
		Default(formatUint(defaults.Count)).IsSetByUser(&countSet).Uint()
	number := kingpinApp.Flag("number", "Number of words to include in passphrases").Short('n').PlaceHolder("NUMBER").
		Default(formatUint(defaults.Number)).IsSetByUser(&numberSet).Uint()
	upcase := kingpinApp.Flag("upcase", "Keep the casing found in the dictionary instead of lowercasing").Short('u').Bool()
	caseMode := kingpinApp.Flag("case", "Case transform: lower, asis or upper (overrides --upcase)").PlaceHolder("MODE").
		Enum(passphrase.CaseModes()...)
	wordlistPath := kingpinApp.Flag("wordlist", "Path to the newline-delimited dictionary").Short('w').PlaceHolder("PATH").String()
	logLevel := kingpinApp.Flag("log-level", "Diagnostic log level written to stderr").PlaceHolder("LEVEL").
		Enum("debug", "info", "warn", "error")

	_, err := kingpinApp.Parse(args)
	if terminated {
		return status
	}
	if err != nil {
		kingpinApp.Errorf("%s", err)
		kingpinApp.Usage(nil)
		return exitFailure
	}

	overrides := &config.CLIOverrides{
		ConfigFile: *configFile,
		Wordlist:   wordlistPath,
		LogLevel:   logLevel,
	}

	if minSet {
		overrides.Min = minLen
	}

	if maxSet {
		overrides.Max = maxLen
	}

	if numberSet {
		overrides.Number = number
	}

	if countSet {
		overrides.Count = count
	}

	switch {
	case *caseMode != "":
		overrides.Case = caseMode
	case *upcase:
		asis := string(passphrase.AsIs)
		overrides.Case = &asis
	}

	cfg, err := config.Load(overrides)
	if err != nil {
		kingpinApp.Errorf("failed to load configuration: %v", err)
		return exitFailure
	}

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		kingpinApp.Errorf("failed to initialize logger: %v", err)
		return exitFailure
	}
	defer func() {
		_ = logger.Sync()
	}()

	app, err := application.New(cfg, logger)
	if err != nil {
		kingpinApp.Errorf("%v", err)
		return exitFailure
	}

	if err := app.Run(stdout); err != nil {
		kingpinApp.Errorf("%v", err)
		return exitFailure
	}

	return exitSuccess
}

func formatUint(v uint) string {
	return strconv.FormatUint(uint64(v), 10)
}
