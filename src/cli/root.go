// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/H0llyW00dzZ/certtool/src/internal/certerr"
	"github.com/H0llyW00dzZ/certtool/src/internal/config"
	"github.com/H0llyW00dzZ/certtool/src/internal/helper/posix"
	"github.com/H0llyW00dzZ/certtool/src/internal/output"
	x509inspect "github.com/H0llyW00dzZ/certtool/src/internal/x509/inspect"
	x509issue "github.com/H0llyW00dzZ/certtool/src/internal/x509/issue"
	"github.com/H0llyW00dzZ/certtool/src/logger"
)

var (
	configFile     string
	configDir      string
	outputDir      string
	validateConfig string
	inspectCert    string
	inspectTable   bool

	generateExample bool
	exampleFile     string

	logJSON bool

	countryName            string
	stateOrProvinceName    string
	localityName           string
	organizationName       string
	organizationalUnitName string
	commonName             string
	emailAddress           string

	digestAlg       string
	privateKeyBits  int
	privateKeyType  string
	validDays       int
	encryptKey      bool
	subjectAltNames []string
	passphrase      string
)

// dnFlagNames are the DN flags used for mutual-exclusivity checks against
// the config-file modes.
var dnFlagNames = []string{
	"country-name",
	"state-or-province-name",
	"locality-name",
	"organization-name",
	"organizational-unit-name",
	"common-name",
	"email-address",
}

// cfgFlagNames are the issuance-setting flags used for mutual-exclusivity
// checks against the config-file modes.
var cfgFlagNames = []string{
	"digest-alg",
	"private-key-bits",
	"private-key-type",
	"valid-days",
	"encrypt-key",
	"subject-alt-name",
}

// Execute runs the root command. Errors are returned to the caller, which
// maps them to exit statuses; cobra's own error printing is silenced.
func Execute(version string, log logger.Logger) error {
	rootCmd := &cobra.Command{
		Use:           posix.GetExecutableName(),
		Short:         "Generate self-signed certificates, CSRs, and RSA private keys",
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, log)
		},
	}

	flags := rootCmd.Flags()

	flags.StringVar(&configFile, "config", "", "path to a JSON/YAML config file for DN and certificate settings")
	flags.StringVar(&configDir, "config-dir", "", "directory of JSON/YAML config files for bulk generation")
	flags.StringVar(&outputDir, "output-dir", "", "directory to write cert.pem, csr.pem, key.pem into (default: stdout)")
	flags.StringVar(&validateConfig, "validate-config", "", "validate a config file and exit without generating")
	flags.StringVar(&inspectCert, "inspect-cert", "", "inspect an existing PEM certificate and print details")
	flags.BoolVarP(&inspectTable, "table", "t", false, "render inspection output as a markdown table")

	flags.BoolVar(&generateExample, "generate-example", false, "print an example JSON configuration and exit")
	flags.StringVar(&exampleFile, "example-file", "", "write the example configuration to this file instead of stdout")

	flags.BoolVar(&logJSON, "log-json", false, "emit diagnostics as structured JSON lines on stderr")

	flags.StringVar(&countryName, "country-name", "", "Country Name (C), e.g. UK")
	flags.StringVar(&stateOrProvinceName, "state-or-province-name", "", "State or Province Name (ST)")
	flags.StringVar(&localityName, "locality-name", "", "Locality Name (L)")
	flags.StringVar(&organizationName, "organization-name", "", "Organization Name (O)")
	flags.StringVar(&organizationalUnitName, "organizational-unit-name", "", "Organizational Unit Name (OU)")
	flags.StringVar(&commonName, "common-name", "", "Common Name (CN); required in CLI mode")
	flags.StringVar(&emailAddress, "email-address", "", "Email Address")

	flags.StringVar(&digestAlg, "digest-alg", "", "digest algorithm for signing: sha256, sha384, sha512 (default: sha512)")
	flags.IntVar(&privateKeyBits, "private-key-bits", 0, "private key size in bits (default: 2048)")
	flags.StringVar(&privateKeyType, "private-key-type", "", "private key type (only RSA is supported)")
	flags.IntVar(&validDays, "valid-days", 0, "certificate validity period in days (default: 365)")
	flags.BoolVar(&encryptKey, "encrypt-key", false, "encrypt the private key with a passphrase")
	flags.StringSliceVar(&subjectAltNames, "subject-alt-name", nil, "subject alternative name (DNS name or IP literal), repeatable")
	flags.StringVar(&passphrase, "passphrase", "", "passphrase for private key encryption")

	return rootCmd.Execute()
}

// run dispatches the selected mode after validating the mode constraints.
func run(cmd *cobra.Command, log logger.Logger) error {
	if logJSON {
		log = logger.NewJSONLogger(os.Stderr)
	}

	// Validate-only mode: schema check plus full semantic resolution.
	if validateConfig != "" {
		if err := validateConfigAlone(cmd); err != nil {
			return err
		}
		if err := config.ValidateFile(validateConfig); err != nil {
			return err
		}
		log.Printf("Configuration %s is valid.", validateConfig)
		return nil
	}

	// Inspect mode: print details of an existing certificate.
	if inspectCert != "" {
		return runInspect(log)
	}

	if err := validateModeConstraints(cmd); err != nil {
		return err
	}

	if generateExample {
		data, err := config.WriteExample(exampleFile)
		if err != nil {
			return err
		}
		if exampleFile == "" {
			fmt.Print(string(data))
		}
		return nil
	}

	if err := output.PrepareDir(outputDir); err != nil {
		return err
	}

	switch {
	case configDir != "":
		return runConfigDir(log)
	case configFile != "":
		return runConfigFile(log)
	default:
		return runCLIMode(cmd, log)
	}
}

// anyDNFlagSet reports whether any DN flag was supplied.
func anyDNFlagSet(cmd *cobra.Command) bool {
	for _, name := range dnFlagNames {
		if cmd.Flags().Changed(name) {
			return true
		}
	}
	return false
}

// anyCfgFlagSet reports whether any issuance-setting flag was supplied.
func anyCfgFlagSet(cmd *cobra.Command) bool {
	for _, name := range cfgFlagNames {
		if cmd.Flags().Changed(name) {
			return true
		}
	}
	return false
}

// validateConfigAlone rejects combining --validate-config with any
// generation option.
func validateConfigAlone(cmd *cobra.Command) error {
	if generateExample || configFile != "" || configDir != "" || outputDir != "" || anyDNFlagSet(cmd) || anyCfgFlagSet(cmd) {
		return certerr.Configf("--validate-config cannot be combined with other generation options; use it alone to check a single config file")
	}
	return nil
}

// validateModeConstraints enforces the mutual-exclusivity contract between
// the CLI-parameter mode, the config-file modes, and example mode.
func validateModeConstraints(cmd *cobra.Command) error {
	if generateExample {
		var conflicts []string
		if configFile != "" {
			conflicts = append(conflicts, "--config")
		}
		if configDir != "" {
			conflicts = append(conflicts, "--config-dir")
		}
		if outputDir != "" {
			conflicts = append(conflicts, "--output-dir")
		}
		if anyDNFlagSet(cmd) {
			conflicts = append(conflicts, "DN CLI options")
		}
		if anyCfgFlagSet(cmd) {
			conflicts = append(conflicts, "CONFIG CLI options")
		}
		if len(conflicts) > 0 {
			return certerr.Configf("--generate-example cannot be combined with certificate generation options (conflicting: %s); use it alone, optionally with --example-file", strings.Join(conflicts, ", "))
		}
		return nil
	}

	if configFile != "" && configDir != "" {
		return certerr.Configf("--config and --config-dir are mutually exclusive")
	}

	if (configFile != "" || configDir != "") && (anyDNFlagSet(cmd) || anyCfgFlagSet(cmd)) {
		return certerr.Configf("DN/CONFIG CLI options cannot be used together with --config or --config-dir; choose one mode")
	}

	return nil
}

// runInspect loads a certificate file and prints its details.
func runInspect(log logger.Logger) error {
	data, err := os.ReadFile(inspectCert)
	if err != nil {
		return certerr.Configf("unable to read certificate %s: %v", inspectCert, err)
	}

	details, err := x509inspect.New().Inspect(data)
	if err != nil {
		return err
	}

	log.Printf("Certificate: %s", inspectCert)
	if inspectTable {
		log.Println(details.RenderTable())
	} else {
		log.Println(details.Render())
	}
	return nil
}

// runConfigFile generates one certificate bundle from a single config file.
func runConfigFile(log logger.Logger) error {
	info, err := os.Stat(configFile)
	if err != nil || info.IsDir() {
		return certerr.Configf("--config %s is not a file", configFile)
	}

	res, err := config.LoadFile(configFile, passphrase)
	if err != nil {
		return err
	}
	return issueAndWrite(res, "", log)
}

// configExtensions are the file extensions picked up during bulk
// generation.
var configExtensions = map[string]bool{
	".json": true,
	".yaml": true,
	".yml":  true,
}

// runConfigDir generates one certificate bundle per config file in the
// directory, in sorted filename order. Per-file failures are reported and
// counted; the remaining files are still processed, and the run fails at
// the end if any file failed.
func runConfigDir(log logger.Logger) error {
	entries, err := os.ReadDir(configDir)
	if err != nil {
		return certerr.Configf("--config-dir %s is not a directory: %v", configDir, err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if configExtensions[strings.ToLower(filepath.Ext(entry.Name()))] {
			files = append(files, entry.Name())
		}
	}
	if len(files) == 0 {
		return certerr.Configf("no config files found in %s", configDir)
	}

	failed := 0
	for _, name := range files {
		path := filepath.Join(configDir, name)

		res, err := config.LoadFile(path, passphrase)
		if err == nil {
			err = issueAndWrite(res, name, log)
		}
		if err != nil {
			failed++
			fmt.Fprintf(os.Stderr, "ERROR processing %s: %v\n", path, err)
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d config file(s) failed; see error messages above", failed)
	}
	return nil
}

// runCLIMode resolves DN and issuance settings from command-line flags and
// generates a single certificate bundle.
func runCLIMode(cmd *cobra.Command, log logger.Logger) error {
	in := config.CLIInput{
		DN: config.DistinguishedName{
			CountryName:            countryName,
			StateOrProvinceName:    stateOrProvinceName,
			LocalityName:           localityName,
			OrganizationName:       organizationName,
			OrganizationalUnitName: organizationalUnitName,
			CommonName:             commonName,
			EmailAddress:           emailAddress,
		},
		DigestAlg:       digestAlg,
		PrivateKeyBits:  privateKeyBits,
		PrivateKeyType:  privateKeyType,
		ValidDays:       validDays,
		SubjectAltNames: subjectAltNames,
		Passphrase:      passphrase,
	}
	if cmd.Flags().Changed("encrypt-key") {
		in.EncryptKey = &encryptKey
	}

	res, err := config.ResolveCLI(in)
	if err != nil {
		return err
	}
	return issueAndWrite(res, "", log)
}

// issueAndWrite runs the issuance pipeline for one resolved request and
// writes the artifacts to stdout or to a per-certificate subdirectory.
func issueAndWrite(res *config.Resolved, label string, log logger.Logger) error {
	arts, err := x509issue.Issue(res)
	if err != nil {
		return err
	}

	if outputDir == "" {
		return output.WriteBundle(os.Stdout, arts, label)
	}

	subdir, err := output.WriteBundleDir(arts, res.DN.CommonName, label, outputDir)
	if err != nil {
		return err
	}
	log.Printf("Wrote certificate artifacts to %s", subdir)
	return nil
}
