package cli

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/mrz1836/sigil/internal/config"
	"github.com/mrz1836/sigil/internal/constants"
	"github.com/mrz1836/sigil/internal/logging"
	"github.com/mrz1836/sigil/internal/tui"
)

// ConfigSource represents where a configuration value came from.
type ConfigSource string

const (
	// SourceDefault indicates the value is a built-in default.
	SourceDefault ConfigSource = "default"
	// SourceGlobal indicates the value came from the global config file.
	SourceGlobal ConfigSource = "global"
	// SourceProject indicates the value came from the project config file.
	SourceProject ConfigSource = "project"
	// SourceEnv indicates the value came from a SIGIL_* environment variable.
	SourceEnv ConfigSource = "env"
)

// ConfigValueWithSource is one effective setting and where it came from.
type ConfigValueWithSource struct {
	Key    string       `json:"key"`
	Value  string       `json:"value"`
	Source ConfigSource `json:"source"`
}

// configValues holds the dotted keys present in one config file.
type configValues map[string]struct{}

// configShowStyles styles the text rendering of config show.
type configShowStyles struct {
	header  lipgloss.Style
	section lipgloss.Style
	key     lipgloss.Style
	dim     lipgloss.Style
	sources map[ConfigSource]lipgloss.Style
}

func newConfigShowStyles() *configShowStyles {
	return &configShowStyles{
		header:  lipgloss.NewStyle().Bold(true).Foreground(tui.ColorPrimary),
		section: lipgloss.NewStyle().Bold(true),
		key:     lipgloss.NewStyle().Foreground(tui.ColorPrimary),
		dim:     lipgloss.NewStyle().Foreground(tui.ColorMuted),
		sources: map[ConfigSource]lipgloss.Style{
			SourceEnv:     lipgloss.NewStyle().Foreground(tui.ColorError),
			SourceProject: lipgloss.NewStyle().Foreground(tui.ColorWarning),
			SourceGlobal:  lipgloss.NewStyle().Foreground(tui.ColorSuccess),
			SourceDefault: lipgloss.NewStyle().Foreground(tui.ColorMuted),
		},
	}
}

func addConfigCommand(root *cobra.Command, a *app) {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect sigil configuration",
	}

	show := &cobra.Command{
		Use:   "show",
		Short: "Display effective configuration",
		Long: `Display the effective configuration and where each value comes from:
  - env:     SIGIL_* environment variable
  - project: .sigil/config.yaml
  - global:  ~/.sigil/config.yaml ($SIGIL_HOME/config.yaml)
  - default: built-in value

The JWT secret is masked.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			values := buildAnnotatedConfig(a.cfg)
			if a.jsonOutput() {
				return a.output(cmd.OutOrStdout()).JSON(values)
			}
			renderAnnotatedConfig(cmd.OutOrStdout(), values)
			return nil
		},
	}

	cmd.AddCommand(show)
	root.AddCommand(cmd)
}

// buildAnnotatedConfig flattens cfg into ordered entries with their sources.
func buildAnnotatedConfig(cfg *config.Config) []ConfigValueWithSource {
	var global configValues
	if path, err := config.GlobalConfigPath(); err == nil {
		global = loadConfigFile(path)
	}
	project := loadConfigFile(config.ProjectConfigPath())

	secret := cfg.JWT.Secret
	if secret != "" {
		secret = logging.SafeValue("secret", secret)
	}

	pairs := []struct {
		key   string
		value string
	}{
		{"text.algorithm", cfg.Text.Algorithm},
		{"text.key_dir", cfg.Text.KeyDir},
		{"text.password_keys", strconv.FormatBool(cfg.Text.PasswordKeys)},
		{"text.lock_timeout", cfg.Text.LockTimeout.String()},
		{"genpass.length", strconv.Itoa(cfg.GenPass.Length)},
		{"genpass.uppercase", strconv.FormatBool(cfg.GenPass.Uppercase)},
		{"genpass.lowercase", strconv.FormatBool(cfg.GenPass.Lowercase)},
		{"genpass.numbers", strconv.FormatBool(cfg.GenPass.Numbers)},
		{"genpass.symbols", strconv.FormatBool(cfg.GenPass.Symbols)},
		{"jwt.secret", secret},
		{"jwt.expiry", cfg.JWT.Expiry},
		{"jwt.audience", cfg.JWT.Audience},
		{"log.max_size_mb", strconv.Itoa(cfg.Log.MaxSizeMB)},
		{"log.max_backups", strconv.Itoa(cfg.Log.MaxBackups)},
		{"log.max_age_days", strconv.Itoa(cfg.Log.MaxAgeDays)},
		{"log.compress", strconv.FormatBool(cfg.Log.Compress)},
	}

	out := make([]ConfigValueWithSource, 0, len(pairs))
	for _, p := range pairs {
		out = append(out, ConfigValueWithSource{
			Key:    p.key,
			Value:  p.value,
			Source: determineSource(p.key, global, project),
		})
	}
	return out
}

// loadConfigFile returns the dotted keys set in the YAML file at path, or nil.
func loadConfigFile(path string) configValues {
	data, err := os.ReadFile(path) //nolint:gosec // config file path
	if err != nil {
		return nil
	}

	var raw map[string]any
	if err = yaml.Unmarshal(data, &raw); err != nil {
		return nil
	}

	keys := make(configValues)
	flattenKeys("", raw, keys)
	return keys
}

func flattenKeys(prefix string, m map[string]any, into configValues) {
	for k, v := range m {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		if nested, ok := v.(map[string]any); ok {
			flattenKeys(key, nested, into)
			continue
		}
		into[key] = struct{}{}
	}
}

// determineSource follows the load precedence: env, project, global, default.
func determineSource(key string, global, project configValues) ConfigSource {
	envKey := constants.EnvPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
	if _, ok := os.LookupEnv(envKey); ok {
		return SourceEnv
	}
	if _, ok := project[key]; ok {
		return SourceProject
	}
	if _, ok := global[key]; ok {
		return SourceGlobal
	}
	return SourceDefault
}

func renderAnnotatedConfig(w io.Writer, values []ConfigValueWithSource) {
	tui.CheckNoColor()
	styles := newConfigShowStyles()

	_, _ = fmt.Fprintln(w, styles.header.Render("Effective sigil configuration"))
	_, _ = fmt.Fprintln(w, styles.dim.Render("Sources: ")+
		styles.sources[SourceEnv].Render("env")+" > "+
		styles.sources[SourceProject].Render("project")+" > "+
		styles.sources[SourceGlobal].Render("global")+" > "+
		styles.sources[SourceDefault].Render("default"))

	width := 0
	for _, v := range values {
		_, field, _ := strings.Cut(v.Key, ".")
		width = max(width, runewidth.StringWidth(field)+1)
	}

	section := ""
	for _, v := range values {
		name, field, _ := strings.Cut(v.Key, ".")
		if name != section {
			section = name
			_, _ = fmt.Fprintln(w)
			_, _ = fmt.Fprintln(w, styles.section.Render(section+":"))
		}
		value := v.Value
		if value == "" {
			value = "(not set)"
		}
		_, _ = fmt.Fprintf(w, "  %s %s  %s\n",
			styles.key.Render(runewidth.FillRight(field+":", width)),
			value,
			styles.sources[v.Source].Render("# "+string(v.Source)))
	}
}
