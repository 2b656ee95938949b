package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/reoring/namedtuple/internal/gen"
	"github.com/reoring/namedtuple/internal/manifest"
)

var errInvalid = errors.New("manifest is invalid")

func newGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate -f schema.yaml",
		Short: "Generate Go source for the schemas in a manifest",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			lg := newLogger(cmd.ErrOrStderr(), s.Verbose)

			m, err := loadManifest(s, lg)
			if err != nil {
				return err
			}
			code, err := gen.RenderFile(gen.FromManifest(m, filepath.Base(s.File)))
			if err != nil {
				return fmt.Errorf("generate: %w", err)
			}

			out := s.Output
			if out == "" {
				out = defaultOutput(s.File)
			}
			if out == "-" {
				_, err := cmd.OutOrStdout().Write(code)
				return err
			}
			if err := os.MkdirAll(filepath.Dir(out), 0o755); err != nil {
				return fmt.Errorf("mkdir: %w", err)
			}
			if err := os.WriteFile(out, code, 0o644); err != nil {
				return fmt.Errorf("write: %w", err)
			}
			lg.logf("wrote %s (%d schemas)", out, len(m.Schemas))
			return nil
		},
	}
	f := cmd.Flags()
	f.StringP(flagFile, "f", "", "manifest file (.yaml, .yml or .json)")
	f.StringP(flagOutput, "o", "", `output file, "-" for stdout (default: <manifest>_namedtuple.go)`)
	f.String(flagPackage, "", "override the package name from the manifest")
	return cmd
}

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check -f schema.yaml",
		Short: "Validate a manifest without generating code",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			lg := newLogger(cmd.ErrOrStderr(), s.Verbose)
			m, err := loadManifest(s, lg)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: ok (%d schemas)\n", s.File, len(m.Schemas))
			return nil
		},
	}
	cmd.Flags().StringP(flagFile, "f", "", "manifest file (.yaml, .yml or .json)")
	return cmd
}

// loadManifest reads and validates the manifest named by s, applying the
// package override. Validation issues are printed through lg.
func loadManifest(s settings, lg *logger) (*manifest.File, error) {
	if s.File == "" {
		return nil, fmt.Errorf("no manifest: use -f or set %s_FILE", envPrefix)
	}
	lg.logf("loading %s", s.File)
	m, err := manifest.Load(s.File)
	if err != nil {
		return nil, err
	}
	if s.Package != "" {
		m.Package = s.Package
	}
	if err := m.Validate(); err != nil {
		if lg.report(err) {
			return nil, fmt.Errorf("%s: %w", s.File, errInvalid)
		}
		return nil, err
	}
	lg.logf("%d schemas valid", len(m.Schemas))
	return m, nil
}

// defaultOutput places the generated file next to the manifest.
func defaultOutput(manifestPath string) string {
	base := strings.TrimSuffix(filepath.Base(manifestPath), filepath.Ext(manifestPath))
	return filepath.Join(filepath.Dir(manifestPath), base+"_namedtuple.go")
}
