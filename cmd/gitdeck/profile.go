package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/jask/gitdeck/internal/prefs"
	"github.com/jask/gitdeck/internal/service"
)

func newProfileCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Show or change the saved visitor profile",
	}
	cmd.AddCommand(
		newProfileShowCmd(opts),
		newProfileSetCmd(opts),
		newProfileClearCmd(opts),
		newProfileExportCmd(opts),
		newProfileImportCmd(opts),
	)
	return cmd
}

func newProfileShowCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the saved profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := openEnv(opts)
			if err != nil {
				return err
			}
			defer e.Close()

			p, err := e.profiles.Load(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if p == nil {
				fmt.Fprintln(out, "No profile saved.")
				return nil
			}
			fmt.Fprintf(out, "Name:        %s\n", p.Name)
			fmt.Fprintf(out, "Affiliation: %s\n", p.Affiliation)
			if p.ProfileURL != "" {
				fmt.Fprintf(out, "Link:        %s\n", p.ProfileURL)
			}
			fmt.Fprintf(out, "Saved:       %s\n", p.SavedAt.Local().Format(time.DateTime))
			fmt.Fprintln(out, service.Greeting(p))
			return nil
		},
	}
}

func newProfileSetCmd(opts *options) *cobra.Command {
	var name, affiliation, link string
	cmd := &cobra.Command{
		Use:   "set",
		Short: "Save a profile without opening the presentation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := openEnv(opts)
			if err != nil {
				return err
			}
			defer e.Close()

			p, err := e.profiles.Save(cmd.Context(), name, affiliation, link)
			var fe *service.FieldError
			if errors.As(err, &fe) {
				return fmt.Errorf("--%s is required", fe.Field)
			}
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), service.Greeting(p))
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "your name")
	cmd.Flags().StringVar(&affiliation, "affiliation", "", "company, school or team")
	cmd.Flags().StringVar(&link, "link", "", "profile link (optional)")
	return cmd
}

func newProfileClearCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Delete the saved profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := openEnv(opts)
			if err != nil {
				return err
			}
			defer e.Close()

			if err := e.profiles.Clear(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Profile cleared.")
			return nil
		},
	}
}

func profileFilePath(args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	return prefs.DefaultPath()
}

func newProfileExportCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "export [file]",
		Short: "Write the saved profile to a JSON file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := profileFilePath(args)
			if err != nil {
				return err
			}
			e, err := openEnv(opts)
			if err != nil {
				return err
			}
			defer e.Close()

			p, err := e.profiles.Load(cmd.Context())
			if err != nil {
				return err
			}
			if err := prefs.Export(path, p); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported to %s\n", path)
			return nil
		},
	}
}

func newProfileImportCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "import [file]",
		Short: "Save the profile from a JSON file written by export",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := profileFilePath(args)
			if err != nil {
				return err
			}
			in, err := prefs.Import(path)
			if err != nil {
				return err
			}
			if in == nil {
				return fmt.Errorf("%s does not exist", path)
			}
			e, err := openEnv(opts)
			if err != nil {
				return err
			}
			defer e.Close()

			p, err := e.profiles.Save(cmd.Context(), in.Name, in.Affiliation, in.ProfileURL)
			if err != nil {
				return fmt.Errorf("import %s: %w", path, err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), service.Greeting(p))
			return nil
		},
	}
}

func newResetCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Forget the saved profile and deck position",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := openEnv(opts)
			if err != nil {
				return err
			}
			defer e.Close()

			m := &service.MaintenanceService{DB: e.db}
			if err := m.Reset(cmd.Context()); err != nil {
				return err
			}
			e.logger.Info("local data reset")
			fmt.Fprintln(cmd.OutOrStdout(), "Local data reset.")
			return nil
		},
	}
}
