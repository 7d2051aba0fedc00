package main

import (
	"fmt"

	"github.com/npillmayer/cssattr/component"
	"github.com/npillmayer/cssattr/render"
	"github.com/npillmayer/cssattr/resolve"
	"github.com/npillmayer/cssattr/ruleset"
	"github.com/npillmayer/cssattr/scan"
	"github.com/spf13/cobra"
)

func newClassCmd(flags *rootFlags) *cobra.Command {
	opts := &instanceOptions{}
	cmd := &cobra.Command{
		Use:   "class",
		Short: "Print the class attribute of a component",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := newElement(flags, opts)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), component.BuildClass(e))
			return nil
		},
	}
	opts.register(cmd)
	return cmd
}

func newStyleCmd(flags *rootFlags) *cobra.Command {
	opts := &instanceOptions{}
	cmd := &cobra.Command{
		Use:   "style",
		Short: "Print the style attribute of a component",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := newElement(flags, opts)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), component.BuildStyle(e))
			return nil
		},
	}
	opts.register(cmd)
	return cmd
}

func newRenderCmd(flags *rootFlags) *cobra.Command {
	opts := &instanceOptions{}
	var selector string
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a component as HTML element",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := newElement(flags, opts)
			if err != nil {
				return err
			}
			if selector != "" {
				ok, err := render.Matches(e, selector)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), ok)
				return nil
			}
			out, err := render.String(e)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
	opts.register(cmd)
	cmd.Flags().StringVar(&opts.text, "text", "", "Text content of the element")
	cmd.Flags().StringVar(&selector, "match", "", "Print whether the element matches a CSS selector, instead of the markup")
	return cmd
}

func newDescribeCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "describe [component...]",
		Short: "Print the rule tables of components",
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := ruleset.LoadFile(flags.rules)
			if err != nil {
				return err
			}
			if len(args) == 0 {
				args = reg.Names()
			}
			for _, name := range args {
				d, ok := reg.Component(name)
				if !ok {
					return fmt.Errorf("unknown component %q", name)
				}
				fmt.Fprint(cmd.OutOrStdout(), d.Tree())
				fmt.Fprint(cmd.OutOrStdout(), resolve.Dump(scan.Scan(d)))
			}
			return nil
		},
	}
	return cmd
}

func newListCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the components of a rule set",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := ruleset.LoadFile(flags.rules)
			if err != nil {
				return err
			}
			for _, name := range reg.Names() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
}
