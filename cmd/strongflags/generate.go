package main

import (
	"errors"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/hupe1980/strongflags/internal/codegen"
)

type generateOptions struct {
	files   []string
	name    string
	storage string
	pkg     string
	output  string
	prefix  string
	order   string
	doc     string
}

func (o *generateOptions) addFlags(fs *pflag.FlagSet) {
	fs.StringSliceVarP(&o.files, "file", "f", nil, "TOML declaration file (repeatable)")
	fs.StringVarP(&o.name, "type", "t", "", "name of the generated flag-set type")
	fs.StringVarP(&o.storage, "storage", "s", "uint32", "storage type ("+strings.Join(codegen.StorageNames(), ", ")+")")
	fs.StringVarP(&o.pkg, "package", "p", os.Getenv("GOPACKAGE"), "package of the generated file (default $GOPACKAGE)")
	fs.StringVarP(&o.output, "output", "o", "", "output file (default <type>_flags.go)")
	fs.StringVar(&o.prefix, "prefix", "", "prefix of the flag identifiers (default the type name)")
	fs.StringVar(&o.order, "bit-order", "", "bit order of this declaration (default --order)")
	fs.StringVar(&o.doc, "doc", "", "doc comment of the generated type")
}

func newGenerateCmd(a *app) *cobra.Command {
	var opts generateOptions

	cmd := &cobra.Command{
		Use:     "generate [flags] [FLAG...]",
		GroupID: "actions",
		Short:   "Generate Go source for flag-set declarations",
		Example: `strongflags generate -t Perm -s uint8 -p perms Read Write Exec
strongflags generate -f flags.toml -f more.toml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := a.generator()
			if err != nil {
				return err
			}
			if len(opts.files) > 0 {
				if opts.name != "" || len(args) > 0 {
					return errors.New("--file cannot be combined with --type or flag names")
				}
				return g.GenerateFiles(cmd.Context(), opts.files...)
			}
			if opts.name == "" {
				return errors.New("either --file or --type is required")
			}

			f := &codegen.File{
				Package: opts.pkg,
				FlagSets: []codegen.FlagSet{{
					Name:    opts.name,
					Storage: opts.storage,
					Flags:   args,
					Order:   codegen.Order(opts.order),
					Prefix:  opts.prefix,
					Doc:     opts.doc,
				}},
			}
			output := opts.output
			if output == "" {
				output = strings.ToLower(opts.name) + "_flags.go"
			}
			return g.Generate(cmd.Context(), f, output)
		},
	}
	opts.addFlags(cmd.Flags())
	return cmd
}
