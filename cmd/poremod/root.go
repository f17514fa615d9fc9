package main

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/molgrove/poremod"
	"github.com/molgrove/poremod/internal/moietyio"
	"github.com/molgrove/poremod/replace"
)

// newRootCmd wires the CLI: global flags are bound through viper so a
// poremod.yaml in the working directory (or environment variables
// prefixed POREMOD_) can supply defaults.
func newRootCmd(logger zerolog.Logger) *cobra.Command {
	root := &cobra.Command{
		Use:           "poremod",
		Short:         "chemical find-and-replace on periodic crystal graphs",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().String("moiety-dir", ".", "directory containing .moiety files")
	root.PersistentFlags().Bool("verbose", false, "emit per-configuration progress")
	_ = viper.BindPFlag("moiety_dir", root.PersistentFlags().Lookup("moiety-dir"))
	_ = viper.BindPFlag("verbose", root.PersistentFlags().Lookup("verbose"))

	viper.SetConfigName("poremod")
	viper.AddConfigPath(".")
	viper.SetEnvPrefix("poremod")
	viper.AutomaticEnv()
	_ = viper.ReadInConfig() // config file is optional

	root.AddCommand(newSearchCmd(logger), newReplaceCmd(logger))

	return root
}

func newLoader(logger zerolog.Logger) *moietyio.Loader {
	l := moietyio.NewLoader(viper.GetString("moiety_dir"))
	l.Logger = logger

	return l
}

func newSearchCmd(logger zerolog.Logger) *cobra.Command {
	var exact bool

	cmd := &cobra.Command{
		Use:   "search <query> <parent>",
		Short: "count locations and orientations of a query moiety in a parent",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			loader := newLoader(logger)
			query, err := loader.Load(args[0])
			if err != nil {
				return err
			}
			parent, err := loader.Load(args[1])
			if err != nil {
				return err
			}

			s, err := poremod.SubstructureSearch(query, parent, exact)
			if err != nil {
				return err
			}

			logger.Info().
				Int("isomorphisms", s.NbIsomorphisms()).
				Int("locations", s.NbLocations()).
				Msg("search complete")
			for k := range s.Locations {
				fmt.Printf("location %d: %d orientation(s)\n", k+1, s.NbOrientationsAtLocation(k))
			}

			return nil
		},
	}
	cmd.Flags().BoolVar(&exact, "exact", false, "require a full graph isomorphism")

	return cmd
}

func newReplaceCmd(logger zerolog.Logger) *cobra.Command {
	var (
		name   string
		random bool
		seed   int64
		nbLoc  int
		loc    []int
		ori    []int
	)

	cmd := &cobra.Command{
		Use:   "replace <query> <parent> <replacement>",
		Short: "substitute a replacement moiety at matched locations",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			loader := newLoader(logger)
			query, err := loader.Load(args[0])
			if err != nil {
				return err
			}
			parent, err := loader.Load(args[1])
			if err != nil {
				return err
			}
			replacement, err := loader.Load(args[2])
			if err != nil {
				return err
			}

			opts := []replace.SchemeOption{
				replace.WithName(name),
				replace.WithSeed(seed),
				replace.WithLogger(logger),
			}
			if random {
				opts = append(opts, replace.WithRandom())
			}
			if cmd.Flags().Changed("nb-loc") {
				opts = append(opts, replace.WithNbLoc(nbLoc))
			}
			if len(loc) > 0 {
				opts = append(opts, replace.WithLoc(loc...))
			}
			if len(ori) > 0 {
				opts = append(opts, replace.WithOri(ori...))
			}
			if viper.GetBool("verbose") {
				opts = append(opts, replace.WithVerbose())
			}

			out, err := poremod.Replace(parent, query, replacement, opts...)
			if err != nil {
				return err
			}

			logger.Info().
				Str("name", out.Name).
				Int("atoms", out.NumAtoms()).
				Int("bonds", out.Bonds.EdgeCount()).
				Msg("replacement complete")

			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "new_xtal", "name of the produced crystal")
	cmd.Flags().BoolVar(&random, "random", false, "pick orientations uniformly at random")
	cmd.Flags().Int64Var(&seed, "seed", replace.DefaultSeed, "RNG seed for random/sampled schemes")
	cmd.Flags().IntVar(&nbLoc, "nb-loc", 0, "number of locations to sample")
	cmd.Flags().IntSliceVar(&loc, "loc", nil, "explicit 1-based location indices")
	cmd.Flags().IntSliceVar(&ori, "ori", nil, "explicit 1-based orientation indices (0 = optimal)")

	return cmd
}
