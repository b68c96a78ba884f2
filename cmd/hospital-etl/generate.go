package main

import (
	"github.com/spf13/cobra"

	"github.com/mavenrank/rag-chatbot-langchain-graphdb/internal/etl/generate"
)

var (
	genDir        string
	genSeed       uint64
	genHospitals  int
	genPayers     int
	genPhysicians int
	genPatients   int
	genVisits     int
	genReviews    int
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a synthetic hospital dataset as CSV extracts",
	Long: `Generate writes the six CSV extracts (hospitals, payers, physicians,
patients, visits, reviews) with synthetic but referentially consistent data.
Every foreign key in the generated visits and reviews resolves to a generated
row, so a load of the output never hits a missing endpoint.`,
	RunE: runGenerate,
}

func init() {
	defaults := generate.DefaultOptions("")

	generateCmd.Flags().StringVar(&genDir, "out", "./data", "directory to write the CSV files into")
	generateCmd.Flags().Uint64Var(&genSeed, "seed", 0, "random seed (0 seeds from entropy)")
	generateCmd.Flags().IntVar(&genHospitals, "hospitals", defaults.Hospitals, "number of hospitals")
	generateCmd.Flags().IntVar(&genPayers, "payers", defaults.Payers, "number of payers")
	generateCmd.Flags().IntVar(&genPhysicians, "physicians", defaults.Physicians, "number of physicians")
	generateCmd.Flags().IntVar(&genPatients, "patients", defaults.Patients, "number of patients")
	generateCmd.Flags().IntVar(&genVisits, "visits", defaults.Visits, "number of visits")
	generateCmd.Flags().IntVar(&genReviews, "reviews", defaults.Reviews, "number of reviews")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	opts := generate.Options{
		Dir:        genDir,
		Seed:       genSeed,
		Hospitals:  genHospitals,
		Payers:     genPayers,
		Physicians: genPhysicians,
		Patients:   genPatients,
		Visits:     genVisits,
		Reviews:    genReviews,
	}

	paths, err := generate.New(opts).Run()
	if err != nil {
		return err
	}

	cmd.Println("Generated:")
	cmd.Println("  " + paths.Hospitals)
	cmd.Println("  " + paths.Payers)
	cmd.Println("  " + paths.Physicians)
	cmd.Println("  " + paths.Patients)
	cmd.Println("  " + paths.Visits)
	cmd.Println("  " + paths.Reviews)
	return nil
}
