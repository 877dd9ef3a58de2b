// SPDX-License-Identifier: MIT

// Command densela runs the library's dense linear-algebra facades over a
// matrix read from a YAML document.
//
// Input document shape:
//
//	rows:
//	  - [4, 3]
//	  - [6, 3]
//	rhs:          # optional, only the solve subcommand reads it
//	  - [1]
//	  - [2]
//
// Results print on stdout; structured logs (shape, timing, convergence)
// go to stderr.
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/densela/matrix"
)

// inputDoc mirrors the YAML document the subcommands read.
type inputDoc struct {
	Rows [][]float64 `yaml:"rows"`
	RHS  [][]float64 `yaml:"rhs"`
}

var inputPath string

var rootCmd = &cobra.Command{
	Use:           "densela",
	Short:         "Dense matrix decompositions and solvers",
	SilenceUsage:  true,
	SilenceErrors: true,
}

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Solve A·X = B (LU for square A, QR least squares otherwise)",
	RunE:  runSolve,
}

var inverseCmd = &cobra.Command{
	Use:   "inverse",
	Short: "Invert a square matrix",
	RunE:  runInverse,
}

var detCmd = &cobra.Command{
	Use:   "det",
	Short: "Determinant of a square matrix",
	RunE:  runDet,
}

var rankCmd = &cobra.Command{
	Use:   "rank",
	Short: "Numeric rank via singular values",
	RunE:  runRank,
}

var eigenCmd = &cobra.Command{
	Use:   "eigen",
	Short: "Eigenvalues and eigenvectors of a square matrix",
	RunE:  runEigen,
}

var svdCmd = &cobra.Command{
	Use:   "svd",
	Short: "Singular value decomposition",
	RunE:  runSVD,
}

func main() {
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})

	rootCmd.PersistentFlags().StringVarP(&inputPath, "input", "i", "-",
		"YAML input file, or - for stdin")
	rootCmd.AddCommand(solveCmd, inverseCmd, detCmd, rankCmd, eigenCmd, svdCmd)

	if err := rootCmd.Execute(); err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}

// loadInput reads and decodes the YAML document, returning the primary
// matrix and the raw document for subcommands that also need rhs.
func loadInput() (*matrix.Dense, *inputDoc, error) {
	var raw []byte
	var err error
	if inputPath == "-" {
		raw, err = io.ReadAll(os.Stdin)
	} else {
		raw, err = os.ReadFile(inputPath)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("read input: %w", err)
	}

	var doc inputDoc
	if err = yaml.Unmarshal(raw, &doc); err != nil {
		return nil, nil, fmt.Errorf("decode input: %w", err)
	}
	m, err := matrix.NewDenseFromRows(doc.Rows)
	if err != nil {
		return nil, nil, fmt.Errorf("rows: %w", err)
	}
	log.Info().Int("rows", m.Rows()).Int("cols", m.Cols()).Str("source", inputPath).
		Msg("matrix loaded")

	return m, &doc, nil
}

func runSolve(cmd *cobra.Command, args []string) error {
	a, doc, err := loadInput()
	if err != nil {
		return err
	}
	if len(doc.RHS) == 0 {
		return fmt.Errorf("solve requires an rhs block")
	}
	b, err := matrix.NewDenseFromRows(doc.RHS)
	if err != nil {
		return fmt.Errorf("rhs: %w", err)
	}

	start := time.Now()
	x, err := matrix.Solve(a, b)
	if err != nil {
		return err
	}
	log.Info().Dur("elapsed", time.Since(start)).Msg("system solved")
	fmt.Println(x)

	return nil
}

func runInverse(cmd *cobra.Command, args []string) error {
	a, _, err := loadInput()
	if err != nil {
		return err
	}

	start := time.Now()
	inv, err := matrix.Inverse(a)
	if err != nil {
		return err
	}
	log.Info().Dur("elapsed", time.Since(start)).Msg("matrix inverted")
	fmt.Println(inv)

	return nil
}

func runDet(cmd *cobra.Command, args []string) error {
	a, _, err := loadInput()
	if err != nil {
		return err
	}
	d, err := matrix.Det(a)
	if err != nil {
		return err
	}
	fmt.Printf("%.12g\n", d)

	return nil
}

func runRank(cmd *cobra.Command, args []string) error {
	a, _, err := loadInput()
	if err != nil {
		return err
	}
	r, err := matrix.Rank(a)
	if err != nil {
		return err
	}
	fmt.Println(r)

	return nil
}

func runEigen(cmd *cobra.Command, args []string) error {
	a, _, err := loadInput()
	if err != nil {
		return err
	}

	start := time.Now()
	eig, err := matrix.DecomposeEigen(a)
	if err != nil {
		return err
	}
	log.Info().Dur("elapsed", time.Since(start)).Bool("symmetric", eig.IsSymmetric()).
		Msg("eigendecomposition complete")

	re := eig.RealEigenvalues()
	im := eig.ImagEigenvalues()
	for i := range re {
		if im[i] == 0 {
			fmt.Printf("λ%d = %.12g\n", i, re[i])
		} else {
			fmt.Printf("λ%d = %.12g %+.12gi\n", i, re[i], im[i])
		}
	}
	fmt.Println("V =")
	fmt.Println(eig.V())

	return nil
}

func runSVD(cmd *cobra.Command, args []string) error {
	a, _, err := loadInput()
	if err != nil {
		return err
	}

	start := time.Now()
	svd, err := matrix.DecomposeSVD(a)
	if err != nil {
		return err
	}
	log.Info().Dur("elapsed", time.Since(start)).Bool("converged", svd.Converged()).
		Msg("svd complete")
	if !svd.Converged() {
		log.Warn().Msg("iteration cap reached; factors are approximate")
	}

	for i, s := range svd.SingularValues() {
		fmt.Printf("σ%d = %.12g\n", i, s)
	}
	fmt.Println("U =")
	fmt.Println(svd.U())
	fmt.Println("V =")
	fmt.Println(svd.V())

	return nil
}
