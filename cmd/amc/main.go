// Command amc evaluates a compiled d-DNNF circuit under a chosen semiring:
// a thin demonstration of the pkg/amc evaluator, not a replacement for
// driving the library from Go directly.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ML-KULeuven/amc-grad/pkg/algebra"
	"github.com/ML-KULeuven/amc-grad/pkg/amc"
	"github.com/ML-KULeuven/amc-grad/pkg/circuit"
	"github.com/ML-KULeuven/amc-grad/pkg/weights"
)

var (
	ddnnfPath   string
	algebraName string
	weightsPath string
	debug       bool

	cmd = &cobra.Command{
		Use:   "amc",
		Short: "Evaluate a compiled d-DNNF circuit under a chosen semiring",
		Long:  "Evaluate a compiled d-DNNF circuit under a chosen semiring",
		RunE:  run,
	}
)

func init() {
	flags := cmd.Flags()
	flags.StringVar(&ddnnfPath, "ddnnf", "", "path to a compiled d-DNNF file (required)")
	flags.StringVar(&algebraName, "algebra", "real", "semiring to evaluate under: bool, integer, real, log, fuzzy")
	flags.StringVar(&weightsPath, "weights", "", "optional path to a 'lit value' weights file; a variable without a weight line keeps the semiring's zero as its positive weight, and its negative literal reads the negation of that zero")
	flags.BoolVar(&debug, "debug", false, "use debug log level")
	cmd.MarkFlagRequired("ddnnf")
}

func main() {
	if err := cmd.Execute(); err != nil {
		log.Fatal(err)
	}
}

func run(c *cobra.Command, args []string) error {
	if debug {
		log.SetLevel(log.DebugLevel)
	}

	f, err := os.Open(ddnnfPath)
	if err != nil {
		return err
	}
	defer f.Close()

	circ, err := circuit.ParseDDNNF(f)
	if err != nil {
		return err
	}

	raw, err := readWeights(weightsPath)
	if err != nil {
		return err
	}

	switch algebraName {
	case "bool":
		alg := algebra.Bool{}
		w := weights.NewPosOnlyWeights[bool](alg, circ.NbVars())
		for lit, v := range raw {
			w.Add(lit, v != 0)
		}
		fmt.Println(amc.Eval[bool](alg, circ, w))
	case "integer":
		alg := algebra.Integer{}
		w := weights.NewPosOnlyWeights[int64](alg, circ.NbVars())
		for lit, v := range raw {
			w.Add(lit, int64(v))
		}
		fmt.Println(amc.Eval[int64](alg, circ, w))
	case "real":
		alg := algebra.Real{}
		w := weights.NewPosOnlyWeights[float64](alg, circ.NbVars())
		for lit, v := range raw {
			w.Add(lit, v)
		}
		fmt.Println(amc.Eval[float64](alg, circ, w))
	case "log":
		alg := algebra.Log{}
		w := weights.NewPosOnlyWeights[float64](alg, circ.NbVars())
		for lit, v := range raw {
			w.Add(lit, v)
		}
		fmt.Println(amc.Eval[float64](alg, circ, w))
	case "fuzzy":
		alg := algebra.Fuzzy{}
		w := weights.NewPosOnlyWeights[float64](alg, circ.NbVars())
		for lit, v := range raw {
			w.Add(lit, v)
		}
		fmt.Println(amc.Eval[float64](alg, circ, w))
	default:
		return fmt.Errorf("amc: unknown algebra %q", algebraName)
	}
	return nil
}

func readWeights(path string) (map[int]float64, error) {
	out := map[int]float64{}
	if path == "" {
		return out, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, fmt.Errorf("amc: malformed weights line %q", line)
		}
		lit, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, err
		}
		val, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, err
		}
		out[lit] = val
	}
	return out, scanner.Err()
}
