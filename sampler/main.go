package main

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"text/template"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
	"github.com/yogieeeeee/dice-rng/common"
	"github.com/yogieeeeee/dice-rng/rng"
	"github.com/yogieeeeee/dice-rng/util"
)

func init() {
	if err := godotenv.Load(); err != nil {
		log.Printf("no dotenv loaded: %s", err)
	}
}

func executeDraw(gen *rng.Xorshift128P, draw common.Draw) (interface{}, error) {
	switch draw.Mode {
	case "raw":
		vals := make([]uint64, draw.Count)
		for i := range vals {
			vals[i] = gen.Next()
		}
		return vals, nil
	case "u32":
		vals := make([]uint32, draw.Count)
		for i := range vals {
			vals[i] = gen.NextUint32()
		}
		return vals, nil
	case "real":
		vals := make([]float64, draw.Count)
		for i := range vals {
			v, err := gen.NextDouble()
			if err != nil {
				return nil, err
			}
			vals[i] = v
		}
		return vals, nil
	case "range":
		spec := draw.Spec.(common.RangeSpec)
		vals := make([]int, draw.Count)
		for i := range vals {
			v, err := gen.NextRange(spec.Min, spec.Max)
			if err != nil {
				return nil, err
			}
			vals[i] = v
		}
		return vals, nil
	case "dice":
		spec := draw.Spec.(common.DiceSpec)
		vals := make([]int, draw.Count)
		for i := range vals {
			sum := 0
			for j := 0; j < spec.Dice; j++ {
				v, err := gen.NextRange(1, spec.Sides)
				if err != nil {
					return nil, err
				}
				sum += v
			}
			vals[i] = sum
		}
		return vals, nil
	}

	return nil, fmt.Errorf("unknown draw mode %q", draw.Mode)
}

func stringifyValues(values interface{}) []string {
	var out []string

	switch vals := values.(type) {
	case []uint64:
		for _, v := range vals {
			out = append(out, strconv.FormatUint(v, 10))
		}
	case []uint32:
		for _, v := range vals {
			out = append(out, strconv.FormatUint(uint64(v), 10))
		}
	case []float64:
		for _, v := range vals {
			out = append(out, strconv.FormatFloat(v, 'g', -1, 64))
		}
	case []int:
		for _, v := range vals {
			out = append(out, strconv.Itoa(v))
		}
	}

	return out
}

func main() {
	var err error

	args := struct {
		Seed  string `name:"seed" short:"s" default:"" help:"64-bit decimal seed; falls back to the DICE_RNG_SEED environment variable"`
		State string `name:"state" default:"" help:"32 hex characters of generator state to resume from (overrides seed)"`
		Plan  string `name:"plan" short:"p" default:"" help:"JSON plan file; overrides the single-draw flags"`

		Mode  string `name:"mode" short:"m" enum:"raw,u32,real,range,dice" default:"range" help:"Draw mode"`
		Count uint   `name:"count" short:"n" default:"100" help:"Samples per draw"`
		Min   int    `name:"min" default:"1" help:"Inclusive lower bound (range mode)"`
		Max   int    `name:"max" default:"6" help:"Inclusive upper bound (range mode)"`
		Dice  int    `name:"dice" default:"2" help:"Dice per roll (dice mode)"`
		Sides int    `name:"sides" default:"6" help:"Sides per die (dice mode)"`

		Format             string `name:"format" short:"f" enum:"csv,json" default:"csv" help:"Data format"`
		Out                string `name:"out" short:"o" default:"samples_{{.Label}}.{{.Format}}" help:"File to output to (templated)"`
		ExportColumnTitles bool   `name:"export_column_titles" negatable:"" default:"true" help:"(applicable only to CSV outputs) whether to include column titles"`
	}{}

	_ = kong.Parse(&args)

	var plan common.Plan
	label := args.Mode

	if args.Plan != "" {
		var body []byte
		if body, err = os.ReadFile(args.Plan); err != nil {
			log.Fatalf("reading plan file \"%s\" failed: %s", args.Plan, err)
		}

		if plan, err = common.ParsePlan(body); err != nil {
			log.Fatalf("parsing plan file \"%s\" failed: %s", args.Plan, err)
		}

		label = strings.TrimSuffix(filepath.Base(args.Plan), filepath.Ext(args.Plan))
	} else {
		draw := common.Draw{
			DrawHeader: common.DrawHeader{Name: args.Mode, Mode: args.Mode, Count: args.Count},
		}

		switch args.Mode {
		case "range":
			draw.Spec = common.RangeSpec{Min: args.Min, Max: args.Max}
		case "dice":
			draw.Spec = common.DiceSpec{Dice: args.Dice, Sides: args.Sides}
		}

		plan = common.Plan{Draws: []common.Draw{draw}}
	}

	var gen *rng.Xorshift128P

	switch {
	case args.State != "":
		var words []uint64
		if words, err = util.StringToWords(args.State); err != nil {
			log.Fatalf("bad --state value: %s", err)
		}

		if gen, err = rng.NewFromState(words); err != nil {
			log.Fatalf("bad --state value: %s", err)
		}
	case args.Seed != "":
		var seed uint64
		if seed, err = strconv.ParseUint(args.Seed, 10, 64); err != nil {
			log.Fatalf("bad --seed value: %s", err)
		}

		gen, err = rng.New(seed)
	case plan.State != nil:
		gen, err = rng.NewFromState(plan.State)
	case plan.Seed != nil:
		gen, err = rng.New(*plan.Seed)
	case os.Getenv("DICE_RNG_SEED") != "":
		var seed uint64
		if seed, err = strconv.ParseUint(os.Getenv("DICE_RNG_SEED"), 10, 64); err != nil {
			log.Fatalf("bad DICE_RNG_SEED value: %s", err)
		}

		gen, err = rng.New(seed)
	default:
		gen, err = rng.New()
	}

	if err != nil {
		log.Fatalf("creating the generator failed: %s", err)
	}

	log.Printf("initial state: %s", gen)

	columns := make([][]string, 0, len(plan.Draws))
	document := map[string]interface{}{}

	for _, draw := range plan.Draws {
		var values interface{}
		if values, err = executeDraw(gen, draw); err != nil {
			log.Fatalf("draw \"%s\" failed: %s", draw.Name, err)
		}

		columns = append(columns, stringifyValues(values))
		document[draw.Name] = values
	}

	var outFileNameTemplate *template.Template
	if outFileNameTemplate, err = template.New("").Parse(args.Out); err != nil {
		log.Fatalf("error while creating the output filename template: %s", err)
	}

	outFileNameBuf := bytes.Buffer{}

	templateArguments := struct {
		Label  string
		Format string
	}{
		Label:  label,
		Format: args.Format,
	}

	if err = outFileNameTemplate.Execute(&outFileNameBuf, templateArguments); err != nil {
		log.Fatalf("error while executing the output filename template: %s", err)
	}

	outFileName := outFileNameBuf.String()

	var outFile *os.File
	if outFile, err = os.Create(outFileName); err != nil {
		log.Fatalf("error while creating the output file \"%s\": %s", outFileName, err)
	}

	defer outFile.Close()

	switch args.Format {
	case "csv":
		csvWriter := csv.NewWriter(outFile)

		if args.ExportColumnTitles {
			titles := make([]string, 0, len(plan.Draws))
			for _, draw := range plan.Draws {
				titles = append(titles, draw.Name)
			}

			_ = csvWriter.Write(titles)
		}

		rowCount := 0
		for _, column := range columns {
			if len(column) > rowCount {
				rowCount = len(column)
			}
		}

		for i := 0; i < rowCount; i++ {
			row := make([]string, len(columns))
			for j, column := range columns {
				if i < len(column) {
					row[j] = column[i]
				}
			}

			csvWriter.Write(row)
		}

		csvWriter.Flush()
	case "json":
		var marshalled []byte
		if marshalled, err = json.Marshal(document); err != nil {
			log.Fatalf("marshalling the samples failed: %s", err)
		}

		if _, err = outFile.Write(marshalled); err != nil {
			log.Fatalf("writing the samples failed: %s", err)
		}
	}

	finalState := gen.CurrentState()
	log.Printf("final state: %s (pass via --state to resume)", util.ArrayToString(finalState[:]))
}
