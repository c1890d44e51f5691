package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/phil-mansfield/planes/io"
	"github.com/phil-mansfield/planes/num"
)

type FileGroup struct {
	log *os.File
}

func (fg *FileGroup) Close() {
	if fg.log != nil {
		err := fg.log.Close()
		if err != nil {
			log.Fatal(err.Error())
		}
	}
}

// modeFlags holds the flags which select what planes does, along with the
// names of the numeric override flags given on the command line.
type modeFlags struct {
	Config, Table, ExampleConfig string
	Overrides                    []string
}

// mode returns "Config", "Table", or "ExampleConfig". Exactly one of those
// flags must be set, and -Precision and -Eps are only accepted in Table mode
// since a config file carries its own [Numeric] section.
func (mf *modeFlags) mode() (string, error) {
	modes := []string{}
	if mf.Config != "" {
		modes = append(modes, "Config")
	}
	if mf.Table != "" {
		modes = append(modes, "Table")
	}
	if mf.ExampleConfig != "" {
		modes = append(modes, "ExampleConfig")
	}

	switch len(modes) {
	case 0:
		return "", fmt.Errorf(
			"One of -Config, -Table, or -ExampleConfig must be given.",
		)
	case 1:
	default:
		return "", fmt.Errorf(
			"Planes can be read from only one source, but -%s were all given.",
			strings.Join(modes, ", -"),
		)
	}

	if modes[0] != "Table" && len(mf.Overrides) > 0 {
		return "", fmt.Errorf(
			"-%s can only be used with -Table. With -Config, set Precision "+
				"and Eps in the config file's [Numeric] section.",
			strings.Join(mf.Overrides, " and -"),
		)
	}

	return modes[0], nil
}

func main() {
	var (
		mf           modeFlags
		logPath, eps string
		precision    int
		verbose      bool
	)

	flag.StringVar(&mf.Config, "Config", "",
		"Configuration file describing [Numeric] settings and [Plane] sections.")
	flag.StringVar(&mf.Table, "Table", "",
		"Whitespace-separated table with one plane per row: n1 n2 n3 c.")
	flag.StringVar(&mf.ExampleConfig, "ExampleConfig", "",
		"Prints an example configuration file of the specified type to "+
			"stdout. The only accepted argument is 'Planes'.")

	flag.StringVar(&logPath, "Log", "",
		"Location to write log statements to. Default is stderr.")
	flag.IntVar(&precision, "Precision", num.DefaultPrecision,
		"Significant digits. Only valid with -Table; config files use "+
			"[Numeric] Precision.")
	flag.StringVar(&eps, "Eps", num.DefaultEps,
		"Near-zero tolerance. Only valid with -Table; config files use "+
			"[Numeric] Eps.")
	flag.BoolVar(&verbose, "Verbose", false,
		"Also print the equation of each plane.")

	flag.Parse()
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "Precision" || f.Name == "Eps" {
			mf.Overrides = append(mf.Overrides, f.Name)
		}
	})

	fg := &FileGroup{}
	defer fg.Close()
	if logPath != "" {
		lf, err := os.Create(logPath)
		if err != nil {
			log.Fatal(err.Error())
		}
		log.SetOutput(lf)
		fg.log = lf
	}

	modeName, err := mf.mode()
	if err != nil {
		log.Fatal(err.Error())
	}

	var planes []io.NamedPlane
	switch modeName {
	case "Config":
		con, err := io.ReadPlanesConfig(mf.Config)
		if err != nil {
			log.Fatal(err.Error())
		}
		if planes, err = con.Planes(); err != nil {
			log.Fatal(err.Error())
		}

	case "Table":
		numCon := &io.NumericConfig{Precision: precision, Eps: eps}
		ctx, err := numCon.Context()
		if err != nil {
			log.Fatal(err.Error())
		}
		if planes, err = io.ReadPlaneTable(mf.Table, nil, ctx); err != nil {
			log.Fatal(err.Error())
		}

	case "ExampleConfig":
		switch mf.ExampleConfig {
		case "Planes":
			fmt.Println(io.ExamplePlanesFile)
		default:
			log.Fatal(
				"Unrecognized 'ExampleConfig' argument. The only recognized " +
					"argument is 'Planes'.",
			)
		}
		return

	default:
		panic("Impossible")
	}

	log.Printf("Comparing %d planes.", len(planes))
	compareMain(planes, verbose)
}

func compareMain(planes []io.NamedPlane, verbose bool) {
	if verbose {
		for _, p := range planes {
			fmt.Printf("%s: %s\n", p.Name, p.Plane)
		}
	}

	cmps, err := io.CompareAll(planes)
	if err != nil {
		log.Fatal(err.Error())
	}
	for i := range cmps {
		fmt.Println(cmps[i].String())
	}
}
