package io

import (
	"fmt"
	"sort"
	"strings"

	"gopkg.in/gcfg.v1"

	"github.com/phil-mansfield/planes/num"
	"github.com/phil-mansfield/planes/plane"
)

const ExamplePlanesFile = `[Numeric]

# Number of significant decimal digits kept by all arithmetic.
Precision = 30
# Values with a magnitude smaller than Eps are treated as zero by every zero,
# parallel, and orthogonal test.
Eps = 1e-10

# Each [Plane "name"] section describes the plane Normal . x = Constant. Normal
# must contain exactly three whitespace-separated decimal numbers. Values are
# read as exact decimals, so they should be quoted to preserve their digits.

[Plane "p1"]
Normal = "-0.412 3.806 0.728"
Constant = -3.46

[Plane "p2"]
Normal = "1.03 -9.515 -1.82"
Constant = 8.65

[Plane "p3"]
Normal = "-7.926 8.625 -7.212"
Constant = -7.952`

type NumericConfig struct {
	Precision int
	Eps       string
}

func (con *NumericConfig) ValidPrecision() bool {
	return con.Precision > 0
}

func (con *NumericConfig) ValidEps() bool {
	_, err := num.NewContext(num.DefaultPrecision, con.Eps)
	return err == nil
}

// Context creates the num.Context described by con.
func (con *NumericConfig) Context() (*num.Context, error) {
	if !con.ValidPrecision() {
		return nil, fmt.Errorf(
			"Precision must be positive, but is %d.", con.Precision,
		)
	} else if !con.ValidEps() {
		return nil, fmt.Errorf(
			"Eps must be a positive decimal, but is '%s'.", con.Eps,
		)
	}
	return num.NewContext(uint32(con.Precision), con.Eps)
}

type PlaneConfig struct {
	// Required
	Normal   string
	Constant string

	// Set by CheckInit
	Name string
}

func (pc *PlaneConfig) CheckInit(name string) error {
	if n := len(strings.Fields(pc.Normal)); n != plane.Dimension {
		return fmt.Errorf(
			"Normal of Plane '%s' must have %d components, but has %d.",
			name, plane.Dimension, n,
		)
	}

	pc.Name = name
	if pc.Constant == "" {
		pc.Constant = "0"
	}

	return nil
}

// Plane constructs the plane described by pc.
func (pc *PlaneConfig) Plane(ctx *num.Context) (*plane.Plane, error) {
	p, err := plane.Parse(ctx, strings.Fields(pc.Normal), pc.Constant)
	if err != nil {
		return nil, fmt.Errorf("Plane '%s': %w", pc.Name, err)
	}
	return p, nil
}

type PlanesConfig struct {
	Numeric NumericConfig
	Plane   map[string]*PlaneConfig
}

func DefaultPlanesConfig() *PlanesConfig {
	return &PlanesConfig{
		Numeric: NumericConfig{
			Precision: num.DefaultPrecision,
			Eps:       num.DefaultEps,
		},
	}
}

// ReadPlanesConfig reads the gcfg file fname. Unset [Numeric] values keep
// their defaults.
func ReadPlanesConfig(fname string) (*PlanesConfig, error) {
	con := DefaultPlanesConfig()
	if err := gcfg.ReadFileInto(con, fname); err != nil {
		return nil, err
	}
	return con, con.checkInit()
}

// ParsePlanesConfig is identical to ReadPlanesConfig, but reads the
// configuration from a string.
func ParsePlanesConfig(str string) (*PlanesConfig, error) {
	con := DefaultPlanesConfig()
	if err := gcfg.ReadStringInto(con, str); err != nil {
		return nil, err
	}
	return con, con.checkInit()
}

func (con *PlanesConfig) checkInit() error {
	for name, pc := range con.Plane {
		if err := pc.CheckInit(name); err != nil {
			return err
		}
	}
	return nil
}

// Planes constructs every plane in con, sorted by name.
func (con *PlanesConfig) Planes() ([]NamedPlane, error) {
	ctx, err := con.Numeric.Context()
	if err != nil {
		return nil, err
	}

	names := []string{}
	for name := range con.Plane {
		names = append(names, name)
	}
	sort.Strings(names)

	planes := make([]NamedPlane, len(names))
	for i, name := range names {
		p, err := con.Plane[name].Plane(ctx)
		if err != nil {
			return nil, err
		}
		planes[i] = NamedPlane{Name: name, Plane: p}
	}

	return planes, nil
}
