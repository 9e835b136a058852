// Copyright (c) 2025 hitoshi.mukai.b@gmail.com. All rights reserved.
// You are free to use this source code for any purpose. The copyright remains with the author.
// The author accepts no liability for any damages arising from the use of this source code.
//
// Last modified: 2026.10.17
//

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	u "github.com/mkhts/units"
)

func main() {

	// Parse command line arguments
	fs := flag.NewFlagSet(filepath.Base(os.Args[0]), flag.ContinueOnError)
	args, err := parseArgs(fs, os.Args[1:])
	if err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintf(os.Stderr, "err=%s\n", err.Error())
		}
		os.Exit(1)
	}

	logger, err := newLogger(args.dbg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "err=%s\n", err.Error())
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	// Run the main application
	if err := runApplication(args, logger, os.Stdout); err != nil {
		logger.Error("calculation failed", zap.Error(err))
		fmt.Fprintf(os.Stderr, "err=%s\n", err.Error())
		os.Exit(1)
	}
}

// Main application processing
func runApplication(args cmdOpt, logger *zap.Logger, w io.Writer) error {

	// Motor drive chain
	if err := printDrive(args, logger, w); err != nil {
		return fmt.Errorf("drive calculation failed: %w", err)
	}

	// Great-circle distance, only when both ends are given
	if args.from.set && args.to.set {
		printDistance(args.from.c, args.to.c, logger, w)
	}
	return nil
}

// Battery -> motor -> shaft -> load
func printDrive(args cmdOpt, logger *zap.Logger, w io.Writer) error {
	voltage := u.VoltageFromVolts(args.volts)
	current := u.CurrentFromAmperes(args.amps)

	// Power drawn from the battery
	power := voltage.MulCurrent(current)
	logger.Debug("power", zap.Stringer("voltage", voltage), zap.Stringer("current", current), zap.Stringer("power", power))

	// Torque available at the motor speed
	speed := u.AngularVelocityFromRPM(args.rpm)
	torque := power.DivAngularVelocity(speed)
	logger.Debug("torque", zap.Stringer("speed", speed), zap.Stringer("torque", torque))

	// Force at the end of the shaft
	shaft := u.LengthFromCentimeters(args.shaftCm)
	force := torque.DivLength(shaft)
	logger.Debug("force", zap.Stringer("shaft", shaft), zap.Stringer("force", force))

	// Acceleration of the load
	load := u.MassFromGrams(args.loadG)
	accel := force.DivMass(load)
	logger.Debug("acceleration", zap.Stringer("load", load), zap.Stringer("acceleration", accel))

	for _, v := range []float64{power.Value(), torque.Value(), force.Value(), accel.Value()} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("result is not finite: %v", v)
		}
	}

	fmt.Fprintf(w, "power        %s (%s)\n", power, power.PrefixedString(u.Kilo))
	fmt.Fprintf(w, "torque       %s\n", torque)
	fmt.Fprintf(w, "force        %s (%s)\n", force, force.PrefixedString(u.Kilo))
	fmt.Fprintf(w, "acceleration %s (%.1f g)\n", accel, accel.StandardGravities())
	return nil
}

func printDistance(from, to u.Coordinate, logger *zap.Logger, w io.Writer) {
	d := from.Distance(to)
	b := from.BearingTo(to)
	logger.Debug("distance", zap.Stringer("from", from), zap.Stringer("to", to), zap.Float64("chord_m", from.ChordDistance(to).Meters()))
	fmt.Fprintf(w, "distance     %s (%s)\n", d.PrefixedString(u.Kilo), d)
	fmt.Fprintf(w, "bearing      %.1f deg\n", b.Degrees())
}

// Build the logger; debug level 1 and above shows intermediate quantities
func newLogger(dbg int) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	if dbg >= 1 {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	logger, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}

// ------------------------------------
// Command line arguments
// ------------------------------------

type cmdOpt struct {
	volts   float64
	amps    float64
	rpm     float64
	shaftCm float64
	loadG   float64
	from    coordVar
	to      coordVar
	dbg     int
}

// Coordinate given as "lat lon" in degrees
type coordVar struct {
	c   u.Coordinate
	set bool
}

func (p *coordVar) Set(s string) error {
	f := strings.Fields(s)
	if len(f) != 2 {
		return fmt.Errorf("expected \"lat lon\", got %q", s)
	}
	lat, err := strconv.ParseFloat(f[0], 64)
	if err != nil {
		return err
	}
	lon, err := strconv.ParseFloat(f[1], 64)
	if err != nil {
		return err
	}
	p.c = u.CoordinateFromDegrees(lat, lon)
	p.set = true
	return nil
}

func (p *coordVar) String() string {
	if p == nil || !p.set {
		return ""
	}
	return p.c.String()
}

func parseArgs(fs *flag.FlagSet, argv []string) (a cmdOpt, err error) {
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), `
[Usage]
	%s [Options]
	%s [Options] -from "38.898556 -77.037852" -to "38.897147 -77.043934"

[Options]
`, fs.Name(), fs.Name())
		fs.PrintDefaults()
	}
	fs.Float64Var(&a.volts, "V", 96, "Battery voltage [V]")
	fs.Float64Var(&a.amps, "A", 200, "Current drawn from the battery [A]")
	fs.Float64Var(&a.rpm, "rpm", 1500, "Motor speed [rpm]. Must not be 0.")
	fs.Float64Var(&a.shaftCm, "shaft", 5, "Shaft length [cm]. Must not be 0.")
	fs.Float64Var(&a.loadG, "load", 100, "Load mass [g]. Must not be 0.")
	fs.Var(&a.from, "from", "Start coordinate. Enclose in quotes like -from \"35.73101206 139.7396917\"")
	fs.Var(&a.to, "to", "End coordinate. Enclose in quotes like -to \"35.681236 139.767125\"")
	fs.IntVar(&a.dbg, "x", 0, "Debug information display. 0(OFF), 1(intermediate quantities)")
	if err = fs.Parse(argv); err != nil {
		return a, err
	}
	if fs.NArg() != 0 {
		return a, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	if a.rpm == 0 || a.shaftCm == 0 || a.loadG == 0 {
		return a, fmt.Errorf("-rpm, -shaft and -load must not be 0")
	}
	if a.from.set != a.to.set {
		return a, fmt.Errorf("-from and -to must be given together")
	}
	return a, nil
}
