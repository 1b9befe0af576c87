// Command bessel is a thin §6.1-style driver binary wrapping
// kernel.BesselJ/kernel.Jn (supplemented per SPEC_FULL.md's
// original_source/bessel/bessel_main.cpp note): it configures the core,
// evaluates J_nu(x), and writes bessel.out.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/mpreal/mpcore/kernel"
	"github.com/mpreal/mpcore/mpctl"
	"github.com/mpreal/mpcore/mpreal"
	"github.com/mpreal/mpcore/types"
)

func main() {
	app := &cli.App{
		Name:  "bessel",
		Usage: "evaluate the cylindrical Bessel function of the first kind",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "d", Value: 1000000, Usage: "digits10: decimal digits after the point"},
			&cli.IntFlag{Name: "t", Value: 4, Usage: "fft worker threads"},
			&cli.StringFlag{Name: "x", Value: "1.2345", Usage: "argument x"},
			&cli.StringFlag{Name: "nu", Value: "0", Usage: "order nu (decimal, may be fractional)"},
		},
		Action: run,
	}
	if err := app.Run(os.Args); err != nil {
		logrus.WithError(err).Error("bessel: run failed")
		os.Exit(int(mpctl.ClassifyExit(err)))
	}
}

func run(c *cli.Context) error {
	digits10 := c.Int("d")
	fftThreads := c.Int("t")

	if _, err := mpctl.Bootstrap(digits10, fftThreads); err != nil {
		return err
	}

	x, err := mpreal.ReadString(c.String("x"))
	if err != nil {
		return err
	}
	nu, err := mpreal.ReadString(c.String("nu"))
	if err != nil {
		return err
	}

	start := time.Now()
	value, err := kernel.BesselJ(x, nu)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	rendered := value.WriteString(types.FormatFixed, digits10)
	label := fmt.Sprintf("J_%s(%s)", c.String("nu"), c.String("x"))
	report := mpctl.WriteDigitReport(label, elapsed, mpctl.StripDecoration(rendered))

	if err := os.WriteFile("bessel.out", []byte(report), 0o644); err != nil {
		return err
	}
	fmt.Println("wrote bessel.out")
	return nil
}
