// Command pi is a thin §6.1 driver binary: it configures the core at the
// requested precision, computes pi with the requested algorithm, and
// writes pi.out alongside the executable.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/mpreal/mpcore/kernel"
	"github.com/mpreal/mpcore/mpctl"
	"github.com/mpreal/mpcore/types"
)

func main() {
	app := &cli.App{
		Name:  "pi",
		Usage: "compute pi to arbitrary precision",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "d", Value: 1000000, Usage: "digits10: decimal digits after the point"},
			&cli.IntFlag{Name: "t", Value: 4, Usage: "fft worker threads"},
			&cli.IntFlag{Name: "m", Value: 0, Usage: "0=Brent quadratic, 1=Borwein cubic, 2=Borwein quartic"},
		},
		Action: run,
	}
	if err := app.Run(os.Args); err != nil {
		logrus.WithError(err).Error("pi: run failed")
		os.Exit(int(mpctl.ClassifyExit(err)))
	}
}

func run(c *cli.Context) error {
	digits10 := c.Int("d")
	fftThreads := c.Int("t")
	method := kernel.PiMethod(c.Int("m"))

	if _, err := mpctl.Bootstrap(digits10, fftThreads); err != nil {
		return err
	}

	start := time.Now()
	value, err := kernel.CalculatePi(method)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	rendered := value.WriteString(types.FormatFixed, digits10)
	report := mpctl.WriteDigitReport("pi", elapsed, mpctl.StripDecoration(rendered))

	if err := os.WriteFile("pi.out", []byte(report), 0o644); err != nil {
		return err
	}
	fmt.Println("wrote pi.out")
	return nil
}
