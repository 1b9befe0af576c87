// Command ln2 is a thin §6.1 driver binary: it configures the core at
// the requested precision, computes ln(2), and writes ln2.out alongside
// the executable.
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
		Name:  "ln2",
		Usage: "compute ln(2) to arbitrary precision",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "d", Value: 1000000, Usage: "digits10: decimal digits after the point"},
			&cli.IntFlag{Name: "t", Value: 4, Usage: "fft worker threads"},
		},
		Action: run,
	}
	if err := app.Run(os.Args); err != nil {
		logrus.WithError(err).Error("ln2: run failed")
		os.Exit(int(mpctl.ClassifyExit(err)))
	}
}

func run(c *cli.Context) error {
	digits10 := c.Int("d")
	fftThreads := c.Int("t")

	if _, err := mpctl.Bootstrap(digits10, fftThreads); err != nil {
		return err
	}

	start := time.Now()
	value, err := kernel.Ln2()
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	rendered := value.WriteString(types.FormatFixed, digits10)
	report := mpctl.WriteDigitReport("ln2", elapsed, mpctl.StripDecoration(rendered))

	if err := os.WriteFile("ln2.out", []byte(report), 0o644); err != nil {
		return err
	}
	fmt.Println("wrote ln2.out")
	return nil
}
