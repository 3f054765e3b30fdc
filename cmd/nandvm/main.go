// Command nandvm compiles an N-bits adder to NAND instructions, prints the
// program listing and checks it against native addition.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/db47h/nandvm"
	"github.com/db47h/nandvm/hwlib"
	"github.com/rs/zerolog"
)

func main() {
	bits := flag.Int("bits", 4, "adder width")
	list := flag.Bool("list", false, "print the program listing")
	verbose := flag.Bool("v", false, "log compilation details")
	flag.Parse()

	lvl := zerolog.InfoLevel
	if *verbose {
		lvl = zerolog.DebugLevel
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(lvl).With().Timestamp().Logger()

	if *bits < 1 || *bits > 10 {
		log.Fatal().Int("bits", *bits).Msg("adder width must be in [1, 10]")
	}

	b := nandvm.NewBuilder()
	a, x := hwlib.Bus("a", *bits), hwlib.Bus("b", *bits)
	b.Input(a...)
	b.Input(x...)
	out, c := hwlib.AdderN(b, "add", a, x)
	for i, o := range out {
		b.Output(nandvm.BusName("out", i), o)
	}
	b.Output("c", c)
	circuit, err := b.Finalize()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid circuit")
	}
	p, err := nandvm.Compile(circuit, nandvm.WithLogger(log))
	if err != nil {
		log.Fatal().Err(err).Msg("compilation failed")
	}
	if *list {
		fmt.Print(p)
	}

	n := int64(1) << uint(*bits)
	var vs [][]bool
	for i := int64(0); i < n; i++ {
		for j := int64(0); j < n; j++ {
			imm := make([]bool, p.NumInputs())
			if err = p.SetInt64(imm, "a", *bits, i); err == nil {
				err = p.SetInt64(imm, "b", *bits, j)
			}
			if err != nil {
				log.Fatal().Err(err).Send()
			}
			vs = append(vs, imm)
		}
	}
	res, err := p.RunBatch(0, vs)
	if err != nil {
		log.Fatal().Err(err).Msg("run failed")
	}
	for k, r := range res {
		i, j := int64(k)/n, int64(k)%n
		sum := nandvm.Int64(r, "out")
		if r["c"] {
			sum |= n
		}
		if sum != i+j {
			log.Fatal().Int64("a", i).Int64("b", j).Int64("got", sum).Msg("wrong sum")
		}
	}
	log.Info().Int("runs", len(res)).Int("instructions", p.Len()).Msg("all sums ok")
}
