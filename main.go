package main

import (
	"io"
	"log"
	"os"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("descstats: ")

	if err := run(os.Stdin, os.Stdout); err != nil {
		log.Print(err)
		os.Exit(exitCode(err))
	}
}

func run(stdin io.Reader, stdout io.Writer) error {
	values, err := decodeInput(stdin)
	if err != nil {
		return err
	}
	stats, err := calculateStatistics(values)
	if err != nil {
		return err
	}
	return writeStats(stdout, stats)
}
