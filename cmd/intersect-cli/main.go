package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/future-architect/intersect"
	"go.uber.org/zap"
	"gopkg.in/alecthomas/kingpin.v2"
)

var (
	verbose = kingpin.Flag("verbose", "Print debug logs").Short('v').Bool()

	pairCmd    = kingpin.Command("pair", "Intersect two comma separated lists")
	pairKernel = pairCmd.Flag("kernel", "Kernel").Default(intersect.Galloping.String()).Enum(intersect.KernelNames()...)
	pairA      = pairCmd.Arg("A", "First list").Required().String()
	pairB      = pairCmd.Arg("B", "Second list").Required().String()

	manyCmd    = kingpin.Command("many", "Intersect any number of comma separated lists")
	manyKernel = manyCmd.Flag("kernel", "Kernel").Default(intersect.Galloping.String()).Enum(intersect.KernelNames()...)
	manyLists  = manyCmd.Arg("LIST", "Lists").Required().Strings()

	benchCmd        = kingpin.Command("bench", "Time kernels over generated lists")
	benchKernels    = benchCmd.Flag("kernel", "Kernels to run (default: all)").Enums(intersect.KernelNames()...)
	benchCount      = benchCmd.Flag("count", "Number of lists").Default("3").Int()
	benchSize       = benchCmd.Flag("size", "Values per list").Default("4096").Int()
	benchIterations = benchCmd.Flag("iterations", "Calls per kernel").Default("1000").Int()
	benchSeed       = benchCmd.Flag("seed", "Random seed").Default("1").Uint64()

	searchCmd       = kingpin.Command("search", "Index JSON documents in memory and search them")
	inputFolder     = searchCmd.Flag("input", "Input folder").Required().ExistingDir()
	tags            = searchCmd.Flag("tag", "Tags").Strings()
	searchKernel    = searchCmd.Flag("kernel", "Kernel").Default(intersect.Galloping.String()).Envar("INTERSECT_KERNEL").Enum(intersect.KernelNames()...)
	language        = searchCmd.Flag("language", "Search language").Default("en").String()
	defaultLanguage = searchCmd.Flag("default-language", "Language of documents without lang").Default("en").String()
	searchWords     = searchCmd.Arg("WORDS", "Search words").Strings()
)

func newLogger() *zap.Logger {
	var logger *zap.Logger
	var err error
	if *verbose {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

func printList(label string, list []uint64) {
	values := make([]string, len(list))
	for i, v := range list {
		values[i] = fmt.Sprint(v)
	}
	color.Blue("%s (%d values)", label, len(list))
	fmt.Println(strings.Join(values, ","))
}

func pair() error {
	kernel, _ := intersect.ParseKernel(*pairKernel)
	a, err := parseList(*pairA)
	if err != nil {
		return err
	}
	b, err := parseList(*pairB)
	if err != nil {
		return err
	}
	result, _ := intersect.IntersectPair(kernel, a, b)
	printList(kernel.String(), result)
	return nil
}

func many() error {
	kernel, _ := intersect.ParseKernel(*manyKernel)
	lists, err := parseLists(*manyLists)
	if err != nil {
		return err
	}
	printList(kernel.String(), intersect.IntersectMany(lists, kernel))
	return nil
}

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	command := kingpin.Parse()
	logger := newLogger()
	defer logger.Sync()

	var err error
	switch command {
	case pairCmd.FullCommand():
		err = pair()
	case manyCmd.FullCommand():
		err = many()
	case benchCmd.FullCommand():
		err = bench(logger)
	case searchCmd.FullCommand():
		err = search(ctx, logger)
	}
	if err != nil {
		color.Red("%s error: %s", command, err.Error())
		os.Exit(1)
	}
}
