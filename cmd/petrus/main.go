// Command petrus transcribes Brazilian Portuguese words into IPA, either one
// word at a time or in batch over a newline-delimited word list.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/pterm/pterm"
	"github.com/sirupsen/logrus"

	"github.com/alessandrobokan/PETRUS"
)

// config is the optional -config file's shape: it can override the default
// algorithm and resource paths without touching the command line.
type config struct {
	Algorithm              string `toml:"algorithm"`
	Prefixes               string `toml:"prefixes"`
	HomographsHeterophones string `toml:"homographs_heterophones"`
}

func main() {
	log := logrus.New()

	word := flag.String("w", "", "single word to transcribe")
	file := flag.String("file", "", "path to a newline-delimited word list to transcribe in batch")
	algo := flag.String("s", "", "syllabification algorithm: silva (default) or ceci")
	prefixesPath := flag.String("prefixes", "", "path to a prefix table overriding the embedded default")
	hhPath := flag.String("hh", "", "path to a homograph-heterophone table overriding the embedded default")
	configPath := flag.String("config", "", "optional TOML config overriding algorithm and resource paths")
	flag.Parse()

	if *configPath != "" {
		var cfg config
		if _, err := toml.DecodeFile(*configPath, &cfg); err != nil {
			log.WithError(err).Fatal("loading config file")
		}
		if *algo == "" {
			*algo = cfg.Algorithm
		}
		if *prefixesPath == "" {
			*prefixesPath = cfg.Prefixes
		}
		if *hhPath == "" {
			*hhPath = cfg.HomographsHeterophones
		}
	}

	algorithm, err := petrus.ParseAlgorithm(*algo)
	if err != nil {
		log.WithError(err).Fatal("parsing algorithm selector")
	}

	pipeline, err := petrus.Load(*prefixesPath, *hhPath)
	if err != nil {
		log.WithError(err).Fatal("loading resource tables")
	}

	switch {
	case *word != "":
		runSingleWord(pipeline, algorithm, *word)
	case *file != "":
		runBatchFile(log, pipeline, algorithm, *file)
	default:
		fmt.Fprintln(os.Stderr, "usage: petrus -w WORD | -file PATH [-s silva|ceci] [-prefixes PATH] [-hh PATH] [-config PATH]")
		os.Exit(2)
	}
}

func runSingleWord(p *petrus.Pipeline, algo petrus.Algorithm, word string) {
	r := p.Transcribe(word, algo)
	fmt.Printf("%s -> [%s] | %s | %s\n", word, r.IPA, r.Syllables, r.Annotated)
}

func runBatchFile(log *logrus.Logger, p *petrus.Pipeline, algo petrus.Algorithm, path string) {
	f, err := os.Open(path)
	if err != nil {
		log.WithError(err).Fatal("opening batch word list")
	}
	defer f.Close()

	pterm.Info.Printfln("transcribing words from %s", path)

	var processed int
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		word := scanner.Text()
		if word == "" {
			continue
		}
		r := p.Transcribe(word, algo)
		fmt.Printf("%s -> [%s] | %s | %s\n", word, r.IPA, r.Syllables, r.Annotated)
		processed++
	}
	if err := scanner.Err(); err != nil {
		log.WithError(err).Fatal("reading batch word list")
	}

	pterm.Info.Printfln("processed %d words", processed)
}
