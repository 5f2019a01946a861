package main

import (
	"fmt"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/alecthomas/kingpin"
)

type argsParser interface {
	parse([]string) (config, error)
}

type kingpinParser struct {
	app *kingpin.Application

	inputPath string

	numWorkers uint64
	base       string
	normalize  bool
	live       bool
	rate       *nullableUint64
	timeout    time.Duration
	headers    *headersList
	certPath   string
	keyPath    string
	insecure   bool
	printSpec  string
	noPrint    bool
	formatSpec string
}

func newKingpinParser() argsParser {
	kparser := &kingpinParser{
		rate:       new(nullableUint64),
		headers:    new(headersList),
		numWorkers: defaultNumberOfWorkers,
		timeout:    defaultTimeout,
		printSpec:  "i,p,r",
		formatSpec: "plain-text",
	}

	app := kingpin.New("", "Batch URL auditing tool").
		Version("urlstat version " + version + " " + runtime.GOOS + "/" +
			runtime.GOARCH)
	app.Flag("workers", "Number of concurrent workers").
		Short('w').
		PlaceHolder(strconv.FormatUint(defaultNumberOfWorkers, decBase)).
		Uint64Var(&kparser.numWorkers)
	app.Flag("base", "Base URL for relative references").
		Short('b').
		Default("").
		StringVar(&kparser.base)
	app.Flag("normalize", "Print the normalized href of every valid URL").
		Short('n').
		BoolVar(&kparser.normalize)
	app.Flag("live", "Probe every valid URL with a HEAD request").
		Short('l').
		BoolVar(&kparser.live)
	app.Flag("rate", "Probe rate limit in requests per second").
		Short('r').
		PlaceHolder("[<pos. int.>]").
		SetValue(kparser.rate)
	app.Flag("timeout", "Probe socket/request timeout").
		PlaceHolder(defaultTimeout.String()).
		Short('t').
		DurationVar(&kparser.timeout)
	app.Flag("header", "HTTP headers to use on probes(can be repeated)").
		PlaceHolder("\"K: V\"").
		Short('H').
		SetValue(kparser.headers)
	app.Flag("cert", "Path to the client's TLS Certificate").
		Default("").
		StringVar(&kparser.certPath)
	app.Flag("key", "Path to the client's TLS Certificate Private Key").
		Default("").
		StringVar(&kparser.keyPath)
	app.Flag("insecure",
		"Controls whether a client verifies the server's certificate"+
			" chain and host name").
		Short('k').
		BoolVar(&kparser.insecure)
	app.Flag("print", "Specifies what to output. Comma-separated list of values"+
		" 'intro' (short: 'i'), 'progress' (short: 'p'), 'result' (short: 'r').").
		PlaceHolder("<spec>").
		Short('p').
		StringVar(&kparser.printSpec)
	app.Flag("no-print", "Don't output anything").
		Short('q').
		BoolVar(&kparser.noPrint)
	app.Flag("format", "Which format to use to output the result. <spec> is either"+
		" a name (or its shorthand) of some format understood by urlstat or a path"+
		" to the user-defined template prefixed with 'path:' string.").
		PlaceHolder("<spec>").
		Short('o').
		StringVar(&kparser.formatSpec)

	app.Arg("input", "File with URLs to audit, one per line('-' for stdin)").
		Required().
		StringVar(&kparser.inputPath)

	kparser.app = app
	return argsParser(kparser)
}

func (k *kingpinParser) parse(args []string) (config, error) {
	k.app.Name = args[0]
	rest := args[1:]
	for i, arg := range rest {
		if arg == "--" {
			break
		}
		// kingpin reads a lone "-" as a short flag; placed after "--"
		// it is taken as the input argument (stdin).
		if arg == "-" {
			rest = append(append(append([]string(nil), rest[:i]...), rest[i+1:]...), "--", "-")
			break
		}
	}
	_, err := k.app.Parse(rest)
	if err != nil {
		return emptyConf, err
	}
	pi, pp, pr, err := parsePrintSpec(k.printSpec)
	if err != nil {
		return emptyConf, err
	}
	if k.noPrint {
		pi, pp, pr = false, false, false
	}
	fmtSpec := formatFromString(k.formatSpec)
	if fmtSpec == nil {
		return emptyConf, fmt.Errorf("unknown format or invalid format spec %q", k.formatSpec)
	}
	return config{
		numWorkers:    k.numWorkers,
		inputPath:     k.inputPath,
		base:          k.base,
		normalize:     k.normalize,
		live:          k.live,
		rate:          k.rate.val,
		timeout:       k.timeout,
		headers:       k.headers,
		certPath:      k.certPath,
		keyPath:       k.keyPath,
		insecure:      k.insecure,
		printIntro:    pi,
		printProgress: pp,
		printResult:   pr,
		format:        fmtSpec,
	}, nil
}

func parsePrintSpec(spec string) (bool, bool, bool, error) {
	if spec == "" {
		return false, false, false, errEmptyPrintSpec
	}
	var intro, progress, result bool
	for _, part := range strings.Split(spec, ",") {
		switch part {
		case "i", "intro":
			intro = true
		case "p", "progress":
			progress = true
		case "r", "result":
			result = true
		default:
			return false, false, false,
				fmt.Errorf("%q is not a valid part of print spec", part)
		}
	}
	return intro, progress, result, nil
}
