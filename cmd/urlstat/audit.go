package main

import (
	"bufio"
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"os/signal"
	"strings"
	"sync"
	"sync/atomic"
	"text/template"
	"time"

	"github.com/codesenberg/weburl"
	"github.com/codesenberg/weburl/internal"

	"github.com/cheggaaa/pb"
	fhist "github.com/codesenberg/concurrent/float64/histogram"
	uhist "github.com/codesenberg/concurrent/uint64/histogram"
	pkgerrors "github.com/pkg/errors"
	uuid "github.com/satori/go.uuid"
)

type auditor struct {
	bytesRead, bytesWritten int64

	// Parse outcome
	parsed  uint64
	failed  uint64
	flagged uint64

	// Probe status classes
	req1xx uint64
	req2xx uint64
	req3xx uint64
	req4xx uint64
	req5xx uint64
	others uint64

	conf        config
	urls        []string
	ratelimiter limiter
	wg          sync.WaitGroup

	timeTaken time.Duration
	latencies *uhist.Histogram
	rates     *fhist.Histogram

	prober   prober
	jobs     chan string
	stop     chan struct{}
	stopOnce sync.Once
	done     chan struct{}
	doneChan chan struct{}

	// URLs/sec metrics
	rpl   sync.Mutex
	reqs  int64
	start time.Time

	// Validation-error codes; parse failures and probe errors
	diagnostics *errorMap
	errors      *errorMap

	// Normalized hrefs, when requested
	nml        sync.Mutex
	normalized []string

	completed uint64

	// Progress bar
	bar *pb.ProgressBar

	// Output
	out      io.Writer
	template *template.Template
}

func newAuditor(c config) (*auditor, error) {
	if err := c.checkArgs(); err != nil {
		return nil, err
	}
	a := new(auditor)
	a.conf = c
	a.latencies = uhist.Default()
	a.rates = fhist.Default()

	urls, err := readURLList(c.inputPath)
	if err != nil {
		return nil, err
	}
	a.urls = urls

	a.bar = pb.New64(int64(len(urls)))
	a.bar.ShowSpeed = true
	a.bar.ManualUpdate = true
	if !a.conf.printProgress {
		a.bar.Output = ioutil.Discard
		a.bar.NotPrint = true
	}

	if a.conf.rate != nil {
		a.ratelimiter = newBucketLimiter(*a.conf.rate)
	} else {
		a.ratelimiter = &nooplimiter{}
	}

	a.out = os.Stdout

	if a.conf.live {
		tlsConfig, err := generateTLSConfig(c)
		if err != nil {
			return nil, err
		}
		a.prober = newFastHTTPProber(&proberOpts{
			timeout:      c.timeout,
			tlsConfig:    tlsConfig,
			headers:      c.headers,
			bytesRead:    &a.bytesRead,
			bytesWritten: &a.bytesWritten,
		})
	}

	a.template, err = a.prepareTemplate()
	if err != nil {
		return nil, err
	}

	a.wg.Add(int(c.numWorkers))
	a.diagnostics = newErrorMap()
	a.errors = newErrorMap()
	a.jobs = make(chan string, len(urls))
	for _, u := range urls {
		a.jobs <- u
	}
	close(a.jobs)
	a.stop = make(chan struct{})
	a.done = make(chan struct{})
	a.doneChan = make(chan struct{}, 2)
	return a, nil
}

func parseOne(base *weburl.URL, input string) (*weburl.URL, error) {
	if base != nil {
		return weburl.ParseRef(base, input)
	}
	return weburl.Parse(input)
}

// readURLList loads the input file, dropping blank lines and
// #-comments.
func readURLList(path string) ([]string, error) {
	var r io.Reader = os.Stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, pkgerrors.Wrap(err, "opening URL list")
		}
		defer f.Close()
		r = f
	}
	var urls []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		urls = append(urls, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, pkgerrors.Wrap(err, "reading URL list")
	}
	return urls, nil
}

func (a *auditor) prepareTemplate() (*template.Template, error) {
	var (
		templateBytes []byte
		err           error
	)
	switch f := a.conf.format.(type) {
	case knownFormat:
		templateBytes = f.template()
	case userDefinedTemplate:
		templateBytes, err = ioutil.ReadFile(string(f))
		if err != nil {
			return nil, err
		}
	default:
		panic("format can't be nil at this point, this is a bug")
	}
	outputTemplate, err := template.New("output-template").
		Funcs(template.FuncMap{
			"WithLive": func() bool {
				return a.conf.live
			},
			"FormatBinary": formatBinary,
			"FormatTimeUs": formatTimeUs,
			"FormatShare":  formatShare,
			"FormatTimeUsUint64": func(us uint64) string {
				return formatTimeUs(float64(us))
			},
			"FloatsToArray": func(ps ...float64) []float64 {
				return ps
			},
			"Multiply": func(num, coeff float64) float64 {
				return num * coeff
			},
			"UUIDV1": uuid.NewV1,
			"UUIDV4": uuid.NewV4,
		}).Parse(string(templateBytes))

	if err != nil {
		return nil, err
	}
	return outputTemplate, nil
}

func (a *auditor) writeProbeStatistics(code int) {
	var counter *uint64
	switch code / 100 {
	case 1:
		counter = &a.req1xx
	case 2:
		counter = &a.req2xx
	case 3:
		counter = &a.req3xx
	case 4:
		counter = &a.req4xx
	case 5:
		counter = &a.req5xx
	default:
		counter = &a.others
	}
	atomic.AddUint64(counter, 1)
}

func (a *auditor) auditSingleURL(input string) {
	start := time.Now()
	u, err := parseOne(a.conf.baseURL, input)
	usTaken := uint64(time.Since(start).Nanoseconds() / 1000)
	a.latencies.Increment(usTaken)
	a.rpl.Lock()
	a.reqs++
	a.rpl.Unlock()

	if err != nil {
		atomic.AddUint64(&a.failed, 1)
		a.errors.add(err)
		return
	}
	atomic.AddUint64(&a.parsed, 1)
	if diags := u.ValidationErrors(); len(diags) > 0 {
		atomic.AddUint64(&a.flagged, 1)
		for _, d := range diags {
			a.diagnostics.addString(d.String())
		}
	}
	if a.conf.normalize {
		a.nml.Lock()
		a.normalized = append(a.normalized, u.Normalize().Href())
		a.nml.Unlock()
	}
	if a.conf.live {
		code, _, perr := a.prober.probe(u)
		if perr != nil {
			a.errors.add(perr)
		}
		a.writeProbeStatistics(code)
	}
}

func (a *auditor) worker() {
	for {
		select {
		case <-a.stop:
			return
		default:
		}
		input, ok := <-a.jobs
		if !ok {
			return
		}
		if a.ratelimiter.pace(a.stop) == brk {
			return
		}
		a.auditSingleURL(input)
		atomic.AddUint64(&a.completed, 1)
	}
}

func (a *auditor) cancel() {
	a.stopOnce.Do(func() {
		close(a.stop)
	})
}

func (a *auditor) barUpdater() {
	for {
		select {
		case <-a.done:
			a.bar.Set64(a.bar.Total)
			a.bar.Update()
			a.bar.Finish()
			if a.conf.printProgress {
				fmt.Fprintln(a.out, "Done!")
			}
			a.doneChan <- struct{}{}
			return
		default:
			a.bar.Set64(int64(atomic.LoadUint64(&a.completed)))
			a.bar.Update()
			time.Sleep(a.bar.RefreshRate)
		}
	}
}

func (a *auditor) rateMeter() {
	ticker := time.NewTicker(rateMeterInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			a.recordRate()
			continue
		case <-a.done:
			a.recordRate()
			a.doneChan <- struct{}{}
			return
		}
	}
}

func (a *auditor) recordRate() {
	a.rpl.Lock()
	duration := time.Since(a.start)
	reqs := a.reqs
	a.reqs = 0
	a.start = time.Now()
	a.rpl.Unlock()

	if duration <= 0 {
		return
	}
	a.rates.Increment(float64(reqs) / duration.Seconds())
}

func (a *auditor) audit() {
	if a.conf.printIntro {
		a.printIntro()
	}
	a.bar.Start()
	auditBegin := time.Now()
	a.start = time.Now()
	for i := uint64(0); i < a.conf.numWorkers; i++ {
		go func() {
			defer a.wg.Done()
			a.worker()
		}()
	}
	go a.rateMeter()
	go a.barUpdater()
	a.wg.Wait()
	a.timeTaken = time.Since(auditBegin)
	close(a.done)
	<-a.doneChan
	<-a.doneChan
}

func (a *auditor) printIntro() {
	what := "Auditing"
	if a.conf.live {
		what = "Auditing and probing"
	}
	fmt.Fprintf(a.out, "%v %v URL(s) from %v using %v worker(s)\n",
		what, len(a.urls), a.conf.inputPath, a.conf.numWorkers)
}

func (a *auditor) gatherInfo() internal.RunInfo {
	info := internal.RunInfo{
		Spec: internal.Spec{
			NumberOfWorkers: a.conf.numWorkers,

			InputPath: a.conf.inputPath,
			BaseURL:   a.conf.base,

			Normalize: a.conf.normalize,
			Live:      a.conf.live,

			CertPath: a.conf.certPath,
			KeyPath:  a.conf.keyPath,

			Timeout: a.conf.timeout,
			Rate:    a.conf.rate,
		},
		Result: internal.Results{
			TimeTaken: a.timeTaken,

			Total:   uint64(len(a.urls)),
			Parsed:  a.parsed,
			Failed:  a.failed,
			Flagged: a.flagged,

			BytesRead:    a.bytesRead,
			BytesWritten: a.bytesWritten,

			Req1XX: a.req1xx,
			Req2XX: a.req2xx,
			Req3XX: a.req3xx,
			Req4XX: a.req4xx,
			Req5XX: a.req5xx,
			Others: a.others,

			Latencies: a.latencies,
			Rates:     a.rates,
		},
	}

	if a.conf.headers != nil {
		for _, h := range *a.conf.headers {
			info.Spec.Headers = append(info.Spec.Headers,
				internal.Header{
					Key:   h.key,
					Value: h.value,
				})
		}
	}

	for _, ewc := range a.diagnostics.byFrequency() {
		info.Result.Diagnostics = append(info.Result.Diagnostics,
			internal.ErrorWithCount{
				Error: ewc.error,
				Count: ewc.count,
			})
	}
	for _, ewc := range a.errors.byFrequency() {
		info.Result.Errors = append(info.Result.Errors,
			internal.ErrorWithCount{
				Error: ewc.error,
				Count: ewc.count,
			})
	}
	return info
}

func (a *auditor) printNormalized() {
	a.nml.Lock()
	defer a.nml.Unlock()
	for _, href := range a.normalized {
		fmt.Fprintln(a.out, href)
	}
}

func (a *auditor) printStats() {
	if err := a.template.Execute(a.out, a.gatherInfo()); err != nil {
		fmt.Fprintln(a.out, err)
	}
}

func (a *auditor) redirectOutputTo(out io.Writer) {
	a.bar.Output = out
	a.out = out
}

func (a *auditor) disableOutput() {
	a.redirectOutputTo(ioutil.Discard)
	a.bar.NotPrint = true
}

func main() {
	cfg, err := parser.parse(os.Args)
	if err != nil {
		fmt.Println(err)
		os.Exit(exitFailure)
	}
	auditor, err := newAuditor(cfg)
	if err != nil {
		fmt.Println(err)
		os.Exit(exitFailure)
	}
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)
	go func() {
		<-c
		auditor.cancel()
	}()
	auditor.audit()
	if auditor.conf.normalize {
		auditor.printNormalized()
	}
	if auditor.conf.printResult {
		auditor.printStats()
	}
}
