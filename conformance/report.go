package conformance

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/wgdzlh/geoapi"
	"github.com/wgdzlh/geoapi/log"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

const (
	FORMAT_JSON = "json"
	FORMAT_YAML = "yaml"
)

// Case 一个命名用例，返回是否通过
type Case struct {
	Name string
	Run  func(t assert.TestingT) bool
}

// Result 单个用例的结果，同时作为用例运行时的assert.TestingT
type Result struct {
	Name     string   `json:"name" yaml:"name"`
	Passed   bool     `json:"passed" yaml:"passed"`
	Elapsed  string   `json:"elapsed" yaml:"elapsed"`
	Failures []string `json:"failures,omitempty" yaml:"failures,omitempty"`
}

var _ assert.TestingT = (*Result)(nil)

func (r *Result) Errorf(format string, args ...interface{}) {
	r.Failures = append(r.Failures, strings.TrimSpace(fmt.Sprintf(format, args...)))
}

// Report 一次校验运行的结果汇总
type Report struct {
	RunID   string    `json:"run_id" yaml:"run_id"`
	Subject string    `json:"subject" yaml:"subject"`
	Started time.Time `json:"started" yaml:"started"`
	Passed  int       `json:"passed" yaml:"passed"`
	Failed  int       `json:"failed" yaml:"failed"`
	Results []*Result `json:"results" yaml:"results"`
	logTag  string
}

func NewReport(subject string) *Report {
	return &Report{
		RunID:   uuid.NewString(),
		Subject: subject,
		Started: time.Now(),
		logTag:  "ConformanceReport:",
	}
}

// 运行用例并记录结果
func (r *Report) Run(c Case) (res *Result) {
	res = &Result{Name: c.Name}
	start := time.Now()
	ok := c.Run(res)
	res.Elapsed = time.Since(start).String()
	res.Passed = ok && len(res.Failures) == 0
	r.Results = append(r.Results, res)
	if res.Passed {
		r.Passed++
		log.Debug(r.logTag+"case passed", zap.String("case", c.Name))
	} else {
		r.Failed++
		log.Warn(r.logTag+"case failed", zap.String("case", c.Name), zap.Strings("failures", res.Failures))
	}
	return
}

func (r *Report) RunAll(cases []Case) bool {
	for _, c := range cases {
		r.Run(c)
	}
	return r.OK()
}

func (r *Report) OK() bool {
	return r.Failed == 0
}

// 存在失败用例时返回ErrNotConformant
func (r *Report) Err() error {
	if r.OK() {
		return nil
	}
	var names []string
	for _, res := range r.Results {
		if !res.Passed {
			names = append(names, res.Name)
		}
	}
	return fmt.Errorf("%d of %d cases failed (%s): %w", r.Failed, len(r.Results), strings.Join(names, ", "), geoapi.ErrNotConformant)
}

// 按format（json或yaml）输出
func (r *Report) Encode(w io.Writer, format string) (err error) {
	switch strings.ToLower(format) {
	case FORMAT_JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		err = enc.Encode(r)
	case FORMAT_YAML, "yml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err = enc.Encode(r); err == nil {
			err = enc.Close()
		}
	default:
		err = fmt.Errorf("report format %q: %w", format, geoapi.ErrInvalidArgument)
	}
	if err != nil {
		log.Error(r.logTag+"encode report failed", zap.String("format", format), zap.Error(err))
	}
	return
}
