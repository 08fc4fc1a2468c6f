package main // import "github.com/tonobo/magent-autonomy"

import (
	"fmt"
	"io"
	"io/ioutil"
	"log"
	"os"
	"path/filepath"
	"regexp"
)

// logName limits agent and episode ids used in log file names.
var logName = regexp.MustCompile(`^[A-Za-z0-9_-]*$`)

// Request is one step of one agent as sent by the environment loop.
type Request struct {
	Episode      string       `json:"episode"`
	Agent        string       `json:"agent"`
	Step         int          `json:"step"`
	Observations Observations `json:"observations"`
	Target       *int32       `json:"target,omitempty"`

	debug bool
}

type Response struct {
	Action int32  `json:"action"`
	Move   string `json:"move"`
}

// LogFile returns the decision log of the requesting agent. The caller closes
// it.
func (r *Request) LogFile() io.WriteCloser {
	if r.debug || Debug {
		return nopCloser{os.Stdout}
	}
	if LogDir == "" {
		return nopCloser{ioutil.Discard}
	}
	if !logName.MatchString(r.Agent) || !logName.MatchString(r.Episode) {
		log.Printf("decision log disabled for %q/%q: invalid name", r.Episode, r.Agent)
		return nopCloser{ioutil.Discard}
	}
	f, err := os.OpenFile(filepath.Join(LogDir, fmt.Sprintf("magent-%s-%s.log",
		r.Agent,
		r.Episode)),
		os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		log.Printf("decision log unavailable for %s/%s: %v", r.Episode, r.Agent, err)
		return nopCloser{ioutil.Discard}
	}
	return f
}

func (r *Request) Move() (*Response, error) {
	d, err := Decide(r.Observations, r.Target)
	if err != nil {
		return nil, err
	}
	w := r.LogFile()
	fmt.Fprintf(w, "step %d: ", r.Step)
	d.Print(w)
	w.Close()
	a := d.Movement.Action
	return &Response{Action: a.Code(), Move: a.String()}, nil
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }
