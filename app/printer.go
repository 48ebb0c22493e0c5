/*
Copyright 2011-2026 Frederic Langlet
Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
you may obtain a copy of the License at

                http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package main

import (
	"bufio"
	"fmt"
	"sync"

	bsdiff "github.com/binarydiff/bsdiff-go"
)

// Printer is a Listener that renders Engine events to a writer, gated by a
// verbosity level. Buffered and mutex-guarded so a caller can register it
// even if it ever decides to drive several encodes from goroutines.
type Printer struct {
	w         *bufio.Writer
	verbosity uint
	lock      sync.Mutex
}

// NewPrinter creates a Printer writing to w. verbosity 0 prints nothing;
// verbosity >= 1 prints one line per control triple and the scan boundaries.
func NewPrinter(w *bufio.Writer, verbosity uint) *Printer {
	return &Printer{w: w, verbosity: verbosity}
}

// ProcessEvent implements bsdiff.Listener.
func (this *Printer) ProcessEvent(evt *bsdiff.Event) {
	if this.verbosity == 0 {
		return
	}

	var msg string

	switch evt.Type() {
	case bsdiff.EvtScanStart:
		msg = fmt.Sprintf("scanning %d bytes of new data", evt.Total())
	case bsdiff.EvtControlEmitted:
		msg = fmt.Sprintf("control triple #%d emitted, scan=%d/%d", evt.ControlCount(), evt.Scan(), evt.Total())
	case bsdiff.EvtScanEnd:
		msg = fmt.Sprintf("done, %d control triples", evt.ControlCount())
	default:
		msg = evt.String()
	}

	this.lock.Lock()
	this.w.WriteString(msg + "\n")
	this.w.Flush()
	this.lock.Unlock()
}
