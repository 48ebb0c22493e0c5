/*
Copyright 2011-2024 Frederic Langlet
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

package bsdiff

import (
	"fmt"
	"time"
)

const (
	EvtScanStart      = 0 // Encode() starts scanning NEW
	EvtControlEmitted = 1 // a control triple was appended to CTRL
	EvtScanEnd        = 2 // Encode() has reached the end of NEW
)

// Event reports encoder progress. It carries no information required to
// reconstruct NEW; it exists purely so a caller (typically a CLI) can
// show progress on large inputs.
type Event struct {
	eventType int
	scan      int64
	total     int64
	ctrlCount int
	eventTime time.Time
	msg       string
}

// NewEventFromString creates an Event that simply wraps a message.
func NewEventFromString(evtType int, msg string, evtTime time.Time) *Event {
	if evtTime.IsZero() {
		evtTime = time.Now()
	}

	return &Event{eventType: evtType, msg: msg, eventTime: evtTime}
}

// NewScanEvent creates an Event describing progress through NEW.
func NewScanEvent(evtType int, scan, total int64, ctrlCount int, evtTime time.Time) *Event {
	if evtTime.IsZero() {
		evtTime = time.Now()
	}

	return &Event{eventType: evtType, scan: scan, total: total, ctrlCount: ctrlCount, eventTime: evtTime}
}

// Type returns the event type
func (this *Event) Type() int {
	return this.eventType
}

// Scan returns the current NEW-side cursor position
func (this *Event) Scan() int64 {
	return this.scan
}

// Total returns len(NEW)
func (this *Event) Total() int64 {
	return this.total
}

// ControlCount returns the number of control triples emitted so far
func (this *Event) ControlCount() int {
	return this.ctrlCount
}

// Time returns the time the event was created
func (this *Event) Time() time.Time {
	return this.eventTime
}

// String returns a human-readable representation of the event
func (this *Event) String() string {
	if len(this.msg) > 0 {
		return this.msg
	}

	t := ""

	switch this.eventType {
	case EvtScanStart:
		t = "SCAN_START"
	case EvtControlEmitted:
		t = "CONTROL_EMITTED"
	case EvtScanEnd:
		t = "SCAN_END"
	}

	return fmt.Sprintf("{ \"type\":\"%s\", \"scan\":%d, \"total\":%d, \"ctrl\":%d }",
		t, this.scan, this.total, this.ctrlCount)
}

// Listener is implemented by encoder progress observers.
type Listener interface {
	// ProcessEvent is called whenever the engine emits an Event.
	ProcessEvent(evt *Event)
}

func notifyListeners(listeners []Listener, evt *Event) {
	for _, l := range listeners {
		func() {
			defer func() {
				// a broken listener must not abort the encode
				_ = recover()
			}()
			l.ProcessEvent(evt)
		}()
	}
}
